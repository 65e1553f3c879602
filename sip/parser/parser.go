// Package parser turns the raw bytes of one SIP message into a
// [sip.Message]: the start line plus an ordered header map. The input
// is a whole message in one buffer; the body, when present, is left
// untouched.
//
// The parser is a pure function of its input. Malformed header lines
// (bad name shape, missing colon, leading LWS) are skipped; malformed
// values of known headers abort the parse with a [sip.Error] code.
package parser

//go:generate go tool errtrace -w .

import (
	"bytes"
	"log/slog"

	"braces.dev/errtrace"

	"github.com/sippet/gosippet/internal/errorutil"
	"github.com/sippet/gosippet/log"
	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/header"
	"github.com/sippet/gosippet/sip/internal/grammar"
)

type options struct {
	logger  *slog.Logger
	parsers map[sip.HeaderName]header.ParseFunc
}

// Option configures a Parse call.
type Option func(*options)

// WithLogger makes the parser log the names of headers that have no
// registered parser at Debug level. Skipped malformed header lines are
// not logged. The default logger is [log.Noop].
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithHeaderParser registers a custom value parser for the header with
// the given name, overriding the registry entry if one exists. The
// result is stored under the canonical form of name.
func WithHeaderParser(name string, parse header.ParseFunc) Option {
	return func(o *options) {
		if o.parsers == nil {
			o.parsers = make(map[sip.HeaderName]header.ParseFunc)
		}
		o.parsers[header.CanonicName(name)] = parse
	}
}

func newOptions(opts []Option) *options {
	o := &options{logger: log.Noop}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) lookup(name []byte) (sip.HeaderName, header.ParseFunc, bool) {
	if o.parsers != nil {
		if custom, ok := o.parsers[header.CanonicName(name)]; ok {
			return header.CanonicName(name), custom, true
		}
	}
	return header.Lookup(name)
}

// ParseString parses a SIP message given as a string.
func ParseString(data string, opts ...Option) (*sip.Message, error) {
	return errtrace.Wrap2(Parse([]byte(data), opts...))
}

// Parse parses one SIP message. It returns the structured message, or
// an error wrapping one of the [sip.Error] codes. The returned message
// owns all of its bytes; data may be reused immediately.
func Parse(data []byte, opts ...Option) (*sip.Message, error) {
	if data == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil message buffer"))
	}
	o := newOptions(opts)

	block, err := AssembleHeaderBlock(cutBody(data))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	firstLine := block
	rest := []byte(nil)
	if nl := bytes.IndexByte(block, '\n'); nl >= 0 {
		firstLine = block[:nl]
		rest = block[nl+1:]
	}

	msg := &sip.Message{Headers: sip.NewHeaders()}
	if isStatusLine(firstLine) {
		msg.Status, err = parseStatusLine(firstLine)
	} else {
		msg.Request, err = parseRequestLine(firstLine)
	}
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	it := grammar.NewHeadersIterator(rest)
	for it.Next() {
		name, parse, known := o.lookup(it.Name())

		var value any
		if known {
			value, err = parse(it.Values())
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
		} else {
			o.logger.Debug("no parser registered for header",
				"name", log.StringValue(it.Name()))
			value = []header.Any{header.Any(it.Values())}
		}

		if existing, ok := msg.Headers.Get(name); ok {
			merged, err := mergeValues(existing, value)
			if err != nil {
				return nil, errtrace.Wrap(err)
			}
			msg.Headers.Set(name, merged)
		} else {
			msg.Headers.Set(name, value)
		}
	}

	return msg, nil
}

// cutBody returns the header section of data: everything up to the
// first blank line. The body is an external concern and never parsed.
func cutBody(data []byte) []byte {
	for i := 0; i < len(data); i++ {
		if data[i] != '\n' {
			continue
		}
		rest := data[i+1:]
		if len(rest) > 0 && rest[0] == '\n' {
			return data[:i+1]
		}
		if len(rest) > 1 && rest[0] == '\r' && rest[1] == '\n' {
			return data[:i+1]
		}
	}
	return data
}
