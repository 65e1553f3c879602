package parser

import (
	"bytes"
	"strconv"

	"braces.dev/errtrace"

	"github.com/sippet/gosippet/internal/util"
	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/internal/grammar"
)

var statusLinePrefix = []byte("sip/")

// isStatusLine reports whether the first unfolded line opens a status
// line rather than a request line.
func isStatusLine(line []byte) bool {
	return len(line) > 4 && util.CasePrefix(statusLinePrefix, line)
}

func parseStatusLine(line []byte) (*sip.StatusLine, error) {
	ver, err := grammar.ParseVersion(line)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	p := bytes.IndexByte(line, ' ')
	if p < 0 {
		return nil, errtrace.Wrap(sip.ErrMissingStatusCode)
	}
	for p < len(line) && line[p] == ' ' {
		p++
	}

	codeStart := p
	for p < len(line) && grammar.IsDigit(line[p]) {
		p++
	}
	if p == codeStart {
		return nil, errtrace.Wrap(sip.ErrEmptyStatusCode)
	}
	code, err := strconv.Atoi(string(line[codeStart:p]))
	if err != nil {
		return nil, errtrace.Wrap(sip.ErrInvalidStatusCode)
	}

	for p < len(line) && line[p] == ' ' {
		p++
	}
	end := len(line)
	for end > p && line[end-1] == ' ' {
		end--
	}

	return &sip.StatusLine{
		Version:      ver,
		StatusCode:   code,
		ReasonPhrase: string(line[p:end]),
	}, nil
}

func parseRequestLine(line []byte) (*sip.RequestLine, error) {
	// Skip any leading whitespace.
	for len(line) > 0 && (line[0] == ' ' || line[0] == '\t' || line[0] == '\r' || line[0] == '\n') {
		line = line[1:]
	}

	p := bytes.IndexByte(line, ' ')
	if p < 0 {
		return nil, errtrace.Wrap(sip.ErrMissingMethod)
	}
	method := sip.MethodFromToken(line[:p])

	for p < len(line) && line[p] == ' ' {
		p++
	}
	rest := line[p:]
	q := bytes.IndexByte(rest, ' ')
	if q < 0 {
		return nil, errtrace.Wrap(sip.ErrMissingURI)
	}
	uri := string(rest[:q])

	for q < len(rest) && rest[q] == ' ' {
		q++
	}
	ver, err := grammar.ParseVersion(rest[q:])
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	return &sip.RequestLine{Method: method, RequestURI: uri, Version: ver}, nil
}
