package header

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/internal/grammar"
)

// Timestamp is a `timestamp [SP delay]` pair.
type Timestamp struct {
	Value float64
	Delay float64
}

// ParseTimestamp parses a Timestamp value. The delay is optional and
// errors parsing it are ignored.
func ParseTimestamp(value []byte) (any, error) {
	t := grammar.NewTokenizer(value)
	tsStart := t.SkipIn(grammar.LWS)
	if t.EOF() {
		return nil, errtrace.Wrap(sip.ErrMissingTimestamp)
	}
	tsEnd := t.SkipNotIn(grammar.LWS)
	ts, err := strconv.ParseFloat(string(t.Bytes(tsStart, tsEnd)), 64)
	if err != nil {
		return nil, errtrace.Wrap(sip.ErrInvalidTimestamp)
	}

	var delay float64
	delayStart := t.SkipIn(grammar.LWS)
	if !t.EOF() {
		delayEnd := t.SkipNotIn(grammar.LWS)
		if d, err := strconv.ParseFloat(string(t.Bytes(delayStart, delayEnd)), 64); err == nil {
			delay = d
		}
	}

	return Timestamp{Value: ts, Delay: delay}, nil
}
