package header

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/internal/grammar"
)

// ParseSingleInteger parses a header holding one decimal integer
// (Content-Length, Expires, Max-Forwards, Min-Expires).
func ParseSingleInteger(value []byte) (any, error) {
	t := grammar.NewTokenizer(value)
	start := t.SkipIn(grammar.LWS)
	end := t.SkipNotIn(grammar.LWS)
	n, err := strconv.Atoi(string(t.Bytes(start, end)))
	if err != nil {
		return nil, errtrace.Wrap(sip.ErrInvalidDigits)
	}
	return n, nil
}
