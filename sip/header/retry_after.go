package header

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/internal/grammar"
)

// RetryAfter is `delta-seconds [comment] *(";" param)`. The comment is
// LWS-trimmed with the outer parentheses stripped; nested parentheses
// are allowed inside.
type RetryAfter struct {
	Delta   int
	Comment string
	Params  Params
}

// ParseRetryAfter parses a Retry-After value.
func ParseRetryAfter(value []byte) (any, error) {
	t := grammar.NewTokenizer(value)
	deltaStart := t.SkipIn(grammar.LWS)
	if t.EOF() {
		return nil, errtrace.Wrap(sip.ErrMissingDeltaSecs)
	}
	deltaEnd := t.SkipNotIn(grammar.LWS + "(;")
	delta, err := strconv.Atoi(string(t.Bytes(deltaStart, deltaEnd)))
	if err != nil {
		return nil, errtrace.Wrap(sip.ErrMissingOrInvalidDeltaSecs)
	}

	// A comment, when present, comes before the first ';'.
	var comment string
	t.SkipIn(grammar.LWS)
	if !t.EOF() && t.Byte() == '(' {
		start := t.Pos()
		depth := 0
		end := -1
		for !t.EOF() {
			switch t.Byte() {
			case '\\':
				t.Skip()
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					end = t.Skip()
				}
			}
			if end >= 0 {
				break
			}
			t.Skip()
		}
		if end < 0 {
			return nil, errtrace.Wrap(sip.ErrInvalidComment)
		}
		comment = string(grammar.TrimLWS(t.Bytes(start+1, end-1)))
	}

	return RetryAfter{Delta: delta, Comment: comment, Params: parseParams(t)}, nil
}
