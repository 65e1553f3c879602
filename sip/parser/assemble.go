package parser

import (
	"braces.dev/errtrace"

	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/internal/grammar"
)

// AssembleHeaderBlock unfolds a raw header block so that each header
// occupies one logical line separated by '\n'. CRLF is the canonical
// line terminator and a bare LF is accepted; a bare CR is an error.
// A physical line starting with LWS continues the previous logical
// line: the terminator is consumed and no separator is emitted.
func AssembleHeaderBlock(input []byte) ([]byte, error) {
	out := make([]byte, 0, len(input))
	t := grammar.NewTokenizer(input)
	for {
		lineStart := t.Pos()
		lineEnd := t.SkipNotIn("\r\n")
		if lineStart != lineEnd {
			out = append(out, input[lineStart:lineEnd]...)
		}
		if t.EOF() {
			break
		}
		if t.Byte() == '\n' {
			t.Skip() // accept single LF
		} else {
			t.Skip()
			if t.EOF() || t.Byte() != '\n' {
				return nil, errtrace.Wrap(sip.ErrInvalidLineBreak)
			}
			t.Skip()
		}
		if t.EOF() {
			break
		}
		if !grammar.IsLWSChar(t.Byte()) {
			out = append(out, '\n') // not line folding
		}
	}
	return out, nil
}
