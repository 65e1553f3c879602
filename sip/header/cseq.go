package header

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/internal/grammar"
)

// CSeq is the `sequence-number SP method` pair that identifies and
// orders transactions.
type CSeq struct {
	SeqNum int
	Method sip.Method
}

func (v CSeq) String() string { return strconv.Itoa(v.SeqNum) + " " + string(v.Method) }

// ParseCSeq parses a CSeq value. Unknown methods are kept as lowered
// byte strings.
func ParseCSeq(value []byte) (any, error) {
	t := grammar.NewTokenizer(value)
	seqStart := t.SkipIn(grammar.LWS)
	if t.EOF() {
		return nil, errtrace.Wrap(sip.ErrMissingSequence)
	}
	seqEnd := t.SkipNotIn(grammar.LWS)
	seq, err := strconv.Atoi(string(t.Bytes(seqStart, seqEnd)))
	if err != nil {
		return nil, errtrace.Wrap(sip.ErrInvalidSequence)
	}

	methodStart := t.SkipIn(grammar.LWS)
	if t.EOF() {
		return nil, errtrace.Wrap(sip.ErrMissingMethod)
	}
	methodEnd := t.SkipNotIn(grammar.LWS)

	return CSeq{
		SeqNum: seq,
		Method: sip.MethodFromToken(t.Bytes(methodStart, methodEnd)),
	}, nil
}
