package header

import (
	"braces.dev/errtrace"

	"github.com/sippet/gosippet/internal/util"
	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/internal/grammar"
)

// MIMEType is a `type "/" subtype` pair, lower-cased. The zero value
// stands for an absent but valid media type (an empty header).
type MIMEType struct {
	Type    string
	Subtype string
}

func (v MIMEType) String() string {
	if v.Type == "" && v.Subtype == "" {
		return ""
	}
	return v.Type + "/" + v.Subtype
}

// MIMETypeParams is a media type followed by ';'-separated parameters.
type MIMETypeParams struct {
	Type   MIMEType
	Params Params
}

func parseTypeSubtype(t *grammar.Tokenizer) (MIMEType, error) {
	typeStart := t.SkipIn(grammar.LWS)
	if t.EOF() {
		// empty header is OK
		return MIMEType{}, nil
	}
	typeEnd := t.SkipNotIn(grammar.LWS + "/")
	mtype := t.Bytes(typeStart, typeEnd)
	if !grammar.IsToken(mtype) {
		return MIMEType{}, errtrace.Wrap(sip.ErrInvalidToken)
	}

	t.SkipTo('/')
	t.Skip()

	subStart := t.SkipIn(grammar.LWS)
	if t.EOF() {
		return MIMEType{}, errtrace.Wrap(sip.ErrMissingSubtype)
	}
	subEnd := t.SkipNotIn(grammar.LWS + ";")
	subtype := t.Bytes(subStart, subEnd)
	if !grammar.IsToken(subtype) {
		return MIMEType{}, errtrace.Wrap(sip.ErrInvalidToken)
	}

	return MIMEType{
		Type:    string(util.LCaseBytes(mtype)),
		Subtype: string(util.LCaseBytes(subtype)),
	}, nil
}

// ParseSingleTypeSubtypeParams parses `type "/" subtype *(";" param)`.
func ParseSingleTypeSubtypeParams(value []byte) (any, error) {
	t := grammar.NewTokenizer(value)
	mtype, err := parseTypeSubtype(t)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return MIMETypeParams{Type: mtype, Params: parseParams(t)}, nil
}

// ParseMultipleTypeSubtypeParams parses a comma-separated list of
// media types with parameters.
func ParseMultipleTypeSubtypeParams(value []byte) (any, error) {
	out := []MIMETypeParams{}
	it := grammar.NewValuesIterator(value, ',')
	for it.Next() {
		t := grammar.NewTokenizer(it.Value())
		mtype, err := parseTypeSubtype(t)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		out = append(out, MIMETypeParams{Type: mtype, Params: parseParams(t)})
	}
	return out, nil
}
