package header

import (
	"braces.dev/errtrace"

	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/internal/grammar"
)

// URIParams is a `"<" URI ">" *(";" param)` entry. The URI is kept as
// raw bytes; no semantic validation is performed at this layer.
type URIParams struct {
	URI    string
	Params Params
}

func (v URIParams) String() string { return "<" + v.URI + ">" }

// ParseMultipleURIParams parses a comma-separated list of laquot-quoted
// URIs with parameters (Alert-Info, Call-Info, Error-Info).
func ParseMultipleURIParams(value []byte) (any, error) {
	out := []URIParams{}
	it := grammar.NewValuesIterator(value, ',')
	for it.Next() {
		t := grammar.NewTokenizer(it.Value())
		t.SkipTo('<')
		if t.EOF() {
			return nil, errtrace.Wrap(sip.ErrInvalidURI)
		}
		uriStart := t.Skip()
		uriEnd := t.SkipTo('>')
		if t.EOF() {
			return nil, errtrace.Wrap(sip.ErrUnclosedLAquot)
		}
		t.Skip()
		out = append(out, URIParams{
			URI:    string(t.Bytes(uriStart, uriEnd)),
			Params: parseParams(t),
		})
	}
	return out, nil
}
