package header

import (
	"braces.dev/errtrace"

	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/internal/grammar"
)

// Challenge is an authentication scheme with its comma-separated
// parameters (Authorization, WWW-Authenticate and friends).
type Challenge struct {
	Scheme string
	Params Params
}

// parseAuthParams collects `,`-separated name=value pairs starting at
// the cursor of t. Parameter names keep their case, values are
// unquoted. Iteration stops silently at the first malformed pair.
func parseAuthParams(t *grammar.Tokenizer) Params {
	params := Params{}
	it := grammar.NewNameValuePairsIterator(t.Rest(), ',')
	for it.Next() {
		params[string(it.Name())] = string(it.Value())
	}
	return params
}

// ParseOnlyAuthParams parses a bare auth parameter list with no scheme
// (Authentication-Info).
func ParseOnlyAuthParams(value []byte) (any, error) {
	return parseAuthParams(grammar.NewTokenizer(value)), nil
}

// ParseSchemeAndAuthParams parses `scheme LWS auth-params`. The result
// is a one-element list to match the header shape used downstream.
func ParseSchemeAndAuthParams(value []byte) (any, error) {
	t := grammar.NewTokenizer(value)
	schemeStart := t.SkipIn(grammar.LWS)
	if t.EOF() {
		return nil, errtrace.Wrap(sip.ErrMissingAuthScheme)
	}
	schemeEnd := t.SkipNotIn(grammar.LWS)
	scheme := string(t.Bytes(schemeStart, schemeEnd))
	return []Challenge{{Scheme: scheme, Params: parseAuthParams(t)}}, nil
}
