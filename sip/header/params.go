package header

import (
	"github.com/sippet/gosippet/internal/util"
	"github.com/sippet/gosippet/sip/internal/grammar"
)

// Params maps lower-cased parameter names to their values. Values keep
// their case and are unquoted when they arrive as quoted strings; a
// parameter without '=' maps to the empty string.
type Params map[string]string

// parseParams consumes the ';'-led parameter list starting at the
// cursor of t. Anything before the first ';' is skipped. An empty
// input yields an empty map.
func parseParams(t *grammar.Tokenizer) Params {
	params := Params{}
	if t.EOF() {
		return params
	}

	t.SkipTo(';')
	t.Skip()

	it := grammar.NewGenericParametersIterator(t.Rest())
	for it.Next() {
		params[string(util.LCaseBytes(it.Name()))] = string(it.Value())
	}
	return params
}
