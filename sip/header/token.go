package header

import (
	"braces.dev/errtrace"

	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/internal/grammar"
)

// Token is a bare header token value.
type Token string

func (v Token) String() string { return string(v) }

// TokenParams is a token followed by ';'-separated parameters.
type TokenParams struct {
	Token  Token
	Params Params
}

func parseToken(t *grammar.Tokenizer) (Token, error) {
	start := t.SkipIn(grammar.LWS)
	if t.EOF() {
		return "", errtrace.Wrap(sip.ErrEmptyValue)
	}
	end := t.SkipNotIn(grammar.LWS + ";")
	return Token(t.Bytes(start, end)), nil
}

// ParseSingleToken parses a header holding exactly one token.
func ParseSingleToken(value []byte) (any, error) {
	tok, err := parseToken(grammar.NewTokenizer(value))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return tok, nil
}

// ParseSingleTokenParams parses `token *(";" param)`.
func ParseSingleTokenParams(value []byte) (any, error) {
	t := grammar.NewTokenizer(value)
	tok, err := parseToken(t)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return TokenParams{Token: tok, Params: parseParams(t)}, nil
}

// ParseMultipleTokens parses a comma-separated token list.
func ParseMultipleTokens(value []byte) (any, error) {
	out := []Token{}
	it := grammar.NewValuesIterator(value, ',')
	for it.Next() {
		tok, err := parseToken(grammar.NewTokenizer(it.Value()))
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		out = append(out, tok)
	}
	return out, nil
}

// ParseMultipleTokenParams parses a comma-separated list of
// `token *(";" param)` entries.
func ParseMultipleTokenParams(value []byte) (any, error) {
	out := []TokenParams{}
	it := grammar.NewValuesIterator(value, ',')
	for it.Next() {
		t := grammar.NewTokenizer(it.Value())
		tok, err := parseToken(t)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		out = append(out, TokenParams{Token: tok, Params: parseParams(t)})
	}
	return out, nil
}
