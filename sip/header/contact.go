package header

import (
	"braces.dev/errtrace"

	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/internal/grammar"
)

// Contact is one contact-param: an optional display name, the address
// and its parameters. The address is kept as raw bytes, without the
// surrounding angle brackets when they were present.
type Contact struct {
	DisplayName string
	Address     string
	Params      Params
}

func (v Contact) String() string {
	if v.DisplayName == "" {
		return "<" + v.Address + ">"
	}
	return `"` + v.DisplayName + `" <` + v.Address + ">"
}

// Star is the literal "*" Contact value.
type Star struct{}

func (Star) String() string { return "*" }

// parseContact parses one contact-param up to its parameters, leaving
// the cursor after the address:
//
//	contact-param = quoted-string LAQUOT addr-spec RAQUOT
//	contact-param = *(token LWS) LAQUOT addr-spec RAQUOT
//	contact-param = addr-spec
func parseContact(t *grammar.Tokenizer) (Contact, error) {
	t.SkipIn(grammar.LWS)
	if t.EOF() {
		return Contact{}, errtrace.Wrap(sip.ErrMissingAddress)
	}

	if grammar.IsQuoteChar(t.Byte()) {
		// quoted-string LAQUOT addr-spec RAQUOT
		dnStart := t.Pos()
		t.Skip()
		for !t.EOF() {
			if t.Byte() == '\\' {
				t.Skip()
				t.Skip()
				continue
			}
			if grammar.IsQuoteChar(t.Byte()) {
				break
			}
			t.Skip()
		}
		if t.EOF() {
			return Contact{}, errtrace.Wrap(sip.ErrUnclosedQString)
		}
		dnEnd := t.Skip()
		displayName := string(grammar.Unquote(t.Bytes(dnStart, dnEnd)))

		t.SkipTo('<')
		if t.EOF() {
			return Contact{}, errtrace.Wrap(sip.ErrMissingAddress)
		}
		addrStart := t.Skip()
		addrEnd := t.SkipTo('>')
		if t.EOF() {
			return Contact{}, errtrace.Wrap(sip.ErrUnclosedLAquot)
		}
		t.Skip()
		return Contact{
			DisplayName: displayName,
			Address:     string(t.Bytes(addrStart, addrEnd)),
		}, nil
	}

	la := grammar.NewTokenizer(t.Rest())
	base := t.Pos()
	la.SkipTo('<')
	if !la.EOF() {
		// *(token LWS) LAQUOT addr-spec RAQUOT
		displayName := string(grammar.Unquote(grammar.TrimLWS(la.Bytes(0, la.Pos()))))
		addrStart := la.Skip()
		addrEnd := la.SkipTo('>')
		if la.EOF() {
			return Contact{}, errtrace.Wrap(sip.ErrUnclosedLAquot)
		}
		la.Skip()
		t.SetPos(base + la.Pos())
		return Contact{
			DisplayName: displayName,
			Address:     string(la.Bytes(addrStart, addrEnd)),
		}, nil
	}

	if grammar.IsTokenChar(t.Byte()) {
		// bare addr-spec, running until LWS or ';'
		addrStart := t.Pos()
		addrEnd := t.SkipNotIn(grammar.LWS + ";")
		return Contact{Address: string(t.Bytes(addrStart, addrEnd))}, nil
	}

	return Contact{}, errtrace.Wrap(sip.ErrInvalidCharFound)
}

// ParseSingleContactParams parses one contact with parameters
// (To, From, Reply-To, Refer-To, ...).
func ParseSingleContactParams(value []byte) (any, error) {
	t := grammar.NewTokenizer(value)
	contact, err := parseContact(t)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	contact.Params = parseParams(t)
	return contact, nil
}

// ParseMultipleContactParams parses a comma-separated contact list
// (Route, Record-Route).
func ParseMultipleContactParams(value []byte) (any, error) {
	out := []Contact{}
	it := grammar.NewValuesIterator(value, ',')
	for it.Next() {
		t := grammar.NewTokenizer(it.Value())
		contact, err := parseContact(t)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		contact.Params = parseParams(t)
		out = append(out, contact)
	}
	return out, nil
}

// ParseStarOrMultipleContactParams parses a Contact value: the literal
// "*" or a comma-separated contact list.
func ParseStarOrMultipleContactParams(value []byte) (any, error) {
	t := grammar.NewTokenizer(value)
	t.SkipIn(grammar.LWS)
	if !t.EOF() && t.Byte() == '*' {
		return Star{}, nil
	}
	return errtrace.Wrap2(ParseMultipleContactParams(value))
}
