package grammar

//go:generate go tool errtrace -w .

import (
	"braces.dev/errtrace"

	"github.com/sippet/gosippet/internal/util"
	"github.com/sippet/gosippet/sip"
)

var sipPrefix = []byte("sip")

// ParseVersion parses a SIP-Version token ("SIP/2.0", case insensitive,
// LWS tolerated around the slash) at the start of s. Trailing bytes
// after the minor digit are ignored. Each malformed step yields its own
// error code.
func ParseVersion(s []byte) (sip.Version, error) {
	if len(s) < 3 || !util.CasePrefix(sipPrefix, s) {
		return sip.Version{}, errtrace.Wrap(sip.ErrMissingVersionSpec)
	}

	t := NewTokenizer(s)
	t.SkipN(3)
	t.SkipIn(LWS)
	if t.EOF() || t.Byte() != '/' {
		return sip.Version{}, errtrace.Wrap(sip.ErrMissingVersion)
	}

	t.Skip()
	majorStart := t.SkipIn(LWS)
	t.SkipTo('.')
	t.Skip()
	minorStart := t.SkipIn(LWS)
	if t.EOF() {
		return sip.Version{}, errtrace.Wrap(sip.ErrMalformedVersion)
	}

	if !IsDigit(s[majorStart]) || !IsDigit(s[minorStart]) {
		return sip.Version{}, errtrace.Wrap(sip.ErrMalformedVersionNumber)
	}

	return sip.Version{Major: s[majorStart] - '0', Minor: s[minorStart] - '0'}, nil
}
