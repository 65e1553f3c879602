package header

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/internal/grammar"
)

// MIMEVersion is a `major "." minor` version pair.
type MIMEVersion struct {
	Major int
	Minor int
}

func (v MIMEVersion) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// ParseMIMEVersion parses a MIME-Version value. Both components are
// required.
func ParseMIMEVersion(value []byte) (any, error) {
	t := grammar.NewTokenizer(value)
	majorStart := t.SkipIn(grammar.LWS)
	if t.EOF() {
		return nil, errtrace.Wrap(sip.ErrMissingMajor)
	}
	majorEnd := t.SkipTo('.')
	major, err := strconv.Atoi(string(t.Bytes(majorStart, majorEnd)))
	if err != nil {
		return nil, errtrace.Wrap(sip.ErrMissingOrInvalidMajor)
	}

	t.Skip()
	minorStart := t.SkipIn(grammar.LWS)
	minor, err := strconv.Atoi(string(t.Bytes(minorStart, t.End())))
	if err != nil {
		return nil, errtrace.Wrap(sip.ErrInvalidMinor)
	}

	return MIMEVersion{Major: major, Minor: minor}, nil
}
