package header

import (
	"time"

	"braces.dev/errtrace"

	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/internal/grammar"
)

// DateTime is a calendar decomposition of a header date, normalized to
// UTC with microsecond resolution.
type DateTime struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
	// Microsecond holds the value and a display precision hint: the
	// digit count 5 when the value is non-zero, 0 otherwise.
	Microsecond [2]int
	UTCOffset   int
	STDOffset   int
	TimeZone    string
	ZoneAbbr    string
}

// Date strings come in the three formats RFC 2616 accepts: RFC 1123
// (preferred), RFC 850 and ANSI C asctime.
var dateLayouts = []string{time.RFC1123, time.RFC850, time.ANSIC}

// ParseDate parses an RFC 2616 date string into a [DateTime] in UTC.
func ParseDate(value []byte) (any, error) {
	v := grammar.TrimLWS(value)
	if len(v) == 0 {
		return nil, errtrace.Wrap(sip.ErrEmptyDate)
	}

	var parsed time.Time
	ok := false
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, string(v)); err == nil {
			parsed = t
			ok = true
			break
		}
	}
	if !ok {
		return nil, errtrace.Wrap(sip.ErrInvalidDate)
	}

	parsed = parsed.UTC()
	usec := parsed.Nanosecond() / int(time.Microsecond)
	precision := 0
	if usec != 0 {
		precision = 5
	}

	return DateTime{
		Year:        parsed.Year(),
		Month:       int(parsed.Month()),
		Day:         parsed.Day(),
		Hour:        parsed.Hour(),
		Minute:      parsed.Minute(),
		Second:      parsed.Second(),
		Microsecond: [2]int{usec, precision},
		TimeZone:    "Etc/UTC",
		ZoneAbbr:    "UTC",
	}, nil
}
