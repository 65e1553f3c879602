package header

import "github.com/sippet/gosippet/sip/internal/grammar"

// ParseTrimmedText returns the LWS-trimmed raw value (Subject,
// Organization, Server, User-Agent). Bytes are ISO-8859-1 code units;
// no UTF-8 decoding happens here.
func ParseTrimmedText(value []byte) (any, error) {
	return string(grammar.TrimLWS(value)), nil
}
