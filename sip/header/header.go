// Package header implements the value parsers for the SIP header
// fields defined in RFC 3261 and its companions.
//
// Each grammar family has a parse function with the uniform signature
// `func(value []byte) (any, error)`. A single registry table binds the
// canonical header names to their grammar and compact single-letter
// form; the table is resolved once at package initialization.
package header

//go:generate go tool errtrace -w .

import (
	"github.com/sippet/gosippet/internal/util"
	"github.com/sippet/gosippet/sip"
)

// ParseFunc parses one header value byte range into its structured
// representation, or fails with a [sip.Error] code.
type ParseFunc func(value []byte) (any, error)

type entry struct {
	name    sip.HeaderName
	compact byte
	parse   ParseFunc
}

// The registry lists every known header once: canonical snake_case
// name, optional compact-form letter, grammar family. Kept in
// lexicographical order of the canonical names.
var registry = []entry{
	{"accept", 0, ParseMultipleTypeSubtypeParams},
	{"accept_encoding", 0, ParseMultipleTokenParams},
	{"accept_language", 0, ParseMultipleTokenParams},
	{"alert_info", 0, ParseMultipleURIParams},
	{"allow", 0, ParseMultipleTokens},
	{"allow_events", 'u', ParseMultipleTokens},
	{"authentication_info", 0, ParseOnlyAuthParams},
	{"authorization", 0, ParseSchemeAndAuthParams},
	{"call_id", 'i', ParseSingleToken},
	{"call_info", 0, ParseMultipleURIParams},
	{"contact", 'm', ParseStarOrMultipleContactParams},
	{"content_disposition", 0, ParseSingleTokenParams},
	{"content_encoding", 'e', ParseMultipleTokens},
	{"content_language", 0, ParseMultipleTokens},
	{"content_length", 'l', ParseSingleInteger},
	{"content_type", 'c', ParseSingleTypeSubtypeParams},
	{"cseq", 0, ParseCSeq},
	{"date", 0, ParseDate},
	{"error_info", 0, ParseMultipleURIParams},
	{"event", 'o', ParseSingleTokenParams},
	{"expires", 0, ParseSingleInteger},
	{"from", 'f', ParseSingleContactParams},
	{"in_reply_to", 0, ParseMultipleTokens},
	{"max_forwards", 0, ParseSingleInteger},
	{"mime_version", 0, ParseMIMEVersion},
	{"min_expires", 0, ParseSingleInteger},
	{"organization", 0, ParseTrimmedText},
	{"priority", 0, ParseSingleToken},
	{"proxy_authenticate", 0, ParseSchemeAndAuthParams},
	{"proxy_authorization", 0, ParseSchemeAndAuthParams},
	{"proxy_require", 0, ParseMultipleTokens},
	{"reason", 0, ParseMultipleTokenParams},
	{"record_route", 0, ParseMultipleContactParams},
	{"refer_to", 'r', ParseSingleContactParams},
	{"referred_by", 'b', ParseSingleContactParams},
	{"reply_to", 0, ParseSingleContactParams},
	{"require", 0, ParseMultipleTokens},
	{"retry_after", 0, ParseRetryAfter},
	{"route", 0, ParseMultipleContactParams},
	{"server", 0, ParseTrimmedText},
	{"session_expires", 'x', ParseSingleTokenParams},
	{"subject", 's', ParseTrimmedText},
	{"subscription_state", 0, ParseSingleTokenParams},
	{"supported", 'k', ParseMultipleTokens},
	{"timestamp", 0, ParseTimestamp},
	{"to", 't', ParseSingleContactParams},
	{"unsupported", 0, ParseMultipleTokens},
	{"user_agent", 0, ParseTrimmedText},
	{"via", 'v', ParseMultipleVias},
	{"warning", 0, ParseMultipleWarnings},
	{"www_authenticate", 0, ParseSchemeAndAuthParams},
}

var (
	byName    = make(map[sip.HeaderName]*entry, len(registry))
	byCompact = make(map[byte]*entry)
)

func init() {
	for i := range registry {
		e := &registry[i]
		byName[e.name] = e
		if e.compact != 0 {
			byCompact[e.compact] = e
		}
	}
}

// CanonicName converts a header name to its canonical form: lower case
// with '-' mapped to '_'. Compact single-letter names expand to the
// full canonical name of the header they alias.
func CanonicName[T ~string | ~[]byte](name T) sip.HeaderName {
	if len(name) == 1 {
		if e, ok := byCompact[util.LCaseByte(name[0])]; ok {
			return e.name
		}
	}
	canon := make([]byte, len(name))
	for i := 0; i < len(name); i++ {
		if name[i] == '-' {
			canon[i] = '_'
		} else {
			canon[i] = util.LCaseByte(name[i])
		}
	}
	return sip.HeaderName(canon)
}

// Lookup resolves a raw header name against the registry. For a known
// header it returns the canonical name and its parse function. For an
// unknown header it returns the name verbatim and a nil ParseFunc.
func Lookup(name []byte) (sip.HeaderName, ParseFunc, bool) {
	if len(name) == 1 {
		if e, ok := byCompact[util.LCaseByte(name[0])]; ok {
			return e.name, e.parse, true
		}
	}
	if e, ok := byName[CanonicName(name)]; ok {
		return e.name, e.parse, true
	}
	return sip.HeaderName(name), nil, false
}

// Any carries the raw, LWS-trimmed value of a header that has no
// registered parser.
type Any string

func (v Any) String() string { return string(v) }
