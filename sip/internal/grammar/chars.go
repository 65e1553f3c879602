// Package grammar implements the low-level lexical machinery of SIP
// message parsing: character classes, quoted-string handling, host:port
// splitting and the quote-aware tokenizers and iterators the header
// value parsers are built from.
//
// Everything operates on half-open byte ranges and never writes to the
// input buffer.
package grammar

// LWS is SIP linear white space: space and horizontal tab. It does not
// match newlines.
const LWS = " \t"

// IsLWSChar reports whether c is SIP linear white space.
func IsLWSChar(c byte) bool { return c == ' ' || c == '\t' }

// IsQuoteChar reports whether c starts a quoted string.
// Single quote marks are not part of the quoted-string production, but
// some peers rely on them anyway.
func IsQuoteChar(c byte) bool { return c == '"' || c == '\'' }

// IsDigit reports whether c is an ASCII digit.
func IsDigit(c byte) bool { return '0' <= c && c <= '9' }

// IsTokenChar reports whether c may appear in an RFC 2616 token:
// any byte excluding CTLs, DEL, 8-bit bytes and the separators.
func IsTokenChar(c byte) bool {
	if c >= 0x80 || c <= 0x1F || c == 0x7F {
		return false
	}
	switch c {
	case '(', ')', '<', '>', '@', ',', ';', ':', '\\', '"', '/',
		'[', ']', '?', '=', '{', '}', ' ', '\t':
		return false
	}
	return true
}

// IsToken reports whether s is a non-empty run of token characters.
func IsToken(s []byte) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if !IsTokenChar(c) {
			return false
		}
	}
	return true
}

// TrimLWS returns s with leading and trailing LWS removed.
func TrimLWS(s []byte) []byte {
	for len(s) > 0 && IsLWSChar(s[0]) {
		s = s[1:]
	}
	for len(s) > 0 && IsLWSChar(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}
