// Package util provides small byte and string helpers shared across
// the module. Case folding is ASCII-only: SIP tokens never carry
// locale-sensitive case.
package util

import "github.com/intuitivelabs/bytescase"

// LCaseBytes returns a lower-cased copy of s.
func LCaseBytes(s []byte) []byte {
	dst := make([]byte, len(s))
	_ = bytescase.ToLower(s, dst)
	return dst
}

// LCaseByte lowers a single ASCII byte.
func LCaseByte(b byte) byte { return bytescase.ByteToLower(b) }

// CaseEq reports whether s1 and s2 are equal under ASCII case folding.
func CaseEq(s1, s2 []byte) bool { return bytescase.CmpEq(s1, s2) }

// CasePrefix reports whether s starts with prefix under ASCII case
// folding.
func CasePrefix(prefix, s []byte) bool {
	_, ok := bytescase.Prefix(prefix, s)
	return ok
}
