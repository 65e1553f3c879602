package grammar

// unquote strips surrounding quote marks and unescapes quoted-pairs
// (RFC 2616 section 2.2). It reports failure when s is not a well
// formed quoted string.
func unquote(s []byte, strict bool) ([]byte, bool) {
	if len(s) == 0 {
		return nil, false
	}

	// Nothing to unquote.
	if !IsQuoteChar(s[0]) {
		return nil, false
	}

	// Anything other than double quotes in strict mode.
	if strict && s[0] != '"' {
		return nil, false
	}

	// No terminal quote mark.
	if len(s) < 2 || s[0] != s[len(s)-1] {
		return nil, false
	}

	quote := s[0]
	body := s[1 : len(s)-1]

	unescaped := make([]byte, 0, len(body))
	escape := false
	for _, c := range body {
		if c == '\\' && !escape {
			escape = true
			continue
		}
		if strict && !escape && c == quote {
			return nil, false
		}
		escape = false
		unescaped = append(unescaped, c)
	}

	// Terminal quote is escaped.
	if strict && escape {
		return nil, false
	}

	return unescaped, true
}

// Unquote strips the surrounding quote marks off s and unescapes any
// quoted-pair. If s is not a quoted string it is returned verbatim.
func Unquote(s []byte) []byte {
	if out, ok := unquote(s, false); ok {
		return out
	}
	return s
}

// StrictUnquote is like [Unquote] but accepts only double quotes and
// rejects bodies with unescaped embedded quotes or an escaped terminal
// quote.
func StrictUnquote(s []byte) ([]byte, bool) {
	return unquote(s, true)
}
