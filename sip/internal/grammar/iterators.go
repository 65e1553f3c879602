package grammar

import (
	"bytes"

	"github.com/sippet/gosippet/internal/util"
)

// HeadersIterator walks the name/value pairs of an already-unfolded
// header block, one logical line per header. Lines that do not look
// like a header (no colon, empty name, leading LWS, non-token bytes in
// the name) are skipped; see AssembleHeaderBlock for joining line
// continuations, this iterator does not expect any.
type HeadersIterator struct {
	lines  *StringTokenizer
	name   []byte
	values []byte
}

func NewHeadersIterator(buf []byte) *HeadersIterator {
	return &HeadersIterator{lines: NewStringTokenizer(buf, "\r\n")}
}

// Next advances the iterator to the next header, if any.
func (it *HeadersIterator) Next() bool {
	for it.lines.Next() {
		line := it.lines.Token()

		colon := bytes.IndexByte(line, ':')
		if colon < 0 {
			continue // skip malformed header
		}

		name := line[:colon]
		// If the name starts with LWS, it is an invalid line.
		// Leading LWS implies a line continuation, and these should
		// have already been joined by AssembleHeaderBlock.
		if len(name) == 0 || IsLWSChar(name[0]) {
			continue
		}

		name = TrimLWS(name)
		if !IsToken(name) {
			continue // skip malformed header
		}

		it.name = name
		it.values = TrimLWS(line[colon+1:])
		return true
	}
	return false
}

// AdvanceTo iterates from the current position looking for the header
// with the given name. The name must be lower cased.
func (it *HeadersIterator) AdvanceTo(lowercaseName string) bool {
	for it.Next() {
		if util.CaseEq(it.name, []byte(lowercaseName)) {
			return true
		}
	}
	return false
}

func (it *HeadersIterator) Name() []byte { return it.name }

func (it *HeadersIterator) Values() []byte { return it.values }

// ValuesIterator walks delimited values in a header, LWS-trimmed and
// with empty values skipped. Delimiters inside quoted strings do not
// split.
type ValuesIterator struct {
	vals  *StringTokenizer
	value []byte
}

func NewValuesIterator(buf []byte, delim byte) *ValuesIterator {
	st := NewStringTokenizer(buf, string(delim))
	st.SetQuoteChars(`'"`)
	return &ValuesIterator{vals: st}
}

// Next advances the iterator to the next non-empty value, if any.
func (it *ValuesIterator) Next() bool {
	for it.vals.Next() {
		if v := TrimLWS(it.vals.Token()); len(v) > 0 {
			it.value = v
			return true
		}
	}
	return false
}

func (it *ValuesIterator) Value() []byte { return it.value }

// GenericParametersIterator walks ';'-delimited header parameters.
// Each property splits at its first '='; both sides are LWS-trimmed and
// a quoted value is unquoted. A value with mismatched quotes loses its
// leading quote mark and is otherwise taken verbatim.
type GenericParametersIterator struct {
	props *ValuesIterator
	name  []byte
	value []byte
}

func NewGenericParametersIterator(buf []byte) *GenericParametersIterator {
	return &GenericParametersIterator{props: NewValuesIterator(buf, ';')}
}

// Next advances the iterator to the next parameter, if any.
func (it *GenericParametersIterator) Next() bool {
	if !it.props.Next() {
		return false
	}

	prop := it.props.Value()
	if eq := bytes.IndexByte(prop, '='); eq > 0 {
		it.name = TrimLWS(prop[:eq])
		it.value = TrimLWS(prop[eq+1:])
	} else {
		it.name = TrimLWS(prop)
		it.value = nil
	}

	if len(it.value) > 0 && IsQuoteChar(it.value[0]) {
		if it.value[0] != it.value[len(it.value)-1] || len(it.value) == 1 {
			// Gracefully recover from mismatching quotes.
			it.value = it.value[1:]
		} else {
			it.value = Unquote(it.value)
		}
	}
	return true
}

func (it *GenericParametersIterator) Name() []byte { return it.name }

func (it *GenericParametersIterator) Value() []byte { return it.value }

// NameValuePairsIterator walks a delimited sequence of name-value
// pairs. Each pair consists of a token name, an equals sign, and either
// a token or a quoted string; LWS is permitted around all of them.
//
// We expect properties to be formatted as one of:
//
//	name="value"
//	name='value'
//	name='\'value\''
//	name=value
//	name = value
//	name            (only when values are optional)
//
// Due to buggy implementations found in some embedded devices, a value
// with a missing close quote mark is also accepted in lenient mode.
// Malformed input invalidates the iterator: Next returns false and
// Valid reports the failure.
type NameValuePairsIterator struct {
	props          *ValuesIterator
	name           []byte
	value          []byte
	rawValue       []byte
	valid          bool
	valueIsQuoted  bool
	valuesOptional bool
	strictQuotes   bool
}

func NewNameValuePairsIterator(buf []byte, delim byte) *NameValuePairsIterator {
	return NewNameValuePairsIteratorOpts(buf, delim, false, false)
}

func NewNameValuePairsIteratorOpts(buf []byte, delim byte, valuesOptional, strictQuotes bool) *NameValuePairsIterator {
	props := NewValuesIterator(buf, delim)
	if strictQuotes {
		props.vals.SetQuoteChars(`"`)
	}
	return &NameValuePairsIterator{
		props:          props,
		valid:          true,
		valuesOptional: valuesOptional,
		strictQuotes:   strictQuotes,
	}
}

func (it *NameValuePairsIterator) isQuote(c byte) bool {
	if it.strictQuotes {
		return c == '"'
	}
	return IsQuoteChar(c)
}

// Next advances the iterator to the next pair, if any.
func (it *NameValuePairsIterator) Next() bool {
	if !it.valid || !it.props.Next() {
		return false
	}

	prop := it.props.Value()

	eq := bytes.IndexByte(prop, '=')
	if eq == 0 {
		// Malformed, no name.
		it.valid = false
		return false
	}
	if eq < 0 && !it.valuesOptional {
		// Malformed, no equals sign and values are required.
		it.valid = false
		return false
	}

	var value []byte
	if eq > 0 {
		// An equals sign inside of quote marks is malformed.
		for _, c := range prop[:eq] {
			if it.isQuote(c) {
				it.valid = false
				return false
			}
		}
		it.name = TrimLWS(prop[:eq])
		value = TrimLWS(prop[eq+1:])
		if len(value) == 0 {
			// Malformed; value is empty.
			it.valid = false
			return false
		}
	} else {
		it.name = TrimLWS(prop)
	}

	it.rawValue = value
	it.value = value
	it.valueIsQuoted = false

	if len(value) > 0 && it.isQuote(value[0]) {
		it.valueIsQuoted = true

		if it.strictQuotes {
			uq, ok := StrictUnquote(value)
			if !ok {
				it.valid = false
				return false
			}
			it.value = uq
			return true
		}

		if value[0] != value[len(value)-1] || len(value) == 1 {
			// Gracefully recover from mismatching quotes; quoted-pairs
			// are no longer unescaped and an escaped final quote goes
			// undetected.
			it.valueIsQuoted = false
			it.value = value[1:]
		} else {
			it.value = Unquote(value)
		}
	}
	return true
}

// Valid reports false after a parse error stopped the iteration.
func (it *NameValuePairsIterator) Valid() bool { return it.valid }

func (it *NameValuePairsIterator) Name() []byte { return it.name }

// Value returns the unquoted value of the current pair.
func (it *NameValuePairsIterator) Value() []byte { return it.value }

// RawValue returns the value before unquoting, if any.
func (it *NameValuePairsIterator) RawValue() []byte { return it.rawValue }

// ValueIsQuoted reports whether the current value was a quoted string.
func (it *NameValuePairsIterator) ValueIsQuoted() bool { return it.valueIsQuoted }
