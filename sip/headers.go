package sip

import "iter"

// HeaderName identifies a header in the parse result. Known headers use
// the canonical snake_case form ("content_length"); unknown headers keep
// their raw name bytes as they appeared on the wire.
type HeaderName string

// Headers is an insertion-ordered map of header name to parsed value.
//
// The value type depends on the header grammar: comma-list grammars
// produce slices (e.g. []header.Via), singular grammars produce a
// scalar or a struct (e.g. header.CSeq), and unregistered headers
// produce a one-element []header.Any.
type Headers struct {
	names  []HeaderName
	values map[HeaderName]any
}

func NewHeaders() *Headers {
	return &Headers{values: make(map[HeaderName]any)}
}

func (h *Headers) Len() int {
	if h == nil {
		return 0
	}
	return len(h.names)
}

func (h *Headers) Has(name HeaderName) bool {
	if h == nil {
		return false
	}
	_, ok := h.values[name]
	return ok
}

// Get returns the value stored under name.
func (h *Headers) Get(name HeaderName) (any, bool) {
	if h == nil {
		return nil, false
	}
	v, ok := h.values[name]
	return v, ok
}

// Set stores value under name, keeping the first-seen position when the
// name is already present.
func (h *Headers) Set(name HeaderName, value any) {
	if _, ok := h.values[name]; !ok {
		h.names = append(h.names, name)
	}
	h.values[name] = value
}

// Names returns the header names in document order.
func (h *Headers) Names() []HeaderName {
	if h == nil {
		return nil
	}
	names := make([]HeaderName, len(h.names))
	copy(names, h.names)
	return names
}

// All iterates name/value pairs in document order.
func (h *Headers) All() iter.Seq2[HeaderName, any] {
	return func(yield func(HeaderName, any) bool) {
		if h == nil {
			return
		}
		for _, name := range h.names {
			if !yield(name, h.values[name]) {
				return
			}
		}
	}
}
