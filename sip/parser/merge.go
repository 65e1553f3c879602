package parser

import (
	"braces.dev/errtrace"

	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/header"
)

// mergeValues concatenates the values of a repeated header in document
// order. Both sides must be lists of the same grammar; a repeated
// singular header is a multiple_definition error.
func mergeValues(existing, next any) (any, error) {
	switch ev := existing.(type) {
	case []header.Token:
		if nv, ok := next.([]header.Token); ok {
			return append(ev, nv...), nil
		}
	case []header.TokenParams:
		if nv, ok := next.([]header.TokenParams); ok {
			return append(ev, nv...), nil
		}
	case []header.MIMETypeParams:
		if nv, ok := next.([]header.MIMETypeParams); ok {
			return append(ev, nv...), nil
		}
	case []header.URIParams:
		if nv, ok := next.([]header.URIParams); ok {
			return append(ev, nv...), nil
		}
	case []header.Challenge:
		if nv, ok := next.([]header.Challenge); ok {
			return append(ev, nv...), nil
		}
	case []header.Contact:
		if nv, ok := next.([]header.Contact); ok {
			return append(ev, nv...), nil
		}
	case []header.Via:
		if nv, ok := next.([]header.Via); ok {
			return append(ev, nv...), nil
		}
	case []header.Warning:
		if nv, ok := next.([]header.Warning); ok {
			return append(ev, nv...), nil
		}
	case []header.Any:
		if nv, ok := next.([]header.Any); ok {
			return append(ev, nv...), nil
		}
	}
	return nil, errtrace.Wrap(sip.ErrMultipleDefinition)
}
