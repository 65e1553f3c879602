package header

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/internal/grammar"
)

// Warning is one warning-value: `warn-code SP warn-agent SP warn-text`.
// The text is the unquoted body of the mandatory double-quoted string.
type Warning struct {
	Code  int
	Agent string
	Text  string
}

func (v Warning) String() string {
	return strconv.Itoa(v.Code) + " " + v.Agent + " " + strconv.Quote(v.Text)
}

func parseWarning(value []byte) (Warning, error) {
	t := grammar.NewTokenizer(value)
	codeStart := t.SkipIn(grammar.LWS)
	if t.EOF() {
		return Warning{}, errtrace.Wrap(sip.ErrEmptyInput)
	}
	codeEnd := t.SkipNotIn(grammar.LWS)
	code, err := strconv.Atoi(string(t.Bytes(codeStart, codeEnd)))
	if err != nil || code < 100 || code > 999 {
		return Warning{}, errtrace.Wrap(sip.ErrInvalidCode)
	}

	agentStart := t.SkipIn(grammar.LWS)
	if t.EOF() {
		return Warning{}, errtrace.Wrap(sip.ErrEmptyWarnAgent)
	}
	agentEnd := t.SkipNotIn(grammar.LWS)
	agent := string(t.Bytes(agentStart, agentEnd))

	t.SkipIn(grammar.LWS)
	if t.EOF() {
		return Warning{}, errtrace.Wrap(sip.ErrMissingWarnText)
	}
	if t.Byte() != '"' {
		return Warning{}, errtrace.Wrap(sip.ErrInvalidWarnText)
	}
	textStart := t.Pos()
	t.Skip()
	for !t.EOF() {
		if t.Byte() == '\\' {
			t.Skip()
			t.Skip()
			continue
		}
		if t.Byte() == '"' {
			break
		}
		t.Skip()
	}
	if t.EOF() {
		return Warning{}, errtrace.Wrap(sip.ErrUnclosedQString)
	}
	textEnd := t.Skip()
	text := string(grammar.Unquote(t.Bytes(textStart, textEnd)))

	return Warning{Code: code, Agent: agent, Text: text}, nil
}

// ParseMultipleWarnings parses a comma-separated warning-value list.
func ParseMultipleWarnings(value []byte) (any, error) {
	out := []Warning{}
	it := grammar.NewValuesIterator(value, ',')
	for it.Next() {
		w, err := parseWarning(it.Value())
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		out = append(out, w)
	}
	return out, nil
}
