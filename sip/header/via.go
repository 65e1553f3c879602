package header

import (
	"braces.dev/errtrace"

	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/internal/grammar"
)

// Via is one Via hop: protocol version, transport protocol, the
// sent-by address and the via-params. When the sent-by carries no
// explicit port, the transport default applies (5060 for udp/tcp, 5061
// for tls, 0 otherwise). IPv6 hosts lose their brackets.
type Via struct {
	Version  sip.Version
	Protocol sip.Protocol
	SentBy   sip.Addr
	Params   Params
}

func (v Via) String() string {
	return v.Version.String() + "/" + string(v.Protocol) + " " + v.SentBy.String()
}

func parseVia(value []byte) (Via, error) {
	t := grammar.NewTokenizer(value)
	verStart := t.SkipIn(grammar.LWS)
	t.SkipTo('/')
	t.Skip()
	if t.EOF() {
		return Via{}, errtrace.Wrap(sip.ErrUnknownVersion)
	}
	verEnd := t.SkipTo('/')
	ver, err := grammar.ParseVersion(t.Bytes(verStart, verEnd))
	if err != nil || ver.Major < 2 {
		return Via{}, errtrace.Wrap(sip.ErrUnknownVersion)
	}

	protoStart := t.Skip()
	if t.EOF() {
		return Via{}, errtrace.Wrap(sip.ErrMissingSentProtocol)
	}
	protoEnd := t.SkipNotIn(grammar.LWS)
	proto := sip.ProtocolFromToken(t.Bytes(protoStart, protoEnd))

	sentByStart := t.SkipIn(grammar.LWS)
	if t.EOF() {
		return Via{}, errtrace.Wrap(sip.ErrMissingSentBy)
	}
	sentByEnd := t.SkipTo(';')
	sentBy := grammar.TrimLWS(t.Bytes(sentByStart, sentByEnd))
	if len(sentBy) == 0 {
		return Via{}, errtrace.Wrap(sip.ErrMissingSentBy)
	}

	host, port, ok := grammar.SplitHostPort(sentBy)
	if !ok || len(host) == 0 {
		return Via{}, errtrace.Wrap(sip.ErrInvalidSentBy)
	}
	if port == -1 {
		switch proto {
		case sip.ProtocolUDP, sip.ProtocolTCP:
			port = 5060
		case sip.ProtocolTLS:
			port = 5061
		default:
			port = 0
		}
	}
	if host[0] == '[' {
		// remove brackets from IPv6 addresses
		host = host[1 : len(host)-1]
	}

	return Via{
		Version:  ver,
		Protocol: proto,
		SentBy:   sip.Addr{Host: string(host), Port: port},
		Params:   parseParams(t),
	}, nil
}

// ParseMultipleVias parses a comma-separated list of Via hops.
func ParseMultipleVias(value []byte) (any, error) {
	out := []Via{}
	it := grammar.NewValuesIterator(value, ',')
	for it.Next() {
		hop, err := parseVia(it.Value())
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		out = append(out, hop)
	}
	return out, nil
}
