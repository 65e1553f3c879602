package sip

import "github.com/sippet/gosippet/internal/util"

// Protocol is a Via transport protocol in its lower-case canonical form.
// Protocols outside the known set are carried verbatim, lower-cased.
type Protocol string

// Known transport protocols, from the IANA SIP parameters registry.
const (
	ProtocolAMQP  Protocol = "amqp"
	ProtocolDCCP  Protocol = "dccp"
	ProtocolDTLS  Protocol = "dtls"
	ProtocolSCTP  Protocol = "sctp"
	ProtocolSTOMP Protocol = "stomp"
	ProtocolTCP   Protocol = "tcp"
	ProtocolTLS   Protocol = "tls"
	ProtocolUDP   Protocol = "udp"
	ProtocolWS    Protocol = "ws"
	ProtocolWSS   Protocol = "wss"
)

var knownProtocols = map[Protocol]bool{
	ProtocolAMQP:  true,
	ProtocolDCCP:  true,
	ProtocolDTLS:  true,
	ProtocolSCTP:  true,
	ProtocolSTOMP: true,
	ProtocolTCP:   true,
	ProtocolTLS:   true,
	ProtocolUDP:   true,
	ProtocolWS:    true,
	ProtocolWSS:   true,
}

// ProtocolFromToken lowers tok and returns it as a [Protocol].
func ProtocolFromToken(tok []byte) Protocol {
	return Protocol(util.LCaseBytes(tok))
}

func (p Protocol) String() string { return string(p) }

// Known reports whether the protocol belongs to the closed known set.
func (p Protocol) Known() bool { return knownProtocols[p] }
