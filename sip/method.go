package sip

import "github.com/sippet/gosippet/internal/util"

// Method is a SIP request method in its lower-case canonical form.
// Methods outside the known set are carried verbatim, lower-cased.
type Method string

// Known request methods, from the IANA SIP parameters registry.
const (
	MethodAck       Method = "ack"
	MethodBye       Method = "bye"
	MethodCancel    Method = "cancel"
	MethodInfo      Method = "info"
	MethodInvite    Method = "invite"
	MethodMessage   Method = "message"
	MethodNotify    Method = "notify"
	MethodOptions   Method = "options"
	MethodPrack     Method = "prack"
	MethodPublish   Method = "publish"
	MethodPull      Method = "pull"
	MethodPush      Method = "push"
	MethodRefer     Method = "refer"
	MethodRegister  Method = "register"
	MethodStore     Method = "store"
	MethodSubscribe Method = "subscribe"
	MethodUpdate    Method = "update"
)

var knownMethods = map[Method]bool{
	MethodAck:       true,
	MethodBye:       true,
	MethodCancel:    true,
	MethodInfo:      true,
	MethodInvite:    true,
	MethodMessage:   true,
	MethodNotify:    true,
	MethodOptions:   true,
	MethodPrack:     true,
	MethodPublish:   true,
	MethodPull:      true,
	MethodPush:      true,
	MethodRefer:     true,
	MethodRegister:  true,
	MethodStore:     true,
	MethodSubscribe: true,
	MethodUpdate:    true,
}

// MethodFromToken lowers tok and returns it as a [Method].
// The result compares equal to one of the Method constants when the
// token names a known method.
func MethodFromToken(tok []byte) Method {
	return Method(util.LCaseBytes(tok))
}

func (m Method) String() string { return string(m) }

// Known reports whether the method belongs to the closed known set.
func (m Method) Known() bool { return knownMethods[m] }
