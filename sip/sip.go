// Package sip defines the core value types produced by parsing a SIP
// message: the start line, the header collection and the closed sets of
// request methods and transport protocols.
//
// Parsing itself lives in the sip/parser package; the value parsers for
// individual header fields live in sip/header.
package sip
