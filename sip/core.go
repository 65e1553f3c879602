package sip

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// Version is a SIP protocol version, e.g. 2.0.
type Version struct {
	Major uint8
	Minor uint8
}

func (v Version) String() string { return fmt.Sprintf("SIP/%d.%d", v.Major, v.Minor) }

// RequestLine is the start line of a SIP request.
// The Request-URI is kept as raw bytes; this layer performs no URI
// semantic validation.
type RequestLine struct {
	Method     Method
	RequestURI string
	Version    Version
}

func (rl *RequestLine) String() string {
	if rl == nil {
		return ""
	}
	return fmt.Sprintf("%s %s %s", rl.Method, rl.RequestURI, rl.Version)
}

// StatusLine is the start line of a SIP response.
type StatusLine struct {
	Version      Version
	StatusCode   int
	ReasonPhrase string
}

func (sl *StatusLine) String() string {
	if sl == nil {
		return ""
	}
	return fmt.Sprintf("%s %d %s", sl.Version, sl.StatusCode, sl.ReasonPhrase)
}

// Addr is a sent-by host with an optional port.
// Port is -1 when the input carried no port and no default applies.
// IPv6 hosts are stored without their surrounding brackets.
type Addr struct {
	Host string
	Port int
}

func (addr Addr) String() string {
	if addr.Port < 0 {
		if strings.Contains(addr.Host, ":") {
			return "[" + addr.Host + "]"
		}
		return addr.Host
	}
	return net.JoinHostPort(addr.Host, strconv.Itoa(addr.Port))
}
