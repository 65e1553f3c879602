package sip

// Message is the structured result of parsing one SIP message: the
// start line plus the header block. Exactly one of Request or Status is
// non-nil. All fields own their bytes; the input buffer may be dropped
// as soon as parsing returns.
type Message struct {
	Request *RequestLine
	Status  *StatusLine
	Headers *Headers
}

// IsRequest reports whether the message carries a request line.
func (msg *Message) IsRequest() bool { return msg != nil && msg.Request != nil }

// IsResponse reports whether the message carries a status line.
func (msg *Message) IsResponse() bool { return msg != nil && msg.Status != nil }
