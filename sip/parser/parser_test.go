package parser_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/header"
	"github.com/sippet/gosippet/sip/parser"
)

var _ = Describe("Parse", Label("sip", "parser"), func() {
	It("rejects a nil buffer", func() {
		msg, err := parser.Parse(nil)
		Expect(msg).To(BeNil())
		Expect(err).To(MatchError(sip.ErrInvalidArgument))
	})

	It("parses a request line and headers", func() {
		msg, err := parser.Parse([]byte("INVITE sip:a@b SIP/2.0\r\nCSeq: 42 INVITE\r\n\r\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(msg.IsRequest()).To(BeTrue())
		Expect(msg.Request).To(Equal(&sip.RequestLine{
			Method:     sip.MethodInvite,
			RequestURI: "sip:a@b",
			Version:    sip.Version{Major: 2, Minor: 0},
		}))
		Expect(msg.Headers.Names()).To(Equal([]sip.HeaderName{"cseq"}))

		val, ok := msg.Headers.Get("cseq")
		Expect(ok).To(BeTrue())
		Expect(val).To(Equal(header.CSeq{SeqNum: 42, Method: sip.MethodInvite}))
	})

	It("parses a status line", func() {
		msg, err := parser.Parse([]byte("SIP/2.0 404 Not Found\r\n\r\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(msg.IsResponse()).To(BeTrue())
		Expect(msg.Status).To(Equal(&sip.StatusLine{
			Version:      sip.Version{Major: 2, Minor: 0},
			StatusCode:   404,
			ReasonPhrase: "Not Found",
		}))
	})

	It("parses an empty reason phrase", func() {
		msg, err := parser.Parse([]byte("SIP/2.0 180 \r\n\r\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(msg.Status.ReasonPhrase).To(Equal(""))
	})

	It("parses Via hops", func() {
		msg, err := parser.Parse([]byte("SIP/2.0 200 OK\r\nVia: SIP/2.0/UDP host.example:1234;branch=z9hG4bK\r\n"))
		Expect(err).ToNot(HaveOccurred())

		val, ok := msg.Headers.Get("via")
		Expect(ok).To(BeTrue())
		Expect(val).To(Equal([]header.Via{{
			Version:  sip.Version{Major: 2, Minor: 0},
			Protocol: sip.ProtocolUDP,
			SentBy:   sip.Addr{Host: "host.example", Port: 1234},
			Params:   header.Params{"branch": "z9hG4bK"},
		}}))
	})

	It("parses Contact with display name and params", func() {
		msg, err := parser.Parse([]byte("SIP/2.0 200 OK\r\nContact: \"Alice\" <sip:alice@a.com>;q=0.7\r\n"))
		Expect(err).ToNot(HaveOccurred())

		val, ok := msg.Headers.Get("contact")
		Expect(ok).To(BeTrue())
		Expect(val).To(Equal([]header.Contact{{
			DisplayName: "Alice",
			Address:     "sip:alice@a.com",
			Params:      header.Params{"q": "0.7"},
		}}))
	})

	It("canonicalizes compact forms to the long form key", func() {
		long, err := parser.Parse([]byte("SIP/2.0 200 OK\r\nContact: <sip:a@b>\r\n"))
		Expect(err).ToNot(HaveOccurred())
		compact, err := parser.Parse([]byte("SIP/2.0 200 OK\r\nm: <sip:a@b>\r\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(compact).To(Equal(long))
		Expect(compact.Headers.Has("contact")).To(BeTrue())
	})

	It("parses integer headers", func() {
		msg, err := parser.Parse([]byte("SIP/2.0 200 OK\r\nContent-Length: 42\r\n"))
		Expect(err).ToNot(HaveOccurred())

		val, ok := msg.Headers.Get("content_length")
		Expect(ok).To(BeTrue())
		Expect(val).To(Equal(42))
	})

	It("fails with missing_uri when the request line has no version token", func() {
		msg, err := parser.Parse([]byte("BAD METHOD\nmalformed"))
		Expect(msg).To(BeNil())
		Expect(err).To(MatchError(sip.ErrMissingURI))
	})

	It("keeps unknown methods as lowered bytes", func() {
		msg, err := parser.Parse([]byte("BREW sip:pot@kitchen SIP/2.0\r\n\r\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(msg.Request.Method).To(Equal(sip.Method("brew")))
		Expect(msg.Request.Method.Known()).To(BeFalse())
	})

	It("unfolds line continuations", func() {
		msg, err := parser.Parse([]byte("INVITE sip:a@b SIP/2.0\r\nSubject: hello\r\n world\r\n\r\n"))
		Expect(err).ToNot(HaveOccurred())

		val, ok := msg.Headers.Get("subject")
		Expect(ok).To(BeTrue())
		Expect(val).To(Equal("hello world"))
	})

	It("treats LF and CRLF alike", func() {
		crlf, err := parser.Parse([]byte("INVITE sip:a@b SIP/2.0\r\nCSeq: 1 INVITE\r\nSubject: hi\r\n\r\n"))
		Expect(err).ToNot(HaveOccurred())
		lf, err := parser.Parse([]byte("INVITE sip:a@b SIP/2.0\nCSeq: 1 INVITE\nSubject: hi\n\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(lf).To(Equal(crlf))
	})

	It("rejects a lone CR", func() {
		msg, err := parser.Parse([]byte("INVITE sip:a@b SIP/2.0\rCSeq: 1 INVITE\r\n"))
		Expect(msg).To(BeNil())
		Expect(err).To(MatchError(sip.ErrInvalidLineBreak))
	})

	It("merges repeated multi-value headers in document order", func() {
		split, err := parser.Parse([]byte("SIP/2.0 200 OK\r\nAllow: INVITE\r\nAllow: ACK, BYE\r\n"))
		Expect(err).ToNot(HaveOccurred())
		joined, err := parser.Parse([]byte("SIP/2.0 200 OK\r\nAllow: INVITE, ACK, BYE\r\n"))
		Expect(err).ToNot(HaveOccurred())

		val, ok := split.Headers.Get("allow")
		Expect(ok).To(BeTrue())
		Expect(val).To(Equal([]header.Token{"INVITE", "ACK", "BYE"}))
		Expect(split).To(Equal(joined))
	})

	It("fails with multiple_definition on a repeated singular header", func() {
		msg, err := parser.Parse([]byte("SIP/2.0 200 OK\r\nCSeq: 1 ACK\r\nCSeq: 2 BYE\r\n"))
		Expect(msg).To(BeNil())
		Expect(err).To(MatchError(sip.ErrMultipleDefinition))
	})

	It("keeps unknown headers raw, merging repeats", func() {
		msg, err := parser.Parse([]byte("SIP/2.0 200 OK\r\nX-Custom: foo\r\nX-Custom: bar\r\n"))
		Expect(err).ToNot(HaveOccurred())

		val, ok := msg.Headers.Get("X-Custom")
		Expect(ok).To(BeTrue())
		Expect(val).To(Equal([]header.Any{"foo", "bar"}))
	})

	It("skips malformed header lines", func() {
		msg, err := parser.Parse([]byte("SIP/2.0 200 OK\r\njunk line\r\nMax-Forwards: 70\r\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(msg.Headers.Len()).To(Equal(1))

		val, ok := msg.Headers.Get("max_forwards")
		Expect(ok).To(BeTrue())
		Expect(val).To(Equal(70))
	})

	It("aborts on a malformed value of a known header", func() {
		msg, err := parser.Parse([]byte("SIP/2.0 200 OK\r\nContent-Length: abc\r\n"))
		Expect(msg).To(BeNil())
		Expect(err).To(MatchError(sip.ErrInvalidDigits))
	})

	It("never parses past the blank line", func() {
		msg, err := parser.Parse([]byte("SIP/2.0 200 OK\r\nContent-Length: 5\r\n\r\nFake: header\r\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(msg.Headers.Has("Fake")).To(BeFalse())
		Expect(msg.Headers.Len()).To(Equal(1))
	})

	It("preserves document order across header names", func() {
		msg, err := parser.Parse([]byte("SIP/2.0 200 OK\r\nVia: SIP/2.0/UDP a.example\r\nCSeq: 1 ACK\r\nAllow: BYE\r\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(msg.Headers.Names()).To(Equal([]sip.HeaderName{"via", "cseq", "allow"}))
	})

	It("honors a custom header parser", func() {
		msg, err := parser.Parse(
			[]byte("SIP/2.0 200 OK\r\nX-Count: 7\r\n"),
			parser.WithHeaderParser("X-Count", header.ParseSingleInteger),
		)
		Expect(err).ToNot(HaveOccurred())

		val, ok := msg.Headers.Get("x_count")
		Expect(ok).To(BeTrue())
		Expect(val).To(Equal(7))
	})

	It("parses a full request end to end", func() {
		raw := "INVITE sip:bob@biloxi.com SIP/2.0\r\n" +
			"Via: SIP/2.0/UDP pc33.atlanta.com;branch=z9hG4bKnashds8\r\n" +
			"Max-Forwards: 70\r\n" +
			"To: Bob <sip:bob@biloxi.com>\r\n" +
			"From: Alice <sip:alice@atlanta.com>;tag=1928301774\r\n" +
			"i: a84b4c76e66710@pc33.atlanta.com\r\n" +
			"CSeq: 314159 INVITE\r\n" +
			"Contact: <sip:alice@pc33.atlanta.com>\r\n" +
			"Content-Type: application/sdp\r\n" +
			"Content-Length: 142\r\n" +
			"\r\n" +
			"v=0\r\n"
		msg, err := parser.ParseString(raw)
		Expect(err).ToNot(HaveOccurred())
		Expect(msg.Request.Method).To(Equal(sip.MethodInvite))
		Expect(msg.Headers.Names()).To(Equal([]sip.HeaderName{
			"via", "max_forwards", "to", "from", "call_id",
			"cseq", "contact", "content_type", "content_length",
		}))

		from, _ := msg.Headers.Get("from")
		Expect(from).To(Equal(header.Contact{
			DisplayName: "Alice",
			Address:     "sip:alice@atlanta.com",
			Params:      header.Params{"tag": "1928301774"},
		}))
		callID, _ := msg.Headers.Get("call_id")
		Expect(callID).To(Equal(header.Token("a84b4c76e66710@pc33.atlanta.com")))
	})
})
