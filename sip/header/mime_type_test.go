package header_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/header"
)

func TestParseSingleTypeSubtypeParams(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		want    any
		wantErr error
	}{
		{
			"basic",
			"application/sdp",
			header.MIMETypeParams{
				Type:   header.MIMEType{Type: "application", Subtype: "sdp"},
				Params: header.Params{},
			},
			nil,
		},
		{
			"case normalized",
			"Application/SDP",
			header.MIMETypeParams{
				Type:   header.MIMEType{Type: "application", Subtype: "sdp"},
				Params: header.Params{},
			},
			nil,
		},
		{
			"with params",
			"text/html; charset=ISO-8859-4",
			header.MIMETypeParams{
				Type:   header.MIMEType{Type: "text", Subtype: "html"},
				Params: header.Params{"charset": "ISO-8859-4"},
			},
			nil,
		},
		{
			"empty is absent but valid",
			"  ",
			header.MIMETypeParams{Type: header.MIMEType{}, Params: header.Params{}},
			nil,
		},
		{"missing subtype", "text/", nil, sip.ErrMissingSubtype},
		{"no slash", "text", nil, sip.ErrMissingSubtype},
		{"bad type token", "te@xt/html", nil, sip.ErrInvalidToken},
		{"bad subtype token", "text/ht@ml", nil, sip.ErrInvalidToken},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.ParseSingleTypeSubtypeParams([]byte(c.input))
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("ParseSingleTypeSubtypeParams(%q) error = %v, want %v", c.input, err, c.wantErr)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("ParseSingleTypeSubtypeParams(%q) mismatch\ndiff (-got +want):\n%v", c.input, diff)
			}
		})
	}
}

func TestParseMultipleTypeSubtypeParams(t *testing.T) {
	t.Parallel()

	got, err := header.ParseMultipleTypeSubtypeParams([]byte("application/sdp;level=1, application/x-private, text/html"))
	if err != nil {
		t.Fatalf("ParseMultipleTypeSubtypeParams error = %v, want nil", err)
	}
	want := []header.MIMETypeParams{
		{Type: header.MIMEType{Type: "application", Subtype: "sdp"}, Params: header.Params{"level": "1"}},
		{Type: header.MIMEType{Type: "application", Subtype: "x-private"}, Params: header.Params{}},
		{Type: header.MIMEType{Type: "text", Subtype: "html"}, Params: header.Params{}},
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("ParseMultipleTypeSubtypeParams mismatch\ndiff (-got +want):\n%v", diff)
	}
}
