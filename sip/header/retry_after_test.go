package header_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/header"
)

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		want    any
		wantErr error
	}{
		{
			"delta only",
			"18000",
			header.RetryAfter{Delta: 18000, Params: header.Params{}},
			nil,
		},
		{
			"delta and params",
			"18000;duration=3600",
			header.RetryAfter{Delta: 18000, Params: header.Params{"duration": "3600"}},
			nil,
		},
		{
			"comment",
			"120 (I'm in a meeting)",
			header.RetryAfter{Delta: 120, Comment: "I'm in a meeting", Params: header.Params{}},
			nil,
		},
		{
			"nested comment",
			"60 (maintenance (planned)) ;duration=600",
			header.RetryAfter{
				Delta:   60,
				Comment: "maintenance (planned)",
				Params:  header.Params{"duration": "600"},
			},
			nil,
		},
		{
			"comment abuts delta",
			"10(busy);duration=5",
			header.RetryAfter{Delta: 10, Comment: "busy", Params: header.Params{"duration": "5"}},
			nil,
		},
		{"empty", "", nil, sip.ErrMissingDeltaSecs},
		{"not a number", "soon", nil, sip.ErrMissingOrInvalidDeltaSecs},
		{"unclosed comment", "120 (oops", nil, sip.ErrInvalidComment},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.ParseRetryAfter([]byte(c.input))
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("ParseRetryAfter(%q) error = %v, want %v", c.input, err, c.wantErr)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("ParseRetryAfter(%q) mismatch\ndiff (-got +want):\n%v", c.input, diff)
			}
		})
	}
}
