package header_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sippet/gosippet/sip"
	"github.com/sippet/gosippet/sip/header"
)

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		want    any
		wantErr error
	}{
		{"value only", "54", header.Timestamp{Value: 54}, nil},
		{"fractional", "54.21", header.Timestamp{Value: 54.21}, nil},
		{"with delay", "54.21 0.35", header.Timestamp{Value: 54.21, Delay: 0.35}, nil},
		{"bad delay ignored", "54.21 x", header.Timestamp{Value: 54.21}, nil},
		{"empty", "", nil, sip.ErrMissingTimestamp},
		{"not a number", "abc", nil, sip.ErrInvalidTimestamp},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := header.ParseTimestamp([]byte(c.input))
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("ParseTimestamp(%q) error = %v, want %v", c.input, err, c.wantErr)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("ParseTimestamp(%q) mismatch\ndiff (-got +want):\n%v", c.input, diff)
			}
		})
	}
}
