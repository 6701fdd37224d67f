package sequence

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Sequence
	}{
		{"A", Sequence{A}},
		{"AB", Sequence{A, B}},
		{"abc", Sequence{A, B, C}},
		{"BBBABBAAAAAA", Sequence{B, B, B, A, B, B, A, A, A, A, A, A}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrEmpty},
		{"ABD", ErrInvalidSymbol},
		{"A B", ErrInvalidSymbol},
	}

	for _, tt := range tests {
		_, err := Parse(tt.in)
		if !errors.Is(err, tt.want) {
			t.Errorf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestSequenceString(t *testing.T) {
	seq := MustParse("bbaC")
	if got := seq.String(); got != "BBAC" {
		t.Errorf("String() = %q, want BBAC", got)
	}
	if !seq.Uses(C) {
		t.Error("expected sequence to use C")
	}
	if MustParse("AB").Uses(C) {
		t.Error("AB should not use C")
	}
}

func TestSymbolString_Unknown(t *testing.T) {
	if got := Symbol(7).String(); got != "Symbol(7)" {
		t.Errorf("String() = %q", got)
	}
}
