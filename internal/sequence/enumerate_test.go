package sequence

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/gomega"
)

func TestIsRepetitionOf(t *testing.T) {
	tests := []struct {
		s, p string
		want bool
	}{
		{"ABAB", "AB", true},
		{"AB", "AB", true},
		{"ABABAB", "AB", true},
		{"ABA", "AB", false},
		{"ABBA", "AB", false},
		{"AABAAB", "AAB", true},
		{"AB", "", false},
		{"", "AB", true},
	}

	for _, tt := range tests {
		if got := IsRepetitionOf(tt.s, tt.p); got != tt.want {
			t.Errorf("IsRepetitionOf(%q, %q) = %v, want %v", tt.s, tt.p, got, tt.want)
		}
	}
}

func TestFromBits(t *testing.T) {
	g := NewWithT(t)

	g.Expect(FromBits(0)).To(BeEmpty())
	g.Expect(FromBits(1)).To(Equal("A"))
	g.Expect(FromBits(2)).To(Equal("AB"))
	g.Expect(FromBits(6)).To(Equal("AAB"))
	g.Expect(FromBits(9)).To(Equal("ABBA"))
}

func TestEnumerator(t *testing.T) {
	e := NewEnumerator()

	var skipped []Skip
	e.OnSkip = func(s Skip) { skipped = append(skipped, s) }

	got := make([]string, 10)
	for i := range got {
		got[i] = e.Next()
	}

	want := []string{"AB", "ABB", "ABA", "AAB", "ABBB", "ABBA", "ABAA", "AABB", "AABA", "AAAB"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sequences mismatch (-want +got):\n%s", diff)
	}

	wantSkips := []Skip{{Candidate: "ABAB", Base: "AB", Times: 2}}
	if diff := cmp.Diff(wantSkips, skipped); diff != "" {
		t.Errorf("skips mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumerator_NoRepetitions(t *testing.T) {
	g := NewWithT(t)
	e := NewEnumerator()

	seen := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		ab := e.Next()
		g.Expect(ab).To(ContainSubstring("B"))
		for _, prev := range seen {
			g.Expect(IsRepetitionOf(ab, prev)).To(BeFalse(), "%s repeats %s", ab, prev)
		}
		seen = append(seen, ab)
	}
}
