package core_test

import (
	"testing"

	"github.com/parlorhq/parlor/pkg/core"
)

func TestRatio(t *testing.T) {
	m := core.NewMatcher(core.DefaultThreshold)

	t.Run("Identical Strings Score One", func(t *testing.T) {
		if got := m.Ratio("what are your hours", "what are your hours"); got != 1.0 {
			t.Errorf("expected 1.0, got %f", got)
		}
	})

	t.Run("Symmetric", func(t *testing.T) {
		a, b := "what r ur hours", "what are your hours"
		if m.Ratio(a, b) != m.Ratio(b, a) {
			t.Error("expected a symmetric score")
		}
	})

	t.Run("Disjoint Strings Score Low", func(t *testing.T) {
		if got := m.Ratio("abc", "xyz"); got > 0.1 {
			t.Errorf("expected near-zero score, got %f", got)
		}
	})
}

func TestBestMatch(t *testing.T) {
	m := core.NewMatcher(core.DefaultThreshold)

	t.Run("Exact Duplicate Wins With Score One", func(t *testing.T) {
		corpus := []string{"do you deliver to klcc", "what are your hours"}
		match, score, ok := m.BestMatch("what are your hours", corpus)
		if !ok {
			t.Fatal("expected a match")
		}
		if match != "what are your hours" || score != 1.0 {
			t.Errorf("got match=%q score=%f", match, score)
		}
	})

	t.Run("Abbreviated Input Clears Threshold", func(t *testing.T) {
		corpus := []string{"what are your hours", "do you deliver to klcc"}
		match, score, ok := m.BestMatch("what r ur hours", corpus)
		if !ok {
			t.Fatal("expected a match")
		}
		if match != "what are your hours" {
			t.Errorf("expected the hours question, got %q", match)
		}
		if score < 0.6 {
			t.Errorf("expected score >= 0.6, got %f", score)
		}
	})

	t.Run("Empty Corpus", func(t *testing.T) {
		if _, _, ok := m.BestMatch("anything", nil); ok {
			t.Error("expected no match on empty corpus")
		}
	})

	t.Run("Nothing Clears Threshold", func(t *testing.T) {
		if _, _, ok := m.BestMatch("zzzzzz", []string{"what are your hours"}); ok {
			t.Error("expected no match below threshold")
		}
	})

	t.Run("Tie Keeps First Corpus Entry", func(t *testing.T) {
		// Both candidates are one substitution away from the input, so they
		// tie; selection must be stable on corpus order.
		corpus := []string{"pepperoni pizza prize", "pepperoni pizza pricy"}
		match, _, ok := m.BestMatch("pepperoni pizza price", corpus)
		if !ok {
			t.Fatal("expected a match")
		}
		if match != corpus[0] {
			t.Errorf("expected the first entry, got %q", match)
		}
	})
}
