package core

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DefaultThreshold is the minimum similarity a stored question must reach to
// be accepted as the best match for an input.
const DefaultThreshold = 0.6

// Matcher scores approximate similarity between an input and a corpus of
// stored questions. Scoring is O(corpus × string length), which is fine for a
// knowledge base of this size; this is not a hot path.
type Matcher struct {
	threshold float64
	dmp       *diffmatchpatch.DiffMatchPatch
}

// NewMatcher creates a Matcher with the given acceptance threshold.
// A non-positive threshold falls back to DefaultThreshold.
func NewMatcher(threshold float64) *Matcher {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Matcher{
		threshold: threshold,
		dmp:       diffmatchpatch.New(),
	}
}

// Ratio returns a symmetric similarity score in [0,1] between a and b:
// twice the characters the minimal diff keeps in common, over the combined
// length. Identical strings score 1.0.
func (m *Matcher) Ratio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	la, lb := len([]rune(a)), len([]rune(b))
	if la+lb == 0 {
		return 1.0
	}

	diffs := m.dmp.DiffMain(a, b, false)
	var common int
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			common += len([]rune(d.Text))
		}
	}
	return 2 * float64(common) / float64(la+lb)
}

// BestMatch returns the corpus entry most similar to input, provided its score
// clears the threshold. Ties on the maximum score keep the earliest corpus
// entry; selection is stable so results are reproducible. The boolean is false
// when the corpus is empty or nothing clears the threshold.
func (m *Matcher) BestMatch(input string, corpus []string) (string, float64, bool) {
	best := ""
	bestScore := 0.0
	found := false

	for _, candidate := range corpus {
		score := m.Ratio(input, candidate)
		if score < m.threshold {
			continue
		}
		// Strict comparison keeps the first of equally-scored candidates.
		if !found || score > bestScore {
			best, bestScore, found = candidate, score, true
		}
	}
	return best, bestScore, found
}
