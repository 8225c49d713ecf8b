package state

import (
	fuzzysearch "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"
)

// Scorer rates how well pattern matches key. Implementations must report a
// match only when every rune of pattern occurs in key in the same order,
// gaps allowed. Higher scores rank first.
type Scorer interface {
	Score(key, pattern string) (int, bool)
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(key, pattern string) (int, bool)

// Score calls f(key, pattern).
func (f ScorerFunc) Score(key, pattern string) (int, bool) {
	return f(key, pattern)
}

// DefaultScorer gates on an exact subsequence match and ranks with a
// Sublime-style scorer, so contiguous runs and word starts beat scattered
// matches.
var DefaultScorer Scorer = ScorerFunc(rankedScore)

func rankedScore(key, pattern string) (int, bool) {
	if pattern == "" {
		return 0, true
	}
	if !fuzzysearch.Match(pattern, key) {
		return 0, false
	}
	matches := fuzzy.Find(pattern, []string{key})
	if len(matches) == 0 {
		return 0, true
	}
	return matches[0].Score, true
}
