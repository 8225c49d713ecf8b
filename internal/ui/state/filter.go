package state

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"
)

// Matcher scores tabs against filter text.
type Matcher struct {
	Scorer     Scorer
	IgnoreCase bool
}

// Score rates tab against filter. An empty filter matches every tab with the
// same score.
func (m Matcher) Score(tab Tab, filter string) (int, bool) {
	if filter == "" {
		return 0, true
	}
	key := tab.SearchKey()
	if m.IgnoreCase {
		key = strings.ToLower(key)
		filter = strings.ToLower(filter)
	}
	scorer := m.Scorer
	if scorer == nil {
		scorer = DefaultScorer
	}
	return scorer.Score(key, filter)
}

type rankedTab struct {
	tab   Tab
	score int
}

// Viewable returns the tabs matching filter, best score first. Equal scores
// keep ascending position order. The result is rebuilt on every call.
func (m Matcher) Viewable(tabs []Tab, filter string) []Tab {
	ranked := make([]rankedTab, 0, len(tabs))
	for _, tab := range tabs {
		score, ok := m.Score(tab, filter)
		if !ok {
			continue
		}
		ranked = append(ranked, rankedTab{tab: tab, score: score})
	}
	slices.SortStableFunc(ranked, func(a, b rankedTab) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.tab.Position, b.tab.Position)
	})
	out := make([]Tab, len(ranked))
	for i, r := range ranked {
		out[i] = r.tab
	}
	return out
}

// Filter returns the current filter text.
func (s *Switcher) Filter() string {
	return s.filter
}

// Viewable returns the current snapshot ranked against the filter text.
func (s *Switcher) Viewable() []Tab {
	return s.matcher.Viewable(s.tabs, s.filter)
}

// AppendFilter appends r to the filter text and resets the selection.
func (s *Switcher) AppendFilter(r rune) bool {
	if r == utf8.RuneError {
		return false
	}
	s.filter += string(r)
	s.ResetSelection()
	return true
}

// DeleteFilterRune removes the last rune of the filter text and resets the
// selection. It reports false, leaving the selection alone, when the filter
// is already empty.
func (s *Switcher) DeleteFilterRune() bool {
	if s.filter == "" {
		return false
	}
	_, size := utf8.DecodeLastRuneInString(s.filter)
	s.filter = s.filter[:len(s.filter)-size]
	s.ResetSelection()
	return true
}
