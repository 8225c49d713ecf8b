package state

// Switcher owns the state of one overlay session: the tab snapshot, the
// filter text and the highlighted tab. The selection is kept inside the
// current viewable set by every mutating method.
type Switcher struct {
	tabs         []Tab
	filter       string
	selected     int
	hasSelection bool
	matcher      Matcher
}

// New constructs an empty Switcher using the provided options.
func New(opts Options) *Switcher {
	scorer := opts.Scorer
	if scorer == nil {
		scorer = DefaultScorer
	}
	return &Switcher{
		matcher: Matcher{Scorer: scorer, IgnoreCase: opts.IgnoreCase},
	}
}

// IgnoreCase reports whether matching folds case.
func (s *Switcher) IgnoreCase() bool {
	return s.matcher.IgnoreCase
}

// Tabs returns a copy of the current snapshot.
func (s *Switcher) Tabs() []Tab {
	return CloneTabs(s.tabs)
}

// SetTabs replaces the snapshot. The host-active tab becomes the selection
// when it is viewable; otherwise a still-viewable selection is kept, and
// failing that the selection resets to the top-ranked tab.
func (s *Switcher) SetTabs(tabs []Tab) {
	s.tabs = CloneTabs(tabs)
	viewable := s.Viewable()
	if active, ok := activeTab(s.tabs); ok && indexOf(viewable, active.Position) >= 0 {
		s.selectPosition(active.Position)
		return
	}
	if s.hasSelection && indexOf(viewable, s.selected) >= 0 {
		return
	}
	s.ResetSelection()
}
