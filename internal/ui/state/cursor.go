package state

// Selected returns the highlighted tab position, if any.
func (s *Switcher) Selected() (int, bool) {
	return s.selected, s.hasSelection
}

// IsSelected reports whether position is the highlighted tab.
func (s *Switcher) IsSelected(position int) bool {
	return s.hasSelection && s.selected == position
}

// SelectedTab looks up the highlighted tab in the snapshot.
func (s *Switcher) SelectedTab() (Tab, bool) {
	if !s.hasSelection {
		return Tab{}, false
	}
	return findTab(s.tabs, s.selected)
}

// ResetSelection highlights the top-ranked viewable tab, or clears the
// selection when nothing matches.
func (s *Switcher) ResetSelection() {
	tabs := s.Viewable()
	if len(tabs) == 0 {
		s.clearSelection()
		return
	}
	s.selectPosition(tabs[0].Position)
}

// SelectDown moves to the next viewable tab, wrapping to the first one when
// the selection is last, missing or stale.
func (s *Switcher) SelectDown() bool {
	return s.moveSelection(1)
}

// SelectUp moves to the previous viewable tab, wrapping to the last one when
// the selection is first, missing or stale.
func (s *Switcher) SelectUp() bool {
	return s.moveSelection(-1)
}

// moveSelection recomputes the ranked view on every call, so it stays
// correct when the order changed since the previous move.
func (s *Switcher) moveSelection(delta int) bool {
	tabs := s.Viewable()
	n := len(tabs)
	if n == 0 {
		return false
	}
	old, had := s.selected, s.hasSelection
	idx := -1
	if s.hasSelection {
		idx = indexOf(tabs, s.selected)
	}
	var next int
	switch {
	case idx < 0 && delta > 0:
		next = 0
	case idx < 0:
		next = n - 1
	default:
		next = ((idx+delta)%n + n) % n
	}
	s.selectPosition(tabs[next].Position)
	return !had || old != s.selected
}

func (s *Switcher) selectPosition(position int) {
	s.selected = position
	s.hasSelection = true
}

func (s *Switcher) clearSelection() {
	s.selected = 0
	s.hasSelection = false
}
