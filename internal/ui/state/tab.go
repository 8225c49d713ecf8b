package state

import "strconv"

// Tab is one entry of the host tab list. Position is zero-based and unique
// within a snapshot; the host may renumber tabs between snapshots.
type Tab struct {
	Position int
	Name     string
	Active   bool
}

// Number is the 1-based index the host exposes for the tab.
func (t Tab) Number() int {
	return t.Position + 1
}

// SearchKey is the text the filter is matched against, e.g. "3: tests".
func (t Tab) SearchKey() string {
	return strconv.Itoa(t.Number()) + ": " + t.Name
}

// Label is the text shown for the tab in the list, e.g. "3:tests".
func (t Tab) Label() string {
	return strconv.Itoa(t.Number()) + ":" + t.Name
}

// CloneTabs produces a shallow copy of the provided tabs.
func CloneTabs(tabs []Tab) []Tab {
	if len(tabs) == 0 {
		return nil
	}
	dup := make([]Tab, len(tabs))
	copy(dup, tabs)
	return dup
}

func findTab(tabs []Tab, position int) (Tab, bool) {
	for _, tab := range tabs {
		if tab.Position == position {
			return tab, true
		}
	}
	return Tab{}, false
}

func activeTab(tabs []Tab) (Tab, bool) {
	for _, tab := range tabs {
		if tab.Active {
			return tab, true
		}
	}
	return Tab{}, false
}

func indexOf(tabs []Tab, position int) int {
	for i, tab := range tabs {
		if tab.Position == position {
			return i
		}
	}
	return -1
}
