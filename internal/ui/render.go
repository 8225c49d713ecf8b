package ui

import (
	"github.com/atomicstack/tmux-tab-switcher/internal/theme"
	"github.com/atomicstack/tmux-tab-switcher/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
)

const (
	promptMarker      = ">"
	filterPlaceholder = "(filter by index or name)"
)

// Frame is the styled projection of the switcher: the prompt line and one
// row per viewable tab in rank order. Selected is the row index of the
// selection, or -1.
type Frame struct {
	Prompt   string
	Rows     []string
	Selected int
}

// Render projects sw onto styled lines without changing it.
func Render(sw *state.Switcher, styles *theme.Styles) Frame {
	if styles == nil {
		styles = &theme.Styles{}
	}
	frame := Frame{Selected: -1}

	text, textStyle := sw.Filter(), styles.Filter
	if text == "" {
		text, textStyle = filterPlaceholder, styles.FilterPlaceholder
	}
	frame.Prompt = render(styles.FilterPrompt, promptMarker) + " " + render(textStyle, text)

	viewable := sw.Viewable()
	frame.Rows = make([]string, 0, len(viewable))
	for i, tab := range viewable {
		selected := sw.IsSelected(tab.Position)
		if selected {
			frame.Selected = i
		}
		frame.Rows = append(frame.Rows, render(styles.Row(tab.Active, selected), tab.Label()))
	}
	return frame
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}
