package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

// View implements tea.Model. The frame is rebuilt only after an update that
// asked for a redraw; otherwise the previous frame is returned unchanged.
func (m *Model) View() string {
	if m.dirty || m.frame == "" {
		m.frame = m.buildFrame()
		m.dirty = false
	}
	return m.frame
}

func (m *Model) buildFrame() string {
	frame := Render(m.switcher, m.styles)
	lines := make([]string, 0, len(frame.Rows)+4)
	lines = append(lines, frame.Prompt)

	switch {
	case len(frame.Rows) > 0:
		lines = append(lines, visibleRows(frame.Rows, frame.Selected, m.maxVisibleRows())...)
	case m.switcher.Filter() != "":
		lines = append(lines, render(m.styles.Info, fmt.Sprintf("no tabs match %q", m.switcher.Filter())))
	default:
		lines = append(lines, render(m.styles.Info, "(no tabs)"))
	}

	if m.errMsg != "" {
		lines = append(lines, render(m.styles.Error, "Error: "+m.errMsg))
	}
	if m.showFooter {
		m.help.Width = m.width
		lines = append(lines, "", render(m.styles.Footer, m.help.View(m.keys)))
	}
	return strings.Join(applyWidth(lines, m.width), "\n")
}

// maxVisibleRows is the number of tab rows that fit the popup height, or -1
// when the height is unknown.
func (m *Model) maxVisibleRows() int {
	if m.height <= 0 {
		return -1
	}
	used := 1 // prompt
	if m.errMsg != "" {
		used++
	}
	if m.showFooter {
		used += 2
	}
	if remain := m.height - used; remain > 1 {
		return remain
	}
	return 1
}

// visibleRows windows rows to limit entries, scrolled just far enough that
// the selected row is on screen.
func visibleRows(rows []string, selected, limit int) []string {
	if limit <= 0 || len(rows) <= limit {
		return rows
	}
	start := 0
	if selected >= limit {
		start = selected - limit + 1
	}
	return rows[start : start+limit]
}

func applyWidth(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}
	result := make([]string, len(lines))
	for i, line := range lines {
		if ansi.StringWidth(line) > width {
			line = truncate.StringWithTail(line, uint(width), "…")
		}
		result[i] = line
	}
	return result
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.dirty = true
	return nil
}
