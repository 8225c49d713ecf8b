package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes the Lip Gloss styles used by the switcher overlay.
type Styles struct {
	Item              *lipgloss.Style
	CurrentItem       *lipgloss.Style
	SelectedItem      *lipgloss.Style
	Error             *lipgloss.Style
	Info              *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
}

var defaultStyles = Styles{
	Item: ptr(
		lipgloss.NewStyle(),
	),
	CurrentItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")).Faint(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Faint(true).Italic(true),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Faint(true).Italic(true),
	),
}

// Default exposes the standard style set.
func Default() *Styles {
	return &defaultStyles
}

// Row picks the style for a list row. A row that is both current and
// selected keeps the current foreground on the selected background.
func (s *Styles) Row(current, selected bool) *lipgloss.Style {
	switch {
	case current && selected:
		if s.CurrentItem == nil || s.SelectedItem == nil {
			return firstNonNil(s.SelectedItem, s.CurrentItem)
		}
		combined := s.CurrentItem.Inherit(*s.SelectedItem)
		return &combined
	case selected:
		return s.SelectedItem
	case current:
		return s.CurrentItem
	default:
		return s.Item
	}
}

func firstNonNil(styles ...*lipgloss.Style) *lipgloss.Style {
	for _, style := range styles {
		if style != nil {
			return style
		}
	}
	return nil
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
