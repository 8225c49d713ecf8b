package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

func forceANSI(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestRowCombinesCurrentAndSelected(t *testing.T) {
	s := Default()
	both := s.Row(true, true)
	if both.GetForeground() != s.CurrentItem.GetForeground() {
		t.Fatalf("expected current foreground to survive, got %v", both.GetForeground())
	}
	if both.GetBackground() != s.SelectedItem.GetBackground() {
		t.Fatalf("expected selected background to survive, got %v", both.GetBackground())
	}
	if !both.GetBold() {
		t.Fatalf("expected combined row to stay bold")
	}
}

func TestRowRenderingsAreDistinct(t *testing.T) {
	forceANSI(t)
	s := Default()
	label := "2:build"
	rendered := map[string]string{
		"plain":    s.Row(false, false).Render(label),
		"current":  s.Row(true, false).Render(label),
		"selected": s.Row(false, true).Render(label),
		"both":     s.Row(true, true).Render(label),
	}
	seen := map[string]string{}
	for name, out := range rendered {
		if ansi.Strip(out) != label {
			t.Fatalf("%s: expected text %q, got %q", name, label, ansi.Strip(out))
		}
		if other, ok := seen[out]; ok {
			t.Fatalf("expected %s and %s rows to differ, both rendered %q", name, other, out)
		}
		seen[out] = name
	}
}

func TestRowFallsBackWhenStylesMissing(t *testing.T) {
	s := &Styles{SelectedItem: Default().SelectedItem}
	if got := s.Row(true, true); got != s.SelectedItem {
		t.Fatalf("expected selected style fallback, got %v", got)
	}
	if got := s.Row(false, false); got != nil {
		t.Fatalf("expected nil item style, got %v", got)
	}
}
