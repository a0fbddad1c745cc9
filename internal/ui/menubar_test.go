package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"editkit/internal/action"
	"editkit/internal/menu"
)

func specialKey(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func newTestMenu(t *testing.T) (*menu.AbstractMenu, *action.Registry) {
	t.Helper()
	actions := action.NewRegistry()
	actions.Register("file.new", func() bool { return true })
	actions.Register("file.open", func() bool { return true })
	actions.Register("view.toggle_grid", func() bool { return true })
	actions.SetChecked("view.toggle_grid", true)
	actions.SetLabel("file.new", "New")
	actions.SetLabel("file.open", "Open...")

	root := menu.NewAbstractMenu("")
	file := root.CreateMenu("File")
	file.AddAction("file.new", 0, 0)
	file.AddAction("file.open", 0, 1)
	view := root.CreateMenu("View")
	view.AddAction("view.toggle_grid", 0, 0)
	return root, actions
}

func TestMenuBarBuilder_Tree(t *testing.T) {
	root, actions := newTestMenu(t)
	bar := NewMenuBar(root, actions)
	bar.Open(0)

	tops := bar.topLevel()
	if len(tops) != 2 {
		t.Fatalf("top level menus = %d, want 2", len(tops))
	}
	if tops[0].name != "File" || tops[1].name != "View" {
		t.Errorf("top names = %q, %q", tops[0].name, tops[1].name)
	}
	if len(tops[0].entries) != 2 {
		t.Errorf("File entries = %d, want 2", len(tops[0].entries))
	}
}

func TestMenuBarBuilder_DropsDanglingSeparators(t *testing.T) {
	b := &MenuBarBuilder{}
	b.BeginMenu("File")
	b.Separator()
	b.Action("file.new")
	b.Separator()
	b.Separator()
	b.Action("file.open")
	b.EndMenu()

	entries := b.root.entries[0].sub.entries
	kinds := make([]entryKind, len(entries))
	for i, e := range entries {
		kinds[i] = e.kind
	}
	want := []entryKind{entryAction, entrySeparator, entryAction}
	if len(kinds) != len(want) {
		t.Fatalf("entries = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("entry %d = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestMenuBar_EnterInvokesAction(t *testing.T) {
	root, actions := newTestMenu(t)
	var ran bool
	actions.Register("file.new", func() bool {
		ran = true
		return true
	})
	bar := NewMenuBar(root, actions)
	bar.Open(0)

	consumed, invoked := bar.HandleKey(specialKey(tea.KeyEnter))
	if !consumed || invoked != "file.new" {
		t.Fatalf("enter: consumed=%v invoked=%q", consumed, invoked)
	}
	if !ran {
		t.Error("expected menu selection to invoke the action")
	}
	if bar.IsOpen() {
		t.Error("invoking an action should close the bar")
	}
}

func TestMenuBar_ArrowNavigation(t *testing.T) {
	root, actions := newTestMenu(t)
	bar := NewMenuBar(root, actions)
	bar.Open(0)

	bar.HandleKey(specialKey(tea.KeyDown))
	_, invoked := bar.HandleKey(specialKey(tea.KeyEnter))
	if invoked != "file.open" {
		t.Errorf("down+enter invoked %q, want file.open", invoked)
	}

	bar.Open(0)
	bar.HandleKey(specialKey(tea.KeyRight))
	_, invoked = bar.HandleKey(specialKey(tea.KeyEnter))
	if invoked != "view.toggle_grid" {
		t.Errorf("right+enter invoked %q, want view.toggle_grid", invoked)
	}
}

func TestMenuBar_EscCloses(t *testing.T) {
	root, actions := newTestMenu(t)
	bar := NewMenuBar(root, actions)
	bar.Open(0)

	consumed, _ := bar.HandleKey(specialKey(tea.KeyEsc))
	if !consumed || bar.IsOpen() {
		t.Error("esc should close the open bar")
	}
}

func TestMenuBar_ViewShowsLabelsAndCheckmark(t *testing.T) {
	root, actions := newTestMenu(t)
	bar := NewMenuBar(root, actions)
	bar.Open(1) // View menu

	out := bar.View(80)
	if !strings.Contains(out, "File") || !strings.Contains(out, "View") {
		t.Errorf("bar line missing menu names:\n%s", out)
	}
	if !strings.Contains(out, "✓") {
		t.Errorf("checked toggle missing check mark:\n%s", out)
	}
	// No explicit label; the key prettifies to its last segment.
	if !strings.Contains(out, "Toggle grid") {
		t.Errorf("dropdown missing prettified label:\n%s", out)
	}
}

func TestMenuBar_ViewPadsBarToWidth(t *testing.T) {
	// Force a color-capable profile so the bar segments carry real
	// escape sequences, as they do in a terminal.
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI256)
	defer lipgloss.SetColorProfile(prev)

	root, actions := newTestMenu(t)
	bar := NewMenuBar(root, actions)
	bar.Open(0)

	first := strings.SplitN(bar.View(40), "\n", 2)[0]
	if w := lipgloss.Width(first); w != 40 {
		t.Errorf("bar line width = %d, want 40", w)
	}
}

func TestMenuBar_RebuildRunsAboutToShow(t *testing.T) {
	actions := action.NewRegistry()
	root := menu.NewAbstractMenu("")
	file := root.CreateMenu("File")
	calls := 0
	file.SetOnAboutToShow(func(m *menu.AbstractMenu) {
		calls++
	})

	bar := NewMenuBar(root, actions)
	bar.Open(0)
	bar.Close()
	bar.Open(0)
	if calls != 2 {
		t.Errorf("about-to-show ran %d times, want once per open", calls)
	}
}
