package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient hint bar shown in leader mode.
// Displays the continuations of the buffered sequence as a compact bar.
func RenderKeybindHelp(keyHandler *KeyHandler) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	currentSeq := keyHandler.CurrentSeq()
	hints := keyHandler.Registry.Hints(currentSeq)
	if len(hints) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	helpModel := help.New()
	helpModel.Styles.ShortKey = Styles.Selected
	helpModel.Styles.ShortDesc = Styles.Muted
	helpModel.Styles.ShortSeparator = Styles.Muted

	content := Styles.Muted.Render(currentSeq) + " " + helpModel.ShortHelpView(bindings)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)
	return box.Render(content)
}
