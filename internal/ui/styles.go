package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // cyan/green, titles and highlights
	ColorHighlight = "205" // magenta, selected items and borders
	ColorDanger    = "196" // red, warnings
	ColorMuted     = "241" // gray, dimmed text and hints
	ColorText      = "252" // light gray, normal text
)

// Styles contains shared style definitions used across the bar, panels,
// and overlays.
var Styles = struct {
	Title    lipgloss.Style // bold accent, main titles
	Box      lipgloss.Style // rounded border box
	Selected lipgloss.Style // highlighted items
	Muted    lipgloss.Style // dimmed text
	Normal   lipgloss.Style // normal text
	Bar      lipgloss.Style // menu bar background
	BarItem  lipgloss.Style // unfocused menu bar entry
	BarOpen  lipgloss.Style // open menu bar entry
	Disabled lipgloss.Style // disabled menu entries
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Bar: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color("236")),
	BarItem: lipgloss.NewStyle().
		Padding(0, 1),
	BarOpen: lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Disabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Faint(true),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected
	d.Styles.SelectedDesc = Styles.Selected
	d.Styles.NormalTitle = Styles.Muted
	d.Styles.NormalDesc = Styles.Muted
	return d
}
