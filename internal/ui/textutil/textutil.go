// Package textutil provides unicode-aware text helpers for TUI rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// VisualWidth returns the number of terminal columns a string occupies.
// The string must not contain ANSI escape sequences; use VisualWidthStyled
// for rendered output.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the terminal columns of a string that may
// contain ANSI escape sequences.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens a string to at most maxWidth columns, appending an
// ellipsis when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	avail := maxWidth - runewidth.StringWidth(ellipsis)
	if avail < 0 {
		return ellipsis
	}
	var out []rune
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out) + ellipsis
}

// PadRightVisual pads or truncates a string to exactly targetWidth columns.
// The string must not contain ANSI escape sequences.
func PadRightVisual(s string, targetWidth int) string {
	w := runewidth.StringWidth(s)
	if w >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + runewidth.FillRight("", targetWidth-w)
}

// PadRightStyled pads a possibly styled string to targetWidth columns.
// Strings already at or past the target are returned unchanged; truncating
// inside an escape sequence would corrupt the terminal state.
func PadRightStyled(s string, targetWidth int) string {
	w := VisualWidthStyled(s)
	if w >= targetWidth {
		return s
	}
	return s + strings.Repeat(" ", targetWidth-w)
}
