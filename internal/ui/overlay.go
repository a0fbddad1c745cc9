package ui

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal widget layered above the panels, with a dismiss key.
type Overlay struct {
	Widget  tea.Model
	Dismiss string // key that dismisses, e.g. "esc"
}

// IsDismissKey reports whether the given key string dismisses this overlay.
func (o *Overlay) IsDismissKey(key string) bool {
	return key == o.Dismiss
}

// OverlayStack manages layered overlays; the topmost receives input first.
type OverlayStack struct {
	stack []Overlay
}

// Push adds an overlay on top of the stack.
func (s *OverlayStack) Push(o Overlay) {
	s.stack = append(s.stack, o)
}

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	if len(s.stack) == 0 {
		return Overlay{}, false
	}
	top := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.stack) == 0 {
		return Overlay{}, false
	}
	return s.stack[len(s.stack)-1], true
}

// Len returns the number of overlays on the stack.
func (s *OverlayStack) Len() int {
	return len(s.stack)
}

// UpdateTop passes msg to the top overlay and keeps the returned model.
// The caller must run the returned cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.stack) == 0 {
		return nil, false
	}
	top := &s.stack[len(s.stack)-1]
	m, cmd := top.Widget.Update(msg)
	top.Widget = m
	return cmd, true
}
