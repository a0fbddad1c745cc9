package editor

import (
	"editkit/internal/dock"
	"editkit/internal/kvutil"
)

// Content is the editor's main content slot: the widget shown when no
// docking system is active, plus its opaque persisted state.
type Content struct {
	widget dock.Widget
	state  map[string]any
}

// NewContent creates an empty content slot.
func NewContent() *Content {
	return &Content{state: map[string]any{}}
}

// SetWidget installs the content widget, replacing any previous one.
func (c *Content) SetWidget(w dock.Widget) { c.widget = w }

// Widget returns the installed content widget, or nil.
func (c *Content) Widget() dock.Widget { return c.widget }

// SetState installs persisted content state. The shape is owned by the
// concrete editor; the shell only round-trips it.
func (c *Content) SetState(state map[string]any) {
	if state == nil {
		return // missing key means "no change"
	}
	c.state = kvutil.Clone(state)
}

// GetState snapshots the content state.
func (c *Content) GetState() map[string]any {
	return kvutil.Clone(c.state)
}
