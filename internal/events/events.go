package events

// AboutToQuitEvent asks every editor whether shutdown may proceed.
// An editor with unsaved work records its pending files and vetoes; the
// publisher inspects Vetoed afterwards and aborts the close if set.
type AboutToQuitEvent struct {
	changeLists map[string][]string
	vetoed      bool
}

// NewAboutToQuitEvent creates an event with no recorded changes.
func NewAboutToQuitEvent() *AboutToQuitEvent {
	return &AboutToQuitEvent{changeLists: make(map[string][]string)}
}

// Type implements Event.
func (e *AboutToQuitEvent) Type() Type { return AboutToQuit }

// AddChangeList records files with unsaved changes for the named owner
// and marks the event vetoed.
func (e *AboutToQuitEvent) AddChangeList(owner string, files []string) {
	e.changeLists[owner] = append(e.changeLists[owner], files...)
	e.vetoed = true
}

// Vetoed reports whether any handler blocked the shutdown.
func (e *AboutToQuitEvent) Vetoed() bool { return e.vetoed }

// ChangeLists returns pending files grouped by owner.
func (e *AboutToQuitEvent) ChangeLists() map[string][]string {
	return e.changeLists
}

// LayoutChangedEvent announces a layout state change for an editor.
type LayoutChangedEvent struct {
	Editor string
	State  map[string]any
}

// Type implements Event.
func (e *LayoutChangedEvent) Type() Type { return LayoutChanged }

// OrientationChangedEvent announces an adaptive layout orientation flip.
type OrientationChangedEvent struct {
	Editor     string
	Horizontal bool
}

// Type implements Event.
func (e *OrientationChangedEvent) Type() Type { return OrientationChanged }

// QueryBroadcasterEvent lets a widget outside the editor's tree obtain the
// bus. The answering editor calls Respond before Publish returns, so the
// raiser can read Broadcaster immediately afterwards.
type QueryBroadcasterEvent struct {
	Broadcaster *Broadcaster
}

// Type implements Event.
func (e *QueryBroadcasterEvent) Type() Type { return QueryBroadcaster }

// Respond fills in the bus handle.
func (e *QueryBroadcasterEvent) Respond(b *Broadcaster) {
	e.Broadcaster = b
}
