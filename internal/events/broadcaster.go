// Package events implements the editor broadcast bus: synchronous,
// main-thread publish/subscribe for editor lifecycle notifications.
//
// Delivery is immediate and in connection order; handlers run on the
// caller's goroutine. The bus carries no locking because all traffic flows
// through the Bubble Tea update loop, which is a single logical thread.
package events

import (
	"log/slog"

	"editkit/internal/logging"
)

// Type identifies a broadcast event kind.
type Type int

const (
	// AboutToQuit is published before the application shuts down.
	// Handlers may veto the shutdown via AboutToQuitEvent.
	AboutToQuit Type = iota
	// LayoutChanged is published after an editor's layout state changes.
	LayoutChanged
	// OrientationChanged is published when adaptive layout flips between
	// horizontal and vertical.
	OrientationChanged
	// QueryBroadcaster is raised by detached widgets that need a handle to
	// the bus; the owning editor answers synchronously.
	QueryBroadcaster
)

func (t Type) String() string {
	switch t {
	case AboutToQuit:
		return "AboutToQuit"
	case LayoutChanged:
		return "LayoutChanged"
	case OrientationChanged:
		return "OrientationChanged"
	case QueryBroadcaster:
		return "QueryBroadcaster"
	default:
		return "Unknown"
	}
}

// Event is the unit carried by the bus.
type Event interface {
	Type() Type
}

// Handler processes a published event.
type Handler func(Event)

// Connection represents an active subscription; Disconnect detaches it.
type Connection struct {
	bus *Broadcaster
	typ Type
	id  int
}

// Disconnect removes the subscription. Safe to call more than once.
func (c *Connection) Disconnect() {
	if c.bus == nil {
		return
	}
	c.bus.disconnect(c.typ, c.id)
	c.bus = nil
}

type entry struct {
	id      int
	handler Handler
}

// Broadcaster routes events to connected handlers.
type Broadcaster struct {
	handlers map[Type][]entry
	nextID   int
	log      *slog.Logger
}

// NewBroadcaster creates an empty bus.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		handlers: make(map[Type][]entry),
		log:      logging.For("events"),
	}
}

// Connect subscribes fn to events of type t.
func (b *Broadcaster) Connect(t Type, fn Handler) *Connection {
	b.nextID++
	b.handlers[t] = append(b.handlers[t], entry{id: b.nextID, handler: fn})
	return &Connection{bus: b, typ: t, id: b.nextID}
}

// Publish delivers ev synchronously to all handlers connected for its type,
// in connection order.
func (b *Broadcaster) Publish(ev Event) {
	entries := b.handlers[ev.Type()]
	if len(entries) == 0 {
		b.log.Debug("no handlers for event", "type", ev.Type().String())
		return
	}
	// Handlers may disconnect during dispatch; iterate over a snapshot.
	snapshot := make([]entry, len(entries))
	copy(snapshot, entries)
	for _, e := range snapshot {
		e.handler(ev)
	}
}

func (b *Broadcaster) disconnect(t Type, id int) {
	entries := b.handlers[t]
	for i, e := range entries {
		if e.id == id {
			b.handlers[t] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}
