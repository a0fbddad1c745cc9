// Package dock manages the set of named, creatable panel widgets an editor
// can host, together with their persisted layout state.
//
// Widgets are Bubble Tea models; the registry owns their lifecycle from
// Spawn to Release. Teardown is two-phase: Detach removes an instance from
// the live structures synchronously, Release happens later at a safe point
// of the event loop so a widget is never destroyed while the dispatcher is
// still delivering to it.
package dock

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"editkit/internal/kvutil"
	"editkit/internal/logging"
)

// Widget is the concrete panel type hosted by the registry.
type Widget = tea.Model

// Factory produces a new widget instance for a registered panel type.
type Factory func() Widget

// Releaser is implemented by widgets that hold external resources; Release
// runs during the deferred phase of teardown.
type Releaser interface {
	Release()
}

// DefaultLayoutFunc builds the initial panel arrangement when no persisted
// layout exists.
type DefaultLayoutFunc func(*Registry)

// Instance is one live spawned widget.
type Instance struct {
	ID     string
	Name   string
	Widget Widget
}

type entry struct {
	name     string
	factory  Factory
	unique   bool
	internal bool
	broken   bool
	spawned  int
}

// Registry holds the dockable widget catalogue and the live instances.
type Registry struct {
	entries       map[string]*entry
	order         []string
	live          map[string][]*Instance
	pending       []*Instance
	state         map[string]any
	defaultLayout DefaultLayoutFunc
	onStateChange func(map[string]any)
	log           *slog.Logger
}

// NewRegistry creates an empty docking registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*entry),
		live:    make(map[string][]*Instance),
		state:   make(map[string]any),
		log:     logging.For("dock"),
	}
}

// Register adds a creatable panel type. Registering an existing name
// replaces the factory but keeps any live instances.
//
// unique panels keep at most one live instance; internal panels are hidden
// from the user-facing panel list.
func (r *Registry) Register(name string, factory Factory, unique, internal bool) {
	if factory == nil {
		r.log.Error("panel registered without factory", "name", name)
		return
	}
	if _, exists := r.entries[name]; !exists {
		r.order = append(r.order, name)
	}
	r.entries[name] = &entry{name: name, factory: factory, unique: unique, internal: internal}
}

// Spawn produces a live widget for the named panel type.
//
// For unique panels an existing live instance is returned as-is; the
// factory runs again only after that instance has been detached. A factory
// returning a nil widget marks the registration broken: the error is
// logged and the panel disappears from the creatable list.
func (r *Registry) Spawn(name string) (*Instance, error) {
	e, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("dock: unknown panel %q", name)
	}
	if e.broken {
		return nil, fmt.Errorf("dock: panel %q has a broken factory", name)
	}
	if e.unique {
		if instances := r.live[name]; len(instances) > 0 {
			return instances[0], nil
		}
	}

	w := e.factory()
	if w == nil {
		e.broken = true
		r.log.Error("panel factory produced no widget", "name", name)
		return nil, fmt.Errorf("dock: panel %q factory produced no widget", name)
	}
	e.spawned++
	inst := &Instance{
		ID:     fmt.Sprintf("%s#%d", name, e.spawned),
		Name:   name,
		Widget: w,
	}
	r.live[name] = append(r.live[name], inst)
	return inst, nil
}

// Instances returns the live instances for a panel name.
func (r *Registry) Instances(name string) []*Instance {
	return r.live[name]
}

// LiveInstances returns every live instance, in registration order.
// Layout code iterates this to place panels.
func (r *Registry) LiveInstances() []*Instance {
	out := make([]*Instance, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.live[name]...)
	}
	return out
}

// Detach removes inst from the live structures. The widget stays intact
// until ReleasePending runs; events already in flight may still reach it.
func (r *Registry) Detach(inst *Instance) {
	instances := r.live[inst.Name]
	for i, candidate := range instances {
		if candidate == inst {
			r.live[inst.Name] = append(instances[:i], instances[i+1:]...)
			r.pending = append(r.pending, inst)
			return
		}
	}
}

// ReleasePending finalizes every detached instance. The event dispatcher
// calls this at the next idle point after dispatch has finished.
func (r *Registry) ReleasePending() {
	for _, inst := range r.pending {
		if rel, ok := inst.Widget.(Releaser); ok {
			rel.Release()
		}
	}
	r.pending = nil
}

// CreatableWidgets lists the panel names offered to the user, in
// registration order, excluding internal and broken entries.
func (r *Registry) CreatableWidgets() []string {
	out := make([]string, 0, len(r.order))
	for _, name := range r.order {
		e := r.entries[name]
		if e.internal || e.broken {
			continue
		}
		out = append(out, name)
	}
	return out
}

// SetDefaultLayoutCallback installs the builder for the initial layout.
// It runs only from RestoreState, and only when no persisted state exists.
func (r *Registry) SetDefaultLayoutCallback(fn DefaultLayoutFunc) {
	r.defaultLayout = fn
}

// OnStateChange installs a callback fired whenever SetState replaces the
// persisted layout (the editor forwards it into personalization).
func (r *Registry) OnStateChange(fn func(map[string]any)) {
	r.onStateChange = fn
}

// SetState installs persisted layout state and spawns the panels its
// "open" list names. Unknown panel names are ignored so layouts survive
// schema drift in both directions. Unrecognized keys are preserved.
func (r *Registry) SetState(state map[string]any) {
	r.state = kvutil.Clone(state)
	if r.state == nil {
		r.state = map[string]any{}
	}
	for _, name := range kvutil.StringSlice(r.state, "open") {
		if _, ok := r.entries[name]; !ok {
			r.log.Debug("ignoring unknown panel in layout state", "name", name)
			continue
		}
		if _, err := r.Spawn(name); err != nil {
			r.log.Warn("could not restore panel", "name", name, "err", err)
		}
	}
	if r.onStateChange != nil {
		r.onStateChange(r.GetState())
	}
}

// GetState snapshots the current layout: open panels plus whatever
// geometry the stored state carried.
func (r *Registry) GetState() map[string]any {
	out := kvutil.Clone(r.state)
	if out == nil {
		out = map[string]any{}
	}
	open := make([]string, 0, len(r.order))
	for _, name := range r.order {
		if len(r.live[name]) > 0 {
			open = append(open, name)
		}
	}
	out["open"] = open
	return out
}

// SetGeometry records geometry for a panel under the "geometry" key.
func (r *Registry) SetGeometry(name string, geom map[string]any) {
	geos := kvutil.Map(r.state, "geometry")
	if geos == nil {
		geos = map[string]any{}
		r.state["geometry"] = geos
	}
	geos[name] = geom
}

// Geometry returns the stored geometry for a panel, or nil.
func (r *Registry) Geometry(name string) map[string]any {
	return kvutil.Map(kvutil.Map(r.state, "geometry"), name)
}

// RestoreState applies persisted state, or builds the default layout when
// none exists.
func (r *Registry) RestoreState(state map[string]any) {
	if len(state) == 0 {
		if r.defaultLayout != nil {
			r.defaultLayout(r)
		}
		return
	}
	r.SetState(state)
}
