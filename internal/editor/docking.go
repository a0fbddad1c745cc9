package editor

import (
	"fmt"

	"editkit/internal/dock"
	"editkit/internal/events"
	"editkit/internal/menu"
)

// dockLayoutProperty is the personalization key the dock layout persists
// under, per editor.
const dockLayoutProperty = "dockLayout"

// BroadcastReceiver is implemented by dockable widgets that need the
// editor's bus. The wrapper factory hands it over at spawn time, replacing
// the event-filter interception the original design relied on.
type BroadcastReceiver interface {
	SetBroadcaster(*events.Broadcaster)
}

type dockingCapability struct {
	registry *dock.Registry
}

// EnableDockingSystem attaches the docking capability. Idempotent; the
// Window menu is added beforehand so it lands in its declared position.
func (e *Editor) EnableDockingSystem() {
	if e.docking != nil {
		return
	}
	e.AddToMenu(WindowMenu)

	reg := dock.NewRegistry()
	reg.OnStateChange(func(state map[string]any) {
		e.SetProperty(dockLayoutProperty, state)
	})
	e.docking = &dockingCapability{registry: reg}

	if windowMenu := e.MenuByItem(WindowMenu); windowMenu != nil {
		windowMenu.SetOnAboutToShow(e.populateWindowMenu)
	}
}

// DockingEnabled reports whether the docking capability is attached.
func (e *Editor) DockingEnabled() bool { return e.docking != nil }

// Docking exposes the dock registry; nil before EnableDockingSystem.
func (e *Editor) Docking() *dock.Registry {
	if e.docking == nil {
		return nil
	}
	return e.docking.registry
}

// RegisterDockableWidget registers a creatable panel. The factory is
// wrapped so spawned widgets that implement BroadcastReceiver get the
// editor's bus before they are first used.
func (e *Editor) RegisterDockableWidget(name string, factory dock.Factory, unique, internal bool) {
	if e.docking == nil {
		e.log.Warn("RegisterDockableWidget before EnableDockingSystem", "name", name)
		return
	}
	wrapped := func() dock.Widget {
		w := factory()
		if w == nil {
			return nil
		}
		if recv, ok := w.(BroadcastReceiver); ok {
			recv.SetBroadcaster(e.bus)
		}
		return w
	}
	e.docking.registry.Register(name, wrapped, unique, internal)
}

// SetDefaultLayoutCallback forwards to the dock registry.
func (e *Editor) SetDefaultLayoutCallback(fn dock.DefaultLayoutFunc) {
	if e.docking == nil {
		return
	}
	e.docking.registry.SetDefaultLayoutCallback(fn)
}

// RestoreDockingLayout applies the persisted dock layout, or the default
// layout when nothing was ever saved.
func (e *Editor) RestoreDockingLayout() {
	if e.docking == nil {
		return
	}
	saved, _ := e.Property(dockLayoutProperty).(map[string]any)
	e.docking.registry.RestoreState(saved)
}

// populateWindowMenu rebuilds the Window menu from the creatable panel
// list on every menu build.
func (e *Editor) populateWindowMenu(m *menu.AbstractMenu) {
	m.Clear()
	for i, name := range e.docking.registry.CreatableWidgets() {
		key := fmt.Sprintf("window.spawn.%d", i)
		panel := name
		e.actions.Register(key, func() bool {
			_, err := e.docking.registry.Spawn(panel)
			return err == nil
		})
		e.actions.SetLabel(key, panel)
		m.AddAction(key, 0, i)
	}
}
