package editor

import (
	"editkit/internal/adaptive"
	"editkit/internal/events"
	"editkit/internal/kvutil"
)

// Recognized keys of the persisted layout schema. Anything else found in a
// restored layout is preserved untouched.
const (
	layoutKeyDocking  = "dockingState"
	layoutKeyContent  = "editorContent"
	layoutKeyAdaptive = "adaptiveLayout"
)

// personalizationLayoutKey is where the layout lives inside the editor's
// personalization state.
const personalizationLayoutKey = "layout"

func (e *Editor) initAdaptive() {
	e.adaptiveCtl.Subscribe(func(o adaptive.Orientation) {
		e.bus.Publish(&events.OrientationChangedEvent{
			Editor:     e.name,
			Horizontal: o == adaptive.Horizontal,
		})
	})
	// Adaptive layout starts enabled for every editor that supports it.
	e.adaptiveCtl.SetEnabled(true)
	e.actions.SetChecked(ToggleAdaptiveLayoutCommand, true)
}

// InitializeAdaptiveMenu adds the View menu toggle entry. Separate from
// construction so editors can arrange their menus first.
func (e *Editor) InitializeAdaptiveMenu() {
	if !e.supportsAdaptive {
		return
	}
	e.AddToMenu(ViewMenu)
	view := e.MenuByItem(ViewMenu)
	if view == nil {
		return
	}
	section := view.GetNextEmptySection()
	view.AddAction(ToggleAdaptiveLayoutCommand, section, 0)
}

// SupportsAdaptiveLayout reports whether the capability was enabled.
func (e *Editor) SupportsAdaptiveLayout() bool { return e.supportsAdaptive }

// IsAdaptiveLayoutEnabled reports whether adaptation is currently on.
func (e *Editor) IsAdaptiveLayoutEnabled() bool {
	return e.supportsAdaptive && e.adaptiveCtl.Enabled()
}

// SetAdaptiveLayoutEnabled toggles adaptation and keeps the menu action's
// checked state in sync.
func (e *Editor) SetAdaptiveLayoutEnabled(enabled bool) {
	if !e.supportsAdaptive {
		return
	}
	e.adaptiveCtl.SetEnabled(enabled)
	e.actions.SetChecked(ToggleAdaptiveLayoutCommand, enabled)
}

// Orientation returns the current layout orientation; editors without the
// capability rest at Vertical.
func (e *Editor) Orientation() adaptive.Orientation {
	if !e.supportsAdaptive {
		return adaptive.Vertical
	}
	return e.adaptiveCtl.Orientation()
}

// Resize feeds a container resize into the adaptive controller.
func (e *Editor) Resize(width, height int) {
	if e.supportsAdaptive {
		e.adaptiveCtl.Resize(width, height)
	}
}

// SetLayout applies persisted layout state. Each recognized key is applied
// when present; missing keys leave the corresponding subsystem untouched;
// unknown keys are retained for the next Layout snapshot.
func (e *Editor) SetLayout(state map[string]any) {
	if enabled, ok := kvutil.Bool(state, layoutKeyAdaptive); ok {
		e.SetAdaptiveLayoutEnabled(enabled)
	}
	if e.docking != nil {
		if ds := kvutil.Map(state, layoutKeyDocking); ds != nil {
			e.docking.registry.SetState(ds)
		}
	}
	if cs := kvutil.Map(state, layoutKeyContent); cs != nil {
		e.Content().SetState(cs)
	}
	for k, v := range state {
		switch k {
		case layoutKeyDocking, layoutKeyContent, layoutKeyAdaptive:
		default:
			e.extraLayout[k] = v
		}
	}
	e.bus.Publish(&events.LayoutChangedEvent{Editor: e.name, State: e.Layout()})
}

// Layout snapshots the current layout state in the persisted schema.
func (e *Editor) Layout() map[string]any {
	result := kvutil.Clone(e.extraLayout)
	if result == nil {
		result = map[string]any{}
	}
	if e.docking != nil {
		result[layoutKeyDocking] = e.docking.registry.GetState()
	}
	result[layoutKeyContent] = e.Content().GetState()
	result[layoutKeyAdaptive] = e.IsAdaptiveLayoutEnabled()
	return result
}

// SaveLayoutPersonalization stores the layout under the editor's
// personalization state.
func (e *Editor) SaveLayoutPersonalization() {
	state := e.store.State(e.name)
	if state == nil {
		state = map[string]any{}
	}
	state[personalizationLayoutKey] = e.Layout()
	e.store.SetState(e.name, state)
	e.tracer.LayoutEvent(e.name, "save")
}

// LoadLayoutPersonalization restores a previously saved layout; absent
// state is a no-op.
func (e *Editor) LoadLayoutPersonalization() {
	state := e.store.State(e.name)
	layout := kvutil.Map(state, personalizationLayoutKey)
	if layout == nil {
		return
	}
	e.SetLayout(layout)
	e.tracer.LayoutEvent(e.name, "restore")
}
