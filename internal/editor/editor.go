// Package editor composes the framework subsystems into an editor shell:
// command registry, menu descriptor and runtime menu, optional docking and
// adaptive layout capabilities, personalization, and the broadcast bus.
//
// The original design had editors inherit from a deep widget hierarchy;
// here an Editor is a plain struct and the capabilities are independent
// collaborators injected at construction.
package editor

import (
	"log/slog"

	"editkit/internal/action"
	"editkit/internal/adaptive"
	"editkit/internal/events"
	"editkit/internal/logging"
	"editkit/internal/menu"
	"editkit/internal/personalization"
	"editkit/internal/telemetry"
)

// CanQuitFunc inspects unsaved state before shutdown. ok=false vetoes the
// quit; files lists what would be lost.
type CanQuitFunc func() (ok bool, files []string)

// OpenFileFunc opens a file picked from the recent files menu.
type OpenFileFunc func(path string) bool

// Editor is the composed editor shell.
type Editor struct {
	name    string
	actions *action.Registry
	desc    *menu.Desc
	root    *menu.AbstractMenu

	bus       *events.Broadcaster // per-editor bus
	globalBus *events.Broadcaster // application lifecycle bus
	store     personalization.Manager
	tracer    *telemetry.Tracer

	adaptiveCtl      *adaptive.Controller
	supportsAdaptive bool

	docking *dockingCapability

	content     *Content
	canQuit     CanQuitFunc
	openFile    OpenFileFunc
	extraLayout map[string]any // unrecognized layout keys, preserved verbatim

	quitConn *events.Connection
	log      *slog.Logger
}

// Option configures an Editor at construction.
type Option func(*Editor)

// WithPersonalization injects the preference store.
func WithPersonalization(m personalization.Manager) Option {
	return func(e *Editor) { e.store = m }
}

// WithGlobalBus connects the editor to the application lifecycle bus
// (about-to-quit veto protocol).
func WithGlobalBus(b *events.Broadcaster) Option {
	return func(e *Editor) { e.globalBus = b }
}

// WithTelemetry attaches an activity tracer. A nil tracer is fine.
func WithTelemetry(t *telemetry.Tracer) Option {
	return func(e *Editor) { e.tracer = t }
}

// WithAdaptiveLayout enables the adaptive layout capability, resting at
// the given orientation while adaptation is off.
func WithAdaptiveLayout(defaultOrientation adaptive.Orientation) Option {
	return func(e *Editor) {
		e.supportsAdaptive = true
		e.adaptiveCtl = adaptive.NewController(defaultOrientation)
	}
}

// WithCanQuit installs the unsaved-changes check consulted on quit.
func WithCanQuit(fn CanQuitFunc) Option {
	return func(e *Editor) { e.canQuit = fn }
}

// WithOpenFileHandler installs the handler behind recent file entries.
func WithOpenFileHandler(fn OpenFileFunc) Option {
	return func(e *Editor) { e.openFile = fn }
}

// WithAction registers a command during construction, before any default
// menu items materialize, so descriptor entries bound to it are kept.
func WithAction(key string, fn action.Handler) Option {
	return func(e *Editor) { e.actions.Register(key, fn) }
}

// New creates an editor shell. The Help menu is populated by default, as
// every editor offers it; everything else is opt-in via AddToMenu.
func New(name string, opts ...Option) *Editor {
	e := &Editor{
		name:        name,
		actions:     action.NewRegistry(),
		desc:        newMenuDesc(),
		root:        menu.NewAbstractMenu(""),
		bus:         events.NewBroadcaster(),
		extraLayout: map[string]any{},
		log:         logging.For("editor").With("editor", name),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.store == nil {
		e.store = personalization.NewMemory()
	}

	e.actions.SetObserver(e.tracer)
	e.initActions()

	// Any detached widget can ask for the bus and is answered in place.
	e.bus.Connect(events.QueryBroadcaster, func(ev events.Event) {
		ev.(*events.QueryBroadcasterEvent).Respond(e.bus)
	})

	if e.globalBus != nil {
		e.quitConn = e.globalBus.Connect(events.AboutToQuit, e.onAboutToQuit)
	}

	if e.supportsAdaptive {
		e.initAdaptive()
	}

	e.AddToMenu(HelpMenu, Help)
	return e
}

// Name returns the editor's unique name, which also scopes its
// personalization state.
func (e *Editor) Name() string { return e.name }

// Actions exposes the command registry.
func (e *Editor) Actions() *action.Registry { return e.actions }

// Broadcaster returns the per-editor bus.
func (e *Editor) Broadcaster() *events.Broadcaster { return e.bus }

// RegisterAction binds a command key to a handler.
func (e *Editor) RegisterAction(key string, fn action.Handler) {
	e.actions.Register(key, fn)
}

// initActions wires the commands the shell itself owns. Editors register
// the general.* commands they actually support; unsupported ones simply
// never appear in menus.
func (e *Editor) initActions() {
	e.actions.Register(ToggleAdaptiveLayoutCommand, func() bool {
		e.SetAdaptiveLayoutEnabled(!e.IsAdaptiveLayoutEnabled())
		return true
	})
}

// AddToMenu materializes the given standard items (and their ancestor
// menus) into the runtime menu.
func (e *Editor) AddToMenu(items ...menu.ItemID) {
	for _, item := range items {
		sub := e.desc.AddItem(e.root, item, e.actions)
		if item == RecentFiles && sub != nil {
			sub.SetOnAboutToShow(e.populateRecentFilesMenu)
		}
	}
}

// AddCommandToMenu appends a registered command to the named menu,
// creating the menu on first use.
func (e *Editor) AddCommandToMenu(menuName, key string) {
	if !e.actions.Has(key) {
		e.log.Debug("not adding unregistered command to menu", "key", key)
		return
	}
	m := e.GetMenu(menuName)
	m.AddAction(key, m.GetNextEmptySection(), 0)
}

// RootMenu returns the runtime menu root.
func (e *Editor) RootMenu() *menu.AbstractMenu { return e.root }

// GetMenu finds the named top-level menu, creating it when missing.
func (e *Editor) GetMenu(name string) *menu.AbstractMenu {
	if m := e.root.FindMenu(name); m != nil {
		return m
	}
	return e.root.CreateMenu(name)
}

// MenuByItem resolves a declared menu item to its runtime menu, or nil
// when the item is not a menu or not yet materialized.
func (e *Editor) MenuByItem(item menu.ItemID) *menu.AbstractMenu {
	name := e.desc.MenuName(item)
	if name == "" {
		return nil
	}
	return e.root.FindMenuRecursive(name)
}

// Content returns the editor content slot, creating it lazily.
func (e *Editor) Content() *Content {
	if e.content == nil {
		e.content = NewContent()
	}
	return e.content
}

// onAboutToQuit participates in the cooperative shutdown protocol: when
// the unsaved-changes check fails, the pending files are reported and the
// event is vetoed.
func (e *Editor) onAboutToQuit(ev events.Event) {
	quit, ok := ev.(*events.AboutToQuitEvent)
	if !ok {
		return
	}
	if e.canQuit == nil {
		return
	}
	if ok, files := e.canQuit(); !ok {
		quit.AddChangeList(e.name, files)
	}
}

// Detach disconnects the editor from the global bus. Widget teardown is
// finished later by the dispatcher (ReleasePending on the dock registry).
func (e *Editor) Detach() {
	if e.quitConn != nil {
		e.quitConn.Disconnect()
		e.quitConn = nil
	}
}

// property helpers: thin pass-throughs to the store, scoped by editor name.

// SetProperty stores a per-editor preference.
func (e *Editor) SetProperty(key string, value any) {
	e.store.SetProperty(e.name, key, value)
}

// Property reads a per-editor preference; nil when never set.
func (e *Editor) Property(key string) any {
	return e.store.Property(e.name, key)
}

// SetProjectProperty stores a per-project preference.
func (e *Editor) SetProjectProperty(key string, value any) {
	e.store.SetProjectProperty(e.name, key, value)
}

// ProjectProperty reads a per-project preference; nil when never set.
func (e *Editor) ProjectProperty(key string) any {
	return e.store.ProjectProperty(e.name, key)
}
