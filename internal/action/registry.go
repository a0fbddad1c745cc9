// Package action implements the editor command registry: a flat mapping of
// dotted command keys (e.g. "general.save") to handlers, with an optional
// checked flag for toggle-style commands.
package action

import (
	"log/slog"
	"strings"
	"unicode"

	"editkit/internal/logging"
)

// Handler executes a command. The return value reports success; handlers
// are free to mutate editor state as a side effect.
type Handler func() bool

// Observer is notified around every invocation. Used to hang telemetry off
// the registry without the registry knowing about tracing.
type Observer interface {
	ActionInvoked(key string, ok bool)
}

// Registry maps command keys to handlers.
// Re-registering a key overwrites the previous handler.
type Registry struct {
	handlers map[string]Handler
	checked  map[string]bool
	labels   map[string]string
	observer Observer
	log      *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		checked:  make(map[string]bool),
		labels:   make(map[string]string),
		log:      logging.For("action"),
	}
}

// SetObserver installs an invocation observer. A nil observer disables it.
func (r *Registry) SetObserver(obs Observer) {
	r.observer = obs
}

// Register stores a handler under key, overwriting any existing handler.
// A nil handler is ignored.
func (r *Registry) Register(key string, fn Handler) {
	if fn == nil {
		r.log.Warn("ignoring nil handler", "key", key)
		return
	}
	r.handlers[key] = fn
}

// Has reports whether a handler is registered for key.
func (r *Registry) Has(key string) bool {
	_, ok := r.handlers[key]
	return ok
}

// Invoke looks up and calls the handler for key.
// Returns false without side effects when the key is not registered.
func (r *Registry) Invoke(key string) bool {
	fn, ok := r.handlers[key]
	if !ok {
		r.log.Debug("invoke of unregistered command", "key", key)
		return false
	}
	ok = fn()
	if r.observer != nil {
		r.observer.ActionInvoked(key, ok)
	}
	return ok
}

// SetChecked records the checked state for a toggle command.
// The flag is independent of whether a handler exists yet.
func (r *Registry) SetChecked(key string, checked bool) {
	r.checked[key] = checked
}

// Checked returns the checked state for key; unset keys report false.
func (r *Registry) Checked(key string) bool {
	return r.checked[key]
}

// Checkable reports whether key ever had a checked state set. Menus use
// this to decide whether to draw a check mark gutter.
func (r *Registry) Checkable(key string) bool {
	_, ok := r.checked[key]
	return ok
}

// SetLabel records a display label for a command (menu entries, palettes).
func (r *Registry) SetLabel(key, label string) {
	r.labels[key] = label
}

// Label returns the display label for a command. Commands without an
// explicit label derive one from the last key segment: "general.save_as"
// becomes "Save as".
func (r *Registry) Label(key string) string {
	if label, ok := r.labels[key]; ok {
		return label
	}
	return prettyLabel(key)
}

func prettyLabel(key string) string {
	if idx := strings.LastIndex(key, "."); idx >= 0 {
		key = key[idx+1:]
	}
	if key == "" {
		return key
	}
	parts := strings.FieldsFunc(key, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	label := strings.Join(parts, " ")
	runes := []rune(label)
	if len(runes) > 0 {
		runes[0] = unicode.ToUpper(runes[0])
	}
	return string(runes)
}

// Keys returns all registered command keys in unspecified order.
func (r *Registry) Keys() []string {
	out := make([]string, 0, len(r.handlers))
	for k := range r.handlers {
		out = append(out, k)
	}
	return out
}
