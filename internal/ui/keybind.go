package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"editkit/internal/action"
)

// KeybindRegistry maps key sequences to action keys.
// Key sequences use spacemacs-style notation: "SPC" for space, "SPC f" for SPC then f.
// Single keys: "j", "k", "esc", "ctrl+c", "enter".
type KeybindRegistry struct {
	bindings map[string]string
	actions  *action.Registry
}

// NewKeybindRegistry creates a registry dispatching into the given action set.
func NewKeybindRegistry(actions *action.Registry) *KeybindRegistry {
	return &KeybindRegistry{
		bindings: make(map[string]string),
		actions:  actions,
	}
}

// Bind registers a key sequence for an action key.
// Overwrites any existing binding for the sequence.
func (r *KeybindRegistry) Bind(seq, actionKey string) {
	r.bindings[normalizeSeq(seq)] = actionKey
}

// Lookup returns the action key bound to a sequence, or "".
func (r *KeybindRegistry) Lookup(seq string) string {
	return r.bindings[normalizeSeq(seq)]
}

// HasPrefix reports whether any binding starts with seq and a space,
// meaning more keys follow.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// Hints returns sequences that continue from currentSeq, keyed by the next
// key in the sequence. Leaf bindings show the action's display label;
// prefixes show an ellipsis.
func (r *KeybindRegistry) Hints(currentSeq string) map[string]string {
	out := make(map[string]string)
	prefix := ""
	if currentSeq != "" {
		prefix = normalizeSeq(currentSeq) + " "
	}
	for seq, actionKey := range r.bindings {
		if !strings.HasPrefix(seq, prefix) || seq == normalizeSeq(currentSeq) {
			continue
		}
		rest := strings.TrimPrefix(seq, prefix)
		parts := strings.Fields(rest)
		if len(parts) == 0 {
			continue
		}
		next := parts[0]
		if len(parts) > 1 {
			out[next] = next + "…"
			continue
		}
		out[next] = r.actions.Label(actionKey)
	}
	return out
}

// normalizeSeq converts tea key strings to the canonical format.
// "space" -> "SPC", "ctrl+c" -> "ctrl+c", "j" -> "j".
func normalizeSeq(seq string) string {
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" || p == " " {
			parts[i] = "SPC"
		}
	}
	return strings.Join(parts, " ")
}

// keyToSeqPart converts a tea key string to a sequence part.
func keyToSeqPart(s string) string {
	if s == " " || s == "space" {
		return "SPC"
	}
	return s
}

// KeyHandler manages leader key state and resolves key presses to actions.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderKey     string   // "space" (tea.KeyMsg.String() format)
	LeaderSeq     string   // "SPC" (canonical format)
	LeaderWaiting bool     // true when waiting for a key after the leader
	Buffer        []string // accumulated sequence in leader mode
}

// NewKeyHandler creates a handler with SPC as leader.
// Bubble Tea reports space as " " (KeySpace), not "space".
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{
		Registry:  reg,
		LeaderKey: " ",
		LeaderSeq: "SPC",
	}
}

// Handle processes a KeyMsg. Returns (consumed, actionKey).
// When consumed is true the key belongs to the keybind system and must not
// reach the focused widget. A non-empty actionKey names the action to invoke.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, actionKey string) {
	s := msg.String()

	// Esc cancels leader mode.
	if s == "esc" {
		if h.LeaderWaiting {
			h.LeaderWaiting = false
			h.Buffer = nil
			return true, ""
		}
		return false, ""
	}

	if s == h.LeaderKey {
		h.LeaderWaiting = true
		h.Buffer = []string{h.LeaderSeq}
		return true, ""
	}

	// In leader mode: append the key and look up the sequence.
	if h.LeaderWaiting {
		h.Buffer = append(h.Buffer, keyToSeqPart(s))
		seq := strings.Join(h.Buffer, " ")

		if key := h.Registry.Lookup(seq); key != "" {
			h.LeaderWaiting = false
			h.Buffer = nil
			return true, key
		}
		// No exact match; stay in leader mode if a longer binding exists.
		if h.Registry.HasPrefix(seq) {
			return true, ""
		}
		h.LeaderWaiting = false
		h.Buffer = nil
		return true, ""
	}

	if key := h.Registry.Lookup(keyToSeqPart(s)); key != "" {
		return true, key
	}
	return false, ""
}

// CurrentSeq returns the buffered sequence while in leader mode, or "".
func (h *KeyHandler) CurrentSeq() string {
	if !h.LeaderWaiting {
		return ""
	}
	return strings.Join(h.Buffer, " ")
}
