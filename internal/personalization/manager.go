// Package personalization persists per-editor and per-project preference
// state as nested key-value maps. The editor treats the store as an
// external collaborator: every read and write delegates directly, with no
// caching layer in between.
package personalization

// Manager is the external preference store. A missing key yields nil, the
// store-defined "not set" sentinel, never an error.
type Manager interface {
	// SetProperty stores a value scoped to the named editor.
	SetProperty(editorName, key string, value any)
	// Property reads a per-editor value; nil when never set.
	Property(editorName, key string) any

	// SetProjectProperty stores a value scoped to the active project.
	SetProjectProperty(editorName, key string, value any)
	// ProjectProperty reads a per-project value; nil when never set.
	ProjectProperty(editorName, key string) any

	// State returns the whole per-editor map; nil when never set.
	State(editorName string) map[string]any
	// SetState replaces the whole per-editor map.
	SetState(editorName string, state map[string]any)
}

// Memory is an in-process Manager used in tests and as a fallback when no
// store file is configured.
type Memory struct {
	editors  map[string]map[string]any
	projects map[string]map[string]any
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		editors:  make(map[string]map[string]any),
		projects: make(map[string]map[string]any),
	}
}

// SetProperty implements Manager.
func (m *Memory) SetProperty(editorName, key string, value any) {
	setIn(m.editors, editorName, key, value)
}

// Property implements Manager.
func (m *Memory) Property(editorName, key string) any {
	return getIn(m.editors, editorName, key)
}

// SetProjectProperty implements Manager.
func (m *Memory) SetProjectProperty(editorName, key string, value any) {
	setIn(m.projects, editorName, key, value)
}

// ProjectProperty implements Manager.
func (m *Memory) ProjectProperty(editorName, key string) any {
	return getIn(m.projects, editorName, key)
}

// State implements Manager.
func (m *Memory) State(editorName string) map[string]any {
	return m.editors[editorName]
}

// SetState implements Manager.
func (m *Memory) SetState(editorName string, state map[string]any) {
	m.editors[editorName] = state
}

func setIn(root map[string]map[string]any, scope, key string, value any) {
	bucket, ok := root[scope]
	if !ok {
		bucket = make(map[string]any)
		root[scope] = bucket
	}
	bucket[key] = value
}

func getIn(root map[string]map[string]any, scope, key string) any {
	bucket, ok := root[scope]
	if !ok {
		return nil
	}
	return bucket[key]
}
