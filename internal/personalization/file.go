package personalization

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"

	"editkit/internal/kvutil"
	"editkit/internal/logging"
)

// EnvStateDir overrides the personalization directory (for tests).
const EnvStateDir = "EDITKIT_STATE_DIR"

const defaultStateBase = ".editkit"

// Scope keys inside the viper config. Each scope is stored as one opaque
// JSON blob: viper folds nested map keys to lower case when reading a
// config file back, and layout state keys (adaptiveLayout, dockingState)
// are case-sensitive, so nested maps must never pass through viper's key
// handling.
const (
	scopeEditors  = "editors"
	scopeProjects = "projects"
)

// FileManager is a Manager backed by a JSON file through viper. Editor
// and project scopes mirror Memory's buckets and are encoded/decoded with
// encoding/json so keys survive a restart byte for byte. Every write is
// flushed to disk; the store is assumed local and fast.
type FileManager struct {
	mu      sync.Mutex
	v       *viper.Viper
	path    string
	project string

	editors  map[string]map[string]any
	projects map[string]map[string]map[string]any

	log *slog.Logger
}

// NewFileManager opens (or creates) the store for the given project name.
// The file lives at ~/.editkit/personalization.json unless EDITKIT_STATE_DIR
// points elsewhere.
func NewFileManager(project string) (*FileManager, error) {
	base := os.Getenv(EnvStateDir)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, defaultStateBase)
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}

	path := filepath.Join(base, "personalization.json")
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	f := &FileManager{
		v:        v,
		path:     path,
		project:  project,
		editors:  make(map[string]map[string]any),
		projects: make(map[string]map[string]map[string]any),
		log:      logging.For("personalization"),
	}
	f.decodeScope(scopeEditors, &f.editors)
	f.decodeScope(scopeProjects, &f.projects)
	return f, nil
}

// decodeScope loads one scope blob into out. A corrupt blob is logged and
// treated as empty rather than failing the open.
func (f *FileManager) decodeScope(scope string, out any) {
	raw := f.v.GetString(scope)
	if raw == "" {
		return
	}
	if err := kvutil.UnmarshalWithContext([]byte(raw), out, "personalization scope "+scope); err != nil {
		f.log.Warn("discarding unreadable scope", "scope", scope, "err", err)
	}
}

// Path returns the backing file location.
func (f *FileManager) Path() string { return f.path }

// SetProperty implements Manager.
func (f *FileManager) SetProperty(editorName, key string, value any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	bucket, ok := f.editors[editorName]
	if !ok {
		bucket = make(map[string]any)
		f.editors[editorName] = bucket
	}
	bucket[key] = value
	f.flush()
}

// Property implements Manager.
func (f *FileManager) Property(editorName, key string) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editors[editorName][key]
}

// SetProjectProperty implements Manager.
func (f *FileManager) SetProjectProperty(editorName, key string, value any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	proj, ok := f.projects[f.project]
	if !ok {
		proj = make(map[string]map[string]any)
		f.projects[f.project] = proj
	}
	bucket, ok := proj[editorName]
	if !ok {
		bucket = make(map[string]any)
		proj[editorName] = bucket
	}
	bucket[key] = value
	f.flush()
}

// ProjectProperty implements Manager.
func (f *FileManager) ProjectProperty(editorName, key string) any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.projects[f.project][editorName][key]
}

// State implements Manager.
func (f *FileManager) State(editorName string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.editors[editorName]
}

// SetState implements Manager.
func (f *FileManager) SetState(editorName string, state map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.editors[editorName] = state
	f.flush()
}

// flush re-encodes both scopes and writes the file. Called with the mutex
// held.
func (f *FileManager) flush() {
	f.encodeScope(scopeEditors, f.editors)
	f.encodeScope(scopeProjects, f.projects)
	if err := f.v.WriteConfigAs(f.path); err != nil {
		f.log.Warn("could not persist personalization", "path", f.path, "err", err)
	}
}

func (f *FileManager) encodeScope(scope string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		f.log.Warn("could not encode scope", "scope", scope, "err", err)
		return
	}
	f.v.Set(scope, string(raw))
}
