package personalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"editkit/internal/kvutil"
)

func TestMemoryScopes(t *testing.T) {
	m := NewMemory()
	m.SetProperty("Level Editor", "dockLayout", map[string]any{"open": []string{"Console"}})
	m.SetProjectProperty("Level Editor", "recentFiles", []string{"a.lvl"})

	assert.NotNil(t, m.Property("Level Editor", "dockLayout"))
	assert.Nil(t, m.Property("Level Editor", "recentFiles"),
		"project properties must not leak into the editor scope")
	assert.Equal(t, []string{"a.lvl"}, m.ProjectProperty("Level Editor", "recentFiles"))
}

func TestMemoryMissingKeyIsNil(t *testing.T) {
	m := NewMemory()
	assert.Nil(t, m.Property("Level Editor", "never-set"))
	assert.Nil(t, m.ProjectProperty("Level Editor", "never-set"))
	assert.Nil(t, m.State("Level Editor"))
}

func TestMemoryStateRoundTrip(t *testing.T) {
	m := NewMemory()
	state := map[string]any{"layout": map[string]any{"adaptiveLayout": true}}
	m.SetState("Level Editor", state)
	assert.Equal(t, state, m.State("Level Editor"))
}

func TestFileManagerRoundTrip(t *testing.T) {
	t.Setenv(EnvStateDir, t.TempDir())

	fm, err := NewFileManager("shooter")
	require.NoError(t, err)

	fm.SetProperty("Level Editor", "dockLayout", map[string]any{"open": []string{"Console"}})
	fm.SetProjectProperty("Level Editor", "recentFiles", []string{"a.lvl", "b.lvl"})

	// A fresh manager must see what the first one persisted.
	reopened, err := NewFileManager("shooter")
	require.NoError(t, err)

	layout, ok := reopened.Property("Level Editor", "dockLayout").(map[string]any)
	require.True(t, ok, "dockLayout should round-trip as a map")
	assert.Contains(t, layout, "open")

	recents := reopened.ProjectProperty("Level Editor", "recentFiles")
	assert.Len(t, recents, 2)
}

func TestFileManagerPreservesKeyCase(t *testing.T) {
	t.Setenv(EnvStateDir, t.TempDir())

	fm, err := NewFileManager("shooter")
	require.NoError(t, err)

	fm.SetState("Level Editor", map[string]any{
		"layout": map[string]any{
			"adaptiveLayout": true,
			"dockingState":   map[string]any{"open": []string{"Console"}},
			"editorContent":  map[string]any{},
		},
	})

	// Layout schema keys are case-sensitive; reopening the store must
	// hand them back exactly as written.
	reopened, err := NewFileManager("shooter")
	require.NoError(t, err)

	state := reopened.State("Level Editor")
	require.NotNil(t, state)
	layout := kvutil.Map(state, "layout")
	require.NotNil(t, layout)

	on, present := kvutil.Bool(layout, "adaptiveLayout")
	assert.True(t, present, "adaptiveLayout key should survive a reopen")
	assert.True(t, on)
	assert.NotNil(t, kvutil.Map(layout, "dockingState"))
	assert.NotNil(t, kvutil.Map(layout, "editorContent"))
}

func TestFileManagerProjectIsolation(t *testing.T) {
	t.Setenv(EnvStateDir, t.TempDir())

	alpha, err := NewFileManager("alpha")
	require.NoError(t, err)
	alpha.SetProjectProperty("Level Editor", "recentFiles", []string{"a.lvl"})

	beta, err := NewFileManager("beta")
	require.NoError(t, err)
	assert.Nil(t, beta.ProjectProperty("Level Editor", "recentFiles"))
}

func TestFileManagerMissingKey(t *testing.T) {
	t.Setenv(EnvStateDir, t.TempDir())

	fm, err := NewFileManager("shooter")
	require.NoError(t, err)
	assert.Nil(t, fm.Property("Level Editor", "never-set"))
}
