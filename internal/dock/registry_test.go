package dock

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubWidget is a minimal tea.Model for registry tests.
type stubWidget struct {
	released bool
}

func (w *stubWidget) Init() tea.Cmd                       { return nil }
func (w *stubWidget) Update(tea.Msg) (tea.Model, tea.Cmd) { return w, nil }
func (w *stubWidget) View() string                        { return "" }
func (w *stubWidget) Release()                            { w.released = true }

func stubFactory() Widget { return &stubWidget{} }

func TestUniquePanelReusesInstance(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Properties", stubFactory, true, false)

	first, err := reg.Spawn("Properties")
	require.NoError(t, err)
	second, err := reg.Spawn("Properties")
	require.NoError(t, err)

	assert.Same(t, first, second, "unique panel must reuse the live instance")
	assert.Len(t, reg.Instances("Properties"), 1)
}

func TestUniquePanelRespawnsAfterDetach(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Properties", stubFactory, true, false)

	first, _ := reg.Spawn("Properties")
	reg.Detach(first)
	second, err := reg.Spawn("Properties")
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}

func TestNonUniquePanelSpawnsFresh(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Viewport", stubFactory, false, false)

	first, _ := reg.Spawn("Viewport")
	second, _ := reg.Spawn("Viewport")

	assert.NotSame(t, first, second)
	assert.Len(t, reg.Instances("Viewport"), 2)
}

func TestNilFactoryResultMarksBroken(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Ghost", func() Widget { return nil }, false, false)
	reg.Register("Viewport", stubFactory, false, false)

	_, err := reg.Spawn("Ghost")
	require.Error(t, err)

	assert.Equal(t, []string{"Viewport"}, reg.CreatableWidgets(),
		"broken panel must leave the dock menu")
	_, err = reg.Spawn("Ghost")
	assert.Error(t, err, "broken registration stays broken")
}

func TestInternalPanelsHidden(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Outline", stubFactory, false, false)
	reg.Register("__scratch", stubFactory, true, true)

	assert.Equal(t, []string{"Outline"}, reg.CreatableWidgets())

	// Internal panels are still spawnable by the editor itself.
	_, err := reg.Spawn("__scratch")
	assert.NoError(t, err)
}

func TestSpawnUnknownPanel(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Spawn("nope")
	assert.Error(t, err)
}

func TestStateRoundTrip(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Properties", stubFactory, true, false)
	reg.Register("Console", stubFactory, false, false)

	reg.SetState(map[string]any{
		"open":     []any{"Console", "LegacyPanel", "Properties"},
		"geometry": map[string]any{"Console": map[string]any{"height": 12.0}},
		"custom":   "opaque",
	})

	state := reg.GetState()
	assert.Equal(t, []string{"Properties", "Console"}, state["open"],
		"unknown panel names dropped, known ones open in registration order")
	assert.Equal(t, map[string]any{"height": 12.0}, reg.Geometry("Console"))
	assert.Equal(t, "opaque", state["custom"], "unrecognized keys are preserved")
}

func TestRestoreStateDefaultLayoutOnlyWhenEmpty(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Properties", stubFactory, true, false)
	var defaults int
	reg.SetDefaultLayoutCallback(func(r *Registry) {
		defaults++
		r.Spawn("Properties")
	})

	reg.RestoreState(nil)
	require.Equal(t, 1, defaults)
	assert.Len(t, reg.Instances("Properties"), 1)

	reg.RestoreState(map[string]any{"open": []any{"Properties"}})
	assert.Equal(t, 1, defaults, "persisted state must not trigger the default layout")
}

func TestTwoPhaseTeardown(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Console", stubFactory, false, false)
	inst, _ := reg.Spawn("Console")
	w := inst.Widget.(*stubWidget)

	reg.Detach(inst)
	assert.Empty(t, reg.Instances("Console"), "detach removes from live structures")
	assert.False(t, w.released, "release is deferred")

	reg.ReleasePending()
	assert.True(t, w.released)

	// Second release pass is a no-op.
	reg.ReleasePending()
}

func TestOnStateChange(t *testing.T) {
	reg := NewRegistry()
	reg.Register("Console", stubFactory, false, false)
	var notified []map[string]any
	reg.OnStateChange(func(s map[string]any) { notified = append(notified, s) })

	reg.SetState(map[string]any{"open": []any{"Console"}})
	require.Len(t, notified, 1)
	assert.Equal(t, []string{"Console"}, notified[0]["open"])
}
