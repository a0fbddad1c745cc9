package editor

import (
	"testing"

	"editkit/internal/events"
	"editkit/internal/personalization"
)

// flatBuilder records the materialization walk for assertions.
type flatBuilder struct {
	ops []string
}

func (b *flatBuilder) BeginMenu(name string) { b.ops = append(b.ops, "menu:"+name) }
func (b *flatBuilder) EndMenu()              { b.ops = append(b.ops, "end") }
func (b *flatBuilder) Action(key string)     { b.ops = append(b.ops, "action:"+key) }
func (b *flatBuilder) Separator()            { b.ops = append(b.ops, "sep") }

func (b *flatBuilder) contains(op string) bool {
	for _, o := range b.ops {
		if o == op {
			return true
		}
	}
	return false
}

func TestAddToMenuSkipsUnregisteredActions(t *testing.T) {
	e := New("Level Editor")
	e.RegisterAction("general.save", func() bool { return true })

	e.AddToMenu(FileMenu, Save, Open) // general.open never registered

	b := &flatBuilder{}
	e.RootMenu().Build(b)
	if !b.contains("action:general.save") {
		t.Error("registered action should be materialized")
	}
	if b.contains("action:general.open") {
		t.Error("unregistered action must be skipped")
	}
}

func TestGetMenuFindsOrCreates(t *testing.T) {
	e := New("Level Editor")
	tools := e.GetMenu("Tools")
	if e.GetMenu("Tools") != tools {
		t.Error("GetMenu should reuse the existing menu")
	}
}

func TestMenuByItem(t *testing.T) {
	e := New("Level Editor")
	e.AddToMenu(FileMenu)

	if e.MenuByItem(FileMenu) == nil {
		t.Error("materialized menu should resolve")
	}
	if e.MenuByItem(EditMenu) != nil {
		t.Error("unmaterialized menu should resolve to nil")
	}
	if e.MenuByItem(Save) != nil {
		t.Error("actions are not menus")
	}
}

func TestHelpMenuPresentByDefault(t *testing.T) {
	e := New("Level Editor")
	if e.RootMenu().FindMenu("Help") == nil {
		t.Error("every editor carries the Help menu")
	}
}

func TestQuitVeto(t *testing.T) {
	global := events.NewBroadcaster()
	e := New("Level Editor",
		WithGlobalBus(global),
		WithCanQuit(func() (bool, []string) {
			return false, []string{"level1.lvl"}
		}))
	_ = e

	ev := events.NewAboutToQuitEvent()
	global.Publish(ev)

	if !ev.Vetoed() {
		t.Fatal("unsaved changes must veto the quit")
	}
	if got := ev.ChangeLists()["Level Editor"]; len(got) != 1 || got[0] != "level1.lvl" {
		t.Errorf("change list = %v", got)
	}
}

func TestQuitAllowedWhenClean(t *testing.T) {
	global := events.NewBroadcaster()
	New("Level Editor",
		WithGlobalBus(global),
		WithCanQuit(func() (bool, []string) { return true, nil }))

	ev := events.NewAboutToQuitEvent()
	global.Publish(ev)
	if ev.Vetoed() {
		t.Error("clean editor must not veto")
	}
}

func TestDetachStopsQuitParticipation(t *testing.T) {
	global := events.NewBroadcaster()
	e := New("Level Editor",
		WithGlobalBus(global),
		WithCanQuit(func() (bool, []string) { return false, []string{"x"} }))

	e.Detach()
	ev := events.NewAboutToQuitEvent()
	global.Publish(ev)
	if ev.Vetoed() {
		t.Error("detached editor must not veto")
	}
}

func TestPropertyScoping(t *testing.T) {
	store := personalization.NewMemory()
	a := New("Level Editor", WithPersonalization(store))
	b := New("Material Editor", WithPersonalization(store))

	a.SetProperty("zoom", 2)
	if b.Property("zoom") != nil {
		t.Error("properties are scoped per editor name")
	}
	if a.Property("zoom") != 2 {
		t.Error("property should read back")
	}
}

func TestQueryBroadcasterAnswered(t *testing.T) {
	e := New("Level Editor")
	query := &events.QueryBroadcasterEvent{}
	e.Broadcaster().Publish(query)
	if query.Broadcaster != e.Broadcaster() {
		t.Error("editor must answer the broadcaster query synchronously")
	}
}
