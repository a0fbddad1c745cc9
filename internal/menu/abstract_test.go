package menu

import (
	"reflect"
	"testing"
)

// recordingBuilder flattens Build calls for assertions.
type recordingBuilder struct {
	ops []string
}

func (b *recordingBuilder) BeginMenu(name string) { b.ops = append(b.ops, "menu:"+name) }
func (b *recordingBuilder) EndMenu()              { b.ops = append(b.ops, "end") }
func (b *recordingBuilder) Action(key string)     { b.ops = append(b.ops, "action:"+key) }
func (b *recordingBuilder) Separator()            { b.ops = append(b.ops, "sep") }

func TestCreateMenuIdempotent(t *testing.T) {
	root := NewAbstractMenu("")
	file := root.CreateMenu("File")
	again := root.CreateMenu("File")

	if file != again {
		t.Error("CreateMenu with the same name must return the same menu")
	}
	if root.FindMenu("File") != file {
		t.Error("FindMenu should locate the created menu")
	}
}

func TestGetNextEmptySection(t *testing.T) {
	root := NewAbstractMenu("")
	root.AddAction("general.new", 0, 0)
	root.AddAction("general.open", 2, 0)

	if got := root.GetNextEmptySection(); got != 1 {
		t.Errorf("GetNextEmptySection = %d, want 1", got)
	}

	root.AddAction("general.save", 1, 0)
	if got := root.GetNextEmptySection(); got != 3 {
		t.Errorf("after filling 1: got %d, want 3", got)
	}
}

func TestCreateMenuUsesNextEmptySection(t *testing.T) {
	root := NewAbstractMenu("")
	root.AddAction("general.new", 0, 0)
	root.CreateMenu("Window")

	// Window landed in section 1; the next free slot moves past it.
	if got := root.GetNextEmptySection(); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestFindMenuRecursive(t *testing.T) {
	root := NewAbstractMenu("")
	file := root.CreateMenu("File")
	recent := file.CreateMenu("Recent Files")

	if root.FindMenu("Recent Files") != nil {
		t.Error("FindMenu must not descend")
	}
	if root.FindMenuRecursive("Recent Files") != recent {
		t.Error("FindMenuRecursive should locate nested menus")
	}
	if root.FindMenuRecursive("Toolbars") != nil {
		t.Error("missing menu should yield nil")
	}
}

func TestClearKeepsNode(t *testing.T) {
	root := NewAbstractMenu("")
	file := root.CreateMenu("File")
	file.AddAction("general.save", 0, 0)

	file.Clear()

	if !file.IsEmpty() {
		t.Error("Clear should remove children")
	}
	if root.FindMenu("File") != file {
		t.Error("Clear must not detach the menu from its parent")
	}
}

func TestBuildOrdersBySectionAndOrder(t *testing.T) {
	root := NewAbstractMenu("")
	root.AddAction("b", 1, 0)
	root.AddAction("a", 0, 1)
	root.AddAction("c", 0, 0)

	b := &recordingBuilder{}
	root.Build(b)

	want := []string{"action:c", "action:a", "sep", "action:b"}
	if !reflect.DeepEqual(b.ops, want) {
		t.Errorf("ops = %v, want %v", b.ops, want)
	}
}

func TestBuildTieBreaksByInsertionOrder(t *testing.T) {
	root := NewAbstractMenu("")
	root.AddAction("first", 0, 5)
	root.AddAction("second", 0, 5)

	b := &recordingBuilder{}
	root.Build(b)

	want := []string{"action:first", "action:second"}
	if !reflect.DeepEqual(b.ops, want) {
		t.Errorf("ops = %v, want %v", b.ops, want)
	}
}

func TestBuildDescendsIntoSubmenus(t *testing.T) {
	root := NewAbstractMenu("")
	file := root.CreateMenuAt("File", 0, 0)
	file.AddAction("general.open", 0, 0)

	b := &recordingBuilder{}
	root.Build(b)

	want := []string{"menu:File", "action:general.open", "end"}
	if !reflect.DeepEqual(b.ops, want) {
		t.Errorf("ops = %v, want %v", b.ops, want)
	}
}

func TestBuildRunsAboutToShow(t *testing.T) {
	root := NewAbstractMenu("")
	recent := root.CreateMenu("Recent Files")
	recent.SetOnAboutToShow(func(m *AbstractMenu) {
		m.Clear()
		m.AddAction("open:/tmp/a.lvl", 0, 0)
	})

	b := &recordingBuilder{}
	root.Build(b)
	want := []string{"menu:Recent Files", "action:open:/tmp/a.lvl", "end"}
	if !reflect.DeepEqual(b.ops, want) {
		t.Errorf("first build: %v, want %v", b.ops, want)
	}

	// Rebuild repopulates instead of accumulating.
	b = &recordingBuilder{}
	root.Build(b)
	if !reflect.DeepEqual(b.ops, want) {
		t.Errorf("rebuild: %v, want %v", b.ops, want)
	}
}
