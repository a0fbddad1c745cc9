package ui

import "testing"

func TestFocusManager_NextPrevWraps(t *testing.T) {
	f := &FocusManager{Order: []string{"a", "b", "c"}, Current: "a"}

	if got := f.Next(); got != "b" {
		t.Errorf("Next = %q, want b", got)
	}
	f.Current = "c"
	if got := f.Next(); got != "a" {
		t.Errorf("Next from end = %q, want a", got)
	}
	if got := f.Prev(); got != "c" {
		t.Errorf("Prev from start = %q, want c", got)
	}
}

func TestFocusManager_SetFocus(t *testing.T) {
	var changes []string
	f := &FocusManager{Order: []string{"a", "b"}}
	f.OnChange = func(from, to string) {
		changes = append(changes, from+">"+to)
	}

	if !f.SetFocus("b") {
		t.Error("SetFocus(b) should succeed")
	}
	if f.SetFocus("missing") {
		t.Error("SetFocus(missing) should fail")
	}
	if f.Current != "b" {
		t.Errorf("Current = %q, want b", f.Current)
	}
	if len(changes) != 1 || changes[0] != ">b" {
		t.Errorf("changes = %v", changes)
	}
}

func TestFocusManager_SetOrderKeepsValidFocus(t *testing.T) {
	f := &FocusManager{Order: []string{"a", "b"}, Current: "b"}

	f.SetOrder([]string{"b", "c"})
	if f.Current != "b" {
		t.Errorf("Current = %q, want b kept", f.Current)
	}

	f.SetOrder([]string{"x", "y"})
	if f.Current != "x" {
		t.Errorf("Current = %q, want fallback to first", f.Current)
	}

	f.SetOrder(nil)
	if f.Current != "" {
		t.Errorf("Current = %q, want empty", f.Current)
	}
}

func TestSplitBounds_CoversRegion(t *testing.T) {
	cols := SplitBounds(100, 40, 3, true)
	if len(cols) != 3 {
		t.Fatalf("len = %d", len(cols))
	}
	total := 0
	for _, b := range cols {
		total += b.W
		if b.H != 40 {
			t.Errorf("column height = %d, want 40", b.H)
		}
	}
	if total != 100 {
		t.Errorf("columns cover %d, want 100", total)
	}

	rows := SplitBounds(100, 41, 2, false)
	if rows[0].H+rows[1].H != 41 {
		t.Errorf("rows cover %d, want 41", rows[0].H+rows[1].H)
	}
	if rows[1].Y != rows[0].H {
		t.Errorf("second row starts at %d, want %d", rows[1].Y, rows[0].H)
	}
}
