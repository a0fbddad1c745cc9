package ui

// FocusManager tracks and rotates focus across dock instances by ID.
type FocusManager struct {
	Current  string   // ID of the currently focused panel
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

func (f *FocusManager) indexOf(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) moveTo(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}

// Next advances focus to the next panel in order and returns its ID.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	f.moveTo(f.Order[(f.indexOf(f.Current)+1)%len(f.Order)])
	return f.Current
}

// Prev moves focus to the previous panel in order and returns its ID.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.indexOf(f.Current) - 1
	if idx < 0 {
		idx = len(f.Order) - 1
	}
	f.moveTo(f.Order[idx])
	return f.Current
}

// SetFocus focuses the given panel ID. Returns false when the ID is not
// in the tab order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.indexOf(id) < 0 {
		return false
	}
	f.moveTo(id)
	return true
}

// SetOrder replaces the tab order. When the current focus is no longer
// present it falls back to the first entry.
func (f *FocusManager) SetOrder(ids []string) {
	f.Order = ids
	if f.indexOf(f.Current) < 0 {
		if len(ids) > 0 {
			f.moveTo(ids[0])
		} else {
			f.Current = ""
		}
	}
}
