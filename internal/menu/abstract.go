// Package menu provides the editor menu machinery: a static descriptor tree
// declaring menus, actions, and separators, and an abstract runtime menu
// that is materialized into concrete widgets through a Builder.
package menu

import (
	"sort"
)

// PriorityAppend as an order value places an item after every explicitly
// ordered sibling in its section.
const PriorityAppend = int(^uint(0) >> 1) // max int

type itemKind int

const (
	kindMenu itemKind = iota
	kindAction
	kindSeparator
)

type item struct {
	kind    itemKind
	section int
	order   int
	seq     int // insertion order, tie-break for equal (section, order)
	key     string
	submenu *AbstractMenu
}

// AbstractMenu is a mutable runtime menu tree. It knows nothing about
// widgets; Build walks the tree through a Builder which produces the
// concrete representation.
type AbstractMenu struct {
	name         string
	items        []*item
	nextSeq      int
	onAboutToShow func(*AbstractMenu)
}

// NewAbstractMenu creates an empty menu. The root menu conventionally has
// an empty name.
func NewAbstractMenu(name string) *AbstractMenu {
	return &AbstractMenu{name: name}
}

// Name returns the menu's display name.
func (m *AbstractMenu) Name() string { return m.name }

// IsEmpty reports whether the menu has no children.
func (m *AbstractMenu) IsEmpty() bool { return len(m.items) == 0 }

// SetOnAboutToShow installs a callback run at the start of every Build,
// before the menu's children are emitted. Used for dynamically populated
// submenus such as recent files.
func (m *AbstractMenu) SetOnAboutToShow(fn func(*AbstractMenu)) {
	m.onAboutToShow = fn
}

// CreateMenu returns the existing direct submenu with the given name, or
// creates one in the next empty section. Idempotent by name.
func (m *AbstractMenu) CreateMenu(name string) *AbstractMenu {
	if existing := m.FindMenu(name); existing != nil {
		return existing
	}
	return m.CreateMenuAt(name, m.GetNextEmptySection(), 0)
}

// CreateMenuAt behaves like CreateMenu but places a newly created submenu
// at the given section and order.
func (m *AbstractMenu) CreateMenuAt(name string, section, order int) *AbstractMenu {
	if existing := m.FindMenu(name); existing != nil {
		return existing
	}
	sub := NewAbstractMenu(name)
	m.insert(&item{kind: kindMenu, section: section, order: order, submenu: sub})
	return sub
}

// AddAction appends an action entry bound to the given command key.
func (m *AbstractMenu) AddAction(key string, section, order int) {
	m.insert(&item{kind: kindAction, section: section, order: order, key: key})
}

// AddSeparator appends an explicit separator line within a section.
func (m *AbstractMenu) AddSeparator(section, order int) {
	m.insert(&item{kind: kindSeparator, section: section, order: order})
}

// FindMenu returns the direct child menu with the given name, or nil.
func (m *AbstractMenu) FindMenu(name string) *AbstractMenu {
	for _, it := range m.items {
		if it.kind == kindMenu && it.submenu.name == name {
			return it.submenu
		}
	}
	return nil
}

// FindMenuRecursive searches the whole subtree depth-first for a menu with
// the given name.
func (m *AbstractMenu) FindMenuRecursive(name string) *AbstractMenu {
	for _, it := range m.items {
		if it.kind != kindMenu {
			continue
		}
		if it.submenu.name == name {
			return it.submenu
		}
		if found := it.submenu.FindMenuRecursive(name); found != nil {
			return found
		}
	}
	return nil
}

// Clear removes all children. The menu itself stays in its parent.
func (m *AbstractMenu) Clear() {
	m.items = nil
}

// GetNextEmptySection returns the lowest section index not occupied by any
// child item.
func (m *AbstractMenu) GetNextEmptySection() int {
	used := make(map[int]bool, len(m.items))
	for _, it := range m.items {
		used[it.section] = true
	}
	section := 0
	for used[section] {
		section++
	}
	return section
}

// Build materializes the menu into b, discarding whatever b held before.
// Children are emitted ordered by (section, order), ties resolved by
// insertion order; an implicit separator is emitted between sections.
func (m *AbstractMenu) Build(b Builder) {
	if m.onAboutToShow != nil {
		m.onAboutToShow(m)
	}

	sorted := make([]*item, len(m.items))
	copy(sorted, m.items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].section != sorted[j].section {
			return sorted[i].section < sorted[j].section
		}
		if sorted[i].order != sorted[j].order {
			return sorted[i].order < sorted[j].order
		}
		return sorted[i].seq < sorted[j].seq
	})

	lastSection := 0
	for i, it := range sorted {
		if i > 0 && it.section != lastSection {
			b.Separator()
		}
		lastSection = it.section
		switch it.kind {
		case kindMenu:
			b.BeginMenu(it.submenu.name)
			it.submenu.Build(b)
			b.EndMenu()
		case kindAction:
			b.Action(it.key)
		case kindSeparator:
			b.Separator()
		}
	}
}

func (m *AbstractMenu) insert(it *item) {
	it.seq = m.nextSeq
	m.nextSeq++
	m.items = append(m.items, it)
}
