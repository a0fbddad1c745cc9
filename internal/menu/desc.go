package menu

import (
	"log/slog"

	"editkit/internal/action"
	"editkit/internal/logging"
)

// ItemID is the stable identity of a declared menu item. Consumers define
// their own constants (FileMenu, Save, RecentFiles, ...).
type ItemID int

// NoItem is the zero ItemID; declarations never use it.
const NoItem ItemID = 0

type declKind int

const (
	declMenu declKind = iota
	declAction
	declSeparator
)

// Decl is one node of the static menu declaration. Build declarations with
// Menu, Action, and Separator; pass the roots to Desc.Init.
type Decl struct {
	kind     declKind
	id       ItemID
	section  int
	order    int
	label    string
	key      string
	children []Decl
}

// Menu declares a named submenu with nested children.
func Menu(id ItemID, section, order int, label string, children ...Decl) Decl {
	return Decl{kind: declMenu, id: id, section: section, order: order, label: label, children: children}
}

// Action declares a menu entry bound to a command key.
func Action(id ItemID, section, order int, key string) Decl {
	return Decl{kind: declAction, id: id, section: section, order: order, key: key}
}

// Separator declares an explicit separator line.
func Separator(section, order int) Decl {
	return Decl{kind: declSeparator, section: section, order: order}
}

type descNode struct {
	decl   Decl
	parent ItemID // NoItem for roots
}

// Desc is the menu descriptor tree: an ordered forest of declarations,
// built once at editor construction and immutable afterwards.
//
// Init must be called exactly once; this is caller discipline, not guarded.
type Desc struct {
	nodes map[ItemID]*descNode
	log   *slog.Logger
}

// NewDesc creates an empty descriptor.
func NewDesc() *Desc {
	return &Desc{
		nodes: make(map[ItemID]*descNode),
		log:   logging.For("menu"),
	}
}

// Init records the declaration forest.
func (d *Desc) Init(decls ...Decl) {
	for _, decl := range decls {
		d.register(decl, NoItem)
	}
}

func (d *Desc) register(decl Decl, parent ItemID) {
	if decl.kind != declSeparator {
		d.nodes[decl.id] = &descNode{decl: decl, parent: parent}
	}
	for _, child := range decl.children {
		d.register(child, decl.id)
	}
}

// ActionKey returns the command key bound to the item, or "" when the item
// is not an action or not declared.
func (d *Desc) ActionKey(id ItemID) string {
	node, ok := d.nodes[id]
	if !ok || node.decl.kind != declAction {
		return ""
	}
	return node.decl.key
}

// MenuName returns the declared label of a menu item, or "" when the item
// is not a menu.
func (d *Desc) MenuName(id ItemID) string {
	node, ok := d.nodes[id]
	if !ok || node.decl.kind != declMenu {
		return ""
	}
	return node.decl.label
}

// AddItem materializes the declared item into root, creating ancestor menus
// along the declared path as needed. Action items whose command key is not
// present in reg are skipped.
//
// Returns the submenu created or found for menu items, nil otherwise.
func (d *Desc) AddItem(root *AbstractMenu, id ItemID, reg *action.Registry) *AbstractMenu {
	node, ok := d.nodes[id]
	if !ok {
		d.log.Debug("AddItem for undeclared item", "item", int(id))
		return nil
	}

	parent := d.materializeParent(root, node.parent)
	if parent == nil {
		return nil
	}

	switch node.decl.kind {
	case declMenu:
		return parent.CreateMenuAt(node.decl.label, node.decl.section, node.decl.order)
	case declAction:
		if reg == nil || !reg.Has(node.decl.key) {
			d.log.Debug("skipping menu entry with unregistered command", "key", node.decl.key)
			return nil
		}
		parent.AddAction(node.decl.key, node.decl.section, node.decl.order)
	}
	return nil
}

// materializeParent ensures the chain of ancestor menus exists under root.
func (d *Desc) materializeParent(root *AbstractMenu, id ItemID) *AbstractMenu {
	if id == NoItem {
		return root
	}
	node, ok := d.nodes[id]
	if !ok || node.decl.kind != declMenu {
		d.log.Debug("declared item has non-menu parent", "parent", int(id))
		return nil
	}
	grand := d.materializeParent(root, node.parent)
	if grand == nil {
		return nil
	}
	return grand.CreateMenuAt(node.decl.label, node.decl.section, node.decl.order)
}
