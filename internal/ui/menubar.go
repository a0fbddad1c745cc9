package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"editkit/internal/action"
	"editkit/internal/menu"
	"editkit/internal/ui/textutil"
)

type entryKind int

const (
	entryAction entryKind = iota
	entrySeparator
	entrySubmenu
)

type menuEntry struct {
	kind entryKind
	key  string // action key for entryAction
	sub  *menuNode
}

type menuNode struct {
	name    string
	entries []menuEntry
}

// MenuBarBuilder materializes an AbstractMenu build into a navigable tree.
// It implements menu.Builder; one Build call produces the whole tree, so
// dynamic menus repopulate every time the bar opens.
type MenuBarBuilder struct {
	root  menuNode
	stack []*menuNode
}

func (b *MenuBarBuilder) top() *menuNode {
	if len(b.stack) == 0 {
		return &b.root
	}
	return b.stack[len(b.stack)-1]
}

func (b *MenuBarBuilder) BeginMenu(name string) {
	sub := &menuNode{name: name}
	cur := b.top()
	cur.entries = append(cur.entries, menuEntry{kind: entrySubmenu, sub: sub})
	b.stack = append(b.stack, sub)
}

func (b *MenuBarBuilder) EndMenu() {
	if len(b.stack) > 0 {
		b.stack = b.stack[:len(b.stack)-1]
	}
}

func (b *MenuBarBuilder) Action(key string) {
	cur := b.top()
	cur.entries = append(cur.entries, menuEntry{kind: entryAction, key: key})
}

func (b *MenuBarBuilder) Separator() {
	cur := b.top()
	// Trailing or leading separators render as noise; drop them here.
	if len(cur.entries) == 0 {
		return
	}
	if cur.entries[len(cur.entries)-1].kind == entrySeparator {
		return
	}
	cur.entries = append(cur.entries, menuEntry{kind: entrySeparator})
}

// MenuBar renders the editor's root menu as a horizontal bar with dropdown
// navigation. It is chrome owned by the App, not a standalone tea.Model.
type MenuBar struct {
	root    *menu.AbstractMenu
	actions *action.Registry

	tree    menuNode
	open    bool
	topIdx  int
	path    []*menuNode // open dropdown chain, innermost last
	cursors []int       // cursor per open level
}

// NewMenuBar creates a bar over the given root menu and action set.
func NewMenuBar(root *menu.AbstractMenu, actions *action.Registry) *MenuBar {
	return &MenuBar{root: root, actions: actions}
}

// IsOpen reports whether a dropdown is showing.
func (m *MenuBar) IsOpen() bool { return m.open }

// Open rebuilds the menu tree and opens the dropdown at the given top
// index. Rebuilding runs the about-to-show hooks, so dynamic submenus
// like recent files are current.
func (m *MenuBar) Open(topIdx int) {
	b := &MenuBarBuilder{}
	m.root.Build(b)
	m.tree = b.root
	if len(m.topLevel()) == 0 {
		return
	}
	m.open = true
	m.topIdx = clamp(topIdx, 0, len(m.topLevel())-1)
	m.enterTop()
}

// Toggle opens the first menu or closes the open dropdown.
func (m *MenuBar) Toggle() {
	if m.open {
		m.Close()
		return
	}
	m.Open(0)
}

// Close dismisses the dropdown.
func (m *MenuBar) Close() {
	m.open = false
	m.path = nil
	m.cursors = nil
}

func (m *MenuBar) topLevel() []*menuNode {
	nodes := make([]*menuNode, 0, len(m.tree.entries))
	for i := range m.tree.entries {
		if m.tree.entries[i].kind == entrySubmenu {
			nodes = append(nodes, m.tree.entries[i].sub)
		}
	}
	return nodes
}

func (m *MenuBar) enterTop() {
	node := m.topLevel()[m.topIdx]
	m.path = []*menuNode{node}
	m.cursors = []int{firstSelectable(node)}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func firstSelectable(n *menuNode) int {
	for i, e := range n.entries {
		if e.kind != entrySeparator {
			return i
		}
	}
	return 0
}

func (m *MenuBar) current() (*menuNode, int) {
	n := m.path[len(m.path)-1]
	return n, m.cursors[len(m.cursors)-1]
}

func (m *MenuBar) moveCursor(delta int) {
	n, cur := m.current()
	if len(n.entries) == 0 {
		return
	}
	for i := 0; i < len(n.entries); i++ {
		cur = (cur + delta + len(n.entries)) % len(n.entries)
		if n.entries[cur].kind != entrySeparator {
			break
		}
	}
	m.cursors[len(m.cursors)-1] = cur
}

// HandleKey processes a key press while the bar has input. Returns whether
// the key was consumed and the action key invoked, if any.
func (m *MenuBar) HandleKey(msg tea.KeyMsg) (consumed bool, invoked string) {
	if !m.open {
		return false, ""
	}
	switch msg.String() {
	case "esc":
		if len(m.path) > 1 {
			m.path = m.path[:len(m.path)-1]
			m.cursors = m.cursors[:len(m.cursors)-1]
			return true, ""
		}
		m.Close()
		return true, ""
	case "left":
		if len(m.path) > 1 {
			m.path = m.path[:len(m.path)-1]
			m.cursors = m.cursors[:len(m.cursors)-1]
			return true, ""
		}
		m.topIdx = clamp(m.topIdx-1, 0, len(m.topLevel())-1)
		m.enterTop()
		return true, ""
	case "right":
		if m.topIdx < len(m.topLevel())-1 {
			m.topIdx++
			m.enterTop()
		}
		return true, ""
	case "up":
		m.moveCursor(-1)
		return true, ""
	case "down":
		m.moveCursor(1)
		return true, ""
	case "enter":
		n, cur := m.current()
		if cur >= len(n.entries) {
			return true, ""
		}
		switch e := n.entries[cur]; e.kind {
		case entrySubmenu:
			m.path = append(m.path, e.sub)
			m.cursors = append(m.cursors, firstSelectable(e.sub))
		case entryAction:
			m.Close()
			m.actions.Invoke(e.key)
			return true, e.key
		}
		return true, ""
	}
	return true, "" // the open bar swallows everything else
}

// View renders the bar line padded to width, plus the open dropdown.
func (m *MenuBar) View(width int) string {
	if len(m.tree.entries) == 0 {
		// Render top names without opening: build once so the bar is
		// never blank before first use.
		b := &MenuBarBuilder{}
		m.root.Build(b)
		m.tree = b.root
	}
	var bar strings.Builder
	for i, node := range m.topLevel() {
		style := Styles.BarItem
		if m.open && i == m.topIdx {
			style = Styles.BarOpen
		}
		bar.WriteString(style.Render(node.name))
	}
	// Item segments carry ANSI escapes, so the pad must use styled width.
	line := Styles.Bar.Render(textutil.PadRightStyled(bar.String(), width))
	if !m.open || len(m.path) == 0 {
		return line
	}
	return line + "\n" + m.renderDropdown()
}

func (m *MenuBar) renderDropdown() string {
	node, cur := m.current()

	labels := make([]string, len(node.entries))
	maxw := 0
	for i, e := range node.entries {
		switch e.kind {
		case entrySeparator:
			continue
		case entrySubmenu:
			labels[i] = e.sub.name + " ▸"
		case entryAction:
			label := m.actions.Label(e.key)
			if m.actions.Checkable(e.key) {
				if m.actions.Checked(e.key) {
					label = "✓ " + label
				} else {
					label = "  " + label
				}
			}
			labels[i] = label
		}
		if w := textutil.VisualWidth(labels[i]); w > maxw {
			maxw = w
		}
	}

	rows := make([]string, 0, len(node.entries))
	for i, e := range node.entries {
		if e.kind == entrySeparator {
			rows = append(rows, strings.Repeat("─", maxw))
			continue
		}
		text := textutil.PadRightVisual(labels[i], maxw)
		if i == cur {
			text = Styles.Selected.Render(text)
		} else {
			text = Styles.Normal.Render(text)
		}
		rows = append(rows, text)
	}
	return Styles.Box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
