package ui

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"editkit/internal/adaptive"
	"editkit/internal/editor"
	"editkit/internal/events"
	"editkit/internal/logging"
	"editkit/internal/ui/textutil"
)

const (
	menuBarHeight = 1
	statusHeight  = 1
)

// App is the top-level Bubble Tea model. It hosts one editor: its menu
// bar, its dock panels, modal overlays, and the keybind layer.
type App struct {
	ed        *editor.Editor
	globalBus *events.Broadcaster

	menubar  *MenuBar
	keys     *KeyHandler
	overlays OverlayStack
	focus    FocusManager

	panels []Panel
	width  int
	height int
	status string
}

// NewApp composes the UI shell around an editor. The global bus carries
// the quit flow; pass the same bus every editor is connected to.
func NewApp(ed *editor.Editor, globalBus *events.Broadcaster) *App {
	a := &App{
		ed:        ed,
		globalBus: globalBus,
		menubar:   NewMenuBar(ed.RootMenu(), ed.Actions()),
		keys:      NewKeyHandler(NewKeybindRegistry(ed.Actions())),
	}
	ed.Broadcaster().Connect(events.OrientationChanged, func(ev events.Event) {
		a.relayout()
	})
	return a
}

// Keybinds exposes the sequence registry so callers can bind actions.
func (a *App) Keybinds() *KeybindRegistry { return a.keys.Registry }

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	a.ed.LoadLayoutPersonalization()
	if a.ed.DockingEnabled() {
		a.ed.RestoreDockingLayout()
	}
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Widgets detached on the previous cycle are safe to finalize now.
	if reg := a.ed.Docking(); reg != nil {
		reg.ReleasePending()
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.ed.Resize(msg.Width, msg.Height)
		a.relayout()
		return a, nil

	case QuitRequestMsg:
		ev := events.NewAboutToQuitEvent()
		a.globalBus.Publish(ev)
		if ev.Vetoed() {
			var pending []string
			for owner, files := range ev.ChangeLists() {
				pending = append(pending, fmt.Sprintf("%s (%d)", owner, len(files)))
			}
			sort.Strings(pending)
			a.status = "unsaved changes: " + strings.Join(pending, ", ")
			return a, nil
		}
		a.ed.SaveLayoutPersonalization()
		a.ed.Detach()
		return a, tea.Quit

	case SpawnPanelMsg:
		a.overlays.Pop()
		if reg := a.ed.Docking(); reg != nil {
			if _, err := reg.Spawn(msg.Name); err != nil {
				a.status = fmt.Sprintf("cannot open %s: %v", msg.Name, err)
				logging.For("ui").Warn("panel spawn failed", "name", msg.Name, "err", err)
			}
			a.relayout()
		}
		return a, nil

	case DismissOverlayMsg:
		a.overlays.Pop()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, a.forwardToFocused(msg)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()

	// Overlays take input first.
	if top, ok := a.overlays.Peek(); ok {
		if top.IsDismissKey(s) {
			a.overlays.Pop()
			return a, nil
		}
		cmd, _ := a.overlays.UpdateTop(msg)
		return a, cmd
	}

	if a.menubar.IsOpen() {
		a.menubar.HandleKey(msg)
		a.relayout()
		return a, nil
	}

	switch s {
	case "ctrl+q":
		return a, func() tea.Msg { return QuitRequestMsg{} }
	case "f10":
		a.menubar.Toggle()
		return a, nil
	case "ctrl+p":
		if reg := a.ed.Docking(); reg != nil {
			a.overlays.Push(Overlay{
				Widget:  NewPanelSwitcher(reg.CreatableWidgets()),
				Dismiss: "",
			})
		}
		return a, nil
	case "tab":
		a.focus.Next()
		return a, nil
	case "shift+tab":
		a.focus.Prev()
		return a, nil
	case "ctrl+w":
		a.closeFocused()
		return a, nil
	}

	if consumed, actionKey := a.keys.Handle(msg); consumed {
		if actionKey != "" {
			a.ed.Actions().Invoke(actionKey)
			a.relayout()
		}
		return a, nil
	}

	return a, a.forwardToFocused(msg)
}

// closeFocused detaches the focused panel. The widget is released at the
// start of the next update cycle, after in-flight events settle.
func (a *App) closeFocused() {
	reg := a.ed.Docking()
	if reg == nil || a.focus.Current == "" {
		return
	}
	for _, inst := range reg.LiveInstances() {
		if inst.ID == a.focus.Current {
			reg.Detach(inst)
			a.relayout()
			return
		}
	}
}

// forwardToFocused routes a message to the focused panel's widget, or to
// the editor content widget when no panel has focus.
func (a *App) forwardToFocused(msg tea.Msg) tea.Cmd {
	if reg := a.ed.Docking(); reg != nil && a.focus.Current != "" {
		for _, inst := range reg.LiveInstances() {
			if inst.ID == a.focus.Current {
				m, cmd := inst.Widget.Update(msg)
				inst.Widget = m
				return cmd
			}
		}
		return nil
	}
	if w := a.ed.Content().Widget(); w != nil {
		m, cmd := w.Update(msg)
		a.ed.Content().SetWidget(m)
		return cmd
	}
	return nil
}

// relayout recomputes panel bounds from the current size and orientation
// and pushes the new sizes into the widgets.
func (a *App) relayout() {
	reg := a.ed.Docking()
	if reg == nil {
		return
	}
	live := reg.LiveInstances()
	ids := make([]string, len(live))
	for i, inst := range live {
		ids[i] = inst.ID
	}
	a.focus.SetOrder(ids)

	h := a.height - menuBarHeight - statusHeight
	if h < 0 {
		h = 0
	}
	horizontal := a.ed.Orientation() == adaptive.Horizontal
	bounds := SplitBounds(a.width, h, len(live), horizontal)

	a.panels = a.panels[:0]
	for i, inst := range live {
		a.panels = append(a.panels, Panel{Instance: inst, Bounds: bounds[i]})
		size := tea.WindowSizeMsg{Width: bounds[i].W - 2, Height: bounds[i].H - 2}
		m, _ := inst.Widget.Update(size)
		inst.Widget = m
	}
}

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder
	b.WriteString(a.menubar.View(a.width))
	b.WriteString("\n")

	if top, ok := a.overlays.Peek(); ok {
		b.WriteString(top.Widget.View())
	} else {
		b.WriteString(a.renderPanels())
	}

	if hint := RenderKeybindHelp(a.keys); hint != "" {
		b.WriteString("\n")
		b.WriteString(hint)
	}
	b.WriteString("\n")
	b.WriteString(Styles.Muted.Render(textutil.Truncate(a.status, a.width)))
	return b.String()
}

func (a *App) renderPanels() string {
	if len(a.panels) == 0 {
		if w := a.ed.Content().Widget(); w != nil {
			return w.View()
		}
		return Styles.Muted.Render("no panels open (ctrl+p)")
	}

	views := make([]string, len(a.panels))
	for i, p := range a.panels {
		title := p.Instance.Name
		if p.Instance.ID == a.focus.Current {
			title = Styles.Selected.Render(title)
		} else {
			title = Styles.Muted.Render(title)
		}
		body := lipgloss.NewStyle().
			Width(p.Bounds.W - 2).
			Height(p.Bounds.H - 3).
			MaxWidth(p.Bounds.W - 2).
			MaxHeight(p.Bounds.H - 3).
			Render(p.Instance.Widget.View())
		views[i] = Styles.Box.Render(title + "\n" + body)
	}
	if a.ed.Orientation() == adaptive.Horizontal {
		return lipgloss.JoinHorizontal(lipgloss.Top, views...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}
