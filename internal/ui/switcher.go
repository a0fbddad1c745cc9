package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// PanelSwitcher is an overlay for spawning a dockable widget by name,
// with fuzzy filtering over the creatable panel list.
type PanelSwitcher struct {
	list list.Model
}

type panelItem string

func (p panelItem) FilterValue() string { return string(p) }
func (p panelItem) Title() string       { return string(p) }
func (p panelItem) Description() string { return "" }

// fuzzyFilter ranks targets against the term with normalized, case-folded
// fuzzy matching, best matches first.
func fuzzyFilter(term string, targets []string) []list.Rank {
	ranks := fuzzy.RankFindNormalizedFold(term, targets)
	sort.Sort(ranks)
	out := make([]list.Rank, len(ranks))
	for i, r := range ranks {
		out[i] = list.Rank{Index: r.OriginalIndex}
	}
	return out
}

// NewPanelSwitcher creates a switcher over the given panel names.
func NewPanelSwitcher(names []string) *PanelSwitcher {
	items := make([]list.Item, len(names))
	for i, n := range names {
		items[i] = panelItem(n)
	}
	l := list.New(items, NewCompactListDelegate(), 40, 12)
	l.Title = "Open panel"
	l.Filter = fuzzyFilter
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Title
	return &PanelSwitcher{list: l}
}

// Init implements tea.Model.
func (m *PanelSwitcher) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *PanelSwitcher) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			if m.list.FilterState() == list.Filtering {
				break // let the list cancel its own filter first
			}
			return m, func() tea.Msg { return DismissOverlayMsg{} }
		case "enter":
			if sel := m.list.SelectedItem(); sel != nil {
				name := string(sel.(panelItem))
				return m, func() tea.Msg { return SpawnPanelMsg{Name: name} }
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *PanelSwitcher) View() string {
	help := "Enter: open  /: filter  Esc: cancel"
	return Styles.Box.Render(m.list.View() + "\n" + Styles.Muted.Render(help))
}
