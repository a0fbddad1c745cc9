package editor

import (
	"fmt"

	"editkit/internal/kvutil"
	"editkit/internal/menu"
)

const maxRecentFiles = 10

// recentFilesProperty is the per-project personalization key.
const recentFilesProperty = "recentFiles"

// AddRecentFile records a path as most recently used: an existing equal
// entry moves to the front, the list stays capped at ten.
func (e *Editor) AddRecentFile(path string) {
	recent := e.RecentFiles()
	out := make([]string, 0, len(recent)+1)
	out = append(out, path)
	for _, p := range recent {
		if p != path {
			out = append(out, p)
		}
	}
	if len(out) > maxRecentFiles {
		out = out[:maxRecentFiles]
	}
	e.SetProjectProperty(recentFilesProperty, out)
}

// RecentFiles returns the most-recently-used paths, newest first.
func (e *Editor) RecentFiles() []string {
	return kvutil.Strings(e.ProjectProperty(recentFilesProperty))
}

// populateRecentFilesMenu rebuilds the Recent Files submenu on every menu
// build; each entry invokes the editor's open-file handler.
func (e *Editor) populateRecentFilesMenu(m *menu.AbstractMenu) {
	m.Clear()
	for i, path := range e.RecentFiles() {
		key := fmt.Sprintf("recent.%d", i)
		p := path
		e.actions.Register(key, func() bool {
			if e.openFile == nil {
				return false
			}
			return e.openFile(p)
		})
		e.actions.SetLabel(key, p)
		m.AddAction(key, 0, i)
	}
}
