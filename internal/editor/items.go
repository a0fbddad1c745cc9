package editor

import "editkit/internal/menu"

// Standard menu items every editor shares. Concrete editors opt in per
// item via AddToMenu; nothing is materialized until then.
const (
	FileMenu menu.ItemID = iota + 1
	NewFile
	NewFolder
	Open
	Close
	Save
	SaveAs
	RecentFiles
	EditMenu
	Undo
	Redo
	Copy
	Cut
	Paste
	Rename
	Delete
	Find
	FindPrevious
	FindNext
	SelectAll
	Duplicate
	ViewMenu
	ZoomIn
	ZoomOut
	WindowMenu
	HelpMenu
	Help
)

// ToggleAdaptiveLayoutCommand is the checked command behind the View menu
// toggle.
const ToggleAdaptiveLayoutCommand = "editor.toggle_adaptive_layout"

// newMenuDesc declares the default menu structure. Section and order pairs
// follow the classic editor arrangement: File and Edit first, Help pushed
// to the end of the bar.
func newMenuDesc() *menu.Desc {
	d := menu.NewDesc()
	d.Init(
		menu.Menu(FileMenu, 0, 0, "File",
			menu.Action(NewFile, 0, 0, "general.new"),
			menu.Action(NewFolder, 0, 1, "general.new_folder"),
			menu.Action(Open, 0, 2, "general.open"),
			menu.Action(Close, 0, 3, "general.close"),
			menu.Action(Save, 0, 4, "general.save"),
			menu.Action(SaveAs, 0, 5, "general.save_as"),
			menu.Menu(RecentFiles, 0, 6, "Recent Files"),
		),
		menu.Menu(EditMenu, 0, 1, "Edit",
			menu.Action(Undo, 0, 0, "general.undo"),
			menu.Action(Redo, 0, 1, "general.redo"),
			menu.Action(Copy, 1, 0, "general.copy"),
			menu.Action(Cut, 1, 1, "general.cut"),
			menu.Action(Paste, 1, 2, "general.paste"),
			menu.Action(Rename, 1, 3, "general.rename"),
			menu.Action(Delete, 1, 4, "general.delete"),
			menu.Action(Find, 2, 0, "general.find"),
			menu.Action(FindPrevious, 2, 1, "general.find_previous"),
			menu.Action(FindNext, 2, 2, "general.find_next"),
			menu.Action(SelectAll, 2, 3, "general.select_all"),
			menu.Action(Duplicate, 3, 0, "general.duplicate"),
		),
		menu.Menu(ViewMenu, 0, 2, "View",
			menu.Action(ZoomIn, 0, 0, "general.zoom_in"),
			menu.Action(ZoomOut, 0, 1, "general.zoom_out"),
		),
		menu.Menu(WindowMenu, 0, 20, "Window"),
		menu.Menu(HelpMenu, 1, menu.PriorityAppend, "Help",
			menu.Action(Help, 0, 0, "general.help"),
		),
	)
	return d
}
