package ui

// DismissOverlayMsg closes the top overlay.
type DismissOverlayMsg struct{}

// SpawnPanelMsg asks the app to spawn a dockable widget by name.
type SpawnPanelMsg struct {
	Name string
}

// QuitRequestMsg starts the quit flow; the about-to-quit broadcast may
// still veto it.
type QuitRequestMsg struct{}
