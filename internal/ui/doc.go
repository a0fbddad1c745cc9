// Package ui materializes editor state as a Bubble Tea interface.
//
// Core abstractions:
//   - App: the root tea.Model wiring the editor, menu bar, panels and overlays
//   - Panel: a bounded region hosting a spawned dock widget
//   - FocusManager: tracks and rotates focus across panels
//   - OverlayStack: modal tea.Models layered above the panels, topmost gets input first
//   - MenuBar: renders an AbstractMenu build as a horizontal bar with dropdowns
//   - KeybindRegistry: maps leader key sequences to action keys
//   - PanelSwitcher: fuzzy-filtered picker overlay for registered widgets
//   - ConsoleWidget: dock widget backed by a term.Session
package ui
