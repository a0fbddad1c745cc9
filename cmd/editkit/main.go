package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"editkit/internal/action"
	"editkit/internal/adaptive"
	"editkit/internal/config"
	"editkit/internal/dock"
	"editkit/internal/editor"
	"editkit/internal/events"
	"editkit/internal/logging"
	"editkit/internal/personalization"
	"editkit/internal/telemetry"
	"editkit/internal/term"
	"editkit/internal/ui"
)

// logAction is a placeholder handler: the demo has no real documents, so
// the file commands just log.
func logAction(what string) action.Handler {
	return func() bool {
		logging.For("main").Info(what)
		return true
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadArgs(os.Args[1:], os.Environ())
	if err != nil {
		return err
	}
	if cfg.StateDir != "" {
		os.Setenv(personalization.EnvStateDir, cfg.StateDir)
	}
	if err := logging.Configure(cfg.LogFile); err != nil {
		return err
	}

	ctx := context.Background()
	tracer, err := telemetry.New(ctx)
	if err != nil {
		return err
	}
	defer tracer.Shutdown(ctx)

	store, err := personalization.NewFileManager(cfg.Project)
	if err != nil {
		return err
	}

	globalBus := events.NewBroadcaster()

	ed := editor.New("Level Editor",
		editor.WithGlobalBus(globalBus),
		editor.WithPersonalization(store),
		editor.WithTelemetry(tracer),
		editor.WithAdaptiveLayout(adaptive.Horizontal),
		editor.WithOpenFileHandler(func(path string) bool {
			logging.For("main").Info("open file", "path", path)
			return true
		}),
		editor.WithAction("general.new", logAction("new level")),
		editor.WithAction("general.open", logAction("open level")),
		editor.WithAction("general.save", logAction("save level")),
		editor.WithAction("general.help", logAction("help")),
	)
	ed.AddToMenu(editor.NewFile, editor.Open, editor.Save, editor.RecentFiles)
	ed.EnableDockingSystem()
	ed.InitializeAdaptiveMenu()

	ed.RegisterDockableWidget("Console", func() dock.Widget {
		return ui.NewConsoleWidget(&term.CreackPTY{}, cfg.Shell)
	}, false, false)
	ed.SetDefaultLayoutCallback(func(reg *dock.Registry) {
		reg.Spawn("Console")
	})

	for _, path := range cfg.Args {
		ed.AddRecentFile(path)
	}

	app := ui.NewApp(ed, globalBus)
	app.Keybinds().Bind("SPC w v", editor.ToggleAdaptiveLayoutCommand)

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
