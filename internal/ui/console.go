package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"editkit/internal/logging"
	"editkit/internal/term"
)

// ConsoleOutputMsg signals that the console session appended output.
type ConsoleOutputMsg struct{}

const defaultConsoleWidth = 70
const defaultConsoleHeight = 16

// ConsoleWidget is a dockable panel hosting a PTY-backed shell session.
// Output accumulates in a viewport; key presses are forwarded to the
// shell while the panel has focus.
type ConsoleWidget struct {
	runner   term.Runner
	command  string
	session  *term.Session
	viewport viewport.Model
	updates  chan struct{}
	failure  string
}

// NewConsoleWidget creates a console running command (empty uses $SHELL).
// The runner is injected so tests can substitute a fake PTY.
func NewConsoleWidget(runner term.Runner, command string) *ConsoleWidget {
	vp := viewport.New(defaultConsoleWidth, defaultConsoleHeight)
	return &ConsoleWidget{
		runner:   runner,
		command:  command,
		viewport: vp,
		updates:  make(chan struct{}, 1),
	}
}

// Init implements tea.Model; spawns the shell session.
func (c *ConsoleWidget) Init() tea.Cmd {
	size := term.Size{
		Cols: uint16(c.viewport.Width),
		Rows: uint16(c.viewport.Height),
	}
	sess, err := term.StartSession(context.Background(), c.runner, c.command, size, c.signal)
	if err != nil {
		c.failure = "cannot start shell: " + err.Error()
		logging.For("ui").Error("console session failed", "err", err)
		return nil
	}
	c.session = sess
	return c.waitForOutput()
}

// signal runs on the session's read goroutine; it coalesces bursts into a
// single pending notification.
func (c *ConsoleWidget) signal() {
	select {
	case c.updates <- struct{}{}:
	default:
	}
}

func (c *ConsoleWidget) waitForOutput() tea.Cmd {
	return func() tea.Msg {
		<-c.updates
		return ConsoleOutputMsg{}
	}
}

// Update implements tea.Model.
func (c *ConsoleWidget) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ConsoleOutputMsg:
		c.refresh()
		return c, c.waitForOutput()

	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			c.viewport.Width = msg.Width
		}
		if msg.Height > 0 {
			c.viewport.Height = msg.Height
		}
		if c.session != nil {
			c.session.Resize(term.Size{Cols: uint16(c.viewport.Width), Rows: uint16(c.viewport.Height)})
		}
		c.refresh()
		return c, nil

	case tea.KeyMsg:
		if c.session != nil {
			if b := keyToPTYBytes(msg); len(b) > 0 {
				c.session.Write(b)
			}
		}
		return c, nil
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return c, cmd
}

// View implements tea.Model.
func (c *ConsoleWidget) View() string {
	if c.failure != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)).Render(c.failure)
	}
	return c.viewport.View()
}

// Release implements dock.Releaser; terminates the shell session.
func (c *ConsoleWidget) Release() {
	if c.session != nil {
		c.session.Close()
	}
}

func (c *ConsoleWidget) refresh() {
	if c.session == nil {
		return
	}
	c.viewport.SetContent(strings.Join(c.session.Lines(), "\n"))
	c.viewport.GotoBottom()
}

// keyToPTYBytes converts a Bubble Tea KeyMsg to the byte sequence the
// shell expects.
func keyToPTYBytes(msg tea.KeyMsg) []byte {
	switch msg.Type {
	case tea.KeyEnter:
		return []byte{'\r'}
	case tea.KeyBackspace:
		return []byte{0x7f}
	case tea.KeyTab:
		return []byte{'\t'}
	case tea.KeySpace:
		return []byte{' '}
	case tea.KeyUp:
		return []byte{0x1b, '[', 'A'}
	case tea.KeyDown:
		return []byte{0x1b, '[', 'B'}
	case tea.KeyRight:
		return []byte{0x1b, '[', 'C'}
	case tea.KeyLeft:
		return []byte{0x1b, '[', 'D'}
	case tea.KeyCtrlC:
		return []byte{0x03}
	case tea.KeyCtrlD:
		return []byte{0x04}
	case tea.KeyRunes:
		return []byte(string(msg.Runes))
	default:
		if len(msg.Runes) > 0 {
			return []byte(string(msg.Runes))
		}
		return nil
	}
}
