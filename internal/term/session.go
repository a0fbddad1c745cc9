// Package term runs the shell behind the console dock widget. A Runner
// owns the PTY mechanics so the session logic stays testable with an
// in-memory pipe.
package term

import (
	"bufio"
	"context"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/creack/pty"
)

// Size is a terminal geometry in character cells.
type Size struct {
	Rows uint16
	Cols uint16
}

// Runner spawns a command on a pseudo-terminal and resizes it afterwards.
type Runner interface {
	Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error)
	Resize(rwc io.ReadWriteCloser, size Size) error
}

// CreackPTY is the production Runner, backed by github.com/creack/pty.
type CreackPTY struct{}

var _ Runner = (*CreackPTY)(nil)

func winsize(size Size) *pty.Winsize {
	return &pty.Winsize{Rows: size.Rows, Cols: size.Cols}
}

// Start spawns cmd on a fresh PTY at the given size. Lifetime is tied to
// the returned file: closing it tears the process down, so ctx is not
// watched here.
func (c *CreackPTY) Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	return pty.StartWithSize(cmd, winsize(size))
}

// Resize changes the PTY geometry. Anything other than the *os.File from
// Start (a test pipe) is left alone.
func (c *CreackPTY) Resize(rwc io.ReadWriteCloser, size Size) error {
	f, ok := rwc.(*os.File)
	if !ok {
		return nil
	}
	return pty.Setsize(f, winsize(size))
}

// Shell returns $SHELL, or /bin/sh when unset.
func Shell() string {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return "/bin/sh"
}

// Session runs a shell in a PTY and keeps a bounded scrollback of output
// lines for the console widget to render. Reading happens on a background
// goroutine; Lines snapshots are safe from the UI thread.
type Session struct {
	mu      sync.Mutex
	pty     io.ReadWriteCloser
	runner  Runner
	lines   []string
	maxLine int
	notify  func()
	closed  bool
}

// StartSession spawns command (or the user's shell when empty) at the given
// size. notify, when non-nil, fires after each appended line so the UI can
// schedule a redraw.
func StartSession(ctx context.Context, runner Runner, command string, size Size, notify func()) (*Session, error) {
	if command == "" {
		command = Shell()
	}
	cmd := exec.Command(command)
	f, err := runner.Start(ctx, cmd, size)
	if err != nil {
		return nil, err
	}
	s := &Session{
		pty:     f,
		runner:  runner,
		maxLine: 500,
		notify:  notify,
	}
	go s.read()
	return s, nil
}

func (s *Session) read() {
	scanner := bufio.NewScanner(s.pty)
	for scanner.Scan() {
		s.mu.Lock()
		s.lines = append(s.lines, scanner.Text())
		if len(s.lines) > s.maxLine {
			s.lines = s.lines[len(s.lines)-s.maxLine:]
		}
		notify := s.notify
		s.mu.Unlock()
		if notify != nil {
			notify()
		}
	}
}

// Lines returns a snapshot of the scrollback.
func (s *Session) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Write sends input to the shell.
func (s *Session) Write(p []byte) (int, error) {
	return s.pty.Write(p)
}

// Resize propagates a new terminal size to the PTY.
func (s *Session) Resize(size Size) error {
	return s.runner.Resize(s.pty, size)
}

// Close terminates the PTY. Idempotent.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.pty.Close()
}
