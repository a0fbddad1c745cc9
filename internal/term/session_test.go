package term

import (
	"context"
	"io"
	"os/exec"
	"testing"
	"time"
)

// pipeRunner fakes a PTY with an in-memory pipe; writes to feed appear as
// shell output.
type pipeRunner struct {
	feed    *io.PipeWriter
	resized []Size
}

type pipeRWC struct {
	r *io.PipeReader
	w io.Writer
}

func (p *pipeRWC) Read(b []byte) (int, error)  { return p.r.Read(b) }
func (p *pipeRWC) Write(b []byte) (int, error) { return p.w.Write(b) }
func (p *pipeRWC) Close() error                { return p.r.Close() }

func (f *pipeRunner) Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	r, w := io.Pipe()
	f.feed = w
	return &pipeRWC{r: r, w: io.Discard}, nil
}

func (f *pipeRunner) Resize(rwc io.ReadWriteCloser, size Size) error {
	f.resized = append(f.resized, size)
	return nil
}

func TestSessionCollectsLines(t *testing.T) {
	runner := &pipeRunner{}
	notified := make(chan struct{}, 16)
	s, err := StartSession(context.Background(), runner, "/bin/sh", Size{Rows: 24, Cols: 80}, func() {
		notified <- struct{}{}
	})
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	defer s.Close()

	go runner.feed.Write([]byte("first\nsecond\n"))

	for i := 0; i < 2; i++ {
		select {
		case <-notified:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for output notification")
		}
	}

	lines := s.Lines()
	if len(lines) != 2 || lines[0] != "first" || lines[1] != "second" {
		t.Errorf("Lines = %v", lines)
	}
}

func TestSessionScrollbackBounded(t *testing.T) {
	runner := &pipeRunner{}
	notified := make(chan struct{}, 1024)
	s, err := StartSession(context.Background(), runner, "/bin/sh", Size{}, func() {
		notified <- struct{}{}
	})
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	defer s.Close()

	const total = 600
	go func() {
		for i := 0; i < total; i++ {
			runner.feed.Write([]byte("line\n"))
		}
	}()
	for i := 0; i < total; i++ {
		select {
		case <-notified:
		case <-time.After(time.Second):
			t.Fatal("timed out waiting for output")
		}
	}

	if got := len(s.Lines()); got != 500 {
		t.Errorf("scrollback = %d lines, want capped at 500", got)
	}
}

func TestSessionResizeAndClose(t *testing.T) {
	runner := &pipeRunner{}
	s, err := StartSession(context.Background(), runner, "/bin/sh", Size{}, nil)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	if err := s.Resize(Size{Rows: 50, Cols: 120}); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if len(runner.resized) != 1 || runner.resized[0].Cols != 120 {
		t.Errorf("resized = %v", runner.resized)
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}

func TestShellFallsBack(t *testing.T) {
	t.Setenv("SHELL", "")
	if got := Shell(); got != "/bin/sh" {
		t.Errorf("Shell = %q", got)
	}
	t.Setenv("SHELL", "/bin/zsh")
	if got := Shell(); got != "/bin/zsh" {
		t.Errorf("Shell = %q", got)
	}
}
