// Package tuitest runs a terminal program inside a pseudo terminal, types
// scripted keys into it and records what it draws.
package tuitest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/creack/pty"
)

const (
	defaultWidth   = 100
	defaultHeight  = 32
	defaultTimeout = 10 * time.Second
)

var errNoCommand = errors.New("tuitest: command is required")

// Step is one scripted write to the terminal, made after Delay.
type Step struct {
	Delay time.Duration
	Input []byte
}

// Config describes the program and the script replayed against it.
type Config struct {
	Command []string
	Dir     string
	Width   int
	Height  int
	Steps   []Step
	Timeout time.Duration
}

func (c Config) winsize() *pty.Winsize {
	width, height := c.Width, c.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return &pty.Winsize{Rows: uint16(height), Cols: uint16(width)}
}

// Recording holds everything the program wrote to the terminal.
type Recording struct {
	Raw      []byte
	Frames   []Frame
	Duration time.Duration
}

// Run starts the program in a PTY, replays the steps and waits for it to
// exit. A non-zero exit status is returned as an error.
func Run(ctx context.Context, cfg Config) (*Recording, error) {
	if len(cfg.Command) == 0 {
		return nil, errNoCommand
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, cfg.Command[0], cfg.Command[1:]...)
	cmd.Dir = cfg.Dir
	cmd.Env = terminalEnv(os.Environ())

	ptmx, err := pty.StartWithSize(cmd, cfg.winsize())
	if err != nil {
		return nil, fmt.Errorf("tuitest: start program: %w", err)
	}
	defer func() { _ = ptmx.Close() }()

	var output bytes.Buffer
	drained := capture(ptmx, &output)

	start := time.Now()
	if err := replay(ctx, ptmx, cfg.Steps); err != nil {
		return nil, err
	}

	exited := make(chan error, 1)
	go func() {
		exited <- cmd.Wait()
	}()

	select {
	case err := <-exited:
		if err != nil {
			return nil, fmt.Errorf("tuitest: program exited with error: %w", err)
		}
	case <-ctx.Done():
		return nil, fmt.Errorf("tuitest: timeout waiting for program exit: %w", ctx.Err())
	}

	// The reader only stops once the master side is closed.
	_ = ptmx.Close()
	<-drained

	raw := output.Bytes()
	return &Recording{Raw: raw, Frames: parseFrames(raw), Duration: time.Since(start)}, nil
}

// capture copies the program output into out and answers its terminal
// queries until the PTY is closed.
func capture(ptmx io.ReadWriter, out *bytes.Buffer) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		replies := newQueryResponder(ptmx)
		buf := make([]byte, 4096)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				replies.Observe(buf[:n])
				_, _ = out.Write(buf[:n])
			}
			if err != nil {
				return
			}
		}
	}()
	return done
}

func replay(ctx context.Context, w io.Writer, steps []Step) error {
	for _, step := range steps {
		if step.Delay > 0 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("tuitest: context cancelled before script finished: %w", ctx.Err())
			case <-time.After(step.Delay):
			}
		}
		if len(step.Input) == 0 {
			continue
		}
		if _, err := w.Write(step.Input); err != nil {
			return fmt.Errorf("tuitest: write input: %w", err)
		}
	}
	return nil
}

// terminalEnv pins TERM so the program renders the same way under go test as
// it does in a real terminal.
func terminalEnv(base []string) []string {
	env := make([]string, 0, len(base)+1)
	for _, entry := range base {
		if strings.HasPrefix(entry, "TERM=") {
			continue
		}
		env = append(env, entry)
	}
	return append(env, "TERM=xterm-256color")
}

// Keys understood by the keypad besides plain characters.
var (
	KeyEsc   = []byte{0x1b}
	KeySpace = []byte{' '}
	KeyUp    = []byte("\x1b[A")
	KeyDown  = []byte("\x1b[B")
	KeyRight = []byte("\x1b[C")
	KeyLeft  = []byte("\x1b[D")
)

// Type returns one step per rune of text, each preceded by delay, so the
// program sees separate key events instead of a pasted burst.
func Type(text string, delay time.Duration) []Step {
	steps := make([]Step, 0, len(text))
	for _, r := range text {
		steps = append(steps, Step{Delay: delay, Input: []byte(string(r))})
	}
	return steps
}

// Press returns one step per key, each preceded by delay.
func Press(delay time.Duration, keys ...[]byte) []Step {
	steps := make([]Step, 0, len(keys))
	for _, k := range keys {
		steps = append(steps, Step{Delay: delay, Input: k})
	}
	return steps
}
