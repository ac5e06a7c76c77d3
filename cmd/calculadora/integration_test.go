package main

import (
	"context"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/csheth/calculadora/internal/tuitest"
)

func TestCalculadoraAdditionEndToEnd(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("pty harness requires a unix terminal")
	}

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)

	steps := []tuitest.Step{{Delay: 500 * time.Millisecond}}
	steps = append(steps, tuitest.Type("2+3=", 100*time.Millisecond)...)
	steps = append(steps,
		tuitest.Step{Delay: 500 * time.Millisecond},
		tuitest.Step{Input: []byte("q")},
	)

	_, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen", "--no-mouse", "--config", filepath.Join(t.TempDir(), "absent.yaml")},
		Dir:     cmdDir,
		Width:   100,
		Height:  32,
		Steps:   steps,
		Timeout: 10 * time.Second,
	})
	if err == nil {
		t.Fatal("a missing explicit config file should stop the program")
	}

	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen", "--no-mouse"},
		Dir:     t.TempDir(),
		Width:   100,
		Height:  32,
		Steps:   steps,
		Timeout: 10 * time.Second,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	if _, ok := rec.LastFrameContaining("Calculadora"); !ok {
		t.Fatalf("no frame shows the title:\n%s", rec.Raw)
	}

	output := rec.PlainText()
	for _, want := range []string{"Clear", "2 + 3 = 5"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q:\n%s", want, output)
		}
	}
}

func TestCalculadoraKeypadNavigationEndToEnd(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("pty harness requires a unix terminal")
	}

	cmdDir := moduleDir(t)
	binary := buildBinary(t, cmdDir)

	const pause = 100 * time.Millisecond
	// Focus starts on 7. Walk to ÷, then 2, then = and quit with esc.
	steps := []tuitest.Step{{Delay: 500 * time.Millisecond}}
	steps = append(steps, tuitest.Press(pause,
		tuitest.KeySpace,
		tuitest.KeyRight, tuitest.KeyRight, tuitest.KeyRight,
		tuitest.KeySpace,
		tuitest.KeyDown, tuitest.KeyDown,
		tuitest.KeyLeft, tuitest.KeyLeft,
		tuitest.KeySpace,
		tuitest.KeyDown, tuitest.KeyRight,
		tuitest.KeySpace,
	)...)
	steps = append(steps, tuitest.Press(500*time.Millisecond, tuitest.KeyEsc)...)

	rec, err := tuitest.Run(context.Background(), tuitest.Config{
		Command: []string{binary, "--no-alt-screen", "--no-mouse"},
		Dir:     t.TempDir(),
		Steps:   steps,
	})
	if err != nil {
		t.Fatalf("run CLI: %v", err)
	}

	if _, ok := rec.FinalFrame(); !ok {
		t.Fatal("no frames recorded")
	}
	t.Logf("keypad session took %s", rec.Duration)

	output := rec.PlainText()
	for _, want := range []string{"7 / 2 = 3.5", "tape 1/50"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q:\n%s", want, output)
		}
	}
}

func moduleDir(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	return filepath.Dir(file)
}

func buildBinary(t *testing.T, cmdDir string) string {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "calculadora-integration")
	cmd := exec.Command("go", "build", "-o", binPath, ".")
	cmd.Dir = cmdDir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build CLI: %v\n%s", err, output)
	}
	return binPath
}
