package main

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	"github.com/lixenwraith/term-snake/config"
	"github.com/lixenwraith/term-snake/constants"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestFlagsOverrideOnlyWhenSet(t *testing.T) {
	fs := newFlagSet()
	f, err := parseFlags(fs, []string{"-width", "30", "-autopilot", "-no-audio", "-tick", "50ms"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	cfg := config.Default()
	cfg.Height = 20
	cfg.Spectator.Addr = ":9000"
	f.apply(fs, cfg)

	if cfg.Width != 30 {
		t.Errorf("Expected width 30, got %d", cfg.Width)
	}
	if cfg.Height != 20 {
		t.Errorf("Expected unset height flag to keep 20, got %d", cfg.Height)
	}
	if !cfg.Autopilot || cfg.Audio.Enabled {
		t.Errorf("Expected autopilot on and audio off, got %v %v", cfg.Autopilot, cfg.Audio.Enabled)
	}
	if cfg.Tick.Duration != 50*time.Millisecond {
		t.Errorf("Expected 50ms tick, got %s", cfg.Tick.Duration)
	}
	if cfg.Spectator.Addr != ":9000" {
		t.Errorf("Expected spectator address untouched, got %q", cfg.Spectator.Addr)
	}
}

func TestFlagsRejectUnknown(t *testing.T) {
	if _, err := parseFlags(newFlagSet(), []string{"-speed", "3"}); err == nil {
		t.Error("Expected error for unknown flag")
	}
}

func TestTerminalSizeFallback(t *testing.T) {
	w, h := terminalSize(func() (int, int, error) { return 0, 0, errors.New("no tty") })
	if w != constants.FallbackGridWidth || h != constants.FallbackGridHeight {
		t.Errorf("Expected fallback %dx%d, got %dx%d", constants.FallbackGridWidth, constants.FallbackGridHeight, w, h)
	}

	w, h = terminalSize(func() (int, int, error) { return 120, 40, nil })
	if w != 120 || h != 40 {
		t.Errorf("Expected probed 120x40, got %dx%d", w, h)
	}
}
