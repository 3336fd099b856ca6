// Package logging configures the leveled loggers used by every package
// Terminal raw mode owns stdout/stderr, so logs go to a file or nowhere
package logging

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"time"

	gologging "github.com/op/go-logging"

	"github.com/lixenwraith/term-snake/constants"
)

var format = gologging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortfunc} ▶ %{level:.4s} %{id:03x} [%{module}] %{message}`,
)

// Setup routes all loggers to dir/term-snake.log when debug is set, otherwise discards them
// The returned file is nil when logging is disabled; the caller closes it
func Setup(debug bool, dir string) (*os.File, error) {
	if !debug {
		install(io.Discard, gologging.ERROR)
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(dir, constants.LogFileName)
	if err := rotate(logPath); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	install(f, gologging.DEBUG)
	return f, nil
}

// install points go-logging and the standard logger (used by dependencies) at w
func install(w io.Writer, level gologging.Level) {
	backend := gologging.NewLogBackend(w, "", 0)
	formatted := gologging.NewBackendFormatter(backend, format)
	leveled := gologging.AddModuleLevel(formatted)
	leveled.SetLevel(level, "")
	gologging.SetBackend(leveled)

	stdlog.SetOutput(w)
}

// rotate moves an oversized log aside with a timestamp suffix
func rotate(logPath string) error {
	info, err := os.Stat(logPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() <= constants.MaxLogSize {
		return nil
	}

	ext := filepath.Ext(logPath)
	rotated := fmt.Sprintf("%s-%s%s", logPath[:len(logPath)-len(ext)], time.Now().Format("20060102-150405"), ext)
	if err := os.Rename(logPath, rotated); err != nil {
		return fmt.Errorf("rotate log file: %w", err)
	}
	return nil
}
