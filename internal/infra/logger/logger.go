package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type Config struct {
	// Root is the workspace root; the log file lives in <Root>/.kata/logs.
	Root  string
	Debug bool

	// Writer, when set, receives the JSON lines instead of the log file.
	Writer io.Writer
}

var (
	mu      sync.RWMutex
	global  = discardLogger()
	logFile *os.File
	logPath string
)

// Setup installs the process-wide logger and returns its cleanup func.
// On failure the logger keeps discarding.
func Setup(cfg Config) (func() error, error) {
	w := cfg.Writer
	var f *os.File
	var path string

	if w == nil {
		dir := filepath.Join(filepath.Clean(cfg.Root), ".kata", "logs")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			Discard()
			return nil, err
		}

		path = filepath.Join(dir, "kata.log")
		var err error
		f, err = os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			Discard()
			return nil, err
		}
		w = f
	}

	l := slog.New(newHandler(w, cfg.Debug))

	mu.Lock()
	global = l
	logFile = f
	logPath = path
	mu.Unlock()

	l.Info("logger.initialized", "path", path, "debug", cfg.Debug)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		logFile = nil
		logPath = ""
		global = discardLogger()
		return cerr
	}

	return cleanup, nil
}

func newHandler(w io.Writer, debug bool) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// L returns the process-wide logger. It discards output until Setup succeeds.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// For tags the process-wide logger with a component name.
func For(component string) *slog.Logger {
	return L().With("component", component)
}

// Path is the active log file, or "" when logging to a writer or discarding.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

// Discard resets the global logger to drop everything.
func Discard() {
	mu.Lock()
	defer mu.Unlock()
	global = discardLogger()
	logFile = nil
	logPath = ""
}

func IsReady() error {
	mu.RLock()
	defer mu.RUnlock()
	if logFile == nil || logPath == "" {
		return errors.New("logger not initialized")
	}
	return nil
}
