package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type Config struct {
	// Writer receives records when Debug is set and File is empty. Defaults to os.Stderr.
	Writer io.Writer
	// File, if set, receives records instead of Writer. It is appended to.
	File  string
	Debug bool
	JSON  bool
}

var (
	mu       sync.RWMutex
	global   = discard()
	logFile  *os.File
	logPath  string
	initedAt time.Time
	enabled  bool
)

// Setup installs the process-wide logger. Without Debug every record is dropped,
// so command output on stdout stays clean. The returned cleanup closes the log
// file, if any, and restores the discarding logger.
func Setup(cfg Config) (func() error, error) {
	if !cfg.Debug {
		setDiscard()
		return func() error { return nil }, nil
	}

	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	var f *os.File
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			setDiscard()
			return nil, err
		}
		var err error
		f, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			setDiscard()
			return nil, err
		}
		w = f
	}

	opts := &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: cfg.JSON,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	l := slog.New(h)

	mu.Lock()
	global = l
	logFile = f
	logPath = cfg.File
	initedAt = time.Now().UTC()
	enabled = true
	mu.Unlock()

	l.Debug("logger.initialized", "path", cfg.File, "json", cfg.JSON)

	cleanup := func() error {
		mu.Lock()
		defer mu.Unlock()

		var cerr error
		if logFile != nil {
			cerr = logFile.Close()
		}
		resetLocked()
		return cerr
	}

	return cleanup, nil
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

// Enabled reports whether Setup installed a non-discarding logger.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// Path returns the log file in use, or "" when logging to a writer.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return logPath
}

func InitTime() time.Time {
	mu.RLock()
	defer mu.RUnlock()
	return initedAt
}

func setDiscard() {
	mu.Lock()
	defer mu.Unlock()
	resetLocked()
}

func resetLocked() {
	global = discard()
	logFile = nil
	logPath = ""
	initedAt = time.Time{}
	enabled = false
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
