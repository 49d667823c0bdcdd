// Package logging configures the application's slog logger. The terminal
// belongs to the reader while it runs, so the reader logs to a rotating
// file; the one-shot commands log to stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger initialisation.
type Options struct {
	Level     string // debug|info|warn|error
	Format    string // text|json
	File      string // rotated log file; empty logs to Stderr
	AddSource bool
}

var (
	mu      sync.RWMutex
	current *slog.Logger
	closer  io.Closer
)

// DefaultFile is the log location used by the reader when none is
// configured.
func DefaultFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "verse-canvas", "verse-canvas.log")
}

// Init installs a logger built from opts as the package and slog default.
func Init(opts Options) *slog.Logger {
	var w io.Writer = os.Stderr
	var c io.Closer
	if strings.TrimSpace(opts.File) != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    5,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		}
		w, c = lj, lj
	}
	logger := New(w, opts)

	mu.Lock()
	if closer != nil {
		closer.Close()
	}
	current, closer = logger, c
	mu.Unlock()

	slog.SetDefault(logger)
	return logger
}

// New builds a logger writing to w without touching the defaults.
func New(w io.Writer, opts Options) *slog.Logger {
	ho := &slog.HandlerOptions{Level: ParseLevel(opts.Level), AddSource: opts.AddSource}
	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(opts.Format), "json") {
		h = slog.NewJSONHandler(w, ho)
	} else {
		h = slog.NewTextHandler(w, ho)
	}
	return slog.New(h).With(slog.String("app", "verse-canvas"))
}

// L returns the current logger, or slog's default before Init.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return slog.Default()
	}
	return current
}

// WithComponent tags records with the component that produced them.
func WithComponent(name string) *slog.Logger {
	return L().With(slog.String("component", name))
}

// Close flushes and closes the log file, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if closer == nil {
		return nil
	}
	err := closer.Close()
	closer = nil
	return err
}

// ParseLevel maps a level name to slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
