package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"subcommerce/internal/shared/config"
)

var (
	global   *slog.Logger
	globalMu sync.RWMutex
	level    = new(slog.LevelVar)
)

// Init builds the process-wide logger from configuration.
// format "json" writes slog JSON; anything else writes tint console output.
func Init(cfg *config.LoggerConfig) error {
	level.Set(ParseLevel(cfg.Level))

	writer, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}

	var base slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		base = slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level})
	} else {
		base = tint.NewHandler(writer, tintOptions(level, !isTerminal(writer)))
	}

	l := slog.New(newSourceHandler(base, slog.LevelWarn))

	globalMu.Lock()
	global = l
	globalMu.Unlock()
	slog.SetDefault(l)

	return nil
}

// ParseLevel maps a config string onto a slog level, defaulting to info.
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

// SetLevel changes the level of the logger built by Init at runtime.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// Get returns the process-wide logger, creating a console logger on first use.
func Get() *slog.Logger {
	globalMu.RLock()
	l := global
	globalMu.RUnlock()
	if l != nil {
		return l
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		noColor := !term.IsTerminal(int(os.Stdout.Fd()))
		global = slog.New(newSourceHandler(tint.NewHandler(os.Stdout, tintOptions(level, noColor)), slog.LevelWarn))
	}
	return global
}

// WithComponent returns a logger tagged with a component name.
func WithComponent(component string) Interface {
	return NewLoggerWithSlog(Get().With("component", component))
}

func Info(msg string, args ...any)  { Get().Info(msg, args...) }
func Warn(msg string, args ...any)  { Get().Warn(msg, args...) }
func Error(msg string, args ...any) { Get().Error(msg, args...) }

func tintOptions(lv slog.Leveler, noColor bool) *tint.Options {
	return &tint.Options{
		Level:      lv,
		TimeFormat: time.DateTime,
		NoColor:    noColor,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" && a.Value.Kind() == slog.KindAny {
				if err, ok := a.Value.Any().(error); ok {
					return tint.Err(err)
				}
			}
			return a
		},
	}
}

func openOutput(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	default:
		return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
