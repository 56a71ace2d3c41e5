package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/centreconnect/centreconnect/internal/shared/config"
)

var (
	Logger      *slog.Logger
	atomicLevel *slog.LevelVar

	// output is the log file opened by Init; nil for stdout and stderr.
	output *os.File
)

// ParseLevel maps a config level name to a slog level. Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
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

// Init builds the process logger from cfg. In debug mode every record
// carries its source location; otherwise only warnings and errors do.
//
// A log file opened by an earlier Init is closed once the new output is open.
func Init(cfg *config.LoggerConfig, debug bool) error {
	writer, err := openOutput(cfg.OutputPath)
	if err != nil {
		return err
	}
	Logger = New(writer, cfg, debug)
	slog.SetDefault(Logger)

	if output != nil {
		_ = output.Close()
	}
	output, _ = writer.(*os.File)
	if output == os.Stdout || output == os.Stderr {
		output = nil
	}
	return nil
}

// New builds a logger writing to w without installing it as the default.
func New(w io.Writer, cfg *config.LoggerConfig, debug bool) *slog.Logger {
	atomicLevel = new(slog.LevelVar)
	atomicLevel.Set(ParseLevel(cfg.Level))

	sourceLevel := slog.LevelWarn
	if debug {
		sourceLevel = slog.LevelDebug
	}

	var base slog.Handler
	if cfg.Format == "json" {
		base = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     atomicLevel,
			AddSource: false,
		})
	} else {
		base = tint.NewHandler(w, consoleOptions(atomicLevel, !isTerminal(w)))
	}

	return slog.New(NewSourceHandler(base, sourceLevel))
}

func openOutput(path string) (io.Writer, error) {
	switch strings.ToLower(path) {
	case "stderr", "":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	default:
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		return file, nil
	}
}

func consoleOptions(level slog.Leveler, noColor bool) *tint.Options {
	return &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
		AddSource:  false,
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

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SetLevel changes the minimum level of the logger built by the last Init.
func SetLevel(level slog.Level) {
	if atomicLevel != nil {
		atomicLevel.Set(level)
	}
}

// Get returns the process logger, building a stderr console logger when
// Init has not run.
func Get() *slog.Logger {
	if Logger == nil {
		Logger = New(os.Stderr, &config.LoggerConfig{Level: "info"}, false)
		slog.SetDefault(Logger)
	}
	return Logger
}

func Debug(msg string, args ...any) {
	Get().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	Get().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	Get().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	Get().Error(msg, args...)
}

func WithComponent(component string) *slog.Logger {
	return Get().With("component", component)
}
