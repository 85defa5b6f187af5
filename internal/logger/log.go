package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/diegoclair/daily-report-bot/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init replaces the default slog logger. Output goes to the console, a
// size-rotated file, or both; with neither configured it falls back to
// stdout. The returned func closes the log file.
func Init(cfg config.LogConfig) (closeFile func() error) {
	closeFile = func() error { return nil }

	var out []io.Writer
	if cfg.Console {
		out = append(out, os.Stdout)
	}
	if cfg.File != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		}
		out = append(out, file)
		closeFile = file.Close
	}
	if len(out) == 0 {
		out = append(out, os.Stdout)
	}

	slog.SetDefault(slog.New(newHandler(io.MultiWriter(out...), cfg)))
	Info("logger initialized", "level", cfg.Level, "format", cfg.Format, "file", cfg.File)
	return closeFile
}

func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "text") {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

func Info(msg string, args ...any)  { slog.Info(msg, args...) }
func Warn(msg string, args ...any)  { slog.Warn(msg, args...) }
func Error(msg string, args ...any) { slog.Error(msg, args...) }
func Debug(msg string, args ...any) { slog.Debug(msg, args...) }

// ParseLevel maps LOG_LEVEL to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
