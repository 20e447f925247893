package observability

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Logger struct {
	slog   *slog.Logger
	closer io.Closer
}

type LoggerOptions struct {
	LogPath    string
	LogLevel   string
	MaxSizeMB  int
	MaxBackups int
}

// NewLogger пишет в ротируемый файл, если задан LogPath, иначе в stderr
func NewLogger(opts LoggerOptions) *Logger {
	var out io.Writer = os.Stderr
	var closer io.Closer

	if opts.LogPath != "" {
		rotating := &lumberjack.Logger{
			Filename:   opts.LogPath,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			Compress:   true,
		}
		out = rotating
		closer = rotating
	}

	return NewLoggerWithWriter(out, opts.LogLevel, closer)
}

func NewLoggerWithWriter(w io.Writer, level string, closer io.Closer) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &Logger{
		slog:   slog.New(handler),
		closer: closer,
	}
}

// Nop — логгер для тестов
func Nop() *Logger {
	return NewLoggerWithWriter(io.Discard, "error", nil)
}

func (l *Logger) Debug(msg string, fields ...any) {
	l.slog.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...any) {
	l.slog.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...any) {
	l.slog.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...any) {
	l.slog.Error(msg, fields...)
}

func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
