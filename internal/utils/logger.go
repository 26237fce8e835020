package utils

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelError LogLevel = "error"
)

type Logger struct {
	level      LogLevel
	logger     *slog.Logger
	RawBodyLog bool
}

func NewLogger(level string, rawBodyLog bool) *Logger {
	return newLogger(level, rawBodyLog, textHandler(os.Stdout, level))
}

// NewFileLogger logs text to stdout and JSON to logFile. When the file cannot
// be opened it falls back to stdout only. The returned func closes the file.
func NewFileLogger(level string, rawBodyLog bool, logFile string) (*Logger, func() error) {
	if logFile == "" {
		return NewLogger(level, rawBodyLog), func() error { return nil }
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger := NewLogger(level, rawBodyLog)
		logger.Error(nil, "Failed to open log file %s, using stdout only: %v", logFile, err)
		return logger, func() error { return nil }
	}

	return NewLoggerWithWriters(level, rawBodyLog, os.Stdout, file), file.Close
}

func NewLoggerWithWriters(level string, rawBodyLog bool, stdout, file io.Writer) *Logger {
	handler := slogmulti.Fanout(
		textHandler(stdout, level),
		slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slogLevel(parseLogLevel(level))}),
	)
	return newLogger(level, rawBodyLog, handler)
}

func NewDiscardLogger() *Logger {
	return newLogger("info", false, slog.NewTextHandler(io.Discard, nil))
}

func newLogger(level string, rawBodyLog bool, handler slog.Handler) *Logger {
	return &Logger{
		level:      parseLogLevel(level),
		logger:     slog.New(handler),
		RawBodyLog: rawBodyLog,
	}
}

func textHandler(w io.Writer, level string) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel(parseLogLevel(level))})
}

func parseLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func slogLevel(level LogLevel) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) Level() LogLevel {
	return l.level
}

func (l *Logger) Info(reqID *string, format string, v ...any) {
	l.log(slog.LevelInfo, reqID, format, v...)
}

func (l *Logger) Error(reqID *string, format string, v ...any) {
	l.log(slog.LevelError, reqID, format, v...)
}

func (l *Logger) Debug(reqID *string, format string, v ...any) {
	l.log(slog.LevelDebug, reqID, format, v...)
}

func (l *Logger) Fatal(v ...any) {
	l.logger.Error(fmt.Sprint(v...))
	os.Exit(1)
}

func (l *Logger) log(level slog.Level, reqID *string, format string, v ...any) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}

	var attrs []slog.Attr
	if reqID != nil {
		attrs = append(attrs, slog.String("reqid", *reqID))
	}
	l.logger.LogAttrs(ctx, level, fmt.Sprintf(format, v...), attrs...)
}
