// Package base
package base

import (
	"context"
	"fmt"
	"github.com/fatih/color"
	"github.com/half-nothing/flylog/internal/interfaces/global"
	"github.com/half-nothing/flylog/internal/interfaces/log"
	"io"
	"log/slog"
	"os"
)

const LevelFatal = slog.Level(12)

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgCyan),
	slog.LevelInfo:  color.New(color.FgGreen),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed),
	LevelFatal:      color.New(color.FgHiRed, color.Bold),
}

func levelName(level slog.Level) string {
	if level >= LevelFatal {
		return "FATAL"
	}
	return level.String()
}

type Logger struct {
	writer io.Writer
	level  *slog.LevelVar
	logger *slog.Logger
}

var _ log.LoggerInterface = (*Logger)(nil)

func NewLogger() *Logger {
	return NewLoggerWithWriter(os.Stdout)
}

func NewLoggerWithWriter(writer io.Writer) *Logger {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if attr.Key != slog.LevelKey || len(groups) != 0 {
				return attr
			}
			value, ok := attr.Value.Any().(slog.Level)
			if !ok {
				return attr
			}
			name := levelName(value)
			if c, ok := levelColors[value]; ok {
				name = c.Sprint(name)
			}
			attr.Value = slog.StringValue(name)
			return attr
		},
	})
	return &Logger{
		writer: writer,
		level:  level,
		logger: slog.New(handler).With("app", global.AppName),
	}
}

// Init 设置日志级别并将其设为slog默认处理器, 未调用时按 INFO 级别输出
func (l *Logger) Init(debug bool) {
	if debug {
		l.level.Set(slog.LevelDebug)
	} else {
		l.level.Set(slog.LevelInfo)
	}
	slog.SetDefault(l.logger)
}

type LoggerShutdownCallback struct {
	writer io.Writer
}

func (lc *LoggerShutdownCallback) Invoke(_ context.Context) error {
	if lc.writer == os.Stdout || lc.writer == os.Stderr {
		return nil
	}
	if closer, ok := lc.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (l *Logger) ShutdownCallback() global.Callable {
	return &LoggerShutdownCallback{writer: l.writer}
}

func (l *Logger) log(level slog.Level, msg string, v ...interface{}) {
	l.logger.Log(context.Background(), level, msg, v...)
}

func (l *Logger) logF(level slog.Level, msg string, v ...interface{}) {
	if !l.logger.Enabled(context.Background(), level) {
		return
	}
	l.logger.Log(context.Background(), level, fmt.Sprintf(msg, v...))
}

func (l *Logger) Debug(msg string, v ...interface{})  { l.log(slog.LevelDebug, msg, v...) }
func (l *Logger) DebugF(msg string, v ...interface{}) { l.logF(slog.LevelDebug, msg, v...) }
func (l *Logger) Info(msg string, v ...interface{})   { l.log(slog.LevelInfo, msg, v...) }
func (l *Logger) InfoF(msg string, v ...interface{})  { l.logF(slog.LevelInfo, msg, v...) }
func (l *Logger) Warn(msg string, v ...interface{})   { l.log(slog.LevelWarn, msg, v...) }
func (l *Logger) WarnF(msg string, v ...interface{})  { l.logF(slog.LevelWarn, msg, v...) }
func (l *Logger) Error(msg string, v ...interface{})  { l.log(slog.LevelError, msg, v...) }
func (l *Logger) ErrorF(msg string, v ...interface{}) { l.logF(slog.LevelError, msg, v...) }
func (l *Logger) Fatal(msg string, v ...interface{})  { l.log(LevelFatal, msg, v...) }
func (l *Logger) FatalF(msg string, v ...interface{}) { l.logF(LevelFatal, msg, v...) }
