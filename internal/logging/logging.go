// Package logging provides the structured leveled logger used by the
// orchestrator and CLI.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// Level is a logging severity.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Config configures a new Logger.
type Config struct {
	Level  string
	Output io.Writer
}

// Logger is a leveled logger with structured fields and component
// scoping, backed by the standard library's log.Logger.
type Logger struct {
	level  Level
	logger *log.Logger
}

// Field is a structured key/value pair attached to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// New builds a Logger from cfg. A nil Output defaults to os.Stderr.
func New(cfg Config) *Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		level:  parseLevel(cfg.Level),
		logger: log.New(output, "", log.LstdFlags),
	}
}

// WithComponent returns a child logger that prefixes every line with
// [component], sharing the parent's level and writer.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		level:  l.level,
		logger: log.New(l.logger.Writer(), fmt.Sprintf("[%s] ", component), log.LstdFlags),
	}
}

func (l *Logger) Debug(msg string, fields ...Field) {
	if l.level <= DebugLevel {
		l.log("DEBUG", msg, fields...)
	}
}

func (l *Logger) Info(msg string, fields ...Field) {
	if l.level <= InfoLevel {
		l.log("INFO", msg, fields...)
	}
}

func (l *Logger) Warn(msg string, fields ...Field) {
	if l.level <= WarnLevel {
		l.log("WARN", msg, fields...)
	}
}

func (l *Logger) Error(msg string, fields ...Field) {
	if l.level <= ErrorLevel {
		l.log("ERROR", msg, fields...)
	}
}

func (l *Logger) log(level, msg string, fields ...Field) {
	if len(fields) == 0 {
		l.logger.Printf("[%s] %s", level, msg)
		return
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = fmt.Sprintf("%s=%v", f.Key, f.Value)
	}
	l.logger.Printf("[%s] %s %s", level, msg, strings.Join(parts, " "))
}

func parseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return DebugLevel
	case "warn", "warning":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func String(key, val string) Field   { return Field{Key: key, Value: val} }
func Int(key string, val int) Field  { return Field{Key: key, Value: val} }
func Float64(key string, val float64) Field {
	return Field{Key: key, Value: val}
}
func Bool(key string, val bool) Field { return Field{Key: key, Value: val} }
func Err(err error) Field             { return Field{Key: "error", Value: err} }
