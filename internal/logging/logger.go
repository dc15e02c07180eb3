// Package logging provides the leveled console diagnostics used by the scene
// and its scripts. Diagnostics are informational only; nothing parses them.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/gookit/color"
)

// Level orders diagnostics by severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel accepts the level names used in config files ("debug", "info",
// "warn"/"warning", "error"). Unknown names fall back to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

var levelStyle = map[Level]color.Color{
	LevelDebug: color.Gray,
	LevelInfo:  color.Cyan,
	LevelWarn:  color.Yellow,
	LevelError: color.Red,
}

// sink is shared by a logger and every child created with Named.
type sink struct {
	mu     sync.Mutex
	out    *log.Logger
	level  Level
	colors bool
}

// Logger writes leveled lines. Named children share the parent's output and
// level but prepend their own prefix, e.g. "DJBooth: Turntable 1 Playing".
type Logger struct {
	sink   *sink
	prefix string
}

// New creates a logger writing to w. A nil writer means stdout.
func New(w io.Writer, level Level, colors bool) *Logger {
	if w == nil {
		w = os.Stdout
	}
	return &Logger{
		sink: &sink{
			out:    log.New(w, "", log.Ltime),
			level:  level,
			colors: colors,
		},
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, LevelError+1, false)
}

// Named returns a child logger whose lines start with "name: ".
func (l *Logger) Named(name string) *Logger {
	if l == nil {
		return nil
	}
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "/" + name
	}
	return &Logger{sink: l.sink, prefix: prefix}
}

// SetLevel changes the minimum level for this logger and all its children.
func (l *Logger) SetLevel(level Level) {
	if l == nil {
		return
	}
	l.sink.mu.Lock()
	l.sink.level = level
	l.sink.mu.Unlock()
}

func (l *Logger) Debugf(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.logf(LevelError, format, args...) }

// logf is nil-safe so components constructed without a logger stay quiet.
func (l *Logger) logf(level Level, format string, args ...any) {
	if l == nil {
		return
	}
	s := l.sink
	s.mu.Lock()
	defer s.mu.Unlock()
	if level < s.level {
		return
	}

	tag := "[" + level.String() + "]"
	if s.colors {
		tag = levelStyle[level].Sprint(tag)
	}
	msg := fmt.Sprintf(format, args...)
	if l.prefix != "" {
		msg = l.prefix + ": " + msg
	}
	s.out.Println(tag, msg)
}
