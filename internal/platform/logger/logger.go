// Package logger writes leveled, component-tagged lines:
//
//	2024-03-01T12:00:00.000Z INFO  [customers.csv] downloaded 51200 bytes
//
// Every Logger shares one level and one output, set once at startup.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

type Level int32

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
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "INFO"
}

// ParseLevel reports whether s names a known level.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	}
	return LevelInfo, false
}

type sink struct {
	level atomic.Int32
	mu    sync.Mutex
	out   io.Writer
	now   func() time.Time
}

var shared = newSink(os.Stderr)

func newSink(w io.Writer) *sink {
	s := &sink{out: w, now: time.Now}
	s.level.Store(int32(LevelInfo))
	return s
}

// SetLevel changes the level of every Logger. Unknown names are ignored.
func SetLevel(s string) {
	if l, ok := ParseLevel(s); ok {
		shared.level.Store(int32(l))
	}
}

func GetLevel() Level { return Level(shared.level.Load()) }

// SetOutput redirects every Logger.
func SetOutput(w io.Writer) {
	shared.mu.Lock()
	shared.out = w
	shared.mu.Unlock()
}

// Logger tags its lines with a component name. The zero value logs untagged.
type Logger struct {
	component string
	sink      *sink
}

func New(component string) *Logger {
	return &Logger{component: component, sink: shared}
}

// Named returns a child logger whose component is "parent.name".
func (l *Logger) Named(name string) *Logger {
	if l.component == "" {
		return &Logger{component: name, sink: l.sink}
	}
	return &Logger{component: l.component + "." + name, sink: l.sink}
}

func (l *Logger) Enabled(lv Level) bool {
	return lv >= Level(l.out().level.Load())
}

func (l *Logger) out() *sink {
	if l == nil || l.sink == nil {
		return shared
	}
	return l.sink
}

func (l *Logger) write(lv Level, format string, args []any) {
	if !l.Enabled(lv) {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	var b strings.Builder
	s := l.out()
	b.WriteString(s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"))
	fmt.Fprintf(&b, " %-5s ", lv)
	if l != nil && l.component != "" {
		b.WriteString("[" + l.component + "] ")
	}
	b.WriteString(strings.TrimRight(msg, "\n"))
	b.WriteByte('\n')

	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = io.WriteString(s.out, b.String())
}

func (l *Logger) Debugf(format string, a ...any) { l.write(LevelDebug, format, a) }
func (l *Logger) Infof(format string, a ...any)  { l.write(LevelInfo, format, a) }
func (l *Logger) Warnf(format string, a ...any)  { l.write(LevelWarn, format, a) }
func (l *Logger) Errorf(format string, a ...any) { l.write(LevelError, format, a) }

// Track starts a timer and returns the func that logs its duration at debug level.
//
//	defer log.Track("load customers")()
func (l *Logger) Track(label string) func() {
	start := l.out().now()
	return func() {
		l.Debugf("%s took %s", label, l.out().now().Sub(start))
	}
}
