package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"
)

func newTestLogger(component string) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	s := newSink(&buf)
	s.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	return &Logger{component: component, sink: s}, &buf
}

// ------------------------------------------------------------
// FORMAT
// ------------------------------------------------------------

func TestLogger_LineFormat(t *testing.T) {
	l, buf := newTestLogger("customers")

	l.Named("csv").Warnf("cache %s not written", "data.csv")

	want := "2024-03-01T12:00:00.000Z WARN  [customers.csv] cache data.csv not written\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}

func TestLogger_PlainMessageKeepsPercent(t *testing.T) {
	l, buf := newTestLogger("report")

	l.Infof("100% loaded")
	if !strings.Contains(buf.String(), "[report] 100% loaded") {
		t.Fatalf("expected literal percent, got %q", buf.String())
	}
}

func TestLogger_ZeroValueUntagged(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	var l Logger
	l.Errorf("boom")
	if !strings.HasSuffix(buf.String(), " ERROR boom\n") {
		t.Fatalf("expected untagged error line, got %q", buf.String())
	}
}

// ------------------------------------------------------------
// LEVELS
// ------------------------------------------------------------

func TestLogger_LevelFiltering(t *testing.T) {
	l, buf := newTestLogger("dashboard")
	l.sink.level.Store(int32(LevelWarn))

	l.Infof("hidden %d", 1)
	l.Warnf("shown %d", 2)
	l.Errorf("also shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "WARN  [dashboard] shown 2") {
		t.Fatalf("expected warn line, got %q", out)
	}
	if !strings.Contains(out, "ERROR [dashboard] also shown") {
		t.Fatalf("expected error line, got %q", out)
	}
}

func TestLogger_Track(t *testing.T) {
	l, buf := newTestLogger("sqldb")
	l.sink.level.Store(int32(LevelDebug))
	tick := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	l.sink.now = func() time.Time {
		tick = tick.Add(250 * time.Millisecond)
		return tick
	}

	l.Track("postgres query")()
	if !strings.Contains(buf.String(), "[sqldb] postgres query took 250ms") {
		t.Fatalf("expected duration line, got %q", buf.String())
	}
}

func TestSetLevel_UnknownIgnored(t *testing.T) {
	defer SetLevel("info")
	SetLevel("debug")
	SetLevel("loud")
	if GetLevel() != LevelDebug {
		t.Fatalf("expected level to stay debug, got %s", GetLevel())
	}
	if _, ok := ParseLevel("WARNING"); !ok {
		t.Fatalf("expected WARNING to parse")
	}
	if !New("x").Enabled(LevelDebug) {
		t.Fatalf("expected shared level to reach new loggers")
	}
}
