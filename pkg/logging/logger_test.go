package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerWritesToInjectedSink(t *testing.T) {
	var buf bytes.Buffer
	logger := New("browser", &buf)

	logger.Infof("switched to window %s", "w2")
	logger.Errorf("lookup failed: %v", "no such element")

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[0], "[browser] [INFO] switched to window w2") {
		t.Errorf("unexpected info line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "[browser] [ERROR] lookup failed: no such element") {
		t.Errorf("unexpected error line: %q", lines[1])
	}
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New("wait", &buf)

	logger.Debugf("poll")
	logger.Warnf("slow")

	out := buf.String()
	for _, want := range []string{"[DEBUG] poll", "[WARN] slow"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestNopLoggerDropsEverything(t *testing.T) {
	logger := Nop("browser")
	// Must not panic and must stay silent.
	logger.Infof("ignored %d", 1)
	logger.Errorf("ignored too")
}

func TestNilSinkMeansNop(t *testing.T) {
	logger := New("browser", nil)
	logger.Infof("ignored")
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New("browser", &buf)
	sub := logger.WithComponent("windows")

	sub.Infof("scan")

	if !strings.Contains(buf.String(), "[windows] [INFO] scan") {
		t.Errorf("unexpected output: %q", buf.String())
	}
	if sub.SessionID() != logger.SessionID() {
		t.Error("derived logger should share the session id")
	}
}

func TestSessionIDIsStable(t *testing.T) {
	if GetSessionID() != GetSessionID() {
		t.Error("session id changed between calls")
	}
	if GetSessionID() == "" {
		t.Error("session id is empty")
	}
}
