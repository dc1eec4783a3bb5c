package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T, buf *bytes.Buffer, debug bool) *slog.Logger {
	t.Helper()
	d := debug
	h := NewHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}, &d)
	return slog.New(h)
}

func TestUint32AttrsRenderAsHex(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(t, &buf, true)

	log.Debug("unimplemented register read", "offset", uint32(0x1f801810))

	got := buf.String()
	if !strings.Contains(got, "0x1f801810") {
		t.Errorf("log line %q does not contain hex-formatted offset", got)
	}
	if strings.Contains(got, "528386576") {
		t.Errorf("log line %q rendered offset in decimal instead of hex", got)
	}
}

func TestNegativeIntAttrFallsBackToDefaultFormatting(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(t, &buf, true)

	log.Debug("delta", "delta", -5)

	got := buf.String()
	if !strings.Contains(got, "-5") {
		t.Errorf("log line %q does not contain -5", got)
	}
}

func TestStringAttrsAreUnaffected(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(t, &buf, true)

	log.Debug("boot", "stage", "bios")

	got := buf.String()
	if !strings.Contains(got, "bios") {
		t.Errorf("log line %q does not contain string attr", got)
	}
}

func TestDebugFalseStillWritesDebugRecordToFile(t *testing.T) {
	var buf bytes.Buffer
	log := newTestLogger(t, &buf, false)

	log.Debug("quiet", "n", uint32(1))

	if !strings.Contains(buf.String(), "quiet") {
		t.Errorf("file output missing debug record: %q", buf.String())
	}
}
