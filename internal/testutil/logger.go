package testutil

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// NewBufferLogger returns a debug-level logger writing to the returned buffer,
// so stale-render and refresh-skip debug lines are visible to assertions.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}

// AssertLogged fails unless every fragment appears in the captured log.
func AssertLogged(t *testing.T, buf *bytes.Buffer, fragments ...string) {
	t.Helper()
	out := buf.String()
	for _, f := range fragments {
		if !strings.Contains(out, f) {
			t.Fatalf("expected %q in log output:\n%s", f, out)
		}
	}
}
