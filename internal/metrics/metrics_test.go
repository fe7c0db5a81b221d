package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksCallsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordCall("/api/game_state", 10*time.Millisecond, nil)
	rec.RecordCall("/api/game_state", 15*time.Millisecond, errors.New("boom"))

	if got := rec.Calls("/api/game_state"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.Errors("/api/game_state"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}

	snap := rec.Snapshot("/api/game_state")
	if snap.LastCallLatency != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", snap.LastCallLatency)
	}
}

func TestRecorderTracksAuthLost(t *testing.T) {
	rec := NewRecorder()
	rec.RecordAuthLost("/api/order")
	rec.RecordAuthLost("/api/order")

	if got := rec.AuthLost("/api/order"); got != 2 {
		t.Fatalf("expected 2 auth lost events, got %d", got)
	}
	if got := rec.AuthLost("/api/other"); got != 0 {
		t.Fatalf("expected untouched endpoint to be zero, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordCall("x", time.Millisecond, nil)
	rec.RecordAuthLost("x")
	rec.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	rec.RecordRefreshCycle(time.Millisecond, nil)
	if rec.Calls("x") != 0 {
		t.Fatalf("expected zero snapshot from nil recorder")
	}
}
