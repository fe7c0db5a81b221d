package testutil

import (
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if MustParseRFC3339(now.Format(time.RFC3339)) != now {
		t.Fatalf("expected parse round trip")
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid RFC3339")
		}
	}()
	MustParseRFC3339("not-a-time")
}

func TestFixturesHelper(t *testing.T) {
	team := SampleTeam("Bakers")
	if len(team.Batters()) != 9 || len(team.Pitchers()) != 2 {
		t.Fatalf("unexpected roster split %+v", team)
	}
	lineup := SampleLineup()
	for _, id := range lineup.Batters {
		if p, ok := team.Player(id); !ok || p.IsPitcher {
			t.Fatalf("lineup batter %d not a roster batter", id)
		}
	}
	state := SampleGameState("Bakers", 3)
	if len(state.Schedule) != 3 || state.Schedule[2].HomeScore != 3 {
		t.Fatalf("unexpected state %+v", state)
	}
}

func TestBufferLogger(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Fatalf("expected log output, got %s", buf.String())
	}
}

func TestServeAndDecode(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	rr := Serve(h, http.MethodGet, "/health", nil)
	AssertStatus(t, rr, http.StatusOK)

	var body map[string]string
	DecodeJSON(t, rr, &body)
	if body["status"] != "ok" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestSeasonDay(t *testing.T) {
	if got := SeasonDay(5).Format("2006-01-02"); got != "2024-04-02" {
		t.Fatalf("unexpected season day %s", got)
	}
	if !SeasonDay(0).Equal(OpeningDay) {
		t.Fatalf("expected day zero to be opening day")
	}
}

func TestAssertLoggedSeesDebugLines(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Debug("discarding stale view update", "phase", "unauthenticated")
	AssertLogged(t, buf, "discarding stale view update", "phase=unauthenticated")
}

func TestLoginCookieAndJSONError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "token-1"})
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/order", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"player 12 is not a pitcher"}`))
	})

	if c := LoginCookie(t, mux, "manager", "baseball"); c.Value != "token-1" {
		t.Fatalf("unexpected cookie %+v", c)
	}
	rr := Serve(mux, http.MethodPost, "/api/order", nil)
	AssertJSONError(t, rr, http.StatusBadRequest, "player 12 is not a pitcher")
}
