package teststubs

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/dugout/internal/domain"
	"github.com/preston-bernstein/dugout/internal/view"
)

func TestRecordingRendererTracksEvents(t *testing.T) {
	var r RecordingRenderer
	r.RenderUnauthenticated()
	r.RenderAuthenticatedShell(view.SectionHome)
	r.RenderSection(view.SectionSchedule, domain.GameState{Schedule: []domain.GameResult{{HomeScore: 1}}})
	r.Notify(view.Info("hello"))

	if len(r.Events()) != 4 {
		t.Fatalf("expected 4 events, got %d", len(r.Events()))
	}
	if r.Count(EventSection) != 1 {
		t.Fatalf("expected one section event")
	}
	last, ok := r.Last(EventNotice)
	if !ok || last.Notice.Text != "hello" {
		t.Fatalf("unexpected last notice %+v", last)
	}
	if _, ok := r.Last("missing"); ok {
		t.Fatalf("expected no event for unknown kind")
	}

	r.Reset()
	if len(r.Events()) != 0 {
		t.Fatalf("expected events cleared")
	}
}

func TestStubFetcherReturnsConfiguredValues(t *testing.T) {
	notify := make(chan struct{})
	f := &StubFetcher{State: domain.GameState{Teams: []domain.Team{{Name: "Bakers"}}}, Notify: notify}

	state, err := f.GameState(context.Background())
	if err != nil || len(state.Teams) != 1 {
		t.Fatalf("unexpected result %+v err=%v", state, err)
	}
	select {
	case <-notify:
	default:
		t.Fatalf("expected notify channel to be closed")
	}
	f.Err = errors.New("boom")
	if _, err := f.GameState(context.Background()); err == nil {
		t.Fatalf("expected configured error")
	}
	if f.Calls.Load() != 2 {
		t.Fatalf("expected 2 calls, got %d", f.Calls.Load())
	}
}
