package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/dugout/internal/domain"
	"github.com/preston-bernstein/dugout/internal/view"
)

// Event is one call recorded by RecordingRenderer.
type Event struct {
	Kind    string
	Section view.Section
	State   domain.GameState
	Notice  view.Notice
}

// Event kinds.
const (
	EventUnauthenticated = "unauthenticated"
	EventShell           = "shell"
	EventSection         = "section"
	EventNotice          = "notice"
)

// RecordingRenderer is a test double for view.Renderer.
type RecordingRenderer struct {
	mu     sync.Mutex
	events []Event
}

func (r *RecordingRenderer) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *RecordingRenderer) RenderUnauthenticated() {
	r.record(Event{Kind: EventUnauthenticated})
}

func (r *RecordingRenderer) RenderAuthenticatedShell(initial view.Section) {
	r.record(Event{Kind: EventShell, Section: initial})
}

func (r *RecordingRenderer) RenderSection(section view.Section, state domain.GameState) {
	r.record(Event{Kind: EventSection, Section: section, State: state.Clone()})
}

func (r *RecordingRenderer) Notify(n view.Notice) {
	r.record(Event{Kind: EventNotice, Notice: n})
}

// Events returns a copy of everything recorded so far.
func (r *RecordingRenderer) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many events of kind were recorded.
func (r *RecordingRenderer) Count(kind string) int {
	n := 0
	for _, e := range r.Events() {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Last returns the most recent event of kind.
func (r *RecordingRenderer) Last(kind string) (Event, bool) {
	events := r.Events()
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Kind == kind {
			return events[i], true
		}
	}
	return Event{}, false
}

// Reset forgets recorded events.
func (r *RecordingRenderer) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// StubFetcher is a test double for store.Fetcher.
type StubFetcher struct {
	State  domain.GameState
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// GameState returns the configured state and error while tracking calls.
func (s *StubFetcher) GameState(ctx context.Context) (domain.GameState, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.State.Clone(), s.Err
}
