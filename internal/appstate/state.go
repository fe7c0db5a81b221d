// Package appstate holds the process-wide application state object shared by
// the session controller, the gateway and the view layer.
package appstate

import "sync"

// Phase is the session controller's state.
type Phase int

const (
	Unauthenticated Phase = iota
	Authenticating
	Authenticated
)

func (p Phase) String() string {
	switch p {
	case Unauthenticated:
		return "unauthenticated"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// State is the explicit replacement for free-standing session globals.
// The authenticated flag is advisory: it reflects the last observed response.
type State struct {
	mu      sync.RWMutex
	phase   Phase
	section string
	user    string
	epoch   uint64
}

// New returns state in the implicit start phase: Authenticating until probed.
func New() *State {
	return &State{phase: Authenticating}
}

// Phase returns the current phase.
func (s *State) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// Authenticated reports whether the last observed response accepted the session.
func (s *State) Authenticated() bool {
	return s.Phase() == Authenticated
}

// Epoch changes every time the authentication phase changes. Work started in
// an older epoch must not update the view.
func (s *State) Epoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// Section returns the section last shown to the user.
func (s *State) Section() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.section
}

// SetSection records the visible section.
func (s *State) SetSection(section string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.section = section
}

// User returns the username that last logged in successfully.
func (s *State) User() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Transition moves to phase p and returns the new epoch.
func (s *State) Transition(p Phase) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != p {
		s.phase = p
		s.epoch++
	}
	return s.epoch
}

// SignedIn marks the session authenticated for user.
func (s *State) SignedIn(user string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	if s.phase != Authenticated {
		s.phase = Authenticated
		s.epoch++
	}
	return s.epoch
}

// MarkUnauthenticated drops the session flag. It reports whether the phase changed.
func (s *State) MarkUnauthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == Unauthenticated {
		return false
	}
	s.phase = Unauthenticated
	s.epoch++
	return true
}

// Reset clears everything except the epoch counter, which keeps increasing.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != Unauthenticated {
		s.epoch++
	}
	s.phase = Unauthenticated
	s.section = ""
	s.user = ""
}
