// Package store holds the single authoritative snapshot of server-confirmed
// game state.
package store

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/preston-bernstein/dugout/internal/domain"
	"github.com/preston-bernstein/dugout/internal/logging"
)

// ErrNotLoaded is returned by Current before the first successful load.
var ErrNotLoaded = errors.New("game state not loaded")

// Fetcher performs one authenticated fetch of the full game state.
type Fetcher interface {
	GameState(ctx context.Context) (domain.GameState, error)
}

type snapshot struct {
	state    domain.GameState
	loadedAt time.Time
}

// GameStateStore swaps whole snapshots atomically. Readers never observe a
// partially applied load.
type GameStateStore struct {
	fetcher Fetcher
	current atomic.Pointer[snapshot]
	logger  *slog.Logger
	now     func() time.Time
}

// New constructs an empty store.
func New(fetcher Fetcher, logger *slog.Logger) *GameStateStore {
	return &GameStateStore{
		fetcher: fetcher,
		logger:  logger,
		now:     time.Now,
	}
}

// Load fetches the server state and replaces the snapshot on success.
// On failure the prior snapshot is left as it was.
func (s *GameStateStore) Load(ctx context.Context) (domain.GameState, error) {
	state, err := s.fetcher.GameState(ctx)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "game state load failed", err)
		return domain.GameState{}, err
	}
	s.Replace(state)
	logging.Debug(logging.FromContext(ctx, s.logger), "game state loaded",
		logging.FieldCount, len(state.Schedule),
	)
	return state.Clone(), nil
}

// Replace installs state as the new snapshot.
func (s *GameStateStore) Replace(state domain.GameState) {
	s.current.Store(&snapshot{state: state.Clone(), loadedAt: s.now()})
}

// Snapshot returns a deep copy of the current state. ok is false before the
// first successful load.
func (s *GameStateStore) Snapshot() (domain.GameState, bool) {
	snap := s.current.Load()
	if snap == nil {
		return domain.GameState{}, false
	}
	return snap.state.Clone(), true
}

// Current is Snapshot for callers that prefer an error.
func (s *GameStateStore) Current() (domain.GameState, error) {
	state, ok := s.Snapshot()
	if !ok {
		return domain.GameState{}, ErrNotLoaded
	}
	return state, nil
}

// LoadedAt reports when the current snapshot was installed.
func (s *GameStateStore) LoadedAt() (time.Time, bool) {
	snap := s.current.Load()
	if snap == nil {
		return time.Time{}, false
	}
	return snap.loadedAt, true
}

// Reset drops the snapshot; the store reads as not loaded afterwards.
func (s *GameStateStore) Reset() {
	s.current.Store(nil)
}
