// Package refresher periodically reloads game state in the background so the
// visible section stays current while the user is idle.
package refresher

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/dugout/internal/gateway"
	"github.com/preston-bernstein/dugout/internal/logging"
	"github.com/preston-bernstein/dugout/internal/metrics"
	"github.com/preston-bernstein/dugout/internal/session"
)

const defaultInterval = 30 * time.Second

// Target is what the refresher reloads. session.Controller satisfies it.
type Target interface {
	Refresh(ctx context.Context) error
}

// Refresher calls Target.Refresh on an interval.
type Refresher struct {
	target   Target
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	Skipped             int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// Healthy reports whether refreshes are not failing repeatedly.
func (s Status) Healthy() bool {
	return s.ConsecutiveFailures < 3
}

// New constructs a Refresher. A non-positive interval uses the default.
func New(target Target, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Refresher {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Refresher{
		target:   target,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Start begins refreshing until the context is cancelled or Stop is called.
// The first refresh happens one interval after Start.
func (r *Refresher) Start(ctx context.Context) {
	r.startMu.Lock()
	if r.started {
		r.startMu.Unlock()
		return
	}
	r.started = true
	r.ticker = time.NewTicker(r.interval)
	r.startMu.Unlock()

	go func() {
		defer close(r.stopped)
		logging.Info(r.logger, "refresher started", logging.FieldDurationMS, r.interval.Milliseconds())
		for {
			select {
			case <-ctx.Done():
				r.stopTicker()
				logging.Info(r.logger, "refresher stopped")
				return
			case <-r.done:
				r.stopTicker()
				logging.Info(r.logger, "refresher stopped")
				return
			case <-r.ticker.C:
				r.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the loop and waits for an in-progress refresh to finish or for
// ctx to expire.
func (r *Refresher) Stop(ctx context.Context) error {
	r.stopOnce.Do(func() {
		close(r.done)
	})
	r.startMu.Lock()
	started := r.started
	r.startMu.Unlock()
	if !started {
		return nil
	}
	select {
	case <-r.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RefreshNow runs a single refresh cycle synchronously.
func (r *Refresher) RefreshNow(ctx context.Context) {
	r.refreshOnce(ctx)
}

func (r *Refresher) refreshOnce(ctx context.Context) {
	start := time.Now()
	err := r.target.Refresh(ctx)
	if skippable(err) {
		r.recordSkip(start)
		logging.Debug(r.logger, "refresh skipped", "reason", err.Error())
		return
	}
	r.metrics.RecordRefreshCycle(time.Since(start), err)
	if err != nil {
		logging.Warn(r.logger, "refresh failed", err, logging.FieldDurationMS, time.Since(start).Milliseconds())
		r.recordFailure(err, start)
		return
	}
	r.recordSuccess(start)
	logging.Debug(r.logger, "refresh completed", logging.FieldDurationMS, time.Since(start).Milliseconds())
}

// skippable errors mean there was nothing to refresh right now.
func skippable(err error) bool {
	return errors.Is(err, session.ErrBusy) ||
		errors.Is(err, session.ErrNotAuthenticated) ||
		errors.Is(err, gateway.ErrAuthLost)
}

func (r *Refresher) stopTicker() {
	r.startMu.Lock()
	defer r.startMu.Unlock()
	if r.ticker != nil {
		r.ticker.Stop()
	}
}

func (r *Refresher) recordSkip(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.Skipped++
	r.status.LastAttempt = at
}

func (r *Refresher) recordSuccess(at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures = 0
	r.status.LastError = ""
	r.status.LastAttempt = at
	r.status.LastSuccess = at
}

func (r *Refresher) recordFailure(err error, at time.Time) {
	r.statusMu.Lock()
	defer r.statusMu.Unlock()
	r.status.ConsecutiveFailures++
	r.status.LastError = err.Error()
	r.status.LastAttempt = at
}

// Status returns a snapshot of the refresher's recent health.
func (r *Refresher) Status() Status {
	r.statusMu.RLock()
	defer r.statusMu.RUnlock()
	return r.status
}
