package metrics

import (
	"sync"
	"time"
)

type endpointStats struct {
	calls           int
	errors          int
	authLost        int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about gateway calls.
// When telemetry is enabled it also forwards to OpenTelemetry instruments.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*endpointStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*endpointStats),
		otel:  otel,
	}
}

// RecordCall increments counters for a server call and stores the last observed latency.
func (r *Recorder) RecordCall(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStatsLocked(endpoint)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCall(endpoint, duration, err)
	}
}

// RecordAuthLost tracks a 401 observed on a protected endpoint.
func (r *Recorder) RecordAuthLost(endpoint string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.ensureStatsLocked(endpoint).authLost++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordAuthLost(endpoint)
	}
}

// Calls returns the total attempts recorded for an endpoint.
func (r *Recorder) Calls(endpoint string) int {
	return r.Snapshot(endpoint).Calls
}

// Errors returns the total failed attempts recorded for an endpoint.
func (r *Recorder) Errors(endpoint string) int {
	return r.Snapshot(endpoint).Errors
}

// AuthLost returns the number of session rejections seen on an endpoint.
func (r *Recorder) AuthLost(endpoint string) int {
	return r.Snapshot(endpoint).AuthLost
}

// Snapshot is a copy of the current stats for one endpoint.
type Snapshot struct {
	Calls           int
	Errors          int
	AuthLost        int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(endpoint string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[endpoint]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		AuthLost:        stats.authLost,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks inbound HTTP metrics for the game server.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordRefreshCycle tracks background refresh cycles and errors.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRefresh(duration, err)
}

func (r *Recorder) ensureStatsLocked(endpoint string) *endpointStats {
	stats, ok := r.stats[endpoint]
	if !ok {
		stats = &endpointStats{}
		r.stats[endpoint] = stats
	}
	return stats
}
