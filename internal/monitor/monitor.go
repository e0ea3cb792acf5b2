// Package monitor keeps the reviewer-facing active-SOS snapshot fresh.
// SOS freshness is safety-critical; other incident collections are read
// on demand and deliberately not auto-refreshed.
package monitor

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"campus-safety/internal/models"
)

// Fetcher loads the current active-alert collection from the store
type Fetcher func(ctx context.Context) ([]models.SosAlert, error)

// Snapshot is one observed state of the active-alert collection.
// FetchedAt tells the consumer how stale the view is after fetch
// failures: the previous good snapshot is retained, not discarded.
type Snapshot struct {
	Alerts    []models.SosAlert
	FetchedAt time.Time
}

// Monitor refreshes the active-SOS snapshot on a fixed interval. The loop
// is bound to the context passed to Start and stops promptly on
// cancellation; a refresh still in flight suppresses later ticks instead
// of queuing behind them.
type Monitor struct {
	fetch    Fetcher
	interval time.Duration

	mu       sync.RWMutex
	snapshot Snapshot

	inFlight atomic.Bool
	stopOnce sync.Once
	stopChan chan struct{}
	done     chan struct{}
}

// New creates a monitor polling with the given fetcher and interval
func New(fetch Fetcher, interval time.Duration) *Monitor {
	return &Monitor{
		fetch:    fetch,
		interval: interval,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs the refresh loop in its own goroutine until ctx is cancelled
// or Stop is called. The first refresh happens immediately, not one
// interval in.
func (m *Monitor) Start(ctx context.Context) {
	go func() {
		defer close(m.done)

		slog.Info("Starting SOS monitor", "interval", m.interval)

		m.refresh(ctx)

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				// Async so a slow fetch never blocks tick handling; the
				// in-flight guard in refresh does the coalescing.
				go m.refresh(ctx)
			case <-ctx.Done():
				slog.Info("SOS monitor stopped", "reason", "context cancelled")
				return
			case <-m.stopChan:
				slog.Info("SOS monitor stopped", "reason", "stop requested")
				return
			}
		}
	}()
}

// Stop terminates the loop and waits for it to exit. Safe to call more
// than once.
func (m *Monitor) Stop() {
	m.stopOnce.Do(func() {
		close(m.stopChan)
	})
	<-m.done
}

// Snapshot returns the latest good view of the active-alert collection
func (m *Monitor) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

// refresh fetches the active alerts once. A refresh already in flight
// makes this a no-op: a slow response must not trigger an overlapping
// duplicate request.
func (m *Monitor) refresh(ctx context.Context) {
	if !m.inFlight.CompareAndSwap(false, true) {
		slog.Debug("SOS refresh still in flight, tick skipped")
		return
	}
	defer m.inFlight.Store(false)

	alerts, err := m.fetch(ctx)
	if err != nil {
		// Transient store failures must not disrupt the review session.
		// Keep the previous snapshot and try again on the next tick.
		m.mu.RLock()
		lastGood := m.snapshot.FetchedAt
		m.mu.RUnlock()
		slog.Warn("SOS refresh failed, retaining previous snapshot",
			"error", err, "last_good_fetch", lastGood)
		return
	}

	m.mu.Lock()
	m.snapshot = Snapshot{Alerts: alerts, FetchedAt: time.Now()}
	m.mu.Unlock()
}
