package monitor_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-safety/internal/models"
	"campus-safety/internal/monitor"
)

func TestMonitor_RefreshesSnapshot(t *testing.T) {
	alerts := []models.SosAlert{
		{ID: "a1", ReporterRef: "S1", Status: models.SosActive},
		{ID: "a2", ReporterRef: "S2", Status: models.SosResponding},
	}

	m := monitor.New(func(ctx context.Context) ([]models.SosAlert, error) {
		return alerts, nil
	}, 10*time.Millisecond)

	m.Start(context.Background())
	defer m.Stop()

	require.Eventually(t, func() bool {
		return len(m.Snapshot().Alerts) == 2
	}, time.Second, 5*time.Millisecond)

	snap := m.Snapshot()
	assert.Equal(t, "a1", snap.Alerts[0].ID)
	assert.False(t, snap.FetchedAt.IsZero())
}

func TestMonitor_StopTerminatesLoop(t *testing.T) {
	var calls atomic.Int64

	m := monitor.New(func(ctx context.Context) ([]models.SosAlert, error) {
		calls.Add(1)
		return nil, nil
	}, 10*time.Millisecond)

	m.Start(context.Background())

	require.Eventually(t, func() bool {
		return calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	m.Stop()
	after := calls.Load()

	// No firing after stop
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestMonitor_ContextCancellationTerminatesLoop(t *testing.T) {
	var calls atomic.Int64

	m := monitor.New(func(ctx context.Context) ([]models.SosAlert, error) {
		calls.Add(1)
		return nil, nil
	}, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	m.Start(ctx)

	require.Eventually(t, func() bool {
		return calls.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	time.Sleep(30 * time.Millisecond)
	after := calls.Load()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, calls.Load())
}

func TestMonitor_SlowFetchCoalesces(t *testing.T) {
	var inFlight atomic.Int64
	var overlapped atomic.Bool

	m := monitor.New(func(ctx context.Context) ([]models.SosAlert, error) {
		if inFlight.Add(1) > 1 {
			overlapped.Store(true)
		}
		defer inFlight.Add(-1)

		// Slower than several intervals: later ticks must be skipped,
		// not queued behind this one
		time.Sleep(60 * time.Millisecond)
		return nil, nil
	}, 10*time.Millisecond)

	m.Start(context.Background())
	time.Sleep(200 * time.Millisecond)
	m.Stop()

	assert.False(t, overlapped.Load(), "two refreshes ran concurrently")
}

func TestMonitor_RetainsSnapshotOnFetchError(t *testing.T) {
	var calls atomic.Int64

	m := monitor.New(func(ctx context.Context) ([]models.SosAlert, error) {
		if calls.Add(1) == 1 {
			return []models.SosAlert{{ID: "a1", Status: models.SosActive}}, nil
		}
		return nil, errors.New("store unavailable")
	}, 10*time.Millisecond)

	m.Start(context.Background())
	defer m.Stop()

	require.Eventually(t, func() bool {
		return len(m.Snapshot().Alerts) == 1
	}, time.Second, 5*time.Millisecond)
	good := m.Snapshot()

	// Let several failing refreshes happen
	require.Eventually(t, func() bool {
		return calls.Load() >= 3
	}, time.Second, 5*time.Millisecond)

	snap := m.Snapshot()
	assert.Equal(t, good.Alerts, snap.Alerts)
	assert.Equal(t, good.FetchedAt, snap.FetchedAt, "failed refresh must not touch FetchedAt")
}
