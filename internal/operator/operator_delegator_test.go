package operator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type funcAction func(ctx context.Context) error

func (f funcAction) Perform(ctx context.Context) error {
	return f(ctx)
}

func newStartedDelegator(t *testing.T, workers int) *OperatorDelegator {
	t.Helper()
	d := NewOperatorDelegator(workers)
	d.Start()
	t.Cleanup(d.Stop)
	return d
}

// -- Process tests --

func TestProcess_RunsAction(t *testing.T) {
	d := newStartedDelegator(t, 2)
	var ran atomic.Bool

	err := d.Process(context.Background(), funcAction(func(ctx context.Context) error {
		ran.Store(true)
		return nil
	}))

	require.NoError(t, err)
	assert.True(t, ran.Load())
	assert.Equal(t, int64(1), d.Stats().Completed)
}

func TestProcess_ReturnsActionError(t *testing.T) {
	d := newStartedDelegator(t, 1)
	boom := errors.New("boom")

	err := d.Process(context.Background(), funcAction(func(ctx context.Context) error {
		return boom
	}))

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(1), d.Stats().Failed)
}

func TestProcess_ContextTimeout(t *testing.T) {
	d := newStartedDelegator(t, 1)
	release := make(chan struct{})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := d.Process(ctx, funcAction(func(ctx context.Context) error {
		<-release
		return nil
	}))

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestProcess_SkipsCancelledItems(t *testing.T) {
	d := newStartedDelegator(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var ran atomic.Bool
	err := d.Process(ctx, funcAction(func(ctx context.Context) error {
		ran.Store(true)
		return nil
	}))

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, ran.Load())
}

func TestProcess_BoundsConcurrency(t *testing.T) {
	const workers = 3
	d := newStartedDelegator(t, workers)

	var current, peak atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = d.Process(context.Background(), funcAction(func(ctx context.Context) error {
				n := current.Add(1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(2 * time.Millisecond)
				current.Add(-1)
				return nil
			}))
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, peak.Load(), int64(workers))
	assert.Equal(t, int64(20), d.Stats().Completed)
}

func TestProcess_AfterStop(t *testing.T) {
	d := NewOperatorDelegator(1)
	d.Start()
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), funcAction(func(ctx context.Context) error { return nil }))

	assert.ErrorIs(t, err, ErrStopped)
}

func TestNewOperatorDelegator_MinimumWorkers(t *testing.T) {
	d := NewOperatorDelegator(0)

	stats := d.Stats()
	assert.Equal(t, 1, stats.Workers)
	assert.Zero(t, stats.QueueDepth)
}
