package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/budget-analysis/internal/operator/actions"
)

const queueSize = 1000

var ErrStopped = errors.New("operator: delegator stopped")

// OperatorDelegator manages the queue, starts/stops Operators (workers), and enqueues items.
type OperatorDelegator struct {
	queue      chan ActionItem
	numWorkers int
	counts     counters

	mu       sync.RWMutex
	stopped  bool
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// Stats is a point-in-time view of the pool.
type Stats struct {
	Workers    int   `json:"workers"`
	QueueDepth int   `json:"queueDepth"`
	Active     int64 `json:"active"`
	Completed  int64 `json:"completed"`
	Failed     int64 `json:"failed"`
	Cancelled  int64 `json:"cancelled"`
}

func NewOperatorDelegator(numWorkers int) *OperatorDelegator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &OperatorDelegator{
		queue:      make(chan ActionItem, queueSize),
		numWorkers: numWorkers,
	}
}

func (d *OperatorDelegator) Start() {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		op := NewOperator(d.queue, &d.counts)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	}
}

// Stop closes the queue and waits for queued items to drain.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.mu.Lock()
		d.stopped = true
		close(d.queue)
		d.mu.Unlock()
		d.wg.Wait()
	})
}

// Process enqueues an action and waits for a worker to finish it. A context
// that ends first returns its error and the result is discarded.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	d.mu.RLock()
	if d.stopped {
		d.mu.RUnlock()
		return ErrStopped
	}
	select {
	case d.queue <- item:
		d.mu.RUnlock()
	case <-ctx.Done():
		d.mu.RUnlock()
		return ctx.Err()
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) Stats() Stats {
	return Stats{
		Workers:    d.numWorkers,
		QueueDepth: len(d.queue),
		Active:     d.counts.active.Load(),
		Completed:  d.counts.completed.Load(),
		Failed:     d.counts.failed.Load(),
		Cancelled:  d.counts.cancelled.Load(),
	}
}
