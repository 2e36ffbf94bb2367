package operator

import (
	"context"
	"sync/atomic"

	"github.com/carson-networks/budget-analysis/internal/operator/actions"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	queue  chan ActionItem
	counts *counters
}

func NewOperator(queue chan ActionItem, counts *counters) *Operator {
	return &Operator{
		queue:  queue,
		counts: counts,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	// The caller may have given up while the item sat in the queue.
	if err := item.ctx.Err(); err != nil {
		o.counts.cancelled.Add(1)
		item.response <- ActionItemResponse{err: err}
		return
	}

	o.counts.active.Add(1)
	err := item.action.Perform(item.ctx)
	o.counts.active.Add(-1)

	if err != nil {
		o.counts.failed.Add(1)
	} else {
		o.counts.completed.Add(1)
	}
	item.response <- ActionItemResponse{err: err}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}

type counters struct {
	active    atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
	cancelled atomic.Int64
}
