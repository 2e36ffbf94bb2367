package actions

import (
	"context"

	"github.com/carson-networks/budget-analysis/internal/analysis"
)

// RunReallocation runs the reallocation pipeline. Result is set only when
// Perform succeeds.
type RunReallocation struct {
	Engine   *analysis.Engine
	Snapshot *analysis.FinancialSnapshot
	Goals    []analysis.TargetGoal

	Result *analysis.ReallocationResult
}

func (r *RunReallocation) Perform(ctx context.Context) error {
	result, err := r.Engine.Reallocate(r.Snapshot, r.Goals)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.Result = result
	return nil
}
