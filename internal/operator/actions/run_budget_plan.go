package actions

import (
	"context"

	"github.com/carson-networks/budget-analysis/internal/analysis"
)

type RunBudgetPlan struct {
	Engine      *analysis.Engine
	Snapshot    *analysis.FinancialSnapshot
	Preferences map[string]float64

	Result *analysis.BudgetPlan
}

func (r *RunBudgetPlan) Perform(ctx context.Context) error {
	plan, err := r.Engine.BuildBudgetPlan(r.Snapshot, r.Preferences)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	r.Result = plan
	return nil
}
