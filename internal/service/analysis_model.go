package service

import (
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-analysis/internal/analysis"
)

type ReallocationRequest struct {
	UserID    uuid.UUID
	Timeframe analysis.Timeframe
	Goals     []analysis.TargetGoal
}

// ReallocationResponse carries either the engine result or, when the user's
// data could not be loaded, generic fallback advice with Success false.
type ReallocationResponse struct {
	Success        bool
	Result         *analysis.ReallocationResult
	FallbackAdvice *analysis.FallbackAdvice
}

type BudgetPlanRequest struct {
	UserID      uuid.UUID
	Timeframe   analysis.Timeframe
	Preferences map[string]float64
}

type BudgetPlanResponse struct {
	Success        bool
	Plan           *analysis.BudgetPlan
	FallbackAdvice *analysis.FallbackAdvice
}
