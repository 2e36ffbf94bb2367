package analysis

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type PlanAction struct {
	RecommendationID uuid.UUID          `json:"recommendationID"`
	Type             RecommendationType `json:"type"`
	Step             string             `json:"step"`
	Amount           decimal.Decimal    `json:"amount"`
	Priority         Level              `json:"priority"`
}

type PlanBucket struct {
	Actions     []PlanAction    `json:"actions"`
	TotalImpact decimal.Decimal `json:"totalImpact"`
}

type PlanSummary struct {
	TotalRecommendations    int             `json:"totalRecommendations"`
	EstimatedMonthlySavings decimal.Decimal `json:"estimatedMonthlySavings"`
	// ImplementationTime is in minutes.
	ImplementationTime int   `json:"implementationTime"`
	ConfidenceLevel    Level `json:"confidenceLevel"`
}

type Plan struct {
	Immediate PlanBucket  `json:"immediate"`
	NextCycle PlanBucket  `json:"nextCycle"`
	Summary   PlanSummary `json:"summary"`
}

// BuildPlan groups recommendations by when they should be applied.
func BuildPlan(set RecommendationSet, projection Projection) Plan {
	plan := Plan{
		Immediate: PlanBucket{Actions: make([]PlanAction, 0), TotalImpact: decimal.Zero},
		NextCycle: PlanBucket{Actions: make([]PlanAction, 0), TotalImpact: decimal.Zero},
	}

	for _, r := range set.Recommendations {
		bucket := &plan.NextCycle
		if r.Timeline == TimelineImmediate {
			bucket = &plan.Immediate
		}
		bucket.Actions = append(bucket.Actions, PlanAction{
			RecommendationID: r.ID,
			Type:             r.Type,
			Step:             actionStep(r),
			Amount:           r.Amount,
			Priority:         r.Priority,
		})
		bucket.TotalImpact = bucket.TotalImpact.Add(r.Amount)
	}

	plan.Summary = PlanSummary{
		TotalRecommendations:    set.RecommendationCount,
		EstimatedMonthlySavings: projection.ProjectedMonthlySavings,
		ImplementationTime:      set.EstimatedTimeToImplement,
		ConfidenceLevel:         confidenceLevel(projection.ConfidenceScore),
	}
	return plan
}

func actionStep(r Recommendation) string {
	name := r.CategoryName
	if name == "" {
		name = r.CategoryID
	}
	switch r.Type {
	case RecommendationBudgetIncrease:
		return fmt.Sprintf("Increase the %s budget from %s to %s", name,
			r.CurrentBudget.StringFixed(moneyPlaces), r.SuggestedBudget.StringFixed(moneyPlaces))
	case RecommendationBudgetDecrease:
		return fmt.Sprintf("Reduce the %s budget from %s to %s and move %s to savings and debt", name,
			r.CurrentBudget.StringFixed(moneyPlaces), r.SuggestedBudget.StringFixed(moneyPlaces), r.Amount.StringFixed(moneyPlaces))
	case RecommendationGoalFunding:
		return fmt.Sprintf("Set aside %s each month for the %s goal", r.Amount.StringFixed(moneyPlaces), r.GoalType)
	case RecommendationBudgetCreation:
		return fmt.Sprintf("Create a %s budget of %s", name, r.SuggestedBudget.StringFixed(moneyPlaces))
	}
	return string(r.Type)
}

func confidenceLevel(score float64) Level {
	switch {
	case score >= highConfidenceThreshold:
		return LevelHigh
	case score >= mediumConfidenceThreshold:
		return LevelMedium
	default:
		return LevelLow
	}
}
