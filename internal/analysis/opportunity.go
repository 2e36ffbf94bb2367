package analysis

import (
	"sort"

	"github.com/shopspring/decimal"
)

type OpportunityType string

const (
	OpportunityOverspending     OpportunityType = "OVERSPENDING_ADJUSTMENT"
	OpportunityUnderutilization OpportunityType = "UNDERUTILIZATION_OPTIMIZATION"
	OpportunityGoalBased        OpportunityType = "GOAL_BASED_REALLOCATION"
	OpportunityUntracked        OpportunityType = "UNTRACKED_SPENDING_ALLOCATION"
)

// TargetGoal is a caller-supplied savings or payoff goal. Type is opaque to
// the engine.
type TargetGoal struct {
	Type               string          `json:"type"`
	Priority           Level           `json:"priority,omitempty"`
	MonthlyRequirement decimal.Decimal `json:"monthlyRequirement"`
}

// Validate rejects goals that cannot be funded.
func (g TargetGoal) Validate(i int) error {
	if g.MonthlyRequirement.IsNegative() {
		return inputError(indexed("targetGoals", i, "monthlyRequirement"), "must not be negative, got %s", g.MonthlyRequirement)
	}
	switch g.Priority {
	case "", LevelHigh, LevelMedium, LevelLow:
		return nil
	}
	return inputError(indexed("targetGoals", i, "priority"), "unknown priority %q", g.Priority)
}

type Opportunity struct {
	Type                  OpportunityType     `json:"type"`
	CategoryID            string              `json:"categoryID,omitempty"`
	CategoryName          string              `json:"categoryName,omitempty"`
	CurrentBudget         decimal.Decimal     `json:"currentBudget"`
	Actual                decimal.Decimal     `json:"actual"`
	Variance              decimal.Decimal     `json:"variance"`
	SuggestedBudget       decimal.Decimal     `json:"suggestedBudget"`
	AvailableReallocation decimal.Decimal     `json:"availableReallocation"`
	Goal                  *TargetGoal         `json:"goal,omitempty"`
	UntrackedCategories   []UntrackedCategory `json:"untrackedCategories,omitempty"`
	UntrackedTotal        decimal.Decimal     `json:"untrackedTotal"`
	Priority              Level               `json:"priority"`
	Impact                Level               `json:"impact"`
}

// IdentifyOpportunities applies each detection rule independently, so one
// category can produce several opportunities. The result is ordered by
// priority, keeping detection order within a priority.
func IdentifyOpportunities(variance VarianceAnalysis, goals []TargetGoal) []Opportunity {
	opportunities := make([]Opportunity, 0)

	for _, cv := range variance.OverspendingCategories {
		if !cv.VariancePercent.GreaterThan(overspendOpportunityPercent) {
			continue
		}
		impact := LevelMedium
		if cv.Severity == LevelHigh {
			impact = LevelHigh
		}
		opportunities = append(opportunities, Opportunity{
			Type:            OpportunityOverspending,
			CategoryID:      cv.CategoryID,
			CategoryName:    cv.CategoryName,
			CurrentBudget:   cv.Budgeted,
			Actual:          cv.Actual,
			Variance:        cv.Variance,
			SuggestedBudget: cv.Actual.Mul(overspendBudgetMultiplier),
			Priority:        cv.Severity,
			Impact:          impact,
		})
	}

	for _, cv := range variance.UnderspendingCategories {
		if !cv.VariancePercent.LessThan(underuseOpportunityPercent) || !cv.Actual.IsPositive() {
			continue
		}
		opportunities = append(opportunities, Opportunity{
			Type:                  OpportunityUnderutilization,
			CategoryID:            cv.CategoryID,
			CategoryName:          cv.CategoryName,
			CurrentBudget:         cv.Budgeted,
			Actual:                cv.Actual,
			Variance:              cv.Variance,
			SuggestedBudget:       cv.Actual.Mul(underuseBudgetMultiplier),
			AvailableReallocation: cv.Variance.Abs().Mul(underuseReallocationShare),
			Priority:              LevelMedium,
			Impact:                LevelMedium,
		})
	}

	for _, g := range goals {
		goal := g
		priority := goal.Priority
		if priority == "" {
			priority = LevelMedium
		}
		opportunities = append(opportunities, Opportunity{
			Type:     OpportunityGoalBased,
			Goal:     &goal,
			Priority: priority,
			Impact:   LevelHigh,
		})
	}

	untracked := variance.UntrackedSpending
	if untracked.Total.GreaterThan(untrackedOpportunityMinimum) {
		top := untracked.Categories
		if len(top) > untrackedTopCategories {
			top = top[:untrackedTopCategories]
		}
		opportunities = append(opportunities, Opportunity{
			Type:                OpportunityUntracked,
			UntrackedCategories: append([]UntrackedCategory(nil), top...),
			UntrackedTotal:      untracked.Total,
			Priority:            LevelHigh,
			Impact:              LevelMedium,
		})
	}

	sort.SliceStable(opportunities, func(i, j int) bool {
		return opportunities[i].Priority.rank() > opportunities[j].Priority.rank()
	})
	return opportunities
}
