package analysis

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type RecommendationType string

const (
	RecommendationBudgetIncrease RecommendationType = "budget_increase"
	RecommendationBudgetDecrease RecommendationType = "budget_decrease"
	RecommendationGoalFunding    RecommendationType = "goal_funding"
	RecommendationBudgetCreation RecommendationType = "budget_creation"
)

type Timeline string

const (
	TimelineImmediate Timeline = "immediate"
	TimelineNextCycle Timeline = "next_cycle"
)

const (
	TargetEmergencyFund = "emergency_fund"
	TargetDebtPayment   = "debt_payment"
	TargetSavingsGoal   = "savings_goal"
)

// FundingSource is the part of one category's headroom drawn into a
// recommendation.
type FundingSource struct {
	CategoryID string          `json:"categoryID"`
	Available  decimal.Decimal `json:"available"`
	Amount     decimal.Decimal `json:"amount"`
}

type SourcingResult struct {
	Sources   []FundingSource `json:"sources"`
	Total     decimal.Decimal `json:"total"`
	Shortfall decimal.Decimal `json:"shortfall"`
}

type ReallocationTarget struct {
	Target   string          `json:"target"`
	Amount   decimal.Decimal `json:"amount"`
	Priority Level           `json:"priority"`
}

type ExpectedImpact struct {
	BudgetAccuracy     float64 `json:"budgetAccuracy"`
	StressReduction    float64 `json:"stressReduction"`
	FinancialStability float64 `json:"financialStability"`
}

type Recommendation struct {
	ID               uuid.UUID            `json:"id"`
	Type             RecommendationType   `json:"type"`
	OpportunityType  OpportunityType      `json:"opportunityType"`
	CategoryID       string               `json:"categoryID,omitempty"`
	CategoryName     string               `json:"categoryName,omitempty"`
	GoalType         string               `json:"goalType,omitempty"`
	CurrentBudget    decimal.Decimal      `json:"currentBudget"`
	SuggestedBudget  decimal.Decimal      `json:"suggestedBudget"`
	Amount           decimal.Decimal      `json:"amount"`
	Sourcing         *SourcingResult      `json:"sourcing,omitempty"`
	SuggestedTargets []ReallocationTarget `json:"suggestedTargets,omitempty"`
	ExpectedImpact   ExpectedImpact       `json:"expectedImpact"`
	Priority         Level                `json:"priority"`
	Timeline         Timeline             `json:"timeline"`
}

type RecommendationSet struct {
	Recommendations         []Recommendation `json:"recommendations"`
	TotalReallocationAmount decimal.Decimal  `json:"totalReallocationAmount"`
	RecommendationCount     int              `json:"recommendationCount"`
	// EstimatedTimeToImplement is in minutes.
	EstimatedTimeToImplement int `json:"estimatedTimeToImplement"`
}

var (
	overspendingImpactHigh = ExpectedImpact{BudgetAccuracy: 0.25, StressReduction: 0.3, FinancialStability: 0.2}
	overspendingImpact     = ExpectedImpact{BudgetAccuracy: 0.25, StressReduction: 0.2, FinancialStability: 0.2}
	underutilizationImpact = ExpectedImpact{BudgetAccuracy: 0.2, StressReduction: 0.1, FinancialStability: 0.3}
	goalFundingImpact      = ExpectedImpact{BudgetAccuracy: 0.1, StressReduction: 0.2, FinancialStability: 0.3}
	budgetCreationImpact   = ExpectedImpact{BudgetAccuracy: 0.3, StressReduction: 0.1, FinancialStability: 0.1}
)

// FindSources draws need from the headroom of budgets, in order. No budget
// gives more than half of its headroom and budgets with 50 or less headroom
// are skipped. A shortfall is reported rather than treated as an error.
//
// The half bound applies per call to the headroom left after spent, not to
// the budget's original headroom. A donor drawn on by several recommendations
// can give more than half of its goal minus actual spending in total.
func FindSources(need decimal.Decimal, budgets []Budget, spent map[string]decimal.Decimal) SourcingResult {
	result := SourcingResult{Sources: make([]FundingSource, 0), Total: decimal.Zero}
	remaining := need

	for _, b := range budgets {
		if !remaining.IsPositive() {
			break
		}
		if b.Expired {
			continue
		}
		key := categoryKey(b.CategoryID)
		available := b.GoalAmount.Sub(spent[key])
		if !available.GreaterThan(sourceMinimumHeadroom) {
			continue
		}
		contribution := decimal.Min(available.Mul(sourceHeadroomShare), remaining)
		result.Sources = append(result.Sources, FundingSource{
			CategoryID: key,
			Available:  available,
			Amount:     contribution,
		})
		result.Total = result.Total.Add(contribution)
		remaining = remaining.Sub(contribution)
	}

	result.Shortfall = decimal.Max(decimal.Zero, remaining)
	return result
}

type generator struct {
	budgets []Budget
	// committed starts as actual spending and grows by every contribution so
	// later recommendations only see the headroom that is still free. An
	// overspent category has negative headroom and is never its own source.
	committed map[string]decimal.Decimal
	newID     func() uuid.UUID
}

// GenerateRecommendations turns opportunities into concrete budget changes.
// spent is current-period spending by category key; it is not modified.
func GenerateRecommendations(opportunities []Opportunity, budgets []Budget, spent map[string]decimal.Decimal, newID func() uuid.UUID) RecommendationSet {
	g := &generator{
		budgets:   budgets,
		committed: make(map[string]decimal.Decimal, len(spent)),
		newID:     newID,
	}
	for k, v := range spent {
		g.committed[k] = v
	}

	recommendations := make([]Recommendation, 0, len(opportunities))
	for _, opp := range opportunities {
		switch opp.Type {
		case OpportunityOverspending:
			recommendations = append(recommendations, g.budgetIncrease(opp))
		case OpportunityUnderutilization:
			recommendations = append(recommendations, g.budgetDecrease(opp))
		case OpportunityGoalBased:
			recommendations = append(recommendations, g.goalFunding(opp))
		case OpportunityUntracked:
			recommendations = append(recommendations, g.budgetCreations(opp)...)
		}
	}

	total := decimal.Zero
	for _, r := range recommendations {
		total = total.Add(r.Amount)
	}

	return RecommendationSet{
		Recommendations:          recommendations,
		TotalReallocationAmount:  total,
		RecommendationCount:      len(recommendations),
		EstimatedTimeToImplement: baseImplementationMinutes + minutesPerRecommendation*len(recommendations),
	}
}

func (g *generator) source(need decimal.Decimal) *SourcingResult {
	result := FindSources(need, g.budgets, g.committed)
	for _, s := range result.Sources {
		g.committed[s.CategoryID] = g.committed[s.CategoryID].Add(s.Amount)
	}
	return &result
}

func (g *generator) budgetIncrease(opp Opportunity) Recommendation {
	delta := opp.SuggestedBudget.Sub(opp.CurrentBudget)
	impact := overspendingImpact
	if opp.Priority == LevelHigh {
		impact = overspendingImpactHigh
	}
	return Recommendation{
		ID:              g.newID(),
		Type:            RecommendationBudgetIncrease,
		OpportunityType: opp.Type,
		CategoryID:      opp.CategoryID,
		CategoryName:    opp.CategoryName,
		CurrentBudget:   opp.CurrentBudget,
		SuggestedBudget: opp.SuggestedBudget,
		Amount:          delta,
		Sourcing:        g.source(delta),
		ExpectedImpact:  impact,
		Priority:        opp.Priority,
		Timeline:        TimelineImmediate,
	}
}

func (g *generator) budgetDecrease(opp Opportunity) Recommendation {
	available := opp.AvailableReallocation
	return Recommendation{
		ID:              g.newID(),
		Type:            RecommendationBudgetDecrease,
		OpportunityType: opp.Type,
		CategoryID:      opp.CategoryID,
		CategoryName:    opp.CategoryName,
		CurrentBudget:   opp.CurrentBudget,
		SuggestedBudget: opp.SuggestedBudget,
		Amount:          available,
		SuggestedTargets: []ReallocationTarget{
			{Target: TargetEmergencyFund, Amount: available.Mul(emergencyFundShare), Priority: LevelHigh},
			{Target: TargetDebtPayment, Amount: available.Mul(debtPaymentShare), Priority: LevelHigh},
			{Target: TargetSavingsGoal, Amount: available.Mul(savingsGoalShare), Priority: LevelMedium},
		},
		ExpectedImpact: underutilizationImpact,
		Priority:       opp.Priority,
		Timeline:       TimelineNextCycle,
	}
}

func (g *generator) goalFunding(opp Opportunity) Recommendation {
	rec := Recommendation{
		ID:              g.newID(),
		Type:            RecommendationGoalFunding,
		OpportunityType: opp.Type,
		CurrentBudget:   decimal.Zero,
		SuggestedBudget: decimal.Zero,
		Amount:          decimal.Zero,
		ExpectedImpact:  goalFundingImpact,
		Priority:        opp.Priority,
		Timeline:        TimelineNextCycle,
	}
	if opp.Goal != nil {
		rec.GoalType = opp.Goal.Type
		rec.Amount = opp.Goal.MonthlyRequirement
		rec.SuggestedBudget = opp.Goal.MonthlyRequirement
	}
	if rec.Amount.IsPositive() {
		rec.Sourcing = g.source(rec.Amount)
	}
	return rec
}

func (g *generator) budgetCreations(opp Opportunity) []Recommendation {
	recs := make([]Recommendation, 0, len(opp.UntrackedCategories))
	for _, c := range opp.UntrackedCategories {
		suggested := c.Amount.Mul(untrackedBudgetMultiplier)
		recs = append(recs, Recommendation{
			ID:              g.newID(),
			Type:            RecommendationBudgetCreation,
			OpportunityType: opp.Type,
			CategoryID:      c.CategoryID,
			CategoryName:    c.CategoryName,
			CurrentBudget:   decimal.Zero,
			SuggestedBudget: suggested,
			Amount:          suggested,
			ExpectedImpact:  budgetCreationImpact,
			Priority:        opp.Priority,
			Timeline:        TimelineImmediate,
		})
	}
	return recs
}
