package analysis

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	stabilitySoon  = "1-2 months"
	stabilityLater = "2-3 months"
)

type Projection struct {
	OverspendingReduction       decimal.Decimal `json:"overspendingReduction"`
	AvailableFundsIncrease      decimal.Decimal `json:"availableFundsIncrease"`
	ProjectedMonthlySavings     decimal.Decimal `json:"projectedMonthlySavings"`
	BudgetEfficiencyImprovement float64         `json:"budgetEfficiencyImprovement"`
	RiskReduction               float64         `json:"riskReduction"`
	TimeToStability             string          `json:"timeToStability"`
	ConfidenceScore             float64         `json:"confidenceScore"`
}

// ProjectImpact estimates what applying the recommendations would change.
// sampleSize is the number of current-period transactions behind them.
func ProjectImpact(recommendations []Recommendation, sampleSize int) Projection {
	reduction := decimal.Zero
	funds := decimal.Zero
	efficiency := 0.0
	risk := 0.0
	highPriority := 0

	for _, r := range recommendations {
		switch r.OpportunityType {
		case OpportunityOverspending:
			reduction = reduction.Add(r.Amount.Mul(overspendingReductionShare))
			efficiency += overspendingEfficiencyGain
		case OpportunityUnderutilization:
			funds = funds.Add(r.Amount)
			efficiency += underutilizationEfficiencyGain
		}

		switch r.Priority {
		case LevelHigh:
			risk += highPriorityRiskWeight
			highPriority++
		case LevelMedium:
			risk += mediumPriorityRiskWeight
		case LevelLow:
			risk += lowPriorityRiskWeight
		}
	}

	stability := stabilitySoon
	if highPriority > stabilityHighPriorityCount {
		stability = stabilityLater
	}

	return Projection{
		OverspendingReduction:       reduction,
		AvailableFundsIncrease:      funds,
		ProjectedMonthlySavings:     reduction.Add(funds.Mul(availableFundsSavingsShare)),
		BudgetEfficiencyImprovement: roundCoefficient(math.Min(efficiency, maxEfficiencyImprovement)),
		RiskReduction:               roundCoefficient(risk),
		TimeToStability:             stability,
		ConfidenceScore:             confidenceScore(sampleSize, len(recommendations)),
	}
}

func confidenceScore(sampleSize, recommendationCount int) float64 {
	quality := sparseDataQuality
	if sampleSize > richSampleSize {
		quality = richDataQuality
	}
	penalty := 0.0
	if recommendationCount > complexRecommendationCount {
		penalty = complexityPenalty
	}
	return roundCoefficient(math.Max(minConfidenceScore, quality-penalty))
}
