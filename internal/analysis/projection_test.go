package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func repeatRecommendation(r Recommendation, n int) []Recommendation {
	recs := make([]Recommendation, n)
	for i := range recs {
		recs[i] = r
	}
	return recs
}

// -- ProjectImpact tests --

func TestProjectImpact_Totals(t *testing.T) {
	recs := []Recommendation{
		{OpportunityType: OpportunityOverspending, Amount: dec("160"), Priority: LevelHigh},
		{OpportunityType: OpportunityUnderutilization, Amount: dec("80"), Priority: LevelMedium},
		{OpportunityType: OpportunityGoalBased, Amount: dec("500"), Priority: LevelLow},
	}

	projection := ProjectImpact(recs, 2)

	assert.True(t, projection.OverspendingReduction.Equal(dec("128")))
	assert.True(t, projection.AvailableFundsIncrease.Equal(dec("80")))
	assert.True(t, projection.ProjectedMonthlySavings.Equal(dec("184")))
	assert.Equal(t, 0.25, projection.BudgetEfficiencyImprovement)
	assert.Equal(t, 0.6, projection.RiskReduction)
	assert.Equal(t, stabilitySoon, projection.TimeToStability)
	assert.Equal(t, 0.6, projection.ConfidenceScore)
}

func TestProjectImpact_EfficiencyCapped(t *testing.T) {
	for _, n := range []int{4, 10, 100} {
		recs := repeatRecommendation(Recommendation{OpportunityType: OpportunityOverspending, Amount: dec("10"), Priority: LevelHigh}, n)
		projection := ProjectImpact(recs, 50)
		assert.LessOrEqual(t, projection.BudgetEfficiencyImprovement, maxEfficiencyImprovement)
		assert.Equal(t, maxEfficiencyImprovement, projection.BudgetEfficiencyImprovement)
	}
}

func TestProjectImpact_RiskUncapped(t *testing.T) {
	recs := repeatRecommendation(Recommendation{OpportunityType: OpportunityGoalBased, Priority: LevelHigh}, 10)

	projection := ProjectImpact(recs, 0)

	assert.Equal(t, 3.0, projection.RiskReduction)
	assert.Equal(t, stabilityLater, projection.TimeToStability)
}

func TestProjectImpact_StabilityThreshold(t *testing.T) {
	recs := repeatRecommendation(Recommendation{Priority: LevelHigh}, 3)

	assert.Equal(t, stabilitySoon, ProjectImpact(recs, 0).TimeToStability)
}

func TestProjectImpact_Confidence(t *testing.T) {
	assert.Equal(t, 0.8, ProjectImpact(nil, 11).ConfidenceScore)
	assert.Equal(t, 0.6, ProjectImpact(nil, 10).ConfidenceScore)

	six := repeatRecommendation(Recommendation{Priority: LevelLow}, 6)
	assert.Equal(t, 0.7, ProjectImpact(six, 11).ConfidenceScore)
	assert.Equal(t, 0.5, ProjectImpact(six, 3).ConfidenceScore)
}

// -- BuildPlan tests --

func TestBuildPlan_PartitionsByTimeline(t *testing.T) {
	ids := sequentialIDs()
	set := RecommendationSet{
		Recommendations: []Recommendation{
			{ID: ids(), Type: RecommendationBudgetIncrease, Timeline: TimelineImmediate, CategoryName: "Rent",
				CurrentBudget: dec("500"), SuggestedBudget: dec("660"), Amount: dec("160"), Priority: LevelHigh},
			{ID: ids(), Type: RecommendationBudgetDecrease, Timeline: TimelineNextCycle, CategoryName: "Dining Out",
				CurrentBudget: dec("200"), SuggestedBudget: dec("105"), Amount: dec("80"), Priority: LevelMedium},
			{ID: ids(), Type: RecommendationGoalFunding, Timeline: TimelineNextCycle, GoalType: "vacation",
				Amount: dec("20"), Priority: LevelMedium},
		},
		RecommendationCount:      3,
		EstimatedTimeToImplement: 45,
	}

	plan := BuildPlan(set, Projection{ProjectedMonthlySavings: dec("184"), ConfidenceScore: 0.7})

	if assert.Len(t, plan.Immediate.Actions, 1) {
		assert.Equal(t, "Increase the Rent budget from 500.00 to 660.00", plan.Immediate.Actions[0].Step)
	}
	assert.True(t, plan.Immediate.TotalImpact.Equal(dec("160")))
	if assert.Len(t, plan.NextCycle.Actions, 2) {
		assert.Equal(t, "Set aside 20.00 each month for the vacation goal", plan.NextCycle.Actions[1].Step)
	}
	assert.True(t, plan.NextCycle.TotalImpact.Equal(dec("100")))

	assert.Equal(t, 3, plan.Summary.TotalRecommendations)
	assert.Equal(t, 45, plan.Summary.ImplementationTime)
	assert.True(t, plan.Summary.EstimatedMonthlySavings.Equal(dec("184")))
	assert.Equal(t, LevelMedium, plan.Summary.ConfidenceLevel)
}

func TestConfidenceLevel(t *testing.T) {
	assert.Equal(t, LevelHigh, confidenceLevel(0.8))
	assert.Equal(t, LevelMedium, confidenceLevel(0.6))
	assert.Equal(t, LevelMedium, confidenceLevel(0.79))
	assert.Equal(t, LevelLow, confidenceLevel(0.5))
}
