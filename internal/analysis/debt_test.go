package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// -- AnalyzeDebt tests --

func TestAnalyzeDebt_Empty(t *testing.T) {
	result := AnalyzeDebt(nil)

	assert.True(t, result.TotalDebt.IsZero())
	assert.True(t, result.MinimumPayments.IsZero())
	assert.Equal(t, 0, result.DebtCount)
	assert.Equal(t, DebtStrategyNone, result.RecommendedStrategy)
}

func TestAnalyzeDebt_Avalanche(t *testing.T) {
	result := AnalyzeDebt([]Debt{
		{Name: "Card", Amount: dec("5000"), InterestRate: 15.5},
		{Name: "Car", Amount: dec("2000"), InterestRate: 8},
		{Name: "Store card", Amount: dec("1000"), InterestRate: 22},
	})

	assert.True(t, result.TotalDebt.Equal(dec("8000")))
	assert.True(t, result.HighInterestDebt.Equal(dec("6000")))
	assert.True(t, result.MinimumPayments.Equal(dec("160")))
	assert.Equal(t, 3, result.DebtCount)
	assert.Equal(t, DebtStrategyAvalanche, result.RecommendedStrategy)
}

func TestAnalyzeDebt_SnowballForManyDebts(t *testing.T) {
	debts := make([]Debt, 6)
	for i := range debts {
		debts[i] = Debt{Amount: dec("2500"), InterestRate: 12}
	}

	assert.Equal(t, DebtStrategySnowball, AnalyzeDebt(debts).RecommendedStrategy)
}

func TestAnalyzeDebt_SnowballForSmallDebt(t *testing.T) {
	result := AnalyzeDebt([]Debt{
		{Amount: dec("5000"), InterestRate: 15.5},
		{Amount: dec("999.99"), InterestRate: 3},
	})

	assert.Equal(t, DebtStrategySnowball, result.RecommendedStrategy)
	assert.True(t, result.HighInterestDebt.Equal(dec("5000")))
}
