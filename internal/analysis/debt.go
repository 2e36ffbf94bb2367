package analysis

import "github.com/shopspring/decimal"

type DebtStrategy string

const (
	DebtStrategyNone      DebtStrategy = "none"
	DebtStrategySnowball  DebtStrategy = "snowball"
	DebtStrategyAvalanche DebtStrategy = "avalanche"
)

type DebtAnalysis struct {
	TotalDebt           decimal.Decimal `json:"totalDebt"`
	HighInterestDebt    decimal.Decimal `json:"highInterestDebt"`
	MinimumPayments     decimal.Decimal `json:"minimumPayments"`
	DebtCount           int             `json:"debtCount"`
	RecommendedStrategy DebtStrategy    `json:"recommendedStrategy"`
}

// AnalyzeDebt totals outstanding debt and picks a payoff strategy. Snowball is
// preferred when there are many debts or any small one that can be cleared
// quickly.
func AnalyzeDebt(debts []Debt) DebtAnalysis {
	result := DebtAnalysis{
		TotalDebt:           decimal.Zero,
		HighInterestDebt:    decimal.Zero,
		MinimumPayments:     decimal.Zero,
		DebtCount:           len(debts),
		RecommendedStrategy: DebtStrategyNone,
	}
	if len(debts) == 0 {
		return result
	}

	hasSmallDebt := false
	for _, d := range debts {
		result.TotalDebt = result.TotalDebt.Add(d.Amount)
		if d.InterestRate > highInterestRateThreshold {
			result.HighInterestDebt = result.HighInterestDebt.Add(d.Amount)
		}
		if d.Amount.LessThan(snowballSmallDebt) {
			hasSmallDebt = true
		}
	}
	result.MinimumPayments = minimumPayments(debts)

	result.RecommendedStrategy = DebtStrategyAvalanche
	if len(debts) > snowballMaxDebtCount || hasSmallDebt {
		result.RecommendedStrategy = DebtStrategySnowball
	}
	return result
}

// minimumPayments applies the flat minimum payment rate to every balance.
func minimumPayments(debts []Debt) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		total = total.Add(d.Amount.Mul(minimumPaymentRate))
	}
	return total
}
