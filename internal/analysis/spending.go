package analysis

import (
	"sort"

	"github.com/shopspring/decimal"
)

type CategorySpending struct {
	CategoryID     string          `json:"categoryID"`
	Total          decimal.Decimal `json:"total"`
	AverageMonthly decimal.Decimal `json:"averageMonthly"`
	Volatility     float64         `json:"volatility"`
	Percentage     decimal.Decimal `json:"percentage"`
}

type SpendingAnalysis struct {
	TotalSpending        decimal.Decimal    `json:"totalSpending"`
	TotalMonthlySpending decimal.Decimal    `json:"totalMonthlySpending"`
	MonthCount           int                `json:"monthCount"`
	Categories           []CategorySpending `json:"categories"`
	VolatileCategories   []string           `json:"volatileCategories"`
	MonthlySpending      []MonthlyAmount    `json:"monthlySpending"`
}

// Category looks up the spending summary of a category id.
func (s SpendingAnalysis) Category(id string) (CategorySpending, bool) {
	for _, c := range s.Categories {
		if c.CategoryID == id {
			return c, true
		}
	}
	return CategorySpending{}, false
}

// AnalyzeSpending summarises expense magnitudes per category and month.
func AnalyzeSpending(txs []Transaction) SpendingAnalysis {
	expenses := filterByType(txs, TransactionTypeExpense)
	magnitude := func(tx Transaction) decimal.Decimal { return tx.Amount.Abs() }

	monthly := monthlyTotals(expenses, magnitude)
	monthCount := len(monthly)
	if monthCount == 0 {
		monthCount = 1
	}
	months := decimal.NewFromInt(int64(monthCount))

	monthAmounts := make([]decimal.Decimal, len(monthly))
	monthIndex := make(map[string]int, len(monthly))
	for i, m := range monthly {
		monthAmounts[i] = m.Amount
		monthIndex[m.Month] = i
	}
	totalSpending := sum(monthAmounts)
	totalMonthly := totalSpending.Div(months)

	// per-category series over every observed month, zero where absent
	series := make(map[string][]decimal.Decimal)
	var order []string
	for _, tx := range expenses {
		key := categoryKey(tx.CategoryID)
		if _, ok := series[key]; !ok {
			series[key] = make([]decimal.Decimal, monthCount)
			order = append(order, key)
		}
		idx := monthIndex[tx.Date.Format(monthKeyLayout)]
		series[key][idx] = series[key][idx].Add(magnitude(tx))
	}

	categories := make([]CategorySpending, 0, len(order))
	volatile := make([]string, 0)
	for _, key := range order {
		total := sum(series[key])
		average := total.Div(months)
		volatility := roundCoefficient(safeRatio(stdDev(floats(series[key])), average.InexactFloat64()))

		categories = append(categories, CategorySpending{
			CategoryID:     key,
			Total:          total,
			AverageMonthly: average.Round(moneyPlaces),
			Volatility:     volatility,
			Percentage:     safeDiv(average, totalMonthly).Mul(hundred).Round(moneyPlaces),
		})
		if volatility > volatileThreshold {
			volatile = append(volatile, key)
		}
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].AverageMonthly.GreaterThan(categories[j].AverageMonthly)
	})

	return SpendingAnalysis{
		TotalSpending:        totalSpending,
		TotalMonthlySpending: totalMonthly.Round(moneyPlaces),
		MonthCount:           monthCount,
		Categories:           categories,
		VolatileCategories:   volatile,
		MonthlySpending:      monthly,
	}
}
