package analysis

import (
	"sort"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type VarianceStatus string

const (
	StatusSignificantOverspending  VarianceStatus = "significant_overspending"
	StatusModerateOverspending     VarianceStatus = "moderate_overspending"
	StatusOnTrack                  VarianceStatus = "on_track"
	StatusModerateUnderspending    VarianceStatus = "moderate_underspending"
	StatusSignificantUnderspending VarianceStatus = "significant_underspending"
)

// Level grades both variance severity and recommendation priority.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

func (l Level) rank() int {
	switch l {
	case LevelHigh:
		return 3
	case LevelMedium:
		return 2
	case LevelLow:
		return 1
	}
	return 0
}

type CategoryVariance struct {
	BudgetID        uuid.UUID       `json:"budgetID"`
	CategoryID      string          `json:"categoryID"`
	CategoryName    string          `json:"categoryName"`
	Budgeted        decimal.Decimal `json:"budgeted"`
	Actual          decimal.Decimal `json:"actual"`
	Variance        decimal.Decimal `json:"variance"`
	VariancePercent decimal.Decimal `json:"variancePercent"`
	Status          VarianceStatus  `json:"status"`
	Severity        Level           `json:"severity"`
}

type UntrackedCategory struct {
	CategoryID   string          `json:"categoryID"`
	CategoryName string          `json:"categoryName"`
	Amount       decimal.Decimal `json:"amount"`
}

type UntrackedSpending struct {
	Categories []UntrackedCategory `json:"categories"`
	Total      decimal.Decimal     `json:"total"`
}

type VarianceAnalysis struct {
	CategoryVariances       []CategoryVariance `json:"categoryVariances"`
	TotalBudgeted           decimal.Decimal    `json:"totalBudgeted"`
	TotalSpent              decimal.Decimal    `json:"totalSpent"`
	TotalVariance           decimal.Decimal    `json:"totalVariance"`
	OverspendingCategories  []CategoryVariance `json:"overspendingCategories"`
	UnderspendingCategories []CategoryVariance `json:"underspendingCategories"`
	HighVarianceCategories  []CategoryVariance `json:"highVarianceCategories"`
	UntrackedSpending       UntrackedSpending  `json:"untrackedSpending"`
}

// SpentByCategory sums expense magnitudes per category key.
func SpentByCategory(txs []Transaction) map[string]decimal.Decimal {
	spent := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		if tx.Type != TransactionTypeExpense {
			continue
		}
		key := categoryKey(tx.CategoryID)
		spent[key] = spent[key].Add(tx.Amount.Abs())
	}
	return spent
}

// AnalyzeVariance compares the active budgets against current-period
// spending. Expired budgets are skipped. TotalSpent covers budgeted
// categories only; spending without a budget is reported as untracked.
func AnalyzeVariance(budgets []Budget, txs []Transaction, categories []Category) VarianceAnalysis {
	names := categoryNames(categories)
	spent := SpentByCategory(txs)

	result := VarianceAnalysis{
		CategoryVariances:       make([]CategoryVariance, 0),
		TotalBudgeted:           decimal.Zero,
		TotalSpent:              decimal.Zero,
		TotalVariance:           decimal.Zero,
		OverspendingCategories:  make([]CategoryVariance, 0),
		UnderspendingCategories: make([]CategoryVariance, 0),
		HighVarianceCategories:  make([]CategoryVariance, 0),
	}

	budgeted := make(map[string]bool)
	for _, b := range budgets {
		if b.Expired {
			continue
		}
		key := categoryKey(b.CategoryID)
		budgeted[key] = true

		actual := spent[key]
		variance := actual.Sub(b.GoalAmount)
		percent := safeDiv(variance, b.GoalAmount).Mul(hundred)

		cv := CategoryVariance{
			BudgetID:        b.ID,
			CategoryID:      key,
			CategoryName:    names[key],
			Budgeted:        b.GoalAmount,
			Actual:          actual,
			Variance:        variance,
			VariancePercent: percent,
			Status:          varianceStatus(percent),
			Severity:        varianceSeverity(percent, actual),
		}
		result.CategoryVariances = append(result.CategoryVariances, cv)
		result.TotalBudgeted = result.TotalBudgeted.Add(b.GoalAmount)
		result.TotalSpent = result.TotalSpent.Add(actual)

		if variance.IsPositive() {
			result.OverspendingCategories = append(result.OverspendingCategories, cv)
		} else if variance.IsNegative() {
			result.UnderspendingCategories = append(result.UnderspendingCategories, cv)
		}
		if percent.Abs().GreaterThan(highVariancePercent) {
			result.HighVarianceCategories = append(result.HighVarianceCategories, cv)
		}
	}
	result.TotalVariance = result.TotalSpent.Sub(result.TotalBudgeted)

	sort.SliceStable(result.CategoryVariances, func(i, j int) bool {
		return result.CategoryVariances[i].Variance.Abs().GreaterThan(result.CategoryVariances[j].Variance.Abs())
	})

	result.UntrackedSpending = untrackedSpending(spent, budgeted, names)
	return result
}

func varianceStatus(percent decimal.Decimal) VarianceStatus {
	switch {
	case percent.GreaterThan(significantOverspendPercent):
		return StatusSignificantOverspending
	case percent.GreaterThan(moderateOverspendPercent):
		return StatusModerateOverspending
	case percent.GreaterThan(onTrackFloorPercent):
		return StatusOnTrack
	case percent.GreaterThan(moderateUnderspendPercent):
		return StatusModerateUnderspending
	default:
		return StatusSignificantUnderspending
	}
}

func varianceSeverity(percent, actual decimal.Decimal) Level {
	abs := percent.Abs()
	switch {
	case abs.GreaterThan(highSeverityPercent) || actual.GreaterThan(highSeverityActual):
		return LevelHigh
	case abs.GreaterThan(mediumSeverityPercent) || actual.GreaterThan(mediumSeverityActual):
		return LevelMedium
	default:
		return LevelLow
	}
}

func untrackedSpending(spent map[string]decimal.Decimal, budgeted map[string]bool, names map[string]string) UntrackedSpending {
	result := UntrackedSpending{Categories: make([]UntrackedCategory, 0), Total: decimal.Zero}
	for key, amount := range spent {
		if budgeted[key] || key == uncategorizedBucket || !amount.IsPositive() {
			continue
		}
		result.Categories = append(result.Categories, UntrackedCategory{
			CategoryID:   key,
			CategoryName: names[key],
			Amount:       amount,
		})
		result.Total = result.Total.Add(amount)
	}

	sort.Slice(result.Categories, func(i, j int) bool {
		a, b := result.Categories[i], result.Categories[j]
		if !a.Amount.Equal(b.Amount) {
			return a.Amount.GreaterThan(b.Amount)
		}
		return a.CategoryID < b.CategoryID
	})
	return result
}
