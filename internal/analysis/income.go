package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

type Trend string

const (
	TrendUnknown    Trend = "unknown"
	TrendIncreasing Trend = "increasing"
	TrendDecreasing Trend = "decreasing"
	TrendStable     Trend = "stable"
)

// MonthlyAmount is the total for one calendar month, keyed "YYYY-MM".
type MonthlyAmount struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// RecurringIncome is an income source seen at least twice with the same
// description and rounded amount.
type RecurringIncome struct {
	Description    string          `json:"description"`
	Frequency      int             `json:"frequency"`
	AverageAmount  decimal.Decimal `json:"averageAmount"`
	LastOccurrence time.Time       `json:"lastOccurrence"`
}

type IncomeAnalysis struct {
	AverageMonthlyIncome decimal.Decimal   `json:"averageMonthlyIncome"`
	IncomeStability      float64           `json:"incomeStability"`
	Trend                Trend             `json:"trend"`
	RecurringIncome      []RecurringIncome `json:"recurringIncome"`
	TotalIncome          decimal.Decimal   `json:"totalIncome"`
	MonthlyIncome        []MonthlyAmount   `json:"monthlyIncome"`
}

// AnalyzeIncome summarises the income transactions of txs. Other transaction
// types are ignored.
func AnalyzeIncome(txs []Transaction) IncomeAnalysis {
	income := filterByType(txs, TransactionTypeIncome)
	if len(income) == 0 {
		return IncomeAnalysis{
			AverageMonthlyIncome: decimal.Zero,
			Trend:                TrendUnknown,
			RecurringIncome:      []RecurringIncome{},
			TotalIncome:          decimal.Zero,
			MonthlyIncome:        []MonthlyAmount{},
		}
	}

	monthly := monthlyTotals(income, func(tx Transaction) decimal.Decimal { return tx.Amount })
	amounts := make([]decimal.Decimal, len(monthly))
	for i, m := range monthly {
		amounts[i] = m.Amount
	}

	total := sum(amounts)
	average := total.Div(decimal.NewFromInt(int64(len(monthly))))
	series := floats(amounts)

	return IncomeAnalysis{
		AverageMonthlyIncome: average.Round(moneyPlaces),
		IncomeStability:      incomeStability(series),
		Trend:                incomeTrend(series),
		RecurringIncome:      recurringIncome(income),
		TotalIncome:          total,
		MonthlyIncome:        monthly,
	}
}

func incomeStability(series []float64) float64 {
	avg := mean(series)
	if avg <= 0 {
		return 0
	}
	return roundCoefficient(math.Max(0, 1-safeRatio(stdDev(series), avg)))
}

// incomeTrend compares the first and last thirds of a chronological series.
func incomeTrend(series []float64) Trend {
	if len(series) < trendMinMonths {
		return TrendUnknown
	}
	third := len(series) / 3
	firstAvg := mean(series[:third])
	lastAvg := mean(series[len(series)-third:])

	switch {
	case lastAvg > firstAvg*trendIncreaseFactor:
		return TrendIncreasing
	case lastAvg < firstAvg*trendDecreaseFactor:
		return TrendDecreasing
	default:
		return TrendStable
	}
}

type recurringKey struct {
	description string
	amount      string
}

func recurringIncome(income []Transaction) []RecurringIncome {
	groups := make(map[recurringKey][]Transaction)
	var order []recurringKey
	for _, tx := range income {
		key := recurringKey{description: tx.Description, amount: tx.Amount.Round(0).String()}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], tx)
	}

	recurring := make([]RecurringIncome, 0)
	for _, key := range order {
		group := groups[key]
		if len(group) < recurringMinMatches {
			continue
		}
		amounts := make([]decimal.Decimal, len(group))
		last := group[0].Date
		for i, tx := range group {
			amounts[i] = tx.Amount
			if tx.Date.After(last) {
				last = tx.Date
			}
		}
		recurring = append(recurring, RecurringIncome{
			Description:    key.description,
			Frequency:      len(group),
			AverageAmount:  sum(amounts).Div(decimal.NewFromInt(int64(len(group)))).Round(moneyPlaces),
			LastOccurrence: last,
		})
	}

	sort.SliceStable(recurring, func(i, j int) bool {
		if recurring[i].Frequency != recurring[j].Frequency {
			return recurring[i].Frequency > recurring[j].Frequency
		}
		return recurring[i].Description < recurring[j].Description
	})
	return recurring
}

// monthlyTotals sums value(tx) per calendar month in chronological order.
func monthlyTotals(txs []Transaction, value func(Transaction) decimal.Decimal) []MonthlyAmount {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range txs {
		key := tx.Date.Format(monthKeyLayout)
		totals[key] = totals[key].Add(value(tx))
	}

	months := make([]string, 0, len(totals))
	for month := range totals {
		months = append(months, month)
	}
	sort.Strings(months)

	out := make([]MonthlyAmount, len(months))
	for i, month := range months {
		out[i] = MonthlyAmount{Month: month, Amount: totals[month]}
	}
	return out
}
