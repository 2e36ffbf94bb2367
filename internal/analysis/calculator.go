package analysis

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Allocation splits monthly income into needs, wants and the savings/debt share.
type Allocation struct {
	Needs          decimal.Decimal `json:"needs"`
	Wants          decimal.Decimal `json:"wants"`
	SavingsAndDebt decimal.Decimal `json:"savingsAndDebt"`
}

// Spendable is the part of the allocation distributed across categories.
func (a Allocation) Spendable() decimal.Decimal {
	return a.Needs.Add(a.Wants)
}

func FiftyThirtyTwenty(income decimal.Decimal) Allocation {
	return Allocation{
		Needs:          income.Mul(needsShare),
		Wants:          income.Mul(wantsShare),
		SavingsAndDebt: income.Mul(savingsAndDebtShare),
	}
}

// AggressiveSavings moves part of the wants share into savings.
func AggressiveSavings(income decimal.Decimal) Allocation {
	return Allocation{
		Needs:          income.Mul(needsShare),
		Wants:          income.Mul(aggressiveWantsShare),
		SavingsAndDebt: income.Mul(aggressiveSavingsShare),
	}
}

type FixedExpense struct {
	CategoryID string          `json:"categoryID"`
	Name       string          `json:"name"`
	Amount     decimal.Decimal `json:"amount"`
}

type EnvelopeAllocation struct {
	FixedExpenses  []FixedExpense  `json:"fixedExpenses"`
	TotalFixed     decimal.Decimal `json:"totalFixed"`
	Remaining      decimal.Decimal `json:"remaining"`
	Groceries      decimal.Decimal `json:"groceries"`
	Transportation decimal.Decimal `json:"transportation"`
	Entertainment  decimal.Decimal `json:"entertainment"`
	Miscellaneous  decimal.Decimal `json:"miscellaneous"`
	Emergency      decimal.Decimal `json:"emergency"`
}

// Allocation folds the envelopes back into a needs/wants/savings split.
func (e EnvelopeAllocation) Allocation() Allocation {
	return Allocation{
		Needs:          e.TotalFixed.Add(e.Groceries).Add(e.Transportation),
		Wants:          e.Entertainment.Add(e.Miscellaneous),
		SavingsAndDebt: e.Emergency,
	}
}

// Envelope divides what is left after fixed expenses into fixed-share
// envelopes. A nil fixed list is derived from the essential categories of
// spending.
func Envelope(income decimal.Decimal, fixed []FixedExpense, spending SpendingAnalysis, categories []Category) (EnvelopeAllocation, error) {
	if fixed == nil {
		fixed = essentialExpenses(spending, categories)
	}
	totalFixed := decimal.Zero
	for _, f := range fixed {
		totalFixed = totalFixed.Add(f.Amount)
	}

	remaining := income.Sub(totalFixed)
	if !remaining.IsPositive() {
		return EnvelopeAllocation{}, &InsufficientIncomeError{Income: income, FixedExpenses: totalFixed}
	}

	return EnvelopeAllocation{
		FixedExpenses:  fixed,
		TotalFixed:     totalFixed,
		Remaining:      remaining,
		Groceries:      remaining.Mul(groceriesShare),
		Transportation: remaining.Mul(transportationShare),
		Entertainment:  remaining.Mul(entertainmentShare),
		Miscellaneous:  remaining.Mul(miscellaneousShare),
		Emergency:      remaining.Mul(emergencyShare),
	}, nil
}

type DebtAvalanchePlan struct {
	MinimumDebtPayments decimal.Decimal `json:"minimumDebtPayments"`
	ExtraDebtPayment    decimal.Decimal `json:"extraDebtPayment"`
	TotalEssentials     decimal.Decimal `json:"totalEssentials"`
	TargetDebt          *Debt           `json:"targetDebt"`
}

// Allocation reserves essentials as needs and routes everything else to debt.
func (p DebtAvalanchePlan) Allocation() Allocation {
	return Allocation{
		Needs:          p.TotalEssentials,
		Wants:          decimal.Zero,
		SavingsAndDebt: p.MinimumDebtPayments.Add(p.ExtraDebtPayment),
	}
}

// DebtAvalanche targets the highest-rate debt with whatever income is left
// after essentials and minimum payments. Ties keep the first debt.
func DebtAvalanche(income decimal.Decimal, debts []Debt, essentials []decimal.Decimal) DebtAvalanchePlan {
	minimum := minimumPayments(debts)
	totalEssentials := sum(essentials)
	extra := decimal.Max(decimal.Zero, income.Sub(totalEssentials).Sub(minimum))

	var target *Debt
	for i := range debts {
		if target == nil || debts[i].InterestRate > target.InterestRate {
			d := debts[i]
			target = &d
		}
	}

	return DebtAvalanchePlan{
		MinimumDebtPayments: minimum,
		ExtraDebtPayment:    extra,
		TotalEssentials:     totalEssentials,
		TargetDebt:          target,
	}
}

type CategoryBudget struct {
	CategoryID        string          `json:"categoryID"`
	Name              string          `json:"name"`
	Essential         bool            `json:"essential"`
	HistoricalAverage decimal.Decimal `json:"historicalAverage"`
	Amount            decimal.Decimal `json:"amount"`
}

// DistributeCategoryBudgets proposes a budget per spending category from its
// historical average plus a buffer, optionally weighted by prefs (keyed by
// category id). When the proposals exceed the spendable allocation they are
// scaled down, but essential categories never drop below 90% of their proposal.
func DistributeCategoryBudgets(alloc Allocation, spending SpendingAnalysis, categories []Category, prefs map[string]float64) []CategoryBudget {
	names := categoryNames(categories)
	budgets := make([]CategoryBudget, 0, len(spending.Categories))
	total := decimal.Zero

	for _, c := range spending.Categories {
		amount := c.AverageMonthly.Mul(historicalBuffer)
		if pref, ok := prefs[c.CategoryID]; ok {
			amount = amount.Mul(decimal.NewFromFloat(pref))
		}
		name := names[c.CategoryID]
		budgets = append(budgets, CategoryBudget{
			CategoryID:        c.CategoryID,
			Name:              name,
			Essential:         IsEssential(name),
			HistoricalAverage: c.AverageMonthly,
			Amount:            amount,
		})
		total = total.Add(amount)
	}

	limit := alloc.Spendable()
	if total.GreaterThan(limit) {
		factor := safeDiv(limit, total)
		for i := range budgets {
			scaled := budgets[i].Amount.Mul(factor)
			if budgets[i].Essential {
				scaled = decimal.Max(scaled, budgets[i].Amount.Mul(essentialFloor))
			}
			budgets[i].Amount = scaled
		}
	}

	for i := range budgets {
		budgets[i].Amount = budgets[i].Amount.Round(moneyPlaces)
	}
	return budgets
}

// IsEssential reports whether a category name matches an essential keyword.
func IsEssential(name string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range essentialKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

func essentialExpenses(spending SpendingAnalysis, categories []Category) []FixedExpense {
	names := categoryNames(categories)
	fixed := make([]FixedExpense, 0)
	for _, c := range spending.Categories {
		name := names[c.CategoryID]
		if !IsEssential(name) {
			continue
		}
		fixed = append(fixed, FixedExpense{CategoryID: c.CategoryID, Name: name, Amount: c.AverageMonthly})
	}
	return fixed
}

func essentialAmounts(spending SpendingAnalysis, categories []Category) []decimal.Decimal {
	fixed := essentialExpenses(spending, categories)
	amounts := make([]decimal.Decimal, len(fixed))
	for i, f := range fixed {
		amounts[i] = f.Amount
	}
	return amounts
}
