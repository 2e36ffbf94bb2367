package analysis

import (
	"fmt"
	"math"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Timeframe bounds the "current" transaction window of a snapshot.
type Timeframe string

const (
	TimeframeWeekly    Timeframe = "weekly"
	TimeframeMonthly   Timeframe = "monthly"
	TimeframeQuarterly Timeframe = "quarterly"
)

// ParseTimeframe maps an empty value to monthly.
func ParseTimeframe(value string) (Timeframe, error) {
	switch Timeframe(value) {
	case "":
		return TimeframeMonthly, nil
	case TimeframeWeekly, TimeframeMonthly, TimeframeQuarterly:
		return Timeframe(value), nil
	}
	return "", inputError("timeframe", "unknown timeframe %q", value)
}

// Transaction is a single income or expense entry. CategoryID is null for
// uncategorized entries.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Type        TransactionType `json:"type"`
	CategoryID  uuid.NullUUID   `json:"categoryID"`
	Description string          `json:"description"`
}

type Category struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}

// Budget is a spending goal for a category. A null CategoryID tracks
// uncategorized spending.
type Budget struct {
	ID         uuid.UUID       `json:"id"`
	CategoryID uuid.NullUUID   `json:"categoryID"`
	GoalAmount decimal.Decimal `json:"goalAmount"`
	StartDate  time.Time       `json:"startDate"`
	EndDate    time.Time       `json:"endDate"`
	Expired    bool            `json:"expired"`
}

// Debt amounts are outstanding balances including interest. InterestRate is a
// yearly percentage.
type Debt struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Amount       decimal.Decimal `json:"amount"`
	InterestRate float64         `json:"interestRate"`
}

type Saving struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	StartAmount  decimal.Decimal `json:"startAmount"`
	EndDate      time.Time       `json:"endDate"`
}

// FinancialSnapshot is the complete engine input for one user. Transactions
// holds the historical window used by the pattern analyzers and
// CurrentTransactions the timeframe window compared against budgets. A
// snapshot must not be modified once it is handed to the engine.
type FinancialSnapshot struct {
	Transactions        []Transaction   `json:"transactions"`
	CurrentTransactions []Transaction   `json:"currentTransactions"`
	Categories          []Category      `json:"categories"`
	Budgets             []Budget        `json:"budgets"`
	Debts               []Debt          `json:"debts"`
	Savings             []Saving        `json:"savings"`
	Balance             decimal.Decimal `json:"balance"`
	SnapshotDate        time.Time       `json:"snapshotDate"`
	Timeframe           Timeframe       `json:"timeframe"`
}

// Validate rejects snapshots the analyzers cannot process without coercing
// values.
func (s *FinancialSnapshot) Validate() error {
	if s == nil {
		return inputError("snapshot", "missing")
	}
	if s.SnapshotDate.IsZero() {
		return inputError("snapshotDate", "missing")
	}
	if err := validateTransactions("transactions", s.Transactions); err != nil {
		return err
	}
	if err := validateTransactions("currentTransactions", s.CurrentTransactions); err != nil {
		return err
	}

	activeCategories := make(map[string]bool, len(s.Budgets))
	for i, b := range s.Budgets {
		if !b.GoalAmount.IsPositive() {
			return inputError(indexed("budgets", i, "goalAmount"), "must be greater than zero, got %s", b.GoalAmount)
		}
		if b.Expired {
			continue
		}
		key := categoryKey(b.CategoryID)
		if activeCategories[key] {
			return inputError(indexed("budgets", i, "categoryID"), "more than one active budget for category %s", key)
		}
		activeCategories[key] = true
	}

	for i, d := range s.Debts {
		if d.Amount.IsNegative() {
			return inputError(indexed("debts", i, "amount"), "must not be negative, got %s", d.Amount)
		}
		if math.IsNaN(d.InterestRate) || math.IsInf(d.InterestRate, 0) || d.InterestRate < 0 {
			return inputError(indexed("debts", i, "interestRate"), "must be a non-negative number, got %v", d.InterestRate)
		}
	}

	for i, sv := range s.Savings {
		if sv.TargetAmount.IsNegative() {
			return inputError(indexed("savings", i, "targetAmount"), "must not be negative, got %s", sv.TargetAmount)
		}
	}

	switch s.Timeframe {
	case "", TimeframeWeekly, TimeframeMonthly, TimeframeQuarterly:
	default:
		return inputError("timeframe", "unknown timeframe %q", s.Timeframe)
	}
	return nil
}

func validateTransactions(field string, txs []Transaction) error {
	for i, tx := range txs {
		if tx.Type != TransactionTypeIncome && tx.Type != TransactionTypeExpense {
			return inputError(indexed(field, i, "type"), "unknown transaction type %q", tx.Type)
		}
		if tx.Date.IsZero() {
			return inputError(indexed(field, i, "date"), "missing")
		}
	}
	return nil
}

// ActiveBudgets returns the non-expired budgets in snapshot order.
func (s *FinancialSnapshot) ActiveBudgets() []Budget {
	active := make([]Budget, 0, len(s.Budgets))
	for _, b := range s.Budgets {
		if !b.Expired {
			active = append(active, b)
		}
	}
	return active
}

// categoryKey buckets a nullable category id.
func categoryKey(id uuid.NullUUID) string {
	if !id.Valid {
		return uncategorizedBucket
	}
	return id.UUID.String()
}

func categoryNames(categories []Category) map[string]string {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID.String()] = c.Name
	}
	return names
}

func filterByType(txs []Transaction, t TransactionType) []Transaction {
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Type == t {
			out = append(out, tx)
		}
	}
	return out
}

func indexed(field string, i int, sub string) string {
	return fmt.Sprintf("%s[%d].%s", field, i, sub)
}
