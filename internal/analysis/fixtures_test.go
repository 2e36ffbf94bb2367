package analysis

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

var (
	rentID    = uuid.FromStringOrNil("7b5e0d64-3f3a-4d7e-9a8e-0c1f1d1a0001")
	diningID  = uuid.FromStringOrNil("7b5e0d64-3f3a-4d7e-9a8e-0c1f1d1a0002")
	travelID  = uuid.FromStringOrNil("7b5e0d64-3f3a-4d7e-9a8e-0c1f1d1a0003")
	hobbiesID = uuid.FromStringOrNil("7b5e0d64-3f3a-4d7e-9a8e-0c1f1d1a0004")
	giftsID   = uuid.FromStringOrNil("7b5e0d64-3f3a-4d7e-9a8e-0c1f1d1a0005")

	snapshotDate = time.Date(2025, 6, 20, 12, 0, 0, 0, time.UTC)
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nullID(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: true}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 9, 0, 0, 0, time.UTC)
}

func expenseTx(amount string, date time.Time, category uuid.UUID) Transaction {
	return Transaction{
		ID:         uuid.Must(uuid.NewV4()),
		Amount:     dec(amount),
		Date:       date,
		Type:       TransactionTypeExpense,
		CategoryID: nullID(category),
	}
}

func incomeTx(amount string, date time.Time, description string) Transaction {
	return Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		Amount:      dec(amount),
		Date:        date,
		Type:        TransactionTypeIncome,
		Description: description,
	}
}

func budget(category uuid.UUID, goal string) Budget {
	return Budget{
		ID:         uuid.Must(uuid.NewV4()),
		CategoryID: nullID(category),
		GoalAmount: dec(goal),
		StartDate:  day(2025, time.June, 1),
		EndDate:    day(2025, time.June, 30),
	}
}

func testCategories() []Category {
	return []Category{
		{ID: rentID, Name: "Rent", Type: "expense"},
		{ID: diningID, Name: "Dining Out", Type: "expense"},
		{ID: travelID, Name: "Travel", Type: "expense"},
		{ID: hobbiesID, Name: "Hobbies", Type: "expense"},
		{ID: giftsID, Name: "Gifts", Type: "expense"},
	}
}

// varianceSnapshot budgets rent at 500 and dining at 200 against current
// spending of 600 and 100.
func varianceSnapshot() *FinancialSnapshot {
	current := []Transaction{
		expenseTx("-600", day(2025, time.June, 3), rentID),
		expenseTx("-100", day(2025, time.June, 10), diningID),
	}
	return &FinancialSnapshot{
		Transactions:        current,
		CurrentTransactions: current,
		Categories:          testCategories(),
		Budgets:             []Budget{budget(rentID, "500"), budget(diningID, "200")},
		SnapshotDate:        snapshotDate,
		Timeframe:           TimeframeMonthly,
	}
}

// sequentialIDs returns a generator producing the same ids for every engine
// built from it.
func sequentialIDs() func() uuid.UUID {
	n := byte(0)
	return func() uuid.UUID {
		n++
		var id uuid.UUID
		id[15] = n
		return id
	}
}
