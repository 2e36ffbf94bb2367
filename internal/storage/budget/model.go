package budget

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-analysis/internal/analysis"
)

// Budget is a budget row. A null category tracks uncategorized spending.
type Budget struct {
	ID         uuid.UUID       `db:"id"`
	CategoryID uuid.NullUUID   `db:"category_id"`
	GoalAmount decimal.Decimal `db:"goal_amount"`
	StartDate  time.Time       `db:"start_date"`
	EndDate    time.Time       `db:"end_date"`
	Expired    bool            `db:"expired"`
}

var columns = []string{"id", "category_id", "goal_amount", "start_date", "end_date", "expired"}

// ToAnalysis converts budget rows. A budget whose end date is before the
// calendar day of now is reported as expired even if the stored flag was never
// flipped. The end date itself is still active.
func ToAnalysis(rows []Budget, now time.Time) []analysis.Budget {
	today := calendarDay(now)
	out := make([]analysis.Budget, len(rows))
	for i, row := range rows {
		out[i] = analysis.Budget{
			ID:         row.ID,
			CategoryID: row.CategoryID,
			GoalAmount: row.GoalAmount,
			StartDate:  row.StartDate,
			EndDate:    row.EndDate,
			Expired:    row.Expired || (!row.EndDate.IsZero() && calendarDay(row.EndDate).Before(today)),
		}
	}
	return out
}

// calendarDay drops the clock and zone so DATE columns scanned as UTC midnight
// compare by day against a snapshot time in any zone.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
