package saving

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-analysis/internal/analysis"
)

type Saving struct {
	ID           uuid.UUID       `db:"id"`
	Name         string          `db:"name"`
	TargetAmount decimal.Decimal `db:"target_amount"`
	StartAmount  decimal.Decimal `db:"start_amount"`
	EndDate      time.Time       `db:"end_date"`
}

var columns = []string{"id", "name", "target_amount", "start_amount", "end_date"}

func ToAnalysis(rows []Saving) []analysis.Saving {
	out := make([]analysis.Saving, len(rows))
	for i, row := range rows {
		out[i] = analysis.Saving{
			ID:           row.ID,
			Name:         row.Name,
			TargetAmount: row.TargetAmount,
			StartAmount:  row.StartAmount,
			EndDate:      row.EndDate,
		}
	}
	return out
}
