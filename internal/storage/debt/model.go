package debt

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-analysis/internal/analysis"
)

type Debt struct {
	ID           uuid.UUID       `db:"id"`
	Name         string          `db:"name"`
	Amount       decimal.Decimal `db:"amount"`
	InterestRate float64         `db:"interest_rate"`
}

var columns = []string{"id", "name", "amount", "interest_rate"}

func ToAnalysis(rows []Debt) []analysis.Debt {
	out := make([]analysis.Debt, len(rows))
	for i, row := range rows {
		out[i] = analysis.Debt{ID: row.ID, Name: row.Name, Amount: row.Amount, InterestRate: row.InterestRate}
	}
	return out
}
