package transaction

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-analysis/internal/analysis"
)

// Transaction is a transaction row. Expense amounts are stored negative.
type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	CategoryID  uuid.NullUUID   `db:"category_id"`
	Amount      decimal.Decimal `db:"amount"`
	Date        time.Time       `db:"transaction_date"`
	Type        string          `db:"type"`
	Description string          `db:"description"`
}

var columns = []string{"id", "category_id", "amount", "transaction_date", "type", "description"}

func (t Transaction) ToAnalysis() analysis.Transaction {
	return analysis.Transaction{
		ID:          t.ID,
		Amount:      t.Amount,
		Date:        t.Date,
		Type:        analysis.TransactionType(t.Type),
		CategoryID:  t.CategoryID,
		Description: t.Description,
	}
}

func ToAnalysis(rows []Transaction) []analysis.Transaction {
	out := make([]analysis.Transaction, len(rows))
	for i, row := range rows {
		out[i] = row.ToAnalysis()
	}
	return out
}
