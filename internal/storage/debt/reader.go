package debt

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/budget-analysis/internal/storage/sqlconfig"
)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// ListByUser returns outstanding debts, highest interest rate first.
func (r *Reader) ListByUser(ctx context.Context, userID uuid.UUID) ([]Debt, error) {
	query := sqlconfig.SelectForUser(sqlconfig.DebtsTable, columns, userID,
		sm.OrderBy(psql.Quote("interest_rate")).Desc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[Debt]())
	if err != nil {
		return nil, fmt.Errorf("debt.ListByUser: %w", err)
	}
	return rows, nil
}
