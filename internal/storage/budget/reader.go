package budget

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

func (r *Reader) ListByUser(ctx context.Context, userID uuid.UUID) ([]Budget, error) {
	query := sqlconfig.SelectForUser(sqlconfig.BudgetsTable, columns, userID,
		sm.OrderBy(psql.Quote("start_date")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[Budget]())
	if err != nil {
		return nil, fmt.Errorf("budget.ListByUser: %w", err)
	}
	return rows, nil
}
