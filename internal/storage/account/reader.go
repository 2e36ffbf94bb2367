package account

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

func (r *Reader) ListByUser(ctx context.Context, userID uuid.UUID) ([]Account, error) {
	query := sqlconfig.SelectForUser(sqlconfig.AccountsTable, columns, userID,
		sm.OrderBy(psql.Quote("name")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[Account]())
	if err != nil {
		return nil, fmt.Errorf("account.ListByUser: %w", err)
	}
	return rows, nil
}
