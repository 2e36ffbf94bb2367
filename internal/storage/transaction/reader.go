package transaction

import (
	"context"
	"fmt"
	"time"

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

// ListBetween returns a user's transactions dated within [from, to], oldest
// first.
func (r *Reader) ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Transaction, error) {
	date := psql.Quote("transaction_date")
	query := sqlconfig.SelectForUser(sqlconfig.TransactionsTable, columns, userID,
		sm.Where(date.GTE(psql.Arg(from))),
		sm.Where(date.LTE(psql.Arg(to))),
		sm.OrderBy(date).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, fmt.Errorf("transaction.ListBetween: %w", err)
	}
	return rows, nil
}
