package sqlconfig

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectForUser(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	query, args, err := SelectForUser(CategoriesTable, []string{"id", "name"}, userID).Build(context.Background())

	require.NoError(t, err)
	assert.Contains(t, query, `FROM "categories"`)
	assert.Contains(t, query, `"user_id" = $1`)
	assert.Equal(t, []any{userID}, args)
}

func TestSelectForUser_ExtraMods(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := SelectForUser(TransactionsTable, []string{"id"}, userID,
		sm.Where(psql.Quote("transaction_date").GTE(psql.Arg(from))),
		sm.OrderBy(psql.Quote("transaction_date")).Asc(),
	).Build(context.Background())

	require.NoError(t, err)
	assert.Contains(t, query, `"transaction_date" >= $2`)
	assert.Contains(t, query, `ORDER BY "transaction_date" ASC`)
	assert.Len(t, args, 2)
}
