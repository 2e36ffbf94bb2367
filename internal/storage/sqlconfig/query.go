package sqlconfig

import (
	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
)

const (
	AccountsTable     = "accounts"
	TransactionsTable = "transactions"
	CategoriesTable   = "categories"
	BudgetsTable      = "budgets"
	DebtsTable        = "debts"
	SavingsTable      = "savings"

	UserIDColumn = "user_id"
	IDColumn     = "id"
)

// SelectForUser selects columns from a table, restricted to one user's rows.
// Extra mods are appended after the user filter.
func SelectForUser(table string, columns []string, userID uuid.UUID, extra ...bob.Mod[*dialect.SelectQuery]) bob.BaseQuery[*dialect.SelectQuery] {
	cols := make([]any, len(columns))
	for i, c := range columns {
		cols[i] = psql.Quote(c)
	}

	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(cols...),
		sm.From(psql.Quote(table)),
		sm.Where(psql.Quote(UserIDColumn).EQ(psql.Arg(userID))),
	}
	queryMods = append(queryMods, extra...)
	return psql.Select(queryMods...)
}
