package account

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Account is the balance-bearing part of an account row.
type Account struct {
	ID      uuid.UUID       `db:"id"`
	Name    string          `db:"name"`
	Balance decimal.Decimal `db:"balance"`
}

var columns = []string{"id", "name", "balance"}

// TotalBalance sums the balances of every account.
func TotalBalance(accounts []Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}
	return total
}
