package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/budget-analysis/internal/storage/account"
	"github.com/carson-networks/budget-analysis/internal/storage/budget"
	"github.com/carson-networks/budget-analysis/internal/storage/category"
	"github.com/carson-networks/budget-analysis/internal/storage/debt"
	"github.com/carson-networks/budget-analysis/internal/storage/saving"
	"github.com/carson-networks/budget-analysis/internal/storage/transaction"
)

type Reader struct {
	Accounts     *account.Reader
	Transactions *transaction.Reader
	Categories   *category.Reader
	Budgets      *budget.Reader
	Debts        *debt.Reader
	Savings      *saving.Reader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Accounts:     account.NewReader(exec),
		Transactions: transaction.NewReader(exec),
		Categories:   category.NewReader(exec),
		Budgets:      budget.NewReader(exec),
		Debts:        debt.NewReader(exec),
		Savings:      saving.NewReader(exec),
	}
}
