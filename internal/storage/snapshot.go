package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-analysis/internal/analysis"
	"github.com/carson-networks/budget-analysis/internal/storage/account"
	"github.com/carson-networks/budget-analysis/internal/storage/budget"
	"github.com/carson-networks/budget-analysis/internal/storage/category"
	"github.com/carson-networks/budget-analysis/internal/storage/debt"
	"github.com/carson-networks/budget-analysis/internal/storage/saving"
	"github.com/carson-networks/budget-analysis/internal/storage/transaction"
)

type AccountLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]account.Account, error)
}

type TransactionLister interface {
	ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]transaction.Transaction, error)
}

type CategoryLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]category.Category, error)
}

type BudgetLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]budget.Budget, error)
}

type DebtLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]debt.Debt, error)
}

type SavingLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]saving.Saving, error)
}

// SnapshotStore assembles a FinancialSnapshot from the per-entity readers.
type SnapshotStore struct {
	Accounts     AccountLister
	Transactions TransactionLister
	Categories   CategoryLister
	Budgets      BudgetLister
	Debts        DebtLister
	Savings      SavingLister
}

func NewSnapshotStore(r *Reader) *SnapshotStore {
	return &SnapshotStore{
		Accounts:     r.Accounts,
		Transactions: r.Transactions,
		Categories:   r.Categories,
		Budgets:      r.Budgets,
		Debts:        r.Debts,
		Savings:      r.Savings,
	}
}

// LoadSnapshot reads everything the engine needs for one user. The window end
// becomes the snapshot date. Timeframe is left for the caller to set.
func (s *SnapshotStore) LoadSnapshot(ctx context.Context, userID uuid.UUID, window Window) (*analysis.FinancialSnapshot, error) {
	accounts, err := s.Accounts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("storage.LoadSnapshot: %w", err)
	}
	txs, err := s.Transactions.ListBetween(ctx, userID, window.Earliest(), window.End)
	if err != nil {
		return nil, fmt.Errorf("storage.LoadSnapshot: %w", err)
	}
	categories, err := s.Categories.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("storage.LoadSnapshot: %w", err)
	}
	budgets, err := s.Budgets.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("storage.LoadSnapshot: %w", err)
	}
	debts, err := s.Debts.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("storage.LoadSnapshot: %w", err)
	}
	savings, err := s.Savings.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("storage.LoadSnapshot: %w", err)
	}

	historical, current := window.Split(transaction.ToAnalysis(txs))
	return &analysis.FinancialSnapshot{
		Transactions:        historical,
		CurrentTransactions: current,
		Categories:          category.ToAnalysis(categories),
		Budgets:             budget.ToAnalysis(budgets, window.End),
		Debts:               debt.ToAnalysis(debts),
		Savings:             saving.ToAnalysis(savings),
		Balance:             account.TotalBalance(accounts),
		SnapshotDate:        window.End,
	}, nil
}
