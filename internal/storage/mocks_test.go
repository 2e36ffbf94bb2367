package storage

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/budget-analysis/internal/storage/account"
	"github.com/carson-networks/budget-analysis/internal/storage/budget"
	"github.com/carson-networks/budget-analysis/internal/storage/category"
	"github.com/carson-networks/budget-analysis/internal/storage/debt"
	"github.com/carson-networks/budget-analysis/internal/storage/saving"
	"github.com/carson-networks/budget-analysis/internal/storage/transaction"
)

type mockAccounts struct{ mock.Mock }

func (m *mockAccounts) ListByUser(ctx context.Context, userID uuid.UUID) ([]account.Account, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]account.Account)
	return rows, args.Error(1)
}

type mockTransactions struct{ mock.Mock }

func (m *mockTransactions) ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]transaction.Transaction, error) {
	args := m.Called(ctx, userID, from, to)
	rows, _ := args.Get(0).([]transaction.Transaction)
	return rows, args.Error(1)
}

type mockCategories struct{ mock.Mock }

func (m *mockCategories) ListByUser(ctx context.Context, userID uuid.UUID) ([]category.Category, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]category.Category)
	return rows, args.Error(1)
}

type mockBudgets struct{ mock.Mock }

func (m *mockBudgets) ListByUser(ctx context.Context, userID uuid.UUID) ([]budget.Budget, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]budget.Budget)
	return rows, args.Error(1)
}

type mockDebts struct{ mock.Mock }

func (m *mockDebts) ListByUser(ctx context.Context, userID uuid.UUID) ([]debt.Debt, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]debt.Debt)
	return rows, args.Error(1)
}

type mockSavings struct{ mock.Mock }

func (m *mockSavings) ListByUser(ctx context.Context, userID uuid.UUID) ([]saving.Saving, error) {
	args := m.Called(ctx, userID)
	rows, _ := args.Get(0).([]saving.Saving)
	return rows, args.Error(1)
}
