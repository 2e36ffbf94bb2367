package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-analysis/internal/analysis"
)

func testSnapshot() *analysis.FinancialSnapshot {
	date := time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC)
	return &analysis.FinancialSnapshot{
		Transactions: []analysis.Transaction{
			{Amount: decimal.NewFromInt(40000), Date: date.AddDate(0, -2, 0), Type: analysis.TransactionTypeIncome, Description: "Salary"},
			{Amount: decimal.NewFromInt(40000), Date: date.AddDate(0, -1, 0), Type: analysis.TransactionTypeIncome, Description: "Salary"},
		},
		SnapshotDate: date,
		Timeframe:    analysis.TimeframeMonthly,
	}
}

// -- RunReallocation tests --

func TestRunReallocation_Perform(t *testing.T) {
	action := &RunReallocation{Engine: analysis.NewEngine(), Snapshot: testSnapshot()}

	err := action.Perform(context.Background())

	require.NoError(t, err)
	require.NotNil(t, action.Result)
	assert.True(t, action.Result.Success)
}

func TestRunReallocation_InvalidSnapshot(t *testing.T) {
	action := &RunReallocation{Engine: analysis.NewEngine(), Snapshot: &analysis.FinancialSnapshot{}}

	err := action.Perform(context.Background())

	var inputErr *analysis.InputDataError
	assert.True(t, errors.As(err, &inputErr))
	assert.Nil(t, action.Result)
}

func TestRunReallocation_CancelledDiscardsResult(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	action := &RunReallocation{Engine: analysis.NewEngine(), Snapshot: testSnapshot()}

	err := action.Perform(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, action.Result)
}

// -- RunBudgetPlan tests --

func TestRunBudgetPlan_Perform(t *testing.T) {
	action := &RunBudgetPlan{Engine: analysis.NewEngine(), Snapshot: testSnapshot()}

	err := action.Perform(context.Background())

	require.NoError(t, err)
	require.NotNil(t, action.Result)
	assert.True(t, action.Result.Success)
}
