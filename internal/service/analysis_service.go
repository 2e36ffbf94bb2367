package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/budget-analysis/internal/analysis"
	"github.com/carson-networks/budget-analysis/internal/logging"
	"github.com/carson-networks/budget-analysis/internal/operator/actions"
	"github.com/carson-networks/budget-analysis/internal/storage"
)

// SnapshotLoader reads a user's financial data for the given window.
type SnapshotLoader interface {
	LoadSnapshot(ctx context.Context, userID uuid.UUID, window storage.Window) (*analysis.FinancialSnapshot, error)
}

// ActionRunner executes an action, typically on the operator worker pool.
type ActionRunner interface {
	Process(ctx context.Context, action actions.IAction) error
}

// AnalysisService loads snapshots and runs the engine on the worker pool
// under a per-request timeout.
type AnalysisService struct {
	loader        SnapshotLoader
	runner        ActionRunner
	engine        *analysis.Engine
	historyMonths int
	timeout       time.Duration
	now           func() time.Time
}

type AnalysisOption func(*AnalysisService)

func WithEngine(engine *analysis.Engine) AnalysisOption {
	return func(s *AnalysisService) { s.engine = engine }
}

func WithClock(now func() time.Time) AnalysisOption {
	return func(s *AnalysisService) { s.now = now }
}

func NewAnalysisService(loader SnapshotLoader, runner ActionRunner, historyMonths int, timeout time.Duration, opts ...AnalysisOption) *AnalysisService {
	s := &AnalysisService{
		loader:        loader,
		runner:        runner,
		engine:        analysis.NewEngine(),
		historyMonths: historyMonths,
		timeout:       timeout,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reallocate analyzes the user's current budgets and recommends how to shift
// money between them and towards the requested goals.
func (s *AnalysisService) Reallocate(ctx context.Context, req ReallocationRequest) (*ReallocationResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	logData := logging.GetLogData(ctx)

	snapshot, err := s.load(ctx, req.UserID, req.Timeframe)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("service.Reallocate: %w", ctxErr)
		}
		if fallback, ok := fallbackFor(logData, err); ok {
			return &ReallocationResponse{FallbackAdvice: fallback}, nil
		}
		return nil, fmt.Errorf("service.Reallocate: %w", err)
	}

	action := &actions.RunReallocation{Engine: s.engine, Snapshot: snapshot, Goals: req.Goals}
	endTimer := logData.AddTiming("analysisMs")
	err = s.runner.Process(ctx, action)
	endTimer()
	if err != nil {
		return nil, fmt.Errorf("service.Reallocate: %w", err)
	}

	logData.AddData("framework", action.Result.Analysis.Framework.Framework)
	logData.AddData("recommendationCount", action.Result.Recommendations.RecommendationCount)
	return &ReallocationResponse{Success: true, Result: action.Result}, nil
}

// BudgetPlan proposes a framework allocation and per-category budgets from
// the user's spending history.
func (s *AnalysisService) BudgetPlan(ctx context.Context, req BudgetPlanRequest) (*BudgetPlanResponse, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	logData := logging.GetLogData(ctx)

	snapshot, err := s.load(ctx, req.UserID, req.Timeframe)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("service.BudgetPlan: %w", ctxErr)
		}
		if fallback, ok := fallbackFor(logData, err); ok {
			return &BudgetPlanResponse{FallbackAdvice: fallback}, nil
		}
		return nil, fmt.Errorf("service.BudgetPlan: %w", err)
	}

	action := &actions.RunBudgetPlan{Engine: s.engine, Snapshot: snapshot, Preferences: req.Preferences}
	endTimer := logData.AddTiming("analysisMs")
	err = s.runner.Process(ctx, action)
	endTimer()
	if err != nil {
		return nil, fmt.Errorf("service.BudgetPlan: %w", err)
	}

	logData.AddData("framework", action.Result.Analysis.Framework.Framework)
	logData.AddData("categoryBudgetCount", len(action.Result.CategoryBudgets))
	return &BudgetPlanResponse{Success: true, Plan: action.Result}, nil
}

func (s *AnalysisService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *AnalysisService) load(ctx context.Context, userID uuid.UUID, timeframe analysis.Timeframe) (*analysis.FinancialSnapshot, error) {
	timeframe, err := analysis.ParseTimeframe(string(timeframe))
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	logData.AddData("userID", userID.String())
	logData.AddData("timeframe", timeframe)

	window := WindowFor(timeframe, s.now(), s.historyMonths)
	endTimer := logData.AddTiming("loadSnapshotMs")
	snapshot, err := s.loader.LoadSnapshot(ctx, userID, window)
	endTimer()
	if err != nil {
		return nil, &loadError{err: err}
	}
	snapshot.Timeframe = timeframe
	return snapshot, nil
}

type loadError struct {
	err error
}

func (e *loadError) Error() string { return "loading snapshot: " + e.err.Error() }

func (e *loadError) Unwrap() error { return e.err }

// fallbackFor turns a snapshot load failure into fallback advice. Input
// errors are returned to the caller instead.
func fallbackFor(logData *logging.LogData, err error) (*analysis.FallbackAdvice, bool) {
	var le *loadError
	if !errors.As(err, &le) {
		return nil, false
	}
	logData.AddData("snapshotError", le.err.Error())
	advice := analysis.Fallback()
	return &advice, true
}
