package analysis

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	engine "github.com/carson-networks/budget-analysis/internal/analysis"
	"github.com/carson-networks/budget-analysis/internal/logging"
	"github.com/carson-networks/budget-analysis/internal/service"
)

// BudgetPlanInput is the Huma input for a budget plan.
type BudgetPlanInput struct {
	Body BudgetPlanBody
}

// BudgetPlanBody is the request body fields for a budget plan.
type BudgetPlanBody struct {
	UserID      string             `json:"userID" format:"uuid" doc:"User UUID"`
	Timeframe   string             `json:"timeframe,omitempty" enum:"weekly,monthly,quarterly" doc:"Timeframe, defaults to monthly"`
	Preferences map[string]float64 `json:"preferences,omitempty" doc:"Per-category weight multipliers keyed by category UUID"`
}

// BudgetPlanResponse is the response body for a budget plan.
type BudgetPlanResponse struct {
	Success        bool                   `json:"success"`
	Plan           *engine.BudgetPlan     `json:"plan,omitempty"`
	FallbackAdvice *engine.FallbackAdvice `json:"fallbackAdvice,omitempty"`
}

type BudgetPlanOutput struct {
	Body BudgetPlanResponse
}

type budgetPlanner interface {
	BudgetPlan(ctx context.Context, req service.BudgetPlanRequest) (*service.BudgetPlanResponse, error)
}

// BudgetPlanHandler handles POST /v1/analysis/budget-plan.
type BudgetPlanHandler struct {
	AnalysisService budgetPlanner
}

// NewBudgetPlanHandler creates a new BudgetPlanHandler.
func NewBudgetPlanHandler(svc budgetPlanner) *BudgetPlanHandler {
	return &BudgetPlanHandler{AnalysisService: svc}
}

// Register registers the budget plan endpoint with the Huma API.
func (h *BudgetPlanHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analyze-budget-plan",
		Method:      http.MethodPost,
		Path:        "/v1/analysis/budget-plan",
		Summary:     "Propose a budget plan",
		Description: "Selects a budgeting framework from the user's income, spending and debt, then proposes per-category budgets.",
		Tags:        []string{"Analysis"},
	}, h.handle)
}

func (h *BudgetPlanHandler) handle(ctx context.Context, input *BudgetPlanInput) (*BudgetPlanOutput, error) {
	userID, err := parseUserID(input.Body.UserID)
	if err != nil {
		return nil, err
	}

	resp, err := h.AnalysisService.BudgetPlan(ctx, service.BudgetPlanRequest{
		UserID:      userID,
		Timeframe:   engine.Timeframe(input.Body.Timeframe),
		Preferences: input.Body.Preferences,
	})
	if err != nil {
		return nil, toHumaError(err)
	}

	logging.GetLogData(ctx).AddData("success", resp.Success)
	return &BudgetPlanOutput{Body: BudgetPlanResponse{
		Success:        resp.Success,
		Plan:           resp.Plan,
		FallbackAdvice: resp.FallbackAdvice,
	}}, nil
}
