package analysis

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	engine "github.com/carson-networks/budget-analysis/internal/analysis"
	"github.com/carson-networks/budget-analysis/internal/logging"
	"github.com/carson-networks/budget-analysis/internal/service"
)

// ReallocationInput is the Huma input for a reallocation analysis.
type ReallocationInput struct {
	Body ReallocationBody
}

// ReallocationBody is the request body fields for a reallocation analysis.
type ReallocationBody struct {
	UserID    string     `json:"userID" format:"uuid" doc:"User UUID"`
	Timeframe string     `json:"timeframe,omitempty" enum:"weekly,monthly,quarterly" doc:"Window compared against budgets, defaults to monthly"`
	Goals     []GoalBody `json:"goals,omitempty" doc:"Optional savings goals to fund"`
}

// ReallocationResponse holds the analysis result, or fallback advice when the
// user's data could not be loaded.
type ReallocationResponse struct {
	Success        bool                       `json:"success"`
	Result         *engine.ReallocationResult `json:"result,omitempty"`
	FallbackAdvice *engine.FallbackAdvice     `json:"fallbackAdvice,omitempty"`
}

type ReallocationOutput struct {
	Body ReallocationResponse
}

type reallocator interface {
	Reallocate(ctx context.Context, req service.ReallocationRequest) (*service.ReallocationResponse, error)
}

// ReallocationHandler handles POST /v1/analysis/reallocation.
type ReallocationHandler struct {
	AnalysisService reallocator
}

// NewReallocationHandler creates a new ReallocationHandler.
func NewReallocationHandler(svc reallocator) *ReallocationHandler {
	return &ReallocationHandler{AnalysisService: svc}
}

// Register registers the reallocation endpoint with the Huma API.
func (h *ReallocationHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "analyze-reallocation",
		Method:      http.MethodPost,
		Path:        "/v1/analysis/reallocation",
		Summary:     "Recommend budget reallocations",
		Description: "Compares the user's budgets against actual spending for the timeframe and recommends how to move money between categories and towards goals.",
		Tags:        []string{"Analysis"},
	}, h.handle)
}

func parseReallocationInput(input *ReallocationInput) (service.ReallocationRequest, error) {
	userID, err := parseUserID(input.Body.UserID)
	if err != nil {
		return service.ReallocationRequest{}, err
	}
	goals, err := parseGoals(input.Body.Goals)
	if err != nil {
		return service.ReallocationRequest{}, err
	}
	return service.ReallocationRequest{
		UserID:    userID,
		Timeframe: engine.Timeframe(input.Body.Timeframe),
		Goals:     goals,
	}, nil
}

func (h *ReallocationHandler) handle(ctx context.Context, input *ReallocationInput) (*ReallocationOutput, error) {
	req, err := parseReallocationInput(input)
	if err != nil {
		return nil, err
	}

	resp, err := h.AnalysisService.Reallocate(ctx, req)
	if err != nil {
		return nil, toHumaError(err)
	}

	logging.GetLogData(ctx).AddData("success", resp.Success)
	return &ReallocationOutput{Body: ReallocationResponse{
		Success:        resp.Success,
		Result:         resp.Result,
		FallbackAdvice: resp.FallbackAdvice,
	}}, nil
}
