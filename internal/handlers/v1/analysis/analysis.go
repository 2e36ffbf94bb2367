package analysis

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	engine "github.com/carson-networks/budget-analysis/internal/analysis"
)

// GoalBody is a savings goal the reallocation should try to fund.
type GoalBody struct {
	Type               string `json:"type" minLength:"1" doc:"Goal name, e.g. emergency or vacation"`
	Priority           string `json:"priority,omitempty" enum:"high,medium,low" doc:"Goal priority, defaults to medium"`
	MonthlyRequirement string `json:"monthlyRequirement" doc:"Decimal amount needed each month (e.g. '250.00')"`
}

func parseUserID(value string) (uuid.UUID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	return id, nil
}

func parseGoals(goals []GoalBody) ([]engine.TargetGoal, error) {
	parsed := make([]engine.TargetGoal, len(goals))
	for i, g := range goals {
		amount, err := decimal.NewFromString(g.MonthlyRequirement)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid monthlyRequirement", &huma.ErrorDetail{
				Location: "body.goals[" + strconv.Itoa(i) + "].monthlyRequirement",
				Message:  err.Error(),
				Value:    g.MonthlyRequirement,
			})
		}
		parsed[i] = engine.TargetGoal{
			Type:               g.Type,
			Priority:           engine.Level(g.Priority),
			MonthlyRequirement: amount,
		}
	}
	return parsed, nil
}

// toHumaError maps engine and service failures onto HTTP statuses.
func toHumaError(err error) error {
	var inputErr *engine.InputDataError
	var insufficient *engine.InsufficientIncomeError
	switch {
	case errors.As(err, &inputErr):
		return huma.NewError(http.StatusBadRequest, "invalid input data", &huma.ErrorDetail{
			Location: inputErr.Field,
			Message:  inputErr.Reason,
		})
	case errors.As(err, &insufficient):
		return huma.NewError(http.StatusUnprocessableEntity, insufficient.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return huma.NewError(http.StatusGatewayTimeout, "analysis timed out", err)
	default:
		return huma.NewError(http.StatusInternalServerError, "analysis failed", err)
	}
}
