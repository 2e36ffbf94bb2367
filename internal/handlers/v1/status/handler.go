package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/budget-analysis/internal/logging"
	"github.com/carson-networks/budget-analysis/internal/operator"
)

type statsReporter interface {
	Stats() operator.Stats
}

type Handler struct {
	Operator statsReporter
}

func NewHandler(op statsReporter) Handler {
	return Handler{Operator: op}
}

type Response struct {
	Status string         `json:"status"`
	Pool   operator.Stats `json:"pool"`
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	stats := h.Operator.Stats()
	logData.AddData("queueDepth", stats.QueueDepth)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(Response{Status: "ok", Pool: stats})
}
