package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/segundorentals/rent-reminder/internal/infra/http/middleware"
	"github.com/segundorentals/rent-reminder/internal/usecase"
)

type RunHandler struct {
	Pipeline *usecase.Pipeline
}

func NewRunHandler(pipeline *usecase.Pipeline) *RunHandler {
	return &RunHandler{Pipeline: pipeline}
}

// Handle dispara uma execução completa do pipeline e devolve o resumo.
func (h *RunHandler) Handle(w http.ResponseWriter, r *http.Request) {
	result := h.Pipeline.Run(r.Context())

	middleware.RecordRun()
	middleware.RecordReminders("sent", result.SuccessCount)
	middleware.RecordReminders("failed", result.FailureCount)
	if result.LogReportSent {
		middleware.RecordLogReport("sent")
	} else {
		middleware.RecordLogReport("failed")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(result)
}
