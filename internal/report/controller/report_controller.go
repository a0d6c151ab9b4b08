package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "orderdesk/internal/errors"
	"orderdesk/internal/report/service"
)

type ReportUseCase interface {
	Run(ctx context.Context, month, date string) (*service.Report, error)
}

type ReportController struct {
	useCase ReportUseCase
	logger  *zap.Logger
}

func NewReportController(useCase ReportUseCase, logger *zap.Logger) *ReportController {
	return &ReportController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *ReportController) Report(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	report, err := c.useCase.Run(r.Context(), query.Get("month"), query.Get("date"))
	if err != nil {
		if ve, ok := apperrors.IsValidationError(err); ok {
			c.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":   "VALIDATION_ERROR",
				"message": ve.Message,
				"details": ve.Details,
			})
			return
		}
		c.logger.Error("report failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, report)
}

func (c *ReportController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
