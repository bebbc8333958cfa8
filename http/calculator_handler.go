package http

import (
	"net/http"

	"go.uber.org/zap"

	"healthcare-optimizer/domain"
	"healthcare-optimizer/service"
)

type CalculatorHandler struct {
	service *service.AnalyticsService
	log     *zap.Logger
}

func NewCalculatorHandler(service *service.AnalyticsService, log *zap.Logger) *CalculatorHandler {
	return &CalculatorHandler{service: service, log: log}
}

// Operations handles POST /api/operations
func (h *CalculatorHandler) Operations(w http.ResponseWriter, r *http.Request) {
	var input domain.OperationsInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, h.log, err)
		return
	}

	result, err := h.service.Operations(r.Context(), input)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, result)
}

// ROI handles POST /api/roi
func (h *CalculatorHandler) ROI(w http.ResponseWriter, r *http.Request) {
	var input domain.ROIInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, h.log, err)
		return
	}

	result, err := h.service.ROI(r.Context(), input)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, result)
}

// SixSigma handles POST /api/six-sigma
func (h *CalculatorHandler) SixSigma(w http.ResponseWriter, r *http.Request) {
	var input domain.SixSigmaInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, h.log, err)
		return
	}

	result, err := h.service.SixSigma(r.Context(), input)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, result)
}
