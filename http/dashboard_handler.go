package http

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"healthcare-optimizer/apperrors"
	"healthcare-optimizer/domain"
	"healthcare-optimizer/service"
)

type DashboardHandler struct {
	service *service.DashboardService
	log     *zap.Logger
}

func NewDashboardHandler(service *service.DashboardService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{service: service, log: log}
}

// Evaluate handles GET /api/dashboard
func (h *DashboardHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	input, err := parseDashboardQuery(r.URL.Query())
	if err != nil {
		writeError(w, h.log, err)
		return
	}

	result, err := h.service.Evaluate(r.Context(), input)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, result)
}

type boundsResponse struct {
	Operations []service.Bound `json:"operations"`
	ROI        []service.Bound `json:"roi"`
	SixSigma   []service.Bound `json:"sixSigma"`
}

// Bounds handles GET /api/defaults
func (h *DashboardHandler) Bounds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.log, http.StatusOK, boundsResponse{
		Operations: service.OperationsBounds,
		ROI:        service.ROIBounds,
		SixSigma:   service.SixSigmaBounds,
	})
}

type pageData struct {
	Input      domain.DashboardInput
	Dashboard  *domain.Dashboard
	Error      *apperrors.StandardError
	Operations []service.Bound
	ROI        []service.Bound
	SixSigma   []service.Bound
}

// Page handles GET / and renders the dashboard for the submitted widget
// values. Rejected input is shown in place of the results.
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Operations: service.OperationsBounds,
		ROI:        service.ROIBounds,
		SixSigma:   service.SixSigmaBounds,
	}

	input, err := parseDashboardQuery(r.URL.Query())
	data.Input = input
	if err == nil {
		var d domain.Dashboard
		d, err = h.service.Evaluate(r.Context(), input)
		if err == nil {
			data.Dashboard = &d
		}
	}

	status := http.StatusOK
	if err != nil {
		se, ok := apperrors.As(err)
		if !ok {
			h.log.Error("dashboard evaluation failed", zap.Error(err))
			se = apperrors.NewInternalError(err)
		}
		data.Error = se
		status = apperrors.HTTPStatus(se)
	}

	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, data); err != nil {
		h.log.Error("error rendering dashboard", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Warn("error writing dashboard", zap.Error(err))
	}
}
