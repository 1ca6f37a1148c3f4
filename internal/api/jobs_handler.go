package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// AlertRunner exposes the periodic jobs so operational tooling can trigger
// them on demand through the private API.
type AlertRunner interface {
	MarkOverdueInvoices(ctx context.Context) error
	LowStockAlerts(ctx context.Context) error
	BusTaxAlerts(ctx context.Context) error
	GenerateScheduledTrips(ctx context.Context) error
}

type RunJobResponse struct {
	Job string `json:"job"`
}

// RunJob triggers one background job immediately
// @Summary Run job
// @Tags service
// @Produce json
// @Param name path string true "Job name"
// @Success 200 {object} RunJobResponse
// @Failure 404 {object} ErrorResponse "Unknown job"
// @Router /private/v1/jobs/{name} [post]
// @Security ApiKeyAuth
func (h *Handler) RunJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	var run func(context.Context) error

	switch name {
	case "mark-overdue-invoices":
		run = h.alerts.MarkOverdueInvoices
	case "low-stock-alerts":
		run = h.alerts.LowStockAlerts
	case "bus-tax-alerts":
		run = h.alerts.BusTaxAlerts
	case "generate-scheduled-trips":
		run = h.alerts.GenerateScheduledTrips
	default:
		SendJSONErr(ctx, w, http.StatusNotFound, nil, "Unknown job")
		return
	}

	if err := run(ctx); err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Job failed")
		return
	}

	SendJSON(ctx, w, http.StatusOK, RunJobResponse{Job: name})
}
