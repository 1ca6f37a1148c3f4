package api

import (
	"net/http"
)

// @title BusManager API
// @version 1.0
// @description Back office API for bus fleet operations
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Api-Key

type Handler struct {
	auth          AuthService
	buses         BusService
	routes        RouteService
	schedules     ScheduleService
	trips         TripService
	expenses      ExpenseService
	stock         StockService
	invoices      InvoiceService
	repairs       RepairService
	notifications NotificationService
	settings      SettingService
	uploads       UploadStore
	alerts        AlertRunner
}

func NewHandler(
	auth AuthService,
	buses BusService,
	routes RouteService,
	schedules ScheduleService,
	trips TripService,
	expenses ExpenseService,
	stock StockService,
	invoices InvoiceService,
	repairs RepairService,
	notifications NotificationService,
	settings SettingService,
	uploads UploadStore,
	alerts AlertRunner,
) *Handler {
	return &Handler{
		auth:          auth,
		buses:         buses,
		routes:        routes,
		schedules:     schedules,
		trips:         trips,
		expenses:      expenses,
		stock:         stock,
		invoices:      invoices,
		repairs:       repairs,
		notifications: notifications,
		settings:      settings,
		uploads:       uploads,
		alerts:        alerts,
	}
}

type HealthResponse struct {
	Status string `json:"status"`
}

// HealthHandler reports liveness
// @Summary Health check
// @Tags service
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	SendJSON(r.Context(), w, http.StatusOK, HealthResponse{Status: "ok"})
}
