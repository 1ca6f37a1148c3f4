package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/busmanager/backend/internal/entity"
)

type ScheduleService interface {
	CreateSchedule(ctx context.Context, sch entity.Schedule) (entity.Schedule, error)
	Schedule(ctx context.Context, id uuid.UUID) (entity.Schedule, error)
	Schedules(ctx context.Context, f entity.ScheduleFilter) ([]entity.Schedule, error)
	UpdateSchedule(ctx context.Context, sch entity.Schedule) error
	DeleteSchedule(ctx context.Context, id uuid.UUID) error
}

type ScheduleRequest struct {
	BusID               uuid.UUID       `json:"busId"`
	RouteID             uuid.UUID       `json:"routeId"`
	DriverID            uuid.UUID       `json:"driverId"`
	DaysOfWeek          []string        `json:"daysOfWeek"`
	DepartureTime       string          `json:"departureTime"`
	ArrivalTime         string          `json:"arrivalTime"`
	IsTwoWay            bool            `json:"isTwoWay"`
	ReturnDepartureTime string          `json:"returnDepartureTime"`
	ReturnArrivalTime   string          `json:"returnArrivalTime"`
	IsActive            bool            `json:"isActive"`
	Notes               string          `json:"notes"`
	IsOvernight         bool            `json:"isOvernight"`
	ArrivalNextDay      bool            `json:"arrivalNextDay"`
	TurnaroundHours     decimal.Decimal `json:"turnaroundHours"`
}

func (req ScheduleRequest) toEntity() entity.Schedule {
	return entity.Schedule{
		BusID:               req.BusID,
		RouteID:             req.RouteID,
		DriverID:            req.DriverID,
		DaysOfWeek:          req.DaysOfWeek,
		DepartureTime:       req.DepartureTime,
		ArrivalTime:         req.ArrivalTime,
		IsTwoWay:            req.IsTwoWay,
		ReturnDepartureTime: req.ReturnDepartureTime,
		ReturnArrivalTime:   req.ReturnArrivalTime,
		IsActive:            req.IsActive,
		Notes:               req.Notes,
		IsOvernight:         req.IsOvernight,
		ArrivalNextDay:      req.ArrivalNextDay,
		TurnaroundHours:     req.TurnaroundHours,
	}
}

type ScheduleResponse struct {
	ID                  uuid.UUID       `json:"id"`
	BusID               uuid.UUID       `json:"busId"`
	RouteID             uuid.UUID       `json:"routeId"`
	DriverID            *uuid.UUID      `json:"driverId,omitempty"`
	DaysOfWeek          []string        `json:"daysOfWeek"`
	DepartureTime       string          `json:"departureTime"`
	ArrivalTime         string          `json:"arrivalTime"`
	IsTwoWay            bool            `json:"isTwoWay"`
	ReturnDepartureTime string          `json:"returnDepartureTime,omitempty"`
	ReturnArrivalTime   string          `json:"returnArrivalTime,omitempty"`
	IsActive            bool            `json:"isActive"`
	Notes               string          `json:"notes,omitempty"`
	IsOvernight         bool            `json:"isOvernight"`
	ArrivalNextDay      bool            `json:"arrivalNextDay"`
	TurnaroundHours     decimal.Decimal `json:"turnaroundHours"`
}

func scheduleResponse(sch entity.Schedule) ScheduleResponse {
	resp := ScheduleResponse{
		ID:                  sch.ID,
		BusID:               sch.BusID,
		RouteID:             sch.RouteID,
		DaysOfWeek:          sch.DaysOfWeek,
		DepartureTime:       sch.DepartureTime,
		ArrivalTime:         sch.ArrivalTime,
		IsTwoWay:            sch.IsTwoWay,
		ReturnDepartureTime: sch.ReturnDepartureTime,
		ReturnArrivalTime:   sch.ReturnArrivalTime,
		IsActive:            sch.IsActive,
		Notes:               sch.Notes,
		IsOvernight:         sch.IsOvernight,
		ArrivalNextDay:      sch.ArrivalNextDay,
		TurnaroundHours:     sch.TurnaroundHours,
	}

	if sch.DriverID != uuid.Nil {
		id := sch.DriverID
		resp.DriverID = &id
	}

	return resp
}

// CreateSchedule creates a recurring schedule
// @Summary Create schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Param ScheduleRequest body ScheduleRequest true "Schedule"
// @Success 201 {object} ScheduleResponse
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "Unknown day name"
// @Router /schedules [post]
// @Security BearerAuth
func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ScheduleRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	sch, err := h.schedules.CreateSchedule(ctx, req.toEntity())
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to create schedule")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, scheduleResponse(sch))
}

// Schedule returns one schedule
// @Summary Get schedule
// @Tags schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} ScheduleResponse
// @Failure 404 {object} ErrorResponse
// @Router /schedules/{id} [get]
// @Security BearerAuth
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid schedule id")
		return
	}

	sch, err := h.schedules.Schedule(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to load schedule")
		return
	}

	SendJSON(ctx, w, http.StatusOK, scheduleResponse(sch))
}

// Schedules lists schedules
// @Summary List schedules
// @Tags schedules
// @Produce json
// @Param busId query string false "Filter by bus"
// @Param routeId query string false "Filter by route"
// @Param active query bool false "Active schedules only"
// @Success 200 {array} ScheduleResponse
// @Router /schedules [get]
// @Security BearerAuth
func (h *Handler) Schedules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var f entity.ScheduleFilter

	f.Limit, f.Offset = Pagination(r)

	if v := r.URL.Query().Get("busId"); v != "" {
		id, err := uuid.FromString(v)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid bus id")
			return
		}

		f.BusID = &id
	}

	if v := r.URL.Query().Get("routeId"); v != "" {
		id, err := uuid.FromString(v)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid route id")
			return
		}

		f.RouteID = &id
	}

	f.ActiveOnly = r.URL.Query().Get("active") == "true"

	schedules, err := h.schedules.Schedules(ctx, f)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to list schedules")
		return
	}

	resp := make([]ScheduleResponse, 0, len(schedules))
	for _, sch := range schedules {
		resp = append(resp, scheduleResponse(sch))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// UpdateSchedule updates a schedule
// @Summary Update schedule
// @Tags schedules
// @Accept json
// @Param id path string true "Schedule ID"
// @Param ScheduleRequest body ScheduleRequest true "Schedule"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /schedules/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid schedule id")
		return
	}

	var req ScheduleRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	sch := req.toEntity()
	sch.ID = id

	if err = h.schedules.UpdateSchedule(ctx, sch); err != nil {
		SendDomainErr(ctx, w, err, "Failed to update schedule")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteSchedule removes a schedule
// @Summary Delete schedule
// @Tags schedules
// @Param id path string true "Schedule ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /schedules/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid schedule id")
		return
	}

	if err = h.schedules.DeleteSchedule(ctx, id); err != nil {
		SendDomainErr(ctx, w, err, "Failed to delete schedule")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
