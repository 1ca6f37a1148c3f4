package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/busmanager/backend/internal/entity"
)

type TripService interface {
	CreateTrip(ctx context.Context, t entity.Trip) (entity.Trip, error)
	Trip(ctx context.Context, id uuid.UUID) (entity.Trip, error)
	Trips(ctx context.Context, f entity.TripFilter) ([]entity.Trip, int, error)
	UpdateTrip(ctx context.Context, t entity.Trip) (entity.Trip, error)
	DeleteTrip(ctx context.Context, id uuid.UUID) error
}

type TripRequest struct {
	TripNumber string     `json:"tripNumber"`
	BusID      uuid.UUID  `json:"busId"`
	DriverID   uuid.UUID  `json:"driverId"`
	RouteID    uuid.UUID  `json:"routeId"`
	ScheduleID uuid.UUID  `json:"scheduleId"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    *time.Time `json:"endDate"`
	TripDate   *time.Time `json:"tripDate"`
	Status     string     `json:"status"`
	TripType   string     `json:"tripType"`
	Notes      string     `json:"notes"`

	DepartureTime string          `json:"departureTime"`
	ArrivalTime   string          `json:"arrivalTime"`
	OdometerStart decimal.Decimal `json:"odometerStart"`
	OdometerEnd   decimal.Decimal `json:"odometerEnd"`
	RevenueCash   decimal.Decimal `json:"revenueCash"`
	RevenueOnline decimal.Decimal `json:"revenueOnline"`
	RevenuePaytm  decimal.Decimal `json:"revenuePaytm"`
	RevenueOthers decimal.Decimal `json:"revenueOthers"`
	RevenueAgent  decimal.Decimal `json:"revenueAgent"`
	TotalExpense  decimal.Decimal `json:"totalExpense"`
	GSTPercentage decimal.Decimal `json:"gstPercentage"`
	WaterTaken    int             `json:"waterTaken"`

	ReturnDepartureTime string          `json:"returnDepartureTime"`
	ReturnArrivalTime   string          `json:"returnArrivalTime"`
	OdometerReturnStart decimal.Decimal `json:"odometerReturnStart"`
	OdometerReturnEnd   decimal.Decimal `json:"odometerReturnEnd"`
	ReturnRevenueCash   decimal.Decimal `json:"returnRevenueCash"`
	ReturnRevenueOnline decimal.Decimal `json:"returnRevenueOnline"`
	ReturnRevenuePaytm  decimal.Decimal `json:"returnRevenuePaytm"`
	ReturnRevenueOthers decimal.Decimal `json:"returnRevenueOthers"`
	ReturnRevenueAgent  decimal.Decimal `json:"returnRevenueAgent"`
	ReturnTotalExpense  decimal.Decimal `json:"returnTotalExpense"`
}

func (req TripRequest) toEntity() entity.Trip {
	return entity.Trip{
		TripNumber: req.TripNumber,
		BusID:      req.BusID,
		DriverID:   req.DriverID,
		RouteID:    req.RouteID,
		ScheduleID: req.ScheduleID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		TripDate:   req.TripDate,
		Status:     entity.TripStatus(req.Status),
		TripType:   req.TripType,
		Notes:      req.Notes,

		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
		OdometerStart: req.OdometerStart,
		OdometerEnd:   req.OdometerEnd,
		RevenueCash:   req.RevenueCash,
		RevenueOnline: req.RevenueOnline,
		RevenuePaytm:  req.RevenuePaytm,
		RevenueOthers: req.RevenueOthers,
		RevenueAgent:  req.RevenueAgent,
		TotalExpense:  req.TotalExpense,
		GSTPercentage: req.GSTPercentage,
		WaterTaken:    req.WaterTaken,

		ReturnDepartureTime: req.ReturnDepartureTime,
		ReturnArrivalTime:   req.ReturnArrivalTime,
		OdometerReturnStart: req.OdometerReturnStart,
		OdometerReturnEnd:   req.OdometerReturnEnd,
		ReturnRevenueCash:   req.ReturnRevenueCash,
		ReturnRevenueOnline: req.ReturnRevenueOnline,
		ReturnRevenuePaytm:  req.ReturnRevenuePaytm,
		ReturnRevenueOthers: req.ReturnRevenueOthers,
		ReturnRevenueAgent:  req.ReturnRevenueAgent,
		ReturnTotalExpense:  req.ReturnTotalExpense,
	}
}

type TripResponse struct {
	ID         uuid.UUID  `json:"id"`
	TripNumber string     `json:"tripNumber"`
	BusID      uuid.UUID  `json:"busId"`
	DriverID   *uuid.UUID `json:"driverId,omitempty"`
	RouteID    *uuid.UUID `json:"routeId,omitempty"`
	ScheduleID *uuid.UUID `json:"scheduleId,omitempty"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    *time.Time `json:"endDate,omitempty"`
	TripDate   *time.Time `json:"tripDate,omitempty"`
	Status     string     `json:"status"`
	TripType   string     `json:"tripType,omitempty"`
	Notes      string     `json:"notes,omitempty"`

	BusName    string `json:"busName,omitempty"`
	DriverName string `json:"driverName,omitempty"`

	DepartureTime string          `json:"departureTime,omitempty"`
	ArrivalTime   string          `json:"arrivalTime,omitempty"`
	OdometerStart decimal.Decimal `json:"odometerStart"`
	OdometerEnd   decimal.Decimal `json:"odometerEnd"`
	RevenueCash   decimal.Decimal `json:"revenueCash"`
	RevenueOnline decimal.Decimal `json:"revenueOnline"`
	RevenuePaytm  decimal.Decimal `json:"revenuePaytm"`
	RevenueOthers decimal.Decimal `json:"revenueOthers"`
	RevenueAgent  decimal.Decimal `json:"revenueAgent"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpense  decimal.Decimal `json:"totalExpense"`
	GSTPercentage decimal.Decimal `json:"gstPercentage"`
	WaterTaken    int             `json:"waterTaken"`
	Distance      decimal.Decimal `json:"distance"`

	ReturnDepartureTime string          `json:"returnDepartureTime,omitempty"`
	ReturnArrivalTime   string          `json:"returnArrivalTime,omitempty"`
	OdometerReturnStart decimal.Decimal `json:"odometerReturnStart"`
	OdometerReturnEnd   decimal.Decimal `json:"odometerReturnEnd"`
	ReturnRevenueCash   decimal.Decimal `json:"returnRevenueCash"`
	ReturnRevenueOnline decimal.Decimal `json:"returnRevenueOnline"`
	ReturnRevenuePaytm  decimal.Decimal `json:"returnRevenuePaytm"`
	ReturnRevenueOthers decimal.Decimal `json:"returnRevenueOthers"`
	ReturnRevenueAgent  decimal.Decimal `json:"returnRevenueAgent"`
	ReturnTotalRevenue  decimal.Decimal `json:"returnTotalRevenue"`
	ReturnTotalExpense  decimal.Decimal `json:"returnTotalExpense"`
	ReturnDistance      decimal.Decimal `json:"returnDistance"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func tripResponse(t entity.Trip) TripResponse {
	resp := TripResponse{
		ID:         t.ID,
		TripNumber: t.TripNumber,
		BusID:      t.BusID,
		StartDate:  t.StartDate,
		EndDate:    t.EndDate,
		TripDate:   t.TripDate,
		Status:     t.Status.String(),
		TripType:   t.TripType,
		Notes:      t.Notes,

		BusName:    t.BusNameSnapshot,
		DriverName: t.DriverNameSnapshot,

		DepartureTime: t.DepartureTime,
		ArrivalTime:   t.ArrivalTime,
		OdometerStart: t.OdometerStart,
		OdometerEnd:   t.OdometerEnd,
		RevenueCash:   t.RevenueCash,
		RevenueOnline: t.RevenueOnline,
		RevenuePaytm:  t.RevenuePaytm,
		RevenueOthers: t.RevenueOthers,
		RevenueAgent:  t.RevenueAgent,
		TotalRevenue:  t.TotalRevenue(),
		TotalExpense:  t.TotalExpense,
		GSTPercentage: t.GSTPercentage,
		WaterTaken:    t.WaterTaken,
		Distance:      t.DistanceTraveled(),

		ReturnDepartureTime: t.ReturnDepartureTime,
		ReturnArrivalTime:   t.ReturnArrivalTime,
		OdometerReturnStart: t.OdometerReturnStart,
		OdometerReturnEnd:   t.OdometerReturnEnd,
		ReturnRevenueCash:   t.ReturnRevenueCash,
		ReturnRevenueOnline: t.ReturnRevenueOnline,
		ReturnRevenuePaytm:  t.ReturnRevenuePaytm,
		ReturnRevenueOthers: t.ReturnRevenueOthers,
		ReturnRevenueAgent:  t.ReturnRevenueAgent,
		ReturnTotalRevenue:  t.ReturnTotalRevenue,
		ReturnTotalExpense:  t.ReturnTotalExpense,
		ReturnDistance:      t.DistanceReturn(),

		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}

	if t.DriverID != uuid.Nil {
		id := t.DriverID
		resp.DriverID = &id
	}

	if t.RouteID != uuid.Nil {
		id := t.RouteID
		resp.RouteID = &id
	}

	if t.ScheduleID != uuid.Nil {
		id := t.ScheduleID
		resp.ScheduleID = &id
	}

	return resp
}

type TripListResponse struct {
	Trips []TripResponse `json:"trips"`
	Total int            `json:"total"`
}

// CreateTrip creates a trip
// @Summary Create trip
// @Tags trips
// @Accept json
// @Produce json
// @Param TripRequest body TripRequest true "Trip"
// @Success 201 {object} TripResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Trip number taken"
// @Router /trips [post]
// @Security BearerAuth
func (h *Handler) CreateTrip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req TripRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	trip, err := h.trips.CreateTrip(ctx, req.toEntity())
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to create trip")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, tripResponse(trip))
}

// Trip returns one trip
// @Summary Get trip
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} TripResponse
// @Failure 404 {object} ErrorResponse
// @Router /trips/{id} [get]
// @Security BearerAuth
func (h *Handler) Trip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid trip id")
		return
	}

	trip, err := h.trips.Trip(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to load trip")
		return
	}

	SendJSON(ctx, w, http.StatusOK, tripResponse(trip))
}

// Trips lists trips
// @Summary List trips
// @Tags trips
// @Produce json
// @Param status query string false "Filter by status"
// @Param busId query string false "Filter by bus"
// @Param driverId query string false "Filter by driver"
// @Param from query string false "Start date from (RFC 3339)"
// @Param to query string false "Start date to (RFC 3339)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} TripListResponse
// @Router /trips [get]
// @Security BearerAuth
func (h *Handler) Trips(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var f entity.TripFilter

	f.Limit, f.Offset = Pagination(r)

	if v := r.URL.Query().Get("status"); v != "" {
		status := entity.TripStatus(v)
		if err := status.Validate(); err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid status filter")
			return
		}

		f.Status = &status
	}

	if v := r.URL.Query().Get("busId"); v != "" {
		id, err := uuid.FromString(v)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid bus id")
			return
		}

		f.BusID = &id
	}

	if v := r.URL.Query().Get("driverId"); v != "" {
		id, err := uuid.FromString(v)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid driver id")
			return
		}

		f.DriverID = &id
	}

	if v := r.URL.Query().Get("from"); v != "" {
		from, err := time.Parse(time.RFC3339, v)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid from date")
			return
		}

		f.FromDate = &from
	}

	if v := r.URL.Query().Get("to"); v != "" {
		to, err := time.Parse(time.RFC3339, v)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid to date")
			return
		}

		f.ToDate = &to
	}

	trips, total, err := h.trips.Trips(ctx, f)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to list trips")
		return
	}

	resp := TripListResponse{Trips: make([]TripResponse, 0, len(trips)), Total: total}
	for _, t := range trips {
		resp.Trips = append(resp.Trips, tripResponse(t))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// UpdateTrip updates a trip. Drivers may only touch their odometer and water
// readings; everything else is preserved for them.
// @Summary Update trip
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param TripRequest body TripRequest true "Trip"
// @Success 200 {object} TripResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /trips/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid trip id")
		return
	}

	var req TripRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	trip := req.toEntity()
	trip.ID = id

	updated, err := h.trips.UpdateTrip(ctx, trip)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to update trip")
		return
	}

	SendJSON(ctx, w, http.StatusOK, tripResponse(updated))
}

// DeleteTrip removes a trip
// @Summary Delete trip
// @Tags trips
// @Param id path string true "Trip ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /trips/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid trip id")
		return
	}

	if err = h.trips.DeleteTrip(ctx, id); err != nil {
		SendDomainErr(ctx, w, err, "Failed to delete trip")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
