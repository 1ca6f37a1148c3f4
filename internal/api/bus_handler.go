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

type BusService interface {
	CreateBus(ctx context.Context, b entity.Bus) (entity.Bus, error)
	Bus(ctx context.Context, id uuid.UUID) (entity.Bus, error)
	Buses(ctx context.Context, f entity.BusFilter) ([]entity.Bus, int, error)
	UpdateBus(ctx context.Context, b entity.Bus) error
	DeleteBus(ctx context.Context, id uuid.UUID) error
	CreateTaxRecord(ctx context.Context, rec entity.BusTaxRecord) (entity.BusTaxRecord, error)
	TaxRecords(ctx context.Context, busID uuid.UUID) ([]entity.BusTaxRecord, error)
	MarkTaxPaid(ctx context.Context, recordID uuid.UUID, paidDate time.Time, reference string) error
}

type BusRequest struct {
	RegistrationNumber string          `json:"registrationNumber"`
	BusName            string          `json:"busName"`
	Capacity           int             `json:"capacity"`
	BusType            string          `json:"busType"`
	Status             string          `json:"status"`
	InsuranceExpiry    *time.Time      `json:"insuranceExpiry"`
	PUCExpiry          *time.Time      `json:"pucExpiry"`
	FitnessExpiry      *time.Time      `json:"fitnessExpiry"`
	OwnershipType      string          `json:"ownershipType"`
	PartnerName        string          `json:"partnerName"`
	CompanyProfitShare decimal.Decimal `json:"companyProfitShare"`
	PartnerProfitShare decimal.Decimal `json:"partnerProfitShare"`
	HomeStateID        uuid.UUID       `json:"homeStateId"`
	MonthlyTaxAmount   decimal.Decimal `json:"monthlyTaxAmount"`
	TaxDueDay          int             `json:"taxDueDay"`
}

func (req BusRequest) toEntity() entity.Bus {
	return entity.Bus{
		RegistrationNumber: req.RegistrationNumber,
		BusName:            req.BusName,
		Capacity:           req.Capacity,
		BusType:            req.BusType,
		Status:             entity.BusStatus(req.Status),
		InsuranceExpiry:    req.InsuranceExpiry,
		PUCExpiry:          req.PUCExpiry,
		FitnessExpiry:      req.FitnessExpiry,
		OwnershipType:      entity.OwnershipType(req.OwnershipType),
		PartnerName:        req.PartnerName,
		CompanyProfitShare: req.CompanyProfitShare,
		PartnerProfitShare: req.PartnerProfitShare,
		HomeStateID:        req.HomeStateID,
		MonthlyTaxAmount:   req.MonthlyTaxAmount,
		TaxDueDay:          req.TaxDueDay,
	}
}

type BusResponse struct {
	ID                 uuid.UUID       `json:"id"`
	RegistrationNumber string          `json:"registrationNumber"`
	BusName            string          `json:"busName,omitempty"`
	Capacity           int             `json:"capacity"`
	BusType            string          `json:"busType,omitempty"`
	Status             string          `json:"status"`
	InsuranceExpiry    *time.Time      `json:"insuranceExpiry,omitempty"`
	PUCExpiry          *time.Time      `json:"pucExpiry,omitempty"`
	FitnessExpiry      *time.Time      `json:"fitnessExpiry,omitempty"`
	OwnershipType      string          `json:"ownershipType"`
	PartnerName        string          `json:"partnerName,omitempty"`
	CompanyProfitShare decimal.Decimal `json:"companyProfitShare"`
	PartnerProfitShare decimal.Decimal `json:"partnerProfitShare"`
	HomeStateID        *uuid.UUID      `json:"homeStateId,omitempty"`
	MonthlyTaxAmount   decimal.Decimal `json:"monthlyTaxAmount"`
	TaxDueDay          int             `json:"taxDueDay"`
	LastTaxPaidDate    *time.Time      `json:"lastTaxPaidDate,omitempty"`
	NextTaxDueDate     *time.Time      `json:"nextTaxDueDate,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

func busResponse(b entity.Bus) BusResponse {
	resp := BusResponse{
		ID:                 b.ID,
		RegistrationNumber: b.RegistrationNumber,
		BusName:            b.BusName,
		Capacity:           b.Capacity,
		BusType:            b.BusType,
		Status:             b.Status.String(),
		InsuranceExpiry:    b.InsuranceExpiry,
		PUCExpiry:          b.PUCExpiry,
		FitnessExpiry:      b.FitnessExpiry,
		OwnershipType:      b.OwnershipType.String(),
		PartnerName:        b.PartnerName,
		CompanyProfitShare: b.CompanyProfitShare,
		PartnerProfitShare: b.PartnerProfitShare,
		MonthlyTaxAmount:   b.MonthlyTaxAmount,
		TaxDueDay:          b.TaxDueDay,
		LastTaxPaidDate:    b.LastTaxPaidDate,
		NextTaxDueDate:     b.NextTaxDueDate,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.HomeStateID != uuid.Nil {
		id := b.HomeStateID
		resp.HomeStateID = &id
	}

	return resp
}

type BusListResponse struct {
	Buses []BusResponse `json:"buses"`
	Total int           `json:"total"`
}

// CreateBus registers a bus in the fleet
// @Summary Create bus
// @Tags buses
// @Accept json
// @Produce json
// @Param BusRequest body BusRequest true "Bus"
// @Success 201 {object} BusResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Registration number taken"
// @Failure 422 {object} ErrorResponse
// @Router /buses [post]
// @Security BearerAuth
func (h *Handler) CreateBus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req BusRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	bus, err := h.buses.CreateBus(ctx, req.toEntity())
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to create bus")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, busResponse(bus))
}

// Bus returns one bus
// @Summary Get bus
// @Tags buses
// @Produce json
// @Param id path string true "Bus ID"
// @Success 200 {object} BusResponse
// @Failure 404 {object} ErrorResponse
// @Router /buses/{id} [get]
// @Security BearerAuth
func (h *Handler) Bus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid bus id")
		return
	}

	bus, err := h.buses.Bus(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to load bus")
		return
	}

	SendJSON(ctx, w, http.StatusOK, busResponse(bus))
}

// Buses lists buses
// @Summary List buses
// @Tags buses
// @Produce json
// @Param status query string false "Filter by status"
// @Param ownership query string false "Filter by ownership type"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} BusListResponse
// @Router /buses [get]
// @Security BearerAuth
func (h *Handler) Buses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var f entity.BusFilter

	f.Limit, f.Offset = Pagination(r)

	if v := r.URL.Query().Get("status"); v != "" {
		status := entity.BusStatus(v)
		if err := status.Validate(); err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid status filter")
			return
		}

		f.Status = &status
	}

	if v := r.URL.Query().Get("ownership"); v != "" {
		ownership := entity.OwnershipType(v)
		if err := ownership.Validate(); err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid ownership filter")
			return
		}

		f.Ownership = &ownership
	}

	buses, total, err := h.buses.Buses(ctx, f)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to list buses")
		return
	}

	resp := BusListResponse{Buses: make([]BusResponse, 0, len(buses)), Total: total}
	for _, b := range buses {
		resp.Buses = append(resp.Buses, busResponse(b))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// UpdateBus updates a bus
// @Summary Update bus
// @Tags buses
// @Accept json
// @Param id path string true "Bus ID"
// @Param BusRequest body BusRequest true "Bus"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /buses/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateBus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid bus id")
		return
	}

	var req BusRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	bus := req.toEntity()
	bus.ID = id

	if err = h.buses.UpdateBus(ctx, bus); err != nil {
		SendDomainErr(ctx, w, err, "Failed to update bus")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteBus removes a bus
// @Summary Delete bus
// @Tags buses
// @Param id path string true "Bus ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /buses/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteBus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid bus id")
		return
	}

	if err = h.buses.DeleteBus(ctx, id); err != nil {
		SendDomainErr(ctx, w, err, "Failed to delete bus")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type TaxRecordRequest struct {
	TaxPeriodStart time.Time       `json:"taxPeriodStart"`
	TaxPeriodEnd   time.Time       `json:"taxPeriodEnd"`
	DueDate        time.Time       `json:"dueDate"`
	Amount         decimal.Decimal `json:"amount"`
	Notes          string          `json:"notes"`
}

type TaxRecordResponse struct {
	ID               uuid.UUID       `json:"id"`
	BusID            uuid.UUID       `json:"busId"`
	TaxPeriodStart   time.Time       `json:"taxPeriodStart"`
	TaxPeriodEnd     time.Time       `json:"taxPeriodEnd"`
	DueDate          time.Time       `json:"dueDate"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	PaidDate         *time.Time      `json:"paidDate,omitempty"`
	PaymentReference string          `json:"paymentReference,omitempty"`
	Notes            string          `json:"notes,omitempty"`
}

func taxRecordResponse(rec entity.BusTaxRecord) TaxRecordResponse {
	return TaxRecordResponse{
		ID:               rec.ID,
		BusID:            rec.BusID,
		TaxPeriodStart:   rec.TaxPeriodStart,
		TaxPeriodEnd:     rec.TaxPeriodEnd,
		DueDate:          rec.DueDate,
		Amount:           rec.Amount,
		Status:           rec.Status.String(),
		PaidDate:         rec.PaidDate,
		PaymentReference: rec.PaymentReference,
		Notes:            rec.Notes,
	}
}

// CreateTaxRecord opens a tax period for a bus
// @Summary Create tax record
// @Tags buses
// @Accept json
// @Produce json
// @Param id path string true "Bus ID"
// @Param TaxRecordRequest body TaxRecordRequest true "Tax period"
// @Success 201 {object} TaxRecordResponse
// @Failure 403 {object} ErrorResponse
// @Router /buses/{id}/tax-records [post]
// @Security BearerAuth
func (h *Handler) CreateTaxRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	busID, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid bus id")
		return
	}

	var req TaxRecordRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	rec, err := h.buses.CreateTaxRecord(ctx, entity.BusTaxRecord{
		BusID:          busID,
		TaxPeriodStart: req.TaxPeriodStart,
		TaxPeriodEnd:   req.TaxPeriodEnd,
		DueDate:        req.DueDate,
		Amount:         req.Amount,
		Notes:          req.Notes,
	})
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to create tax record")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, taxRecordResponse(rec))
}

// TaxRecords lists tax records for a bus
// @Summary List tax records
// @Tags buses
// @Produce json
// @Param id path string true "Bus ID"
// @Success 200 {array} TaxRecordResponse
// @Router /buses/{id}/tax-records [get]
// @Security BearerAuth
func (h *Handler) TaxRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	busID, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid bus id")
		return
	}

	records, err := h.buses.TaxRecords(ctx, busID)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to list tax records")
		return
	}

	resp := make([]TaxRecordResponse, 0, len(records))
	for _, rec := range records {
		resp = append(resp, taxRecordResponse(rec))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type MarkTaxPaidRequest struct {
	PaidDate         time.Time `json:"paidDate"`
	PaymentReference string    `json:"paymentReference"`
}

// MarkTaxPaid settles a tax record and advances the bus due date
// @Summary Mark tax paid
// @Tags buses
// @Accept json
// @Param recordId path string true "Tax record ID"
// @Param MarkTaxPaidRequest body MarkTaxPaidRequest true "Payment details"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /buses/tax-records/{recordId}/pay [post]
// @Security BearerAuth
func (h *Handler) MarkTaxPaid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	recordID, err := URLParamUUID(r, "recordId")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid record id")
		return
	}

	var req MarkTaxPaidRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	if req.PaidDate.IsZero() {
		req.PaidDate = time.Now()
	}

	if err = h.buses.MarkTaxPaid(ctx, recordID, req.PaidDate, req.PaymentReference); err != nil {
		SendDomainErr(ctx, w, err, "Failed to mark tax paid")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
