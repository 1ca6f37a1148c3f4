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

type RepairService interface {
	SubmitRecord(ctx context.Context, rec entity.RepairRecord) (entity.RepairRecord, error)
	Record(ctx context.Context, id uuid.UUID) (entity.RepairRecord, error)
	Records(ctx context.Context, f entity.RepairFilter) ([]entity.RepairRecord, int, error)
	UpdateRecord(ctx context.Context, rec entity.RepairRecord) error
	ReviewRecord(ctx context.Context, id uuid.UUID, status entity.RepairStatus) (entity.RepairRecord, error)
	DeleteRecord(ctx context.Context, id uuid.UUID) error
	CreateOrganization(ctx context.Context, org entity.RepairOrganization) (entity.RepairOrganization, error)
	Organization(ctx context.Context, id uuid.UUID) (entity.RepairOrganization, error)
	Organizations(ctx context.Context, activeOnly bool) ([]entity.RepairOrganization, error)
}

type RepairRecordRequest struct {
	RepairNumber   string          `json:"repairNumber"`
	OrganizationID uuid.UUID       `json:"organizationId"`
	BusID          uuid.UUID       `json:"busId"`
	RepairDate     time.Time       `json:"repairDate"`
	RepairType     string          `json:"repairType"`
	Description    string          `json:"description"`
	PartsChanged   string          `json:"partsChanged"`
	PartsCost      decimal.Decimal `json:"partsCost"`
	LaborCost      decimal.Decimal `json:"laborCost"`
	GSTApplicable  bool            `json:"gstApplicable"`
	GSTPercentage  decimal.Decimal `json:"gstPercentage"`
	WarrantyDays   int             `json:"warrantyDays"`
	Notes          string          `json:"notes"`
	PhotoBeforeURL string          `json:"photoBeforeUrl"`
	PhotoAfterURL  string          `json:"photoAfterUrl"`
}

func (req RepairRecordRequest) toEntity() entity.RepairRecord {
	return entity.RepairRecord{
		RepairNumber:   req.RepairNumber,
		OrganizationID: req.OrganizationID,
		BusID:          req.BusID,
		RepairDate:     req.RepairDate,
		RepairType:     req.RepairType,
		Description:    req.Description,
		PartsChanged:   req.PartsChanged,
		PartsCost:      req.PartsCost,
		LaborCost:      req.LaborCost,
		GSTApplicable:  req.GSTApplicable,
		GSTPercentage:  req.GSTPercentage,
		WarrantyDays:   req.WarrantyDays,
		Notes:          req.Notes,
		PhotoBeforeURL: req.PhotoBeforeURL,
		PhotoAfterURL:  req.PhotoAfterURL,
	}
}

type RepairRecordResponse struct {
	ID              uuid.UUID       `json:"id"`
	RepairNumber    string          `json:"repairNumber"`
	OrganizationID  uuid.UUID       `json:"organizationId"`
	BusID           uuid.UUID       `json:"busId"`
	BusRegistration string          `json:"busRegistration"`
	RepairDate      time.Time       `json:"repairDate"`
	RepairType      string          `json:"repairType,omitempty"`
	Description     string          `json:"description,omitempty"`
	PartsChanged    string          `json:"partsChanged,omitempty"`
	PartsCost       decimal.Decimal `json:"partsCost"`
	LaborCost       decimal.Decimal `json:"laborCost"`
	GSTApplicable   bool            `json:"gstApplicable"`
	GSTPercentage   decimal.Decimal `json:"gstPercentage"`
	GSTAmount       decimal.Decimal `json:"gstAmount"`
	TotalCost       decimal.Decimal `json:"totalCost"`
	WarrantyDays    int             `json:"warrantyDays"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	PhotoBeforeURL  string          `json:"photoBeforeUrl,omitempty"`
	PhotoAfterURL   string          `json:"photoAfterUrl,omitempty"`
	ApprovedAt      *time.Time      `json:"approvedAt,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func repairRecordResponse(rec entity.RepairRecord) RepairRecordResponse {
	_, gst, total := rec.CostBreakdown()

	return RepairRecordResponse{
		ID:              rec.ID,
		RepairNumber:    rec.RepairNumber,
		OrganizationID:  rec.OrganizationID,
		BusID:           rec.BusID,
		BusRegistration: rec.BusRegistration,
		RepairDate:      rec.RepairDate,
		RepairType:      rec.RepairType,
		Description:     rec.Description,
		PartsChanged:    rec.PartsChanged,
		PartsCost:       rec.PartsCost,
		LaborCost:       rec.LaborCost,
		GSTApplicable:   rec.GSTApplicable,
		GSTPercentage:   rec.GSTPercentage,
		GSTAmount:       gst,
		TotalCost:       total,
		WarrantyDays:    rec.WarrantyDays,
		Status:          rec.Status.String(),
		Notes:           rec.Notes,
		PhotoBeforeURL:  rec.PhotoBeforeURL,
		PhotoAfterURL:   rec.PhotoAfterURL,
		ApprovedAt:      rec.ApprovedAt,
		CreatedAt:       rec.CreatedAt,
	}
}

type RepairListResponse struct {
	Records []RepairRecordResponse `json:"records"`
	Total   int                    `json:"total"`
}

// SubmitRepairRecord files a repair record
// @Summary Submit repair record
// @Tags repairs
// @Accept json
// @Produce json
// @Param RepairRecordRequest body RepairRecordRequest true "Repair record"
// @Success 201 {object} RepairRecordResponse
// @Failure 422 {object} ErrorResponse "Repair organization not configured"
// @Router /repairs [post]
// @Security BearerAuth
func (h *Handler) SubmitRepairRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RepairRecordRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	rec, err := h.repairs.SubmitRecord(ctx, req.toEntity())
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to submit repair record")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, repairRecordResponse(rec))
}

// RepairRecord returns one repair record
// @Summary Get repair record
// @Tags repairs
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} RepairRecordResponse
// @Failure 404 {object} ErrorResponse
// @Router /repairs/{id} [get]
// @Security BearerAuth
func (h *Handler) RepairRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid record id")
		return
	}

	rec, err := h.repairs.Record(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to load repair record")
		return
	}

	SendJSON(ctx, w, http.StatusOK, repairRecordResponse(rec))
}

// RepairRecords lists repair records
// @Summary List repair records
// @Tags repairs
// @Produce json
// @Param status query string false "Filter by status"
// @Param busId query string false "Filter by bus"
// @Param organizationId query string false "Filter by organization"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} RepairListResponse
// @Router /repairs [get]
// @Security BearerAuth
func (h *Handler) RepairRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var f entity.RepairFilter

	f.Limit, f.Offset = Pagination(r)

	if v := r.URL.Query().Get("status"); v != "" {
		status := entity.RepairStatus(v)
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

	if v := r.URL.Query().Get("organizationId"); v != "" {
		id, err := uuid.FromString(v)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid organization id")
			return
		}

		f.OrganizationID = &id
	}

	records, total, err := h.repairs.Records(ctx, f)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to list repair records")
		return
	}

	resp := RepairListResponse{Records: make([]RepairRecordResponse, 0, len(records)), Total: total}
	for _, rec := range records {
		resp.Records = append(resp.Records, repairRecordResponse(rec))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// UpdateRepairRecord amends a still-submitted record
// @Summary Update repair record
// @Tags repairs
// @Accept json
// @Param id path string true "Record ID"
// @Param RepairRecordRequest body RepairRecordRequest true "Repair record"
// @Success 204
// @Failure 409 {object} ErrorResponse "Record already reviewed"
// @Router /repairs/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateRepairRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid record id")
		return
	}

	var req RepairRecordRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	rec := req.toEntity()
	rec.ID = id

	if err = h.repairs.UpdateRecord(ctx, rec); err != nil {
		SendDomainErr(ctx, w, err, "Failed to update repair record")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type ReviewRepairRequest struct {
	Status string `json:"status"`
}

// ReviewRepairRecord approves or rejects a submitted record
// @Summary Review repair record
// @Tags repairs
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param ReviewRepairRequest body ReviewRepairRequest true "Decision"
// @Success 200 {object} RepairRecordResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Record already reviewed"
// @Router /repairs/{id}/review [post]
// @Security BearerAuth
func (h *Handler) ReviewRepairRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid record id")
		return
	}

	var req ReviewRepairRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	rec, err := h.repairs.ReviewRecord(ctx, id, entity.RepairStatus(req.Status))
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to review repair record")
		return
	}

	SendJSON(ctx, w, http.StatusOK, repairRecordResponse(rec))
}

// DeleteRepairRecord removes a repair record
// @Summary Delete repair record
// @Tags repairs
// @Param id path string true "Record ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /repairs/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteRepairRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid record id")
		return
	}

	if err = h.repairs.DeleteRecord(ctx, id); err != nil {
		SendDomainErr(ctx, w, err, "Failed to delete repair record")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type RepairOrgRequest struct {
	OrgCode       string `json:"orgCode"`
	OrgName       string `json:"orgName"`
	ContactPerson string `json:"contactPerson"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Address       string `json:"address"`
}

type RepairOrgResponse struct {
	ID            uuid.UUID `json:"id"`
	OrgCode       string    `json:"orgCode"`
	OrgName       string    `json:"orgName"`
	ContactPerson string    `json:"contactPerson,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	IsActive      bool      `json:"isActive"`
}

func repairOrgResponse(org entity.RepairOrganization) RepairOrgResponse {
	return RepairOrgResponse{
		ID:            org.ID,
		OrgCode:       org.OrgCode,
		OrgName:       org.OrgName,
		ContactPerson: org.ContactPerson,
		Phone:         org.Phone,
		Email:         org.Email,
		Address:       org.Address,
		IsActive:      org.IsActive,
	}
}

// CreateRepairOrg registers a repair organization, admin only
// @Summary Create repair organization
// @Tags repairs
// @Accept json
// @Produce json
// @Param RepairOrgRequest body RepairOrgRequest true "Organization"
// @Success 201 {object} RepairOrgResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Code taken"
// @Router /repair-organizations [post]
// @Security BearerAuth
func (h *Handler) CreateRepairOrg(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req RepairOrgRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	org, err := h.repairs.CreateOrganization(ctx, entity.RepairOrganization{
		OrgCode:       req.OrgCode,
		OrgName:       req.OrgName,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
	})
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to create organization")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, repairOrgResponse(org))
}

// RepairOrg returns one repair organization
// @Summary Get repair organization
// @Tags repairs
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} RepairOrgResponse
// @Failure 404 {object} ErrorResponse
// @Router /repair-organizations/{id} [get]
// @Security BearerAuth
func (h *Handler) RepairOrg(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid organization id")
		return
	}

	org, err := h.repairs.Organization(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to load organization")
		return
	}

	SendJSON(ctx, w, http.StatusOK, repairOrgResponse(org))
}

// RepairOrgs lists repair organizations
// @Summary List repair organizations
// @Tags repairs
// @Produce json
// @Param active query bool false "Active organizations only"
// @Success 200 {array} RepairOrgResponse
// @Router /repair-organizations [get]
// @Security BearerAuth
func (h *Handler) RepairOrgs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgs, err := h.repairs.Organizations(ctx, r.URL.Query().Get("active") == "true")
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to list organizations")
		return
	}

	resp := make([]RepairOrgResponse, 0, len(orgs))
	for _, org := range orgs {
		resp = append(resp, repairOrgResponse(org))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}
