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

type InvoiceService interface {
	CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error)
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error)
	UpdateInvoice(ctx context.Context, inv entity.Invoice) error
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
	AddPayment(ctx context.Context, p entity.Payment) (entity.Invoice, error)
	SetStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus) (entity.Invoice, error)
}

type LineItemRequest struct {
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	GSTPercentage   decimal.Decimal `json:"gstPercentage"`
	RateIncludesGST bool            `json:"rateIncludesGst"`
	IsDeduction     bool            `json:"isDeduction"`
}

type InvoiceRequest struct {
	InvoiceNumber   string            `json:"invoiceNumber"`
	InvoiceDate     time.Time         `json:"invoiceDate"`
	DueDate         *time.Time        `json:"dueDate"`
	InvoiceType     string            `json:"invoiceType"`
	Direction       string            `json:"direction"`
	Category        string            `json:"category"`
	CustomerName    string            `json:"customerName"`
	CustomerAddress string            `json:"customerAddress"`
	CustomerPhone   string            `json:"customerPhone"`
	CustomerGST     string            `json:"customerGst"`
	VendorName      string            `json:"vendorName"`
	VendorAddress   string            `json:"vendorAddress"`
	VendorPhone     string            `json:"vendorPhone"`
	VendorGST       string            `json:"vendorGst"`
	TripID          uuid.UUID         `json:"tripId"`
	BusID           uuid.UUID         `json:"busId"`
	Status          string            `json:"status"`
	Notes           string            `json:"notes"`
	Terms           string            `json:"terms"`
	LineItems       []LineItemRequest `json:"lineItems"`
}

func (req InvoiceRequest) toEntity() entity.Invoice {
	inv := entity.Invoice{
		InvoiceNumber:   req.InvoiceNumber,
		InvoiceDate:     req.InvoiceDate,
		DueDate:         req.DueDate,
		InvoiceType:     entity.InvoiceType(req.InvoiceType),
		Direction:       entity.InvoiceDirection(req.Direction),
		Category:        req.Category,
		CustomerName:    req.CustomerName,
		CustomerAddress: req.CustomerAddress,
		CustomerPhone:   req.CustomerPhone,
		CustomerGST:     req.CustomerGST,
		VendorName:      req.VendorName,
		VendorAddress:   req.VendorAddress,
		VendorPhone:     req.VendorPhone,
		VendorGST:       req.VendorGST,
		TripID:          req.TripID,
		BusID:           req.BusID,
		Status:          entity.InvoiceStatus(req.Status),
		Notes:           req.Notes,
		Terms:           req.Terms,
	}

	for _, li := range req.LineItems {
		inv.LineItems = append(inv.LineItems, entity.LineItem{
			Description:     li.Description,
			Quantity:        li.Quantity,
			UnitPrice:       li.UnitPrice,
			GSTPercentage:   li.GSTPercentage,
			RateIncludesGST: li.RateIncludesGST,
			IsDeduction:     li.IsDeduction,
		})
	}

	return inv
}

type LineItemResponse struct {
	ID              uuid.UUID       `json:"id"`
	Description     string          `json:"description"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
	GSTPercentage   decimal.Decimal `json:"gstPercentage"`
	RateIncludesGST bool            `json:"rateIncludesGst"`
	BaseAmount      decimal.Decimal `json:"baseAmount"`
	GSTAmount       decimal.Decimal `json:"gstAmount"`
	Amount          decimal.Decimal `json:"amount"`
	IsDeduction     bool            `json:"isDeduction"`
}

type PaymentResponse struct {
	ID              uuid.UUID       `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     time.Time       `json:"paymentDate"`
	PaymentMode     string          `json:"paymentMode,omitempty"`
	ReferenceNumber string          `json:"referenceNumber,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

type InvoiceResponse struct {
	ID              uuid.UUID          `json:"id"`
	InvoiceNumber   string             `json:"invoiceNumber"`
	InvoiceDate     time.Time          `json:"invoiceDate"`
	DueDate         *time.Time         `json:"dueDate,omitempty"`
	InvoiceType     string             `json:"invoiceType"`
	Direction       string             `json:"direction"`
	Category        string             `json:"category,omitempty"`
	CustomerName    string             `json:"customerName,omitempty"`
	CustomerAddress string             `json:"customerAddress,omitempty"`
	CustomerPhone   string             `json:"customerPhone,omitempty"`
	CustomerGST     string             `json:"customerGst,omitempty"`
	VendorName      string             `json:"vendorName,omitempty"`
	VendorAddress   string             `json:"vendorAddress,omitempty"`
	VendorPhone     string             `json:"vendorPhone,omitempty"`
	VendorGST       string             `json:"vendorGst,omitempty"`
	TripID          *uuid.UUID         `json:"tripId,omitempty"`
	BusID           *uuid.UUID         `json:"busId,omitempty"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	GSTAmount       decimal.Decimal    `json:"gstAmount"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	AmountPaid      decimal.Decimal    `json:"amountPaid"`
	BalanceDue      decimal.Decimal    `json:"balanceDue"`
	Status          string             `json:"status"`
	Notes           string             `json:"notes,omitempty"`
	Terms           string             `json:"terms,omitempty"`
	LineItems       []LineItemResponse `json:"lineItems,omitempty"`
	Payments        []PaymentResponse  `json:"payments,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

func invoiceResponse(inv entity.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		ID:              inv.ID,
		InvoiceNumber:   inv.InvoiceNumber,
		InvoiceDate:     inv.InvoiceDate,
		DueDate:         inv.DueDate,
		InvoiceType:     inv.InvoiceType.String(),
		Direction:       inv.Direction.String(),
		Category:        inv.Category,
		CustomerName:    inv.CustomerName,
		CustomerAddress: inv.CustomerAddress,
		CustomerPhone:   inv.CustomerPhone,
		CustomerGST:     inv.CustomerGST,
		VendorName:      inv.VendorName,
		VendorAddress:   inv.VendorAddress,
		VendorPhone:     inv.VendorPhone,
		VendorGST:       inv.VendorGST,
		Subtotal:        inv.Subtotal,
		GSTAmount:       inv.GSTAmount,
		TotalAmount:     inv.TotalAmount,
		AmountPaid:      inv.AmountPaid,
		BalanceDue:      inv.BalanceDue,
		Status:          inv.Status.String(),
		Notes:           inv.Notes,
		Terms:           inv.Terms,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}

	if inv.TripID != uuid.Nil {
		id := inv.TripID
		resp.TripID = &id
	}

	if inv.BusID != uuid.Nil {
		id := inv.BusID
		resp.BusID = &id
	}

	for _, li := range inv.LineItems {
		resp.LineItems = append(resp.LineItems, LineItemResponse{
			ID:              li.ID,
			Description:     li.Description,
			Quantity:        li.Quantity,
			UnitPrice:       li.UnitPrice,
			GSTPercentage:   li.GSTPercentage,
			RateIncludesGST: li.RateIncludesGST,
			BaseAmount:      li.BaseAmount,
			GSTAmount:       li.GSTAmount,
			Amount:          li.Amount,
			IsDeduction:     li.IsDeduction,
		})
	}

	for _, p := range inv.Payments {
		resp.Payments = append(resp.Payments, PaymentResponse{
			ID:              p.ID,
			Amount:          p.Amount,
			PaymentDate:     p.PaymentDate,
			PaymentMode:     p.PaymentMode,
			ReferenceNumber: p.ReferenceNumber,
			Notes:           p.Notes,
			CreatedAt:       p.CreatedAt,
		})
	}

	return resp
}

type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Total    int               `json:"total"`
}

// CreateInvoice creates an invoice with its line items
// @Summary Create invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param InvoiceRequest body InvoiceRequest true "Invoice"
// @Success 201 {object} InvoiceResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Invoice number taken"
// @Failure 422 {object} ErrorResponse
// @Router /invoices [post]
// @Security BearerAuth
func (h *Handler) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req InvoiceRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	inv, err := h.invoices.CreateInvoice(ctx, req.toEntity())
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to create invoice")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, invoiceResponse(inv))
}

// Invoice returns one invoice with line items and payments
// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} InvoiceResponse
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{id} [get]
// @Security BearerAuth
func (h *Handler) Invoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	inv, err := h.invoices.Invoice(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to load invoice")
		return
	}

	SendJSON(ctx, w, http.StatusOK, invoiceResponse(inv))
}

// Invoices lists invoices
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param status query string false "Filter by status"
// @Param direction query string false "Filter by direction"
// @Param from query string false "Invoice date from (RFC 3339)"
// @Param to query string false "Invoice date to (RFC 3339)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} InvoiceListResponse
// @Router /invoices [get]
// @Security BearerAuth
func (h *Handler) Invoices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var f entity.InvoiceFilter

	f.Limit, f.Offset = Pagination(r)

	if v := r.URL.Query().Get("status"); v != "" {
		status := entity.InvoiceStatus(v)
		if err := status.Validate(); err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid status filter")
			return
		}

		f.Status = &status
	}

	if v := r.URL.Query().Get("direction"); v != "" {
		direction := entity.InvoiceDirection(v)
		if err := direction.Validate(); err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid direction filter")
			return
		}

		f.Direction = &direction
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

	invoices, total, err := h.invoices.Invoices(ctx, f)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to list invoices")
		return
	}

	resp := InvoiceListResponse{Invoices: make([]InvoiceResponse, 0, len(invoices)), Total: total}
	for _, inv := range invoices {
		resp.Invoices = append(resp.Invoices, invoiceResponse(inv))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// UpdateInvoice updates invoice header fields
// @Summary Update invoice
// @Tags invoices
// @Accept json
// @Param id path string true "Invoice ID"
// @Param InvoiceRequest body InvoiceRequest true "Invoice"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	var req InvoiceRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	inv := req.toEntity()
	inv.ID = id

	if err = h.invoices.UpdateInvoice(ctx, inv); err != nil {
		SendDomainErr(ctx, w, err, "Failed to update invoice")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteInvoice removes an invoice with its line items and payments
// @Summary Delete invoice
// @Tags invoices
// @Param id path string true "Invoice ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /invoices/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	if err = h.invoices.DeleteInvoice(ctx, id); err != nil {
		SendDomainErr(ctx, w, err, "Failed to delete invoice")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type AddPaymentRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	PaymentDate     time.Time       `json:"paymentDate"`
	PaymentMode     string          `json:"paymentMode"`
	ReferenceNumber string          `json:"referenceNumber"`
	Notes           string          `json:"notes"`
}

// AddPayment records a payment against an invoice
// @Summary Add payment
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param AddPaymentRequest body AddPaymentRequest true "Payment"
// @Success 200 {object} InvoiceResponse
// @Failure 409 {object} ErrorResponse "Invoice cancelled"
// @Failure 422 {object} ErrorResponse "Amount must be positive"
// @Router /invoices/{id}/payments [post]
// @Security BearerAuth
func (h *Handler) AddPayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	var req AddPaymentRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	inv, err := h.invoices.AddPayment(ctx, entity.Payment{
		InvoiceID:       id,
		Amount:          req.Amount,
		PaymentDate:     req.PaymentDate,
		PaymentMode:     req.PaymentMode,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
	})
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to add payment")
		return
	}

	SendJSON(ctx, w, http.StatusOK, invoiceResponse(inv))
}

type SetInvoiceStatusRequest struct {
	Status string `json:"status"`
}

// SetInvoiceStatus moves an invoice to a new status
// @Summary Set invoice status
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param SetInvoiceStatusRequest body SetInvoiceStatusRequest true "Status"
// @Success 200 {object} InvoiceResponse
// @Failure 409 {object} ErrorResponse "Transition not allowed"
// @Router /invoices/{id}/status [put]
// @Security BearerAuth
func (h *Handler) SetInvoiceStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid invoice id")
		return
	}

	var req SetInvoiceStatusRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	inv, err := h.invoices.SetStatus(ctx, id, entity.InvoiceStatus(req.Status))
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to change invoice status")
		return
	}

	SendJSON(ctx, w, http.StatusOK, invoiceResponse(inv))
}
