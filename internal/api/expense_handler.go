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

type ExpenseService interface {
	SubmitExpense(ctx context.Context, e entity.Expense) (entity.Expense, error)
	Expense(ctx context.Context, id uuid.UUID) (entity.Expense, error)
	Expenses(ctx context.Context, f entity.ExpenseFilter) ([]entity.Expense, int, error)
	UpdateExpense(ctx context.Context, e entity.Expense) error
	ReviewExpense(ctx context.Context, id uuid.UUID, status entity.ExpenseStatus, remarks string) (entity.Expense, error)
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	Categories(ctx context.Context) ([]entity.ExpenseCategory, error)
	CreateCategory(ctx context.Context, c entity.ExpenseCategory) (entity.ExpenseCategory, error)
}

type ExpenseRequest struct {
	TripID       uuid.UUID       `json:"tripId"`
	CategoryID   uuid.UUID       `json:"categoryId"`
	Amount       decimal.Decimal `json:"amount"`
	ExpenseDate  time.Time       `json:"expenseDate"`
	Description  string          `json:"description"`
	DocumentURL  string          `json:"documentUrl"`
	FuelQuantity decimal.Decimal `json:"fuelQuantity"`
}

func (req ExpenseRequest) toEntity() entity.Expense {
	return entity.Expense{
		TripID:       req.TripID,
		CategoryID:   req.CategoryID,
		Amount:       req.Amount,
		ExpenseDate:  req.ExpenseDate,
		Description:  req.Description,
		DocumentURL:  req.DocumentURL,
		FuelQuantity: req.FuelQuantity,
	}
}

type ExpenseResponse struct {
	ID           uuid.UUID       `json:"id"`
	TripID       *uuid.UUID      `json:"tripId,omitempty"`
	CategoryID   uuid.UUID       `json:"categoryId"`
	SubmittedBy  uuid.UUID       `json:"submittedBy"`
	Amount       decimal.Decimal `json:"amount"`
	ExpenseDate  time.Time       `json:"expenseDate"`
	Description  string          `json:"description,omitempty"`
	DocumentURL  string          `json:"documentUrl,omitempty"`
	FuelQuantity decimal.Decimal `json:"fuelQuantity"`
	Status       string          `json:"status"`
	AdminRemarks string          `json:"adminRemarks,omitempty"`
	ApprovedBy   *uuid.UUID      `json:"approvedBy,omitempty"`
	ApprovedAt   *time.Time      `json:"approvedAt,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func expenseResponse(e entity.Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:           e.ID,
		CategoryID:   e.CategoryID,
		SubmittedBy:  e.SubmittedBy,
		Amount:       e.Amount,
		ExpenseDate:  e.ExpenseDate,
		Description:  e.Description,
		DocumentURL:  e.DocumentURL,
		FuelQuantity: e.FuelQuantity,
		Status:       e.Status.String(),
		AdminRemarks: e.AdminRemarks,
		ApprovedAt:   e.ApprovedAt,
		CreatedAt:    e.CreatedAt,
	}

	if e.TripID != uuid.Nil {
		id := e.TripID
		resp.TripID = &id
	}

	if e.ApprovedBy != uuid.Nil {
		id := e.ApprovedBy
		resp.ApprovedBy = &id
	}

	return resp
}

type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    int               `json:"total"`
}

// SubmitExpense files an expense
// @Summary Submit expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param ExpenseRequest body ExpenseRequest true "Expense"
// @Success 201 {object} ExpenseResponse
// @Failure 422 {object} ErrorResponse "Amount must be positive"
// @Router /expenses [post]
// @Security BearerAuth
func (h *Handler) SubmitExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ExpenseRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	e, err := h.expenses.SubmitExpense(ctx, req.toEntity())
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to submit expense")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, expenseResponse(e))
}

// Expense returns one expense
// @Summary Get expense
// @Tags expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} ExpenseResponse
// @Failure 404 {object} ErrorResponse
// @Router /expenses/{id} [get]
// @Security BearerAuth
func (h *Handler) Expense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid expense id")
		return
	}

	e, err := h.expenses.Expense(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to load expense")
		return
	}

	SendJSON(ctx, w, http.StatusOK, expenseResponse(e))
}

// Expenses lists expenses
// @Summary List expenses
// @Tags expenses
// @Produce json
// @Param status query string false "Filter by status"
// @Param tripId query string false "Filter by trip"
// @Param categoryId query string false "Filter by category"
// @Param from query string false "Expense date from (RFC 3339)"
// @Param to query string false "Expense date to (RFC 3339)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} ExpenseListResponse
// @Router /expenses [get]
// @Security BearerAuth
func (h *Handler) Expenses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var f entity.ExpenseFilter

	f.Limit, f.Offset = Pagination(r)

	if v := r.URL.Query().Get("status"); v != "" {
		status := entity.ExpenseStatus(v)
		if err := status.Validate(); err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid status filter")
			return
		}

		f.Status = &status
	}

	if v := r.URL.Query().Get("tripId"); v != "" {
		id, err := uuid.FromString(v)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid trip id")
			return
		}

		f.TripID = &id
	}

	if v := r.URL.Query().Get("categoryId"); v != "" {
		id, err := uuid.FromString(v)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid category id")
			return
		}

		f.CategoryID = &id
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

	expenses, total, err := h.expenses.Expenses(ctx, f)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to list expenses")
		return
	}

	resp := ExpenseListResponse{Expenses: make([]ExpenseResponse, 0, len(expenses)), Total: total}
	for _, e := range expenses {
		resp.Expenses = append(resp.Expenses, expenseResponse(e))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// UpdateExpense amends a pending expense
// @Summary Update expense
// @Tags expenses
// @Accept json
// @Param id path string true "Expense ID"
// @Param ExpenseRequest body ExpenseRequest true "Expense"
// @Success 204
// @Failure 409 {object} ErrorResponse "Expense already reviewed"
// @Router /expenses/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid expense id")
		return
	}

	var req ExpenseRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	e := req.toEntity()
	e.ID = id

	if err = h.expenses.UpdateExpense(ctx, e); err != nil {
		SendDomainErr(ctx, w, err, "Failed to update expense")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type ReviewExpenseRequest struct {
	Status  string `json:"status"`
	Remarks string `json:"remarks"`
}

// ReviewExpense approves or denies a pending expense
// @Summary Review expense
// @Tags expenses
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param ReviewExpenseRequest body ReviewExpenseRequest true "Decision"
// @Success 200 {object} ExpenseResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Expense already reviewed"
// @Router /expenses/{id}/review [post]
// @Security BearerAuth
func (h *Handler) ReviewExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid expense id")
		return
	}

	var req ReviewExpenseRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	e, err := h.expenses.ReviewExpense(ctx, id, entity.ExpenseStatus(req.Status), req.Remarks)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to review expense")
		return
	}

	SendJSON(ctx, w, http.StatusOK, expenseResponse(e))
}

// DeleteExpense removes a pending expense
// @Summary Delete expense
// @Tags expenses
// @Param id path string true "Expense ID"
// @Success 204
// @Failure 409 {object} ErrorResponse "Expense already reviewed"
// @Router /expenses/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid expense id")
		return
	}

	if err = h.expenses.DeleteExpense(ctx, id); err != nil {
		SendDomainErr(ctx, w, err, "Failed to delete expense")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type ExpenseCategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
}

// ExpenseCategories lists expense categories
// @Summary List expense categories
// @Tags expenses
// @Produce json
// @Success 200 {array} ExpenseCategoryResponse
// @Router /expenses/categories [get]
// @Security BearerAuth
func (h *Handler) ExpenseCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.expenses.Categories(ctx)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to list categories")
		return
	}

	resp := make([]ExpenseCategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, ExpenseCategoryResponse{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Icon:        c.Icon,
		})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type ExpenseCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// CreateExpenseCategory adds an expense category, admin only
// @Summary Create expense category
// @Tags expenses
// @Accept json
// @Produce json
// @Param ExpenseCategoryRequest body ExpenseCategoryRequest true "Category"
// @Success 201 {object} ExpenseCategoryResponse
// @Failure 403 {object} ErrorResponse
// @Router /expenses/categories [post]
// @Security BearerAuth
func (h *Handler) CreateExpenseCategory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ExpenseCategoryRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	c, err := h.expenses.CreateCategory(ctx, entity.ExpenseCategory{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	})
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to create category")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, ExpenseCategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
	})
}
