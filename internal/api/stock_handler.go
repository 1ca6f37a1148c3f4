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

type StockService interface {
	CreateItem(ctx context.Context, item entity.StockItem) (entity.StockItem, error)
	Item(ctx context.Context, id uuid.UUID) (entity.StockItem, error)
	Items(ctx context.Context, f entity.StockFilter) ([]entity.StockItem, int, error)
	UpdateItem(ctx context.Context, item entity.StockItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	AdjustItem(ctx context.Context, itemID uuid.UUID, txType entity.StockTransactionType, change int, notes string) (entity.StockItem, error)
	ItemTransactions(ctx context.Context, itemID uuid.UUID) ([]entity.StockTransaction, error)
}

type StockItemRequest struct {
	ItemName          string          `json:"itemName"`
	Quantity          int             `json:"quantity"`
	Unit              string          `json:"unit"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	GSTPercentage     decimal.Decimal `json:"gstPercentage"`
	Notes             string          `json:"notes"`
}

type StockItemResponse struct {
	ID                uuid.UUID       `json:"id"`
	ItemName          string          `json:"itemName"`
	Quantity          int             `json:"quantity"`
	Unit              string          `json:"unit,omitempty"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	GSTPercentage     decimal.Decimal `json:"gstPercentage"`
	Notes             string          `json:"notes,omitempty"`
	LowStock          bool            `json:"lowStock"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

func stockItemResponse(item entity.StockItem) StockItemResponse {
	return StockItemResponse{
		ID:                item.ID,
		ItemName:          item.ItemName,
		Quantity:          item.Quantity,
		Unit:              item.Unit,
		UnitPrice:         item.UnitPrice,
		LowStockThreshold: item.LowStockThreshold,
		GSTPercentage:     item.GSTPercentage,
		Notes:             item.Notes,
		LowStock:          item.BelowThreshold(),
		UpdatedAt:         item.UpdatedAt,
	}
}

type StockListResponse struct {
	Items []StockItemResponse `json:"items"`
	Total int                 `json:"total"`
}

// CreateStockItem adds a stock item
// @Summary Create stock item
// @Tags stock
// @Accept json
// @Produce json
// @Param StockItemRequest body StockItemRequest true "Item"
// @Success 201 {object} StockItemResponse
// @Failure 403 {object} ErrorResponse
// @Router /stock [post]
// @Security BearerAuth
func (h *Handler) CreateStockItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req StockItemRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	item, err := h.stock.CreateItem(ctx, entity.StockItem{
		ItemName:          req.ItemName,
		Quantity:          req.Quantity,
		Unit:              req.Unit,
		UnitPrice:         req.UnitPrice,
		LowStockThreshold: req.LowStockThreshold,
		GSTPercentage:     req.GSTPercentage,
		Notes:             req.Notes,
	})
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to create stock item")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, stockItemResponse(item))
}

// StockItem returns one stock item
// @Summary Get stock item
// @Tags stock
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} StockItemResponse
// @Failure 404 {object} ErrorResponse
// @Router /stock/{id} [get]
// @Security BearerAuth
func (h *Handler) StockItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid item id")
		return
	}

	item, err := h.stock.Item(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to load stock item")
		return
	}

	SendJSON(ctx, w, http.StatusOK, stockItemResponse(item))
}

// StockItems lists stock items
// @Summary List stock items
// @Tags stock
// @Produce json
// @Param low query bool false "Low stock only"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} StockListResponse
// @Router /stock [get]
// @Security BearerAuth
func (h *Handler) StockItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var f entity.StockFilter

	f.Limit, f.Offset = Pagination(r)
	f.LowOnly = r.URL.Query().Get("low") == "true"

	items, total, err := h.stock.Items(ctx, f)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to list stock items")
		return
	}

	resp := StockListResponse{Items: make([]StockItemResponse, 0, len(items)), Total: total}
	for _, item := range items {
		resp.Items = append(resp.Items, stockItemResponse(item))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// UpdateStockItem updates item metadata. Quantity changes must go through the
// adjust endpoint.
// @Summary Update stock item
// @Tags stock
// @Accept json
// @Param id path string true "Item ID"
// @Param StockItemRequest body StockItemRequest true "Item"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /stock/{id} [put]
// @Security BearerAuth
func (h *Handler) UpdateStockItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid item id")
		return
	}

	var req StockItemRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = h.stock.UpdateItem(ctx, entity.StockItem{
		ID:                id,
		ItemName:          req.ItemName,
		Unit:              req.Unit,
		UnitPrice:         req.UnitPrice,
		LowStockThreshold: req.LowStockThreshold,
		GSTPercentage:     req.GSTPercentage,
		Notes:             req.Notes,
	})
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to update stock item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteStockItem removes a stock item
// @Summary Delete stock item
// @Tags stock
// @Param id path string true "Item ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /stock/{id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteStockItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid item id")
		return
	}

	if err = h.stock.DeleteItem(ctx, id); err != nil {
		SendDomainErr(ctx, w, err, "Failed to delete stock item")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type AdjustStockRequest struct {
	Type   string `json:"type"`
	Change int    `json:"change"`
	Notes  string `json:"notes"`
}

// AdjustStockItem applies an add, remove or adjustment movement
// @Summary Adjust stock quantity
// @Tags stock
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param AdjustStockRequest body AdjustStockRequest true "Movement"
// @Success 200 {object} StockItemResponse
// @Failure 422 {object} ErrorResponse "Insufficient stock"
// @Router /stock/{id}/adjust [post]
// @Security BearerAuth
func (h *Handler) AdjustStockItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid item id")
		return
	}

	var req AdjustStockRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	item, err := h.stock.AdjustItem(ctx, id, entity.StockTransactionType(req.Type), req.Change, req.Notes)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to adjust stock")
		return
	}

	SendJSON(ctx, w, http.StatusOK, stockItemResponse(item))
}

type StockTransactionResponse struct {
	ID               uuid.UUID `json:"id"`
	Type             string    `json:"type"`
	QuantityChange   int       `json:"quantityChange"`
	PreviousQuantity int       `json:"previousQuantity"`
	NewQuantity      int       `json:"newQuantity"`
	Notes            string    `json:"notes,omitempty"`
	CreatedBy        uuid.UUID `json:"createdBy"`
	CreatedAt        time.Time `json:"createdAt"`
}

// StockItemTransactions lists the movement history of an item
// @Summary List stock transactions
// @Tags stock
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {array} StockTransactionResponse
// @Router /stock/{id}/transactions [get]
// @Security BearerAuth
func (h *Handler) StockItemTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid item id")
		return
	}

	transactions, err := h.stock.ItemTransactions(ctx, id)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to list transactions")
		return
	}

	resp := make([]StockTransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		resp = append(resp, StockTransactionResponse{
			ID:               tx.ID,
			Type:             tx.Type.String(),
			QuantityChange:   tx.QuantityChange,
			PreviousQuantity: tx.PreviousQuantity,
			NewQuantity:      tx.NewQuantity,
			Notes:            tx.Notes,
			CreatedBy:        tx.CreatedBy,
			CreatedAt:        tx.CreatedAt,
		})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}
