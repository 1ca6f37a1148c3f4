package entity_test

import (
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/busmanager/backend/internal/entity"
)

func TestStockItem_Adjust(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name     string
		quantity int
		txType   entity.StockTransactionType
		change   int
		wantQty  int
		wantErr  error
	}{
		{
			name:     "add",
			quantity: 10,
			txType:   entity.StockTransactionAdd,
			change:   5,
			wantQty:  15,
		},
		{
			name:     "remove",
			quantity: 10,
			txType:   entity.StockTransactionRemove,
			change:   4,
			wantQty:  6,
		},
		{
			name:     "remove to zero",
			quantity: 10,
			txType:   entity.StockTransactionRemove,
			change:   10,
			wantQty:  0,
		},
		{
			name:     "remove below zero",
			quantity: 3,
			txType:   entity.StockTransactionRemove,
			change:   4,
			wantErr:  entity.ErrInsufficientStock,
		},
		{
			name:     "add must be positive",
			quantity: 3,
			txType:   entity.StockTransactionAdd,
			change:   0,
			wantErr:  entity.ErrInvalidArgument,
		},
		{
			name:     "remove must be positive",
			quantity: 3,
			txType:   entity.StockTransactionRemove,
			change:   -1,
			wantErr:  entity.ErrInvalidArgument,
		},
		{
			name:     "negative adjustment",
			quantity: 10,
			txType:   entity.StockTransactionAdjustment,
			change:   -3,
			wantQty:  7,
		},
		{
			name:     "unknown type",
			quantity: 10,
			txType:   entity.StockTransactionType("bogus"),
			change:   1,
			wantErr:  entity.ErrInvalidArgument,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			by := uuid.Must(uuid.NewV4())
			item := entity.StockItem{
				ID:       uuid.Must(uuid.NewV4()),
				ItemName: "engine oil",
				Quantity: tt.quantity,
			}

			tx, err := item.Adjust(tt.txType, tt.change, "note", by)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Adjust() error = %v, want %v", err, tt.wantErr)
				}

				if item.Quantity != tt.quantity {
					t.Errorf("Quantity changed to %d after failed adjust", item.Quantity)
				}

				return
			}

			if err != nil {
				t.Fatalf("Adjust() error = %v", err)
			}

			if item.Quantity != tt.wantQty {
				t.Errorf("Quantity = %d, want %d", item.Quantity, tt.wantQty)
			}

			if tx.PreviousQuantity != tt.quantity || tx.NewQuantity != tt.wantQty {
				t.Errorf("transaction %d -> %d, want %d -> %d",
					tx.PreviousQuantity, tx.NewQuantity, tt.quantity, tt.wantQty)
			}

			if tx.CreatedBy != by {
				t.Errorf("CreatedBy = %v, want %v", tx.CreatedBy, by)
			}
		})
	}
}

func TestStockItem_BelowThreshold(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name      string
		quantity  int
		threshold int
		want      bool
	}{
		{name: "above threshold", quantity: 10, threshold: 5, want: false},
		{name: "at threshold", quantity: 5, threshold: 5, want: true},
		{name: "below threshold", quantity: 2, threshold: 5, want: true},
		{name: "no threshold never alerts", quantity: 0, threshold: 0, want: false},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			item := entity.StockItem{Quantity: tt.quantity, LowStockThreshold: tt.threshold}

			if got := item.BelowThreshold(); got != tt.want {
				t.Errorf("BelowThreshold() = %v, want %v", got, tt.want)
			}
		})
	}
}
