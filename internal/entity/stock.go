package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type StockTransactionType string

const (
	StockTransactionAdd        StockTransactionType = "add"
	StockTransactionRemove     StockTransactionType = "remove"
	StockTransactionAdjustment StockTransactionType = "adjustment"
)

func (t StockTransactionType) String() string {
	return string(t)
}

func (t StockTransactionType) Validate() error {
	switch t {
	case StockTransactionAdd, StockTransactionRemove, StockTransactionAdjustment:
		return nil
	default:
		return fmt.Errorf("%w: unknown stock transaction type %q", ErrInvalidArgument, t)
	}
}

type StockItem struct {
	ID                uuid.UUID
	ItemName          string
	Quantity          int
	Unit              string
	UnitPrice         decimal.Decimal
	LowStockThreshold int
	GSTPercentage     decimal.Decimal
	Notes             string
	LastUpdatedBy     uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// BelowThreshold reports whether the item has fallen to or under its reorder
// threshold. Items with no threshold never alert.
func (s *StockItem) BelowThreshold() bool {
	if s.LowStockThreshold <= 0 {
		return false
	}

	return s.Quantity <= s.LowStockThreshold
}

// Adjust applies a stock movement and returns the audit row recording it.
// A remove that would drive quantity negative is rejected; an adjustment is
// a signed correction and is applied unconditionally.
func (s *StockItem) Adjust(txType StockTransactionType, change int, notes string, by uuid.UUID) (StockTransaction, error) {
	if err := txType.Validate(); err != nil {
		return StockTransaction{}, err
	}

	previous := s.Quantity

	var next int

	switch txType {
	case StockTransactionAdd:
		if change <= 0 {
			return StockTransaction{}, fmt.Errorf("%w: add quantity %d must be positive", ErrInvalidArgument, change)
		}

		next = previous + change
	case StockTransactionRemove:
		if change <= 0 {
			return StockTransaction{}, fmt.Errorf("%w: remove quantity %d must be positive", ErrInvalidArgument, change)
		}

		next = previous - change
		if next < 0 {
			return StockTransaction{}, fmt.Errorf("%w: item %q has %d, cannot remove %d",
				ErrInsufficientStock, s.ItemName, previous, change)
		}
	case StockTransactionAdjustment:
		next = previous + change
	}

	s.Quantity = next
	s.LastUpdatedBy = by

	return StockTransaction{
		StockItemID:      s.ID,
		Type:             txType,
		QuantityChange:   change,
		PreviousQuantity: previous,
		NewQuantity:      next,
		Notes:            notes,
		CreatedBy:        by,
	}, nil
}

// StockTransaction is an immutable audit row. Rows are only ever inserted.
type StockTransaction struct {
	ID               uuid.UUID
	StockItemID      uuid.UUID
	Type             StockTransactionType
	QuantityChange   int
	PreviousQuantity int
	NewQuantity      int
	Notes            string
	CreatedBy        uuid.UUID
	CreatedAt        time.Time
}

type StockFilter struct {
	LowOnly bool
	Limit   uint64
	Offset  uint64
}
