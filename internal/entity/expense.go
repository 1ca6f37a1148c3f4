package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type ExpenseStatus string

const (
	ExpenseStatusPending  ExpenseStatus = "pending"
	ExpenseStatusApproved ExpenseStatus = "approved"
	ExpenseStatusDenied   ExpenseStatus = "denied"
)

func (s ExpenseStatus) String() string {
	return string(s)
}

func (s ExpenseStatus) Validate() error {
	switch s {
	case ExpenseStatusPending, ExpenseStatusApproved, ExpenseStatusDenied:
		return nil
	default:
		return fmt.Errorf("%w: unknown expense status %q", ErrInvalidArgument, s)
	}
}

type ExpenseCategory struct {
	ID          uuid.UUID
	Name        string
	Description string
	Icon        string
	CreatedAt   time.Time
}

type Expense struct {
	ID           uuid.UUID
	TripID       uuid.UUID
	CategoryID   uuid.UUID
	SubmittedBy  uuid.UUID
	Amount       decimal.Decimal
	ExpenseDate  time.Time
	Description  string
	DocumentURL  string
	FuelQuantity decimal.Decimal
	Status       ExpenseStatus
	AdminRemarks string
	ApprovedBy   uuid.UUID
	ApprovedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Review moves a pending expense to approved or denied. Decided expenses
// cannot be re-reviewed.
func (e *Expense) Review(status ExpenseStatus, remarks string, reviewer uuid.UUID, at time.Time) error {
	if status != ExpenseStatusApproved && status != ExpenseStatusDenied {
		return fmt.Errorf("%w: review status must be approved or denied, got %q", ErrInvalidArgument, status)
	}

	if e.Status != ExpenseStatusPending {
		return fmt.Errorf("%w: expense already %s", ErrInvalidTransition, e.Status)
	}

	e.Status = status
	e.AdminRemarks = remarks
	e.ApprovedBy = reviewer
	e.ApprovedAt = &at

	return nil
}

type ExpenseFilter struct {
	Status      *ExpenseStatus
	TripID      *uuid.UUID
	SubmittedBy *uuid.UUID
	CategoryID  *uuid.UUID
	FromDate    *time.Time
	ToDate      *time.Time
	Limit       uint64
	Offset      uint64
}
