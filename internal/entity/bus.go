package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type BusStatus string

const (
	BusStatusActive      BusStatus = "active"
	BusStatusMaintenance BusStatus = "maintenance"
	BusStatusInactive    BusStatus = "inactive"
)

func (s BusStatus) String() string {
	return string(s)
}

func (s BusStatus) Validate() error {
	switch s {
	case BusStatusActive, BusStatusMaintenance, BusStatusInactive:
		return nil
	default:
		return fmt.Errorf("%w: unknown bus status %q", ErrInvalidArgument, s)
	}
}

type OwnershipType string

const (
	OwnershipOwned       OwnershipType = "owned"
	OwnershipPartnership OwnershipType = "partnership"
)

func (o OwnershipType) String() string {
	return string(o)
}

func (o OwnershipType) Validate() error {
	switch o {
	case OwnershipOwned, OwnershipPartnership:
		return nil
	default:
		return fmt.Errorf("%w: unknown ownership type %q", ErrInvalidArgument, o)
	}
}

type TaxStatus string

const (
	TaxStatusPending TaxStatus = "pending"
	TaxStatusPaid    TaxStatus = "paid"
	TaxStatusOverdue TaxStatus = "overdue"
)

func (s TaxStatus) String() string {
	return string(s)
}

func (s TaxStatus) Validate() error {
	switch s {
	case TaxStatusPending, TaxStatusPaid, TaxStatusOverdue:
		return nil
	default:
		return fmt.Errorf("%w: unknown tax status %q", ErrInvalidArgument, s)
	}
}

type Bus struct {
	ID                 uuid.UUID
	RegistrationNumber string
	BusName            string
	Capacity           int
	BusType            string
	Status             BusStatus
	InsuranceExpiry    *time.Time
	PUCExpiry          *time.Time
	FitnessExpiry      *time.Time
	OwnershipType      OwnershipType
	PartnerName        string
	CompanyProfitShare decimal.Decimal
	PartnerProfitShare decimal.Decimal
	HomeStateID        uuid.UUID
	MonthlyTaxAmount   decimal.Decimal
	TaxDueDay          int
	LastTaxPaidDate    *time.Time
	NextTaxDueDate     *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TaxDueWithin reports whether the bus tax falls due inside the window.
// Buses that never recorded a due date do not alert.
func (b *Bus) TaxDueWithin(window time.Duration, now time.Time) bool {
	if b.NextTaxDueDate == nil {
		return false
	}

	return !b.NextTaxDueDate.After(now.Add(window))
}

type BusTaxRecord struct {
	ID               uuid.UUID
	BusID            uuid.UUID
	TaxPeriodStart   time.Time
	TaxPeriodEnd     time.Time
	DueDate          time.Time
	Amount           decimal.Decimal
	Status           TaxStatus
	PaidDate         *time.Time
	PaymentReference string
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type BusFilter struct {
	Status    *BusStatus
	Ownership *OwnershipType
	Limit     uint64
	Offset    uint64
}
