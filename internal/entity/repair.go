package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type RepairStatus string

const (
	RepairStatusSubmitted RepairStatus = "submitted"
	RepairStatusApproved  RepairStatus = "approved"
	RepairStatusRejected  RepairStatus = "rejected"
)

func (s RepairStatus) String() string {
	return string(s)
}

func (s RepairStatus) Validate() error {
	switch s {
	case RepairStatusSubmitted, RepairStatusApproved, RepairStatusRejected:
		return nil
	default:
		return fmt.Errorf("%w: unknown repair status %q", ErrInvalidArgument, s)
	}
}

type RepairOrganization struct {
	ID            uuid.UUID
	OrgCode       string
	OrgName       string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type RepairRecord struct {
	ID              uuid.UUID
	RepairNumber    string
	OrganizationID  uuid.UUID
	BusID           uuid.UUID
	BusRegistration string
	RepairDate      time.Time
	RepairType      string
	Description     string
	PartsChanged    string
	PartsCost       decimal.Decimal
	LaborCost       decimal.Decimal
	GSTApplicable   bool
	GSTPercentage   decimal.Decimal
	WarrantyDays    int
	Status          RepairStatus
	Notes           string
	PhotoBeforeURL  string
	PhotoAfterURL   string
	SubmittedBy     uuid.UUID
	ApprovedBy      uuid.UUID
	ApprovedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CostBreakdown returns the pre-tax cost, GST amount and grand total. GST is
// applied on parts plus labor when applicable.
func (r *RepairRecord) CostBreakdown() (cost, gst, total decimal.Decimal) {
	cost = r.PartsCost.Add(r.LaborCost)

	if r.GSTApplicable {
		gst = cost.Mul(r.GSTPercentage).Div(decimal.New(100, 0)).Round(2)
	}

	return cost, gst, cost.Add(gst)
}

// Editable reports whether the record still accepts changes from the
// submitting organization. Approved and rejected records are frozen.
func (r *RepairRecord) Editable() bool {
	return r.Status == RepairStatusSubmitted
}

// Review moves a submitted record to approved or rejected.
func (r *RepairRecord) Review(status RepairStatus, reviewer uuid.UUID, at time.Time) error {
	if status != RepairStatusApproved && status != RepairStatusRejected {
		return fmt.Errorf("%w: review status must be approved or rejected, got %q", ErrInvalidArgument, status)
	}

	if r.Status != RepairStatusSubmitted {
		return fmt.Errorf("%w: repair record already %s", ErrInvalidTransition, r.Status)
	}

	r.Status = status
	r.ApprovedBy = reviewer
	r.ApprovedAt = &at

	return nil
}

type RepairFilter struct {
	Status         *RepairStatus
	OrganizationID *uuid.UUID
	BusID          *uuid.UUID
	FromDate       *time.Time
	ToDate         *time.Time
	Limit          uint64
	Offset         uint64
}
