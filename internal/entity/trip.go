package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type TripStatus string

const (
	TripStatusScheduled  TripStatus = "scheduled"
	TripStatusInProgress TripStatus = "in_progress"
	TripStatusCompleted  TripStatus = "completed"
	TripStatusCancelled  TripStatus = "cancelled"
)

func (s TripStatus) String() string {
	return string(s)
}

func (s TripStatus) Validate() error {
	switch s {
	case TripStatusScheduled, TripStatusInProgress, TripStatusCompleted, TripStatusCancelled:
		return nil
	default:
		return fmt.Errorf("%w: unknown trip status %q", ErrInvalidArgument, s)
	}
}

type Trip struct {
	ID         uuid.UUID
	TripNumber string
	BusID      uuid.UUID
	DriverID   uuid.UUID
	RouteID    uuid.UUID
	ScheduleID uuid.UUID
	StartDate  time.Time
	EndDate    *time.Time
	TripDate   *time.Time
	Status     TripStatus
	TripType   string
	Notes      string

	// Snapshots taken at creation so reports survive later renames.
	BusNameSnapshot    string
	DriverNameSnapshot string

	DepartureTime string
	ArrivalTime   string
	OdometerStart decimal.Decimal
	OdometerEnd   decimal.Decimal
	RevenueCash   decimal.Decimal
	RevenueOnline decimal.Decimal
	RevenuePaytm  decimal.Decimal
	RevenueOthers decimal.Decimal
	RevenueAgent  decimal.Decimal
	TotalExpense  decimal.Decimal
	GSTPercentage decimal.Decimal
	WaterTaken    int

	ReturnDepartureTime string
	ReturnArrivalTime   string
	OdometerReturnStart decimal.Decimal
	OdometerReturnEnd   decimal.Decimal
	ReturnRevenueCash   decimal.Decimal
	ReturnRevenueOnline decimal.Decimal
	ReturnRevenuePaytm  decimal.Decimal
	ReturnRevenueOthers decimal.Decimal
	ReturnRevenueAgent  decimal.Decimal
	ReturnTotalRevenue  decimal.Decimal
	ReturnTotalExpense  decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalRevenue sums the onward leg revenue channels.
func (t *Trip) TotalRevenue() decimal.Decimal {
	return t.RevenueCash.
		Add(t.RevenueOnline).
		Add(t.RevenuePaytm).
		Add(t.RevenueOthers).
		Add(t.RevenueAgent)
}

// DistanceTraveled returns the onward leg odometer delta, or zero when either
// reading is missing.
func (t *Trip) DistanceTraveled() decimal.Decimal {
	if t.OdometerEnd.Sign() == 0 || t.OdometerStart.Sign() == 0 {
		return decimal.Zero
	}

	return t.OdometerEnd.Sub(t.OdometerStart)
}

// DistanceReturn returns the return leg odometer delta, or zero when either
// reading is missing.
func (t *Trip) DistanceReturn() decimal.Decimal {
	if t.OdometerReturnEnd.Sign() == 0 || t.OdometerReturnStart.Sign() == 0 {
		return decimal.Zero
	}

	return t.OdometerReturnEnd.Sub(t.OdometerReturnStart)
}

type TripFilter struct {
	Status   *TripStatus
	BusID    *uuid.UUID
	DriverID *uuid.UUID
	FromDate *time.Time
	ToDate   *time.Time
	Limit    uint64
	Offset   uint64
}
