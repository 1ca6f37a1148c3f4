package entity

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Schedule struct {
	ID                  uuid.UUID
	BusID               uuid.UUID
	RouteID             uuid.UUID
	DriverID            uuid.UUID
	DaysOfWeek          []string
	DepartureTime       string
	ArrivalTime         string
	IsTwoWay            bool
	ReturnDepartureTime string
	ReturnArrivalTime   string
	IsActive            bool
	Notes               string
	IsOvernight         bool
	ArrivalNextDay      bool
	TurnaroundHours     decimal.Decimal
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// RunsOn reports whether the schedule operates on the given date. Day names
// are stored lowercase ("monday".."sunday"); matching is case-insensitive.
func (s *Schedule) RunsOn(day time.Time) bool {
	name := strings.ToLower(day.Weekday().String())

	for _, d := range s.DaysOfWeek {
		if strings.ToLower(d) == name {
			return true
		}
	}

	return false
}

type ScheduleFilter struct {
	BusID      *uuid.UUID
	RouteID    *uuid.UUID
	ActiveOnly bool
	Limit      uint64
	Offset     uint64
}
