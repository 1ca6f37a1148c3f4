package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/busmanager/backend/internal/entity"
)

func TestTrip_TotalRevenue(t *testing.T) {
	t.Parallel()

	trip := entity.Trip{
		RevenueCash:   decimal.NewFromInt(1000),
		RevenueOnline: decimal.NewFromInt(500),
		RevenuePaytm:  decimal.NewFromFloat(250.50),
		RevenueOthers: decimal.NewFromInt(100),
		RevenueAgent:  decimal.NewFromInt(149),
	}

	if got := trip.TotalRevenue(); got.InexactFloat64() != 1999.50 {
		t.Errorf("TotalRevenue() = %v, want 1999.50", got)
	}
}

func TestTrip_DistanceTraveled(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name  string
		start float64
		end   float64
		want  float64
	}{
		{name: "normal leg", start: 45210, end: 45530, want: 320},
		{name: "missing end reading", start: 45210, end: 0, want: 0},
		{name: "missing start reading", start: 0, end: 45530, want: 0},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			trip := entity.Trip{
				OdometerStart: decimal.NewFromFloat(tt.start),
				OdometerEnd:   decimal.NewFromFloat(tt.end),
			}

			if got := trip.DistanceTraveled(); got.InexactFloat64() != tt.want {
				t.Errorf("DistanceTraveled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrip_DistanceReturn(t *testing.T) {
	t.Parallel()

	trip := entity.Trip{
		OdometerReturnStart: decimal.NewFromInt(45530),
		OdometerReturnEnd:   decimal.NewFromInt(45850),
	}

	if got := trip.DistanceReturn(); got.InexactFloat64() != 320 {
		t.Errorf("DistanceReturn() = %v, want 320", got)
	}
}
