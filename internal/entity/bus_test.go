package entity_test

import (
	"testing"
	"time"

	"github.com/busmanager/backend/internal/entity"
)

func TestBus_TaxDueWithin(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	window := 7 * 24 * time.Hour

	date := func(d int) *time.Time {
		dt := now.AddDate(0, 0, d)
		return &dt
	}

	for _, tt := range []struct {
		name string
		due  *time.Time
		want bool
	}{
		{name: "due inside window", due: date(3), want: true},
		{name: "due today", due: &now, want: true},
		{name: "already overdue", due: date(-2), want: true},
		{name: "due after window", due: date(10), want: false},
		{name: "no due date recorded", due: nil, want: false},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := entity.Bus{NextTaxDueDate: tt.due}

			if got := b.TaxDueWithin(window, now); got != tt.want {
				t.Errorf("TaxDueWithin() = %v, want %v", got, tt.want)
			}
		})
	}
}
