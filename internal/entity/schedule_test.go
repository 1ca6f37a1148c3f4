package entity_test

import (
	"testing"
	"time"

	"github.com/busmanager/backend/internal/entity"
)

func TestSchedule_RunsOn(t *testing.T) {
	t.Parallel()

	// 2026-01-05 is a Monday.
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	for _, tt := range []struct {
		name string
		days []string
		day  time.Time
		want bool
	}{
		{name: "matching day", days: []string{"monday", "wednesday"}, day: monday, want: true},
		{name: "non-matching day", days: []string{"tuesday", "thursday"}, day: monday, want: false},
		{name: "case insensitive", days: []string{"Monday"}, day: monday, want: true},
		{name: "weekend schedule", days: []string{"saturday", "sunday"}, day: monday.AddDate(0, 0, 5), want: true},
		{name: "empty days", days: nil, day: monday, want: false},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := entity.Schedule{DaysOfWeek: tt.days}

			if got := s.RunsOn(tt.day); got != tt.want {
				t.Errorf("RunsOn(%v) = %v, want %v", tt.day.Weekday(), got, tt.want)
			}
		})
	}
}
