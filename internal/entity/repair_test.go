package entity_test

import (
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/busmanager/backend/internal/entity"
)

func TestRepairRecord_CostBreakdown(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name      string
		parts     float64
		labor     float64
		gstApplic bool
		gstPct    float64
		wantCost  float64
		wantGST   float64
		wantTotal float64
	}{
		{
			name:      "with gst",
			parts:     1000,
			labor:     500,
			gstApplic: true,
			gstPct:    18,
			wantCost:  1500,
			wantGST:   270,
			wantTotal: 1770,
		},
		{
			name:      "gst not applicable",
			parts:     1000,
			labor:     500,
			gstPct:    18,
			wantCost:  1500,
			wantGST:   0,
			wantTotal: 1500,
		},
		{
			name:      "labor only",
			labor:     350.75,
			gstApplic: true,
			gstPct:    5,
			wantCost:  350.75,
			wantGST:   17.54,
			wantTotal: 368.29,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := entity.RepairRecord{
				PartsCost:     decimal.NewFromFloat(tt.parts),
				LaborCost:     decimal.NewFromFloat(tt.labor),
				GSTApplicable: tt.gstApplic,
				GSTPercentage: decimal.NewFromFloat(tt.gstPct),
			}

			cost, gst, total := rec.CostBreakdown()

			if cost.InexactFloat64() != tt.wantCost {
				t.Errorf("cost = %v, want %v", cost, tt.wantCost)
			}

			if gst.InexactFloat64() != tt.wantGST {
				t.Errorf("gst = %v, want %v", gst, tt.wantGST)
			}

			if total.InexactFloat64() != tt.wantTotal {
				t.Errorf("total = %v, want %v", total, tt.wantTotal)
			}
		})
	}
}

func TestRepairRecord_Review(t *testing.T) {
	t.Parallel()

	reviewer := uuid.Must(uuid.NewV4())
	now := time.Now()

	t.Run("approve submitted record", func(t *testing.T) {
		t.Parallel()

		rec := entity.RepairRecord{Status: entity.RepairStatusSubmitted}

		err := rec.Review(entity.RepairStatusApproved, reviewer, now)
		if err != nil {
			t.Fatalf("Review() error = %v", err)
		}

		if rec.Status != entity.RepairStatusApproved {
			t.Errorf("Status = %v, want approved", rec.Status)
		}

		if rec.ApprovedBy != reviewer || rec.ApprovedAt == nil {
			t.Errorf("reviewer not recorded: by=%v at=%v", rec.ApprovedBy, rec.ApprovedAt)
		}
	})

	t.Run("cannot re-review", func(t *testing.T) {
		t.Parallel()

		rec := entity.RepairRecord{Status: entity.RepairStatusRejected}

		err := rec.Review(entity.RepairStatusApproved, reviewer, now)
		if !errors.Is(err, entity.ErrInvalidTransition) {
			t.Errorf("Review() error = %v, want ErrInvalidTransition", err)
		}
	})

	t.Run("submitted is not a review outcome", func(t *testing.T) {
		t.Parallel()

		rec := entity.RepairRecord{Status: entity.RepairStatusSubmitted}

		err := rec.Review(entity.RepairStatusSubmitted, reviewer, now)
		if !errors.Is(err, entity.ErrInvalidArgument) {
			t.Errorf("Review() error = %v, want ErrInvalidArgument", err)
		}
	})
}

func TestRepairRecord_Editable(t *testing.T) {
	t.Parallel()

	for status, want := range map[entity.RepairStatus]bool{
		entity.RepairStatusSubmitted: true,
		entity.RepairStatusApproved:  false,
		entity.RepairStatusRejected:  false,
	} {
		rec := entity.RepairRecord{Status: status}

		if got := rec.Editable(); got != want {
			t.Errorf("Editable() with %s = %v, want %v", status, got, want)
		}
	}
}
