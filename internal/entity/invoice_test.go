package entity_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/busmanager/backend/internal/entity"
)

func TestLineItem_Calculate(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name        string
		quantity    float64
		unitPrice   float64
		gstPercent  float64
		includesGST bool
		wantBase    float64
		wantGST     float64
		wantAmount  float64
	}{
		{
			name:       "gst on top",
			quantity:   2,
			unitPrice:  100,
			gstPercent: 18,
			wantBase:   200,
			wantGST:    36,
			wantAmount: 236,
		},
		{
			name:        "rate includes gst",
			quantity:    1,
			unitPrice:   118,
			gstPercent:  18,
			includesGST: true,
			wantBase:    100,
			wantGST:     18,
			wantAmount:  118,
		},
		{
			name:       "zero gst",
			quantity:   3,
			unitPrice:  50.50,
			gstPercent: 0,
			wantBase:   151.50,
			wantGST:    0,
			wantAmount: 151.50,
		},
		{
			name:       "fractional quantity",
			quantity:   2.5,
			unitPrice:  99.99,
			gstPercent: 5,
			wantBase:   249.98,
			wantGST:    12.50,
			wantAmount: 262.47,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			li := entity.LineItem{
				Quantity:        decimal.NewFromFloat(tt.quantity),
				UnitPrice:       decimal.NewFromFloat(tt.unitPrice),
				GSTPercentage:   decimal.NewFromFloat(tt.gstPercent),
				RateIncludesGST: tt.includesGST,
			}

			li.Calculate()

			if li.BaseAmount.InexactFloat64() != tt.wantBase {
				t.Errorf("BaseAmount = %v, want %v", li.BaseAmount, tt.wantBase)
			}

			if li.GSTAmount.InexactFloat64() != tt.wantGST {
				t.Errorf("GSTAmount = %v, want %v", li.GSTAmount, tt.wantGST)
			}

			if li.Amount.InexactFloat64() != tt.wantAmount {
				t.Errorf("Amount = %v, want %v", li.Amount, tt.wantAmount)
			}
		})
	}
}

func TestInvoice_ApplyLineItems(t *testing.T) {
	t.Parallel()

	inv := entity.Invoice{
		Status: entity.InvoiceStatusDraft,
		LineItems: []entity.LineItem{
			{
				Description:   "ticket sales",
				Quantity:      decimal.NewFromInt(2),
				UnitPrice:     decimal.NewFromInt(100),
				GSTPercentage: decimal.NewFromInt(18),
			},
			{
				Description:   "agent commission",
				Quantity:      decimal.NewFromInt(1),
				UnitPrice:     decimal.NewFromInt(50),
				GSTPercentage: decimal.NewFromInt(18),
				IsDeduction:   true,
			},
		},
	}

	inv.ApplyLineItems()

	if inv.Subtotal.InexactFloat64() != 150 {
		t.Errorf("Subtotal = %v, want 150", inv.Subtotal)
	}

	if inv.GSTAmount.InexactFloat64() != 27 {
		t.Errorf("GSTAmount = %v, want 27", inv.GSTAmount)
	}

	if inv.TotalAmount.InexactFloat64() != 177 {
		t.Errorf("TotalAmount = %v, want 177", inv.TotalAmount)
	}

	if !inv.BalanceDue.Equal(inv.TotalAmount) {
		t.Errorf("BalanceDue = %v, want %v", inv.BalanceDue, inv.TotalAmount)
	}

	if !inv.AmountPaid.IsZero() {
		t.Errorf("AmountPaid = %v, want 0", inv.AmountPaid)
	}
}

func TestInvoice_ApplyPayment(t *testing.T) {
	t.Parallel()

	t.Run("partial then paid", func(t *testing.T) {
		t.Parallel()

		inv := entity.Invoice{
			Status:      entity.InvoiceStatusSent,
			TotalAmount: decimal.NewFromInt(236),
			BalanceDue:  decimal.NewFromInt(236),
		}

		err := inv.ApplyPayment(decimal.NewFromInt(100))
		if err != nil {
			t.Fatalf("ApplyPayment() error = %v", err)
		}

		if inv.Status != entity.InvoiceStatusPartial {
			t.Errorf("Status = %v, want partial", inv.Status)
		}

		if inv.BalanceDue.InexactFloat64() != 136 {
			t.Errorf("BalanceDue = %v, want 136", inv.BalanceDue)
		}

		err = inv.ApplyPayment(decimal.NewFromInt(136))
		if err != nil {
			t.Fatalf("ApplyPayment() error = %v", err)
		}

		if inv.Status != entity.InvoiceStatusPaid {
			t.Errorf("Status = %v, want paid", inv.Status)
		}

		if !inv.BalanceDue.IsZero() {
			t.Errorf("BalanceDue = %v, want 0", inv.BalanceDue)
		}
	})

	t.Run("overpayment leaves negative balance", func(t *testing.T) {
		t.Parallel()

		inv := entity.Invoice{
			Status:      entity.InvoiceStatusSent,
			TotalAmount: decimal.NewFromInt(100),
			BalanceDue:  decimal.NewFromInt(100),
		}

		err := inv.ApplyPayment(decimal.NewFromInt(150))
		if err != nil {
			t.Fatalf("ApplyPayment() error = %v", err)
		}

		if inv.Status != entity.InvoiceStatusPaid {
			t.Errorf("Status = %v, want paid", inv.Status)
		}

		if inv.BalanceDue.InexactFloat64() != -50 {
			t.Errorf("BalanceDue = %v, want -50", inv.BalanceDue)
		}
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		t.Parallel()

		inv := entity.Invoice{
			Status:      entity.InvoiceStatusSent,
			TotalAmount: decimal.NewFromInt(100),
		}

		err := inv.ApplyPayment(decimal.Zero)
		if !errors.Is(err, entity.ErrInvalidArgument) {
			t.Errorf("ApplyPayment(0) error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("rejects payment on cancelled invoice", func(t *testing.T) {
		t.Parallel()

		inv := entity.Invoice{
			Status:      entity.InvoiceStatusCancelled,
			TotalAmount: decimal.NewFromInt(100),
		}

		err := inv.ApplyPayment(decimal.NewFromInt(50))
		if !errors.Is(err, entity.ErrInvalidTransition) {
			t.Errorf("ApplyPayment() error = %v, want ErrInvalidTransition", err)
		}
	})
}

func TestInvoice_SetStatus(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name    string
		from    entity.InvoiceStatus
		to      entity.InvoiceStatus
		wantErr bool
	}{
		{name: "draft to sent", from: entity.InvoiceStatusDraft, to: entity.InvoiceStatusSent},
		{name: "sent to overdue", from: entity.InvoiceStatusSent, to: entity.InvoiceStatusOverdue},
		{name: "overdue to paid", from: entity.InvoiceStatusOverdue, to: entity.InvoiceStatusPaid},
		{name: "same status", from: entity.InvoiceStatusSent, to: entity.InvoiceStatusSent},
		{name: "paid is terminal", from: entity.InvoiceStatusPaid, to: entity.InvoiceStatusSent, wantErr: true},
		{name: "cancelled is terminal", from: entity.InvoiceStatusCancelled, to: entity.InvoiceStatusDraft, wantErr: true},
		{name: "draft cannot go overdue", from: entity.InvoiceStatusDraft, to: entity.InvoiceStatusOverdue, wantErr: true},
		{name: "unknown status", from: entity.InvoiceStatusDraft, to: entity.InvoiceStatus("bogus"), wantErr: true},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inv := entity.Invoice{Status: tt.from}

			err := inv.SetStatus(tt.to)
			if (err != nil) != tt.wantErr {
				t.Errorf("SetStatus(%v) error = %v, wantErr %v", tt.to, err, tt.wantErr)
			}

			if err == nil && inv.Status != tt.to {
				t.Errorf("Status = %v, want %v", inv.Status, tt.to)
			}
		})
	}
}
