package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/busmanager/backend/internal/entity"
	"github.com/busmanager/backend/internal/repository"
)

func testInvoice(number string) entity.Invoice {
	inv := entity.Invoice{
		InvoiceNumber: number,
		InvoiceDate:   time.Now(),
		InvoiceType:   entity.InvoiceTypeCustomer,
		Direction:     entity.InvoiceDirectionSales,
		Category:      "general",
		CustomerName:  "Sharma Travels",
		Status:        entity.InvoiceStatusSent,
		LineItems: []entity.LineItem{
			{
				Description:   "charter hire",
				Quantity:      decimal.NewFromInt(2),
				UnitPrice:     decimal.NewFromInt(100),
				GSTPercentage: decimal.NewFromInt(18),
			},
		},
	}

	inv.ApplyLineItems()

	return inv
}

func TestInvoiceRepository_CreateAndGet(t *testing.T) {
	db := repository.SetupTestDatabase(t)
	repo := repository.NewInvoiceRepository(db)
	ctx := context.Background()

	inv, err := repo.CreateInvoice(ctx, testInvoice("INV-CG-1"))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, inv.ID)

	got, err := repo.Invoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, "INV-CG-1", got.InvoiceNumber)
	require.Len(t, got.LineItems, 1)
	require.True(t, got.TotalAmount.Equal(decimal.NewFromInt(236)), "TotalAmount = %s", got.TotalAmount)
	require.True(t, got.BalanceDue.Equal(decimal.NewFromInt(236)), "BalanceDue = %s", got.BalanceDue)
}

func TestInvoiceRepository_DuplicateNumber(t *testing.T) {
	db := repository.SetupTestDatabase(t)
	repo := repository.NewInvoiceRepository(db)
	ctx := context.Background()

	_, err := repo.CreateInvoice(ctx, testInvoice("INV-DUP-1"))
	require.NoError(t, err)

	_, err = repo.CreateInvoice(ctx, testInvoice("INV-DUP-1"))
	require.ErrorIs(t, err, entity.ErrDuplicate)
}

func TestInvoiceRepository_AddPayment(t *testing.T) {
	db := repository.SetupTestDatabase(t)
	repo := repository.NewInvoiceRepository(db)
	ctx := context.Background()

	inv, err := repo.CreateInvoice(ctx, testInvoice("INV-PAY-1"))
	require.NoError(t, err)

	inv, p, err := repo.AddPayment(ctx, entity.Payment{
		InvoiceID:   inv.ID,
		Amount:      decimal.NewFromInt(100),
		PaymentDate: time.Now(),
		PaymentMode: "cash",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, p.ID)
	require.Equal(t, entity.InvoiceStatusPartial, inv.Status)
	require.True(t, inv.BalanceDue.Equal(decimal.NewFromInt(136)), "BalanceDue = %s", inv.BalanceDue)

	inv, _, err = repo.AddPayment(ctx, entity.Payment{
		InvoiceID:   inv.ID,
		Amount:      decimal.NewFromInt(136),
		PaymentDate: time.Now(),
		PaymentMode: "upi",
	})
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusPaid, inv.Status)
	require.True(t, inv.BalanceDue.IsZero(), "BalanceDue = %s", inv.BalanceDue)

	got, err := repo.Invoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Len(t, got.Payments, 2)
	require.Equal(t, entity.InvoiceStatusPaid, got.Status)
}

func TestInvoiceRepository_AddPayment_CancelledInvoice(t *testing.T) {
	db := repository.SetupTestDatabase(t)
	repo := repository.NewInvoiceRepository(db)
	ctx := context.Background()

	inv := testInvoice("INV-CANC-1")
	inv.Status = entity.InvoiceStatusCancelled

	inv, err := repo.CreateInvoice(ctx, inv)
	require.NoError(t, err)

	_, _, err = repo.AddPayment(ctx, entity.Payment{
		InvoiceID:   inv.ID,
		Amount:      decimal.NewFromInt(50),
		PaymentDate: time.Now(),
	})
	require.ErrorIs(t, err, entity.ErrInvalidTransition)

	// The failed payment leaves no rows behind.
	got, err := repo.Invoice(ctx, inv.ID)
	require.NoError(t, err)
	require.Empty(t, got.Payments)
	require.True(t, got.AmountPaid.IsZero())
}

func TestInvoiceRepository_MarkOverdue(t *testing.T) {
	db := repository.SetupTestDatabase(t)
	repo := repository.NewInvoiceRepository(db)
	ctx := context.Background()

	yesterday := time.Now().AddDate(0, 0, -1)
	tomorrow := time.Now().AddDate(0, 0, 1)

	pastDue := testInvoice("INV-OD-1")
	pastDue.DueDate = &yesterday

	notYetDue := testInvoice("INV-OD-2")
	notYetDue.DueDate = &tomorrow

	draft := testInvoice("INV-OD-3")
	draft.Status = entity.InvoiceStatusDraft
	draft.DueDate = &yesterday

	for _, inv := range []entity.Invoice{pastDue, notYetDue, draft} {
		_, err := repo.CreateInvoice(ctx, inv)
		require.NoError(t, err)
	}

	numbers, err := repo.MarkOverdue(ctx, time.Now())
	require.NoError(t, err)
	require.Equal(t, []string{"INV-OD-1"}, numbers)
}

func TestInvoiceRepository_NotFound(t *testing.T) {
	db := repository.SetupTestDatabase(t)
	repo := repository.NewInvoiceRepository(db)

	_, err := repo.Invoice(context.Background(), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrNotFound)
}
