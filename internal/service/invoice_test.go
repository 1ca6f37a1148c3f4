package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/busmanager/backend/internal/entity"
	"github.com/busmanager/backend/internal/mocks"
	"github.com/busmanager/backend/internal/service"
)

func TestInvoiceService_CreateInvoice(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockInvoiceRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	ctx := adminCtx(uuid.Must(uuid.NewV4()))

	repo.EXPECT().CreateInvoice(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, inv entity.Invoice) (entity.Invoice, error) {
			// Totals are recomputed from line items on the way in.
			require.Equal(t, "200", inv.Subtotal.String())
			require.Equal(t, "36", inv.GSTAmount.String())
			require.Equal(t, "236", inv.TotalAmount.String())
			require.Equal(t, entity.InvoiceStatusDraft, inv.Status)
			require.False(t, inv.InvoiceDate.IsZero())

			inv.ID = uuid.Must(uuid.NewV4())
			return inv, nil
		})
	producer.EXPECT().PublishEvent(ctx, "invoice.created", gomock.Any(), gomock.Any())

	s := service.NewInvoiceService(repo, producer)

	inv, err := s.CreateInvoice(ctx, entity.Invoice{
		InvoiceNumber: "INV-2026-001",
		InvoiceType:   entity.InvoiceTypeCustomer,
		Direction:     entity.InvoiceDirectionSales,
		// Client-supplied totals are ignored.
		TotalAmount: decimal.NewFromInt(999999),
		LineItems: []entity.LineItem{
			{
				Description:   "charter hire",
				Quantity:      decimal.NewFromInt(2),
				UnitPrice:     decimal.NewFromInt(100),
				GSTPercentage: decimal.NewFromInt(18),
			},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "236", inv.TotalAmount.String())
}

func TestInvoiceService_CreateInvoice_Validation(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockInvoiceRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	ctx := adminCtx(uuid.Must(uuid.NewV4()))
	s := service.NewInvoiceService(repo, producer)

	lineItem := entity.LineItem{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(10)}

	for _, tt := range []struct {
		name string
		inv  entity.Invoice
	}{
		{
			name: "missing number",
			inv: entity.Invoice{
				InvoiceType: entity.InvoiceTypeCustomer,
				Direction:   entity.InvoiceDirectionSales,
				LineItems:   []entity.LineItem{lineItem},
			},
		},
		{
			name: "unknown type",
			inv: entity.Invoice{
				InvoiceNumber: "INV-1",
				InvoiceType:   entity.InvoiceType("bogus"),
				Direction:     entity.InvoiceDirectionSales,
				LineItems:     []entity.LineItem{lineItem},
			},
		},
		{
			name: "no line items",
			inv: entity.Invoice{
				InvoiceNumber: "INV-1",
				InvoiceType:   entity.InvoiceTypeCustomer,
				Direction:     entity.InvoiceDirectionSales,
			},
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := s.CreateInvoice(ctx, tt.inv)
			require.ErrorIs(t, err, entity.ErrInvalidArgument)
		})
	}
}

func TestInvoiceService_AddPayment(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockInvoiceRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	adminID := uuid.Must(uuid.NewV4())
	ctx := adminCtx(adminID)
	invoiceID := uuid.Must(uuid.NewV4())

	repo.EXPECT().AddPayment(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, p entity.Payment) (entity.Invoice, entity.Payment, error) {
			require.Equal(t, adminID, p.CreatedBy)
			require.False(t, p.PaymentDate.IsZero())

			return entity.Invoice{
				ID:            invoiceID,
				InvoiceNumber: "INV-1",
				Status:        entity.InvoiceStatusPaid,
				AmountPaid:    p.Amount,
			}, p, nil
		})
	producer.EXPECT().PublishEvent(ctx, "invoice.payment_added", invoiceID.String(), gomock.Any())

	s := service.NewInvoiceService(repo, producer)

	inv, err := s.AddPayment(ctx, entity.Payment{
		InvoiceID: invoiceID,
		Amount:    decimal.NewFromInt(236),
	})
	require.NoError(t, err)
	require.Equal(t, entity.InvoiceStatusPaid, inv.Status)
}

func TestInvoiceService_UpdateInvoice(t *testing.T) {
	t.Parallel()

	invoiceID := uuid.Must(uuid.NewV4())
	stored := entity.Invoice{
		ID:            invoiceID,
		InvoiceNumber: "INV-1",
		InvoiceType:   entity.InvoiceTypeCharter,
		Status:        entity.InvoiceStatusSent,
	}

	for _, tt := range []struct {
		name       string
		update     entity.Invoice
		wantStatus entity.InvoiceStatus
		wantType   entity.InvoiceType
		wantErr    error
	}{
		{
			name:       "omitted enums keep stored values",
			update:     entity.Invoice{ID: invoiceID, CustomerName: "Acme Travels"},
			wantStatus: entity.InvoiceStatusSent,
			wantType:   entity.InvoiceTypeCharter,
		},
		{
			name:       "status change follows the chart",
			update:     entity.Invoice{ID: invoiceID, Status: entity.InvoiceStatusCancelled},
			wantStatus: entity.InvoiceStatusCancelled,
			wantType:   entity.InvoiceTypeCharter,
		},
		{
			name:    "unknown status",
			update:  entity.Invoice{ID: invoiceID, Status: entity.InvoiceStatus("bogus")},
			wantErr: entity.ErrInvalidArgument,
		},
		{
			name:    "unknown type",
			update:  entity.Invoice{ID: invoiceID, InvoiceType: entity.InvoiceType("bogus")},
			wantErr: entity.ErrInvalidArgument,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			repo := mocks.NewMockInvoiceRepository(ctrl)
			producer := mocks.NewMockProducer(ctrl)

			ctx := adminCtx(uuid.Must(uuid.NewV4()))

			repo.EXPECT().Invoice(ctx, invoiceID).Return(stored, nil)

			if tt.wantErr == nil {
				repo.EXPECT().UpdateInvoice(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, inv entity.Invoice) error {
						require.Equal(t, tt.wantStatus, inv.Status)
						require.Equal(t, tt.wantType, inv.InvoiceType)
						return nil
					})
			}

			s := service.NewInvoiceService(repo, producer)

			err := s.UpdateInvoice(ctx, tt.update)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestInvoiceService_UpdateInvoice_NoStatusRevert(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockInvoiceRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	ctx := adminCtx(uuid.Must(uuid.NewV4()))
	invoiceID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Invoice(ctx, invoiceID).Return(entity.Invoice{
		ID:          invoiceID,
		InvoiceType: entity.InvoiceTypeCustomer,
		Status:      entity.InvoiceStatusPaid,
	}, nil)

	s := service.NewInvoiceService(repo, producer)

	err := s.UpdateInvoice(ctx, entity.Invoice{ID: invoiceID, Status: entity.InvoiceStatusDraft})
	require.ErrorIs(t, err, entity.ErrInvalidTransition)
}

func TestInvoiceService_SetStatus_InvalidTransition(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockInvoiceRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	ctx := adminCtx(uuid.Must(uuid.NewV4()))
	invoiceID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Invoice(ctx, invoiceID).Return(entity.Invoice{
		ID:     invoiceID,
		Status: entity.InvoiceStatusPaid,
	}, nil)

	s := service.NewInvoiceService(repo, producer)

	_, err := s.SetStatus(ctx, invoiceID, entity.InvoiceStatusSent)
	require.ErrorIs(t, err, entity.ErrInvalidTransition)
}

func TestInvoiceService_DriverForbidden(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockInvoiceRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	ctx := driverCtx(uuid.Must(uuid.NewV4()))
	s := service.NewInvoiceService(repo, producer)

	_, _, err := s.Invoices(ctx, entity.InvoiceFilter{})
	require.ErrorIs(t, err, entity.ErrForbidden)
}
