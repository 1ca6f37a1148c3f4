package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/busmanager/backend/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=invoice.go -destination=../mocks/invoice.go -package=mocks

type InvoiceRepository interface {
	CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error)
	Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error)
	UpdateInvoice(ctx context.Context, inv entity.Invoice) error
	DeleteInvoice(ctx context.Context, id uuid.UUID) error
	Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error)
	AddPayment(ctx context.Context, p entity.Payment) (entity.Invoice, entity.Payment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus) error
}

type InvoiceService struct {
	repo     InvoiceRepository
	producer Producer
}

func NewInvoiceService(repo InvoiceRepository, producer Producer) *InvoiceService {
	return &InvoiceService{
		repo:     repo,
		producer: producer,
	}
}

// CreateInvoice computes line-item amounts and invoice totals server-side,
// then stores the invoice with its lines in one transaction. Client-supplied
// totals are ignored.
func (s *InvoiceService) CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceInvoice, Action: entity.ActionCreate})
	if err != nil {
		return entity.Invoice{}, err
	}

	if inv.InvoiceNumber == "" {
		return entity.Invoice{}, fmt.Errorf("%w: invoice number is required", entity.ErrInvalidArgument)
	}

	if err = inv.InvoiceType.Validate(); err != nil {
		return entity.Invoice{}, err
	}

	if err = inv.Direction.Validate(); err != nil {
		return entity.Invoice{}, err
	}

	if len(inv.LineItems) == 0 {
		return entity.Invoice{}, fmt.Errorf("%w: invoice needs at least one line item", entity.ErrInvalidArgument)
	}

	if inv.Status == "" {
		inv.Status = entity.InvoiceStatusDraft
	}

	if err = inv.Status.Validate(); err != nil {
		return entity.Invoice{}, err
	}

	if inv.InvoiceDate.IsZero() {
		inv.InvoiceDate = time.Now()
	}

	inv.ApplyLineItems()

	inv, err = s.repo.CreateInvoice(ctx, inv)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("create invoice: %w", err)
	}

	s.producer.PublishEvent(ctx, "invoice.created", inv.ID.String(), map[string]string{
		"number": inv.InvoiceNumber,
		"total":  inv.TotalAmount.String(),
	})

	return inv, nil
}

func (s *InvoiceService) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceInvoice, Action: entity.ActionRead})
	if err != nil {
		return entity.Invoice{}, err
	}

	return s.repo.Invoice(ctx, id)
}

func (s *InvoiceService) Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceInvoice, Action: entity.ActionList})
	if err != nil {
		return nil, 0, err
	}

	return s.repo.Invoices(ctx, f)
}

// UpdateInvoice changes header fields only. Money totals never change after
// creation and payments go through AddPayment. Omitted enum fields keep their
// stored values; a status change goes through the transition chart the same
// way SetStatus does.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, inv entity.Invoice) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceInvoice, Action: entity.ActionUpdate})
	if err != nil {
		return err
	}

	current, err := s.repo.Invoice(ctx, inv.ID)
	if err != nil {
		return err
	}

	if inv.InvoiceType == "" {
		inv.InvoiceType = current.InvoiceType
	} else if err = inv.InvoiceType.Validate(); err != nil {
		return err
	}

	if inv.Status == "" {
		inv.Status = current.Status
	} else if err = current.SetStatus(inv.Status); err != nil {
		return err
	}

	return s.repo.UpdateInvoice(ctx, inv)
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceInvoice, Action: entity.ActionDelete})
	if err != nil {
		return err
	}

	return s.repo.DeleteInvoice(ctx, id)
}

// AddPayment records a payment against an invoice. The repository applies it
// under a row lock so concurrent payments reconcile one at a time.
func (s *InvoiceService) AddPayment(ctx context.Context, p entity.Payment) (entity.Invoice, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceInvoice, Action: entity.ActionUpdate})
	if err != nil {
		return entity.Invoice{}, err
	}

	if p.PaymentDate.IsZero() {
		p.PaymentDate = time.Now()
	}

	p.CreatedBy = caller.ProfileID

	inv, p, err := s.repo.AddPayment(ctx, p)
	if err != nil {
		return entity.Invoice{}, err
	}

	s.producer.PublishEvent(ctx, "invoice.payment_added", inv.ID.String(), map[string]string{
		"number": inv.InvoiceNumber,
		"amount": p.Amount.String(),
		"status": inv.Status.String(),
	})

	return inv, nil
}

// SetStatus moves an invoice through the status chart directly, for the
// transitions no payment drives, sent and cancelled in particular.
func (s *InvoiceService) SetStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus) (entity.Invoice, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceInvoice, Action: entity.ActionUpdate})
	if err != nil {
		return entity.Invoice{}, err
	}

	inv, err := s.repo.Invoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, err
	}

	if err = inv.SetStatus(status); err != nil {
		return entity.Invoice{}, err
	}

	if err = s.repo.UpdateStatus(ctx, id, inv.Status); err != nil {
		return entity.Invoice{}, err
	}

	return inv, nil
}
