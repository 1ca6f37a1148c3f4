package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/busmanager/backend/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=bus.go -destination=../mocks/bus.go -package=mocks

type BusRepository interface {
	CreateBus(ctx context.Context, b entity.Bus) (entity.Bus, error)
	Bus(ctx context.Context, id uuid.UUID) (entity.Bus, error)
	UpdateBus(ctx context.Context, b entity.Bus) error
	DeleteBus(ctx context.Context, id uuid.UUID) error
	Buses(ctx context.Context, f entity.BusFilter) ([]entity.Bus, int, error)
	BusesWithTaxDue(ctx context.Context, deadline time.Time) ([]entity.Bus, error)
	CreateTaxRecord(ctx context.Context, rec entity.BusTaxRecord) (entity.BusTaxRecord, error)
	TaxRecords(ctx context.Context, busID uuid.UUID) ([]entity.BusTaxRecord, error)
	MarkTaxPaid(ctx context.Context, recordID uuid.UUID, paidDate time.Time, reference string) error
}

type Producer interface {
	PublishEvent(ctx context.Context, eventType, entityID string, payload map[string]string)
}

// NopProducer satisfies Producer when Kafka is disabled.
type NopProducer struct{}

func (NopProducer) PublishEvent(context.Context, string, string, map[string]string) {}

type BusService struct {
	repo     BusRepository
	producer Producer
}

func NewBusService(repo BusRepository, producer Producer) *BusService {
	return &BusService{
		repo:     repo,
		producer: producer,
	}
}

func (s *BusService) CreateBus(ctx context.Context, b entity.Bus) (entity.Bus, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.Bus{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceBus, Action: entity.ActionCreate})
	if err != nil {
		return entity.Bus{}, err
	}

	if err = b.Status.Validate(); err != nil {
		return entity.Bus{}, err
	}

	if err = b.OwnershipType.Validate(); err != nil {
		return entity.Bus{}, err
	}

	b, err = s.repo.CreateBus(ctx, b)
	if err != nil {
		return entity.Bus{}, fmt.Errorf("create bus: %w", err)
	}

	s.producer.PublishEvent(ctx, "bus.created", b.ID.String(), map[string]string{
		"registration_number": b.RegistrationNumber,
	})

	return b, nil
}

func (s *BusService) Bus(ctx context.Context, id uuid.UUID) (entity.Bus, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.Bus{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceBus, Action: entity.ActionRead})
	if err != nil {
		return entity.Bus{}, err
	}

	return s.repo.Bus(ctx, id)
}

func (s *BusService) Buses(ctx context.Context, f entity.BusFilter) ([]entity.Bus, int, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceBus, Action: entity.ActionList})
	if err != nil {
		return nil, 0, err
	}

	return s.repo.Buses(ctx, f)
}

func (s *BusService) UpdateBus(ctx context.Context, b entity.Bus) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceBus, Action: entity.ActionUpdate})
	if err != nil {
		return err
	}

	if err = b.Status.Validate(); err != nil {
		return err
	}

	if err = b.OwnershipType.Validate(); err != nil {
		return err
	}

	return s.repo.UpdateBus(ctx, b)
}

func (s *BusService) DeleteBus(ctx context.Context, id uuid.UUID) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceBus, Action: entity.ActionDelete})
	if err != nil {
		return err
	}

	return s.repo.DeleteBus(ctx, id)
}

func (s *BusService) CreateTaxRecord(ctx context.Context, rec entity.BusTaxRecord) (entity.BusTaxRecord, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.BusTaxRecord{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceBus, Action: entity.ActionUpdate})
	if err != nil {
		return entity.BusTaxRecord{}, err
	}

	if rec.Status == "" {
		rec.Status = entity.TaxStatusPending
	}

	if err = rec.Status.Validate(); err != nil {
		return entity.BusTaxRecord{}, err
	}

	return s.repo.CreateTaxRecord(ctx, rec)
}

func (s *BusService) TaxRecords(ctx context.Context, busID uuid.UUID) ([]entity.BusTaxRecord, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceBus, Action: entity.ActionRead})
	if err != nil {
		return nil, err
	}

	return s.repo.TaxRecords(ctx, busID)
}

func (s *BusService) MarkTaxPaid(ctx context.Context, recordID uuid.UUID, paidDate time.Time, reference string) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceBus, Action: entity.ActionUpdate})
	if err != nil {
		return err
	}

	err = s.repo.MarkTaxPaid(ctx, recordID, paidDate, reference)
	if err != nil {
		return err
	}

	s.producer.PublishEvent(ctx, "bus.tax_paid", recordID.String(), nil)

	return nil
}
