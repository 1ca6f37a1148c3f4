package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/busmanager/backend/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=stock.go -destination=../mocks/stock.go -package=mocks

type StockRepository interface {
	CreateItem(ctx context.Context, item entity.StockItem) (entity.StockItem, error)
	Item(ctx context.Context, id uuid.UUID) (entity.StockItem, error)
	UpdateItem(ctx context.Context, item entity.StockItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	Items(ctx context.Context, f entity.StockFilter) ([]entity.StockItem, int, error)
	AdjustItem(ctx context.Context, itemID uuid.UUID, txType entity.StockTransactionType, change int, notes string, by uuid.UUID) (entity.StockItem, entity.StockTransaction, error)
	ItemTransactions(ctx context.Context, itemID uuid.UUID) ([]entity.StockTransaction, error)
}

type StockService struct {
	repo     StockRepository
	producer Producer
}

func NewStockService(repo StockRepository, producer Producer) *StockService {
	return &StockService{
		repo:     repo,
		producer: producer,
	}
}

func (s *StockService) CreateItem(ctx context.Context, item entity.StockItem) (entity.StockItem, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.StockItem{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceStock, Action: entity.ActionCreate})
	if err != nil {
		return entity.StockItem{}, err
	}

	if item.ItemName == "" {
		return entity.StockItem{}, fmt.Errorf("%w: item name is required", entity.ErrInvalidArgument)
	}

	if item.Quantity < 0 {
		return entity.StockItem{}, fmt.Errorf("%w: quantity cannot be negative", entity.ErrInvalidArgument)
	}

	item.LastUpdatedBy = caller.ProfileID

	return s.repo.CreateItem(ctx, item)
}

func (s *StockService) Item(ctx context.Context, id uuid.UUID) (entity.StockItem, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.StockItem{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceStock, Action: entity.ActionRead})
	if err != nil {
		return entity.StockItem{}, err
	}

	return s.repo.Item(ctx, id)
}

func (s *StockService) Items(ctx context.Context, f entity.StockFilter) ([]entity.StockItem, int, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceStock, Action: entity.ActionList})
	if err != nil {
		return nil, 0, err
	}

	return s.repo.Items(ctx, f)
}

// UpdateItem changes item metadata. Quantity is deliberately not updatable
// here; every quantity change goes through AdjustItem so the transaction
// history stays complete.
func (s *StockService) UpdateItem(ctx context.Context, item entity.StockItem) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceStock, Action: entity.ActionUpdate})
	if err != nil {
		return err
	}

	if item.ItemName == "" {
		return fmt.Errorf("%w: item name is required", entity.ErrInvalidArgument)
	}

	item.LastUpdatedBy = caller.ProfileID

	return s.repo.UpdateItem(ctx, item)
}

func (s *StockService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceStock, Action: entity.ActionDelete})
	if err != nil {
		return err
	}

	return s.repo.DeleteItem(ctx, id)
}

// AdjustItem applies a quantity change under a row lock and records an
// immutable transaction entry.
func (s *StockService) AdjustItem(ctx context.Context, itemID uuid.UUID, txType entity.StockTransactionType, change int, notes string) (entity.StockItem, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.StockItem{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceStock, Action: entity.ActionAdjust})
	if err != nil {
		return entity.StockItem{}, err
	}

	item, tx, err := s.repo.AdjustItem(ctx, itemID, txType, change, notes, caller.ProfileID)
	if err != nil {
		return entity.StockItem{}, err
	}

	s.producer.PublishEvent(ctx, "stock.adjusted", item.ID.String(), map[string]string{
		"type":   tx.Type.String(),
		"change": fmt.Sprintf("%d", tx.QuantityChange),
	})

	return item, nil
}

func (s *StockService) ItemTransactions(ctx context.Context, itemID uuid.UUID) ([]entity.StockTransaction, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceStock, Action: entity.ActionRead})
	if err != nil {
		return nil, err
	}

	return s.repo.ItemTransactions(ctx, itemID)
}
