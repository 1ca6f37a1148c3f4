package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/busmanager/backend/internal/entity"
	"github.com/busmanager/backend/internal/mocks"
	"github.com/busmanager/backend/internal/service"
)

func TestStockService_AdjustItem(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	driverID := uuid.Must(uuid.NewV4())
	ctx := driverCtx(driverID)
	itemID := uuid.Must(uuid.NewV4())

	repo.EXPECT().AdjustItem(ctx, itemID, entity.StockTransactionRemove, 2, "fitted to bus", driverID).
		Return(
			entity.StockItem{ID: itemID, ItemName: "brake pads", Quantity: 8},
			entity.StockTransaction{StockItemID: itemID, Type: entity.StockTransactionRemove, QuantityChange: 2},
			nil,
		)
	producer.EXPECT().PublishEvent(ctx, "stock.adjusted", itemID.String(), gomock.Any())

	s := service.NewStockService(repo, producer)

	item, err := s.AdjustItem(ctx, itemID, entity.StockTransactionRemove, 2, "fitted to bus")
	require.NoError(t, err)
	require.Equal(t, 8, item.Quantity)
}

func TestStockService_AdjustItem_InsufficientStock(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	driverID := uuid.Must(uuid.NewV4())
	ctx := driverCtx(driverID)
	itemID := uuid.Must(uuid.NewV4())

	repo.EXPECT().AdjustItem(ctx, itemID, entity.StockTransactionRemove, 100, "", driverID).
		Return(entity.StockItem{}, entity.StockTransaction{}, entity.ErrInsufficientStock)

	s := service.NewStockService(repo, producer)

	_, err := s.AdjustItem(ctx, itemID, entity.StockTransactionRemove, 100, "")
	require.ErrorIs(t, err, entity.ErrInsufficientStock)
}

func TestStockService_UpdateItem_DriverForbidden(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	s := service.NewStockService(repo, producer)

	err := s.UpdateItem(driverCtx(uuid.Must(uuid.NewV4())), entity.StockItem{ID: uuid.Must(uuid.NewV4())})
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestStockService_Unauthenticated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStockRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	s := service.NewStockService(repo, producer)

	_, _, err := s.Items(context.Background(), entity.StockFilter{})
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}
