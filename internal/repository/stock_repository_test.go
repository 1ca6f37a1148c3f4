package repository_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/busmanager/backend/internal/entity"
	"github.com/busmanager/backend/internal/repository"
)

func TestStockRepository_CreateAndAdjust(t *testing.T) {
	db := repository.SetupTestDatabase(t)
	repo := repository.NewStockRepository(db)
	ctx := context.Background()

	item, err := repo.CreateItem(ctx, entity.StockItem{
		ItemName:          "engine oil",
		Quantity:          10,
		Unit:              "litre",
		UnitPrice:         decimal.NewFromInt(450),
		LowStockThreshold: 5,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, item.ID)

	item, tx, err := repo.AdjustItem(ctx, item.ID, entity.StockTransactionRemove, 3, "oil change", uuid.Nil)
	require.NoError(t, err)
	require.Equal(t, 7, item.Quantity)
	require.Equal(t, 10, tx.PreviousQuantity)
	require.Equal(t, 7, tx.NewQuantity)

	txs, err := repo.ItemTransactions(ctx, item.ID)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	require.Equal(t, entity.StockTransactionRemove, txs[0].Type)
}

func TestStockRepository_AdjustItem_InsufficientStock(t *testing.T) {
	db := repository.SetupTestDatabase(t)
	repo := repository.NewStockRepository(db)
	ctx := context.Background()

	item, err := repo.CreateItem(ctx, entity.StockItem{
		ItemName: "brake pads",
		Quantity: 2,
		Unit:     "pieces",
	})
	require.NoError(t, err)

	_, _, err = repo.AdjustItem(ctx, item.ID, entity.StockTransactionRemove, 5, "", uuid.Nil)
	require.ErrorIs(t, err, entity.ErrInsufficientStock)

	// The failed adjustment changes nothing.
	got, err := repo.Item(ctx, item.ID)
	require.NoError(t, err)
	require.Equal(t, 2, got.Quantity)

	txs, err := repo.ItemTransactions(ctx, item.ID)
	require.NoError(t, err)
	require.Empty(t, txs)
}

func TestStockRepository_LowStockItems(t *testing.T) {
	db := repository.SetupTestDatabase(t)
	repo := repository.NewStockRepository(db)
	ctx := context.Background()

	_, err := repo.CreateItem(ctx, entity.StockItem{
		ItemName:          "coolant",
		Quantity:          2,
		Unit:              "litre",
		LowStockThreshold: 5,
	})
	require.NoError(t, err)

	_, err = repo.CreateItem(ctx, entity.StockItem{
		ItemName:          "wiper blades",
		Quantity:          40,
		Unit:              "pieces",
		LowStockThreshold: 5,
	})
	require.NoError(t, err)

	items, err := repo.LowStockItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "coolant", items[0].ItemName)
}

func TestStockRepository_DeleteItem(t *testing.T) {
	db := repository.SetupTestDatabase(t)
	repo := repository.NewStockRepository(db)
	ctx := context.Background()

	item, err := repo.CreateItem(ctx, entity.StockItem{ItemName: "fan belt", Unit: "pieces"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteItem(ctx, item.ID))

	_, err = repo.Item(ctx, item.ID)
	require.ErrorIs(t, err, entity.ErrNotFound)
}
