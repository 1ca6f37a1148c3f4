package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/busmanager/backend/internal/entity"
)

type StockRepository struct {
	db *pgxpool.Pool
}

func NewStockRepository(db *pgxpool.Pool) *StockRepository {
	return &StockRepository{db: db}
}

const stockColumns = `id, item_name, quantity, unit, unit_price, low_stock_threshold,
	gst_percentage, notes, last_updated_by, created_at, updated_at`

func (r *StockRepository) CreateItem(ctx context.Context, item entity.StockItem) (entity.StockItem, error) {
	const q = `
	INSERT INTO stock_items (
		item_name, quantity, unit, unit_price, low_stock_threshold,
		gst_percentage, notes, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx,
		q,
		item.ItemName,
		item.Quantity,
		item.Unit,
		item.UnitPrice,
		item.LowStockThreshold,
		item.GSTPercentage,
		zeronull.Text(item.Notes),
		zeronull.UUID(item.LastUpdatedBy),
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.StockItem{}, entity.ErrDuplicate
		}

		return entity.StockItem{}, err
	}

	return item, nil
}

func (r *StockRepository) Item(ctx context.Context, id uuid.UUID) (entity.StockItem, error) {
	return scanStockItem(r.db.QueryRow(ctx, `SELECT `+stockColumns+` FROM stock_items WHERE id = $1`, id))
}

func (r *StockRepository) UpdateItem(ctx context.Context, item entity.StockItem) error {
	const q = `
	UPDATE stock_items
	SET item_name = $1,
	    unit = $2,
	    unit_price = $3,
	    low_stock_threshold = $4,
	    gst_percentage = $5,
	    notes = $6,
	    last_updated_by = $7,
	    updated_at = now()
	WHERE id = $8`

	result, err := r.db.Exec(
		ctx,
		q,
		item.ItemName,
		item.Unit,
		item.UnitPrice,
		item.LowStockThreshold,
		item.GSTPercentage,
		zeronull.Text(item.Notes),
		zeronull.UUID(item.LastUpdatedBy),
		item.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *StockRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM stock_items WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *StockRepository) Items(ctx context.Context, f entity.StockFilter) ([]entity.StockItem, int, error) {
	stmt := sq.Select(
		"id", "item_name", "quantity", "unit", "unit_price", "low_stock_threshold",
		"gst_percentage", "notes", "last_updated_by", "created_at", "updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("stock_items").PlaceholderFormat(sq.Dollar)

	if f.LowOnly {
		stmt = stmt.Where("low_stock_threshold > 0 AND quantity <= low_stock_threshold")
	}

	if f.Limit > 0 {
		stmt = stmt.Limit(f.Limit).Offset(f.Offset)
	}

	stmt = stmt.OrderBy("item_name")

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var (
		items      []entity.StockItem
		totalCount int
	)

	for rows.Next() {
		var (
			item  entity.StockItem
			count int
		)

		err = rows.Scan(
			&item.ID, &item.ItemName, &item.Quantity, &item.Unit, &item.UnitPrice,
			&item.LowStockThreshold, &item.GSTPercentage,
			(*zeronull.Text)(&item.Notes),
			(*zeronull.UUID)(&item.LastUpdatedBy),
			&item.CreatedAt, &item.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		items = append(items, item)
	}

	return items, totalCount, nil
}

// AdjustItem applies a stock movement inside one transaction. The item row is
// locked with FOR UPDATE so two concurrent removals cannot both pass the
// negative-quantity check.
func (r *StockRepository) AdjustItem(
	ctx context.Context,
	itemID uuid.UUID,
	txType entity.StockTransactionType,
	change int,
	notes string,
	by uuid.UUID,
) (entity.StockItem, entity.StockTransaction, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.StockItem{}, entity.StockTransaction{}, err
	}

	defer func() { _ = tx.Rollback(ctx) }()

	q := `SELECT ` + stockColumns + ` FROM stock_items WHERE id = $1 FOR UPDATE`

	item, err := scanStockItem(tx.QueryRow(ctx, q, itemID))
	if err != nil {
		return entity.StockItem{}, entity.StockTransaction{}, err
	}

	audit, err := item.Adjust(txType, change, notes, by)
	if err != nil {
		return entity.StockItem{}, entity.StockTransaction{}, err
	}

	const updateItem = `
	UPDATE stock_items
	SET quantity = $1, last_updated_by = $2, updated_at = now()
	WHERE id = $3`

	_, err = tx.Exec(ctx, updateItem, item.Quantity, zeronull.UUID(by), itemID)
	if err != nil {
		return entity.StockItem{}, entity.StockTransaction{}, err
	}

	const insertAudit = `
	INSERT INTO stock_transactions (
		stock_item_id, transaction_type, quantity_change,
		previous_quantity, new_quantity, notes, created_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, created_at`

	err = tx.QueryRow(
		ctx,
		insertAudit,
		audit.StockItemID,
		audit.Type,
		audit.QuantityChange,
		audit.PreviousQuantity,
		audit.NewQuantity,
		zeronull.Text(audit.Notes),
		zeronull.UUID(audit.CreatedBy),
	).Scan(&audit.ID, &audit.CreatedAt)
	if err != nil {
		return entity.StockItem{}, entity.StockTransaction{}, err
	}

	if err = tx.Commit(ctx); err != nil {
		return entity.StockItem{}, entity.StockTransaction{}, err
	}

	return item, audit, nil
}

func (r *StockRepository) ItemTransactions(ctx context.Context, itemID uuid.UUID) ([]entity.StockTransaction, error) {
	const q = `
	SELECT id, stock_item_id, transaction_type, quantity_change,
	       previous_quantity, new_quantity, notes, created_by, created_at
	FROM stock_transactions
	WHERE stock_item_id = $1
	ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txs []entity.StockTransaction

	for rows.Next() {
		var t entity.StockTransaction

		err = rows.Scan(
			&t.ID, &t.StockItemID, &t.Type, &t.QuantityChange,
			&t.PreviousQuantity, &t.NewQuantity,
			(*zeronull.Text)(&t.Notes),
			(*zeronull.UUID)(&t.CreatedBy),
			&t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		txs = append(txs, t)
	}

	return txs, nil
}

// LowStockItems returns items at or under their threshold, for the alert job.
func (r *StockRepository) LowStockItems(ctx context.Context) ([]entity.StockItem, error) {
	items, _, err := r.Items(ctx, entity.StockFilter{LowOnly: true})
	return items, err
}

func scanStockItem(row pgx.Row) (entity.StockItem, error) {
	var item entity.StockItem

	err := row.Scan(
		&item.ID, &item.ItemName, &item.Quantity, &item.Unit, &item.UnitPrice,
		&item.LowStockThreshold, &item.GSTPercentage,
		(*zeronull.Text)(&item.Notes),
		(*zeronull.UUID)(&item.LastUpdatedBy),
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.StockItem{}, entity.ErrNotFound
		}

		return entity.StockItem{}, err
	}

	return item, nil
}
