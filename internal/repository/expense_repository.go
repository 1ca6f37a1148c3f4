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

type ExpenseRepository struct {
	db *pgxpool.Pool
}

func NewExpenseRepository(db *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

const expenseColumns = `id, trip_id, category_id, submitted_by, amount, expense_date,
	description, document_url, fuel_quantity, status, admin_remarks,
	approved_by, approved_at, created_at, updated_at`

func (r *ExpenseRepository) CreateExpense(ctx context.Context, e entity.Expense) (entity.Expense, error) {
	const q = `
	INSERT INTO expenses (
		trip_id, category_id, submitted_by, amount, expense_date,
		description, document_url, fuel_quantity, status
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx,
		q,
		e.TripID,
		e.CategoryID,
		e.SubmittedBy,
		e.Amount,
		e.ExpenseDate,
		zeronull.Text(e.Description),
		zeronull.Text(e.DocumentURL),
		e.FuelQuantity,
		e.Status,
	).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return entity.Expense{}, err
	}

	return e, nil
}

func (r *ExpenseRepository) Expense(ctx context.Context, id uuid.UUID) (entity.Expense, error) {
	return scanExpense(r.db.QueryRow(ctx, `SELECT `+expenseColumns+` FROM expenses WHERE id = $1`, id))
}

func (r *ExpenseRepository) UpdateExpense(ctx context.Context, e entity.Expense) error {
	const q = `
	UPDATE expenses
	SET category_id = $1,
	    amount = $2,
	    expense_date = $3,
	    description = $4,
	    document_url = $5,
	    fuel_quantity = $6,
	    status = $7,
	    admin_remarks = $8,
	    approved_by = $9,
	    approved_at = $10,
	    updated_at = now()
	WHERE id = $11`

	result, err := r.db.Exec(
		ctx,
		q,
		e.CategoryID,
		e.Amount,
		e.ExpenseDate,
		zeronull.Text(e.Description),
		zeronull.Text(e.DocumentURL),
		e.FuelQuantity,
		e.Status,
		zeronull.Text(e.AdminRemarks),
		zeronull.UUID(e.ApprovedBy),
		e.ApprovedAt,
		e.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *ExpenseRepository) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *ExpenseRepository) Expenses(ctx context.Context, f entity.ExpenseFilter) ([]entity.Expense, int, error) {
	stmt := sq.Select(
		"id", "trip_id", "category_id", "submitted_by", "amount", "expense_date",
		"description", "document_url", "fuel_quantity", "status", "admin_remarks",
		"approved_by", "approved_at", "created_at", "updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("expenses").PlaceholderFormat(sq.Dollar)

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	if f.TripID != nil {
		stmt = stmt.Where(sq.Eq{"trip_id": *f.TripID})
	}

	if f.SubmittedBy != nil {
		stmt = stmt.Where(sq.Eq{"submitted_by": *f.SubmittedBy})
	}

	if f.CategoryID != nil {
		stmt = stmt.Where(sq.Eq{"category_id": *f.CategoryID})
	}

	if f.FromDate != nil {
		stmt = stmt.Where(sq.GtOrEq{"expense_date": *f.FromDate})
	}

	if f.ToDate != nil {
		stmt = stmt.Where(sq.LtOrEq{"expense_date": *f.ToDate})
	}

	if f.Limit > 0 {
		stmt = stmt.Limit(f.Limit).Offset(f.Offset)
	}

	stmt = stmt.OrderBy("expense_date DESC")

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
		expenses   []entity.Expense
		totalCount int
	)

	for rows.Next() {
		var (
			e     entity.Expense
			count int
		)

		err = rows.Scan(
			&e.ID, &e.TripID, &e.CategoryID, &e.SubmittedBy, &e.Amount, &e.ExpenseDate,
			(*zeronull.Text)(&e.Description),
			(*zeronull.Text)(&e.DocumentURL),
			&e.FuelQuantity,
			&e.Status,
			(*zeronull.Text)(&e.AdminRemarks),
			(*zeronull.UUID)(&e.ApprovedBy),
			&e.ApprovedAt,
			&e.CreatedAt, &e.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		expenses = append(expenses, e)
	}

	return expenses, totalCount, nil
}

func (r *ExpenseRepository) Categories(ctx context.Context) ([]entity.ExpenseCategory, error) {
	const q = `
	SELECT id, name, description, icon, created_at
	FROM expense_categories
	ORDER BY name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []entity.ExpenseCategory

	for rows.Next() {
		var c entity.ExpenseCategory

		err = rows.Scan(
			&c.ID,
			&c.Name,
			(*zeronull.Text)(&c.Description),
			(*zeronull.Text)(&c.Icon),
			&c.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		categories = append(categories, c)
	}

	return categories, nil
}

func (r *ExpenseRepository) CreateCategory(ctx context.Context, c entity.ExpenseCategory) (entity.ExpenseCategory, error) {
	const q = `
	INSERT INTO expense_categories (name, description, icon)
	VALUES ($1, $2, $3)
	RETURNING id, created_at`

	err := r.db.QueryRow(ctx, q, c.Name, zeronull.Text(c.Description), zeronull.Text(c.Icon)).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ExpenseCategory{}, entity.ErrDuplicate
		}

		return entity.ExpenseCategory{}, err
	}

	return c, nil
}

func scanExpense(row pgx.Row) (entity.Expense, error) {
	var e entity.Expense

	err := row.Scan(
		&e.ID, &e.TripID, &e.CategoryID, &e.SubmittedBy, &e.Amount, &e.ExpenseDate,
		(*zeronull.Text)(&e.Description),
		(*zeronull.Text)(&e.DocumentURL),
		&e.FuelQuantity,
		&e.Status,
		(*zeronull.Text)(&e.AdminRemarks),
		(*zeronull.UUID)(&e.ApprovedBy),
		&e.ApprovedAt,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Expense{}, entity.ErrNotFound
		}

		return entity.Expense{}, err
	}

	return e, nil
}
