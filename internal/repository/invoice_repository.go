package repository

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/busmanager/backend/internal/entity"
)

type InvoiceRepository struct {
	db *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

const invoiceColumns = `id, invoice_number, invoice_date, due_date, invoice_type,
	direction, category, customer_name, customer_address, customer_phone, customer_gst,
	vendor_name, vendor_address, vendor_phone, vendor_gst, trip_id, bus_id,
	subtotal, gst_amount, total_amount, amount_paid, balance_due, status,
	notes, terms, created_at, updated_at`

// CreateInvoice persists the invoice and its line items in one transaction.
// Totals are expected to be already computed on the entity.
func (r *InvoiceRepository) CreateInvoice(ctx context.Context, inv entity.Invoice) (entity.Invoice, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	defer func() { _ = tx.Rollback(ctx) }()

	const insertInvoice = `
	INSERT INTO invoices (
		invoice_number, invoice_date, due_date, invoice_type, direction, category,
		customer_name, customer_address, customer_phone, customer_gst,
		vendor_name, vendor_address, vendor_phone, vendor_gst, trip_id, bus_id,
		subtotal, gst_amount, total_amount, amount_paid, balance_due, status, notes, terms
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
	        $17, $18, $19, $20, $21, $22, $23, $24)
	RETURNING id, created_at, updated_at`

	err = tx.QueryRow(
		ctx,
		insertInvoice,
		inv.InvoiceNumber,
		inv.InvoiceDate,
		inv.DueDate,
		inv.InvoiceType,
		inv.Direction,
		inv.Category,
		inv.CustomerName,
		zeronull.Text(inv.CustomerAddress),
		zeronull.Text(inv.CustomerPhone),
		zeronull.Text(inv.CustomerGST),
		zeronull.Text(inv.VendorName),
		zeronull.Text(inv.VendorAddress),
		zeronull.Text(inv.VendorPhone),
		zeronull.Text(inv.VendorGST),
		zeronull.UUID(inv.TripID),
		zeronull.UUID(inv.BusID),
		inv.Subtotal,
		inv.GSTAmount,
		inv.TotalAmount,
		inv.AmountPaid,
		inv.BalanceDue,
		inv.Status,
		zeronull.Text(inv.Notes),
		zeronull.Text(inv.Terms),
	).Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.Invoice{}, entity.ErrDuplicate
		}

		return entity.Invoice{}, err
	}

	const insertItem = `
	INSERT INTO invoice_line_items (
		invoice_id, description, quantity, unit_price, gst_percentage,
		rate_includes_gst, base_amount, gst_amount, amount, is_deduction
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id, created_at`

	for i := range inv.LineItems {
		li := &inv.LineItems[i]
		li.InvoiceID = inv.ID

		err = tx.QueryRow(
			ctx,
			insertItem,
			li.InvoiceID,
			li.Description,
			li.Quantity,
			li.UnitPrice,
			li.GSTPercentage,
			li.RateIncludesGST,
			li.BaseAmount,
			li.GSTAmount,
			li.Amount,
			li.IsDeduction,
		).Scan(&li.ID, &li.CreatedAt)
		if err != nil {
			return entity.Invoice{}, err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return entity.Invoice{}, err
	}

	return inv, nil
}

func (r *InvoiceRepository) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	inv, err := scanInvoice(r.db.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		return entity.Invoice{}, err
	}

	inv.LineItems, err = r.lineItems(ctx, r.db, id)
	if err != nil {
		return entity.Invoice{}, err
	}

	inv.Payments, err = r.payments(ctx, id)
	if err != nil {
		return entity.Invoice{}, err
	}

	return inv, nil
}

// UpdateInvoice changes header fields only. Line items and money totals are
// immutable after creation; payments go through AddPayment.
func (r *InvoiceRepository) UpdateInvoice(ctx context.Context, inv entity.Invoice) error {
	const q = `
	UPDATE invoices
	SET invoice_date = $1,
	    due_date = $2,
	    invoice_type = $3,
	    category = $4,
	    customer_name = $5,
	    customer_address = $6,
	    customer_phone = $7,
	    customer_gst = $8,
	    vendor_name = $9,
	    vendor_address = $10,
	    vendor_phone = $11,
	    vendor_gst = $12,
	    status = $13,
	    notes = $14,
	    terms = $15,
	    updated_at = now()
	WHERE id = $16`

	result, err := r.db.Exec(
		ctx,
		q,
		inv.InvoiceDate,
		inv.DueDate,
		inv.InvoiceType,
		inv.Category,
		inv.CustomerName,
		zeronull.Text(inv.CustomerAddress),
		zeronull.Text(inv.CustomerPhone),
		zeronull.Text(inv.CustomerGST),
		zeronull.Text(inv.VendorName),
		zeronull.Text(inv.VendorAddress),
		zeronull.Text(inv.VendorPhone),
		zeronull.Text(inv.VendorGST),
		inv.Status,
		zeronull.Text(inv.Notes),
		zeronull.Text(inv.Terms),
		inv.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *InvoiceRepository) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *InvoiceRepository) Invoices(ctx context.Context, f entity.InvoiceFilter) ([]entity.Invoice, int, error) {
	stmt := sq.Select(
		"id", "invoice_number", "invoice_date", "due_date", "invoice_type",
		"direction", "category", "customer_name", "customer_address", "customer_phone", "customer_gst",
		"vendor_name", "vendor_address", "vendor_phone", "vendor_gst", "trip_id", "bus_id",
		"subtotal", "gst_amount", "total_amount", "amount_paid", "balance_due", "status",
		"notes", "terms", "created_at", "updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("invoices").PlaceholderFormat(sq.Dollar)

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	if f.Direction != nil {
		stmt = stmt.Where(sq.Eq{"direction": *f.Direction})
	}

	if f.FromDate != nil {
		stmt = stmt.Where(sq.GtOrEq{"invoice_date": *f.FromDate})
	}

	if f.ToDate != nil {
		stmt = stmt.Where(sq.LtOrEq{"invoice_date": *f.ToDate})
	}

	if f.Limit > 0 {
		stmt = stmt.Limit(f.Limit).Offset(f.Offset)
	}

	stmt = stmt.OrderBy("invoice_date DESC", "invoice_number DESC")

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
		invoices   []entity.Invoice
		totalCount int
	)

	for rows.Next() {
		var (
			inv   entity.Invoice
			count int
		)

		err = rows.Scan(
			&inv.ID, &inv.InvoiceNumber, &inv.InvoiceDate, &inv.DueDate, &inv.InvoiceType,
			&inv.Direction, &inv.Category, &inv.CustomerName,
			(*zeronull.Text)(&inv.CustomerAddress),
			(*zeronull.Text)(&inv.CustomerPhone),
			(*zeronull.Text)(&inv.CustomerGST),
			(*zeronull.Text)(&inv.VendorName),
			(*zeronull.Text)(&inv.VendorAddress),
			(*zeronull.Text)(&inv.VendorPhone),
			(*zeronull.Text)(&inv.VendorGST),
			(*zeronull.UUID)(&inv.TripID),
			(*zeronull.UUID)(&inv.BusID),
			&inv.Subtotal, &inv.GSTAmount, &inv.TotalAmount, &inv.AmountPaid, &inv.BalanceDue,
			&inv.Status,
			(*zeronull.Text)(&inv.Notes),
			(*zeronull.Text)(&inv.Terms),
			&inv.CreatedAt, &inv.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		invoices = append(invoices, inv)
	}

	return invoices, totalCount, nil
}

// AddPayment posts a payment atomically. The invoice row is locked with
// FOR UPDATE so concurrent payments reconcile one at a time; the returned
// invoice reflects the new paid amount, balance and status.
func (r *InvoiceRepository) AddPayment(ctx context.Context, p entity.Payment) (entity.Invoice, entity.Payment, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.Invoice{}, entity.Payment{}, err
	}

	defer func() { _ = tx.Rollback(ctx) }()

	q := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1 FOR UPDATE`

	inv, err := scanInvoice(tx.QueryRow(ctx, q, p.InvoiceID))
	if err != nil {
		return entity.Invoice{}, entity.Payment{}, err
	}

	if err = inv.ApplyPayment(p.Amount); err != nil {
		return entity.Invoice{}, entity.Payment{}, err
	}

	const insertPayment = `
	INSERT INTO invoice_payments (
		invoice_id, amount, payment_date, payment_mode, reference_number, notes, created_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, created_at`

	err = tx.QueryRow(
		ctx,
		insertPayment,
		p.InvoiceID,
		p.Amount,
		p.PaymentDate,
		p.PaymentMode,
		zeronull.Text(p.ReferenceNumber),
		zeronull.Text(p.Notes),
		zeronull.UUID(p.CreatedBy),
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return entity.Invoice{}, entity.Payment{}, err
	}

	const updateInvoice = `
	UPDATE invoices
	SET amount_paid = $1, balance_due = $2, status = $3, updated_at = now()
	WHERE id = $4`

	_, err = tx.Exec(ctx, updateInvoice, inv.AmountPaid, inv.BalanceDue, inv.Status, inv.ID)
	if err != nil {
		return entity.Invoice{}, entity.Payment{}, err
	}

	if err = tx.Commit(ctx); err != nil {
		return entity.Invoice{}, entity.Payment{}, err
	}

	return inv, p, nil
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InvoiceStatus) error {
	const q = `UPDATE invoices SET status = $1, updated_at = now() WHERE id = $2`

	result, err := r.db.Exec(ctx, q, status, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// MarkOverdue flips sent and partial invoices whose due date passed. Returns
// the invoice numbers it moved, for the alert job's log line.
func (r *InvoiceRepository) MarkOverdue(ctx context.Context, asOf time.Time) ([]string, error) {
	const q = `
	UPDATE invoices
	SET status = 'overdue', updated_at = now()
	WHERE status IN ('sent', 'partial') AND due_date IS NOT NULL AND due_date < $1
	RETURNING invoice_number`

	rows, err := r.db.Query(ctx, q, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var numbers []string

	for rows.Next() {
		var n string

		if err = rows.Scan(&n); err != nil {
			return nil, err
		}

		numbers = append(numbers, n)
	}

	return numbers, nil
}

type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *InvoiceRepository) lineItems(ctx context.Context, q queryer, invoiceID uuid.UUID) ([]entity.LineItem, error) {
	const query = `
	SELECT id, invoice_id, description, quantity, unit_price, gst_percentage,
	       rate_includes_gst, base_amount, gst_amount, amount, is_deduction, created_at
	FROM invoice_line_items
	WHERE invoice_id = $1
	ORDER BY created_at`

	rows, err := q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entity.LineItem

	for rows.Next() {
		var li entity.LineItem

		err = rows.Scan(
			&li.ID, &li.InvoiceID, &li.Description, &li.Quantity, &li.UnitPrice,
			&li.GSTPercentage, &li.RateIncludesGST, &li.BaseAmount, &li.GSTAmount,
			&li.Amount, &li.IsDeduction, &li.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		items = append(items, li)
	}

	return items, nil
}

func (r *InvoiceRepository) payments(ctx context.Context, invoiceID uuid.UUID) ([]entity.Payment, error) {
	const q = `
	SELECT id, invoice_id, amount, payment_date, payment_mode, reference_number,
	       notes, created_by, created_at
	FROM invoice_payments
	WHERE invoice_id = $1
	ORDER BY payment_date, created_at`

	rows, err := r.db.Query(ctx, q, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []entity.Payment

	for rows.Next() {
		var p entity.Payment

		err = rows.Scan(
			&p.ID, &p.InvoiceID, &p.Amount, &p.PaymentDate, &p.PaymentMode,
			(*zeronull.Text)(&p.ReferenceNumber),
			(*zeronull.Text)(&p.Notes),
			(*zeronull.UUID)(&p.CreatedBy),
			&p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		payments = append(payments, p)
	}

	return payments, nil
}

func scanInvoice(row pgx.Row) (entity.Invoice, error) {
	var inv entity.Invoice

	err := row.Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.InvoiceDate, &inv.DueDate, &inv.InvoiceType,
		&inv.Direction, &inv.Category, &inv.CustomerName,
		(*zeronull.Text)(&inv.CustomerAddress),
		(*zeronull.Text)(&inv.CustomerPhone),
		(*zeronull.Text)(&inv.CustomerGST),
		(*zeronull.Text)(&inv.VendorName),
		(*zeronull.Text)(&inv.VendorAddress),
		(*zeronull.Text)(&inv.VendorPhone),
		(*zeronull.Text)(&inv.VendorGST),
		(*zeronull.UUID)(&inv.TripID),
		(*zeronull.UUID)(&inv.BusID),
		&inv.Subtotal, &inv.GSTAmount, &inv.TotalAmount, &inv.AmountPaid, &inv.BalanceDue,
		&inv.Status,
		(*zeronull.Text)(&inv.Notes),
		(*zeronull.Text)(&inv.Terms),
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Invoice{}, entity.ErrNotFound
		}

		return entity.Invoice{}, err
	}

	return inv, nil
}
