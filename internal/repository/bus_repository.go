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

type BusRepository struct {
	db *pgxpool.Pool
}

func NewBusRepository(db *pgxpool.Pool) *BusRepository {
	return &BusRepository{db: db}
}

const busColumns = `id, registration_number, bus_name, capacity, bus_type, status,
	insurance_expiry, puc_expiry, fitness_expiry, ownership_type, partner_name,
	company_profit_share, partner_profit_share, home_state_id, monthly_tax_amount,
	tax_due_day, last_tax_paid_date, next_tax_due_date, created_at, updated_at`

func (r *BusRepository) CreateBus(ctx context.Context, b entity.Bus) (entity.Bus, error) {
	const q = `
	INSERT INTO buses (
		registration_number, bus_name, capacity, bus_type, status,
		insurance_expiry, puc_expiry, fitness_expiry, ownership_type, partner_name,
		company_profit_share, partner_profit_share, home_state_id, monthly_tax_amount,
		tax_due_day, last_tax_paid_date, next_tax_due_date
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx,
		q,
		b.RegistrationNumber,
		zeronull.Text(b.BusName),
		b.Capacity,
		b.BusType,
		b.Status,
		b.InsuranceExpiry,
		b.PUCExpiry,
		b.FitnessExpiry,
		b.OwnershipType,
		zeronull.Text(b.PartnerName),
		b.CompanyProfitShare,
		b.PartnerProfitShare,
		zeronull.UUID(b.HomeStateID),
		b.MonthlyTaxAmount,
		b.TaxDueDay,
		b.LastTaxPaidDate,
		b.NextTaxDueDate,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.Bus{}, entity.ErrDuplicate
		}

		return entity.Bus{}, err
	}

	return b, nil
}

func (r *BusRepository) Bus(ctx context.Context, id uuid.UUID) (entity.Bus, error) {
	return scanBus(r.db.QueryRow(ctx, `SELECT `+busColumns+` FROM buses WHERE id = $1`, id))
}

func (r *BusRepository) UpdateBus(ctx context.Context, b entity.Bus) error {
	const q = `
	UPDATE buses
	SET registration_number = $1,
	    bus_name = $2,
	    capacity = $3,
	    bus_type = $4,
	    status = $5,
	    insurance_expiry = $6,
	    puc_expiry = $7,
	    fitness_expiry = $8,
	    ownership_type = $9,
	    partner_name = $10,
	    company_profit_share = $11,
	    partner_profit_share = $12,
	    home_state_id = $13,
	    monthly_tax_amount = $14,
	    tax_due_day = $15,
	    last_tax_paid_date = $16,
	    next_tax_due_date = $17,
	    updated_at = now()
	WHERE id = $18`

	result, err := r.db.Exec(
		ctx,
		q,
		b.RegistrationNumber,
		zeronull.Text(b.BusName),
		b.Capacity,
		b.BusType,
		b.Status,
		b.InsuranceExpiry,
		b.PUCExpiry,
		b.FitnessExpiry,
		b.OwnershipType,
		zeronull.Text(b.PartnerName),
		b.CompanyProfitShare,
		b.PartnerProfitShare,
		zeronull.UUID(b.HomeStateID),
		b.MonthlyTaxAmount,
		b.TaxDueDay,
		b.LastTaxPaidDate,
		b.NextTaxDueDate,
		b.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *BusRepository) DeleteBus(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM buses WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *BusRepository) Buses(ctx context.Context, f entity.BusFilter) ([]entity.Bus, int, error) {
	stmt := sq.Select(
		"id",
		"registration_number",
		"bus_name",
		"capacity",
		"bus_type",
		"status",
		"insurance_expiry",
		"puc_expiry",
		"fitness_expiry",
		"ownership_type",
		"partner_name",
		"company_profit_share",
		"partner_profit_share",
		"home_state_id",
		"monthly_tax_amount",
		"tax_due_day",
		"last_tax_paid_date",
		"next_tax_due_date",
		"created_at",
		"updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("buses").PlaceholderFormat(sq.Dollar)

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	if f.Ownership != nil {
		stmt = stmt.Where(sq.Eq{"ownership_type": *f.Ownership})
	}

	if f.Limit > 0 {
		stmt = stmt.Limit(f.Limit).Offset(f.Offset)
	}

	stmt = stmt.OrderBy("registration_number")

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
		buses      []entity.Bus
		totalCount int
	)

	for rows.Next() {
		var (
			b     entity.Bus
			count int
		)

		err = rows.Scan(
			&b.ID,
			&b.RegistrationNumber,
			(*zeronull.Text)(&b.BusName),
			&b.Capacity,
			&b.BusType,
			&b.Status,
			&b.InsuranceExpiry,
			&b.PUCExpiry,
			&b.FitnessExpiry,
			&b.OwnershipType,
			(*zeronull.Text)(&b.PartnerName),
			&b.CompanyProfitShare,
			&b.PartnerProfitShare,
			(*zeronull.UUID)(&b.HomeStateID),
			&b.MonthlyTaxAmount,
			&b.TaxDueDay,
			&b.LastTaxPaidDate,
			&b.NextTaxDueDate,
			&b.CreatedAt,
			&b.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		buses = append(buses, b)
	}

	return buses, totalCount, nil
}

// BusesWithTaxDue returns active buses whose next tax date falls on or before
// the deadline, plus those that never recorded one.
func (r *BusRepository) BusesWithTaxDue(ctx context.Context, deadline time.Time) ([]entity.Bus, error) {
	q := `SELECT ` + busColumns + `
	FROM buses
	WHERE status = 'active' AND next_tax_due_date IS NOT NULL AND next_tax_due_date <= $1
	ORDER BY next_tax_due_date`

	rows, err := r.db.Query(ctx, q, deadline)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buses []entity.Bus

	for rows.Next() {
		b, err := scanBus(rows)
		if err != nil {
			return nil, err
		}

		buses = append(buses, b)
	}

	return buses, nil
}

func (r *BusRepository) CreateTaxRecord(ctx context.Context, rec entity.BusTaxRecord) (entity.BusTaxRecord, error) {
	const q = `
	INSERT INTO bus_tax_records (
		bus_id, tax_period_start, tax_period_end, due_date, amount, status,
		paid_date, payment_reference, notes
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx,
		q,
		rec.BusID,
		rec.TaxPeriodStart,
		rec.TaxPeriodEnd,
		rec.DueDate,
		rec.Amount,
		rec.Status,
		rec.PaidDate,
		zeronull.Text(rec.PaymentReference),
		zeronull.Text(rec.Notes),
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return entity.BusTaxRecord{}, err
	}

	return rec, nil
}

func (r *BusRepository) TaxRecords(ctx context.Context, busID uuid.UUID) ([]entity.BusTaxRecord, error) {
	const q = `
	SELECT id, bus_id, tax_period_start, tax_period_end, due_date, amount, status,
	       paid_date, payment_reference, notes, created_at, updated_at
	FROM bus_tax_records
	WHERE bus_id = $1
	ORDER BY due_date DESC`

	rows, err := r.db.Query(ctx, q, busID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []entity.BusTaxRecord

	for rows.Next() {
		var rec entity.BusTaxRecord

		err = rows.Scan(
			&rec.ID,
			&rec.BusID,
			&rec.TaxPeriodStart,
			&rec.TaxPeriodEnd,
			&rec.DueDate,
			&rec.Amount,
			&rec.Status,
			&rec.PaidDate,
			(*zeronull.Text)(&rec.PaymentReference),
			(*zeronull.Text)(&rec.Notes),
			&rec.CreatedAt,
			&rec.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		records = append(records, rec)
	}

	return records, nil
}

// MarkTaxPaid records payment on a tax record and advances the bus tax dates.
func (r *BusRepository) MarkTaxPaid(ctx context.Context, recordID uuid.UUID, paidDate time.Time, reference string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() { _ = tx.Rollback(ctx) }()

	const updateRecord = `
	UPDATE bus_tax_records
	SET status = 'paid', paid_date = $1, payment_reference = $2, updated_at = now()
	WHERE id = $3
	RETURNING bus_id, tax_period_end`

	var (
		busID     uuid.UUID
		periodEnd time.Time
	)

	err = tx.QueryRow(ctx, updateRecord, paidDate, zeronull.Text(reference), recordID).
		Scan(&busID, &periodEnd)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ErrNotFound
		}

		return err
	}

	const updateBus = `
	UPDATE buses
	SET last_tax_paid_date = $1, next_tax_due_date = $2, updated_at = now()
	WHERE id = $3`

	nextDue := periodEnd.AddDate(0, 1, 0)

	_, err = tx.Exec(ctx, updateBus, paidDate, nextDue, busID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func scanBus(row pgx.Row) (entity.Bus, error) {
	var b entity.Bus

	err := row.Scan(
		&b.ID,
		&b.RegistrationNumber,
		(*zeronull.Text)(&b.BusName),
		&b.Capacity,
		&b.BusType,
		&b.Status,
		&b.InsuranceExpiry,
		&b.PUCExpiry,
		&b.FitnessExpiry,
		&b.OwnershipType,
		(*zeronull.Text)(&b.PartnerName),
		&b.CompanyProfitShare,
		&b.PartnerProfitShare,
		(*zeronull.UUID)(&b.HomeStateID),
		&b.MonthlyTaxAmount,
		&b.TaxDueDay,
		&b.LastTaxPaidDate,
		&b.NextTaxDueDate,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Bus{}, entity.ErrNotFound
		}

		return entity.Bus{}, err
	}

	return b, nil
}
