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

type RepairRepository struct {
	db *pgxpool.Pool
}

func NewRepairRepository(db *pgxpool.Pool) *RepairRepository {
	return &RepairRepository{db: db}
}

const repairColumns = `id, repair_number, organization_id, bus_id, bus_registration,
	repair_date, repair_type, description, parts_changed, parts_cost, labor_cost,
	gst_applicable, gst_percentage, warranty_days, status, notes,
	photo_before_url, photo_after_url, submitted_by, approved_by, approved_at,
	created_at, updated_at`

func (r *RepairRepository) CreateRecord(ctx context.Context, rec entity.RepairRecord) (entity.RepairRecord, error) {
	const q = `
	INSERT INTO repair_records (
		repair_number, organization_id, bus_id, bus_registration, repair_date,
		repair_type, description, parts_changed, parts_cost, labor_cost,
		gst_applicable, gst_percentage, warranty_days, status, notes,
		photo_before_url, photo_after_url, submitted_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx,
		q,
		rec.RepairNumber,
		rec.OrganizationID,
		zeronull.UUID(rec.BusID),
		rec.BusRegistration,
		rec.RepairDate,
		rec.RepairType,
		rec.Description,
		zeronull.Text(rec.PartsChanged),
		rec.PartsCost,
		rec.LaborCost,
		rec.GSTApplicable,
		rec.GSTPercentage,
		rec.WarrantyDays,
		rec.Status,
		zeronull.Text(rec.Notes),
		zeronull.Text(rec.PhotoBeforeURL),
		zeronull.Text(rec.PhotoAfterURL),
		zeronull.UUID(rec.SubmittedBy),
	).Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.RepairRecord{}, entity.ErrDuplicate
		}

		return entity.RepairRecord{}, err
	}

	return rec, nil
}

func (r *RepairRepository) Record(ctx context.Context, id uuid.UUID) (entity.RepairRecord, error) {
	return scanRepair(r.db.QueryRow(ctx, `SELECT `+repairColumns+` FROM repair_records WHERE id = $1`, id))
}

func (r *RepairRepository) UpdateRecord(ctx context.Context, rec entity.RepairRecord) error {
	const q = `
	UPDATE repair_records
	SET bus_id = $1,
	    bus_registration = $2,
	    repair_date = $3,
	    repair_type = $4,
	    description = $5,
	    parts_changed = $6,
	    parts_cost = $7,
	    labor_cost = $8,
	    gst_applicable = $9,
	    gst_percentage = $10,
	    warranty_days = $11,
	    status = $12,
	    notes = $13,
	    photo_before_url = $14,
	    photo_after_url = $15,
	    approved_by = $16,
	    approved_at = $17,
	    updated_at = now()
	WHERE id = $18`

	result, err := r.db.Exec(
		ctx,
		q,
		zeronull.UUID(rec.BusID),
		rec.BusRegistration,
		rec.RepairDate,
		rec.RepairType,
		rec.Description,
		zeronull.Text(rec.PartsChanged),
		rec.PartsCost,
		rec.LaborCost,
		rec.GSTApplicable,
		rec.GSTPercentage,
		rec.WarrantyDays,
		rec.Status,
		zeronull.Text(rec.Notes),
		zeronull.Text(rec.PhotoBeforeURL),
		zeronull.Text(rec.PhotoAfterURL),
		zeronull.UUID(rec.ApprovedBy),
		rec.ApprovedAt,
		rec.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *RepairRepository) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM repair_records WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *RepairRepository) Records(ctx context.Context, f entity.RepairFilter) ([]entity.RepairRecord, int, error) {
	stmt := sq.Select(
		"id", "repair_number", "organization_id", "bus_id", "bus_registration",
		"repair_date", "repair_type", "description", "parts_changed", "parts_cost", "labor_cost",
		"gst_applicable", "gst_percentage", "warranty_days", "status", "notes",
		"photo_before_url", "photo_after_url", "submitted_by", "approved_by", "approved_at",
		"created_at", "updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("repair_records").PlaceholderFormat(sq.Dollar)

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	if f.OrganizationID != nil {
		stmt = stmt.Where(sq.Eq{"organization_id": *f.OrganizationID})
	}

	if f.BusID != nil {
		stmt = stmt.Where(sq.Eq{"bus_id": *f.BusID})
	}

	if f.FromDate != nil {
		stmt = stmt.Where(sq.GtOrEq{"repair_date": *f.FromDate})
	}

	if f.ToDate != nil {
		stmt = stmt.Where(sq.LtOrEq{"repair_date": *f.ToDate})
	}

	if f.Limit > 0 {
		stmt = stmt.Limit(f.Limit).Offset(f.Offset)
	}

	stmt = stmt.OrderBy("repair_date DESC")

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
		records    []entity.RepairRecord
		totalCount int
	)

	for rows.Next() {
		var (
			rec   entity.RepairRecord
			count int
		)

		err = rows.Scan(
			&rec.ID, &rec.RepairNumber, &rec.OrganizationID,
			(*zeronull.UUID)(&rec.BusID),
			&rec.BusRegistration, &rec.RepairDate, &rec.RepairType, &rec.Description,
			(*zeronull.Text)(&rec.PartsChanged),
			&rec.PartsCost, &rec.LaborCost, &rec.GSTApplicable, &rec.GSTPercentage,
			&rec.WarrantyDays, &rec.Status,
			(*zeronull.Text)(&rec.Notes),
			(*zeronull.Text)(&rec.PhotoBeforeURL),
			(*zeronull.Text)(&rec.PhotoAfterURL),
			(*zeronull.UUID)(&rec.SubmittedBy),
			(*zeronull.UUID)(&rec.ApprovedBy),
			&rec.ApprovedAt,
			&rec.CreatedAt, &rec.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		records = append(records, rec)
	}

	return records, totalCount, nil
}

func (r *RepairRepository) CreateOrganization(ctx context.Context, org entity.RepairOrganization) (entity.RepairOrganization, error) {
	const q = `
	INSERT INTO repair_organizations (org_code, org_name, contact_person, phone, email, address, is_active)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx,
		q,
		org.OrgCode,
		org.OrgName,
		zeronull.Text(org.ContactPerson),
		zeronull.Text(org.Phone),
		zeronull.Text(org.Email),
		zeronull.Text(org.Address),
		org.IsActive,
	).Scan(&org.ID, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.RepairOrganization{}, entity.ErrDuplicate
		}

		return entity.RepairOrganization{}, err
	}

	return org, nil
}

func (r *RepairRepository) Organization(ctx context.Context, id uuid.UUID) (entity.RepairOrganization, error) {
	const q = `
	SELECT id, org_code, org_name, contact_person, phone, email, address, is_active, created_at, updated_at
	FROM repair_organizations
	WHERE id = $1`

	return scanOrganization(r.db.QueryRow(ctx, q, id))
}

func (r *RepairRepository) Organizations(ctx context.Context, activeOnly bool) ([]entity.RepairOrganization, error) {
	q := `
	SELECT id, org_code, org_name, contact_person, phone, email, address, is_active, created_at, updated_at
	FROM repair_organizations`

	if activeOnly {
		q += ` WHERE is_active`
	}

	q += ` ORDER BY org_name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []entity.RepairOrganization

	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}

		orgs = append(orgs, org)
	}

	return orgs, nil
}

func scanOrganization(row pgx.Row) (entity.RepairOrganization, error) {
	var org entity.RepairOrganization

	err := row.Scan(
		&org.ID, &org.OrgCode, &org.OrgName,
		(*zeronull.Text)(&org.ContactPerson),
		(*zeronull.Text)(&org.Phone),
		(*zeronull.Text)(&org.Email),
		(*zeronull.Text)(&org.Address),
		&org.IsActive,
		&org.CreatedAt, &org.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.RepairOrganization{}, entity.ErrNotFound
		}

		return entity.RepairOrganization{}, err
	}

	return org, nil
}

func scanRepair(row pgx.Row) (entity.RepairRecord, error) {
	var rec entity.RepairRecord

	err := row.Scan(
		&rec.ID, &rec.RepairNumber, &rec.OrganizationID,
		(*zeronull.UUID)(&rec.BusID),
		&rec.BusRegistration, &rec.RepairDate, &rec.RepairType, &rec.Description,
		(*zeronull.Text)(&rec.PartsChanged),
		&rec.PartsCost, &rec.LaborCost, &rec.GSTApplicable, &rec.GSTPercentage,
		&rec.WarrantyDays, &rec.Status,
		(*zeronull.Text)(&rec.Notes),
		(*zeronull.Text)(&rec.PhotoBeforeURL),
		(*zeronull.Text)(&rec.PhotoAfterURL),
		(*zeronull.UUID)(&rec.SubmittedBy),
		(*zeronull.UUID)(&rec.ApprovedBy),
		&rec.ApprovedAt,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.RepairRecord{}, entity.ErrNotFound
		}

		return entity.RepairRecord{}, err
	}

	return rec, nil
}
