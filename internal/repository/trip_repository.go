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

type TripRepository struct {
	db *pgxpool.Pool
}

func NewTripRepository(db *pgxpool.Pool) *TripRepository {
	return &TripRepository{db: db}
}

const tripColumns = `id, trip_number, bus_id, driver_id, route_id, schedule_id,
	start_date, end_date, trip_date, status, trip_type, notes,
	bus_name_snapshot, driver_name_snapshot,
	departure_time::text, arrival_time::text, odometer_start, odometer_end,
	revenue_cash, revenue_online, revenue_paytm, revenue_others, revenue_agent,
	total_expense, gst_percentage, water_taken,
	return_departure_time::text, return_arrival_time::text, odometer_return_start, odometer_return_end,
	return_revenue_cash, return_revenue_online, return_revenue_paytm, return_revenue_others,
	return_revenue_agent, return_total_revenue, return_total_expense,
	created_at, updated_at`

func (r *TripRepository) CreateTrip(ctx context.Context, t entity.Trip) (entity.Trip, error) {
	const q = `
	INSERT INTO trips (
		trip_number, bus_id, driver_id, route_id, schedule_id,
		start_date, end_date, trip_date, status, trip_type, notes,
		bus_name_snapshot, driver_name_snapshot,
		departure_time, arrival_time, odometer_start, odometer_end,
		revenue_cash, revenue_online, revenue_paytm, revenue_others, revenue_agent,
		total_expense, gst_percentage, water_taken,
		return_departure_time, return_arrival_time, odometer_return_start, odometer_return_end,
		return_revenue_cash, return_revenue_online, return_revenue_paytm, return_revenue_others,
		return_revenue_agent, return_total_revenue, return_total_expense
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
	        NULLIF($14, '')::time, NULLIF($15, '')::time, $16, $17,
	        $18, $19, $20, $21, $22, $23, $24, $25,
	        NULLIF($26, '')::time, NULLIF($27, '')::time, $28, $29, $30, $31, $32,
	        $33, $34, $35, $36)
	RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx,
		q,
		t.TripNumber,
		zeronull.UUID(t.BusID),
		zeronull.UUID(t.DriverID),
		t.RouteID,
		zeronull.UUID(t.ScheduleID),
		t.StartDate,
		t.EndDate,
		t.TripDate,
		t.Status,
		t.TripType,
		zeronull.Text(t.Notes),
		zeronull.Text(t.BusNameSnapshot),
		zeronull.Text(t.DriverNameSnapshot),
		t.DepartureTime,
		t.ArrivalTime,
		t.OdometerStart,
		t.OdometerEnd,
		t.RevenueCash,
		t.RevenueOnline,
		t.RevenuePaytm,
		t.RevenueOthers,
		t.RevenueAgent,
		t.TotalExpense,
		t.GSTPercentage,
		t.WaterTaken,
		t.ReturnDepartureTime,
		t.ReturnArrivalTime,
		t.OdometerReturnStart,
		t.OdometerReturnEnd,
		t.ReturnRevenueCash,
		t.ReturnRevenueOnline,
		t.ReturnRevenuePaytm,
		t.ReturnRevenueOthers,
		t.ReturnRevenueAgent,
		t.ReturnTotalRevenue,
		t.ReturnTotalExpense,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.Trip{}, entity.ErrDuplicate
		}

		return entity.Trip{}, err
	}

	return t, nil
}

func (r *TripRepository) Trip(ctx context.Context, id uuid.UUID) (entity.Trip, error) {
	return scanTrip(r.db.QueryRow(ctx, `SELECT `+tripColumns+` FROM trips WHERE id = $1`, id))
}

func (r *TripRepository) UpdateTrip(ctx context.Context, t entity.Trip) error {
	const q = `
	UPDATE trips
	SET bus_id = $1,
	    driver_id = $2,
	    route_id = $3,
	    start_date = $4,
	    end_date = $5,
	    trip_date = $6,
	    status = $7,
	    trip_type = $8,
	    notes = $9,
	    departure_time = NULLIF($10, '')::time,
	    arrival_time = NULLIF($11, '')::time,
	    odometer_start = $12,
	    odometer_end = $13,
	    revenue_cash = $14,
	    revenue_online = $15,
	    revenue_paytm = $16,
	    revenue_others = $17,
	    revenue_agent = $18,
	    total_expense = $19,
	    gst_percentage = $20,
	    water_taken = $21,
	    return_departure_time = NULLIF($22, '')::time,
	    return_arrival_time = NULLIF($23, '')::time,
	    odometer_return_start = $24,
	    odometer_return_end = $25,
	    return_revenue_cash = $26,
	    return_revenue_online = $27,
	    return_revenue_paytm = $28,
	    return_revenue_others = $29,
	    return_revenue_agent = $30,
	    return_total_revenue = $31,
	    return_total_expense = $32,
	    updated_at = now()
	WHERE id = $33`

	result, err := r.db.Exec(
		ctx,
		q,
		zeronull.UUID(t.BusID),
		zeronull.UUID(t.DriverID),
		t.RouteID,
		t.StartDate,
		t.EndDate,
		t.TripDate,
		t.Status,
		t.TripType,
		zeronull.Text(t.Notes),
		t.DepartureTime,
		t.ArrivalTime,
		t.OdometerStart,
		t.OdometerEnd,
		t.RevenueCash,
		t.RevenueOnline,
		t.RevenuePaytm,
		t.RevenueOthers,
		t.RevenueAgent,
		t.TotalExpense,
		t.GSTPercentage,
		t.WaterTaken,
		t.ReturnDepartureTime,
		t.ReturnArrivalTime,
		t.OdometerReturnStart,
		t.OdometerReturnEnd,
		t.ReturnRevenueCash,
		t.ReturnRevenueOnline,
		t.ReturnRevenuePaytm,
		t.ReturnRevenueOthers,
		t.ReturnRevenueAgent,
		t.ReturnTotalRevenue,
		t.ReturnTotalExpense,
		t.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *TripRepository) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *TripRepository) Trips(ctx context.Context, f entity.TripFilter) ([]entity.Trip, int, error) {
	stmt := sq.Select(
		"id", "trip_number", "bus_id", "driver_id", "route_id", "schedule_id",
		"start_date", "end_date", "trip_date", "status", "trip_type", "notes",
		"bus_name_snapshot", "driver_name_snapshot",
		"departure_time::text", "arrival_time::text", "odometer_start", "odometer_end",
		"revenue_cash", "revenue_online", "revenue_paytm", "revenue_others", "revenue_agent",
		"total_expense", "gst_percentage", "water_taken",
		"return_departure_time::text", "return_arrival_time::text", "odometer_return_start", "odometer_return_end",
		"return_revenue_cash", "return_revenue_online", "return_revenue_paytm", "return_revenue_others",
		"return_revenue_agent", "return_total_revenue", "return_total_expense",
		"created_at", "updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("trips").PlaceholderFormat(sq.Dollar)

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	if f.BusID != nil {
		stmt = stmt.Where(sq.Eq{"bus_id": *f.BusID})
	}

	if f.DriverID != nil {
		stmt = stmt.Where(sq.Eq{"driver_id": *f.DriverID})
	}

	if f.FromDate != nil {
		stmt = stmt.Where(sq.GtOrEq{"start_date": *f.FromDate})
	}

	if f.ToDate != nil {
		stmt = stmt.Where(sq.LtOrEq{"start_date": *f.ToDate})
	}

	if f.Limit > 0 {
		stmt = stmt.Limit(f.Limit).Offset(f.Offset)
	}

	stmt = stmt.OrderBy("start_date DESC")

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
		trips      []entity.Trip
		totalCount int
	)

	for rows.Next() {
		var (
			t     entity.Trip
			count int
		)

		err = rows.Scan(
			&t.ID, &t.TripNumber,
			(*zeronull.UUID)(&t.BusID),
			(*zeronull.UUID)(&t.DriverID),
			&t.RouteID,
			(*zeronull.UUID)(&t.ScheduleID),
			&t.StartDate, &t.EndDate, &t.TripDate, &t.Status, &t.TripType,
			(*zeronull.Text)(&t.Notes),
			(*zeronull.Text)(&t.BusNameSnapshot),
			(*zeronull.Text)(&t.DriverNameSnapshot),
			(*zeronull.Text)(&t.DepartureTime), (*zeronull.Text)(&t.ArrivalTime), &t.OdometerStart, &t.OdometerEnd,
			&t.RevenueCash, &t.RevenueOnline, &t.RevenuePaytm, &t.RevenueOthers, &t.RevenueAgent,
			&t.TotalExpense, &t.GSTPercentage, &t.WaterTaken,
			(*zeronull.Text)(&t.ReturnDepartureTime), (*zeronull.Text)(&t.ReturnArrivalTime), &t.OdometerReturnStart, &t.OdometerReturnEnd,
			&t.ReturnRevenueCash, &t.ReturnRevenueOnline, &t.ReturnRevenuePaytm, &t.ReturnRevenueOthers,
			&t.ReturnRevenueAgent, &t.ReturnTotalRevenue, &t.ReturnTotalExpense,
			&t.CreatedAt, &t.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		trips = append(trips, t)
	}

	return trips, totalCount, nil
}

// TripExistsForSchedule reports whether a trip was already generated for the
// schedule on the given date. The generator uses it to skip duplicates.
func (r *TripRepository) TripExistsForSchedule(ctx context.Context, scheduleID uuid.UUID, tripDate time.Time) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM trips WHERE schedule_id = $1 AND trip_date = $2)`

	var exists bool

	err := r.db.QueryRow(ctx, q, scheduleID, tripDate).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

func scanTrip(row pgx.Row) (entity.Trip, error) {
	var t entity.Trip

	err := row.Scan(
		&t.ID, &t.TripNumber,
		(*zeronull.UUID)(&t.BusID),
		(*zeronull.UUID)(&t.DriverID),
		&t.RouteID,
		(*zeronull.UUID)(&t.ScheduleID),
		&t.StartDate, &t.EndDate, &t.TripDate, &t.Status, &t.TripType,
		(*zeronull.Text)(&t.Notes),
		(*zeronull.Text)(&t.BusNameSnapshot),
		(*zeronull.Text)(&t.DriverNameSnapshot),
		(*zeronull.Text)(&t.DepartureTime), (*zeronull.Text)(&t.ArrivalTime), &t.OdometerStart, &t.OdometerEnd,
		&t.RevenueCash, &t.RevenueOnline, &t.RevenuePaytm, &t.RevenueOthers, &t.RevenueAgent,
		&t.TotalExpense, &t.GSTPercentage, &t.WaterTaken,
		(*zeronull.Text)(&t.ReturnDepartureTime), (*zeronull.Text)(&t.ReturnArrivalTime), &t.OdometerReturnStart, &t.OdometerReturnEnd,
		&t.ReturnRevenueCash, &t.ReturnRevenueOnline, &t.ReturnRevenuePaytm, &t.ReturnRevenueOthers,
		&t.ReturnRevenueAgent, &t.ReturnTotalRevenue, &t.ReturnTotalExpense,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Trip{}, entity.ErrNotFound
		}

		return entity.Trip{}, err
	}

	return t, nil
}
