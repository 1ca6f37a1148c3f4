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

type ScheduleRepository struct {
	db *pgxpool.Pool
}

func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

const scheduleColumns = `id, bus_id, route_id, driver_id, days_of_week,
	departure_time::text, arrival_time::text, is_two_way,
	return_departure_time::text, return_arrival_time::text,
	is_active, notes, is_overnight, arrival_next_day, turnaround_hours,
	created_at, updated_at`

func (r *ScheduleRepository) CreateSchedule(ctx context.Context, s entity.Schedule) (entity.Schedule, error) {
	const q = `
	INSERT INTO bus_schedules (
		bus_id, route_id, driver_id, days_of_week, departure_time, arrival_time,
		is_two_way, return_departure_time, return_arrival_time, is_active, notes,
		is_overnight, arrival_next_day, turnaround_hours
	)
	VALUES ($1, $2, $3, $4, $5::time, $6::time, $7, NULLIF($8, '')::time, NULLIF($9, '')::time, $10, $11, $12, $13, $14)
	RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx,
		q,
		s.BusID,
		s.RouteID,
		zeronull.UUID(s.DriverID),
		s.DaysOfWeek,
		s.DepartureTime,
		s.ArrivalTime,
		s.IsTwoWay,
		s.ReturnDepartureTime,
		s.ReturnArrivalTime,
		s.IsActive,
		zeronull.Text(s.Notes),
		s.IsOvernight,
		s.ArrivalNextDay,
		s.TurnaroundHours,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return entity.Schedule{}, err
	}

	return s, nil
}

func (r *ScheduleRepository) Schedule(ctx context.Context, id uuid.UUID) (entity.Schedule, error) {
	q := `SELECT ` + scheduleColumns + ` FROM bus_schedules WHERE id = $1`
	return scanSchedule(r.db.QueryRow(ctx, q, id))
}

func (r *ScheduleRepository) Schedules(ctx context.Context, f entity.ScheduleFilter) ([]entity.Schedule, error) {
	stmt := sq.Select(
		"id",
		"bus_id",
		"route_id",
		"driver_id",
		"days_of_week",
		"departure_time::text",
		"arrival_time::text",
		"is_two_way",
		"return_departure_time::text",
		"return_arrival_time::text",
		"is_active",
		"notes",
		"is_overnight",
		"arrival_next_day",
		"turnaround_hours",
		"created_at",
		"updated_at",
	).From("bus_schedules").PlaceholderFormat(sq.Dollar)

	if f.BusID != nil {
		stmt = stmt.Where(sq.Eq{"bus_id": *f.BusID})
	}

	if f.RouteID != nil {
		stmt = stmt.Where(sq.Eq{"route_id": *f.RouteID})
	}

	if f.ActiveOnly {
		stmt = stmt.Where(sq.Eq{"is_active": true})
	}

	if f.Limit > 0 {
		stmt = stmt.Limit(f.Limit).Offset(f.Offset)
	}

	stmt = stmt.OrderBy("departure_time")

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []entity.Schedule

	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}

		schedules = append(schedules, s)
	}

	return schedules, nil
}

// ActiveSchedules returns every schedule eligible for trip generation.
func (r *ScheduleRepository) ActiveSchedules(ctx context.Context) ([]entity.Schedule, error) {
	return r.Schedules(ctx, entity.ScheduleFilter{ActiveOnly: true})
}

func (r *ScheduleRepository) UpdateSchedule(ctx context.Context, s entity.Schedule) error {
	const q = `
	UPDATE bus_schedules
	SET bus_id = $1,
	    route_id = $2,
	    driver_id = $3,
	    days_of_week = $4,
	    departure_time = $5::time,
	    arrival_time = $6::time,
	    is_two_way = $7,
	    return_departure_time = NULLIF($8, '')::time,
	    return_arrival_time = NULLIF($9, '')::time,
	    is_active = $10,
	    notes = $11,
	    is_overnight = $12,
	    arrival_next_day = $13,
	    turnaround_hours = $14,
	    updated_at = now()
	WHERE id = $15`

	result, err := r.db.Exec(
		ctx,
		q,
		s.BusID,
		s.RouteID,
		zeronull.UUID(s.DriverID),
		s.DaysOfWeek,
		s.DepartureTime,
		s.ArrivalTime,
		s.IsTwoWay,
		s.ReturnDepartureTime,
		s.ReturnArrivalTime,
		s.IsActive,
		zeronull.Text(s.Notes),
		s.IsOvernight,
		s.ArrivalNextDay,
		s.TurnaroundHours,
		s.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *ScheduleRepository) DeleteSchedule(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM bus_schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanSchedule(row pgx.Row) (entity.Schedule, error) {
	var s entity.Schedule

	err := row.Scan(
		&s.ID,
		&s.BusID,
		&s.RouteID,
		(*zeronull.UUID)(&s.DriverID),
		&s.DaysOfWeek,
		&s.DepartureTime,
		&s.ArrivalTime,
		&s.IsTwoWay,
		(*zeronull.Text)(&s.ReturnDepartureTime),
		(*zeronull.Text)(&s.ReturnArrivalTime),
		&s.IsActive,
		(*zeronull.Text)(&s.Notes),
		&s.IsOvernight,
		&s.ArrivalNextDay,
		&s.TurnaroundHours,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Schedule{}, entity.ErrNotFound
		}

		return entity.Schedule{}, err
	}

	return s, nil
}
