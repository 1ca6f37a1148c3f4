package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/busmanager/backend/internal/entity"
)

type RouteRepository struct {
	db *pgxpool.Pool
}

func NewRouteRepository(db *pgxpool.Pool) *RouteRepository {
	return &RouteRepository{db: db}
}

const selectRoute = `
	SELECT id, route_name, from_state_id, to_state_id, from_address, to_address,
	       distance_km, estimated_duration_hours, created_at, updated_at
	FROM routes`

func (r *RouteRepository) CreateRoute(ctx context.Context, route entity.Route) (entity.Route, error) {
	const q = `
	INSERT INTO routes (
		route_name, from_state_id, to_state_id, from_address, to_address,
		distance_km, estimated_duration_hours
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(
		ctx,
		q,
		route.RouteName,
		route.FromStateID,
		route.ToStateID,
		zeronull.Text(route.FromAddress),
		zeronull.Text(route.ToAddress),
		route.DistanceKM,
		route.EstimatedDurationHours,
	).Scan(&route.ID, &route.CreatedAt, &route.UpdatedAt)
	if err != nil {
		return entity.Route{}, err
	}

	return route, nil
}

func (r *RouteRepository) Route(ctx context.Context, id uuid.UUID) (entity.Route, error) {
	return scanRoute(r.db.QueryRow(ctx, selectRoute+" WHERE id = $1", id))
}

func (r *RouteRepository) Routes(ctx context.Context) ([]entity.Route, error) {
	rows, err := r.db.Query(ctx, selectRoute+" ORDER BY route_name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []entity.Route

	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, err
		}

		routes = append(routes, route)
	}

	return routes, nil
}

func (r *RouteRepository) UpdateRoute(ctx context.Context, route entity.Route) error {
	const q = `
	UPDATE routes
	SET route_name = $1,
	    from_state_id = $2,
	    to_state_id = $3,
	    from_address = $4,
	    to_address = $5,
	    distance_km = $6,
	    estimated_duration_hours = $7,
	    updated_at = now()
	WHERE id = $8`

	result, err := r.db.Exec(
		ctx,
		q,
		route.RouteName,
		route.FromStateID,
		route.ToStateID,
		zeronull.Text(route.FromAddress),
		zeronull.Text(route.ToAddress),
		route.DistanceKM,
		route.EstimatedDurationHours,
		route.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *RouteRepository) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *RouteRepository) States(ctx context.Context) ([]entity.IndianState, error) {
	const q = `
	SELECT id, state_name, state_code, is_union_territory, created_at
	FROM indian_states
	ORDER BY state_name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var states []entity.IndianState

	for rows.Next() {
		var s entity.IndianState

		err = rows.Scan(&s.ID, &s.StateName, &s.StateCode, &s.IsUnionTerritory, &s.CreatedAt)
		if err != nil {
			return nil, err
		}

		states = append(states, s)
	}

	return states, nil
}

func scanRoute(row pgx.Row) (entity.Route, error) {
	var route entity.Route

	err := row.Scan(
		&route.ID,
		&route.RouteName,
		&route.FromStateID,
		&route.ToStateID,
		(*zeronull.Text)(&route.FromAddress),
		(*zeronull.Text)(&route.ToAddress),
		&route.DistanceKM,
		&route.EstimatedDurationHours,
		&route.CreatedAt,
		&route.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Route{}, entity.ErrNotFound
		}

		return entity.Route{}, err
	}

	return route, nil
}
