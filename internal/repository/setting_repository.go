package repository

import (
	"context"
	"errors"

	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/busmanager/backend/internal/entity"
)

type SettingRepository struct {
	db *pgxpool.Pool
}

func NewSettingRepository(db *pgxpool.Pool) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) Setting(ctx context.Context, key string) (entity.AdminSetting, error) {
	const q = `
	SELECT id, key, value, description, created_at, updated_at
	FROM admin_settings
	WHERE key = $1`

	var s entity.AdminSetting

	err := r.db.QueryRow(ctx, q, key).Scan(
		&s.ID, &s.Key, &s.Value,
		(*zeronull.Text)(&s.Description),
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.AdminSetting{}, entity.ErrNotFound
		}

		return entity.AdminSetting{}, err
	}

	return s, nil
}

func (r *SettingRepository) Settings(ctx context.Context) ([]entity.AdminSetting, error) {
	const q = `
	SELECT id, key, value, description, created_at, updated_at
	FROM admin_settings
	ORDER BY key`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var settings []entity.AdminSetting

	for rows.Next() {
		var s entity.AdminSetting

		err = rows.Scan(
			&s.ID, &s.Key, &s.Value,
			(*zeronull.Text)(&s.Description),
			&s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		settings = append(settings, s)
	}

	return settings, nil
}

func (r *SettingRepository) UpsertSetting(ctx context.Context, key, value, description string) (entity.AdminSetting, error) {
	const q = `
	INSERT INTO admin_settings (key, value, description)
	VALUES ($1, $2, $3)
	ON CONFLICT (key) DO UPDATE
	SET value = EXCLUDED.value,
	    description = COALESCE(NULLIF(EXCLUDED.description, ''), admin_settings.description),
	    updated_at = now()
	RETURNING id, key, value, description, created_at, updated_at`

	var s entity.AdminSetting

	err := r.db.QueryRow(ctx, q, key, value, zeronull.Text(description)).Scan(
		&s.ID, &s.Key, &s.Value,
		(*zeronull.Text)(&s.Description),
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return entity.AdminSetting{}, err
	}

	return s, nil
}
