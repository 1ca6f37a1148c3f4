package repository

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/busmanager/backend/internal/entity"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser inserts the user, its profile and its role row in one
// transaction so a failed profile insert never leaves an orphan account.
func (r *UserRepository) CreateUser(ctx context.Context, user entity.User, profile entity.Profile, role entity.Role) (entity.User, entity.Profile, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return entity.User{}, entity.Profile{}, err
	}

	defer func() { _ = tx.Rollback(ctx) }()

	const insertUser = `
	INSERT INTO users (email, encrypted_password)
	VALUES ($1, $2)
	RETURNING id, created_at, updated_at`

	err = tx.QueryRow(ctx, insertUser, user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.User{}, entity.Profile{}, entity.ErrEmailTaken
		}

		return entity.User{}, entity.Profile{}, err
	}

	const insertProfile = `
	INSERT INTO profiles (user_id, full_name, phone, license_number, license_expiry, address, repair_org_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id, created_at, updated_at`

	profile.UserID = user.ID

	err = tx.QueryRow(
		ctx,
		insertProfile,
		profile.UserID,
		profile.FullName,
		zeronull.Text(profile.Phone),
		zeronull.Text(profile.LicenseNumber),
		profile.LicenseExpiry,
		zeronull.Text(profile.Address),
		zeronull.UUID(profile.RepairOrgID),
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return entity.User{}, entity.Profile{}, err
	}

	const insertRole = `INSERT INTO user_roles (user_id, role) VALUES ($1, $2)`

	_, err = tx.Exec(ctx, insertRole, user.ID, role)
	if err != nil {
		return entity.User{}, entity.Profile{}, err
	}

	if err = tx.Commit(ctx); err != nil {
		return entity.User{}, entity.Profile{}, err
	}

	return user, profile, nil
}

func (r *UserRepository) UserByEmail(ctx context.Context, email string) (entity.User, error) {
	const q = `
	SELECT id, email, encrypted_password, created_at, updated_at
	FROM users
	WHERE email = $1`

	var u entity.User

	err := r.db.QueryRow(ctx, q, email).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrNotFound
		}

		return entity.User{}, err
	}

	return u, nil
}

func (r *UserRepository) UserByID(ctx context.Context, id uuid.UUID) (entity.User, error) {
	const q = `
	SELECT id, email, encrypted_password, created_at, updated_at
	FROM users
	WHERE id = $1`

	var u entity.User

	err := r.db.QueryRow(ctx, q, id).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.User{}, entity.ErrNotFound
		}

		return entity.User{}, err
	}

	return u, nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	const q = `UPDATE users SET encrypted_password = $1, updated_at = now() WHERE id = $2`

	result, err := r.db.Exec(ctx, q, passwordHash, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *UserRepository) RoleByUserID(ctx context.Context, userID uuid.UUID) (entity.Role, error) {
	const q = `SELECT role FROM user_roles WHERE user_id = $1`

	var role entity.Role

	err := r.db.QueryRow(ctx, q, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", entity.ErrNotFound
		}

		return "", err
	}

	return role, nil
}

func (r *UserRepository) SetRole(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	const q = `
	INSERT INTO user_roles (user_id, role)
	VALUES ($1, $2)
	ON CONFLICT (user_id, role) DO NOTHING`

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `DELETE FROM user_roles WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, q, userID, role)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

const selectProfile = `
	SELECT id, user_id, full_name, phone, license_number, license_expiry,
	       address, avatar_url, repair_org_id, created_at, updated_at
	FROM profiles`

func (r *UserRepository) ProfileByUserID(ctx context.Context, userID uuid.UUID) (entity.Profile, error) {
	return scanProfile(r.db.QueryRow(ctx, selectProfile+" WHERE user_id = $1", userID))
}

func (r *UserRepository) ProfileByID(ctx context.Context, id uuid.UUID) (entity.Profile, error) {
	return scanProfile(r.db.QueryRow(ctx, selectProfile+" WHERE id = $1", id))
}

func (r *UserRepository) UpdateProfile(ctx context.Context, p entity.Profile) error {
	const q = `
	UPDATE profiles
	SET full_name = $1,
	    phone = $2,
	    license_number = $3,
	    license_expiry = $4,
	    address = $5,
	    avatar_url = $6,
	    repair_org_id = $7,
	    updated_at = now()
	WHERE id = $8`

	result, err := r.db.Exec(
		ctx,
		q,
		p.FullName,
		zeronull.Text(p.Phone),
		zeronull.Text(p.LicenseNumber),
		p.LicenseExpiry,
		zeronull.Text(p.Address),
		zeronull.Text(p.AvatarURL),
		zeronull.UUID(p.RepairOrgID),
		p.ID,
	)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// Drivers returns every profile whose user carries the driver role.
func (r *UserRepository) Drivers(ctx context.Context) ([]entity.Driver, error) {
	const q = `
	SELECT p.id, p.user_id, p.full_name, p.phone, p.license_number, p.license_expiry,
	       p.address, p.avatar_url, p.repair_org_id, p.created_at, p.updated_at,
	       u.email
	FROM profiles p
	JOIN users u ON u.id = p.user_id
	JOIN user_roles r ON r.user_id = p.user_id
	WHERE r.role = 'driver'
	ORDER BY p.full_name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var drivers []entity.Driver

	for rows.Next() {
		var d entity.Driver

		err = rows.Scan(
			&d.ID,
			&d.UserID,
			&d.FullName,
			(*zeronull.Text)(&d.Phone),
			(*zeronull.Text)(&d.LicenseNumber),
			&d.LicenseExpiry,
			(*zeronull.Text)(&d.Address),
			(*zeronull.Text)(&d.AvatarURL),
			(*zeronull.UUID)(&d.RepairOrgID),
			&d.CreatedAt,
			&d.UpdatedAt,
			&d.Email,
		)
		if err != nil {
			return nil, err
		}

		d.Role = entity.RoleDriver

		drivers = append(drivers, d)
	}

	return drivers, nil
}

func scanProfile(row pgx.Row) (entity.Profile, error) {
	var p entity.Profile

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.FullName,
		(*zeronull.Text)(&p.Phone),
		(*zeronull.Text)(&p.LicenseNumber),
		&p.LicenseExpiry,
		(*zeronull.Text)(&p.Address),
		(*zeronull.Text)(&p.AvatarURL),
		(*zeronull.UUID)(&p.RepairOrgID),
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Profile{}, entity.ErrNotFound
		}

		return entity.Profile{}, err
	}

	return p, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
