package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/busmanager/backend/internal/entity"
)

type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, n entity.Notification) (entity.Notification, error) {
	const q = `
	INSERT INTO notifications (user_id, title, message, type, link)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at`

	err := r.db.QueryRow(ctx, q, n.UserID, n.Title, n.Message, n.Type, zeronull.Text(n.Link)).
		Scan(&n.ID, &n.CreatedAt)
	if err != nil {
		return entity.Notification{}, err
	}

	return n, nil
}

func (r *NotificationRepository) Notifications(ctx context.Context, userID uuid.UUID, f entity.NotificationFilter) ([]entity.Notification, error) {
	stmt := sq.Select("id", "user_id", "title", "message", "type", "read", "link", "created_at").
		From("notifications").
		Where(sq.Eq{"user_id": userID}).
		PlaceholderFormat(sq.Dollar)

	if f.UnreadOnly {
		stmt = stmt.Where(sq.Eq{"read": false})
	}

	if f.Limit > 0 {
		stmt = stmt.Limit(f.Limit).Offset(f.Offset)
	}

	stmt = stmt.OrderBy("created_at DESC")

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []entity.Notification

	for rows.Next() {
		var n entity.Notification

		err = rows.Scan(
			&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Read,
			(*zeronull.Text)(&n.Link),
			&n.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, n)
	}

	return notifications, nil
}

// MarkRead flips a single notification; scoped by user so one user cannot
// acknowledge another's.
func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	const q = `UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, q, id, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	const q = `UPDATE notifications SET read = true WHERE user_id = $1 AND NOT read`

	_, err := r.db.Exec(ctx, q, userID)

	return err
}

func (r *NotificationRepository) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	const q = `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND NOT read`

	var count int

	err := r.db.QueryRow(ctx, q, userID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// NotifyAdmins fans one message out to every admin user.
func (r *NotificationRepository) NotifyAdmins(ctx context.Context, title, message, nType, link string) error {
	const q = `
	INSERT INTO notifications (user_id, title, message, type, link)
	SELECT user_id, $1, $2, $3, $4
	FROM user_roles
	WHERE role = 'admin'`

	_, err := r.db.Exec(ctx, q, title, message, nType, zeronull.Text(link))

	return err
}
