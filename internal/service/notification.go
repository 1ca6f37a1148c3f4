package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/busmanager/backend/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=notification.go -destination=../mocks/notification.go -package=mocks

type NotificationRepository interface {
	CreateNotification(ctx context.Context, n entity.Notification) (entity.Notification, error)
	Notifications(ctx context.Context, userID uuid.UUID, f entity.NotificationFilter) ([]entity.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	NotifyAdmins(ctx context.Context, title, message, nType, link string) error
}

// NotificationService serves each user their own notification feed. There is
// no cross-user access; the repository scopes every query by user id.
type NotificationService struct {
	repo NotificationRepository
}

func NewNotificationService(repo NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) Notifications(ctx context.Context, f entity.NotificationFilter) ([]entity.Notification, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	return s.repo.Notifications(ctx, caller.UserID, f)
}

func (s *NotificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	return s.repo.MarkRead(ctx, caller.UserID, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	return s.repo.MarkAllRead(ctx, caller.UserID)
}

func (s *NotificationService) UnreadCount(ctx context.Context) (int, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return 0, err
	}

	return s.repo.UnreadCount(ctx, caller.UserID)
}

// Notify creates a notification for a specific user, admin only.
func (s *NotificationService) Notify(ctx context.Context, n entity.Notification) (entity.Notification, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.Notification{}, err
	}

	if caller.Role != entity.RoleAdmin {
		return entity.Notification{}, entity.ErrForbidden
	}

	return s.repo.CreateNotification(ctx, n)
}
