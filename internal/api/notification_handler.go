package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/busmanager/backend/internal/entity"
)

type NotificationService interface {
	Notifications(ctx context.Context, f entity.NotificationFilter) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	MarkAllRead(ctx context.Context) error
	UnreadCount(ctx context.Context) (int, error)
	Notify(ctx context.Context, n entity.Notification) (entity.Notification, error)
}

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	Link      string    `json:"link,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func notificationResponse(n entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		Read:      n.Read,
		Link:      n.Link,
		CreatedAt: n.CreatedAt,
	}
}

// Notifications lists the caller's notifications
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param unread query bool false "Unread only"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {array} NotificationResponse
// @Router /notifications [get]
// @Security BearerAuth
func (h *Handler) Notifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var f entity.NotificationFilter

	f.Limit, f.Offset = Pagination(r)
	f.UnreadOnly = r.URL.Query().Get("unread") == "true"

	notifications, err := h.notifications.Notifications(ctx, f)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to list notifications")
		return
	}

	resp := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, notificationResponse(n))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

// MarkNotificationRead marks one notification as read
// @Summary Mark notification read
// @Tags notifications
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /notifications/{id}/read [post]
// @Security BearerAuth
func (h *Handler) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := URLParamUUID(r, "id")
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid notification id")
		return
	}

	if err = h.notifications.MarkRead(ctx, id); err != nil {
		SendDomainErr(ctx, w, err, "Failed to mark notification read")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkAllNotificationsRead marks every notification as read
// @Summary Mark all notifications read
// @Tags notifications
// @Success 204
// @Router /notifications/read-all [post]
// @Security BearerAuth
func (h *Handler) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.notifications.MarkAllRead(ctx); err != nil {
		SendDomainErr(ctx, w, err, "Failed to mark notifications read")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}

// UnreadNotificationCount returns the caller's unread count
// @Summary Unread notification count
// @Tags notifications
// @Produce json
// @Success 200 {object} UnreadCountResponse
// @Router /notifications/unread-count [get]
// @Security BearerAuth
func (h *Handler) UnreadNotificationCount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	count, err := h.notifications.UnreadCount(ctx)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to count notifications")
		return
	}

	SendJSON(ctx, w, http.StatusOK, UnreadCountResponse{Count: count})
}

type NotifyRequest struct {
	UserID  uuid.UUID `json:"userId"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Type    string    `json:"type"`
	Link    string    `json:"link"`
}

// Notify sends a notification to a user, admin only
// @Summary Send notification
// @Tags notifications
// @Accept json
// @Produce json
// @Param NotifyRequest body NotifyRequest true "Notification"
// @Success 201 {object} NotificationResponse
// @Failure 403 {object} ErrorResponse
// @Router /notifications [post]
// @Security BearerAuth
func (h *Handler) Notify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req NotifyRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	n, err := h.notifications.Notify(ctx, entity.Notification{
		UserID:  req.UserID,
		Title:   req.Title,
		Message: req.Message,
		Type:    req.Type,
		Link:    req.Link,
	})
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to send notification")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, notificationResponse(n))
}
