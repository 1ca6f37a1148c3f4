package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

const (
	NotificationInfo    = "info"
	NotificationWarning = "warning"
	NotificationError   = "error"
	NotificationSuccess = "success"
)

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Message   string
	Type      string
	Read      bool
	Link      string
	CreatedAt time.Time
}

type NotificationFilter struct {
	UnreadOnly bool
	Limit      uint64
	Offset     uint64
}
