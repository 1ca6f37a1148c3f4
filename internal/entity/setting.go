package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Well-known admin setting keys.
const (
	SettingAdminAlertEmail   = "admin_alert_email"
	SettingTripGenDaysAhead  = "trip_generation_days_ahead"
	SettingInvoiceGSTDefault = "default_gst_percentage"
)

type AdminSetting struct {
	ID          uuid.UUID
	Key         string
	Value       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
