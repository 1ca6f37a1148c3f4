package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
)

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleDriver    Role = "driver"
	RoleRepairOrg Role = "repair_org"
)

func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleDriver, RoleRepairOrg:
		return nil
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidArgument, r)
	}
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Profile struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	FullName      string
	Phone         string
	LicenseNumber string
	LicenseExpiry *time.Time
	Address       string
	AvatarURL     string
	RepairOrgID   uuid.UUID // only set for repair_org users
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Caller is the authenticated principal attached to every request.
type Caller struct {
	UserID      uuid.UUID
	ProfileID   uuid.UUID
	Role        Role
	RepairOrgID uuid.UUID
	Email       string
	FullName    string
}

// Driver is a profile joined with its account data for admin views.
type Driver struct {
	Profile
	Email string
	Role  Role
}
