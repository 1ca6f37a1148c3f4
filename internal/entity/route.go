package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type IndianState struct {
	ID               uuid.UUID
	StateName        string
	StateCode        string
	IsUnionTerritory bool
	CreatedAt        time.Time
}

type Route struct {
	ID                     uuid.UUID
	RouteName              string
	FromStateID            uuid.UUID
	ToStateID              uuid.UUID
	FromAddress            string
	ToAddress              string
	DistanceKM             decimal.Decimal
	EstimatedDurationHours decimal.Decimal
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
