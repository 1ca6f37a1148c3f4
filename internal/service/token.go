package service

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/busmanager/backend/internal/entity"
)

// TokenManager issues and verifies the HS256 access tokens the API runs on.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

type accessClaims struct {
	Role        string `json:"role"`
	ProfileID   string `json:"profile_id"`
	RepairOrgID string `json:"repair_org_id,omitempty"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	jwt.RegisteredClaims
}

func (m *TokenManager) Issue(caller entity.Caller) (string, error) {
	now := time.Now()

	claims := accessClaims{
		Role:      caller.Role.String(),
		ProfileID: caller.ProfileID.String(),
		Email:     caller.Email,
		FullName:  caller.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   caller.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	if caller.RepairOrgID != uuid.Nil {
		claims.RepairOrgID = caller.RepairOrgID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

func (m *TokenManager) Verify(raw string) (entity.Caller, error) {
	var claims accessClaims

	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}

		return m.secret, nil
	})
	if err != nil {
		return entity.Caller{}, fmt.Errorf("%w: %w", entity.ErrUnauthenticated, err)
	}

	userID, err := uuid.FromString(claims.Subject)
	if err != nil {
		return entity.Caller{}, fmt.Errorf("%w: bad subject: %w", entity.ErrUnauthenticated, err)
	}

	profileID, err := uuid.FromString(claims.ProfileID)
	if err != nil {
		return entity.Caller{}, fmt.Errorf("%w: bad profile id: %w", entity.ErrUnauthenticated, err)
	}

	role := entity.Role(claims.Role)
	if err = role.Validate(); err != nil {
		return entity.Caller{}, fmt.Errorf("%w: %w", entity.ErrUnauthenticated, err)
	}

	caller := entity.Caller{
		UserID:    userID,
		ProfileID: profileID,
		Role:      role,
		Email:     claims.Email,
		FullName:  claims.FullName,
	}

	if claims.RepairOrgID != "" {
		caller.RepairOrgID, err = uuid.FromString(claims.RepairOrgID)
		if err != nil {
			return entity.Caller{}, fmt.Errorf("%w: bad repair org id: %w", entity.ErrUnauthenticated, err)
		}
	}

	return caller, nil
}
