package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/busmanager/backend/internal/entity"
	"github.com/busmanager/backend/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, email, password, fullName, phone string) (service.Session, error)
	Login(ctx context.Context, email, password string) (service.Session, error)
	Me(ctx context.Context) (entity.Caller, entity.Profile, error)
	ChangePassword(ctx context.Context, current, next string) error
	SetRole(ctx context.Context, userID uuid.UUID, role entity.Role) error
	Drivers(ctx context.Context) ([]entity.Driver, error)
	UpdateProfile(ctx context.Context, p entity.Profile) error
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponse struct {
	Token    string    `json:"token"`
	UserID   uuid.UUID `json:"userId"`
	Role     string    `json:"role"`
	Email    string    `json:"email"`
	FullName string    `json:"fullName"`
}

func sessionResponse(s service.Session) SessionResponse {
	return SessionResponse{
		Token:    s.Token,
		UserID:   s.Caller.UserID,
		Role:     s.Caller.Role.String(),
		Email:    s.Caller.Email,
		FullName: s.Caller.FullName,
	}
}

// Signup registers a new driver account
// @Summary Sign up
// @Tags auth
// @Accept json
// @Produce json
// @Param SignupRequest body SignupRequest true "New account"
// @Success 201 {object} SessionResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Failure 422 {object} ErrorResponse "Invalid input"
// @Router /auth/signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SignupRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	session, err := h.auth.Signup(ctx, req.Email, req.Password, req.FullName, req.Phone)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to sign up")
		return
	}

	SendJSON(ctx, w, http.StatusCreated, sessionResponse(session))
}

// Login exchanges credentials for an access token
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param LoginRequest body LoginRequest true "Credentials"
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	session, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to log in")
		return
	}

	SendJSON(ctx, w, http.StatusOK, sessionResponse(session))
}

type ProfileResponse struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"userId"`
	Email         string     `json:"email"`
	Role          string     `json:"role"`
	FullName      string     `json:"fullName"`
	Phone         string     `json:"phone"`
	LicenseNumber string     `json:"licenseNumber,omitempty"`
	LicenseExpiry *time.Time `json:"licenseExpiry,omitempty"`
	Address       string     `json:"address,omitempty"`
	AvatarURL     string     `json:"avatarUrl,omitempty"`
	RepairOrgID   *uuid.UUID `json:"repairOrgId,omitempty"`
}

func profileResponse(caller entity.Caller, p entity.Profile) ProfileResponse {
	resp := ProfileResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		Email:         caller.Email,
		Role:          caller.Role.String(),
		FullName:      p.FullName,
		Phone:         p.Phone,
		LicenseNumber: p.LicenseNumber,
		LicenseExpiry: p.LicenseExpiry,
		Address:       p.Address,
		AvatarURL:     p.AvatarURL,
	}

	if p.RepairOrgID != uuid.Nil {
		id := p.RepairOrgID
		resp.RepairOrgID = &id
	}

	return resp
}

// Me returns the authenticated user's profile
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [get]
// @Security BearerAuth
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	caller, profile, err := h.auth.Me(ctx)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to load profile")
		return
	}

	SendJSON(ctx, w, http.StatusOK, profileResponse(caller, profile))
}

type UpdateProfileRequest struct {
	FullName      string     `json:"fullName"`
	Phone         string     `json:"phone"`
	LicenseNumber string     `json:"licenseNumber"`
	LicenseExpiry *time.Time `json:"licenseExpiry"`
	Address       string     `json:"address"`
	AvatarURL     string     `json:"avatarUrl"`
}

// UpdateProfile updates the authenticated user's profile
// @Summary Update profile
// @Tags auth
// @Accept json
// @Produce json
// @Param UpdateProfileRequest body UpdateProfileRequest true "Profile fields"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Router /auth/me [put]
// @Security BearerAuth
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateProfileRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		SendDomainErr(ctx, w, err, "Authentication required")
		return
	}

	err = h.auth.UpdateProfile(ctx, entity.Profile{
		ID:            caller.ProfileID,
		FullName:      req.FullName,
		Phone:         req.Phone,
		LicenseNumber: req.LicenseNumber,
		LicenseExpiry: req.LicenseExpiry,
		Address:       req.Address,
		AvatarURL:     req.AvatarURL,
	})
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to update profile")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// ChangePassword rotates the caller's password
// @Summary Change password
// @Tags auth
// @Accept json
// @Param ChangePasswordRequest body ChangePasswordRequest true "Passwords"
// @Success 204
// @Failure 401 {object} ErrorResponse "Wrong current password"
// @Router /auth/password [put]
// @Security BearerAuth
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ChangePasswordRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = h.auth.ChangePassword(ctx, req.CurrentPassword, req.NewPassword)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to change password")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type SetRoleRequest struct {
	UserID uuid.UUID `json:"userId"`
	Role   string    `json:"role"`
}

// SetRole assigns a role to a user, admin only
// @Summary Set user role
// @Tags auth
// @Accept json
// @Param SetRoleRequest body SetRoleRequest true "User and role"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Router /auth/roles [put]
// @Security BearerAuth
func (h *Handler) SetRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SetRoleRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	err = h.auth.SetRole(ctx, req.UserID, entity.Role(req.Role))
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to set role")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type DriverResponse struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"userId"`
	Email         string     `json:"email"`
	FullName      string     `json:"fullName"`
	Phone         string     `json:"phone"`
	LicenseNumber string     `json:"licenseNumber,omitempty"`
	LicenseExpiry *time.Time `json:"licenseExpiry,omitempty"`
}

// Drivers lists driver profiles
// @Summary List drivers
// @Tags auth
// @Produce json
// @Success 200 {array} DriverResponse
// @Failure 403 {object} ErrorResponse
// @Router /drivers [get]
// @Security BearerAuth
func (h *Handler) Drivers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	drivers, err := h.auth.Drivers(ctx)
	if err != nil {
		SendDomainErr(ctx, w, err, "Failed to list drivers")
		return
	}

	resp := make([]DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		resp = append(resp, DriverResponse{
			ID:            d.ID,
			UserID:        d.UserID,
			Email:         d.Email,
			FullName:      d.FullName,
			Phone:         d.Phone,
			LicenseNumber: d.LicenseNumber,
			LicenseExpiry: d.LicenseExpiry,
		})
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}
