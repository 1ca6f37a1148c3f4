package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/busmanager/backend/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=auth.go -destination=../mocks/auth.go -package=mocks

type UserRepository interface {
	CreateUser(ctx context.Context, user entity.User, profile entity.Profile, role entity.Role) (entity.User, entity.Profile, error)
	UserByEmail(ctx context.Context, email string) (entity.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (entity.User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	RoleByUserID(ctx context.Context, userID uuid.UUID) (entity.Role, error)
	SetRole(ctx context.Context, userID uuid.UUID, role entity.Role) error
	ProfileByUserID(ctx context.Context, userID uuid.UUID) (entity.Profile, error)
	ProfileByID(ctx context.Context, id uuid.UUID) (entity.Profile, error)
	UpdateProfile(ctx context.Context, p entity.Profile) error
	Drivers(ctx context.Context) ([]entity.Driver, error)
}

type Tokens interface {
	Issue(caller entity.Caller) (string, error)
	Verify(raw string) (entity.Caller, error)
}

const minPasswordLen = 8

type AuthService struct {
	users  UserRepository
	tokens Tokens
}

func NewAuthService(users UserRepository, tokens Tokens) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

type Session struct {
	Token  string
	Caller entity.Caller
}

// Signup registers a new account with the driver role. Role upgrades happen
// through SetRole by an admin afterwards.
func (s *AuthService) Signup(ctx context.Context, email, password, fullName, phone string) (Session, error) {
	if len(password) < minPasswordLen {
		return Session{}, fmt.Errorf("%w: password must be at least %d characters", entity.ErrInvalidArgument, minPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Session{}, fmt.Errorf("hash password: %w", err)
	}

	user := entity.User{
		Email:        email,
		PasswordHash: string(hash),
	}

	profile := entity.Profile{
		FullName: fullName,
		Phone:    phone,
	}

	user, profile, err = s.users.CreateUser(ctx, user, profile, entity.RoleDriver)
	if err != nil {
		return Session{}, fmt.Errorf("create user: %w", err)
	}

	return s.newSession(user, profile, entity.RoleDriver)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.users.UserByEmail(ctx, email)
	if err != nil {
		return Session{}, entity.ErrUnauthenticated
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return Session{}, entity.ErrUnauthenticated
	}

	profile, err := s.users.ProfileByUserID(ctx, user.ID)
	if err != nil {
		return Session{}, fmt.Errorf("get profile: %w", err)
	}

	role, err := s.users.RoleByUserID(ctx, user.ID)
	if err != nil {
		return Session{}, fmt.Errorf("get role: %w", err)
	}

	return s.newSession(user, profile, role)
}

func (s *AuthService) Me(ctx context.Context) (entity.Caller, entity.Profile, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.Caller{}, entity.Profile{}, err
	}

	profile, err := s.users.ProfileByUserID(ctx, caller.UserID)
	if err != nil {
		return entity.Caller{}, entity.Profile{}, fmt.Errorf("get profile: %w", err)
	}

	return caller, profile, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, current, next string) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	if len(next) < minPasswordLen {
		return fmt.Errorf("%w: new password must be at least %d characters", entity.ErrInvalidArgument, minPasswordLen)
	}

	user, err := s.users.UserByID(ctx, caller.UserID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current))
	if err != nil {
		return fmt.Errorf("%w: current password is incorrect", entity.ErrInvalidArgument)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.users.UpdatePassword(ctx, caller.UserID, string(hash))
}

// SetRole assigns a role to a user, admin only.
func (s *AuthService) SetRole(ctx context.Context, userID uuid.UUID, role entity.Role) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	if caller.Role != entity.RoleAdmin {
		return entity.ErrForbidden
	}

	if err = role.Validate(); err != nil {
		return err
	}

	return s.users.SetRole(ctx, userID, role)
}

func (s *AuthService) Drivers(ctx context.Context) ([]entity.Driver, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{
		Resource: entity.ResourceDriver,
		Action:   entity.ActionList,
	})
	if err != nil {
		return nil, err
	}

	return s.users.Drivers(ctx)
}

func (s *AuthService) UpdateProfile(ctx context.Context, p entity.Profile) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	err = entity.Authorize(caller, entity.AccessRequest{
		Resource: entity.ResourceDriver,
		Action:   entity.ActionUpdate,
		Owner:    p.ID,
	})
	if err != nil {
		return err
	}

	return s.users.UpdateProfile(ctx, p)
}

func (s *AuthService) newSession(user entity.User, profile entity.Profile, role entity.Role) (Session, error) {
	caller := entity.Caller{
		UserID:      user.ID,
		ProfileID:   profile.ID,
		Role:        role,
		RepairOrgID: profile.RepairOrgID,
		Email:       user.Email,
		FullName:    profile.FullName,
	}

	token, err := s.tokens.Issue(caller)
	if err != nil {
		return Session{}, err
	}

	return Session{
		Token:  token,
		Caller: caller,
	}, nil
}
