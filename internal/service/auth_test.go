package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/busmanager/backend/internal/entity"
	"github.com/busmanager/backend/internal/mocks"
	"github.com/busmanager/backend/internal/service"
)

func TestAuthService_Signup(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	tokens := mocks.NewMockTokens(ctrl)

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())
	profileID := uuid.Must(uuid.NewV4())

	users.EXPECT().CreateUser(ctx, gomock.Any(), gomock.Any(), entity.RoleDriver).DoAndReturn(
		func(_ context.Context, u entity.User, p entity.Profile, _ entity.Role) (entity.User, entity.Profile, error) {
			require.Equal(t, "ravi@example.com", u.Email)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret-pass")))

			u.ID = userID
			p.ID = profileID
			return u, p, nil
		})
	tokens.EXPECT().Issue(gomock.Any()).DoAndReturn(
		func(c entity.Caller) (string, error) {
			require.Equal(t, userID, c.UserID)
			require.Equal(t, profileID, c.ProfileID)
			require.Equal(t, entity.RoleDriver, c.Role)
			return "token", nil
		})

	s := service.NewAuthService(users, tokens)

	session, err := s.Signup(ctx, "ravi@example.com", "secret-pass", "Ravi Kumar", "9876543210")
	require.NoError(t, err)
	require.Equal(t, "token", session.Token)
	require.Equal(t, entity.RoleDriver, session.Caller.Role)
}

func TestAuthService_Signup_ShortPassword(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	tokens := mocks.NewMockTokens(ctrl)

	s := service.NewAuthService(users, tokens)

	_, err := s.Signup(context.Background(), "ravi@example.com", "short", "Ravi", "")
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	tokens := mocks.NewMockTokens(ctrl)

	ctx := context.Background()
	userID := uuid.Must(uuid.NewV4())

	user := entity.User{ID: userID, Email: "ravi@example.com", PasswordHash: string(hash)}

	t.Run("correct password", func(t *testing.T) {
		users.EXPECT().UserByEmail(ctx, "ravi@example.com").Return(user, nil)
		users.EXPECT().ProfileByUserID(ctx, userID).Return(entity.Profile{ID: uuid.Must(uuid.NewV4())}, nil)
		users.EXPECT().RoleByUserID(ctx, userID).Return(entity.RoleAdmin, nil)
		tokens.EXPECT().Issue(gomock.Any()).Return("token", nil)

		s := service.NewAuthService(users, tokens)

		session, err := s.Login(ctx, "ravi@example.com", "secret-pass")
		require.NoError(t, err)
		require.Equal(t, entity.RoleAdmin, session.Caller.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		users.EXPECT().UserByEmail(ctx, "ravi@example.com").Return(user, nil)

		s := service.NewAuthService(users, tokens)

		_, err := s.Login(ctx, "ravi@example.com", "wrong-pass")
		require.ErrorIs(t, err, entity.ErrUnauthenticated)
	})

	t.Run("unknown email", func(t *testing.T) {
		users.EXPECT().UserByEmail(ctx, "ghost@example.com").Return(entity.User{}, entity.ErrNotFound)

		s := service.NewAuthService(users, tokens)

		_, err := s.Login(ctx, "ghost@example.com", "secret-pass")
		require.ErrorIs(t, err, entity.ErrUnauthenticated)
	})
}

func TestAuthService_SetRole(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	tokens := mocks.NewMockTokens(ctrl)

	userID := uuid.Must(uuid.NewV4())

	t.Run("admin assigns role", func(t *testing.T) {
		ctx := adminCtx(uuid.Must(uuid.NewV4()))
		users.EXPECT().SetRole(ctx, userID, entity.RoleRepairOrg).Return(nil)

		s := service.NewAuthService(users, tokens)
		require.NoError(t, s.SetRole(ctx, userID, entity.RoleRepairOrg))
	})

	t.Run("driver forbidden", func(t *testing.T) {
		s := service.NewAuthService(users, tokens)

		err := s.SetRole(driverCtx(uuid.Must(uuid.NewV4())), userID, entity.RoleAdmin)
		require.ErrorIs(t, err, entity.ErrForbidden)
	})

	t.Run("unknown role rejected", func(t *testing.T) {
		s := service.NewAuthService(users, tokens)

		err := s.SetRole(adminCtx(uuid.Must(uuid.NewV4())), userID, entity.Role("superuser"))
		require.ErrorIs(t, err, entity.ErrInvalidArgument)
	})
}

func TestAuthService_UpdateProfile_OtherProfileForbidden(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	tokens := mocks.NewMockTokens(ctrl)

	s := service.NewAuthService(users, tokens)

	err := s.UpdateProfile(driverCtx(uuid.Must(uuid.NewV4())), entity.Profile{ID: uuid.Must(uuid.NewV4())})
	require.ErrorIs(t, err, entity.ErrForbidden)
}
