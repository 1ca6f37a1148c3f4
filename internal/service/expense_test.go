package service_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/busmanager/backend/internal/entity"
	"github.com/busmanager/backend/internal/mocks"
	"github.com/busmanager/backend/internal/service"
)

func driverCtx(profileID uuid.UUID) context.Context {
	return entity.CtxWithCaller(context.Background(), entity.Caller{
		UserID:    uuid.Must(uuid.NewV4()),
		ProfileID: profileID,
		Role:      entity.RoleDriver,
	})
}

func adminCtx(profileID uuid.UUID) context.Context {
	return entity.CtxWithCaller(context.Background(), entity.Caller{
		UserID:    uuid.Must(uuid.NewV4()),
		ProfileID: profileID,
		Role:      entity.RoleAdmin,
	})
}

func TestExpenseService_SubmitExpense(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockExpenseRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	driverID := uuid.Must(uuid.NewV4())
	ctx := driverCtx(driverID)

	repo.EXPECT().CreateExpense(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e entity.Expense) (entity.Expense, error) {
			require.Equal(t, driverID, e.SubmittedBy)
			require.Equal(t, entity.ExpenseStatusPending, e.Status)
			require.False(t, e.ExpenseDate.IsZero())

			e.ID = uuid.Must(uuid.NewV4())
			return e, nil
		})
	producer.EXPECT().PublishEvent(ctx, "expense.submitted", gomock.Any(), gomock.Any())

	s := service.NewExpenseService(repo, producer)

	e, err := s.SubmitExpense(ctx, entity.Expense{
		Amount: decimal.NewFromInt(500),
		// Submitter field from the client is ignored.
		SubmittedBy: uuid.Must(uuid.NewV4()),
		Status:      entity.ExpenseStatusApproved,
	})
	require.NoError(t, err)
	require.Equal(t, entity.ExpenseStatusPending, e.Status)
}

func TestExpenseService_SubmitExpense_RejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockExpenseRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	s := service.NewExpenseService(repo, producer)

	_, err := s.SubmitExpense(driverCtx(uuid.Must(uuid.NewV4())), entity.Expense{
		Amount: decimal.Zero,
	})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestExpenseService_Expenses_DriverSeesOnlyOwn(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockExpenseRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	driverID := uuid.Must(uuid.NewV4())
	otherID := uuid.Must(uuid.NewV4())
	ctx := driverCtx(driverID)

	repo.EXPECT().Expenses(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, f entity.ExpenseFilter) ([]entity.Expense, int, error) {
			require.NotNil(t, f.SubmittedBy)
			require.Equal(t, driverID, *f.SubmittedBy)
			return nil, 0, nil
		})

	s := service.NewExpenseService(repo, producer)

	// The filter asks for someone else's expenses; the service overrides it.
	_, _, err := s.Expenses(ctx, entity.ExpenseFilter{SubmittedBy: &otherID})
	require.NoError(t, err)
}

func TestExpenseService_ReviewExpense(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockExpenseRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	adminID := uuid.Must(uuid.NewV4())
	ctx := adminCtx(adminID)
	expenseID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Expense(ctx, expenseID).Return(entity.Expense{
		ID:     expenseID,
		Status: entity.ExpenseStatusPending,
		Amount: decimal.NewFromInt(500),
	}, nil)
	repo.EXPECT().UpdateExpense(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, e entity.Expense) error {
			require.Equal(t, entity.ExpenseStatusApproved, e.Status)
			require.Equal(t, adminID, e.ApprovedBy)
			require.Equal(t, "ok", e.AdminRemarks)
			require.NotNil(t, e.ApprovedAt)
			return nil
		})
	producer.EXPECT().PublishEvent(ctx, "expense.reviewed", expenseID.String(), gomock.Any())

	s := service.NewExpenseService(repo, producer)

	e, err := s.ReviewExpense(ctx, expenseID, entity.ExpenseStatusApproved, "ok")
	require.NoError(t, err)
	require.Equal(t, entity.ExpenseStatusApproved, e.Status)
}

func TestExpenseService_ReviewExpense_DriverForbidden(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockExpenseRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	s := service.NewExpenseService(repo, producer)

	_, err := s.ReviewExpense(driverCtx(uuid.Must(uuid.NewV4())), uuid.Must(uuid.NewV4()), entity.ExpenseStatusApproved, "")
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestExpenseService_UpdateExpense_FrozenAfterReview(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockExpenseRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	driverID := uuid.Must(uuid.NewV4())
	ctx := driverCtx(driverID)
	expenseID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Expense(ctx, expenseID).Return(entity.Expense{
		ID:          expenseID,
		SubmittedBy: driverID,
		Status:      entity.ExpenseStatusApproved,
	}, nil)

	s := service.NewExpenseService(repo, producer)

	err := s.UpdateExpense(ctx, entity.Expense{
		ID:     expenseID,
		Amount: decimal.NewFromInt(100),
	})
	require.ErrorIs(t, err, entity.ErrInvalidTransition)
}

func TestExpenseService_Expense_OtherDriversHidden(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockExpenseRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	ctx := driverCtx(uuid.Must(uuid.NewV4()))
	expenseID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Expense(ctx, expenseID).Return(entity.Expense{
		ID:          expenseID,
		SubmittedBy: uuid.Must(uuid.NewV4()),
	}, nil)

	s := service.NewExpenseService(repo, producer)

	_, err := s.Expense(ctx, expenseID)
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestExpenseService_Unauthenticated(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockExpenseRepository(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	s := service.NewExpenseService(repo, producer)

	_, err := s.SubmitExpense(context.Background(), entity.Expense{Amount: decimal.NewFromInt(1)})
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}
