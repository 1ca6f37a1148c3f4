package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/busmanager/backend/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=expense.go -destination=../mocks/expense.go -package=mocks

type ExpenseRepository interface {
	CreateExpense(ctx context.Context, e entity.Expense) (entity.Expense, error)
	Expense(ctx context.Context, id uuid.UUID) (entity.Expense, error)
	UpdateExpense(ctx context.Context, e entity.Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	Expenses(ctx context.Context, f entity.ExpenseFilter) ([]entity.Expense, int, error)
	Categories(ctx context.Context) ([]entity.ExpenseCategory, error)
	CreateCategory(ctx context.Context, c entity.ExpenseCategory) (entity.ExpenseCategory, error)
}

type ExpenseService struct {
	repo     ExpenseRepository
	producer Producer
}

func NewExpenseService(repo ExpenseRepository, producer Producer) *ExpenseService {
	return &ExpenseService{
		repo:     repo,
		producer: producer,
	}
}

// SubmitExpense files an expense on behalf of the caller. New expenses always
// start pending; drivers cannot pre-approve their own spending.
func (s *ExpenseService) SubmitExpense(ctx context.Context, e entity.Expense) (entity.Expense, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.Expense{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceExpense, Action: entity.ActionCreate})
	if err != nil {
		return entity.Expense{}, err
	}

	if e.Amount.Sign() <= 0 {
		return entity.Expense{}, fmt.Errorf("%w: expense amount must be positive", entity.ErrInvalidArgument)
	}

	e.SubmittedBy = caller.ProfileID
	e.Status = entity.ExpenseStatusPending

	if e.ExpenseDate.IsZero() {
		e.ExpenseDate = time.Now()
	}

	e, err = s.repo.CreateExpense(ctx, e)
	if err != nil {
		return entity.Expense{}, fmt.Errorf("create expense: %w", err)
	}

	s.producer.PublishEvent(ctx, "expense.submitted", e.ID.String(), map[string]string{
		"amount": e.Amount.String(),
	})

	return e, nil
}

func (s *ExpenseService) Expense(ctx context.Context, id uuid.UUID) (entity.Expense, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.Expense{}, err
	}

	e, err := s.repo.Expense(ctx, id)
	if err != nil {
		return entity.Expense{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{
		Resource: entity.ResourceExpense,
		Action:   entity.ActionRead,
		Owner:    e.SubmittedBy,
	})
	if err != nil {
		return entity.Expense{}, err
	}

	return e, nil
}

// Expenses lists expenses. Drivers see only their own submissions.
func (s *ExpenseService) Expenses(ctx context.Context, f entity.ExpenseFilter) ([]entity.Expense, int, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	if caller.Role == entity.RoleDriver {
		f.SubmittedBy = &caller.ProfileID
	}

	owner := uuid.Nil
	if f.SubmittedBy != nil {
		owner = *f.SubmittedBy
	}

	err = entity.Authorize(caller, entity.AccessRequest{
		Resource: entity.ResourceExpense,
		Action:   entity.ActionList,
		Owner:    owner,
	})
	if err != nil {
		return nil, 0, err
	}

	return s.repo.Expenses(ctx, f)
}

// UpdateExpense lets the submitter fix a still-pending expense. Decided
// expenses are frozen.
func (s *ExpenseService) UpdateExpense(ctx context.Context, e entity.Expense) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	current, err := s.repo.Expense(ctx, e.ID)
	if err != nil {
		return err
	}

	err = entity.Authorize(caller, entity.AccessRequest{
		Resource: entity.ResourceExpense,
		Action:   entity.ActionUpdate,
		Owner:    current.SubmittedBy,
	})
	if err != nil {
		return err
	}

	if caller.Role != entity.RoleAdmin && current.Status != entity.ExpenseStatusPending {
		return fmt.Errorf("%w: expense already %s", entity.ErrInvalidTransition, current.Status)
	}

	if e.Amount.Sign() <= 0 {
		return fmt.Errorf("%w: expense amount must be positive", entity.ErrInvalidArgument)
	}

	current.CategoryID = e.CategoryID
	current.Amount = e.Amount
	current.ExpenseDate = e.ExpenseDate
	current.Description = e.Description
	current.DocumentURL = e.DocumentURL
	current.FuelQuantity = e.FuelQuantity

	return s.repo.UpdateExpense(ctx, current)
}

// ReviewExpense approves or denies a pending expense, admin only.
func (s *ExpenseService) ReviewExpense(ctx context.Context, id uuid.UUID, status entity.ExpenseStatus, remarks string) (entity.Expense, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.Expense{}, err
	}

	if caller.Role != entity.RoleAdmin {
		return entity.Expense{}, entity.ErrForbidden
	}

	e, err := s.repo.Expense(ctx, id)
	if err != nil {
		return entity.Expense{}, err
	}

	if err = e.Review(status, remarks, caller.ProfileID, time.Now()); err != nil {
		return entity.Expense{}, err
	}

	if err = s.repo.UpdateExpense(ctx, e); err != nil {
		return entity.Expense{}, err
	}

	s.producer.PublishEvent(ctx, "expense.reviewed", e.ID.String(), map[string]string{
		"status": e.Status.String(),
	})

	return e, nil
}

func (s *ExpenseService) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	current, err := s.repo.Expense(ctx, id)
	if err != nil {
		return err
	}

	err = entity.Authorize(caller, entity.AccessRequest{
		Resource: entity.ResourceExpense,
		Action:   entity.ActionDelete,
		Owner:    current.SubmittedBy,
	})
	if err != nil {
		return err
	}

	if caller.Role != entity.RoleAdmin && current.Status != entity.ExpenseStatusPending {
		return fmt.Errorf("%w: expense already %s", entity.ErrInvalidTransition, current.Status)
	}

	return s.repo.DeleteExpense(ctx, id)
}

func (s *ExpenseService) Categories(ctx context.Context) ([]entity.ExpenseCategory, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceExpenseCategory, Action: entity.ActionList})
	if err != nil {
		return nil, err
	}

	return s.repo.Categories(ctx)
}

func (s *ExpenseService) CreateCategory(ctx context.Context, c entity.ExpenseCategory) (entity.ExpenseCategory, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.ExpenseCategory{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceExpenseCategory, Action: entity.ActionCreate})
	if err != nil {
		return entity.ExpenseCategory{}, err
	}

	return s.repo.CreateCategory(ctx, c)
}
