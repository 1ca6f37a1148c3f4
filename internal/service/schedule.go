package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/busmanager/backend/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=schedule.go -destination=../mocks/schedule.go -package=mocks

type ScheduleRepository interface {
	CreateSchedule(ctx context.Context, s entity.Schedule) (entity.Schedule, error)
	Schedule(ctx context.Context, id uuid.UUID) (entity.Schedule, error)
	Schedules(ctx context.Context, f entity.ScheduleFilter) ([]entity.Schedule, error)
	UpdateSchedule(ctx context.Context, s entity.Schedule) error
	DeleteSchedule(ctx context.Context, id uuid.UUID) error
}

type ScheduleService struct {
	repo ScheduleRepository
}

func NewScheduleService(repo ScheduleRepository) *ScheduleService {
	return &ScheduleService{repo: repo}
}

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

func validateDays(days []string) error {
	for _, d := range days {
		if !weekdays[d] {
			return fmt.Errorf("%w: unknown day of week %q", entity.ErrInvalidArgument, d)
		}
	}

	return nil
}

func (s *ScheduleService) CreateSchedule(ctx context.Context, sch entity.Schedule) (entity.Schedule, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.Schedule{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceSchedule, Action: entity.ActionCreate})
	if err != nil {
		return entity.Schedule{}, err
	}

	if err = validateDays(sch.DaysOfWeek); err != nil {
		return entity.Schedule{}, err
	}

	return s.repo.CreateSchedule(ctx, sch)
}

func (s *ScheduleService) Schedule(ctx context.Context, id uuid.UUID) (entity.Schedule, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.Schedule{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceSchedule, Action: entity.ActionRead})
	if err != nil {
		return entity.Schedule{}, err
	}

	return s.repo.Schedule(ctx, id)
}

func (s *ScheduleService) Schedules(ctx context.Context, f entity.ScheduleFilter) ([]entity.Schedule, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceSchedule, Action: entity.ActionList})
	if err != nil {
		return nil, err
	}

	return s.repo.Schedules(ctx, f)
}

func (s *ScheduleService) UpdateSchedule(ctx context.Context, sch entity.Schedule) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceSchedule, Action: entity.ActionUpdate})
	if err != nil {
		return err
	}

	if err = validateDays(sch.DaysOfWeek); err != nil {
		return err
	}

	return s.repo.UpdateSchedule(ctx, sch)
}

func (s *ScheduleService) DeleteSchedule(ctx context.Context, id uuid.UUID) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceSchedule, Action: entity.ActionDelete})
	if err != nil {
		return err
	}

	return s.repo.DeleteSchedule(ctx, id)
}
