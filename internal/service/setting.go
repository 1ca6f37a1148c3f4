package service

import (
	"context"
	"fmt"

	"github.com/busmanager/backend/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=setting.go -destination=../mocks/setting.go -package=mocks

type SettingRepository interface {
	Setting(ctx context.Context, key string) (entity.AdminSetting, error)
	Settings(ctx context.Context) ([]entity.AdminSetting, error)
	UpsertSetting(ctx context.Context, key, value, description string) (entity.AdminSetting, error)
}

type SettingService struct {
	repo SettingRepository
}

func NewSettingService(repo SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

func (s *SettingService) Setting(ctx context.Context, key string) (entity.AdminSetting, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.AdminSetting{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceSetting, Action: entity.ActionRead})
	if err != nil {
		return entity.AdminSetting{}, err
	}

	return s.repo.Setting(ctx, key)
}

func (s *SettingService) Settings(ctx context.Context) ([]entity.AdminSetting, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceSetting, Action: entity.ActionList})
	if err != nil {
		return nil, err
	}

	return s.repo.Settings(ctx)
}

func (s *SettingService) UpsertSetting(ctx context.Context, key, value, description string) (entity.AdminSetting, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.AdminSetting{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceSetting, Action: entity.ActionUpdate})
	if err != nil {
		return entity.AdminSetting{}, err
	}

	if key == "" {
		return entity.AdminSetting{}, fmt.Errorf("%w: setting key is required", entity.ErrInvalidArgument)
	}

	return s.repo.UpsertSetting(ctx, key, value, description)
}
