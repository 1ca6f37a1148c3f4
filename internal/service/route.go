package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/busmanager/backend/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=route.go -destination=../mocks/route.go -package=mocks

type RouteRepository interface {
	CreateRoute(ctx context.Context, route entity.Route) (entity.Route, error)
	Route(ctx context.Context, id uuid.UUID) (entity.Route, error)
	Routes(ctx context.Context) ([]entity.Route, error)
	UpdateRoute(ctx context.Context, route entity.Route) error
	DeleteRoute(ctx context.Context, id uuid.UUID) error
	States(ctx context.Context) ([]entity.IndianState, error)
}

type RouteService struct {
	repo RouteRepository
}

func NewRouteService(repo RouteRepository) *RouteService {
	return &RouteService{repo: repo}
}

func (s *RouteService) CreateRoute(ctx context.Context, route entity.Route) (entity.Route, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.Route{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceRoute, Action: entity.ActionCreate})
	if err != nil {
		return entity.Route{}, err
	}

	return s.repo.CreateRoute(ctx, route)
}

func (s *RouteService) Route(ctx context.Context, id uuid.UUID) (entity.Route, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.Route{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceRoute, Action: entity.ActionRead})
	if err != nil {
		return entity.Route{}, err
	}

	return s.repo.Route(ctx, id)
}

func (s *RouteService) Routes(ctx context.Context) ([]entity.Route, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceRoute, Action: entity.ActionList})
	if err != nil {
		return nil, err
	}

	return s.repo.Routes(ctx)
}

func (s *RouteService) UpdateRoute(ctx context.Context, route entity.Route) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceRoute, Action: entity.ActionUpdate})
	if err != nil {
		return err
	}

	return s.repo.UpdateRoute(ctx, route)
}

func (s *RouteService) DeleteRoute(ctx context.Context, id uuid.UUID) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceRoute, Action: entity.ActionDelete})
	if err != nil {
		return err
	}

	return s.repo.DeleteRoute(ctx, id)
}

func (s *RouteService) States(ctx context.Context) ([]entity.IndianState, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceState, Action: entity.ActionList})
	if err != nil {
		return nil, err
	}

	return s.repo.States(ctx)
}
