package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/busmanager/backend/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=trip.go -destination=../mocks/trip.go -package=mocks

type TripRepository interface {
	CreateTrip(ctx context.Context, t entity.Trip) (entity.Trip, error)
	Trip(ctx context.Context, id uuid.UUID) (entity.Trip, error)
	UpdateTrip(ctx context.Context, t entity.Trip) error
	DeleteTrip(ctx context.Context, id uuid.UUID) error
	Trips(ctx context.Context, f entity.TripFilter) ([]entity.Trip, int, error)
	TripExistsForSchedule(ctx context.Context, scheduleID uuid.UUID, tripDate time.Time) (bool, error)
}

type tripBusReader interface {
	Bus(ctx context.Context, id uuid.UUID) (entity.Bus, error)
}

type tripProfileReader interface {
	ProfileByID(ctx context.Context, id uuid.UUID) (entity.Profile, error)
}

type TripService struct {
	repo     TripRepository
	buses    tripBusReader
	profiles tripProfileReader
	producer Producer
}

func NewTripService(repo TripRepository, buses tripBusReader, profiles tripProfileReader, producer Producer) *TripService {
	return &TripService{
		repo:     repo,
		buses:    buses,
		profiles: profiles,
		producer: producer,
	}
}

// CreateTrip stores the trip with bus and driver names frozen at creation
// time, so later fleet renames do not rewrite history.
func (s *TripService) CreateTrip(ctx context.Context, t entity.Trip) (entity.Trip, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.Trip{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceTrip, Action: entity.ActionCreate})
	if err != nil {
		return entity.Trip{}, err
	}

	if err = t.Status.Validate(); err != nil {
		return entity.Trip{}, err
	}

	if t.BusID != uuid.Nil {
		bus, err := s.buses.Bus(ctx, t.BusID)
		if err != nil {
			return entity.Trip{}, fmt.Errorf("get bus: %w", err)
		}

		t.BusNameSnapshot = bus.BusName
		if t.BusNameSnapshot == "" {
			t.BusNameSnapshot = bus.RegistrationNumber
		}
	}

	if t.DriverID != uuid.Nil {
		driver, err := s.profiles.ProfileByID(ctx, t.DriverID)
		if err != nil {
			return entity.Trip{}, fmt.Errorf("get driver: %w", err)
		}

		t.DriverNameSnapshot = driver.FullName
	}

	t, err = s.repo.CreateTrip(ctx, t)
	if err != nil {
		return entity.Trip{}, fmt.Errorf("create trip: %w", err)
	}

	s.producer.PublishEvent(ctx, "trip.created", t.ID.String(), map[string]string{
		"trip_number": t.TripNumber,
	})

	return t, nil
}

func (s *TripService) Trip(ctx context.Context, id uuid.UUID) (entity.Trip, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.Trip{}, err
	}

	t, err := s.repo.Trip(ctx, id)
	if err != nil {
		return entity.Trip{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{
		Resource: entity.ResourceTrip,
		Action:   entity.ActionRead,
		Owner:    t.DriverID,
	})
	if err != nil {
		return entity.Trip{}, err
	}

	return t, nil
}

// Trips lists trips. Drivers see only their own regardless of the filter.
func (s *TripService) Trips(ctx context.Context, f entity.TripFilter) ([]entity.Trip, int, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	if caller.Role == entity.RoleDriver {
		f.DriverID = &caller.ProfileID
	}

	owner := uuid.Nil
	if f.DriverID != nil {
		owner = *f.DriverID
	}

	err = entity.Authorize(caller, entity.AccessRequest{
		Resource: entity.ResourceTrip,
		Action:   entity.ActionList,
		Owner:    owner,
	})
	if err != nil {
		return nil, 0, err
	}

	return s.repo.Trips(ctx, f)
}

// UpdateTrip applies a full update for admins. Drivers may only touch their
// own trip's odometer readings and water count; everything else is kept from
// the stored row.
func (s *TripService) UpdateTrip(ctx context.Context, t entity.Trip) (entity.Trip, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.Trip{}, err
	}

	current, err := s.repo.Trip(ctx, t.ID)
	if err != nil {
		return entity.Trip{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{
		Resource: entity.ResourceTrip,
		Action:   entity.ActionUpdate,
		Owner:    current.DriverID,
	})
	if err != nil {
		return entity.Trip{}, err
	}

	if err = t.Status.Validate(); err != nil {
		return entity.Trip{}, err
	}

	if caller.Role == entity.RoleDriver {
		next := current
		next.OdometerStart = t.OdometerStart
		next.OdometerEnd = t.OdometerEnd
		next.WaterTaken = t.WaterTaken
		next.OdometerReturnStart = t.OdometerReturnStart
		next.OdometerReturnEnd = t.OdometerReturnEnd
		t = next
	}

	if err = s.repo.UpdateTrip(ctx, t); err != nil {
		return entity.Trip{}, err
	}

	return s.repo.Trip(ctx, t.ID)
}

func (s *TripService) DeleteTrip(ctx context.Context, id uuid.UUID) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceTrip, Action: entity.ActionDelete})
	if err != nil {
		return err
	}

	return s.repo.DeleteTrip(ctx, id)
}
