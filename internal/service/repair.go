package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/busmanager/backend/internal/entity"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=repair.go -destination=../mocks/repair.go -package=mocks

type RepairRepository interface {
	CreateRecord(ctx context.Context, rec entity.RepairRecord) (entity.RepairRecord, error)
	Record(ctx context.Context, id uuid.UUID) (entity.RepairRecord, error)
	UpdateRecord(ctx context.Context, rec entity.RepairRecord) error
	DeleteRecord(ctx context.Context, id uuid.UUID) error
	Records(ctx context.Context, f entity.RepairFilter) ([]entity.RepairRecord, int, error)
	CreateOrganization(ctx context.Context, org entity.RepairOrganization) (entity.RepairOrganization, error)
	Organization(ctx context.Context, id uuid.UUID) (entity.RepairOrganization, error)
	Organizations(ctx context.Context, activeOnly bool) ([]entity.RepairOrganization, error)
}

type repairBusReader interface {
	Bus(ctx context.Context, id uuid.UUID) (entity.Bus, error)
}

type RepairService struct {
	repo     RepairRepository
	buses    repairBusReader
	producer Producer
}

func NewRepairService(repo RepairRepository, buses repairBusReader, producer Producer) *RepairService {
	return &RepairService{
		repo:     repo,
		buses:    buses,
		producer: producer,
	}
}

// SubmitRecord files a repair record. Repair organizations always file under
// their own organization; the record starts in submitted and snapshots the
// bus registration so the record survives later bus edits.
func (s *RepairService) SubmitRecord(ctx context.Context, rec entity.RepairRecord) (entity.RepairRecord, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.RepairRecord{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceRepair, Action: entity.ActionCreate})
	if err != nil {
		return entity.RepairRecord{}, err
	}

	if caller.Role == entity.RoleRepairOrg {
		if caller.RepairOrgID == uuid.Nil {
			return entity.RepairRecord{}, fmt.Errorf("%w: repair organization not configured for this account", entity.ErrInvalidArgument)
		}

		rec.OrganizationID = caller.RepairOrgID
	}

	if rec.OrganizationID == uuid.Nil {
		return entity.RepairRecord{}, fmt.Errorf("%w: organization is required", entity.ErrInvalidArgument)
	}

	if rec.BusID == uuid.Nil {
		return entity.RepairRecord{}, fmt.Errorf("%w: bus is required", entity.ErrInvalidArgument)
	}

	bus, err := s.buses.Bus(ctx, rec.BusID)
	if err != nil {
		return entity.RepairRecord{}, fmt.Errorf("bus lookup: %w", err)
	}

	rec.BusRegistration = bus.RegistrationNumber
	rec.Status = entity.RepairStatusSubmitted
	rec.SubmittedBy = caller.ProfileID

	if rec.RepairDate.IsZero() {
		rec.RepairDate = time.Now()
	}

	rec, err = s.repo.CreateRecord(ctx, rec)
	if err != nil {
		return entity.RepairRecord{}, fmt.Errorf("create repair record: %w", err)
	}

	s.producer.PublishEvent(ctx, "repair.submitted", rec.ID.String(), map[string]string{
		"number": rec.RepairNumber,
		"bus":    rec.BusRegistration,
	})

	return rec, nil
}

func (s *RepairService) Record(ctx context.Context, id uuid.UUID) (entity.RepairRecord, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.RepairRecord{}, err
	}

	rec, err := s.repo.Record(ctx, id)
	if err != nil {
		return entity.RepairRecord{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{
		Resource: entity.ResourceRepair,
		Action:   entity.ActionRead,
		OwnerOrg: rec.OrganizationID,
	})
	if err != nil {
		return entity.RepairRecord{}, err
	}

	return rec, nil
}

// Records lists repair records. Repair organizations only ever see their own.
func (s *RepairService) Records(ctx context.Context, f entity.RepairFilter) ([]entity.RepairRecord, int, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	if caller.Role == entity.RoleRepairOrg {
		f.OrganizationID = &caller.RepairOrgID
	}

	ownerOrg := uuid.Nil
	if f.OrganizationID != nil {
		ownerOrg = *f.OrganizationID
	}

	err = entity.Authorize(caller, entity.AccessRequest{
		Resource: entity.ResourceRepair,
		Action:   entity.ActionList,
		OwnerOrg: ownerOrg,
	})
	if err != nil {
		return nil, 0, err
	}

	return s.repo.Records(ctx, f)
}

// UpdateRecord lets the submitting organization amend a record while it is
// still in submitted. Reviewed records are frozen for everyone but admins.
func (s *RepairService) UpdateRecord(ctx context.Context, rec entity.RepairRecord) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	current, err := s.repo.Record(ctx, rec.ID)
	if err != nil {
		return err
	}

	err = entity.Authorize(caller, entity.AccessRequest{
		Resource: entity.ResourceRepair,
		Action:   entity.ActionUpdate,
		OwnerOrg: current.OrganizationID,
	})
	if err != nil {
		return err
	}

	if caller.Role != entity.RoleAdmin && !current.Editable() {
		return fmt.Errorf("%w: repair record already %s", entity.ErrInvalidTransition, current.Status)
	}

	current.RepairDate = rec.RepairDate
	current.RepairType = rec.RepairType
	current.Description = rec.Description
	current.PartsChanged = rec.PartsChanged
	current.PartsCost = rec.PartsCost
	current.LaborCost = rec.LaborCost
	current.GSTApplicable = rec.GSTApplicable
	current.GSTPercentage = rec.GSTPercentage
	current.WarrantyDays = rec.WarrantyDays
	current.Notes = rec.Notes
	current.PhotoBeforeURL = rec.PhotoBeforeURL
	current.PhotoAfterURL = rec.PhotoAfterURL

	return s.repo.UpdateRecord(ctx, current)
}

// ReviewRecord approves or rejects a submitted record, admin only.
func (s *RepairService) ReviewRecord(ctx context.Context, id uuid.UUID, status entity.RepairStatus) (entity.RepairRecord, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.RepairRecord{}, err
	}

	if caller.Role != entity.RoleAdmin {
		return entity.RepairRecord{}, entity.ErrForbidden
	}

	rec, err := s.repo.Record(ctx, id)
	if err != nil {
		return entity.RepairRecord{}, err
	}

	if err = rec.Review(status, caller.ProfileID, time.Now()); err != nil {
		return entity.RepairRecord{}, err
	}

	if err = s.repo.UpdateRecord(ctx, rec); err != nil {
		return entity.RepairRecord{}, err
	}

	s.producer.PublishEvent(ctx, "repair.reviewed", rec.ID.String(), map[string]string{
		"number": rec.RepairNumber,
		"status": rec.Status.String(),
	})

	return rec, nil
}

func (s *RepairService) DeleteRecord(ctx context.Context, id uuid.UUID) error {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceRepair, Action: entity.ActionDelete})
	if err != nil {
		return err
	}

	return s.repo.DeleteRecord(ctx, id)
}

func (s *RepairService) CreateOrganization(ctx context.Context, org entity.RepairOrganization) (entity.RepairOrganization, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.RepairOrganization{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceRepairOrg, Action: entity.ActionCreate})
	if err != nil {
		return entity.RepairOrganization{}, err
	}

	if org.OrgCode == "" || org.OrgName == "" {
		return entity.RepairOrganization{}, fmt.Errorf("%w: organization code and name are required", entity.ErrInvalidArgument)
	}

	org.IsActive = true

	return s.repo.CreateOrganization(ctx, org)
}

func (s *RepairService) Organization(ctx context.Context, id uuid.UUID) (entity.RepairOrganization, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return entity.RepairOrganization{}, err
	}

	err = entity.Authorize(caller, entity.AccessRequest{
		Resource: entity.ResourceRepairOrg,
		Action:   entity.ActionRead,
		OwnerOrg: id,
	})
	if err != nil {
		return entity.RepairOrganization{}, err
	}

	return s.repo.Organization(ctx, id)
}

func (s *RepairService) Organizations(ctx context.Context, activeOnly bool) ([]entity.RepairOrganization, error) {
	caller, err := entity.CallerFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if caller.Role == entity.RoleRepairOrg {
		org, err := s.repo.Organization(ctx, caller.RepairOrgID)
		if err != nil {
			return nil, err
		}

		return []entity.RepairOrganization{org}, nil
	}

	err = entity.Authorize(caller, entity.AccessRequest{Resource: entity.ResourceRepairOrg, Action: entity.ActionList})
	if err != nil {
		return nil, err
	}

	return s.repo.Organizations(ctx, activeOnly)
}
