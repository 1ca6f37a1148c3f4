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

func repairOrgCtx(profileID, orgID uuid.UUID) context.Context {
	return entity.CtxWithCaller(context.Background(), entity.Caller{
		UserID:      uuid.Must(uuid.NewV4()),
		ProfileID:   profileID,
		Role:        entity.RoleRepairOrg,
		RepairOrgID: orgID,
	})
}

func TestRepairService_SubmitRecord(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepairRepository(ctrl)
	buses := mocks.NewMockrepairBusReader(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	profileID := uuid.Must(uuid.NewV4())
	orgID := uuid.Must(uuid.NewV4())
	otherOrgID := uuid.Must(uuid.NewV4())
	busID := uuid.Must(uuid.NewV4())
	ctx := repairOrgCtx(profileID, orgID)

	buses.EXPECT().Bus(ctx, busID).Return(entity.Bus{
		ID:                 busID,
		RegistrationNumber: "KA-01-AB-1234",
	}, nil)
	repo.EXPECT().CreateRecord(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, rec entity.RepairRecord) (entity.RepairRecord, error) {
			// The caller's org always wins over whatever the client sent.
			require.Equal(t, orgID, rec.OrganizationID)
			require.Equal(t, "KA-01-AB-1234", rec.BusRegistration)
			require.Equal(t, entity.RepairStatusSubmitted, rec.Status)
			require.Equal(t, profileID, rec.SubmittedBy)
			require.False(t, rec.RepairDate.IsZero())

			rec.ID = uuid.Must(uuid.NewV4())
			return rec, nil
		})
	producer.EXPECT().PublishEvent(ctx, "repair.submitted", gomock.Any(), gomock.Any())

	s := service.NewRepairService(repo, buses, producer)

	rec, err := s.SubmitRecord(ctx, entity.RepairRecord{
		OrganizationID: otherOrgID,
		BusID:          busID,
		RepairType:     "brake overhaul",
		PartsCost:      decimal.NewFromInt(1000),
	})
	require.NoError(t, err)
	require.Equal(t, orgID, rec.OrganizationID)
}

func TestRepairService_SubmitRecord_OrgNotConfigured(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepairRepository(ctrl)
	buses := mocks.NewMockrepairBusReader(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	ctx := repairOrgCtx(uuid.Must(uuid.NewV4()), uuid.Nil)

	s := service.NewRepairService(repo, buses, producer)

	_, err := s.SubmitRecord(ctx, entity.RepairRecord{BusID: uuid.Must(uuid.NewV4())})
	require.ErrorIs(t, err, entity.ErrInvalidArgument)
}

func TestRepairService_Records_OrgSeesOnlyOwn(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepairRepository(ctrl)
	buses := mocks.NewMockrepairBusReader(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	orgID := uuid.Must(uuid.NewV4())
	otherOrgID := uuid.Must(uuid.NewV4())
	ctx := repairOrgCtx(uuid.Must(uuid.NewV4()), orgID)

	repo.EXPECT().Records(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, f entity.RepairFilter) ([]entity.RepairRecord, int, error) {
			require.NotNil(t, f.OrganizationID)
			require.Equal(t, orgID, *f.OrganizationID)
			return nil, 0, nil
		})

	s := service.NewRepairService(repo, buses, producer)

	_, _, err := s.Records(ctx, entity.RepairFilter{OrganizationID: &otherOrgID})
	require.NoError(t, err)
}

func TestRepairService_ReviewRecord_OrgForbidden(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepairRepository(ctrl)
	buses := mocks.NewMockrepairBusReader(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	ctx := repairOrgCtx(uuid.Must(uuid.NewV4()), uuid.Must(uuid.NewV4()))

	s := service.NewRepairService(repo, buses, producer)

	_, err := s.ReviewRecord(ctx, uuid.Must(uuid.NewV4()), entity.RepairStatusApproved)
	require.ErrorIs(t, err, entity.ErrForbidden)
}

func TestRepairService_UpdateRecord_FrozenAfterReview(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepairRepository(ctrl)
	buses := mocks.NewMockrepairBusReader(ctrl)
	producer := mocks.NewMockProducer(ctrl)

	orgID := uuid.Must(uuid.NewV4())
	ctx := repairOrgCtx(uuid.Must(uuid.NewV4()), orgID)
	recordID := uuid.Must(uuid.NewV4())

	repo.EXPECT().Record(ctx, recordID).Return(entity.RepairRecord{
		ID:             recordID,
		OrganizationID: orgID,
		Status:         entity.RepairStatusApproved,
	}, nil)

	s := service.NewRepairService(repo, buses, producer)

	err := s.UpdateRecord(ctx, entity.RepairRecord{ID: recordID, RepairType: "repaint"})
	require.ErrorIs(t, err, entity.ErrInvalidTransition)
}
