package entity_test

import (
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/busmanager/backend/internal/entity"
)

func TestAuthorize(t *testing.T) {
	t.Parallel()

	profileID := uuid.Must(uuid.NewV4())
	orgID := uuid.Must(uuid.NewV4())
	otherID := uuid.Must(uuid.NewV4())

	admin := entity.Caller{Role: entity.RoleAdmin, ProfileID: profileID}
	driver := entity.Caller{Role: entity.RoleDriver, ProfileID: profileID}
	repairOrg := entity.Caller{Role: entity.RoleRepairOrg, ProfileID: profileID, RepairOrgID: orgID}

	for _, tt := range []struct {
		name      string
		caller    entity.Caller
		req       entity.AccessRequest
		forbidden bool
	}{
		{
			name:   "admin does anything",
			caller: admin,
			req:    entity.AccessRequest{Resource: entity.ResourceSetting, Action: entity.ActionUpdate},
		},
		{
			name:   "driver lists buses",
			caller: driver,
			req:    entity.AccessRequest{Resource: entity.ResourceBus, Action: entity.ActionList},
		},
		{
			name:      "driver cannot create buses",
			caller:    driver,
			req:       entity.AccessRequest{Resource: entity.ResourceBus, Action: entity.ActionCreate},
			forbidden: true,
		},
		{
			name:   "driver reads own expense",
			caller: driver,
			req:    entity.AccessRequest{Resource: entity.ResourceExpense, Action: entity.ActionRead, Owner: profileID},
		},
		{
			name:      "driver cannot read another driver's expense",
			caller:    driver,
			req:       entity.AccessRequest{Resource: entity.ResourceExpense, Action: entity.ActionRead, Owner: otherID},
			forbidden: true,
		},
		{
			name:   "driver adjusts stock",
			caller: driver,
			req:    entity.AccessRequest{Resource: entity.ResourceStock, Action: entity.ActionAdjust},
		},
		{
			name:      "driver cannot touch invoices",
			caller:    driver,
			req:       entity.AccessRequest{Resource: entity.ResourceInvoice, Action: entity.ActionList},
			forbidden: true,
		},
		{
			name:   "repair org updates own record",
			caller: repairOrg,
			req:    entity.AccessRequest{Resource: entity.ResourceRepair, Action: entity.ActionUpdate, OwnerOrg: orgID},
		},
		{
			name:      "repair org cannot update another org's record",
			caller:    repairOrg,
			req:       entity.AccessRequest{Resource: entity.ResourceRepair, Action: entity.ActionUpdate, OwnerOrg: otherID},
			forbidden: true,
		},
		{
			name:      "repair org cannot delete records",
			caller:    repairOrg,
			req:       entity.AccessRequest{Resource: entity.ResourceRepair, Action: entity.ActionDelete, OwnerOrg: orgID},
			forbidden: true,
		},
		{
			name:      "own scope with zero owner is denied",
			caller:    driver,
			req:       entity.AccessRequest{Resource: entity.ResourceTrip, Action: entity.ActionUpdate},
			forbidden: true,
		},
		{
			name:      "unknown role gets nothing",
			caller:    entity.Caller{Role: entity.Role("ghost")},
			req:       entity.AccessRequest{Resource: entity.ResourceBus, Action: entity.ActionList},
			forbidden: true,
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := entity.Authorize(tt.caller, tt.req)

			if tt.forbidden && !errors.Is(err, entity.ErrForbidden) {
				t.Errorf("Authorize() error = %v, want ErrForbidden", err)
			}

			if !tt.forbidden && err != nil {
				t.Errorf("Authorize() error = %v, want nil", err)
			}
		})
	}
}
