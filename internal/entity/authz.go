package entity

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
)

type Resource string

const (
	ResourceBus             Resource = "bus"
	ResourceRoute           Resource = "route"
	ResourceState           Resource = "state"
	ResourceSchedule        Resource = "schedule"
	ResourceDriver          Resource = "driver"
	ResourceTrip            Resource = "trip"
	ResourceExpense         Resource = "expense"
	ResourceExpenseCategory Resource = "expense_category"
	ResourceStock           Resource = "stock"
	ResourceInvoice         Resource = "invoice"
	ResourceRepair          Resource = "repair"
	ResourceRepairOrg       Resource = "repair_org"
	ResourceSetting         Resource = "setting"
	ResourceUpload          Resource = "upload"
)

type Action string

const (
	ActionList   Action = "list"
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionAdjust Action = "adjust"
)

type scope int

const (
	scopeAny scope = iota
	scopeOwn
)

// AccessRequest names the resource and action a caller wants to perform.
// Owner and OwnerOrg carry the owning profile/organization of a concrete
// resource instance; leave them zero when ownership does not apply.
type AccessRequest struct {
	Resource Resource
	Action   Action
	Owner    uuid.UUID
	OwnerOrg uuid.UUID
}

// capabilities lists every grant a non-admin role has. Admins are allowed
// everything and short-circuit before the lookup.
var capabilities = map[Role]map[Resource]map[Action]scope{
	RoleDriver: {
		ResourceBus:             {ActionList: scopeAny, ActionRead: scopeAny},
		ResourceRoute:           {ActionList: scopeAny, ActionRead: scopeAny},
		ResourceState:           {ActionList: scopeAny},
		ResourceSchedule:        {ActionList: scopeAny, ActionRead: scopeAny},
		ResourceDriver:          {ActionRead: scopeOwn, ActionUpdate: scopeOwn},
		ResourceTrip:            {ActionList: scopeOwn, ActionRead: scopeOwn, ActionUpdate: scopeOwn},
		ResourceExpense:         {ActionList: scopeOwn, ActionRead: scopeOwn, ActionCreate: scopeAny, ActionUpdate: scopeOwn, ActionDelete: scopeOwn},
		ResourceExpenseCategory: {ActionList: scopeAny, ActionRead: scopeAny},
		ResourceStock:           {ActionList: scopeAny, ActionRead: scopeAny, ActionAdjust: scopeAny},
		ResourceUpload:          {ActionCreate: scopeAny, ActionDelete: scopeAny},
	},
	RoleRepairOrg: {
		ResourceState:     {ActionList: scopeAny},
		ResourceDriver:    {ActionRead: scopeOwn, ActionUpdate: scopeOwn},
		ResourceRepair:    {ActionList: scopeOwn, ActionRead: scopeOwn, ActionCreate: scopeAny, ActionUpdate: scopeOwn},
		ResourceRepairOrg: {ActionList: scopeOwn, ActionRead: scopeOwn},
		ResourceUpload:    {ActionCreate: scopeAny, ActionDelete: scopeAny},
	},
}

// Authorize is the single access-control decision point. It checks the
// caller's role capabilities and, for own-scoped grants, resource ownership.
func Authorize(c Caller, req AccessRequest) error {
	if c.Role == RoleAdmin {
		return nil
	}

	s, ok := capabilities[c.Role][req.Resource][req.Action]
	if !ok {
		return fmt.Errorf("%w: role %q may not %s %s", ErrForbidden, c.Role, req.Action, req.Resource)
	}

	if s == scopeOwn && !owns(c, req) {
		return fmt.Errorf("%w: role %q may only %s own %s", ErrForbidden, c.Role, req.Action, req.Resource)
	}

	return nil
}

func owns(c Caller, req AccessRequest) bool {
	if req.Owner != uuid.Nil && req.Owner == c.ProfileID {
		return true
	}

	if req.OwnerOrg != uuid.Nil && req.OwnerOrg == c.RepairOrgID {
		return true
	}

	return false
}
