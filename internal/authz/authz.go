// Package authz is the role authorization gate for lifecycle transitions.
// It is a pure predicate over (role, action); ownership and involved-party
// checks belong to the engines, which know the records.
package authz

import "github.com/ishanbagra18/zero-waste/internal/model"

// Action identifies a guarded operation.
type Action int

const (
	ActionItemCreate Action = iota
	ActionItemUpdate
	ActionItemDelete
	ActionClaimInitiate
	ActionClaimResolve
	ActionBookingInitiate
	ActionBookingResolve // accept, reject, complete
	ActionBookingCancel
)

// permissions maps each action to the roles allowed to perform it.
var permissions = map[Action][]string{
	ActionItemCreate:      {model.RoleVendor},
	ActionItemUpdate:      {model.RoleVendor},
	ActionItemDelete:      {model.RoleVendor},
	ActionClaimInitiate:   {model.RoleNGO},
	ActionClaimResolve:    {model.RoleVendor},
	ActionBookingInitiate: {model.RoleNGO},
	ActionBookingResolve:  {model.RoleVolunteer},
	ActionBookingCancel:   {model.RoleNGO},
}

// Allowed reports whether role may perform action. Unknown roles and
// unknown actions are always denied.
func Allowed(role string, action Action) bool {
	for _, r := range permissions[action] {
		if r == role {
			return true
		}
	}
	return false
}
