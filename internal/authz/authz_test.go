package authz

import (
	"testing"

	"github.com/ishanbagra18/zero-waste/internal/model"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		name   string
		role   string
		action Action
		want   bool
	}{
		{"vendor creates items", model.RoleVendor, ActionItemCreate, true},
		{"ngo cannot create items", model.RoleNGO, ActionItemCreate, false},
		{"volunteer cannot create items", model.RoleVolunteer, ActionItemCreate, false},
		{"ngo initiates claims", model.RoleNGO, ActionClaimInitiate, true},
		{"vendor cannot initiate claims", model.RoleVendor, ActionClaimInitiate, false},
		{"vendor resolves claims", model.RoleVendor, ActionClaimResolve, true},
		{"ngo cannot resolve claims", model.RoleNGO, ActionClaimResolve, false},
		{"ngo initiates bookings", model.RoleNGO, ActionBookingInitiate, true},
		{"volunteer cannot initiate bookings", model.RoleVolunteer, ActionBookingInitiate, false},
		{"volunteer resolves bookings", model.RoleVolunteer, ActionBookingResolve, true},
		{"ngo cannot resolve bookings", model.RoleNGO, ActionBookingResolve, false},
		{"ngo cancels bookings", model.RoleNGO, ActionBookingCancel, true},
		{"volunteer cannot cancel bookings", model.RoleVolunteer, ActionBookingCancel, false},
		{"unknown role denied", "admin", ActionItemCreate, false},
		{"empty role denied", "", ActionClaimInitiate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(tt.role, tt.action); got != tt.want {
				t.Errorf("Allowed(%q, %v) = %v, want %v", tt.role, tt.action, got, tt.want)
			}
		})
	}
}
