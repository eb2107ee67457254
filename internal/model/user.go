package model

import "time"

// User represents a marketplace account (vendor, NGO, or volunteer).
type User struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	Organisation string     `json:"organisation,omitempty"`
	Location     string     `json:"location,omitempty"`
	Role         string     `json:"role"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

// Roles.
const (
	RoleVendor    = "vendor"
	RoleNGO       = "ngo"
	RoleVolunteer = "volunteer"
)

// ValidRole reports whether role is one of the three known roles.
func ValidRole(role string) bool {
	return role == RoleVendor || role == RoleNGO || role == RoleVolunteer
}
