package model

import "time"

// Booking represents a transport request from an NGO to a volunteer.
type Booking struct {
	ID           int64     `json:"id"`
	NgoID        int64     `json:"ngo_id"`
	VolunteerID  int64     `json:"volunteer_id"`
	FromLocation string    `json:"from_location"`
	ToLocation   string    `json:"to_location"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Joined fields (not always populated).
	NgoName       string `json:"ngo_name,omitempty"`
	VolunteerName string `json:"volunteer_name,omitempty"`
}

// Booking statuses.
const (
	BookingPending   = "pending"
	BookingAccepted  = "accepted"
	BookingRejected  = "rejected"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// ValidBookingStatus reports whether status is a known booking status.
func ValidBookingStatus(status string) bool {
	switch status {
	case BookingPending, BookingAccepted, BookingRejected, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// BookingTerminal reports whether status permits no further transitions.
func BookingTerminal(status string) bool {
	switch status {
	case BookingRejected, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}
