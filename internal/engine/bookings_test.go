package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/ishanbagra18/zero-waste/internal/db"
	"github.com/ishanbagra18/zero-waste/internal/model"
	"github.com/ishanbagra18/zero-waste/internal/store"
)

func TestInitiateBooking(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	ngo := newActor(t, database, "Food Bank", model.RoleNGO)
	volunteer := newActor(t, database, "Sam", model.RoleVolunteer)

	booking, err := InitiateBooking(ctx, database, ngo, volunteer.ID, "Market St", "Shelter Rd", "fragile")
	if err != nil {
		t.Fatalf("InitiateBooking: %v", err)
	}
	if booking.Status != model.BookingPending {
		t.Errorf("expected pending, got %s", booking.Status)
	}
	if booking.NgoID != ngo.ID || booking.VolunteerID != volunteer.ID {
		t.Errorf("wrong parties: ngo=%d volunteer=%d", booking.NgoID, booking.VolunteerID)
	}

	// Volunteer got exactly one notification.
	feed, _ := store.ListNotifications(ctx, database, volunteer.ID)
	if len(feed) != 1 {
		t.Fatalf("expected 1 volunteer notification, got %d", len(feed))
	}
}

func TestInitiateBookingRequiresNGO(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	vendor := newActor(t, database, "Green Grocer", model.RoleVendor)
	volunteer := newActor(t, database, "Sam", model.RoleVolunteer)

	_, err := InitiateBooking(ctx, database, vendor, volunteer.ID, "A", "B", "")
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestInitiateBookingValidation(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	ngo := newActor(t, database, "Food Bank", model.RoleNGO)
	volunteer := newActor(t, database, "Sam", model.RoleVolunteer)

	if _, err := InitiateBooking(ctx, database, ngo, volunteer.ID, "", "B", ""); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for empty from, got %v", err)
	}

	// Assignee must be an existing volunteer.
	if _, err := InitiateBooking(ctx, database, ngo, 999, "A", "B", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing volunteer, got %v", err)
	}
	other := newActor(t, database, "Shelter", model.RoleNGO)
	if _, err := InitiateBooking(ctx, database, ngo, other.ID, "A", "B", ""); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound booking a non-volunteer, got %v", err)
	}
}

func TestBookingStatusFlow(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	ngo := newActor(t, database, "Food Bank", model.RoleNGO)
	volunteer := newActor(t, database, "Sam", model.RoleVolunteer)

	booking, err := InitiateBooking(ctx, database, ngo, volunteer.ID, "Market St", "Shelter Rd", "")
	if err != nil {
		t.Fatalf("InitiateBooking: %v", err)
	}

	// Volunteer accepts; both parties are notified.
	accepted, err := SetBookingStatus(ctx, database, booking.ID, model.BookingAccepted, volunteer)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.Status != model.BookingAccepted {
		t.Errorf("expected accepted, got %s", accepted.Status)
	}

	ngoFeed, _ := store.ListNotifications(ctx, database, ngo.ID)
	if len(ngoFeed) != 1 {
		t.Errorf("expected 1 ngo notification, got %d", len(ngoFeed))
	}
	volFeed, _ := store.ListNotifications(ctx, database, volunteer.ID)
	// Initial request plus the status change.
	if len(volFeed) != 2 {
		t.Errorf("expected 2 volunteer notifications, got %d", len(volFeed))
	}

	// Reverting to pending is not a legal move.
	_, err = SetBookingStatus(ctx, database, booking.ID, model.BookingPending, volunteer)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition for revert, got %v", err)
	}

	// Volunteer completes.
	completed, err := SetBookingStatus(ctx, database, booking.ID, model.BookingCompleted, volunteer)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if completed.Status != model.BookingCompleted {
		t.Errorf("expected completed, got %s", completed.Status)
	}
}

func TestBookingTerminalStates(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	ngo := newActor(t, database, "Food Bank", model.RoleNGO)
	volunteer := newActor(t, database, "Sam", model.RoleVolunteer)

	// Out of completed.
	booking, _ := InitiateBooking(ctx, database, ngo, volunteer.ID, "A", "B", "")
	SetBookingStatus(ctx, database, booking.ID, model.BookingAccepted, volunteer)
	SetBookingStatus(ctx, database, booking.ID, model.BookingCompleted, volunteer)
	if _, err := SetBookingStatus(ctx, database, booking.ID, model.BookingCancelled, ngo); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition out of completed, got %v", err)
	}

	// Out of cancelled.
	booking2, _ := InitiateBooking(ctx, database, ngo, volunteer.ID, "A", "B", "")
	SetBookingStatus(ctx, database, booking2.ID, model.BookingCancelled, ngo)
	if _, err := SetBookingStatus(ctx, database, booking2.ID, model.BookingAccepted, volunteer); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition out of cancelled, got %v", err)
	}

	// Out of rejected.
	booking3, _ := InitiateBooking(ctx, database, ngo, volunteer.ID, "A", "B", "")
	SetBookingStatus(ctx, database, booking3.ID, model.BookingRejected, volunteer)
	if _, err := SetBookingStatus(ctx, database, booking3.ID, model.BookingAccepted, volunteer); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("expected ErrInvalidTransition out of rejected, got %v", err)
	}
}

func TestBookingStatusAuthorization(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	ngo := newActor(t, database, "Food Bank", model.RoleNGO)
	otherNgo := newActor(t, database, "Shelter", model.RoleNGO)
	volunteer := newActor(t, database, "Sam", model.RoleVolunteer)
	otherVolunteer := newActor(t, database, "Alex", model.RoleVolunteer)

	booking, _ := InitiateBooking(ctx, database, ngo, volunteer.ID, "A", "B", "")

	// Only the booked volunteer may accept.
	if _, err := SetBookingStatus(ctx, database, booking.ID, model.BookingAccepted, otherVolunteer); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for other volunteer, got %v", err)
	}
	if _, err := SetBookingStatus(ctx, database, booking.ID, model.BookingAccepted, ngo); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for ngo accept, got %v", err)
	}

	// Only the requesting NGO may cancel.
	if _, err := SetBookingStatus(ctx, database, booking.ID, model.BookingCancelled, volunteer); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for volunteer cancel, got %v", err)
	}
	if _, err := SetBookingStatus(ctx, database, booking.ID, model.BookingCancelled, otherNgo); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for other ngo cancel, got %v", err)
	}

	if _, err := SetBookingStatus(ctx, database, booking.ID, model.BookingCancelled, ngo); err != nil {
		t.Errorf("expected requester cancel to succeed, got %v", err)
	}
}

func TestBookingStatusValidationAndMissing(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	volunteer := newActor(t, database, "Sam", model.RoleVolunteer)

	if _, err := SetBookingStatus(ctx, database, 1, "shipped", volunteer); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for unknown status, got %v", err)
	}
	if _, err := SetBookingStatus(ctx, database, 999, model.BookingAccepted, volunteer); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBookingsFor(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	ngo := newActor(t, database, "Food Bank", model.RoleNGO)
	otherNgo := newActor(t, database, "Shelter", model.RoleNGO)
	volunteer := newActor(t, database, "Sam", model.RoleVolunteer)
	vendor := newActor(t, database, "Green Grocer", model.RoleVendor)

	InitiateBooking(ctx, database, ngo, volunteer.ID, "A", "B", "")
	InitiateBooking(ctx, database, otherNgo, volunteer.ID, "C", "D", "")

	mine, err := BookingsFor(ctx, database, ngo)
	if err != nil {
		t.Fatalf("BookingsFor(ngo): %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("expected 1 booking for ngo, got %d", len(mine))
	}

	assigned, err := BookingsFor(ctx, database, volunteer)
	if err != nil {
		t.Fatalf("BookingsFor(volunteer): %v", err)
	}
	if len(assigned) != 2 {
		t.Errorf("expected 2 bookings for volunteer, got %d", len(assigned))
	}

	if _, err := BookingsFor(ctx, database, vendor); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for vendor, got %v", err)
	}
}
