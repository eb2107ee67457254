package engine

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/ishanbagra18/zero-waste/internal/authz"
	"github.com/ishanbagra18/zero-waste/internal/model"
	"github.com/ishanbagra18/zero-waste/internal/store"
)

// bookingTransitions is the legal transition table. Absent source states
// (rejected, cancelled, completed) are terminal.
var bookingTransitions = map[string][]string{
	model.BookingPending:  {model.BookingAccepted, model.BookingRejected, model.BookingCancelled},
	model.BookingAccepted: {model.BookingCompleted, model.BookingCancelled},
}

func bookingTransitionLegal(current, next string) bool {
	for _, s := range bookingTransitions[current] {
		if s == next {
			return true
		}
	}
	return false
}

// InitiateBooking creates a pending transport booking from an NGO to a
// volunteer and notifies the volunteer.
func InitiateBooking(ctx context.Context, db *sql.DB, actor Actor, volunteerID int64, fromLocation, toLocation, notes string) (*model.Booking, error) {
	if !authz.Allowed(actor.Role, authz.ActionBookingInitiate) {
		return nil, fmt.Errorf("%w: only NGOs can book volunteers", ErrUnauthorized)
	}
	if fromLocation == "" || toLocation == "" {
		return nil, fmt.Errorf("%w: from and to locations required", ErrValidation)
	}

	volunteer, err := store.GetUser(ctx, db, volunteerID)
	if err != nil {
		return nil, err
	}
	if volunteer == nil || volunteer.DeletedAt != nil || volunteer.Role != model.RoleVolunteer {
		return nil, fmt.Errorf("%w: volunteer %d", ErrNotFound, volunteerID)
	}

	booking, err := store.CreateBooking(ctx, db, actor.ID, volunteerID, fromLocation, toLocation, notes)
	if err != nil {
		return nil, err
	}

	slog.Info("booking created", "booking", booking.ID, "ngo", actor.ID, "volunteer", volunteerID)
	notify(ctx, db, volunteerID, nil,
		fmt.Sprintf("New booking request from %s - from %s to %s.", actor.Name, fromLocation, toLocation))

	return booking, nil
}

// SetBookingStatus moves a booking along the transition table. The
// assignee volunteer may accept, reject, or complete; the requesting NGO
// may cancel. Both parties are notified of the new status.
func SetBookingStatus(ctx context.Context, db *sql.DB, bookingID int64, newStatus string, actor Actor) (*model.Booking, error) {
	if !model.ValidBookingStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown booking status %q", ErrValidation, newStatus)
	}

	booking, err := store.GetBooking(ctx, db, bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: booking %d", ErrNotFound, bookingID)
	}

	switch newStatus {
	case model.BookingAccepted, model.BookingRejected, model.BookingCompleted:
		if !authz.Allowed(actor.Role, authz.ActionBookingResolve) || actor.ID != booking.VolunteerID {
			return nil, fmt.Errorf("%w: only the booked volunteer can set %s", ErrUnauthorized, newStatus)
		}
	case model.BookingCancelled:
		if !authz.Allowed(actor.Role, authz.ActionBookingCancel) || actor.ID != booking.NgoID {
			return nil, fmt.Errorf("%w: only the requesting NGO can cancel", ErrUnauthorized)
		}
	default:
		return nil, fmt.Errorf("%w: cannot move booking back to %s", ErrInvalidTransition, newStatus)
	}

	if !bookingTransitionLegal(booking.Status, newStatus) {
		return nil, fmt.Errorf("%w: cannot move booking from %s to %s",
			ErrInvalidTransition, booking.Status, newStatus)
	}

	n, err := store.SetBookingStatus(ctx, db, bookingID, booking.Status, newStatus)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: booking status changed concurrently", ErrConflict)
	}

	slog.Info("booking status updated", "booking", bookingID, "status", newStatus, "actor", actor.ID)

	message := fmt.Sprintf("Booking from %s to %s is now %s.",
		booking.FromLocation, booking.ToLocation, newStatus)
	notify(ctx, db, booking.NgoID, nil, message)
	notify(ctx, db, booking.VolunteerID, nil, message)

	return store.GetBooking(ctx, db, bookingID)
}

// BookingsFor returns the bookings the actor is a party to: requests for
// NGOs, assignments for volunteers.
func BookingsFor(ctx context.Context, db *sql.DB, actor Actor) ([]model.Booking, error) {
	switch actor.Role {
	case model.RoleNGO:
		return store.ListBookingsForNgo(ctx, db, actor.ID)
	case model.RoleVolunteer:
		return store.ListBookingsForVolunteer(ctx, db, actor.ID)
	}
	return nil, fmt.Errorf("%w: vendors have no bookings", ErrUnauthorized)
}
