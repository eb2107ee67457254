package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ishanbagra18/zero-waste/internal/model"
)

const bookingColumns = `b.id, b.ngo_id, b.volunteer_id, b.from_location, b.to_location,
	        b.notes, b.status, b.created_at, b.updated_at,
	        n.name AS ngo_name, vol.name AS volunteer_name`

// CreateBooking creates a new booking in the pending state.
func CreateBooking(ctx context.Context, db *sql.DB, ngoID, volunteerID int64, fromLocation, toLocation, notes string) (*model.Booking, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO bookings (ngo_id, volunteer_id, from_location, to_location, notes)
		 VALUES (?, ?, ?, ?, ?)`,
		ngoID, volunteerID, fromLocation, toLocation, notes,
	)
	if err != nil {
		return nil, fmt.Errorf("creating booking: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting booking id: %w", err)
	}

	return GetBooking(ctx, db, id)
}

// GetBooking returns a booking by ID with party names joined.
func GetBooking(ctx context.Context, db *sql.DB, id int64) (*model.Booking, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+bookingColumns+`
		 FROM bookings b
		 JOIN users n ON n.id = b.ngo_id
		 JOIN users vol ON vol.id = b.volunteer_id
		 WHERE b.id = ?`, id,
	)
	booking, err := scanBooking(row)
	if err != nil {
		return nil, fmt.Errorf("getting booking: %w", err)
	}
	return booking, nil
}

// ListBookingsForNgo returns bookings requested by the given NGO, newest first.
func ListBookingsForNgo(ctx context.Context, db *sql.DB, ngoID int64) ([]model.Booking, error) {
	return listBookings(ctx, db, `b.ngo_id = ?`, ngoID)
}

// ListBookingsForVolunteer returns bookings assigned to the given volunteer,
// newest first.
func ListBookingsForVolunteer(ctx context.Context, db *sql.DB, volunteerID int64) ([]model.Booking, error) {
	return listBookings(ctx, db, `b.volunteer_id = ?`, volunteerID)
}

func listBookings(ctx context.Context, db *sql.DB, where string, arg int64) ([]model.Booking, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+bookingColumns+`
		 FROM bookings b
		 JOIN users n ON n.id = b.ngo_id
		 JOIN users vol ON vol.id = b.volunteer_id
		 WHERE `+where+`
		 ORDER BY b.created_at DESC`, arg,
	)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	defer rows.Close()

	var bookings []model.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning booking: %w", err)
		}
		bookings = append(bookings, *booking)
	}
	return bookings, rows.Err()
}

// SetBookingStatus moves a booking from the expected current status to the
// new one. The WHERE guard on the current status makes the update atomic:
// a concurrent transition already committed leaves zero rows affected.
func SetBookingStatus(ctx context.Context, db *sql.DB, id int64, current, next string) (int64, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE bookings SET status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND status = ?`,
		next, id, current,
	)
	if err != nil {
		return 0, fmt.Errorf("updating booking status: %w", err)
	}
	return result.RowsAffected()
}

func scanBooking(row rowScanner) (*model.Booking, error) {
	booking := &model.Booking{}
	var notes sql.NullString
	err := row.Scan(&booking.ID, &booking.NgoID, &booking.VolunteerID,
		&booking.FromLocation, &booking.ToLocation, &notes, &booking.Status,
		&booking.CreatedAt, &booking.UpdatedAt,
		&booking.NgoName, &booking.VolunteerName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	booking.Notes = notes.String
	return booking, nil
}
