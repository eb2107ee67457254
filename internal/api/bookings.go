package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/ishanbagra18/zero-waste/internal/engine"
	"github.com/ishanbagra18/zero-waste/internal/model"
)

// BookingsHandler handles the booking lifecycle endpoints.
type BookingsHandler struct {
	DB *sql.DB
}

type createBookingRequest struct {
	VolunteerID  int64  `json:"volunteer_id"`
	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`
	Notes        string `json:"notes"`
}

type bookingStatusRequest struct {
	Status string `json:"status"`
}

// Create handles POST /api/bookings.
func (h *BookingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req createBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.VolunteerID <= 0 {
		jsonError(w, http.StatusBadRequest, "volunteer_id required")
		return
	}

	booking, err := engine.InitiateBooking(r.Context(), h.DB, actor,
		req.VolunteerID, req.FromLocation, req.ToLocation, req.Notes)
	if err != nil {
		engineError(w, err)
		return
	}
	jsonResponse(w, http.StatusCreated, booking)
}

// SetStatus handles PATCH /api/bookings/{id}/status.
func (h *BookingsHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	var req bookingStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	booking, err := engine.SetBookingStatus(r.Context(), h.DB, id, req.Status, actor)
	if err != nil {
		engineError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, booking)
}

// List handles GET /api/bookings.
func (h *BookingsHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	bookings, err := engine.BookingsFor(r.Context(), h.DB, actor)
	if err != nil {
		engineError(w, err)
		return
	}
	if bookings == nil {
		bookings = []model.Booking{}
	}
	jsonResponse(w, http.StatusOK, bookings)
}
