package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/ishanbagra18/zero-waste/internal/model"
	"github.com/ishanbagra18/zero-waste/internal/store"
)

// NotificationsHandler handles the notification feed endpoints. All
// operations are scoped to the authenticated recipient.
type NotificationsHandler struct {
	DB *sql.DB
}

// List handles GET /api/notifications.
func (h *NotificationsHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	notifications, err := store.ListNotifications(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list notifications")
		return
	}
	if notifications == nil {
		notifications = []model.Notification{}
	}
	jsonResponse(w, http.StatusOK, notifications)
}

// MarkRead handles PATCH /api/notifications/{id}/read.
func (h *NotificationsHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	n, err := store.MarkNotificationRead(r.Context(), h.DB, id, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to mark notification read")
		return
	}
	if n == 0 {
		jsonError(w, http.StatusNotFound, "notification not found")
		return
	}

	notification, _ := store.GetNotification(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, notification)
}

// Delete handles DELETE /api/notifications/{id}.
func (h *NotificationsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid notification id")
		return
	}

	n, err := store.DeleteNotification(r.Context(), h.DB, id, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete notification")
		return
	}
	if n == 0 {
		jsonError(w, http.StatusNotFound, "notification not found")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "notification deleted"})
}
