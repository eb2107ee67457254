package engine

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/ishanbagra18/zero-waste/internal/store"
)

// Actor identifies the authenticated user driving a transition.
type Actor struct {
	ID   int64
	Name string
	Role string
}

// notify appends one notification to the recipient's feed. Delivery is
// best effort: a failure is logged but never unwinds the state transition
// that triggered it, and one failing recipient does not stop the others.
func notify(ctx context.Context, db *sql.DB, userID int64, itemID *int64, message string) {
	if _, err := store.CreateNotification(ctx, db, userID, itemID, message); err != nil {
		slog.Error("notification delivery failed",
			"recipient", userID, "message", message, "error", err)
	}
}
