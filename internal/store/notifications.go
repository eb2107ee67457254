package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ishanbagra18/zero-waste/internal/model"
)

// CreateNotification appends a notification to a user's feed. itemID may be
// nil for notifications not tied to an item.
func CreateNotification(ctx context.Context, db *sql.DB, userID int64, itemID *int64, message string) (*model.Notification, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO notifications (user_id, item_id, message) VALUES (?, ?, ?)`,
		userID, itemID, message,
	)
	if err != nil {
		return nil, fmt.Errorf("creating notification: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting notification id: %w", err)
	}

	return GetNotification(ctx, db, id)
}

// GetNotification returns a notification by ID.
func GetNotification(ctx context.Context, db *sql.DB, id int64) (*model.Notification, error) {
	n := &model.Notification{}
	err := db.QueryRowContext(ctx,
		`SELECT id, user_id, item_id, message, is_read, created_at
		 FROM notifications WHERE id = ?`, id,
	).Scan(&n.ID, &n.UserID, &n.ItemID, &n.Message, &n.IsRead, &n.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting notification: %w", err)
	}
	return n, nil
}

// ListNotifications returns a user's notifications, newest first.
func ListNotifications(ctx context.Context, db *sql.DB, userID int64) ([]model.Notification, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, user_id, item_id, message, is_read, created_at
		 FROM notifications WHERE user_id = ? ORDER BY created_at DESC, id DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}
	defer rows.Close()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.ItemID, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

// MarkNotificationRead marks a user's notification as read. Returns the
// number of rows affected (zero if the notification does not exist or
// belongs to another user).
func MarkNotificationRead(ctx context.Context, db *sql.DB, id, userID int64) (int64, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE notifications SET is_read = 1 WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("marking notification read: %w", err)
	}
	return result.RowsAffected()
}

// DeleteNotification removes a user's notification. Returns the number of
// rows affected.
func DeleteNotification(ctx context.Context, db *sql.DB, id, userID int64) (int64, error) {
	result, err := db.ExecContext(ctx,
		`DELETE FROM notifications WHERE id = ? AND user_id = ?`,
		id, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("deleting notification: %w", err)
	}
	return result.RowsAffected()
}
