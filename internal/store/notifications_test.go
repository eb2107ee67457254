package store

import (
	"context"
	"testing"

	"github.com/ishanbagra18/zero-waste/internal/db"
)

func TestCreateAndListNotifications(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	vendor := newVendor(t, database, "bakery")
	ngo := newNgo(t, database, "shelter")
	item := newItem(t, database, vendor.ID, "Bread")

	n, err := CreateNotification(ctx, database, vendor.ID, &item.ID, "Your item was claimed.")
	if err != nil {
		t.Fatalf("CreateNotification: %v", err)
	}
	if n.IsRead {
		t.Error("new notification must be unread")
	}
	if n.ItemID == nil || *n.ItemID != item.ID {
		t.Errorf("expected item reference, got %+v", n.ItemID)
	}

	// Item-less notifications are allowed (booking updates).
	if _, err := CreateNotification(ctx, database, vendor.ID, nil, "Booking accepted."); err != nil {
		t.Fatalf("CreateNotification without item: %v", err)
	}

	feed, err := ListNotifications(ctx, database, vendor.ID)
	if err != nil {
		t.Fatalf("ListNotifications: %v", err)
	}
	if len(feed) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(feed))
	}
	// Newest first.
	if feed[0].Message != "Booking accepted." {
		t.Errorf("expected newest notification first, got %q", feed[0].Message)
	}

	other, _ := ListNotifications(ctx, database, ngo.ID)
	if len(other) != 0 {
		t.Errorf("expected empty feed for other user, got %d", len(other))
	}
}

func TestMarkNotificationReadScoped(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	vendor := newVendor(t, database, "bakery")
	ngo := newNgo(t, database, "shelter")

	n, _ := CreateNotification(ctx, database, vendor.ID, nil, "hello")

	// Another user's ID must not match.
	rows, err := MarkNotificationRead(ctx, database, n.ID, ngo.ID)
	if err != nil {
		t.Fatalf("MarkNotificationRead: %v", err)
	}
	if rows != 0 {
		t.Errorf("foreign mark-read: expected 0 rows, got %d", rows)
	}

	rows, _ = MarkNotificationRead(ctx, database, n.ID, vendor.ID)
	if rows != 1 {
		t.Fatalf("expected 1 row updated, got %d", rows)
	}

	got, _ := GetNotification(ctx, database, n.ID)
	if !got.IsRead {
		t.Error("notification not marked read")
	}
}

func TestDeleteNotificationScoped(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	vendor := newVendor(t, database, "bakery")
	ngo := newNgo(t, database, "shelter")

	n, _ := CreateNotification(ctx, database, vendor.ID, nil, "hello")

	rows, _ := DeleteNotification(ctx, database, n.ID, ngo.ID)
	if rows != 0 {
		t.Errorf("foreign delete: expected 0 rows, got %d", rows)
	}

	rows, err := DeleteNotification(ctx, database, n.ID, vendor.ID)
	if err != nil {
		t.Fatalf("DeleteNotification: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row deleted, got %d", rows)
	}

	got, _ := GetNotification(ctx, database, n.ID)
	if got != nil {
		t.Errorf("expected nil after delete, got %+v", got)
	}
}
