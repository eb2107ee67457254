package store

import (
	"context"
	"testing"

	"github.com/ishanbagra18/zero-waste/internal/db"
	"github.com/ishanbagra18/zero-waste/internal/model"
)

func TestCreateAndGetUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, database, "Bakery Co", "bakery@example.com",
		"555-0101", "Bakery Co", "Old Town", model.RoleVendor, "hash")
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Role != model.RoleVendor {
		t.Errorf("expected role 'vendor', got %q", user.Role)
	}

	got, err := GetUser(ctx, database, user.ID)
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if got.Email != "bakery@example.com" || got.Organisation != "Bakery Co" {
		t.Errorf("unexpected user: %+v", got)
	}

	byEmail, err := GetUserByEmail(ctx, database, "bakery@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if byEmail == nil || byEmail.ID != user.ID {
		t.Errorf("expected user by email, got %+v", byEmail)
	}

	missing, err := GetUserByEmail(ctx, database, "nobody@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown email, got %+v", missing)
	}
}

func TestDuplicateEmailRejected(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateUser(ctx, database, "a", "dup@example.com", "", "", "", model.RoleNGO, "h"); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if _, err := CreateUser(ctx, database, "b", "dup@example.com", "", "", "", model.RoleVendor, "h"); err == nil {
		t.Error("expected unique index violation for duplicate email")
	}
}

func TestListUsersByRole(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	newVendor(t, database, "bakery")
	newNgo(t, database, "shelter")
	newVolunteer(t, database, "driver")

	all, _ := ListUsersByRole(ctx, database, "")
	if len(all) != 3 {
		t.Errorf("expected 3 users, got %d", len(all))
	}

	volunteers, _ := ListUsersByRole(ctx, database, model.RoleVolunteer)
	if len(volunteers) != 1 || volunteers[0].Name != "driver" {
		t.Errorf("expected 1 volunteer, got %+v", volunteers)
	}
}

func TestUpdateUserProfileAndPassword(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user := newNgo(t, database, "shelter")

	if err := UpdateUserProfile(ctx, database, user.ID, "Night Shelter",
		"555-0102", "Night Shelter e.V.", "Downtown"); err != nil {
		t.Fatalf("UpdateUserProfile: %v", err)
	}

	got, _ := GetUser(ctx, database, user.ID)
	if got.Name != "Night Shelter" || got.Location != "Downtown" {
		t.Errorf("profile update not applied: %+v", got)
	}
	// Email and role are not editable through the profile.
	if got.Email != user.Email || got.Role != model.RoleNGO {
		t.Errorf("email or role changed unexpectedly: %+v", got)
	}

	if err := UpdateUserPassword(ctx, database, user.ID, "new-hash"); err != nil {
		t.Fatalf("UpdateUserPassword: %v", err)
	}
	got, _ = GetUser(ctx, database, user.ID)
	if got.PasswordHash != "new-hash" {
		t.Error("password hash not updated")
	}
}
