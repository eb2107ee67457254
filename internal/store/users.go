package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ishanbagra18/zero-waste/internal/model"
)

const userColumns = `id, name, email, phone, organisation, location, role, password_hash, created_at, deleted_at`

// CreateUser creates a new user account.
func CreateUser(ctx context.Context, db *sql.DB, name, email, phone, organisation, location, role, passwordHash string) (*model.User, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO users (name, email, phone, organisation, location, role, password_hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		name, email, phone, organisation, location, role, passwordHash,
	)
	if err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting user id: %w", err)
	}

	return GetUser(ctx, db, id)
}

// GetUser returns a user by ID.
func GetUser(ctx context.Context, db *sql.DB, id int64) (*model.User, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return user, nil
}

// GetUserByEmail returns a non-deleted user by email.
func GetUserByEmail(ctx context.Context, db *sql.DB, email string) (*model.User, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ? AND deleted_at IS NULL`, email,
	)
	user, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("getting user by email: %w", err)
	}
	return user, nil
}

// ListUsersByRole returns all non-deleted users, optionally filtered by role.
func ListUsersByRole(ctx context.Context, db *sql.DB, role string) ([]model.User, error) {
	var rows *sql.Rows
	var err error

	if role != "" {
		rows, err = db.QueryContext(ctx,
			`SELECT `+userColumns+` FROM users WHERE deleted_at IS NULL AND role = ? ORDER BY name`, role,
		)
	} else {
		rows, err = db.QueryContext(ctx,
			`SELECT `+userColumns+` FROM users WHERE deleted_at IS NULL ORDER BY name`,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, *user)
	}
	return users, rows.Err()
}

// UpdateUserProfile updates a user's editable profile fields.
func UpdateUserProfile(ctx context.Context, db *sql.DB, id int64, name, phone, organisation, location string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE users SET name = ?, phone = ?, organisation = ?, location = ?
		 WHERE id = ? AND deleted_at IS NULL`,
		name, phone, organisation, location, id,
	)
	if err != nil {
		return fmt.Errorf("updating user profile: %w", err)
	}
	return nil
}

// UpdateUserPassword updates a user's password hash.
func UpdateUserPassword(ctx context.Context, db *sql.DB, id int64, passwordHash string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE users SET password_hash = ? WHERE id = ? AND deleted_at IS NULL`,
		passwordHash, id,
	)
	if err != nil {
		return fmt.Errorf("updating user password: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*model.User, error) {
	user := &model.User{}
	var phone, organisation, location sql.NullString
	err := row.Scan(&user.ID, &user.Name, &user.Email, &phone, &organisation, &location,
		&user.Role, &user.PasswordHash, &user.CreatedAt, &user.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	user.Phone = phone.String
	user.Organisation = organisation.String
	user.Location = location.String
	return user, nil
}
