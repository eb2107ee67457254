package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY,
    name          TEXT NOT NULL,
    email         TEXT NOT NULL,
    phone         TEXT,
    organisation  TEXT,
    location      TEXT,
    role          TEXT NOT NULL CHECK (role IN ('vendor', 'ngo', 'volunteer')),
    password_hash TEXT NOT NULL,
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at    DATETIME
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_active
    ON users(email) WHERE deleted_at IS NULL;

CREATE TABLE IF NOT EXISTS items (
    id           INTEGER PRIMARY KEY,
    vendor_id    INTEGER NOT NULL REFERENCES users(id),
    name         TEXT NOT NULL,
    description  TEXT,
    quantity     INTEGER NOT NULL DEFAULT 1 CHECK (quantity > 0),
    category     TEXT NOT NULL CHECK (category IN ('food', 'textile', 'books', 'other')),
    price        INTEGER NOT NULL DEFAULT 0 CHECK (price >= 0),
    mode         TEXT NOT NULL CHECK (mode IN ('donation', 'sale')),
    location     TEXT,
    status       TEXT NOT NULL DEFAULT 'available'
                 CHECK (status IN ('available', 'claimed', 'completed', 'expired')),
    claim_status TEXT CHECK (claim_status IN ('pending', 'approved', 'rejected', 'collected')),
    claimed_by   INTEGER REFERENCES users(id),
    claimed_at   DATETIME,
    photo        BLOB,
    photo_mime   TEXT,
    created_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at   DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at   DATETIME
);

CREATE INDEX IF NOT EXISTS idx_items_claimed_by ON items(claimed_by)
    WHERE claimed_by IS NOT NULL;

CREATE TABLE IF NOT EXISTS bookings (
    id            INTEGER PRIMARY KEY,
    ngo_id        INTEGER NOT NULL REFERENCES users(id),
    volunteer_id  INTEGER NOT NULL REFERENCES users(id),
    from_location TEXT NOT NULL,
    to_location   TEXT NOT NULL,
    notes         TEXT,
    status        TEXT NOT NULL DEFAULT 'pending'
                  CHECK (status IN ('pending', 'accepted', 'rejected', 'cancelled', 'completed')),
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS notifications (
    id         INTEGER PRIMARY KEY,
    user_id    INTEGER NOT NULL REFERENCES users(id),
    item_id    INTEGER REFERENCES items(id),
    message    TEXT NOT NULL,
    is_read    INTEGER NOT NULL DEFAULT 0,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id, created_at);

CREATE TABLE IF NOT EXISTS settings (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS revoked_tokens (
    jti        TEXT PRIMARY KEY,
    expires_at DATETIME NOT NULL
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
