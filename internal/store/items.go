package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ishanbagra18/zero-waste/internal/model"
)

const itemColumns = `i.id, i.vendor_id, i.name, i.description, i.quantity, i.category,
	        i.price, i.mode, i.location, i.status, i.claim_status, i.claimed_by,
	        i.claimed_at, i.photo_mime, i.created_at, i.updated_at, i.deleted_at,
	        v.name AS vendor_name`

// CreateItem creates a new item listing in the available state.
func CreateItem(ctx context.Context, db *sql.DB, vendorID int64, name, description string, quantity int, category string, price int, mode, location string) (*model.Item, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO items (vendor_id, name, description, quantity, category, price, mode, location)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		vendorID, name, description, quantity, category, price, mode, location,
	)
	if err != nil {
		return nil, fmt.Errorf("creating item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting item id: %w", err)
	}

	return GetItem(ctx, db, id)
}

// GetItem returns an item by ID with the vendor name joined.
func GetItem(ctx context.Context, db *sql.DB, id int64) (*model.Item, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+itemColumns+`
		 FROM items i JOIN users v ON v.id = i.vendor_id
		 WHERE i.id = ?`, id,
	)
	item, err := scanItem(row)
	if err != nil {
		return nil, fmt.Errorf("getting item: %w", err)
	}
	return item, nil
}

// ListItems returns all non-deleted items, optionally filtered by status.
func ListItems(ctx context.Context, db *sql.DB, status string) ([]model.Item, error) {
	query := `SELECT ` + itemColumns + `
	          FROM items i JOIN users v ON v.id = i.vendor_id
	          WHERE i.deleted_at IS NULL`
	var args []any

	if status != "" {
		query += ` AND i.status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY i.created_at DESC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// ListItemsByVendor returns a vendor's non-deleted items, newest first.
func ListItemsByVendor(ctx context.Context, db *sql.DB, vendorID int64) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+itemColumns+`
		 FROM items i JOIN users v ON v.id = i.vendor_id
		 WHERE i.deleted_at IS NULL AND i.vendor_id = ?
		 ORDER BY i.created_at DESC`, vendorID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing vendor items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// ListItemsClaimedBy returns items currently claimed by the given NGO.
func ListItemsClaimedBy(ctx context.Context, db *sql.DB, ngoID int64) ([]model.Item, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT `+itemColumns+`
		 FROM items i JOIN users v ON v.id = i.vendor_id
		 WHERE i.deleted_at IS NULL AND i.claimed_by = ?
		 ORDER BY i.claimed_at DESC`, ngoID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing claimed items: %w", err)
	}
	defer rows.Close()

	return scanItems(rows)
}

// UpdateItemDetails updates an item's listing fields. The update only
// applies while the item is unclaimed; the returned count is zero if the
// item is missing, deleted, or has a claimant.
func UpdateItemDetails(ctx context.Context, db *sql.DB, id int64, name, description string, quantity int, category string, price int, mode, location, status string) (int64, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE items
		 SET name = ?, description = ?, quantity = ?, category = ?, price = ?,
		     mode = ?, location = ?, status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL AND claimed_by IS NULL`,
		name, description, quantity, category, price, mode, location, status, id,
	)
	if err != nil {
		return 0, fmt.Errorf("updating item: %w", err)
	}
	return result.RowsAffected()
}

// DeleteItemIfUnclaimed soft-deletes an item unless it is currently claimed.
// Returns the number of rows affected (zero if claimed, deleted, or missing).
func DeleteItemIfUnclaimed(ctx context.Context, db *sql.DB, id int64) (int64, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE items SET deleted_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL AND status <> ?`,
		id, model.ItemStatusClaimed,
	)
	if err != nil {
		return 0, fmt.Errorf("deleting item: %w", err)
	}
	return result.RowsAffected()
}

// ClaimItem atomically claims an available item for the given NGO. The
// WHERE clause is the guard against concurrent claims: of two racing
// updates exactly one matches the available row, the other affects zero
// rows.
func ClaimItem(ctx context.Context, db *sql.DB, itemID, ngoID int64) (int64, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE items
		 SET status = ?, claim_status = ?, claimed_by = ?,
		     claimed_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL AND status = ? AND claimed_by IS NULL`,
		model.ItemStatusClaimed, model.ClaimPending, ngoID,
		itemID, model.ItemStatusAvailable,
	)
	if err != nil {
		return 0, fmt.Errorf("claiming item: %w", err)
	}
	return result.RowsAffected()
}

// MarkClaimApproved moves a pending claim to approved.
func MarkClaimApproved(ctx context.Context, db *sql.DB, itemID int64) (int64, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE items SET claim_status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND status = ? AND claim_status = ?`,
		model.ClaimApproved, itemID, model.ItemStatusClaimed, model.ClaimPending,
	)
	if err != nil {
		return 0, fmt.Errorf("approving claim: %w", err)
	}
	return result.RowsAffected()
}

// MarkClaimRejected rejects a pending claim, returning the item to the
// available state and clearing the claim fields.
func MarkClaimRejected(ctx context.Context, db *sql.DB, itemID int64) (int64, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE items
		 SET status = ?, claim_status = NULL, claimed_by = NULL, claimed_at = NULL,
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND status = ? AND claim_status = ?`,
		model.ItemStatusAvailable, itemID, model.ItemStatusClaimed, model.ClaimPending,
	)
	if err != nil {
		return 0, fmt.Errorf("rejecting claim: %w", err)
	}
	return result.RowsAffected()
}

// MarkClaimCollected completes a pending or approved claim.
func MarkClaimCollected(ctx context.Context, db *sql.DB, itemID int64) (int64, error) {
	result, err := db.ExecContext(ctx,
		`UPDATE items SET status = ?, claim_status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND status = ? AND claim_status IN (?, ?)`,
		model.ItemStatusCompleted, model.ClaimCollected,
		itemID, model.ItemStatusClaimed, model.ClaimPending, model.ClaimApproved,
	)
	if err != nil {
		return 0, fmt.Errorf("collecting claim: %w", err)
	}
	return result.RowsAffected()
}

// SetItemPhoto sets an item's photo data.
func SetItemPhoto(ctx context.Context, db *sql.DB, id int64, photo []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE items SET photo = ?, photo_mime = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		photo, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting item photo: %w", err)
	}
	return nil
}

// GetItemPhoto returns an item's photo data and MIME type.
func GetItemPhoto(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var photo []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT photo, photo_mime FROM items WHERE id = ?`, id,
	).Scan(&photo, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting item photo: %w", err)
	}
	return photo, mime.String, nil
}

func scanItem(row rowScanner) (*model.Item, error) {
	item := &model.Item{}
	var description, location, claimStatus, photoMime sql.NullString
	err := row.Scan(&item.ID, &item.VendorID, &item.Name, &description, &item.Quantity,
		&item.Category, &item.Price, &item.Mode, &location, &item.Status,
		&claimStatus, &item.ClaimedBy, &item.ClaimedAt, &photoMime,
		&item.CreatedAt, &item.UpdatedAt, &item.DeletedAt, &item.VendorName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	item.Description = description.String
	item.Location = location.String
	item.ClaimStatus = claimStatus.String
	item.PhotoMime = photoMime.String
	return item, nil
}

func scanItems(rows *sql.Rows) ([]model.Item, error) {
	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}
