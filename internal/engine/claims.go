// Package engine implements the item claim and booking lifecycle state
// machines. Every mutation goes through a conditional store update keyed
// on the pre-transition state, so concurrent transitions resolve to
// exactly one winner without read-then-write races.
package engine

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/ishanbagra18/zero-waste/internal/authz"
	"github.com/ishanbagra18/zero-waste/internal/model"
	"github.com/ishanbagra18/zero-waste/internal/store"
)

// ItemInput carries the vendor-editable listing fields.
type ItemInput struct {
	Name        string
	Description string
	Quantity    int
	Category    string
	Price       int
	Mode        string
	Location    string
}

func (in ItemInput) validate() error {
	if in.Name == "" {
		return fmt.Errorf("%w: name required", ErrValidation)
	}
	if in.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrValidation)
	}
	if !model.ValidCategory(in.Category) {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, in.Category)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if !model.ValidMode(in.Mode) {
		return fmt.Errorf("%w: unknown mode %q", ErrValidation, in.Mode)
	}
	return nil
}

// CreateItem lists a new item for the vendor. The item starts available
// with no claim fields set.
func CreateItem(ctx context.Context, db *sql.DB, actor Actor, in ItemInput) (*model.Item, error) {
	if !authz.Allowed(actor.Role, authz.ActionItemCreate) {
		return nil, fmt.Errorf("%w: only vendors can list items", ErrUnauthorized)
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	item, err := store.CreateItem(ctx, db, actor.ID, in.Name, in.Description,
		in.Quantity, in.Category, in.Price, in.Mode, in.Location)
	if err != nil {
		return nil, err
	}

	slog.Info("item listed", "item", item.ID, "vendor", actor.ID, "mode", item.Mode)
	return item, nil
}

// UpdateItem updates a vendor's own unclaimed listing. The status may only
// move between available and expired; claim fields are never touched here.
func UpdateItem(ctx context.Context, db *sql.DB, actor Actor, itemID int64, in ItemInput, status string) (*model.Item, error) {
	if !authz.Allowed(actor.Role, authz.ActionItemUpdate) {
		return nil, fmt.Errorf("%w: only vendors can update items", ErrUnauthorized)
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	if status == "" {
		status = model.ItemStatusAvailable
	}
	if status != model.ItemStatusAvailable && status != model.ItemStatusExpired {
		return nil, fmt.Errorf("%w: status can only be set to available or expired", ErrInvalidTransition)
	}

	item, err := store.GetItem(ctx, db, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.DeletedAt != nil {
		return nil, fmt.Errorf("%w: item %d", ErrNotFound, itemID)
	}
	if item.VendorID != actor.ID {
		return nil, fmt.Errorf("%w: not the item's vendor", ErrUnauthorized)
	}
	if item.ClaimedBy != nil {
		return nil, fmt.Errorf("%w: item is claimed", ErrConflict)
	}

	n, err := store.UpdateItemDetails(ctx, db, itemID, in.Name, in.Description,
		in.Quantity, in.Category, in.Price, in.Mode, in.Location, status)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Claimed or deleted between the read and the guarded update.
		return nil, fmt.Errorf("%w: item is claimed", ErrConflict)
	}

	return store.GetItem(ctx, db, itemID)
}

// DeleteItem soft-deletes a vendor's own listing. Claimed items cannot be
// deleted until the claim is resolved.
func DeleteItem(ctx context.Context, db *sql.DB, actor Actor, itemID int64) error {
	if !authz.Allowed(actor.Role, authz.ActionItemDelete) {
		return fmt.Errorf("%w: only vendors can delete items", ErrUnauthorized)
	}

	item, err := store.GetItem(ctx, db, itemID)
	if err != nil {
		return err
	}
	if item == nil || item.DeletedAt != nil {
		return fmt.Errorf("%w: item %d", ErrNotFound, itemID)
	}
	if item.VendorID != actor.ID {
		return fmt.Errorf("%w: not the item's vendor", ErrUnauthorized)
	}

	n, err := store.DeleteItemIfUnclaimed(ctx, db, itemID)
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: item is claimed", ErrConflict)
	}

	slog.Info("item deleted", "item", itemID, "vendor", actor.ID)
	return nil
}

// InitiateClaim claims an available item for an NGO. Of two concurrent
// claims on the same item exactly one succeeds; the other gets ErrConflict.
func InitiateClaim(ctx context.Context, db *sql.DB, itemID int64, actor Actor) (*model.Item, error) {
	if !authz.Allowed(actor.Role, authz.ActionClaimInitiate) {
		return nil, fmt.Errorf("%w: only NGOs can claim items", ErrUnauthorized)
	}

	n, err := store.ClaimItem(ctx, db, itemID, actor.ID)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Distinguish a missing item from a lost race.
		item, err := store.GetItem(ctx, db, itemID)
		if err != nil {
			return nil, err
		}
		if item == nil || item.DeletedAt != nil {
			return nil, fmt.Errorf("%w: item %d", ErrNotFound, itemID)
		}
		return nil, fmt.Errorf("%w: item is no longer available", ErrConflict)
	}

	item, err := store.GetItem(ctx, db, itemID)
	if err != nil {
		return nil, err
	}

	slog.Info("item claimed", "item", itemID, "ngo", actor.ID, "vendor", item.VendorID)
	notify(ctx, db, item.VendorID, &item.ID,
		fmt.Sprintf("Your item %q has been claimed by %s.", item.Name, actor.Name))

	return item, nil
}

// ResolveClaim applies the vendor's decision on a claim. Approving or
// rejecting requires a pending claim; collecting requires a pending or
// approved one. Re-applying the outcome that already holds is ErrNoOp.
func ResolveClaim(ctx context.Context, db *sql.DB, itemID int64, actor Actor, outcome string) (*model.Item, error) {
	if !authz.Allowed(actor.Role, authz.ActionClaimResolve) {
		return nil, fmt.Errorf("%w: only vendors can resolve claims", ErrUnauthorized)
	}
	if !model.ValidClaimOutcome(outcome) {
		return nil, fmt.Errorf("%w: unknown claim outcome %q", ErrValidation, outcome)
	}

	item, err := store.GetItem(ctx, db, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || item.DeletedAt != nil {
		return nil, fmt.Errorf("%w: item %d", ErrNotFound, itemID)
	}
	if item.VendorID != actor.ID {
		return nil, fmt.Errorf("%w: not the item's vendor", ErrUnauthorized)
	}
	if item.ClaimStatus == outcome {
		return nil, fmt.Errorf("%w: claim is already %s", ErrNoOp, outcome)
	}

	claimant := item.ClaimedBy

	var n int64
	switch outcome {
	case model.ClaimApproved:
		if item.ClaimStatus != model.ClaimPending {
			return nil, invalidResolution(item, outcome)
		}
		n, err = store.MarkClaimApproved(ctx, db, itemID)
	case model.ClaimRejected:
		if item.ClaimStatus != model.ClaimPending {
			return nil, invalidResolution(item, outcome)
		}
		n, err = store.MarkClaimRejected(ctx, db, itemID)
	case model.ClaimCollected:
		if item.ClaimStatus != model.ClaimPending && item.ClaimStatus != model.ClaimApproved {
			return nil, invalidResolution(item, outcome)
		}
		n, err = store.MarkClaimCollected(ctx, db, itemID)
	}
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: claim state changed concurrently", ErrConflict)
	}

	slog.Info("claim resolved", "item", itemID, "vendor", actor.ID, "outcome", outcome)
	if claimant != nil {
		notify(ctx, db, *claimant, &item.ID,
			fmt.Sprintf("Your claim for item %q has been %s.", item.Name, outcome))
	}

	return store.GetItem(ctx, db, itemID)
}

func invalidResolution(item *model.Item, outcome string) error {
	if item.ClaimStatus == "" {
		return fmt.Errorf("%w: item %d has no claim to resolve", ErrInvalidTransition, item.ID)
	}
	return fmt.Errorf("%w: cannot move claim from %s to %s",
		ErrInvalidTransition, item.ClaimStatus, outcome)
}

// ClaimedItems returns the items currently claimed by the NGO.
func ClaimedItems(ctx context.Context, db *sql.DB, actor Actor) ([]model.Item, error) {
	if !authz.Allowed(actor.Role, authz.ActionClaimInitiate) {
		return nil, fmt.Errorf("%w: only NGOs have claimed items", ErrUnauthorized)
	}
	return store.ListItemsClaimedBy(ctx, db, actor.ID)
}
