package model

import "time"

// Item represents a listed surplus good offered by a vendor. The claim
// fields (ClaimStatus, ClaimedBy, ClaimedAt) are set together when an NGO
// claims the item and cleared together when a claim is rejected.
type Item struct {
	ID          int64      `json:"id"`
	VendorID    int64      `json:"vendor_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Quantity    int        `json:"quantity"`
	Category    string     `json:"category"`
	Price       int        `json:"price"`
	Mode        string     `json:"mode"`
	Location    string     `json:"location,omitempty"`
	Status      string     `json:"status"`
	ClaimStatus string     `json:"claim_status,omitempty"`
	ClaimedBy   *int64     `json:"claimed_by,omitempty"`
	ClaimedAt   *time.Time `json:"claimed_at,omitempty"`
	PhotoMime   string     `json:"photo_mime,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`

	// Joined fields (not always populated).
	VendorName string `json:"vendor_name,omitempty"`
}

// Item statuses.
const (
	ItemStatusAvailable = "available"
	ItemStatusClaimed   = "claimed"
	ItemStatusCompleted = "completed"
	ItemStatusExpired   = "expired"
)

// Claim statuses.
const (
	ClaimPending   = "pending"
	ClaimApproved  = "approved"
	ClaimRejected  = "rejected"
	ClaimCollected = "collected"
)

// Item categories.
const (
	CategoryFood    = "food"
	CategoryTextile = "textile"
	CategoryBooks   = "books"
	CategoryOther   = "other"
)

// Item modes.
const (
	ModeDonation = "donation"
	ModeSale     = "sale"
)

// ValidCategory reports whether category is a known item category.
func ValidCategory(category string) bool {
	switch category {
	case CategoryFood, CategoryTextile, CategoryBooks, CategoryOther:
		return true
	}
	return false
}

// ValidMode reports whether mode is a known listing mode.
func ValidMode(mode string) bool {
	return mode == ModeDonation || mode == ModeSale
}

// ValidClaimOutcome reports whether outcome is a valid claim resolution.
func ValidClaimOutcome(outcome string) bool {
	switch outcome {
	case ClaimApproved, ClaimRejected, ClaimCollected:
		return true
	}
	return false
}
