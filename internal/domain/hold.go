package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Hold is a queued claim on an item. Holds resolve in placement order when
// the item comes back, skipping any that expired or were cancelled in the
// meantime.
type Hold struct {
	ID        uuid.UUID
	ItemID    string
	UserID    string
	PlacedAt  time.Time
	ExpiresAt time.Time
	Status    HoldStatus
	Notified  bool
}

// NewHold queues a claim on itemID for userID, expiring ttlDays after
// placement.
func NewHold(itemID, userID string, at time.Time, ttlDays int) Hold {
	return Hold{
		ID:        uuid.New(),
		ItemID:    itemID,
		UserID:    userID,
		PlacedAt:  at,
		ExpiresAt: at.AddDate(0, 0, ttlDays),
		Status:    HoldStatusActive,
	}
}

// IsExpired reports whether the claim has lapsed at the given instant.
func (h Hold) IsExpired(at time.Time) bool {
	return at.After(h.ExpiresAt)
}

// IsActive reports whether the hold can still be fulfilled: queued status
// and not yet expired.
func (h Hold) IsActive(at time.Time) bool {
	return h.Status == HoldStatusActive && !h.IsExpired(at)
}

// Extend pushes an active hold's expiry out by the given number of whole
// days. Fulfilled, cancelled, and already-expired holds cannot be
// extended.
func (h *Hold) Extend(days int, at time.Time) error {
	if !h.IsActive(at) {
		return fmt.Errorf("hold %s is not active: %w", h.ID, ErrConflict)
	}
	if days < 1 {
		return NewValidationError("days", "must be at least 1")
	}
	h.ExpiresAt = h.ExpiresAt.AddDate(0, 0, days)
	return nil
}
