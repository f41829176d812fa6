// Package hold implements the hold repository as an in-memory map.
// A per-item queue preserves placement order so holds resolve first-come,
// first-served, even when several are placed at the same instant.
package hold

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/openshelf/circulation/internal/domain"
)

// Repo stores holds in memory.
type Repo struct {
	mu     sync.RWMutex
	holds  map[uuid.UUID]domain.Hold
	byItem map[string][]uuid.UUID
}

// New creates an empty hold repository.
func New() *Repo {
	return &Repo{
		holds:  make(map[uuid.UUID]domain.Hold),
		byItem: make(map[string][]uuid.UUID),
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the hold with the given ID.
// Returns domain.ErrHoldNotFound when no such hold exists.
func (r *Repo) GetByID(_ context.Context, holdID uuid.UUID) (domain.Hold, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.holds[holdID]
	if !ok {
		return domain.Hold{}, fmt.Errorf("hold %s: %w", holdID, domain.ErrHoldNotFound)
	}
	return h, nil
}

// ListByItem returns every hold on an item in placement order, regardless
// of status. Callers filter for the holds they consider claimable.
func (r *Repo) ListByItem(_ context.Context, itemID string) ([]domain.Hold, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byItem[itemID]
	out := make([]domain.Hold, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.holds[id])
	}
	return out, nil
}

// ListByUser returns every hold placed by one borrower, ordered by
// placement time, then item ID.
func (r *Repo) ListByUser(_ context.Context, userID string) ([]domain.Hold, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Hold, 0)
	for _, h := range r.holds {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PlacedAt.Equal(out[j].PlacedAt) {
			return out[i].PlacedAt.Before(out[j].PlacedAt)
		}
		return out[i].ItemID < out[j].ItemID
	})
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create appends a hold to the item's queue.
func (r *Repo) Create(_ context.Context, h domain.Hold) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.holds[h.ID]; ok {
		return fmt.Errorf("hold %s: %w", h.ID, domain.ErrAlreadyExists)
	}
	r.holds[h.ID] = h
	r.byItem[h.ItemID] = append(r.byItem[h.ItemID], h.ID)
	return nil
}

// Update replaces a stored hold by ID. Status changes never reorder the
// item's queue.
// Returns domain.ErrHoldNotFound when the hold is unknown.
func (r *Repo) Update(_ context.Context, h domain.Hold) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.holds[h.ID]; !ok {
		return fmt.Errorf("hold %s: %w", h.ID, domain.ErrHoldNotFound)
	}
	r.holds[h.ID] = h
	return nil
}
