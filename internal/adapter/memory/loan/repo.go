// Package loan implements the loan repository as an in-memory map.
// An index of active loans by item ID enforces that an item is out to at
// most one borrower at a time.
package loan

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/openshelf/circulation/internal/domain"
)

// Repo stores loan records in memory, both open and closed.
type Repo struct {
	mu           sync.RWMutex
	loans        map[uuid.UUID]domain.Loan
	activeByItem map[string]uuid.UUID
}

// New creates an empty loan repository.
func New() *Repo {
	return &Repo{
		loans:        make(map[uuid.UUID]domain.Loan),
		activeByItem: make(map[string]uuid.UUID),
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetActiveByItem returns the open loan for an item.
// Returns domain.ErrNoActiveLoan when the item is not out.
func (r *Repo) GetActiveByItem(_ context.Context, itemID string) (domain.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.activeByItem[itemID]
	if !ok {
		return domain.Loan{}, fmt.Errorf("item %s: %w", itemID, domain.ErrNoActiveLoan)
	}
	return r.loans[id], nil
}

// ListActive returns every open loan ordered by due date, then item ID.
// Returns an empty slice (not nil) when nothing is out.
func (r *Repo) ListActive(_ context.Context) ([]domain.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Loan, 0, len(r.activeByItem))
	for _, id := range r.activeByItem {
		out = append(out, r.loans[id])
	}
	sortLoans(out)
	return out, nil
}

// ListActiveByUser returns the open loans held by one borrower, ordered by
// due date, then item ID.
func (r *Repo) ListActiveByUser(_ context.Context, userID string) ([]domain.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Loan, 0)
	for _, id := range r.activeByItem {
		if l := r.loans[id]; l.UserID == userID {
			out = append(out, l)
		}
	}
	sortLoans(out)
	return out, nil
}

// ListByItem returns an item's full circulation history, oldest first.
func (r *Repo) ListByItem(_ context.Context, itemID string) ([]domain.Loan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Loan, 0)
	for _, l := range r.loans {
		if l.ItemID == itemID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CheckedOutAt.Equal(out[j].CheckedOutAt) {
			return out[i].CheckedOutAt.Before(out[j].CheckedOutAt)
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create records a newly opened loan.
// Returns domain.ErrConflict when the item already has an open loan.
func (r *Repo) Create(_ context.Context, l domain.Loan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !l.IsActive() {
		return fmt.Errorf("loan %s: create closed loan: %w", l.ID, domain.ErrConflict)
	}
	if _, ok := r.activeByItem[l.ItemID]; ok {
		return fmt.Errorf("item %s: already on loan: %w", l.ItemID, domain.ErrConflict)
	}
	r.loans[l.ID] = l
	r.activeByItem[l.ItemID] = l.ID
	return nil
}

// Update replaces a stored loan by ID, keeping the active-by-item index in
// step when the loan closes.
// Returns domain.ErrConflict when the loan is unknown.
func (r *Repo) Update(_ context.Context, l domain.Loan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.loans[l.ID]; !ok {
		return fmt.Errorf("loan %s: %w", l.ID, domain.ErrConflict)
	}
	r.loans[l.ID] = l
	if !l.IsActive() && r.activeByItem[l.ItemID] == l.ID {
		delete(r.activeByItem, l.ItemID)
	}
	return nil
}

func sortLoans(loans []domain.Loan) {
	sort.Slice(loans, func(i, j int) bool {
		if !loans[i].DueAt.Equal(loans[j].DueAt) {
			return loans[i].DueAt.Before(loans[j].DueAt)
		}
		return loans[i].ItemID < loans[j].ItemID
	})
}
