// Package catalog implements the item repository as an in-memory map.
// Items are keyed by their catalog ID; lookups and searches take a read
// lock so the store is safe for concurrent use.
package catalog

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/openshelf/circulation/internal/domain"
)

// Repo stores catalog items in memory.
type Repo struct {
	mu    sync.RWMutex
	items map[string]domain.Item
}

// New creates an empty item repository.
func New() *Repo {
	return &Repo{items: make(map[string]domain.Item)}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns the item with the given catalog ID.
// Returns domain.ErrItemNotFound when no such item exists.
func (r *Repo) GetByID(_ context.Context, itemID string) (domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return nil, fmt.Errorf("item %s: %w", itemID, domain.ErrItemNotFound)
	}
	return item, nil
}

// List returns every item ordered by catalog ID.
// Returns an empty slice (not nil) when the catalog is empty.
func (r *Repo) List(_ context.Context) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.Item, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Meta().ID < items[j].Meta().ID
	})
	return items, nil
}

// SearchByKeyword returns items whose title contains the keyword,
// case-insensitively, ordered by catalog ID.
func (r *Repo) SearchByKeyword(_ context.Context, keyword string) ([]domain.Item, error) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))

	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]domain.Item, 0)
	for _, item := range r.items {
		if keyword != "" && strings.Contains(strings.ToLower(item.Meta().Title), keyword) {
			matches = append(matches, item)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Meta().ID < matches[j].Meta().ID
	})
	return matches, nil
}

// SearchByCreator returns items with a creator containing the query,
// case-insensitively, ordered by catalog ID.
func (r *Repo) SearchByCreator(_ context.Context, creator string) ([]domain.Item, error) {
	query := strings.ToLower(domain.NormalizeName(creator))

	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]domain.Item, 0)
	for _, item := range r.items {
		if query == "" {
			continue
		}
		if slices.ContainsFunc(item.Meta().Creators, func(c string) bool {
			return strings.Contains(strings.ToLower(c), query)
		}) {
			matches = append(matches, item)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Meta().ID < matches[j].Meta().ID
	})
	return matches, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create adds a new item to the catalog.
// Returns domain.ErrAlreadyExists when the catalog ID is taken.
func (r *Repo) Create(_ context.Context, item domain.Item) error {
	id := item.Meta().ID

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; ok {
		return fmt.Errorf("item %s: %w", id, domain.ErrAlreadyExists)
	}
	r.items[id] = item
	return nil
}

// Delete removes an item from the catalog.
// Returns domain.ErrItemNotFound when no such item exists.
func (r *Repo) Delete(_ context.Context, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[itemID]; !ok {
		return fmt.Errorf("item %s: %w", itemID, domain.ErrItemNotFound)
	}
	delete(r.items, itemID)
	return nil
}
