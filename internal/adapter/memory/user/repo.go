// Package user implements the borrower repository as an in-memory map.
package user

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/openshelf/circulation/internal/domain"
)

// Repo stores borrower records in memory. Records are copied in and out,
// so callers never share mutable state with the store.
type Repo struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// New creates an empty borrower repository.
func New() *Repo {
	return &Repo{users: make(map[string]domain.User)}
}

// GetByID returns the borrower with the given ID.
// Returns domain.ErrUserNotFound when no such borrower exists.
func (r *Repo) GetByID(_ context.Context, userID string) (domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return domain.User{}, fmt.Errorf("user %s: %w", userID, domain.ErrUserNotFound)
	}
	return u, nil
}

// List returns every borrower ordered by ID.
// Returns an empty slice (not nil) when no borrowers are registered.
func (r *Repo) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

// Create registers a new borrower.
// Returns domain.ErrAlreadyExists when the ID is taken.
func (r *Repo) Create(_ context.Context, u domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.ID]; ok {
		return fmt.Errorf("user %s: %w", u.ID, domain.ErrAlreadyExists)
	}
	r.users[u.ID] = u
	return nil
}

// AddFine accrues an overdue charge on the borrower's balance and returns
// the updated record.
// Returns domain.ErrUserNotFound when no such borrower exists.
func (r *Repo) AddFine(_ context.Context, userID string, amount float64) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return domain.User{}, fmt.Errorf("user %s: %w", userID, domain.ErrUserNotFound)
	}
	u.AddFine(amount)
	r.users[userID] = u
	return u, nil
}

// PayFine settles part of the borrower's balance and returns the updated
// record. Invalid payments leave the record untouched.
// Returns domain.ErrUserNotFound when no such borrower exists.
func (r *Repo) PayFine(_ context.Context, userID string, amount float64) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[userID]
	if !ok {
		return domain.User{}, fmt.Errorf("user %s: %w", userID, domain.ErrUserNotFound)
	}
	if err := u.PayFine(amount); err != nil {
		return domain.User{}, err
	}
	r.users[userID] = u
	return u, nil
}
