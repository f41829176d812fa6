package circulation

import (
	"context"
	"fmt"
	"time"

	"github.com/openshelf/circulation/internal/domain"
)

// ItemType returns the variant label for an item.
// Returns domain.ErrItemNotFound when the item is unknown.
func (s *Service) ItemType(ctx context.Context, itemID string) (string, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return "", fmt.Errorf("item type: %w", err)
	}
	return item.Kind().String(), nil
}

// DueDateFor answers "if this user checked this item out on this date,
// when would it be due?" without touching any state.
func (s *Service) DueDateFor(ctx context.Context, itemID, userID string, checkout time.Time) (time.Time, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return time.Time{}, fmt.Errorf("due date: %w", err)
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return time.Time{}, fmt.Errorf("due date: %w", err)
	}
	return item.DueDate(checkout, user.Role), nil
}

// ListOverdue reports every open loan past due as of the given instant,
// with the charge each would incur if returned then. EBook loans never
// appear.
func (s *Service) ListOverdue(ctx context.Context, asOf time.Time) ([]OverdueLoan, error) {
	active, err := s.loans.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list overdue: %w", err)
	}

	overdue := make([]OverdueLoan, 0)
	for _, l := range active {
		if !l.IsOverdue(asOf) {
			continue
		}
		overdue = append(overdue, OverdueLoan{
			Loan:     l,
			DaysLate: l.DaysOverdue(asOf),
			Fine:     l.Fine(asOf, s.cfg.FineDailyRate),
		})
	}
	return overdue, nil
}

// ItemHistory returns an item's full circulation history, oldest first.
// Histories outlive catalog entries, so no item lookup is made.
func (s *Service) ItemHistory(ctx context.Context, itemID string) ([]domain.Loan, error) {
	history, err := s.loans.ListByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("item history: %w", err)
	}
	return history, nil
}

// UserStatus returns a borrower snapshot: the record, open loans, and all
// holds they placed.
// Returns domain.ErrUserNotFound when the borrower is unknown.
func (s *Service) UserStatus(ctx context.Context, userID string) (UserStatus, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return UserStatus{}, fmt.Errorf("user status: %w", err)
	}

	loans, err := s.loans.ListActiveByUser(ctx, userID)
	if err != nil {
		return UserStatus{}, fmt.Errorf("user status: %w", err)
	}
	holds, err := s.holds.ListByUser(ctx, userID)
	if err != nil {
		return UserStatus{}, fmt.Errorf("user status: %w", err)
	}

	return UserStatus{User: user, Loans: loans, Holds: holds}, nil
}
