package circulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/openshelf/circulation/internal/domain"
)

// Checkout lends an item to a user starting at the given date. The due
// date comes from the item variant and the borrower's role.
// Returns domain.ErrItemNotFound or domain.ErrUserNotFound when either
// party is unknown, and domain.ErrItemUnavailable when the item is
// already out. Lookup order is item, then user, then availability.
func (s *Service) Checkout(ctx context.Context, input CheckoutInput) (domain.Loan, error) {
	if err := input.Validate(); err != nil {
		return domain.Loan{}, err
	}

	item, err := s.items.GetByID(ctx, input.ItemID)
	if err != nil {
		return domain.Loan{}, fmt.Errorf("checkout: %w", err)
	}

	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return domain.Loan{}, fmt.Errorf("checkout: %w", err)
	}

	_, err = s.loans.GetActiveByItem(ctx, input.ItemID)
	if err == nil {
		return domain.Loan{}, fmt.Errorf("item %s: %w", input.ItemID, domain.ErrItemUnavailable)
	}
	if !errors.Is(err, domain.ErrNoActiveLoan) {
		return domain.Loan{}, fmt.Errorf("checkout: %w", err)
	}

	loan := domain.NewLoan(item, user, input.At)
	if err := s.loans.Create(ctx, loan); err != nil {
		return domain.Loan{}, fmt.Errorf("create loan: %w", err)
	}

	s.log.InfoContext(ctx, "item checked out",
		slog.String("item_id", loan.ItemID),
		slog.String("user_id", loan.UserID),
		slog.Time("due_at", loan.DueAt))

	return loan, nil
}
