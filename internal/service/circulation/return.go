package circulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/openshelf/circulation/internal/domain"
)

// Return closes the open loan for an item. A late return is priced at the
// configured daily rate and charged to the borrower's balance; EBook
// loans are never fined. If the item has a queue, the earliest-placed
// still-claimable hold is fulfilled and the item goes straight out to
// that borrower.
// Returns domain.ErrNoActiveLoan when the item is not out.
func (s *Service) Return(ctx context.Context, input ReturnInput) (ReturnResult, error) {
	if err := input.Validate(); err != nil {
		return ReturnResult{}, err
	}

	loan, err := s.loans.GetActiveByItem(ctx, input.ItemID)
	if err != nil {
		return ReturnResult{}, fmt.Errorf("return: %w", err)
	}

	daysLate := loan.DaysOverdue(input.At)
	fine := loan.Fine(input.At, s.cfg.FineDailyRate)

	returnedAt := input.At
	loan.ReturnedAt = &returnedAt
	if err := s.loans.Update(ctx, loan); err != nil {
		return ReturnResult{}, fmt.Errorf("close loan: %w", err)
	}

	if fine > 0 {
		if _, err := s.users.AddFine(ctx, loan.UserID, fine); err != nil {
			// The borrower may have been removed while the loan was out;
			// the return itself still stands.
			if !errors.Is(err, domain.ErrUserNotFound) {
				return ReturnResult{}, fmt.Errorf("add fine: %w", err)
			}
			s.log.WarnContext(ctx, "fine not charged, borrower no longer registered",
				slog.String("item_id", loan.ItemID),
				slog.String("user_id", loan.UserID))
		}
	}

	s.log.InfoContext(ctx, "item returned",
		slog.String("item_id", loan.ItemID),
		slog.String("user_id", loan.UserID),
		slog.Float64("fine", fine))

	result := ReturnResult{Loan: loan, DaysLate: daysLate, Fine: fine}

	hold, next, err := s.fulfillNextHold(ctx, input.ItemID, input.At)
	if err != nil {
		return ReturnResult{}, err
	}
	if hold != nil {
		result.FulfilledHold = hold
		result.NextLoan = next
	}

	return result, nil
}

// fulfillNextHold walks the item's queue in placement order and checks the
// item out to the first hold that is still claimable. Expired and
// cancelled holds are passed over, as are holds whose user has since been
// removed. Returns (nil, nil, nil) when nothing claims the item.
func (s *Service) fulfillNextHold(ctx context.Context, itemID string, at time.Time) (*domain.Hold, *domain.Loan, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		// The catalog entry can be gone while old holds linger; the queue
		// is unservable without it.
		if errors.Is(err, domain.ErrItemNotFound) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("fulfill hold: %w", err)
	}

	holds, err := s.holds.ListByItem(ctx, itemID)
	if err != nil {
		return nil, nil, fmt.Errorf("fulfill hold: %w", err)
	}

	for _, h := range holds {
		if !h.IsActive(at) {
			continue
		}

		user, err := s.users.GetByID(ctx, h.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				continue
			}
			return nil, nil, fmt.Errorf("fulfill hold: %w", err)
		}

		h.Status = domain.HoldStatusFulfilled
		h.Notified = true
		if err := s.holds.Update(ctx, h); err != nil {
			return nil, nil, fmt.Errorf("fulfill hold: %w", err)
		}

		loan := domain.NewLoan(item, user, at)
		if err := s.loans.Create(ctx, loan); err != nil {
			return nil, nil, fmt.Errorf("fulfill hold: %w", err)
		}

		s.log.InfoContext(ctx, "hold fulfilled",
			slog.String("item_id", itemID),
			slog.String("user_id", h.UserID),
			slog.Time("due_at", loan.DueAt))

		return &h, &loan, nil
	}

	return nil, nil, nil
}
