package circulation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openshelf/circulation/internal/domain"
)

// Renew extends the caller's open loan, recomputing the due date from the
// renewal date through the item variant.
// Returns domain.ErrNoActiveLoan when the item is not out, and
// domain.ErrRenewalRefused when the loan belongs to another borrower, the
// renewal cap is reached, the loan is overdue (unless policy allows), or
// another patron holds an active hold on the item.
func (s *Service) Renew(ctx context.Context, input RenewInput) (domain.Loan, error) {
	if err := input.Validate(); err != nil {
		return domain.Loan{}, err
	}

	loan, err := s.loans.GetActiveByItem(ctx, input.ItemID)
	if err != nil {
		return domain.Loan{}, fmt.Errorf("renew: %w", err)
	}

	if loan.UserID != input.UserID {
		return domain.Loan{}, fmt.Errorf("loan held by another borrower: %w", domain.ErrRenewalRefused)
	}
	if loan.Renewals >= s.cfg.MaxRenewals {
		return domain.Loan{}, fmt.Errorf("renewal limit %d reached: %w", s.cfg.MaxRenewals, domain.ErrRenewalRefused)
	}
	if !s.cfg.RenewOverdue && loan.IsOverdue(input.At) {
		return domain.Loan{}, fmt.Errorf("loan is overdue: %w", domain.ErrRenewalRefused)
	}

	holds, err := s.holds.ListByItem(ctx, input.ItemID)
	if err != nil {
		return domain.Loan{}, fmt.Errorf("renew: %w", err)
	}
	for _, h := range holds {
		if h.UserID != input.UserID && h.IsActive(input.At) {
			return domain.Loan{}, fmt.Errorf("item is on hold for another patron: %w", domain.ErrRenewalRefused)
		}
	}

	item, err := s.items.GetByID(ctx, input.ItemID)
	if err != nil {
		return domain.Loan{}, fmt.Errorf("renew: %w", err)
	}
	user, err := s.users.GetByID(ctx, input.UserID)
	if err != nil {
		return domain.Loan{}, fmt.Errorf("renew: %w", err)
	}

	loan.DueAt = item.DueDate(input.At, user.Role)
	loan.Renewals++
	if err := s.loans.Update(ctx, loan); err != nil {
		return domain.Loan{}, fmt.Errorf("renew loan: %w", err)
	}

	s.log.InfoContext(ctx, "loan renewed",
		slog.String("item_id", loan.ItemID),
		slog.String("user_id", loan.UserID),
		slog.Int("renewals", loan.Renewals),
		slog.Time("due_at", loan.DueAt))

	return loan, nil
}
