package circulation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openshelf/circulation/internal/domain"
)

// PayFine settles part or all of a borrower's outstanding balance and
// returns the updated record. Payments must be positive and may not
// exceed what is owed.
// Returns domain.ErrUserNotFound when the borrower is unknown and
// domain.ErrValidation for an invalid amount.
func (s *Service) PayFine(ctx context.Context, userID string, amount float64) (domain.User, error) {
	user, err := s.users.PayFine(ctx, userID, amount)
	if err != nil {
		return domain.User{}, fmt.Errorf("pay fine: %w", err)
	}

	s.log.InfoContext(ctx, "fine paid",
		slog.String("user_id", userID),
		slog.Float64("amount", amount),
		slog.Float64("balance", user.FineBalance))

	return user, nil
}
