package circulation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/openshelf/circulation/internal/domain"
)

// PlaceHold queues a claim on an item in request order. Holding an item
// that is currently on the shelf is allowed; the claim resolves on the
// next return. Expiry is the request date plus the configured TTL.
// Returns domain.ErrItemNotFound when the item is unknown.
func (s *Service) PlaceHold(ctx context.Context, input PlaceHoldInput) (domain.Hold, error) {
	if err := input.Validate(); err != nil {
		return domain.Hold{}, err
	}

	if _, err := s.items.GetByID(ctx, input.ItemID); err != nil {
		return domain.Hold{}, fmt.Errorf("place hold: %w", err)
	}

	hold := domain.NewHold(input.ItemID, input.UserID, input.At, s.cfg.HoldTTLDays)
	if err := s.holds.Create(ctx, hold); err != nil {
		return domain.Hold{}, fmt.Errorf("create hold: %w", err)
	}

	s.log.InfoContext(ctx, "hold placed",
		slog.String("item_id", hold.ItemID),
		slog.String("user_id", hold.UserID),
		slog.Time("expires_at", hold.ExpiresAt))

	return hold, nil
}

// CancelHold withdraws a queued claim. Cancelling twice is a no-op.
// Returns domain.ErrHoldNotFound when the hold is unknown and
// domain.ErrConflict when it was already fulfilled.
func (s *Service) CancelHold(ctx context.Context, holdID uuid.UUID) (domain.Hold, error) {
	hold, err := s.holds.GetByID(ctx, holdID)
	if err != nil {
		return domain.Hold{}, fmt.Errorf("cancel hold: %w", err)
	}

	switch hold.Status {
	case domain.HoldStatusFulfilled:
		return domain.Hold{}, fmt.Errorf("hold %s already fulfilled: %w", holdID, domain.ErrConflict)
	case domain.HoldStatusCancelled:
		return hold, nil
	}

	hold.Status = domain.HoldStatusCancelled
	if err := s.holds.Update(ctx, hold); err != nil {
		return domain.Hold{}, fmt.Errorf("cancel hold: %w", err)
	}

	s.log.InfoContext(ctx, "hold cancelled",
		slog.String("item_id", hold.ItemID),
		slog.String("user_id", hold.UserID))

	return hold, nil
}

// ExtendHold pushes a queued claim's expiry out by the given number of
// days.
// Returns domain.ErrHoldNotFound when the hold is unknown,
// domain.ErrConflict when it is no longer active, and
// domain.ErrValidation for a non-positive extension.
func (s *Service) ExtendHold(ctx context.Context, holdID uuid.UUID, days int, at time.Time) (domain.Hold, error) {
	hold, err := s.holds.GetByID(ctx, holdID)
	if err != nil {
		return domain.Hold{}, fmt.Errorf("extend hold: %w", err)
	}

	if err := hold.Extend(days, at); err != nil {
		return domain.Hold{}, fmt.Errorf("extend hold: %w", err)
	}
	if err := s.holds.Update(ctx, hold); err != nil {
		return domain.Hold{}, fmt.Errorf("extend hold: %w", err)
	}

	s.log.InfoContext(ctx, "hold extended",
		slog.String("item_id", hold.ItemID),
		slog.String("user_id", hold.UserID),
		slog.Time("expires_at", hold.ExpiresAt))

	return hold, nil
}

// ListHolds returns the item's still-claimable holds in placement order.
func (s *Service) ListHolds(ctx context.Context, itemID string, asOf time.Time) ([]domain.Hold, error) {
	holds, err := s.holds.ListByItem(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("list holds: %w", err)
	}

	active := make([]domain.Hold, 0, len(holds))
	for _, h := range holds {
		if h.IsActive(asOf) {
			active = append(active, h)
		}
	}
	return active, nil
}
