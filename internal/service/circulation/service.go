// Package circulation implements the lending workflow: checkouts,
// returns, renewals, and the hold queue. Due dates are never computed
// here; they are delegated to the item variant so each kind carries its
// own rule.
package circulation

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/openshelf/circulation/internal/config"
	"github.com/openshelf/circulation/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type catalogRepo interface {
	GetByID(ctx context.Context, itemID string) (domain.Item, error)
}

type userRepo interface {
	GetByID(ctx context.Context, userID string) (domain.User, error)
	AddFine(ctx context.Context, userID string, amount float64) (domain.User, error)
	PayFine(ctx context.Context, userID string, amount float64) (domain.User, error)
}

type loanRepo interface {
	GetActiveByItem(ctx context.Context, itemID string) (domain.Loan, error)
	ListActive(ctx context.Context) ([]domain.Loan, error)
	ListActiveByUser(ctx context.Context, userID string) ([]domain.Loan, error)
	ListByItem(ctx context.Context, itemID string) ([]domain.Loan, error)
	Create(ctx context.Context, l domain.Loan) error
	Update(ctx context.Context, l domain.Loan) error
}

type holdRepo interface {
	GetByID(ctx context.Context, holdID uuid.UUID) (domain.Hold, error)
	ListByItem(ctx context.Context, itemID string) ([]domain.Hold, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Hold, error)
	Create(ctx context.Context, h domain.Hold) error
	Update(ctx context.Context, h domain.Hold) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the circulation business logic. It owns the loan and
// hold collections; the catalog and user stores are shared collaborators
// built elsewhere and passed in.
type Service struct {
	log   *slog.Logger
	items catalogRepo
	users userRepo
	loans loanRepo
	holds holdRepo
	cfg   config.CirculationConfig
}

// NewService creates a new circulation service.
func NewService(
	logger *slog.Logger,
	items catalogRepo,
	users userRepo,
	loans loanRepo,
	holds holdRepo,
	cfg config.CirculationConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "circulation"),
		items: items,
		users: users,
		loans: loans,
		holds: holds,
		cfg:   cfg,
	}
}
