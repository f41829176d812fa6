// Package catalog manages the collection itself: adding and removing
// items and answering lookup and search requests. Circulation state is
// out of scope here; removing an item does not touch its open loans.
package catalog

import (
	"context"
	"log/slog"

	"github.com/openshelf/circulation/internal/domain"
)

type itemRepo interface {
	GetByID(ctx context.Context, itemID string) (domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	SearchByKeyword(ctx context.Context, keyword string) ([]domain.Item, error)
	SearchByCreator(ctx context.Context, creator string) ([]domain.Item, error)
	Create(ctx context.Context, item domain.Item) error
	Delete(ctx context.Context, itemID string) error
}

// Service implements catalog management use cases.
type Service struct {
	log   *slog.Logger
	items itemRepo
}

// NewService creates a catalog service instance.
func NewService(logger *slog.Logger, items itemRepo) *Service {
	return &Service{
		log:   logger.With("service", "catalog"),
		items: items,
	}
}
