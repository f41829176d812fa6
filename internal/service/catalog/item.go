package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openshelf/circulation/internal/domain"
)

// AddItemInput holds the descriptive fields for a new catalog item.
// Genre only applies to books and is ignored for other kinds.
type AddItemInput struct {
	Kind       domain.ItemKind
	ID         string
	Title      string
	Creators   []string
	Tags       []string
	CallNumber string
	ISBN       string
	Genre      string
}

// AddItem constructs the variant named by input.Kind and files it in the
// catalog. Field validation and normalization happen in the variant
// constructor.
// Returns domain.ErrUnknownItemKind for an unrecognized kind,
// domain.ErrValidation for bad fields, and domain.ErrAlreadyExists when
// the identifier is taken.
func (s *Service) AddItem(ctx context.Context, input AddItemInput) (domain.Item, error) {
	meta := domain.ItemMeta{
		ID:         input.ID,
		Title:      input.Title,
		Creators:   input.Creators,
		Tags:       input.Tags,
		CallNumber: input.CallNumber,
		ISBN:       input.ISBN,
	}

	var (
		item domain.Item
		err  error
	)
	switch input.Kind {
	case domain.ItemKindBook:
		item, err = domain.NewBook(meta, input.Genre)
	default:
		item, err = domain.NewItem(input.Kind, meta)
	}
	if err != nil {
		return nil, fmt.Errorf("add item: %w", err)
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("add item: %w", err)
	}

	s.log.InfoContext(ctx, "item added",
		slog.String("item_id", item.Meta().ID),
		slog.String("kind", item.Kind().String()))

	return item, nil
}

// RemoveItem deletes a catalog entry. Open loans and queued holds for the
// item survive; circulation resolves them against the missing entry.
// Returns domain.ErrItemNotFound when the item is unknown.
func (s *Service) RemoveItem(ctx context.Context, itemID string) error {
	if err := s.items.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("remove item: %w", err)
	}

	s.log.InfoContext(ctx, "item removed", slog.String("item_id", itemID))
	return nil
}

// Get returns a single catalog entry.
// Returns domain.ErrItemNotFound when the item is unknown.
func (s *Service) Get(ctx context.Context, itemID string) (domain.Item, error) {
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

// List returns every catalog entry ordered by identifier.
func (s *Service) List(ctx context.Context) ([]domain.Item, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}
