package catalog

import (
	"context"
	"fmt"

	"github.com/openshelf/circulation/internal/domain"
)

// SearchByKeyword returns items whose title contains the keyword,
// case-insensitively. A blank keyword matches nothing.
func (s *Service) SearchByKeyword(ctx context.Context, keyword string) ([]domain.Item, error) {
	items, err := s.items.SearchByKeyword(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("search by keyword: %w", err)
	}
	return items, nil
}

// SearchByCreator returns items with a creator whose name contains the
// query, case-insensitively. A blank query matches nothing.
func (s *Service) SearchByCreator(ctx context.Context, creator string) ([]domain.Item, error) {
	items, err := s.items.SearchByCreator(ctx, creator)
	if err != nil {
		return nil, fmt.Errorf("search by creator: %w", err)
	}
	return items, nil
}
