package services

import (
	"context"
	"strings"

	"eventscout/internal/domain"
)

// CategoryAll is the category filter value that matches every event.
const CategoryAll = "all"

type catalogService struct {
	catalog domain.CatalogClient
}

// NewCatalogService creates a CatalogService on top of the given catalog client.
func NewCatalogService(catalog domain.CatalogClient) domain.CatalogService {
	return &catalogService{catalog: catalog}
}

func (s *catalogService) Browse(ctx context.Context, filters domain.SearchFilters, query, category string) ([]*domain.Event, error) {
	events, err := s.catalog.SearchEvents(ctx, filters)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	category = strings.ToLower(strings.TrimSpace(category))

	filtered := make([]*domain.Event, 0, len(events))
	for _, ev := range events {
		if query != "" && !strings.Contains(strings.ToLower(ev.Name), query) {
			continue
		}
		if category != "" && category != CategoryAll && !hasSegment(ev, category) {
			continue
		}
		filtered = append(filtered, ev)
	}
	return filtered, nil
}

func (s *catalogService) GetEvent(ctx context.Context, eventID string) (*domain.Event, error) {
	return s.catalog.GetEvent(ctx, eventID)
}

func hasSegment(ev *domain.Event, category string) bool {
	for _, seg := range ev.Segments {
		if strings.EqualFold(seg, category) {
			return true
		}
	}
	return false
}
