package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/turbota/feedsync/internal/domain/catalog"
	"github.com/turbota/feedsync/internal/domain/feed"
	"github.com/turbota/feedsync/internal/domain/shared"
)

// In-memory stand-ins for the repository interfaces, shared by the handler
// tests in this package.

type stubSource struct {
	products []catalog.Product
	err      error
}

func (s *stubSource) FetchProducts(ctx context.Context, query catalog.ProductQuery) ([]catalog.Product, error) {
	return s.products, s.err
}

type stubMarketplaces struct {
	bySlug  map[string]*feed.Marketplace
	saveErr error
	saved   *feed.Marketplace
	feedURL string
}

func (s *stubMarketplaces) FindBySlug(ctx context.Context, slug string) (*feed.Marketplace, error) {
	if m, ok := s.bySlug[slug]; ok {
		return m, nil
	}
	return nil, shared.ErrNotFound
}

func (s *stubMarketplaces) FindAll(ctx context.Context) ([]feed.Marketplace, error) {
	all := make([]feed.Marketplace, 0, len(s.bySlug))
	for _, m := range s.bySlug {
		all = append(all, *m)
	}
	return all, nil
}

func (s *stubMarketplaces) Save(ctx context.Context, marketplace *feed.Marketplace) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = marketplace
	return nil
}

func (s *stubMarketplaces) UpdateFeedURL(ctx context.Context, id uuid.UUID, feedURL string) error {
	s.feedURL = feedURL
	return nil
}

type stubMappings struct {
	mappings []feed.CategoryMapping
}

func (s *stubMappings) FindByID(ctx context.Context, id uuid.UUID) (*feed.CategoryMapping, error) {
	for i := range s.mappings {
		if s.mappings[i].ID == id {
			return &s.mappings[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (s *stubMappings) FindByMarketplace(ctx context.Context, marketplaceID uuid.UUID) ([]feed.CategoryMapping, error) {
	return s.mappings, nil
}

func (s *stubMappings) Save(ctx context.Context, mapping *feed.CategoryMapping) error {
	s.mappings = append(s.mappings, *mapping)
	return nil
}

func (s *stubMappings) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range s.mappings {
		if s.mappings[i].ID == id {
			s.mappings = append(s.mappings[:i], s.mappings[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

type stubMultipliers struct {
	multipliers []feed.PriceMultiplier
}

func (s *stubMultipliers) FindByID(ctx context.Context, id uuid.UUID) (*feed.PriceMultiplier, error) {
	for i := range s.multipliers {
		if s.multipliers[i].ID == id {
			return &s.multipliers[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

func (s *stubMultipliers) FindByMarketplace(ctx context.Context, marketplaceID uuid.UUID) ([]feed.PriceMultiplier, error) {
	return s.multipliers, nil
}

func (s *stubMultipliers) Save(ctx context.Context, multiplier *feed.PriceMultiplier) error {
	s.multipliers = append(s.multipliers, *multiplier)
	return nil
}

func (s *stubMultipliers) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range s.multipliers {
		if s.multipliers[i].ID == id {
			s.multipliers = append(s.multipliers[:i], s.multipliers[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

type stubLogs struct {
	logs       []feed.FeedLog
	validation []feed.ValidationError
}

func (s *stubLogs) Save(ctx context.Context, log *feed.FeedLog) error {
	s.logs = append(s.logs, *log)
	return nil
}

func (s *stubLogs) SaveValidationErrors(ctx context.Context, errors []feed.ValidationError) error {
	s.validation = append(s.validation, errors...)
	return nil
}

func (s *stubLogs) FindRecent(ctx context.Context, slug string, limit int) ([]feed.FeedLog, error) {
	var out []feed.FeedLog
	for _, l := range s.logs {
		if slug != "" && l.MarketplaceSlug != slug {
			continue
		}
		out = append(out, l)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *stubLogs) FindValidationErrors(ctx context.Context, feedLogID uuid.UUID) ([]feed.ValidationError, error) {
	var out []feed.ValidationError
	for _, v := range s.validation {
		if v.FeedLogID != nil && *v.FeedLogID == feedLogID {
			out = append(out, v)
		}
	}
	return out, nil
}
