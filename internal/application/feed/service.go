package feed

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/turbota/feedsync/internal/domain/catalog"
	"github.com/turbota/feedsync/internal/domain/feed"
	"github.com/turbota/feedsync/internal/domain/shared"
)

// ErrUnknownMarketplace is returned when no encoder is registered for a slug.
var ErrUnknownMarketplace = shared.NewDomainError("UNKNOWN_MARKETPLACE", "Unknown marketplace")

// ErrConfigNotFound is returned when the marketplace has no configuration row.
var ErrConfigNotFound = shared.NewDomainError("CONFIG_NOT_FOUND", "Marketplace config not found")

// GenerateResult is the outcome of one successful feed generation run.
type GenerateResult struct {
	XML        string
	OfferCount int
	DurationMs int64
}

// Service runs the feed generation pipeline: fetch the full catalog, validate
// and transform every variant through the marketplace's encoder, assemble the
// document and record the run. One Service instance serves all marketplaces.
type Service struct {
	source       catalog.ProductSource
	marketplaces feed.MarketplaceRepository
	mappings     feed.CategoryMappingRepository
	multipliers  feed.PriceMultiplierRepository
	logs         feed.FeedLogRepository
	encoders     map[string]Encoder
	feedBaseURL  string
	logger       *zap.Logger

	// now is swapped in tests for deterministic envelopes and durations
	now func() time.Time
}

// NewService creates the feed generation service with the built-in encoders.
func NewService(
	source catalog.ProductSource,
	marketplaces feed.MarketplaceRepository,
	mappings feed.CategoryMappingRepository,
	multipliers feed.PriceMultiplierRepository,
	logs feed.FeedLogRepository,
	feedBaseURL string,
	logger *zap.Logger,
) *Service {
	s := &Service{
		source:       source,
		marketplaces: marketplaces,
		mappings:     mappings,
		multipliers:  multipliers,
		logs:         logs,
		encoders:     make(map[string]Encoder),
		feedBaseURL:  feedBaseURL,
		logger:       logger,
		now:          time.Now,
	}

	s.register(NewRozetkaEncoder())
	s.register(NewMaudauEncoder())
	s.register(NewEpicentrEncoder())

	return s
}

func (s *Service) register(enc Encoder) {
	s.encoders[enc.Slug()] = enc
}

// Slugs returns the registered marketplace slugs.
func (s *Service) Slugs() []string {
	slugs := make([]string, 0, len(s.encoders))
	for slug := range s.encoders {
		slugs = append(slugs, slug)
	}
	return slugs
}

// Generate runs one feed generation pass for the marketplace. On success the
// complete XML document is returned and the run is recorded; recording
// failures are logged but never withhold the document. On failure an error
// FeedLog is written best-effort and the causing error is returned.
func (s *Service) Generate(ctx context.Context, slug string) (*GenerateResult, error) {
	start := s.now()

	enc, ok := s.encoders[slug]
	if !ok {
		return nil, ErrUnknownMarketplace
	}

	result, err := s.run(ctx, enc, start)
	if err != nil {
		s.recordFailure(ctx, slug, s.now().Sub(start).Milliseconds(), err)
		return nil, err
	}

	return result, nil
}

// run executes the pipeline up to the assembled document and records the
// successful run.
func (s *Service) run(ctx context.Context, enc Encoder, start time.Time) (*GenerateResult, error) {
	slug := enc.Slug()

	marketplace, err := s.marketplaces.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	mappings, err := s.mappings.FindByMarketplace(ctx, marketplace.ID)
	if err != nil {
		return nil, err
	}

	multipliers, err := s.multipliers.FindByMarketplace(ctx, marketplace.ID)
	if err != nil {
		return nil, err
	}

	products, err := s.source.FetchProducts(ctx, catalog.ProductQuery{})
	if err != nil {
		return nil, err
	}

	collector := NewCollector(slug)
	categories := newCategoryIndex()
	var fragments []string

	for i := range products {
		product := &products[i]

		if !product.IsActive() {
			collector.RejectProduct(feed.ErrorTypeDraft, msgDraft, product)
			continue
		}
		if !product.HasImages() {
			collector.RejectProduct(feed.ErrorTypeNoImage, msgNoImage, product)
			continue
		}

		mapping := enc.ResolveCategory(product.ProductType, mappings)
		if mapping == nil {
			collector.RejectProduct(feed.ErrorTypeNoCategory, msgNoCategory, product)
			continue
		}
		if enc.SkipDisabled() && mapping.Disabled() {
			continue
		}

		category := enc.Category(mapping)
		categories.Add(category)

		multiplier := effectiveMultiplier(mapping, multipliers, marketplace.GlobalMultiplier)

		for j := range product.Variants {
			variant := &product.Variants[j]

			price, ok := parsePositivePrice(variant.Price)
			if !ok {
				collector.RejectVariant(feed.ErrorTypeZeroPrice, msgZeroPrice, product, variant)
				continue
			}

			offer := &Offer{
				Product:  product,
				Variant:  variant,
				Category: category,
				Price:    ApplyRounding(price.Mul(multiplier), marketplace.RoundingRule),
			}

			if compareAt, ok := parsePositivePrice(variant.CompareAtPrice); ok {
				old := ApplyRounding(compareAt.Mul(multiplier), marketplace.RoundingRule)
				if old.GreaterThan(offer.Price) {
					offer.OldPrice = &old
				}
			}

			fragments = append(fragments, enc.EncodeOffer(offer))
		}
	}

	xml := enc.Envelope(fragments, categories.List(), s.now())
	durationMs := s.now().Sub(start).Milliseconds()

	s.recordSuccess(ctx, marketplace, len(fragments), durationMs, collector)

	return &GenerateResult{XML: xml, OfferCount: len(fragments), DurationMs: durationMs}, nil
}

// recordSuccess writes the run summary, the validation error batch and the
// refreshed feed URL. All three writes are best-effort: a failed write is
// logged and the document is still served.
func (s *Service) recordSuccess(ctx context.Context, marketplace *feed.Marketplace, offerCount int, durationMs int64, collector *Collector) {
	slug := marketplace.Slug

	runLog := feed.NewSuccessLog(slug, offerCount, durationMs)
	logSaved := true
	if err := s.logs.Save(ctx, runLog); err != nil {
		logSaved = false
		s.logger.Error("failed to save feed log",
			zap.String("marketplace", slug),
			zap.Error(err))
	}

	// Validation rows attach to the run log, so they are only written when
	// the log row exists.
	if logSaved && collector.Len() > 0 {
		batch := collector.Errors()
		for i := range batch {
			batch[i].FeedLogID = &runLog.ID
		}
		if err := s.logs.SaveValidationErrors(ctx, batch); err != nil {
			s.logger.Error("failed to save validation errors",
				zap.String("marketplace", slug),
				zap.Int("count", len(batch)),
				zap.Error(err))
		}
	}

	feedURL := s.feedBaseURL + "/api/v1/feeds/" + slug + "/generate"
	if err := s.marketplaces.UpdateFeedURL(ctx, marketplace.ID, feedURL); err != nil {
		s.logger.Error("failed to update feed url",
			zap.String("marketplace", slug),
			zap.Error(err))
	}

	s.logger.Info("feed generated",
		zap.String("marketplace", slug),
		zap.Int("offers", offerCount),
		zap.Int("validation_errors", collector.Len()))
}

// recordFailure writes the error run summary. Collected validation rows from
// the aborted pass are discarded.
func (s *Service) recordFailure(ctx context.Context, slug string, durationMs int64, cause error) {
	runLog := feed.NewErrorLog(slug, durationMs, cause.Error())
	if err := s.logs.Save(ctx, runLog); err != nil {
		s.logger.Error("failed to save error feed log",
			zap.String("marketplace", slug),
			zap.Error(err))
	}

	s.logger.Error("feed generation failed",
		zap.String("marketplace", slug),
		zap.Error(cause))
}
