package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/turbota/feedsync/internal/domain/feed"
)

// GormFeedLogRepository implements FeedLogRepository using GORM
type GormFeedLogRepository struct {
	db *gorm.DB
}

// NewGormFeedLogRepository creates a new GormFeedLogRepository
func NewGormFeedLogRepository(db *gorm.DB) *GormFeedLogRepository {
	return &GormFeedLogRepository{db: db}
}

// Save creates a feed log entry. Logs are append-only.
func (r *GormFeedLogRepository) Save(ctx context.Context, log *feed.FeedLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// SaveValidationErrors inserts a run's validation errors as one batch
func (r *GormFeedLogRepository) SaveValidationErrors(ctx context.Context, errors []feed.ValidationError) error {
	if len(errors) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&errors).Error
}

// FindRecent returns the latest runs, newest first. An empty slug matches all
// marketplaces.
func (r *GormFeedLogRepository) FindRecent(ctx context.Context, slug string, limit int) ([]feed.FeedLog, error) {
	query := r.db.WithContext(ctx).Model(&feed.FeedLog{}).Order("created_at DESC")
	if slug != "" {
		query = query.Where("marketplace_slug = ?", slug)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var logs []feed.FeedLog
	if err := query.Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// FindValidationErrors returns all validation errors recorded for one run
func (r *GormFeedLogRepository) FindValidationErrors(ctx context.Context, feedLogID uuid.UUID) ([]feed.ValidationError, error) {
	var errors []feed.ValidationError
	if err := r.db.WithContext(ctx).
		Where("feed_log_id = ?", feedLogID).
		Order("created_at ASC").
		Find(&errors).Error; err != nil {
		return nil, err
	}
	return errors, nil
}

// Ensure GormFeedLogRepository implements FeedLogRepository
var _ feed.FeedLogRepository = (*GormFeedLogRepository)(nil)
