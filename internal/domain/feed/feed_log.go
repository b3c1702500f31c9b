package feed

import (
	"github.com/google/uuid"

	"github.com/turbota/feedsync/internal/domain/shared"
)

// FeedStatus is the outcome of a feed generation run.
type FeedStatus string

const (
	FeedStatusPending FeedStatus = "pending"
	FeedStatusSuccess FeedStatus = "success"
	FeedStatusError   FeedStatus = "error"
)

// ErrorType classifies why a product or variant was rejected from a feed.
type ErrorType string

const (
	// ErrorTypeDraft rejects products whose lifecycle status is not active
	ErrorTypeDraft ErrorType = "draft"
	// ErrorTypeNoImage rejects products without a single image
	ErrorTypeNoImage ErrorType = "no_image"
	// ErrorTypeNoCategory rejects products no category mapping matched
	ErrorTypeNoCategory ErrorType = "no_category"
	// ErrorTypeZeroPrice rejects a single variant with a missing or
	// non-positive price; sibling variants are still processed
	ErrorTypeZeroPrice ErrorType = "zero_price"
)

// FeedLog is the append-only summary record of one generation run.
// It is never updated after creation.
type FeedLog struct {
	shared.BaseEntity
	MarketplaceSlug string     `gorm:"type:varchar(50);not null;index"`
	Status          FeedStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	ProductCount    int        `gorm:"not null;default:0"`
	DurationMs      int64      `gorm:"not null;default:0"`
	ErrorMessage    string     `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (FeedLog) TableName() string {
	return "feed_logs"
}

// NewSuccessLog records a completed run. productCount is the number of offer
// fragments emitted, never the number of input products.
func NewSuccessLog(slug string, productCount int, durationMs int64) *FeedLog {
	return &FeedLog{
		BaseEntity:      shared.NewBaseEntity(),
		MarketplaceSlug: slug,
		Status:          FeedStatusSuccess,
		ProductCount:    productCount,
		DurationMs:      durationMs,
	}
}

// NewErrorLog records a failed run with the causing failure's message.
func NewErrorLog(slug string, durationMs int64, message string) *FeedLog {
	return &FeedLog{
		BaseEntity:      shared.NewBaseEntity(),
		MarketplaceSlug: slug,
		Status:          FeedStatusError,
		DurationMs:      durationMs,
		ErrorMessage:    message,
	}
}

// ValidationError is one rejection recorded during a run. Rows are created
// as a batch alongside the run's FeedLog and never mutated.
type ValidationError struct {
	shared.BaseEntity
	FeedLogID       *uuid.UUID `gorm:"type:uuid;index"`
	MarketplaceSlug string     `gorm:"type:varchar(50);not null;index"`
	ErrorType       ErrorType  `gorm:"type:varchar(20);not null"`
	ErrorMessage    string     `gorm:"type:text;not null"`
	ProductSKU      string     `gorm:"type:varchar(100)"`
	ProductTitle    string     `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (ValidationError) TableName() string {
	return "validation_errors"
}
