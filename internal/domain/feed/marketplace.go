package feed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/turbota/feedsync/internal/domain/shared"
)

// RoundingRule selects how a transformed price is rounded before it is
// written into the feed.
type RoundingRule string

const (
	// RoundingDot99 floors to an integer and adds 0.99
	RoundingDot99 RoundingRule = "dot99"
	// RoundingRound5 rounds to the nearest multiple of 5
	RoundingRound5 RoundingRule = "round5"
	// RoundingRound10 rounds to the nearest multiple of 10
	RoundingRound10 RoundingRule = "round10"
	// RoundingMath rounds to 2 decimal places (the default)
	RoundingMath RoundingRule = "math"
)

// Marketplace is the per-target configuration row. The slug is the stable
// identifier used for routing, logging and FeedLog attribution.
type Marketplace struct {
	shared.BaseEntity
	Slug             string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name             string          `gorm:"type:varchar(100);not null"`
	IsActive         bool            `gorm:"not null;default:true"`
	GlobalMultiplier decimal.Decimal `gorm:"type:decimal(10,4);not null;default:1"`
	RoundingRule     RoundingRule    `gorm:"type:varchar(20);not null;default:'math'"`
	FeedURL          string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Marketplace) TableName() string {
	return "marketplace_config"
}

// NewMarketplace creates a marketplace with the default pricing settings.
func NewMarketplace(slug, name string) (*Marketplace, error) {
	if slug == "" {
		return nil, shared.NewDomainError("INVALID_SLUG", "Marketplace slug cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Marketplace name cannot be empty")
	}

	return &Marketplace{
		BaseEntity:       shared.NewBaseEntity(),
		Slug:             slug,
		Name:             name,
		IsActive:         true,
		GlobalMultiplier: decimal.NewFromInt(1),
		RoundingRule:     RoundingMath,
	}, nil
}

// UpdatePricing changes the global multiplier and rounding rule.
func (m *Marketplace) UpdatePricing(multiplier decimal.Decimal, rule RoundingRule) error {
	if !multiplier.IsPositive() {
		return shared.NewDomainError("INVALID_MULTIPLIER", "Global multiplier must be greater than zero")
	}
	switch rule {
	case RoundingDot99, RoundingRound5, RoundingRound10, RoundingMath:
	default:
		return shared.NewDomainError("INVALID_ROUNDING_RULE", "Unknown rounding rule")
	}

	m.GlobalMultiplier = multiplier
	m.RoundingRule = rule
	m.UpdatedAt = time.Now()

	return nil
}

// SetActive toggles whether the marketplace participates in feed generation.
func (m *Marketplace) SetActive(active bool) {
	m.IsActive = active
	m.UpdatedAt = time.Now()
}

// SetFeedURL records the retrieval URL of the most recent successful run.
// The update is idempotent; last writer wins is acceptable.
func (m *Marketplace) SetFeedURL(url string) {
	m.FeedURL = url
	m.UpdatedAt = time.Now()
}
