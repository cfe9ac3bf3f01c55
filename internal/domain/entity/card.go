package entity

import (
	"time"

	"github.com/google/uuid"
)

// Section is the marketplace area a card is posted to.
type Section string

const (
	SectionForSale  Section = "FOR_SALE"
	SectionWanted   Section = "WANTED"
	SectionExchange Section = "EXCHANGE"
)

// IsValid checks if the Section is one of the enumerated values.
func (s Section) IsValid() bool {
	switch s {
	case SectionForSale, SectionWanted, SectionExchange:
		return true
	default:
		return false
	}
}

// cardDisplayPeriod is the default lifetime of a card, also used when the
// display period is extended.
const cardDisplayPeriod = 14 * 24 * time.Hour

// MarketplaceCard is a classified ad created by a user in one section.
type MarketplaceCard struct {
	ID          uuid.UUID
	CreatorID   uuid.UUID
	Section     Section
	Title       string
	Description string // optional
	Created     time.Time
	Closes      time.Time
	Keywords    []*Keyword // ordered, no duplicates
}

// MarketplaceCardParams carries the raw fields for creating a card.
type MarketplaceCardParams struct {
	CreatorID   uuid.UUID
	Section     Section
	Title       string
	Description string
	Closes      *time.Time // nil defaults to created + 14 days
}

// NewMarketplaceCard validates every field. The closing time defaults to
// two weeks after creation and must never precede the creation time.
func NewMarketplaceCard(p MarketplaceCardParams) (*MarketplaceCard, error) {
	created := time.Now()

	if !p.Section.IsValid() {
		return nil, validationError("section is not a recognised value")
	}
	if p.Title == "" {
		return nil, validationError("card title is required")
	}
	if len(p.Title) > maxCardTitle || !cardTitlePattern.MatchString(p.Title) {
		return nil, validationError("card title format is invalid")
	}
	if len(p.Description) > maxDescriptionLength {
		return nil, validationError("card description must be at most 200 characters")
	}

	closes := created.Add(cardDisplayPeriod)
	if p.Closes != nil {
		closes = *p.Closes
	}
	if closes.Before(created) {
		return nil, validationError("closing time must not precede creation time")
	}

	return &MarketplaceCard{
		CreatorID:   p.CreatorID,
		Section:     p.Section,
		Title:       p.Title,
		Description: p.Description,
		Created:     created,
		Closes:      closes,
	}, nil
}

// AddKeyword attaches a keyword to the card. Attaching an already-present
// keyword is an idempotent no-op.
func (c *MarketplaceCard) AddKeyword(k *Keyword) error {
	if k == nil {
		return validationError("keyword must not be nil")
	}
	for _, existing := range c.Keywords {
		if existing.ID == k.ID {
			return nil
		}
	}
	c.Keywords = append(c.Keywords, k)

	return nil
}

// ExtendDisplayPeriod pushes the closing time out by another two weeks.
func (c *MarketplaceCard) ExtendDisplayPeriod() {
	c.Closes = c.Closes.Add(cardDisplayPeriod)
}
