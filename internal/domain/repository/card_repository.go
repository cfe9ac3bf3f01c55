package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// ErrCardNotFound is returned when a marketplace card is not found.
var ErrCardNotFound = errors.New("marketplace card not found")

// CardRepository defines the operations for marketplace-card persistence,
// including the card-keyword association.
type CardRepository interface {
	// FindByID retrieves a card with its keywords loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MarketplaceCard, error)

	// FindBySection retrieves every card posted to the given section.
	FindBySection(ctx context.Context, section entity.Section) ([]*entity.MarketplaceCard, error)

	// Create persists a new card and its keyword links.
	Create(ctx context.Context, card *entity.MarketplaceCard) error

	// Update modifies an existing card, reconciling the stored keyword
	// links against the entity's.
	Update(ctx context.Context, card *entity.MarketplaceCard) error

	// Delete removes a card and its keyword links.
	Delete(ctx context.Context, id uuid.UUID) error
}
