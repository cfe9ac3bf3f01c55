package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/policy"
)

// CreateCardInput defines the fields for posting a marketplace card.
// Keywords are attached by id and must already exist.
type CreateCardInput struct {
	Section     string
	Title       string
	Description string
	Closes      *time.Time
	KeywordIDs  []uuid.UUID
}

// CardUsecase defines the interface for marketplace cards.
type CardUsecase interface {
	// CreateCard posts a card in the viewer's name.
	CreateCard(ctx context.Context, viewer policy.Viewer, input CreateCardInput) (*entity.MarketplaceCard, error)

	// GetCards retrieves a section's cards, sorted and paginated.
	GetCards(ctx context.Context, section string, query ListQuery) ([]*entity.MarketplaceCard, error)

	// GetCard retrieves one card.
	GetCard(ctx context.Context, id uuid.UUID) (*entity.MarketplaceCard, error)

	// DeleteCard removes a card. Only the creator or a global admin may.
	DeleteCard(ctx context.Context, viewer policy.Viewer, id uuid.UUID) error

	// ExtendDisplayPeriod pushes the card's closing time out by another
	// display period. Only the creator or a global admin may.
	ExtendDisplayPeriod(ctx context.Context, viewer policy.Viewer, id uuid.UUID) (*entity.MarketplaceCard, error)
}
