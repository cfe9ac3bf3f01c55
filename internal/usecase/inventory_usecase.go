package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/policy"
)

// InventoryItemInput defines the fields for adding or replacing an
// inventory item.
type InventoryItemInput struct {
	ProductID    uuid.UUID
	Quantity     int
	PricePerItem *float64
	TotalPrice   *float64
	Manufactured *time.Time
	SellBy       *time.Time
	BestBefore   *time.Time
	Expires      time.Time
}

// InventoryUsecase defines the interface for a business's inventory.
// Every operation requires the viewer to act as the business.
type InventoryUsecase interface {
	// AddItem creates an inventory item for a product of the business.
	AddItem(ctx context.Context, viewer policy.Viewer, businessID uuid.UUID, input InventoryItemInput) (*entity.InventoryItem, error)

	// GetInventory retrieves the business's inventory, sorted and paginated.
	GetInventory(ctx context.Context, viewer policy.Viewer, businessID uuid.UUID, query ListQuery) ([]*entity.InventoryItem, error)

	// ModifyItem replaces an inventory item's fields.
	ModifyItem(ctx context.Context, viewer policy.Viewer, businessID, itemID uuid.UUID, input InventoryItemInput) error
}
