package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// ErrInventoryItemNotFound is returned when an inventory item is not found.
var ErrInventoryItemNotFound = errors.New("inventory item not found")

// InventoryRepository defines the operations for inventory persistence.
type InventoryRepository interface {
	// FindByID retrieves a single inventory item.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error)

	// FindByBusiness retrieves every inventory item whose product belongs
	// to the given business.
	FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.InventoryItem, error)

	// Create persists a new inventory item.
	Create(ctx context.Context, item *entity.InventoryItem) error

	// Update modifies an existing inventory item, including its remaining
	// stock counter.
	Update(ctx context.Context, item *entity.InventoryItem) error
}
