package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// ErrSaleItemNotFound is returned when a sale listing is not found.
var ErrSaleItemNotFound = errors.New("sale listing not found")

// SaleRepository defines the operations for sale-listing persistence.
type SaleRepository interface {
	// FindByID retrieves a single sale listing.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SaleItem, error)

	// FindByBusiness retrieves every sale listing of a business.
	FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.SaleItem, error)

	// Create persists a new sale listing.
	Create(ctx context.Context, item *entity.SaleItem) error
}
