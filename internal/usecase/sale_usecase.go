package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/policy"
)

// SaleItemInput defines the fields for creating a sale listing.
type SaleItemInput struct {
	InventoryItemID uuid.UUID
	Quantity        int
	Price           float64
	MoreInfo        string
	Closes          *time.Time
}

// SaleUsecase defines the interface for a business's sale listings.
type SaleUsecase interface {
	// CreateListing puts part of an inventory batch up for sale and
	// reserves that quantity from the batch's remaining stock, atomically.
	CreateListing(ctx context.Context, viewer policy.Viewer, businessID uuid.UUID, input SaleItemInput) (*entity.SaleItem, error)

	// GetListings retrieves the business's sale listings, sorted and
	// paginated. Any logged-in user may browse them.
	GetListings(ctx context.Context, businessID uuid.UUID, query ListQuery) ([]*entity.SaleItem, error)
}
