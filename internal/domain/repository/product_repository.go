package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalogue persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductCodeTaken is returned when a business already has a product
	// with the given code.
	ErrProductCodeTaken = errors.New("product code already used in this catalogue")
	// ErrImageNotFound is returned when a product image is not found.
	ErrImageNotFound = errors.New("product image not found")
)

// ProductRepository defines the operations for catalogue persistence.
type ProductRepository interface {
	// FindByID retrieves a product with its images loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByBusiness retrieves a business's full catalogue, images included.
	FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Product, error)

	// Create persists a new product. A duplicate code within the same
	// catalogue surfaces as ErrProductCodeTaken.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product's scalar fields.
	Update(ctx context.Context, product *entity.Product) error

	// AddImage persists a new image record for a product.
	AddImage(ctx context.Context, image *entity.ProductImage) error

	// UpdateImages persists the primary flags of a product's image records.
	UpdateImages(ctx context.Context, productID uuid.UUID, images []*entity.ProductImage) error

	// DeleteImage removes an image record.
	DeleteImage(ctx context.Context, imageID uuid.UUID) error
}
