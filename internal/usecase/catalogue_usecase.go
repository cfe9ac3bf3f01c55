package usecase

import (
	"context"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/policy"
)

// ProductInput defines the fields for adding or replacing a catalogue
// product.
type ProductInput struct {
	Code                   string
	Name                   string
	Description            string
	Manufacturer           string
	RecommendedRetailPrice *float64
}

// ImageUpload carries one uploaded product image.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CatalogueUsecase defines the interface for a business's product
// catalogue, including product images. Every operation requires the
// viewer to act as the business.
type CatalogueUsecase interface {
	// AddProduct creates a product in the business's catalogue.
	AddProduct(ctx context.Context, viewer policy.Viewer, businessID uuid.UUID, input ProductInput) (*entity.Product, error)

	// GetCatalogue retrieves the business's products, sorted and paginated.
	GetCatalogue(ctx context.Context, viewer policy.Viewer, businessID uuid.UUID, query ListQuery) ([]*entity.Product, error)

	// ModifyProduct replaces a product's fields.
	ModifyProduct(ctx context.Context, viewer policy.Viewer, businessID, productID uuid.UUID, input ProductInput) error

	// AddProductImage stores an uploaded image and records it against the
	// product. The first image of a product becomes primary.
	AddProductImage(ctx context.Context, viewer policy.Viewer, businessID, productID uuid.UUID, upload ImageUpload) (*entity.ProductImage, error)

	// LoadProductImage reads a stored image's bytes.
	LoadProductImage(ctx context.Context, viewer policy.Viewer, businessID, productID, imageID uuid.UUID) (*entity.ProductImage, []byte, error)

	// SetPrimaryImage marks an image as the product's primary one.
	SetPrimaryImage(ctx context.Context, viewer policy.Viewer, businessID, productID, imageID uuid.UUID) error

	// DeleteProductImage removes an image record and its stored bytes.
	DeleteProductImage(ctx context.Context, viewer policy.Viewer, businessID, productID, imageID uuid.UUID) error
}
