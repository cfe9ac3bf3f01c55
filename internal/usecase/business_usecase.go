package usecase

import (
	"context"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/policy"
)

// CreateBusinessInput defines the data required to register a business.
// The acting viewer becomes the primary owner.
type CreateBusinessInput struct {
	Name        string
	Description string
	Type        string
	Address     LocationInput
}

// BusinessUsecase defines the interface for business-related operations.
type BusinessUsecase interface {
	// CreateBusiness registers a business with the viewer as primary owner.
	CreateBusiness(ctx context.Context, viewer policy.Viewer, input CreateBusinessInput) (*entity.Business, error)

	// GetBusiness retrieves a business by id.
	GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// MakeAdministrator adds a user to the business's administrators set.
	// The actor must be able to act as the business.
	MakeAdministrator(ctx context.Context, viewer policy.Viewer, businessID, userID uuid.UUID) error

	// RemoveAdministrator removes a user from the administrators set.
	RemoveAdministrator(ctx context.Context, viewer policy.Viewer, businessID, userID uuid.UUID) error
}
