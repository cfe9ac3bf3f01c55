package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is returned when a business is not found.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository defines the operations for business persistence,
// including the administrators association.
type BusinessRepository interface {
	// FindByID retrieves a business with its administrators loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindByPrimaryOwner retrieves every business the user primarily owns.
	// Used to block deletion of accounts that still own a business.
	FindByPrimaryOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error)

	// Create persists a new business entity to the storage.
	Create(ctx context.Context, business *entity.Business) error

	// Update modifies an existing business, reconciling the stored
	// administrators set against the entity's.
	Update(ctx context.Context, business *entity.Business) error
}
