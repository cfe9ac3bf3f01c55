package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for keyword persistence.
var (
	// ErrKeywordNotFound is returned when a keyword is not found.
	ErrKeywordNotFound = errors.New("keyword not found")
	// ErrKeywordTaken is returned when a keyword with the same name exists.
	ErrKeywordTaken = errors.New("keyword already exists")
)

// KeywordRepository defines the operations for keyword persistence.
type KeywordRepository interface {
	// FindByID retrieves a single keyword.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Keyword, error)

	// Search retrieves every keyword whose name contains the query,
	// case-insensitively. An empty query returns all keywords.
	Search(ctx context.Context, query string) ([]*entity.Keyword, error)

	// Create persists a new keyword. A duplicate name surfaces as
	// ErrKeywordTaken.
	Create(ctx context.Context, keyword *entity.Keyword) error

	// Delete removes a keyword and detaches it from every card.
	Delete(ctx context.Context, id uuid.UUID) error
}
