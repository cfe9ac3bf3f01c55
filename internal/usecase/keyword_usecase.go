package usecase

import (
	"context"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/policy"
)

// KeywordUsecase defines the interface for the global keyword pool.
type KeywordUsecase interface {
	// CreateKeyword adds a keyword to the pool. Names are unique.
	CreateKeyword(ctx context.Context, name string) (*entity.Keyword, error)

	// SearchKeywords retrieves keywords matching a partial name.
	SearchKeywords(ctx context.Context, query string) ([]*entity.Keyword, error)

	// DeleteKeyword removes a keyword everywhere. Global admins only.
	DeleteKeyword(ctx context.Context, viewer policy.Viewer, id uuid.UUID) error
}
