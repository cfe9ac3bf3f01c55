package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	mockRepo "bazaar/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestKeywordService_CreateKeyword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		keywordRepo := mockRepo.NewMockKeywordRepository(t)
		service := NewKeywordService(passthrough(&mockRepo.StubFactory{Keywords: keywordRepo}), testLogger())

		ctx := context.Background()
		keywordRepo.On("Create", ctx, mock.AnythingOfType("*entity.Keyword")).Return(nil)

		keyword, err := service.CreateKeyword(ctx, "vehicle")

		require.NoError(t, err)
		assert.Equal(t, "vehicle", keyword.Name)
	})

	t.Run("duplicate name", func(t *testing.T) {
		keywordRepo := mockRepo.NewMockKeywordRepository(t)
		service := NewKeywordService(passthrough(&mockRepo.StubFactory{Keywords: keywordRepo}), testLogger())

		ctx := context.Background()
		keywordRepo.On("Create", ctx, mock.AnythingOfType("*entity.Keyword")).Return(repository.ErrKeywordTaken)

		_, err := service.CreateKeyword(ctx, "vehicle")

		assert.True(t, errors.Is(err, domainerrors.ErrKeywordExists))
	})

	t.Run("invalid name", func(t *testing.T) {
		service := NewKeywordService(passthrough(&mockRepo.StubFactory{}), testLogger())

		_, err := service.CreateKeyword(context.Background(), "two words")

		assert.True(t, errors.Is(err, domainerrors.ErrValidation))
	})
}

func TestKeywordService_DeleteKeyword(t *testing.T) {
	t.Run("plain user forbidden", func(t *testing.T) {
		service := NewKeywordService(passthrough(&mockRepo.StubFactory{}), testLogger())

		err := service.DeleteKeyword(context.Background(),
			policy.Viewer{AccountID: uuid.New(), Role: entity.RoleUser}, uuid.New())

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("admin deletes", func(t *testing.T) {
		keywordRepo := mockRepo.NewMockKeywordRepository(t)
		service := NewKeywordService(passthrough(&mockRepo.StubFactory{Keywords: keywordRepo}), testLogger())

		ctx := context.Background()
		id := uuid.New()
		keywordRepo.On("Delete", ctx, id).Return(nil)

		err := service.DeleteKeyword(ctx, policy.Viewer{AccountID: uuid.New(), Role: entity.RoleGlobalAdmin}, id)

		assert.NoError(t, err)
	})

	t.Run("missing keyword", func(t *testing.T) {
		keywordRepo := mockRepo.NewMockKeywordRepository(t)
		service := NewKeywordService(passthrough(&mockRepo.StubFactory{Keywords: keywordRepo}), testLogger())

		ctx := context.Background()
		id := uuid.New()
		keywordRepo.On("Delete", ctx, id).Return(repository.ErrKeywordNotFound)

		err := service.DeleteKeyword(ctx, policy.Viewer{AccountID: uuid.New(), Role: entity.RoleDefaultGlobalAdmin}, id)

		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})
}
