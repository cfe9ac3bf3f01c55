package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// keywordService implements the KeywordUsecase interface.
type keywordService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewKeywordService is the constructor for keywordService.
func NewKeywordService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.KeywordUsecase {
	return &keywordService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *keywordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateKeyword adds a keyword to the global pool.
func (srv *keywordService) CreateKeyword(ctx context.Context, name string) (*entity.Keyword, error) {
	keyword, err := entity.NewKeyword(name)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewKeywordRepository().Create(ctx, keyword); err != nil {
			if errors.Is(err, repository.ErrKeywordTaken) {
				return errors.Wrap(domainerrors.ErrKeywordExists, "keyword already exists")
			}

			return errors.Wrap(err, "create keyword")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Keyword created", slog.String("name", keyword.Name))

	return keyword, nil
}

// SearchKeywords retrieves keywords matching a partial name. An empty
// query returns the whole pool.
func (srv *keywordService) SearchKeywords(ctx context.Context, query string) ([]*entity.Keyword, error) {
	var keywords []*entity.Keyword

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewKeywordRepository().Search(ctx, query)
		if err != nil {
			return errors.Wrap(err, "search keywords")
		}
		keywords = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return keywords, nil
}

// DeleteKeyword removes a keyword from the pool and every card carrying
// it. Global admins only.
func (srv *keywordService) DeleteKeyword(ctx context.Context, viewer policy.Viewer, id uuid.UUID) error {
	if !viewer.IsAdmin() {
		return errors.Wrap(domainerrors.ErrForbidden, "only a global admin may delete keywords")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewKeywordRepository().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrKeywordNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "keyword not found")
			}

			return errors.Wrap(err, "delete keyword")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Keyword deleted", slog.Any("keyword_id", id))

	return nil
}
