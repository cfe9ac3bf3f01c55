package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/listing"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// cardService implements the CardUsecase interface.
type cardService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCardService is the constructor for cardService.
func NewCardService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.CardUsecase {
	return &cardService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *cardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func findCard(ctx context.Context, repo repository.CardRepository, id uuid.UUID) (*entity.MarketplaceCard, error) {
	card, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCardNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "marketplace card not found")
		}

		return nil, errors.Wrap(err, "find card")
	}

	return card, nil
}

// CreateCard posts a card in the viewer's name. Keywords are attached by
// id and must already exist in the pool.
func (srv *cardService) CreateCard(ctx context.Context, viewer policy.Viewer, input usecase.CreateCardInput) (*entity.MarketplaceCard, error) {
	srv.log(ctx).Debug("Creating marketplace card", slog.String("section", input.Section))

	card, err := entity.NewMarketplaceCard(entity.MarketplaceCardParams{
		CreatorID:   viewer.AccountID,
		Section:     entity.Section(input.Section),
		Title:       input.Title,
		Description: input.Description,
		Closes:      input.Closes,
	})
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		keywordRepo := repoFactory.NewKeywordRepository()

		for _, keywordID := range input.KeywordIDs {
			keyword, err := keywordRepo.FindByID(ctx, keywordID)
			if err != nil {
				if errors.Is(err, repository.ErrKeywordNotFound) {
					return errors.Wrapf(domainerrors.ErrNotFound, "keyword %s not found", keywordID)
				}

				return errors.Wrap(err, "find keyword")
			}
			if err := card.AddKeyword(keyword); err != nil {
				return err
			}
		}

		if err := repoFactory.NewCardRepository().Create(ctx, card); err != nil {
			return errors.Wrap(err, "create card")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Marketplace card created", slog.Any("card_id", card.ID))

	return card, nil
}

// GetCards retrieves a section's cards, sorted and paginated.
func (srv *cardService) GetCards(ctx context.Context, section string, query usecase.ListQuery) ([]*entity.MarketplaceCard, error) {
	sec := entity.Section(section)
	if !sec.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidation, "section is not a recognised value")
	}

	compare, err := listing.CardComparator(query.SortKey)
	if err != nil {
		return nil, err
	}

	var cards []*entity.MarketplaceCard

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCardRepository().FindBySection(ctx, sec)
		if err != nil {
			return errors.Wrap(err, "list cards")
		}
		cards = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return listing.Apply(cards, compare, query.Reverse, query.Page, query.PageSize), nil
}

// GetCard retrieves one card.
func (srv *cardService) GetCard(ctx context.Context, id uuid.UUID) (*entity.MarketplaceCard, error) {
	var card *entity.MarketplaceCard

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findCard(ctx, repoFactory.NewCardRepository(), id)
		if err != nil {
			return err
		}
		card = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return card, nil
}

// DeleteCard removes a card. Only the creator or a global admin may.
func (srv *cardService) DeleteCard(ctx context.Context, viewer policy.Viewer, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cardRepo := repoFactory.NewCardRepository()

		card, err := findCard(ctx, cardRepo, id)
		if err != nil {
			return err
		}
		if card.CreatorID != viewer.AccountID && !viewer.IsAdmin() {
			return errors.Wrap(domainerrors.ErrForbidden, "only the creator or a global admin may delete a card")
		}

		if err := cardRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "delete card")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Marketplace card deleted", slog.Any("card_id", id))

	return nil
}

// ExtendDisplayPeriod pushes the card's closing time out by another
// display period.
func (srv *cardService) ExtendDisplayPeriod(ctx context.Context, viewer policy.Viewer, id uuid.UUID) (*entity.MarketplaceCard, error) {
	var card *entity.MarketplaceCard

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cardRepo := repoFactory.NewCardRepository()

		found, err := findCard(ctx, cardRepo, id)
		if err != nil {
			return err
		}
		if found.CreatorID != viewer.AccountID && !viewer.IsAdmin() {
			return errors.Wrap(domainerrors.ErrForbidden, "only the creator or a global admin may extend a card")
		}

		found.ExtendDisplayPeriod()
		if err := cardRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "update card")
		}
		card = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return card, nil
}
