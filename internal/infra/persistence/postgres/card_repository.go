package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"
)

// cardRepository implements the domain's CardRepository interface using GORM.
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository is the constructor for cardRepository.
func NewCardRepository(db *gorm.DB) repository.CardRepository {
	return &cardRepository{db: db}
}

// FindByID retrieves a card with its keywords.
func (repo *cardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MarketplaceCard, error) {
	var cardM model.CardModel
	err := repo.db.WithContext(ctx).
		Preload("Keywords").
		First(&cardM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCardNotFound
		}

		return nil, errors.Wrap(err, "failed to find card by id")
	}

	return toCardDomain(&cardM), nil
}

// FindBySection retrieves every card posted to the section.
func (repo *cardRepository) FindBySection(ctx context.Context, section entity.Section) ([]*entity.MarketplaceCard, error) {
	var models []*model.CardModel
	err := repo.db.WithContext(ctx).
		Preload("Keywords").
		Where("section = ?", string(section)).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cards by section")
	}

	cards := make([]*entity.MarketplaceCard, 0, len(models))
	for _, m := range models {
		cards = append(cards, toCardDomain(m))
	}

	return cards, nil
}

// Create persists a new card and links its keywords.
func (repo *cardRepository) Create(ctx context.Context, card *entity.MarketplaceCard) error {
	cardM := fromCardDomain(card)

	// Keywords already exist; only the join rows are created here.
	err := repo.db.WithContext(ctx).
		Omit("Keywords.*").
		Create(cardM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create card")
	}

	card.ID = cardM.ID

	return nil
}

// Update modifies a card's columns and reconciles the keyword links.
func (repo *cardRepository) Update(ctx context.Context, card *entity.MarketplaceCard) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CardModel{}).
		Where("id = ?", card.ID).
		Updates(map[string]any{
			"section":     string(card.Section),
			"title":       card.Title,
			"description": card.Description,
			"closes":      card.Closes,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update card")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCardNotFound
	}

	keywords := make([]*model.KeywordModel, 0, len(card.Keywords))
	for _, k := range card.Keywords {
		keywords = append(keywords, &model.KeywordModel{ID: k.ID})
	}

	cardM := &model.CardModel{ID: card.ID}
	if err := repo.db.WithContext(ctx).Model(cardM).Association("Keywords").Replace(keywords); err != nil {
		return errors.Wrap(err, "failed to update card keywords")
	}

	return nil
}

// Delete removes a card. Keyword links drop through the cascade.
func (repo *cardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.CardModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete card")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCardNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toCardDomain(data *model.CardModel) *entity.MarketplaceCard {
	if data == nil {
		return nil
	}

	keywords := make([]*entity.Keyword, 0, len(data.Keywords))
	for _, k := range data.Keywords {
		keywords = append(keywords, toKeywordDomain(k))
	}

	return &entity.MarketplaceCard{
		ID:          data.ID,
		CreatorID:   data.CreatorID,
		Section:     entity.Section(data.Section),
		Title:       data.Title,
		Description: data.Description,
		Created:     data.CreatedAt,
		Closes:      data.Closes,
		Keywords:    keywords,
	}
}

func fromCardDomain(data *entity.MarketplaceCard) *model.CardModel {
	if data == nil {
		return nil
	}

	keywords := make([]*model.KeywordModel, 0, len(data.Keywords))
	for _, k := range data.Keywords {
		keywords = append(keywords, &model.KeywordModel{ID: k.ID})
	}

	return &model.CardModel{
		ID:          data.ID,
		CreatorID:   data.CreatorID,
		Section:     string(data.Section),
		Title:       data.Title,
		Description: data.Description,
		Closes:      data.Closes,
		CreatedAt:   data.Created,
		Keywords:    keywords,
	}
}
