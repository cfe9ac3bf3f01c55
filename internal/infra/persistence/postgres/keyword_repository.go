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

// keywordRepository implements the domain's KeywordRepository interface using GORM.
type keywordRepository struct {
	db *gorm.DB
}

// NewKeywordRepository is the constructor for keywordRepository.
func NewKeywordRepository(db *gorm.DB) repository.KeywordRepository {
	return &keywordRepository{db: db}
}

// FindByID retrieves a single keyword.
func (repo *keywordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Keyword, error) {
	var keywordM model.KeywordModel
	err := repo.db.WithContext(ctx).First(&keywordM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKeywordNotFound
		}

		return nil, errors.Wrap(err, "failed to find keyword by id")
	}

	return toKeywordDomain(&keywordM), nil
}

// Search retrieves keywords whose name contains the query.
func (repo *keywordRepository) Search(ctx context.Context, query string) ([]*entity.Keyword, error) {
	db := repo.db.WithContext(ctx)
	if query != "" {
		db = db.Where("name ILIKE ?", "%"+query+"%")
	}

	var models []*model.KeywordModel
	if err := db.Order("name ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search keywords")
	}

	keywords := make([]*entity.Keyword, 0, len(models))
	for _, m := range models {
		keywords = append(keywords, toKeywordDomain(m))
	}

	return keywords, nil
}

// Create persists a new keyword. Name uniqueness is enforced by the store.
func (repo *keywordRepository) Create(ctx context.Context, keyword *entity.Keyword) error {
	keywordM := fromKeywordDomain(keyword)

	if err := repo.db.WithContext(ctx).Create(keywordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrKeywordTaken
		}

		return errors.Wrap(err, "failed to create keyword")
	}

	keyword.ID = keywordM.ID

	return nil
}

// Delete removes a keyword. Card links drop through the cascade.
func (repo *keywordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.KeywordModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete keyword")
	}
	if result.RowsAffected == 0 {
		return repository.ErrKeywordNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toKeywordDomain(data *model.KeywordModel) *entity.Keyword {
	if data == nil {
		return nil
	}

	return &entity.Keyword{
		ID:      data.ID,
		Name:    data.Name,
		Created: data.CreatedAt,
	}
}

func fromKeywordDomain(data *entity.Keyword) *model.KeywordModel {
	if data == nil {
		return nil
	}

	return &model.KeywordModel{
		ID:      data.ID,
		Name:    data.Name,
		CreatedAt: data.Created,
	}
}
