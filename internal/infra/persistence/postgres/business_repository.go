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

// businessRepository implements the domain's BusinessRepository interface using GORM.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{db: db}
}

// FindByID retrieves a business with its address and administrators.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		Preload("Administrators").
		First(&businessM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by id")
	}

	return toBusinessDomain(&businessM), nil
}

// FindByPrimaryOwner retrieves every business the user primarily owns.
func (repo *businessRepository) FindByPrimaryOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error) {
	var models []*model.BusinessModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		Preload("Administrators").
		Where("primary_owner_id = ?", ownerID).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find businesses by owner")
	}

	businesses := make([]*entity.Business, 0, len(models))
	for _, m := range models {
		businesses = append(businesses, toBusinessDomain(m))
	}

	return businesses, nil
}

// Create persists a new business and its owned address.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	// Administrators are linked separately through Update; a new business
	// never has any.
	if err := repo.db.WithContext(ctx).Omit("Administrators").Create(businessM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create business")
	}

	business.ID = businessM.ID

	return nil
}

// Update modifies a business's scalar columns and reconciles the stored
// administrators set against the entity's.
func (repo *businessRepository) Update(ctx context.Context, business *entity.Business) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", business.ID).
		Updates(map[string]any{
			"name":          business.Name,
			"description":   business.Description,
			"business_type": string(business.Type),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update business")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	admins := make([]*model.UserModel, 0, len(business.AdministratorIDs))
	for _, adminID := range business.AdministratorIDs {
		admins = append(admins, &model.UserModel{ID: adminID})
	}

	businessM := &model.BusinessModel{ID: business.ID}
	if err := repo.db.WithContext(ctx).Model(businessM).Association("Administrators").Replace(admins); err != nil {
		return errors.Wrap(err, "failed to update business administrators")
	}

	return nil
}

// --- Mapper Functions ---

func toBusinessDomain(data *model.BusinessModel) *entity.Business {
	if data == nil {
		return nil
	}

	adminIDs := make([]uuid.UUID, 0, len(data.Administrators))
	for _, admin := range data.Administrators {
		adminIDs = append(adminIDs, admin.ID)
	}

	return &entity.Business{
		ID:               data.ID,
		Name:             data.Name,
		Description:      data.Description,
		Address:          toLocationDomain(data.Address),
		Type:             entity.BusinessType(data.BusinessType),
		PrimaryOwnerID:   data.PrimaryOwnerID,
		AdministratorIDs: adminIDs,
		Created:          data.CreatedAt,
	}
}

func fromBusinessDomain(data *entity.Business) *model.BusinessModel {
	if data == nil {
		return nil
	}

	return &model.BusinessModel{
		ID:             data.ID,
		Name:           data.Name,
		Description:    data.Description,
		BusinessType:   string(data.Type),
		PrimaryOwnerID: data.PrimaryOwnerID,
		Address:        fromLocationDomain(data.Address),
		CreatedAt:      data.Created,
	}
}
