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

// saleRepository implements the domain's SaleRepository interface using GORM.
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(db *gorm.DB) repository.SaleRepository {
	return &saleRepository{db: db}
}

// FindByID retrieves a single sale listing.
func (repo *saleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SaleItem, error) {
	var itemM model.SaleItemModel
	err := repo.db.WithContext(ctx).First(&itemM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSaleItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find sale listing by id")
	}

	return toSaleDomain(&itemM), nil
}

// FindByBusiness retrieves every sale listing of a business.
func (repo *saleRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.SaleItem, error) {
	var models []*model.SaleItemModel
	err := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find sale listings by business")
	}

	items := make([]*entity.SaleItem, 0, len(models))
	for _, m := range models {
		items = append(items, toSaleDomain(m))
	}

	return items, nil
}

// Create persists a new sale listing.
func (repo *saleRepository) Create(ctx context.Context, item *entity.SaleItem) error {
	itemM := fromSaleDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrInventoryItemNotFound
		}

		return errors.Wrap(err, "failed to create sale listing")
	}

	item.ID = itemM.ID

	return nil
}

// --- Mapper Functions ---

func toSaleDomain(data *model.SaleItemModel) *entity.SaleItem {
	if data == nil {
		return nil
	}

	return &entity.SaleItem{
		ID:              data.ID,
		InventoryItemID: data.InventoryItemID,
		BusinessID:      data.BusinessID,
		Quantity:        data.Quantity,
		Price:           data.Price,
		MoreInfo:        data.MoreInfo,
		Closes:          data.Closes,
		Created:         data.CreatedAt,
	}
}

func fromSaleDomain(data *entity.SaleItem) *model.SaleItemModel {
	if data == nil {
		return nil
	}

	return &model.SaleItemModel{
		ID:              data.ID,
		InventoryItemID: data.InventoryItemID,
		BusinessID:      data.BusinessID,
		Quantity:        data.Quantity,
		Price:           data.Price,
		MoreInfo:        data.MoreInfo,
		Closes:          data.Closes,
		CreatedAt:       data.Created,
	}
}
