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

// inventoryRepository implements the domain's InventoryRepository interface using GORM.
type inventoryRepository struct {
	db *gorm.DB
}

// NewInventoryRepository is the constructor for inventoryRepository.
func NewInventoryRepository(db *gorm.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

// FindByID retrieves a single inventory item.
func (repo *inventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	var itemM model.InventoryItemModel
	err := repo.db.WithContext(ctx).First(&itemM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInventoryItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find inventory item by id")
	}

	return toInventoryDomain(&itemM), nil
}

// FindByBusiness retrieves every inventory item whose product belongs to
// the business, joining through the catalogue.
func (repo *inventoryRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.InventoryItem, error) {
	var models []*model.InventoryItemModel
	err := repo.db.WithContext(ctx).
		Joins("JOIN products ON products.id = inventory_items.product_id").
		Where("products.business_id = ?", businessID).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find inventory by business")
	}

	items := make([]*entity.InventoryItem, 0, len(models))
	for _, m := range models {
		items = append(items, toInventoryDomain(m))
	}

	return items, nil
}

// Create persists a new inventory item.
func (repo *inventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	itemM := fromInventoryDomain(item)

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to create inventory item")
	}

	item.ID = itemM.ID

	return nil
}

// Update modifies an inventory item, including its remaining stock.
func (repo *inventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InventoryItemModel{}).
		Where("id = ?", item.ID).
		Updates(map[string]any{
			"product_id":         item.ProductID,
			"quantity":           item.Quantity,
			"remaining_quantity": item.RemainingQuantity,
			"price_per_item":     item.PricePerItem,
			"total_price":        item.TotalPrice,
			"manufactured":       item.Manufactured,
			"sell_by":            item.SellBy,
			"best_before":        item.BestBefore,
			"expires":            item.Expires,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update inventory item")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInventoryItemNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toInventoryDomain(data *model.InventoryItemModel) *entity.InventoryItem {
	if data == nil {
		return nil
	}

	return &entity.InventoryItem{
		ID:                data.ID,
		ProductID:         data.ProductID,
		Quantity:          data.Quantity,
		RemainingQuantity: data.RemainingQuantity,
		PricePerItem:      data.PricePerItem,
		TotalPrice:        data.TotalPrice,
		Manufactured:      data.Manufactured,
		SellBy:            data.SellBy,
		BestBefore:        data.BestBefore,
		Expires:           data.Expires,
		Created:           data.CreatedAt,
	}
}

func fromInventoryDomain(data *entity.InventoryItem) *model.InventoryItemModel {
	if data == nil {
		return nil
	}

	return &model.InventoryItemModel{
		ID:                data.ID,
		ProductID:         data.ProductID,
		Quantity:          data.Quantity,
		RemainingQuantity: data.RemainingQuantity,
		PricePerItem:      data.PricePerItem,
		TotalPrice:        data.TotalPrice,
		Manufactured:      data.Manufactured,
		SellBy:            data.SellBy,
		BestBefore:        data.BestBefore,
		Expires:           data.Expires,
		CreatedAt:         data.Created,
	}
}
