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

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewInventoryService is the constructor for inventoryService.
func NewInventoryService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.InventoryUsecase {
	return &inventoryService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// findBusinessItem loads an inventory item and checks its product belongs
// to the business.
func findBusinessItem(ctx context.Context, repoFactory repository.RepositoryFactory, businessID, itemID uuid.UUID) (*entity.InventoryItem, error) {
	item, err := repoFactory.NewInventoryRepository().FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrInventoryItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "inventory item not found")
		}

		return nil, errors.Wrap(err, "find inventory item")
	}

	if _, err := findBusinessProduct(ctx, repoFactory.NewProductRepository(), businessID, item.ProductID); err != nil {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "inventory item does not belong to this business")
	}

	return item, nil
}

func inventoryParams(input usecase.InventoryItemInput) entity.InventoryItemParams {
	return entity.InventoryItemParams{
		ProductID:    input.ProductID,
		Quantity:     input.Quantity,
		PricePerItem: input.PricePerItem,
		TotalPrice:   input.TotalPrice,
		Manufactured: input.Manufactured,
		SellBy:       input.SellBy,
		BestBefore:   input.BestBefore,
		Expires:      input.Expires,
	}
}

// AddItem creates an inventory item for a product of the business.
func (srv *inventoryService) AddItem(ctx context.Context, viewer policy.Viewer, businessID uuid.UUID, input usecase.InventoryItemInput) (*entity.InventoryItem, error) {
	srv.log(ctx).Debug("Adding inventory item",
		slog.Any("business_id", businessID), slog.Any("product_id", input.ProductID))

	var item *entity.InventoryItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := businessForActor(ctx, repoFactory, viewer, businessID); err != nil {
			return err
		}
		if _, err := findBusinessProduct(ctx, repoFactory.NewProductRepository(), businessID, input.ProductID); err != nil {
			return err
		}

		var err error
		item, err = entity.NewInventoryItem(inventoryParams(input))
		if err != nil {
			return err
		}

		if err := repoFactory.NewInventoryRepository().Create(ctx, item); err != nil {
			return errors.Wrap(err, "create inventory item")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return item, nil
}

// GetInventory retrieves the business's inventory, sorted and paginated.
func (srv *inventoryService) GetInventory(ctx context.Context, viewer policy.Viewer, businessID uuid.UUID, query usecase.ListQuery) ([]*entity.InventoryItem, error) {
	compare, err := listing.InventoryComparator(query.SortKey)
	if err != nil {
		return nil, err
	}

	var items []*entity.InventoryItem

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := businessForActor(ctx, repoFactory, viewer, businessID); err != nil {
			return err
		}

		found, err := repoFactory.NewInventoryRepository().FindByBusiness(ctx, businessID)
		if err != nil {
			return errors.Wrap(err, "list inventory")
		}
		items = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return listing.Apply(items, compare, query.Reverse, query.Page, query.PageSize), nil
}

// ModifyItem replaces an inventory item's fields. Quantity may not drop
// below what sale listings have already reserved.
func (srv *inventoryService) ModifyItem(ctx context.Context, viewer policy.Viewer, businessID, itemID uuid.UUID, input usecase.InventoryItemInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := businessForActor(ctx, repoFactory, viewer, businessID); err != nil {
			return err
		}

		item, err := findBusinessItem(ctx, repoFactory, businessID, itemID)
		if err != nil {
			return err
		}
		if input.ProductID != item.ProductID {
			if _, err := findBusinessProduct(ctx, repoFactory.NewProductRepository(), businessID, input.ProductID); err != nil {
				return err
			}
		}

		if err := item.ApplyUpdate(inventoryParams(input)); err != nil {
			return err
		}

		if err := repoFactory.NewInventoryRepository().Update(ctx, item); err != nil {
			return errors.Wrap(err, "update inventory item")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Inventory item modified", slog.Any("item_id", itemID))

	return nil
}
