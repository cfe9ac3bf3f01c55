package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/listing"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// saleService implements the SaleUsecase interface.
type saleService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSaleService is the constructor for saleService.
func NewSaleService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.SaleUsecase {
	return &saleService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *saleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateListing puts part of an inventory batch up for sale. The listed
// quantity is reserved from the batch's remaining stock in the same
// transaction, so a rolled-back listing never leaks a reservation.
func (srv *saleService) CreateListing(ctx context.Context, viewer policy.Viewer, businessID uuid.UUID, input usecase.SaleItemInput) (*entity.SaleItem, error) {
	srv.log(ctx).Debug("Creating sale listing",
		slog.Any("business_id", businessID), slog.Any("inventory_item_id", input.InventoryItemID))

	var sale *entity.SaleItem

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := businessForActor(ctx, repoFactory, viewer, businessID); err != nil {
			return err
		}

		item, err := findBusinessItem(ctx, repoFactory, businessID, input.InventoryItemID)
		if err != nil {
			return err
		}

		sale, err = entity.NewSaleItem(entity.SaleItemParams{
			InventoryItem: item,
			BusinessID:    businessID,
			Quantity:      input.Quantity,
			Price:         input.Price,
			MoreInfo:      input.MoreInfo,
			Closes:        input.Closes,
		})
		if err != nil {
			return err
		}

		if err := item.ReserveStock(input.Quantity); err != nil {
			return err
		}
		if err := repoFactory.NewInventoryRepository().Update(ctx, item); err != nil {
			return errors.Wrap(err, "reserve inventory stock")
		}

		if err := repoFactory.NewSaleRepository().Create(ctx, sale); err != nil {
			return errors.Wrap(err, "create sale listing")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Sale listing created", slog.Any("sale_id", sale.ID))

	return sale, nil
}

// GetListings retrieves the business's sale listings, sorted and paginated.
func (srv *saleService) GetListings(ctx context.Context, businessID uuid.UUID, query usecase.ListQuery) ([]*entity.SaleItem, error) {
	compare, err := listing.SaleComparator(query.SortKey)
	if err != nil {
		return nil, err
	}

	var sales []*entity.SaleItem

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findBusiness(ctx, repoFactory.NewBusinessRepository(), businessID); err != nil {
			return err
		}

		found, err := repoFactory.NewSaleRepository().FindByBusiness(ctx, businessID)
		if err != nil {
			return errors.Wrap(err, "list sale listings")
		}
		sales = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return listing.Apply(sales, compare, query.Reverse, query.Page, query.PageSize), nil
}

