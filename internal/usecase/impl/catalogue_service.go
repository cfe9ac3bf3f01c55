package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/listing"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// catalogueService implements the CatalogueUsecase interface.
type catalogueService struct {
	txManager   repository.TransactionManager
	fileStorage service.FileStorage
	logger      *slog.Logger
}

// NewCatalogueService is the constructor for catalogueService.
func NewCatalogueService(
	txManager repository.TransactionManager,
	fileStorage service.FileStorage,
	logger *slog.Logger,
) usecase.CatalogueUsecase {
	return &catalogueService{
		txManager:   txManager,
		fileStorage: fileStorage,
		logger:      logger,
	}
}

func (srv *catalogueService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// businessForActor loads a business and checks the viewer may act as it.
func businessForActor(ctx context.Context, repoFactory repository.RepositoryFactory, viewer policy.Viewer, businessID uuid.UUID) (*entity.Business, error) {
	business, err := findBusiness(ctx, repoFactory.NewBusinessRepository(), businessID)
	if err != nil {
		return nil, err
	}
	if !policy.CanActAsBusiness(viewer, business) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "viewer cannot act as this business")
	}

	return business, nil
}

// findBusinessProduct loads a product and checks it belongs to the business.
func findBusinessProduct(ctx context.Context, repo repository.ProductRepository, businessID, productID uuid.UUID) (*entity.Product, error) {
	product, err := repo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "find product")
	}
	if product.BusinessID != businessID {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "product does not belong to this catalogue")
	}

	return product, nil
}

// imageBlobKey is the storage key for a product image's bytes.
func imageBlobKey(productID, imageID uuid.UUID) string {
	return fmt.Sprintf("products/%s/%s", productID, imageID)
}

// AddProduct creates a product in the business's catalogue.
func (srv *catalogueService) AddProduct(ctx context.Context, viewer policy.Viewer, businessID uuid.UUID, input usecase.ProductInput) (*entity.Product, error) {
	srv.log(ctx).Debug("Adding product", slog.Any("business_id", businessID), slog.String("code", input.Code))

	var product *entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		business, err := businessForActor(ctx, repoFactory, viewer, businessID)
		if err != nil {
			return err
		}

		product, err = entity.NewProduct(entity.ProductParams{
			Business:               business,
			Code:                   input.Code,
			Name:                   input.Name,
			Description:            input.Description,
			Manufacturer:           input.Manufacturer,
			RecommendedRetailPrice: input.RecommendedRetailPrice,
		})
		if err != nil {
			return err
		}

		if err := repoFactory.NewProductRepository().Create(ctx, product); err != nil {
			if errors.Is(err, repository.ErrProductCodeTaken) {
				return errors.Wrap(domainerrors.ErrProductCodeInUse, "product code already used in this catalogue")
			}

			return errors.Wrap(err, "create product")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// GetCatalogue retrieves the business's products, sorted and paginated.
func (srv *catalogueService) GetCatalogue(ctx context.Context, viewer policy.Viewer, businessID uuid.UUID, query usecase.ListQuery) ([]*entity.Product, error) {
	compare, err := listing.ProductComparator(query.SortKey)
	if err != nil {
		return nil, err
	}

	var products []*entity.Product

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := businessForActor(ctx, repoFactory, viewer, businessID); err != nil {
			return err
		}

		found, err := repoFactory.NewProductRepository().FindByBusiness(ctx, businessID)
		if err != nil {
			return errors.Wrap(err, "list catalogue")
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return listing.Apply(products, compare, query.Reverse, query.Page, query.PageSize), nil
}

// ModifyProduct replaces a product's fields.
func (srv *catalogueService) ModifyProduct(ctx context.Context, viewer policy.Viewer, businessID, productID uuid.UUID, input usecase.ProductInput) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := businessForActor(ctx, repoFactory, viewer, businessID); err != nil {
			return err
		}

		productRepo := repoFactory.NewProductRepository()

		product, err := findBusinessProduct(ctx, productRepo, businessID, productID)
		if err != nil {
			return err
		}

		if err := product.ApplyUpdate(entity.ProductUpdate{
			Code:                   input.Code,
			Name:                   input.Name,
			Description:            input.Description,
			Manufacturer:           input.Manufacturer,
			RecommendedRetailPrice: input.RecommendedRetailPrice,
		}); err != nil {
			return err
		}

		if err := productRepo.Update(ctx, product); err != nil {
			if errors.Is(err, repository.ErrProductCodeTaken) {
				return errors.Wrap(domainerrors.ErrProductCodeInUse, "product code already used in this catalogue")
			}

			return errors.Wrap(err, "update product")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Product modified", slog.Any("product_id", productID))

	return nil
}

// AddProductImage stores the uploaded bytes and records the image against
// the product. The product's first image becomes its primary one.
func (srv *catalogueService) AddProductImage(ctx context.Context, viewer policy.Viewer, businessID, productID uuid.UUID, upload usecase.ImageUpload) (*entity.ProductImage, error) {
	if len(upload.Data) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidation, "image upload is empty")
	}

	image := &entity.ProductImage{
		ID:        uuid.New(),
		ProductID: productID,
		Filename:  upload.Filename,
		Created:   time.Now(),
	}

	key := imageBlobKey(productID, image.ID)
	if err := srv.fileStorage.Store(ctx, key, upload.Data, upload.ContentType); err != nil {
		return nil, errors.Wrap(err, "store image bytes")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := businessForActor(ctx, repoFactory, viewer, businessID); err != nil {
			return err
		}

		productRepo := repoFactory.NewProductRepository()

		product, err := findBusinessProduct(ctx, productRepo, businessID, productID)
		if err != nil {
			return err
		}
		image.IsPrimary = len(product.Images) == 0

		if err := productRepo.AddImage(ctx, image); err != nil {
			return errors.Wrap(err, "record product image")
		}

		return nil
	})
	if err != nil {
		// The record never made it in; drop the orphaned bytes.
		if cleanupErr := srv.fileStorage.Delete(ctx, key); cleanupErr != nil {
			srv.log(ctx).Warn("Failed to clean up orphaned image bytes",
				slog.String("key", key), slog.Any("error", cleanupErr))
		}

		return nil, err
	}

	srv.log(ctx).Info("Product image added", slog.Any("product_id", productID), slog.Any("image_id", image.ID))

	return image, nil
}

// LoadProductImage reads a stored image's record and bytes.
func (srv *catalogueService) LoadProductImage(ctx context.Context, viewer policy.Viewer, businessID, productID, imageID uuid.UUID) (*entity.ProductImage, []byte, error) {
	var image *entity.ProductImage

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := businessForActor(ctx, repoFactory, viewer, businessID); err != nil {
			return err
		}

		product, err := findBusinessProduct(ctx, repoFactory.NewProductRepository(), businessID, productID)
		if err != nil {
			return err
		}

		for _, img := range product.Images {
			if img.ID == imageID {
				image = img

				return nil
			}
		}

		return errors.Wrap(domainerrors.ErrNotFound, "product image not found")
	})
	if err != nil {
		return nil, nil, err
	}

	data, err := srv.fileStorage.Load(ctx, imageBlobKey(productID, imageID))
	if err != nil {
		return nil, nil, errors.Wrap(err, "load image bytes")
	}

	return image, data, nil
}

// SetPrimaryImage marks an image as the product's primary one.
func (srv *catalogueService) SetPrimaryImage(ctx context.Context, viewer policy.Viewer, businessID, productID, imageID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := businessForActor(ctx, repoFactory, viewer, businessID); err != nil {
			return err
		}

		productRepo := repoFactory.NewProductRepository()

		product, err := findBusinessProduct(ctx, productRepo, businessID, productID)
		if err != nil {
			return err
		}
		if err := product.SetPrimaryImage(imageID); err != nil {
			return err
		}

		if err := productRepo.UpdateImages(ctx, productID, product.Images); err != nil {
			return errors.Wrap(err, "update product images")
		}

		return nil
	})
}

// DeleteProductImage removes an image record and its stored bytes.
func (srv *catalogueService) DeleteProductImage(ctx context.Context, viewer policy.Viewer, businessID, productID, imageID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := businessForActor(ctx, repoFactory, viewer, businessID); err != nil {
			return err
		}

		productRepo := repoFactory.NewProductRepository()

		product, err := findBusinessProduct(ctx, productRepo, businessID, productID)
		if err != nil {
			return err
		}
		if _, err := product.RemoveImage(imageID); err != nil {
			return err
		}

		if err := productRepo.DeleteImage(ctx, imageID); err != nil {
			if errors.Is(err, repository.ErrImageNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "product image not found")
			}

			return errors.Wrap(err, "delete product image")
		}
		// Persist the primary-flag promotion, if any.
		if err := productRepo.UpdateImages(ctx, productID, product.Images); err != nil {
			return errors.Wrap(err, "update product images")
		}

		return nil
	})
	if err != nil {
		return err
	}

	key := imageBlobKey(productID, imageID)
	if err := srv.fileStorage.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete image bytes",
			slog.String("key", key), slog.Any("error", err))
	}

	return nil
}
