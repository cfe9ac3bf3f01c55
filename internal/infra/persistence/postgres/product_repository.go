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

// productRepository implements the domain's ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func preloadImages(db *gorm.DB) *gorm.DB {
	return db.Order("product_images.created_at ASC")
}

// FindByID retrieves a product with its images.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Images", preloadImages).
		First(&productM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// FindByBusiness retrieves a business's full catalogue.
func (repo *productRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Product, error) {
	var models []*model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Images", preloadImages).
		Where("business_id = ?", businessID).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by business")
	}

	products := make([]*entity.Product, 0, len(models))
	for _, m := range models {
		products = append(products, toProductDomain(m))
	}

	return products, nil
}

// Create persists a new product. The per-catalogue code uniqueness is
// enforced by a composite unique index.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrProductCodeTaken
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBusinessNotFound
		}

		return errors.Wrap(err, "failed to create product")
	}

	product.ID = productM.ID

	return nil
}

// Update modifies a product's scalar columns.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"code":                     product.Code,
			"name":                     product.Name,
			"description":              product.Description,
			"manufacturer":             product.Manufacturer,
			"recommended_retail_price": product.RecommendedRetailPrice,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrProductCodeTaken
		}

		return errors.Wrap(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// AddImage persists a new image record.
func (repo *productRepository) AddImage(ctx context.Context, image *entity.ProductImage) error {
	imageM := fromProductImageDomain(image)

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to create product image")
	}

	image.ID = imageM.ID

	return nil
}

// UpdateImages persists the primary flags of a product's image records.
func (repo *productRepository) UpdateImages(ctx context.Context, productID uuid.UUID, images []*entity.ProductImage) error {
	for _, image := range images {
		err := repo.db.WithContext(ctx).
			Model(&model.ProductImageModel{}).
			Where("id = ? AND product_id = ?", image.ID, productID).
			Update("is_primary", image.IsPrimary).Error
		if err != nil {
			return errors.Wrap(err, "failed to update product image")
		}
	}

	return nil
}

// DeleteImage removes an image record.
func (repo *productRepository) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.ProductImageModel{}, "id = ?", imageID)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product image")
	}
	if result.RowsAffected == 0 {
		return repository.ErrImageNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := make([]*entity.ProductImage, 0, len(data.Images))
	for _, img := range data.Images {
		images = append(images, &entity.ProductImage{
			ID:        img.ID,
			ProductID: img.ProductID,
			Filename:  img.Filename,
			IsPrimary: img.IsPrimary,
			Created:   img.CreatedAt,
		})
	}

	return &entity.Product{
		ID:                     data.ID,
		BusinessID:             data.BusinessID,
		Code:                   data.Code,
		Name:                   data.Name,
		Description:            data.Description,
		Manufacturer:           data.Manufacturer,
		RecommendedRetailPrice: data.RecommendedRetailPrice,
		CountryOfSale:          data.CountryOfSale,
		Images:                 images,
		Created:                data.CreatedAt,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:                     data.ID,
		BusinessID:             data.BusinessID,
		Code:                   data.Code,
		Name:                   data.Name,
		Description:            data.Description,
		Manufacturer:           data.Manufacturer,
		RecommendedRetailPrice: data.RecommendedRetailPrice,
		CountryOfSale:          data.CountryOfSale,
		CreatedAt:              data.Created,
	}
}

func fromProductImageDomain(data *entity.ProductImage) *model.ProductImageModel {
	if data == nil {
		return nil
	}

	return &model.ProductImageModel{
		ID:        data.ID,
		ProductID: data.ProductID,
		Filename:  data.Filename,
		IsPrimary: data.IsPrimary,
		CreatedAt: data.Created,
	}
}
