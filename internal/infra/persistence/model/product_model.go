package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. The code is unique per
// catalogue, not globally.
type ProductModel struct {
	ID                     uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	BusinessID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_products_business_code"`
	Code                   string    `gorm:"type:varchar(15);not null;uniqueIndex:idx_products_business_code"`
	Name                   string    `gorm:"type:varchar(100);not null"`
	Description            string    `gorm:"type:varchar(200)"`
	Manufacturer           string    `gorm:"type:varchar(100)"`
	RecommendedRetailPrice *float64  `gorm:"type:decimal(10,2)"`
	CountryOfSale          string    `gorm:"type:varchar(100);not null"`
	CreatedAt              time.Time
	UpdatedAt              time.Time

	Images []*ProductImageModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductImageModel mirrors the 'product_images' table. The image bytes
// live in blob storage under Filename; only the keys are stored here.
type ProductImageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Filename  string    `gorm:"type:varchar(255);not null"`
	IsPrimary bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductImageModel) TableName() string {
	return "product_images"
}
