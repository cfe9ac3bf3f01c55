package model

import (
	"time"

	"github.com/google/uuid"
)

// SaleItemModel mirrors the 'sale_items' table. BusinessID is carried on
// the row so a business's listings page needs no join.
type SaleItemModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	InventoryItemID uuid.UUID `gorm:"type:uuid;not null;index"`
	BusinessID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity        int       `gorm:"not null"`
	Price           float64   `gorm:"type:decimal(10,2);not null"`
	MoreInfo        string    `gorm:"type:varchar(50)"`
	Closes          time.Time `gorm:"not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (SaleItemModel) TableName() string {
	return "sale_items"
}
