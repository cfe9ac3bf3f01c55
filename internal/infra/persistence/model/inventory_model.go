package model

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItemModel mirrors the 'inventory_items' table.
type InventoryItemModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ProductID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity          int       `gorm:"not null"`
	RemainingQuantity int       `gorm:"not null"`
	PricePerItem      *float64  `gorm:"type:decimal(10,2)"`
	TotalPrice        *float64  `gorm:"type:decimal(12,2)"`
	Manufactured      *time.Time
	SellBy            *time.Time
	BestBefore        *time.Time
	Expires           time.Time `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (InventoryItemModel) TableName() string {
	return "inventory_items"
}
