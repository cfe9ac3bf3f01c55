package entity

import (
	"time"

	"github.com/google/uuid"
)

// SaleItem is a listing offering part of an inventory batch for sale.
// Creating one reserves stock on the inventory item; that reservation is
// performed by the service inside the same transaction.
type SaleItem struct {
	ID              uuid.UUID
	InventoryItemID uuid.UUID
	BusinessID      uuid.UUID
	Quantity        int
	Price           float64
	MoreInfo        string // optional
	Closes          time.Time
	Created         time.Time
}

// SaleItemParams carries the raw fields for creating a sale listing.
type SaleItemParams struct {
	InventoryItem *InventoryItem
	BusinessID    uuid.UUID
	Quantity      int
	Price         float64
	MoreInfo      string
	Closes        *time.Time // nil defaults to the inventory item's expiry
}

// NewSaleItem validates the listing fields. Stock availability is checked
// separately via InventoryItem.ReserveStock.
func NewSaleItem(p SaleItemParams) (*SaleItem, error) {
	now := time.Now()

	if p.InventoryItem == nil {
		return nil, validationError("sale item must reference an inventory item")
	}
	if p.Quantity <= 0 {
		return nil, validationError("sale quantity must be greater than zero")
	}
	if p.Price < 0 {
		return nil, validationError("sale price must not be negative")
	}
	if len(p.MoreInfo) > maxMoreInfoLength {
		return nil, validationError("more info must be at most 50 characters")
	}

	closes := p.InventoryItem.Expires
	if p.Closes != nil {
		closes = *p.Closes
	}
	if closes.Before(now) {
		return nil, validationError("closing date must not be in the past")
	}

	return &SaleItem{
		InventoryItemID: p.InventoryItem.ID,
		BusinessID:      p.BusinessID,
		Quantity:        p.Quantity,
		Price:           p.Price,
		MoreInfo:        p.MoreInfo,
		Closes:          closes,
		Created:         now,
	}, nil
}
