package entity

import (
	"time"

	"github.com/google/uuid"
)

// InventoryItem is a batch of stock of one product. RemainingQuantity
// tracks how much of the batch has not yet been put up for sale.
type InventoryItem struct {
	ID                uuid.UUID
	ProductID         uuid.UUID
	Quantity          int
	RemainingQuantity int
	PricePerItem      *float64 // nullable
	TotalPrice        *float64 // nullable; defaults to price * quantity
	Manufactured      *time.Time
	SellBy            *time.Time
	BestBefore        *time.Time
	Expires           time.Time // mandatory
	Created           time.Time
}

// InventoryItemParams carries the raw fields for adding an inventory item.
type InventoryItemParams struct {
	ProductID    uuid.UUID
	Quantity     int
	PricePerItem *float64
	TotalPrice   *float64
	Manufactured *time.Time
	SellBy       *time.Time
	BestBefore   *time.Time
	Expires      time.Time
}

// NewInventoryItem validates every field. Date walls are evaluated against
// "now" at validation time: manufactured must be at latest yesterday, and
// the sell-by, best-before and expiry dates must be at earliest tomorrow.
func NewInventoryItem(p InventoryItemParams) (*InventoryItem, error) {
	now := time.Now()

	if err := validateInventoryFields(p, now); err != nil {
		return nil, err
	}

	total := p.TotalPrice
	if total == nil && p.PricePerItem != nil {
		computed := *p.PricePerItem * float64(p.Quantity)
		total = &computed
	}

	return &InventoryItem{
		ProductID:         p.ProductID,
		Quantity:          p.Quantity,
		RemainingQuantity: p.Quantity,
		PricePerItem:      p.PricePerItem,
		TotalPrice:        total,
		Manufactured:      p.Manufactured,
		SellBy:            p.SellBy,
		BestBefore:        p.BestBefore,
		Expires:           p.Expires,
		Created:           now,
	}, nil
}

// ApplyUpdate validates replacement values and mutates the item, including
// re-pointing it at a different product. The remaining quantity is clamped
// to the new total quantity.
func (it *InventoryItem) ApplyUpdate(p InventoryItemParams) error {
	if err := validateInventoryFields(p, time.Now()); err != nil {
		return err
	}

	sold := it.Quantity - it.RemainingQuantity
	if p.Quantity < sold {
		return validationError("quantity cannot be reduced below the amount already listed for sale")
	}

	total := p.TotalPrice
	if total == nil && p.PricePerItem != nil {
		computed := *p.PricePerItem * float64(p.Quantity)
		total = &computed
	}

	it.ProductID = p.ProductID
	it.Quantity = p.Quantity
	it.RemainingQuantity = p.Quantity - sold
	it.PricePerItem = p.PricePerItem
	it.TotalPrice = total
	it.Manufactured = p.Manufactured
	it.SellBy = p.SellBy
	it.BestBefore = p.BestBefore
	it.Expires = p.Expires

	return nil
}

// ReserveStock moves quantity from remaining stock into a sale listing.
func (it *InventoryItem) ReserveStock(quantity int) error {
	if quantity <= 0 {
		return validationError("sale quantity must be greater than zero")
	}
	if quantity > it.RemainingQuantity {
		return validationError("sale quantity exceeds remaining inventory stock")
	}
	it.RemainingQuantity -= quantity

	return nil
}

func validateInventoryFields(p InventoryItemParams, now time.Time) error {
	today := dateOf(now)

	if p.Quantity <= 0 {
		return validationError("quantity must be greater than zero")
	}
	if p.PricePerItem != nil && (*p.PricePerItem < 0 || *p.PricePerItem >= maxRetailPrice) {
		return validationError("price per item must be between 0 and 10000")
	}
	if p.TotalPrice != nil && (*p.TotalPrice < 0 || *p.TotalPrice >= maxTotalPrice) {
		return validationError("total price must be between 0 and 1000000")
	}
	if p.Manufactured != nil && !dateOf(*p.Manufactured).Before(today) {
		return validationError("manufactured date must be in the past")
	}
	if p.SellBy != nil && !dateOf(*p.SellBy).After(today) {
		return validationError("sell by date must be in the future")
	}
	if p.BestBefore != nil && !dateOf(*p.BestBefore).After(today) {
		return validationError("best before date must be in the future")
	}
	if p.Expires.IsZero() {
		return validationError("expiry date is required")
	}
	if !dateOf(p.Expires).After(today) {
		return validationError("expiry date must be in the future")
	}

	return nil
}
