package listing

import (
	"cmp"

	"bazaar/internal/domain/entity"
	apperrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"
)

// Sort-key registries, one per entity family. An empty key selects the
// family's default; an unrecognised key is a hard validation error for
// every family.

func unknownSortKey(key string) error {
	return errors.Wrapf(apperrors.ErrValidation, "unrecognised sort key %q", key)
}

// ProductComparator resolves a catalogue sort key. Default: productCode.
func ProductComparator(key string) (Comparator[*entity.Product], error) {
	switch key {
	case "", "productCode":
		return func(a, b *entity.Product) int { return compareFold(a.Code, b.Code) }, nil
	case "name":
		return func(a, b *entity.Product) int { return compareFold(a.Name, b.Name) }, nil
	case "description":
		return func(a, b *entity.Product) int { return compareFold(a.Description, b.Description) }, nil
	case "manufacturer":
		return func(a, b *entity.Product) int { return compareFold(a.Manufacturer, b.Manufacturer) }, nil
	case "recommendedRetailPrice":
		return func(a, b *entity.Product) int {
			return compareNullableFloat(a.RecommendedRetailPrice, b.RecommendedRetailPrice)
		}, nil
	case "created":
		return func(a, b *entity.Product) int { return a.Created.Compare(b.Created) }, nil
	default:
		return nil, unknownSortKey(key)
	}
}

// InventoryComparator resolves an inventory sort key. Default: expires.
func InventoryComparator(key string) (Comparator[*entity.InventoryItem], error) {
	switch key {
	case "", "expires":
		return func(a, b *entity.InventoryItem) int { return a.Expires.Compare(b.Expires) }, nil
	case "quantity":
		return func(a, b *entity.InventoryItem) int { return cmp.Compare(a.Quantity, b.Quantity) }, nil
	case "remainingQuantity":
		return func(a, b *entity.InventoryItem) int {
			return cmp.Compare(a.RemainingQuantity, b.RemainingQuantity)
		}, nil
	case "pricePerItem":
		return func(a, b *entity.InventoryItem) int {
			return compareNullableFloat(a.PricePerItem, b.PricePerItem)
		}, nil
	case "totalPrice":
		return func(a, b *entity.InventoryItem) int {
			return compareNullableFloat(a.TotalPrice, b.TotalPrice)
		}, nil
	case "manufactured":
		return func(a, b *entity.InventoryItem) int {
			return compareNullableTime(a.Manufactured, b.Manufactured)
		}, nil
	case "sellBy":
		return func(a, b *entity.InventoryItem) int { return compareNullableTime(a.SellBy, b.SellBy) }, nil
	case "bestBefore":
		return func(a, b *entity.InventoryItem) int {
			return compareNullableTime(a.BestBefore, b.BestBefore)
		}, nil
	case "created":
		return func(a, b *entity.InventoryItem) int { return a.Created.Compare(b.Created) }, nil
	default:
		return nil, unknownSortKey(key)
	}
}

// SaleComparator resolves a sale-listing sort key. Default: closes.
func SaleComparator(key string) (Comparator[*entity.SaleItem], error) {
	switch key {
	case "", "closes":
		return func(a, b *entity.SaleItem) int { return a.Closes.Compare(b.Closes) }, nil
	case "quantity":
		return func(a, b *entity.SaleItem) int { return cmp.Compare(a.Quantity, b.Quantity) }, nil
	case "price":
		return func(a, b *entity.SaleItem) int { return cmp.Compare(a.Price, b.Price) }, nil
	case "created":
		return func(a, b *entity.SaleItem) int { return a.Created.Compare(b.Created) }, nil
	default:
		return nil, unknownSortKey(key)
	}
}

// CardComparator resolves a marketplace-card sort key. Default: created.
func CardComparator(key string) (Comparator[*entity.MarketplaceCard], error) {
	switch key {
	case "", "created":
		return func(a, b *entity.MarketplaceCard) int { return a.Created.Compare(b.Created) }, nil
	case "title":
		return func(a, b *entity.MarketplaceCard) int { return compareFold(a.Title, b.Title) }, nil
	case "closes":
		return func(a, b *entity.MarketplaceCard) int { return a.Closes.Compare(b.Closes) }, nil
	default:
		return nil, unknownSortKey(key)
	}
}
