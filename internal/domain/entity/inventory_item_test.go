package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"
)

func timePtr(t time.Time) *time.Time { return &t }

func testInventoryParams() InventoryItemParams {
	price := 2.5

	return InventoryItemParams{
		ProductID:    uuid.New(),
		Quantity:     10,
		PricePerItem: &price,
		Expires:      time.Now().AddDate(0, 1, 0),
	}
}

func TestNewInventoryItem(t *testing.T) {
	t.Parallel()

	item, err := NewInventoryItem(testInventoryParams())
	require.NoError(t, err)
	assert.Equal(t, 10, item.RemainingQuantity)
	require.NotNil(t, item.TotalPrice)
	assert.InDelta(t, 25.0, *item.TotalPrice, 0.0001, "total defaults to price times quantity")
}

func TestNewInventoryItemDateWalls(t *testing.T) {
	t.Parallel()

	now := time.Now()
	today := now
	tomorrow := now.AddDate(0, 0, 1)
	yesterday := now.AddDate(0, 0, -1)

	tests := []struct {
		name   string
		mutate func(*InventoryItemParams)
		valid  bool
	}{
		{name: "sell by today fails", mutate: func(p *InventoryItemParams) { p.SellBy = timePtr(today) }},
		{name: "sell by tomorrow succeeds", mutate: func(p *InventoryItemParams) { p.SellBy = timePtr(tomorrow) }, valid: true},
		{name: "best before today fails", mutate: func(p *InventoryItemParams) { p.BestBefore = timePtr(today) }},
		{name: "manufactured today fails", mutate: func(p *InventoryItemParams) { p.Manufactured = timePtr(today) }},
		{name: "manufactured yesterday succeeds", mutate: func(p *InventoryItemParams) { p.Manufactured = timePtr(yesterday) }, valid: true},
		{name: "expires today fails", mutate: func(p *InventoryItemParams) { p.Expires = today }},
		{name: "missing expiry fails", mutate: func(p *InventoryItemParams) { p.Expires = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := testInventoryParams()
			tt.mutate(&params)

			_, err := NewInventoryItem(params)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
			}
		})
	}
}

func TestNewInventoryItemQuantityAndPrices(t *testing.T) {
	t.Parallel()

	negative := -0.5
	overRetail := 10000.0
	overTotal := 1000000.0

	mutate := map[string]func(*InventoryItemParams){
		"zero quantity":        func(p *InventoryItemParams) { p.Quantity = 0 },
		"negative quantity":    func(p *InventoryItemParams) { p.Quantity = -4 },
		"negative price":       func(p *InventoryItemParams) { p.PricePerItem = &negative },
		"price at the wall":    func(p *InventoryItemParams) { p.PricePerItem = &overRetail },
		"total over the wall":  func(p *InventoryItemParams) { p.TotalPrice = &overTotal },
		"negative total price": func(p *InventoryItemParams) { p.TotalPrice = &negative },
	}

	for name, fn := range mutate {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			params := testInventoryParams()
			fn(&params)
			_, err := NewInventoryItem(params)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
		})
	}
}

func TestInventoryItemReserveStock(t *testing.T) {
	t.Parallel()

	item, err := NewInventoryItem(testInventoryParams())
	require.NoError(t, err)

	require.NoError(t, item.ReserveStock(4))
	assert.Equal(t, 6, item.RemainingQuantity)

	err = item.ReserveStock(7)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
	assert.Equal(t, 6, item.RemainingQuantity)

	err = item.ReserveStock(0)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestInventoryItemApplyUpdateRepointsProduct(t *testing.T) {
	t.Parallel()

	item, err := NewInventoryItem(testInventoryParams())
	require.NoError(t, err)

	update := testInventoryParams()
	require.NoError(t, item.ApplyUpdate(update))
	assert.Equal(t, update.ProductID, item.ProductID, "item follows the product id supplied in the update")
}

func TestInventoryItemApplyUpdateKeepsSoldStock(t *testing.T) {
	t.Parallel()

	item, err := NewInventoryItem(testInventoryParams())
	require.NoError(t, err)
	require.NoError(t, item.ReserveStock(6))

	update := testInventoryParams()
	update.Quantity = 8
	require.NoError(t, item.ApplyUpdate(update))
	assert.Equal(t, 8, item.Quantity)
	assert.Equal(t, 2, item.RemainingQuantity)

	update.Quantity = 5
	err = item.ApplyUpdate(update)
	assert.True(t, errors.Is(err, apperrors.ErrValidation), "cannot shrink below already-listed stock")
}
