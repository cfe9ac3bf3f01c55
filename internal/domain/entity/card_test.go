package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"
)

func testCardParams() MarketplaceCardParams {
	return MarketplaceCardParams{
		CreatorID:   uuid.New(),
		Section:     SectionForSale,
		Title:       "1982 Lada Samara",
		Description: "Beige, nice car. Some rust.",
	}
}

func TestNewMarketplaceCard(t *testing.T) {
	t.Parallel()

	card, err := NewMarketplaceCard(testCardParams())
	require.NoError(t, err)
	assert.Equal(t, card.Created.Add(14*24*time.Hour), card.Closes, "closing defaults to two weeks after creation")
}

func TestNewMarketplaceCardValidation(t *testing.T) {
	t.Parallel()

	past := time.Now().Add(-time.Hour)

	mutate := map[string]func(*MarketplaceCardParams){
		"unknown section":       func(p *MarketplaceCardParams) { p.Section = "FREE_STUFF" },
		"empty title":           func(p *MarketplaceCardParams) { p.Title = "" },
		"oversized title":       func(p *MarketplaceCardParams) { p.Title = strings.Repeat("a", 51) },
		"oversized description": func(p *MarketplaceCardParams) { p.Description = strings.Repeat("a", 201) },
		"closes before created": func(p *MarketplaceCardParams) { p.Closes = &past },
	}

	for name, fn := range mutate {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			params := testCardParams()
			fn(&params)
			_, err := NewMarketplaceCard(params)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
		})
	}
}

func TestMarketplaceCardKeywords(t *testing.T) {
	t.Parallel()

	card, err := NewMarketplaceCard(testCardParams())
	require.NoError(t, err)

	vehicle, err := NewKeyword("Vehicle")
	require.NoError(t, err)
	vehicle.ID = uuid.New()

	require.NoError(t, card.AddKeyword(vehicle))
	require.NoError(t, card.AddKeyword(vehicle), "re-attaching the same keyword is a no-op")
	assert.Len(t, card.Keywords, 1)

	err = card.AddKeyword(nil)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestMarketplaceCardExtendDisplayPeriod(t *testing.T) {
	t.Parallel()

	card, err := NewMarketplaceCard(testCardParams())
	require.NoError(t, err)

	before := card.Closes
	card.ExtendDisplayPeriod()
	assert.Equal(t, before.Add(14*24*time.Hour), card.Closes)
}

func TestNewKeyword(t *testing.T) {
	t.Parallel()

	_, err := NewKeyword("Vehicle")
	assert.NoError(t, err)

	for _, bad := range []string{"", "two words", "hyphen-ated", strings.Repeat("a", 26), "число"} {
		_, err := NewKeyword(bad)
		assert.True(t, errors.Is(err, apperrors.ErrValidation), "keyword %q should fail", bad)
	}
}

func TestNewSaleItem(t *testing.T) {
	t.Parallel()

	inv, err := NewInventoryItem(testInventoryParams())
	require.NoError(t, err)
	inv.ID = uuid.New()

	t.Run("closes defaults to the inventory expiry", func(t *testing.T) {
		t.Parallel()

		sale, err := NewSaleItem(SaleItemParams{
			InventoryItem: inv,
			BusinessID:    uuid.New(),
			Quantity:      3,
			Price:         12.0,
		})
		require.NoError(t, err)
		assert.Equal(t, inv.Expires, sale.Closes)
		assert.Equal(t, inv.ID, sale.InventoryItemID)
	})

	t.Run("validation failures", func(t *testing.T) {
		t.Parallel()

		past := time.Now().Add(-time.Hour)

		tests := map[string]SaleItemParams{
			"missing inventory item": {Quantity: 1, Price: 1},
			"zero quantity":          {InventoryItem: inv, Price: 1},
			"negative price":         {InventoryItem: inv, Quantity: 1, Price: -1},
			"oversized more info":    {InventoryItem: inv, Quantity: 1, Price: 1, MoreInfo: strings.Repeat("a", 51)},
			"closing in the past":    {InventoryItem: inv, Quantity: 1, Price: 1, Closes: &past},
		}

		for name, params := range tests {
			_, err := NewSaleItem(params)
			assert.True(t, errors.Is(err, apperrors.ErrValidation), name)
		}
	})
}
