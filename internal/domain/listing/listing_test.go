package listing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bazaar/internal/domain/entity"
	apperrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"
)

func floatPtr(v float64) *float64 { return &v }

func productWithCode(code string, rrp *float64) *entity.Product {
	return &entity.Product{
		ID:                     uuid.New(),
		Code:                   code,
		Name:                   "product " + code,
		RecommendedRetailPrice: rrp,
		Created:                time.Now(),
	}
}

func TestApplyPagination(t *testing.T) {
	t.Parallel()

	items := []int{0, 1, 2, 3, 4, 5, 6}
	byValue := func(a, b int) int { return a - b }

	tests := []struct {
		name     string
		page     int
		pageSize int
		expected []int
	}{
		{name: "second page of two", page: 2, pageSize: 2, expected: []int{2, 3}},
		{name: "last full page", page: 3, pageSize: 2, expected: []int{4, 5}},
		{name: "partial window past the end", page: 4, pageSize: 2, expected: []int{}},
		{name: "far past the end", page: 9, pageSize: 2, expected: []int{}},
		{name: "first page clamps to available items", page: 1, pageSize: 20, expected: []int{0, 1, 2, 3, 4, 5, 6}},
		{name: "zero page falls back to first", page: 0, pageSize: 3, expected: []int{0, 1, 2}},
		{name: "negative page falls back to first", page: -2, pageSize: 3, expected: []int{0, 1, 2}},
		{name: "zero page size falls back to default", page: 1, pageSize: 0, expected: []int{0, 1, 2, 3, 4, 5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Apply(items, byValue, false, tt.page, tt.pageSize)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	items := []int{3, 1, 2}
	Apply(items, func(a, b int) int { return a - b }, false, 1, 10)
	assert.Equal(t, []int{3, 1, 2}, items)
}

func TestApplySortIsIdempotent(t *testing.T) {
	t.Parallel()

	items := []int{5, 3, 9, 1, 3, 7}
	byValue := func(a, b int) int { return a - b }

	once := Apply(items, byValue, false, 1, 100)
	twice := Apply(once, byValue, false, 1, 100)
	assert.Equal(t, once, twice)
}

func TestApplyDoubleReverseRoundTrip(t *testing.T) {
	t.Parallel()

	products := []*entity.Product{
		productWithCode("BBB", floatPtr(5)),
		productWithCode("AAA", nil),
		productWithCode("CCC", floatPtr(2)),
		productWithCode("DDD", nil),
	}
	compare, err := ProductComparator("recommendedRetailPrice")
	require.NoError(t, err)

	ascending := Apply(products, compare, false, 1, 100)
	descending := Apply(products, compare, true, 1, 100)

	// Null prices sort strictly last ascending and strictly first when
	// reversed, so reversing twice recovers the ascending order.
	require.Len(t, ascending, 4)
	assert.Equal(t, "CCC", ascending[0].Code)
	assert.Equal(t, "BBB", ascending[1].Code)
	assert.Nil(t, ascending[2].RecommendedRetailPrice)
	assert.Nil(t, ascending[3].RecommendedRetailPrice)

	assert.Nil(t, descending[0].RecommendedRetailPrice)
	assert.Nil(t, descending[1].RecommendedRetailPrice)
	assert.Equal(t, "BBB", descending[2].Code)
	assert.Equal(t, "CCC", descending[3].Code)

	reversedTwice := Apply(descending, compare, true, 1, 100)
	assert.Equal(t, ascending, reversedTwice)
}

func TestApplyStableSortKeepsTies(t *testing.T) {
	t.Parallel()

	type row struct {
		key   int
		label string
	}
	items := []row{{1, "a"}, {0, "b"}, {1, "c"}, {0, "d"}, {1, "e"}}

	got := Apply(items, func(a, b row) int { return a.key - b.key }, false, 1, 100)
	assert.Equal(t, []row{{0, "b"}, {0, "d"}, {1, "a"}, {1, "c"}, {1, "e"}}, got)
}

func TestProductComparatorCaseInsensitive(t *testing.T) {
	t.Parallel()

	compare, err := ProductComparator("name")
	require.NoError(t, err)

	a := &entity.Product{Name: "apple"}
	b := &entity.Product{Name: "Banana"}
	assert.Negative(t, compare(a, b))
	assert.Positive(t, compare(b, a))
}

func TestComparatorDefaults(t *testing.T) {
	t.Parallel()

	productCompare, err := ProductComparator("")
	require.NoError(t, err)
	assert.Negative(t, productCompare(&entity.Product{Code: "AAA"}, &entity.Product{Code: "BBB"}))

	early := time.Now()
	late := early.Add(time.Hour)

	inventoryCompare, err := InventoryComparator("")
	require.NoError(t, err)
	assert.Negative(t, inventoryCompare(
		&entity.InventoryItem{Expires: early},
		&entity.InventoryItem{Expires: late},
	))

	saleCompare, err := SaleComparator("")
	require.NoError(t, err)
	assert.Negative(t, saleCompare(
		&entity.SaleItem{Closes: early},
		&entity.SaleItem{Closes: late},
	))

	cardCompare, err := CardComparator("")
	require.NoError(t, err)
	assert.Negative(t, cardCompare(
		&entity.MarketplaceCard{Created: early},
		&entity.MarketplaceCard{Created: late},
	))
}

func TestComparatorUnknownKey(t *testing.T) {
	t.Parallel()

	_, err := ProductComparator("favouriteColour")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = InventoryComparator("nope")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = SaleComparator("nope")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = CardComparator("nope")
	assert.True(t, errors.Is(err, apperrors.ErrValidation))
}

func TestNullableTimeOrdering(t *testing.T) {
	t.Parallel()

	compare, err := InventoryComparator("sellBy")
	require.NoError(t, err)

	now := time.Now()
	withDate := &entity.InventoryItem{SellBy: &now}
	withoutDate := &entity.InventoryItem{}

	assert.Negative(t, compare(withDate, withoutDate))
	assert.Positive(t, compare(withoutDate, withDate))
	assert.Zero(t, compare(withoutDate, withoutDate))
}
