package impl

import (
	"context"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSaleService_CreateListing_ReservesStock(t *testing.T) {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	saleRepo := mockRepo.NewMockSaleRepository(t)
	service := NewSaleService(passthrough(&mockRepo.StubFactory{
		Businesses: businessRepo, Products: productRepo, Inventory: inventoryRepo, Sales: saleRepo,
	}), testLogger())

	ctx := context.Background()
	owner := testUser(t, entity.RoleUser)
	business := testBusiness(t, owner.ID)
	product := testProduct(t, business.ID)
	item := testInventoryItem(t, product.ID)

	businessRepo.On("FindByID", ctx, business.ID).Return(business, nil)
	inventoryRepo.On("FindByID", ctx, item.ID).Return(item, nil)
	productRepo.On("FindByID", ctx, product.ID).Return(product, nil)
	inventoryRepo.On("Update", ctx, mock.MatchedBy(func(it *entity.InventoryItem) bool {
		return it.RemainingQuantity == 6
	})).Return(nil)
	saleRepo.On("Create", ctx, mock.AnythingOfType("*entity.SaleItem")).Return(nil)

	sale, err := service.CreateListing(ctx, viewerFor(owner), business.ID, usecase.SaleItemInput{
		InventoryItemID: item.ID,
		Quantity:        4,
		Price:           17.99,
	})

	require.NoError(t, err)
	assert.Equal(t, 4, sale.Quantity)
	assert.Equal(t, business.ID, sale.BusinessID)
	// Closing date defaults to the batch expiry.
	assert.Equal(t, item.Expires, sale.Closes)
}

func TestSaleService_CreateListing_OverRemainingStock(t *testing.T) {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	inventoryRepo := mockRepo.NewMockInventoryRepository(t)
	service := NewSaleService(passthrough(&mockRepo.StubFactory{
		Businesses: businessRepo, Products: productRepo, Inventory: inventoryRepo,
	}), testLogger())

	ctx := context.Background()
	owner := testUser(t, entity.RoleUser)
	business := testBusiness(t, owner.ID)
	product := testProduct(t, business.ID)
	item := testInventoryItem(t, product.ID)

	businessRepo.On("FindByID", ctx, business.ID).Return(business, nil)
	inventoryRepo.On("FindByID", ctx, item.ID).Return(item, nil)
	productRepo.On("FindByID", ctx, product.ID).Return(product, nil)

	_, err := service.CreateListing(ctx, viewerFor(owner), business.ID, usecase.SaleItemInput{
		InventoryItemID: item.ID,
		Quantity:        item.Quantity + 1,
		Price:           17.99,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrValidation))
}

func TestSaleService_GetListings_DefaultSortByCloses(t *testing.T) {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	saleRepo := mockRepo.NewMockSaleRepository(t)
	service := NewSaleService(passthrough(&mockRepo.StubFactory{
		Businesses: businessRepo, Sales: saleRepo,
	}), testLogger())

	ctx := context.Background()
	business := testBusiness(t, uuid.New())
	item := testInventoryItem(t, uuid.New())

	soon, err := entity.NewSaleItem(entity.SaleItemParams{
		InventoryItem: item, BusinessID: business.ID, Quantity: 1, Price: 1,
		Closes: timePtr(item.Expires.AddDate(0, 0, -7)),
	})
	require.NoError(t, err)
	late, err := entity.NewSaleItem(entity.SaleItemParams{
		InventoryItem: item, BusinessID: business.ID, Quantity: 1, Price: 1,
	})
	require.NoError(t, err)

	businessRepo.On("FindByID", ctx, business.ID).Return(business, nil)
	saleRepo.On("FindByBusiness", ctx, business.ID).Return([]*entity.SaleItem{late, soon}, nil)

	sales, err := service.GetListings(ctx, business.ID, usecase.ListQuery{})

	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, soon.Closes, sales[0].Closes)
}
