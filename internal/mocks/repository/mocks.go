// Package repository provides hand-written testify mocks for the domain
// repository contracts, used by the service tests.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// testingT is the subset of *testing.T the constructors need.
type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func register(t testingT, m *mock.Mock) {
	t.Cleanup(func() { m.AssertExpectations(t) })
}

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

func NewMockTransactionManager(t testingT) *MockTransactionManager {
	m := &MockTransactionManager{}
	register(t, &m.Mock)

	return m
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// PassthroughTxManager runs every Execute callback directly against a
// fixed factory, committing nothing. It keeps service tests focused on
// the business rules instead of transaction plumbing.
type PassthroughTxManager struct {
	Factory repository.RepositoryFactory
}

func (m *PassthroughTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}

// StubFactory hands out fixed repository mocks.
type StubFactory struct {
	Users      repository.UserRepository
	Businesses repository.BusinessRepository
	Products   repository.ProductRepository
	Inventory  repository.InventoryRepository
	Sales      repository.SaleRepository
	Cards      repository.CardRepository
	Keywords   repository.KeywordRepository
}

func (f *StubFactory) NewUserRepository() repository.UserRepository           { return f.Users }
func (f *StubFactory) NewBusinessRepository() repository.BusinessRepository   { return f.Businesses }
func (f *StubFactory) NewProductRepository() repository.ProductRepository     { return f.Products }
func (f *StubFactory) NewInventoryRepository() repository.InventoryRepository { return f.Inventory }
func (f *StubFactory) NewSaleRepository() repository.SaleRepository           { return f.Sales }
func (f *StubFactory) NewCardRepository() repository.CardRepository           { return f.Cards }
func (f *StubFactory) NewKeywordRepository() repository.KeywordRepository     { return f.Keywords }

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func NewMockUserRepository(t testingT) *MockUserRepository {
	m := &MockUserRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Search(ctx context.Context, query string) ([]*entity.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockBusinessRepository mocks repository.BusinessRepository.
type MockBusinessRepository struct {
	mock.Mock
}

func NewMockBusinessRepository(t testingT) *MockBusinessRepository {
	m := &MockBusinessRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockBusinessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Business), args.Error(1)
}

func (m *MockBusinessRepository) FindByPrimaryOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Business), args.Error(1)
}

func (m *MockBusinessRepository) Create(ctx context.Context, business *entity.Business) error {
	return m.Called(ctx, business).Error(0)
}

func (m *MockBusinessRepository) Update(ctx context.Context, business *entity.Business) error {
	return m.Called(ctx, business).Error(0)
}

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func NewMockProductRepository(t testingT) *MockProductRepository {
	m := &MockProductRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *MockProductRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Product, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) AddImage(ctx context.Context, image *entity.ProductImage) error {
	return m.Called(ctx, image).Error(0)
}

func (m *MockProductRepository) UpdateImages(ctx context.Context, productID uuid.UUID, images []*entity.ProductImage) error {
	return m.Called(ctx, productID, images).Error(0)
}

func (m *MockProductRepository) DeleteImage(ctx context.Context, imageID uuid.UUID) error {
	return m.Called(ctx, imageID).Error(0)
}

// MockInventoryRepository mocks repository.InventoryRepository.
type MockInventoryRepository struct {
	mock.Mock
}

func NewMockInventoryRepository(t testingT) *MockInventoryRepository {
	m := &MockInventoryRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockInventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.InventoryItem, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.InventoryItem), args.Error(1)
}

func (m *MockInventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockInventoryRepository) Update(ctx context.Context, item *entity.InventoryItem) error {
	return m.Called(ctx, item).Error(0)
}

// MockSaleRepository mocks repository.SaleRepository.
type MockSaleRepository struct {
	mock.Mock
}

func NewMockSaleRepository(t testingT) *MockSaleRepository {
	m := &MockSaleRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SaleItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.SaleItem), args.Error(1)
}

func (m *MockSaleRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.SaleItem, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.SaleItem), args.Error(1)
}

func (m *MockSaleRepository) Create(ctx context.Context, item *entity.SaleItem) error {
	return m.Called(ctx, item).Error(0)
}

// MockCardRepository mocks repository.CardRepository.
type MockCardRepository struct {
	mock.Mock
}

func NewMockCardRepository(t testingT) *MockCardRepository {
	m := &MockCardRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockCardRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MarketplaceCard, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.MarketplaceCard), args.Error(1)
}

func (m *MockCardRepository) FindBySection(ctx context.Context, section entity.Section) ([]*entity.MarketplaceCard, error) {
	args := m.Called(ctx, section)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.MarketplaceCard), args.Error(1)
}

func (m *MockCardRepository) Create(ctx context.Context, card *entity.MarketplaceCard) error {
	return m.Called(ctx, card).Error(0)
}

func (m *MockCardRepository) Update(ctx context.Context, card *entity.MarketplaceCard) error {
	return m.Called(ctx, card).Error(0)
}

func (m *MockCardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockKeywordRepository mocks repository.KeywordRepository.
type MockKeywordRepository struct {
	mock.Mock
}

func NewMockKeywordRepository(t testingT) *MockKeywordRepository {
	m := &MockKeywordRepository{}
	register(t, &m.Mock)

	return m
}

func (m *MockKeywordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Keyword, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Keyword), args.Error(1)
}

func (m *MockKeywordRepository) Search(ctx context.Context, query string) ([]*entity.Keyword, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Keyword), args.Error(1)
}

func (m *MockKeywordRepository) Create(ctx context.Context, keyword *entity.Keyword) error {
	return m.Called(ctx, keyword).Error(0)
}

func (m *MockKeywordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}
