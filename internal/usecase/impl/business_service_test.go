package impl

import (
	"context"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createBusinessInput() usecase.CreateBusinessInput {
	return usecase.CreateBusinessInput{
		Name: "Lumbridge General Store",
		Type: string(entity.BusinessTypeRetailTrade),
		Address: usecase.LocationInput{
			StreetNumber: "1",
			StreetName:   "Lumbridge Way",
			City:         "Christchurch",
			Region:       "Canterbury",
			Country:      "New Zealand",
			PostCode:     "8041",
		},
	}
}

func TestBusinessService_CreateBusiness_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	service := NewBusinessService(passthrough(&mockRepo.StubFactory{Users: userRepo, Businesses: businessRepo}), testLogger())

	ctx := context.Background()
	owner := testUser(t, entity.RoleUser)

	userRepo.On("FindByID", ctx, owner.ID).Return(owner, nil)
	businessRepo.On("Create", ctx, mock.MatchedBy(func(b *entity.Business) bool {
		return b.PrimaryOwnerID == owner.ID
	})).Return(nil)

	business, err := service.CreateBusiness(ctx, viewerFor(owner), createBusinessInput())

	require.NoError(t, err)
	assert.Equal(t, owner.ID, business.PrimaryOwnerID)
	assert.Equal(t, entity.BusinessTypeRetailTrade, business.Type)
}

func TestBusinessService_CreateBusiness_UnderageOwner(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewBusinessService(passthrough(&mockRepo.StubFactory{Users: userRepo}), testLogger())

	ctx := context.Background()
	owner := testUser(t, entity.RoleUser)
	owner.DateOfBirth = time.Now().AddDate(-15, 0, 0)

	userRepo.On("FindByID", ctx, owner.ID).Return(owner, nil)

	_, err := service.CreateBusiness(ctx, viewerFor(owner), createBusinessInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	assert.False(t, errors.Is(err, domainerrors.ErrValidation))
}

func TestBusinessService_GetBusiness_NotFound(t *testing.T) {
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	service := NewBusinessService(passthrough(&mockRepo.StubFactory{Businesses: businessRepo}), testLogger())

	ctx := context.Background()
	id := uuid.New()
	businessRepo.On("FindByID", ctx, id).Return(nil, repository.ErrBusinessNotFound)

	_, err := service.GetBusiness(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestBusinessService_MakeAdministrator(t *testing.T) {
	t.Run("stranger forbidden", func(t *testing.T) {
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		service := NewBusinessService(passthrough(&mockRepo.StubFactory{Businesses: businessRepo}), testLogger())

		ctx := context.Background()
		business := testBusiness(t, uuid.New())
		stranger := policy.Viewer{AccountID: uuid.New(), Role: entity.RoleUser}

		businessRepo.On("FindByID", ctx, business.ID).Return(business, nil)

		err := service.MakeAdministrator(ctx, stranger, business.ID, uuid.New())

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("owner adds admin", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		service := NewBusinessService(passthrough(&mockRepo.StubFactory{Users: userRepo, Businesses: businessRepo}), testLogger())

		ctx := context.Background()
		owner := testUser(t, entity.RoleUser)
		business := testBusiness(t, owner.ID)
		admin := testUser(t, entity.RoleUser)

		businessRepo.On("FindByID", ctx, business.ID).Return(business, nil)
		userRepo.On("FindByID", ctx, admin.ID).Return(admin, nil)
		businessRepo.On("Update", ctx, mock.MatchedBy(func(b *entity.Business) bool {
			return b.IsAdministrator(admin.ID)
		})).Return(nil)

		err := service.MakeAdministrator(ctx, viewerFor(owner), business.ID, admin.ID)

		assert.NoError(t, err)
	})

	t.Run("adding the owner fails", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		service := NewBusinessService(passthrough(&mockRepo.StubFactory{Users: userRepo, Businesses: businessRepo}), testLogger())

		ctx := context.Background()
		owner := testUser(t, entity.RoleUser)
		business := testBusiness(t, owner.ID)

		businessRepo.On("FindByID", ctx, business.ID).Return(business, nil)
		userRepo.On("FindByID", ctx, owner.ID).Return(owner, nil)

		err := service.MakeAdministrator(ctx, viewerFor(owner), business.ID, owner.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrValidation))
	})
}

func TestBusinessService_RemoveAdministrator_NotAnAdmin(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	service := NewBusinessService(passthrough(&mockRepo.StubFactory{Users: userRepo, Businesses: businessRepo}), testLogger())

	ctx := context.Background()
	owner := testUser(t, entity.RoleUser)
	business := testBusiness(t, owner.ID)
	outsider := testUser(t, entity.RoleUser)

	businessRepo.On("FindByID", ctx, business.ID).Return(business, nil)
	userRepo.On("FindByID", ctx, outsider.ID).Return(outsider, nil)

	err := service.RemoveAdministrator(ctx, viewerFor(owner), business.ID, outsider.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrValidation))
}
