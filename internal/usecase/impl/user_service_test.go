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
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func registerInput() usecase.RegisterUserInput {
	return usecase.RegisterUserInput{
		Email:       "jane.doe@example.com",
		Password:    "hunter2hunter2",
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Address: usecase.LocationInput{
			StreetNumber: "3/24",
			StreetName:   "Ilam Road",
			City:         "Christchurch",
			Region:       "Canterbury",
			Country:      "New Zealand",
			PostCode:     "90210",
		},
	}
}

func TestUserService_Register_Success(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)
	service := NewUserService(passthrough(&mockRepo.StubFactory{Users: userRepo}), hasher, tokens, testLogger())

	ctx := context.Background()

	hasher.On("Hash", "hunter2hunter2").Return("hashed-digest", nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	tokens.On("GenerateSessionToken", mock.AnythingOfType("uuid.UUID"), entity.RoleUser).Return("session-token", nil)

	out, err := service.Register(ctx, registerInput())

	require.NoError(t, err)
	assert.Equal(t, "session-token", out.Token)
	assert.Equal(t, entity.RoleUser, out.User.Role)
	assert.Equal(t, "hashed-digest", out.User.PasswordHash)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)
	service := NewUserService(passthrough(&mockRepo.StubFactory{Users: userRepo}), hasher, tokens, testLogger())

	ctx := context.Background()

	hasher.On("Hash", "hunter2hunter2").Return("hashed-digest", nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrEmailTaken)

	_, err := service.Register(ctx, registerInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailInUse))
}

func TestUserService_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		hasher := mockService.NewMockPasswordHasher(t)
		tokens := mockService.NewMockTokenService(t)
		service := NewUserService(passthrough(&mockRepo.StubFactory{Users: userRepo}), hasher, tokens, testLogger())

		ctx := context.Background()
		user := testUser(t, entity.RoleUser)

		userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
		hasher.On("Check", "hunter2hunter2", user.PasswordHash).Return(true)
		tokens.On("GenerateSessionToken", user.ID, entity.RoleUser).Return("session-token", nil)

		out, err := service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "hunter2hunter2"})

		require.NoError(t, err)
		assert.Equal(t, user.ID, out.User.ID)
		assert.Equal(t, "session-token", out.Token)
	})

	t.Run("unknown email", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		service := NewUserService(passthrough(&mockRepo.StubFactory{Users: userRepo}),
			mockService.NewMockPasswordHasher(t), mockService.NewMockTokenService(t), testLogger())

		ctx := context.Background()
		userRepo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		hasher := mockService.NewMockPasswordHasher(t)
		service := NewUserService(passthrough(&mockRepo.StubFactory{Users: userRepo}),
			hasher, mockService.NewMockTokenService(t), testLogger())

		ctx := context.Background()
		user := testUser(t, entity.RoleUser)

		userRepo.On("FindByEmail", ctx, user.Email).Return(user, nil)
		hasher.On("Check", "wrong", user.PasswordHash).Return(false)

		_, err := service.Login(ctx, usecase.LoginInput{Email: user.Email, Password: "wrong"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(passthrough(&mockRepo.StubFactory{Users: userRepo}),
		mockService.NewMockPasswordHasher(t), mockService.NewMockTokenService(t), testLogger())

	ctx := context.Background()
	id := uuid.New()
	userRepo.On("FindByID", ctx, id).Return(nil, repository.ErrUserNotFound)

	_, err := service.GetUser(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_SearchUsers_RelevanceOrder(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(passthrough(&mockRepo.StubFactory{Users: userRepo}),
		mockService.NewMockPasswordHasher(t), mockService.NewMockTokenService(t), testLogger())

	ctx := context.Background()

	partial := testUser(t, entity.RoleUser)
	partial.FirstName = "Janet"
	exact := testUser(t, entity.RoleUser)
	exact.FirstName = "Jane"

	userRepo.On("Search", ctx, "jane").Return([]*entity.User{partial, exact}, nil)

	found, err := service.SearchUsers(ctx, usecase.SearchUsersInput{Query: "jane"})

	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, exact.ID, found[0].ID)
	assert.Equal(t, partial.ID, found[1].ID)
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("stranger forbidden", func(t *testing.T) {
		service := NewUserService(passthrough(&mockRepo.StubFactory{}),
			mockService.NewMockPasswordHasher(t), mockService.NewMockTokenService(t), testLogger())

		viewer := policy.Viewer{AccountID: uuid.New(), Role: entity.RoleUser}

		err := service.DeleteUser(context.Background(), viewer, uuid.New())

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("still owns a business", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		service := NewUserService(passthrough(&mockRepo.StubFactory{Users: userRepo, Businesses: businessRepo}),
			mockService.NewMockPasswordHasher(t), mockService.NewMockTokenService(t), testLogger())

		ctx := context.Background()
		user := testUser(t, entity.RoleUser)

		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		businessRepo.On("FindByPrimaryOwner", ctx, user.ID).
			Return([]*entity.Business{testBusiness(t, user.ID)}, nil)

		err := service.DeleteUser(ctx, viewerFor(user), user.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("self delete succeeds", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		businessRepo := mockRepo.NewMockBusinessRepository(t)
		service := NewUserService(passthrough(&mockRepo.StubFactory{Users: userRepo, Businesses: businessRepo}),
			mockService.NewMockPasswordHasher(t), mockService.NewMockTokenService(t), testLogger())

		ctx := context.Background()
		user := testUser(t, entity.RoleUser)

		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		businessRepo.On("FindByPrimaryOwner", ctx, user.ID).Return([]*entity.Business{}, nil)
		userRepo.On("Delete", ctx, user.ID).Return(nil)

		err := service.DeleteUser(ctx, viewerFor(user), user.ID)

		assert.NoError(t, err)
	})
}

func TestUserService_MakeAdmin(t *testing.T) {
	t.Run("non-dgaa forbidden", func(t *testing.T) {
		service := NewUserService(passthrough(&mockRepo.StubFactory{}),
			mockService.NewMockPasswordHasher(t), mockService.NewMockTokenService(t), testLogger())

		viewer := policy.Viewer{AccountID: uuid.New(), Role: entity.RoleGlobalAdmin}

		err := service.MakeAdmin(context.Background(), viewer, uuid.New())

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("nonexistent target", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		service := NewUserService(passthrough(&mockRepo.StubFactory{Users: userRepo}),
			mockService.NewMockPasswordHasher(t), mockService.NewMockTokenService(t), testLogger())

		ctx := context.Background()
		id := uuid.New()
		viewer := policy.Viewer{AccountID: uuid.New(), Role: entity.RoleDefaultGlobalAdmin}

		userRepo.On("FindByID", ctx, id).Return(nil, repository.ErrUserNotFound)

		err := service.MakeAdmin(ctx, viewer, id)

		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})

	t.Run("promotes target", func(t *testing.T) {
		userRepo := mockRepo.NewMockUserRepository(t)
		service := NewUserService(passthrough(&mockRepo.StubFactory{Users: userRepo}),
			mockService.NewMockPasswordHasher(t), mockService.NewMockTokenService(t), testLogger())

		ctx := context.Background()
		target := testUser(t, entity.RoleUser)
		viewer := policy.Viewer{AccountID: uuid.New(), Role: entity.RoleDefaultGlobalAdmin}

		userRepo.On("FindByID", ctx, target.ID).Return(target, nil)
		userRepo.On("Update", ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == target.ID && u.Role == entity.RoleGlobalAdmin
		})).Return(nil)

		err := service.MakeAdmin(ctx, viewer, target.ID)

		assert.NoError(t, err)
	})
}

func TestUserService_RevokeAdmin_DGAATarget(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(passthrough(&mockRepo.StubFactory{Users: userRepo}),
		mockService.NewMockPasswordHasher(t), mockService.NewMockTokenService(t), testLogger())

	ctx := context.Background()
	target := testUser(t, entity.RoleDefaultGlobalAdmin)
	viewer := policy.Viewer{AccountID: uuid.New(), Role: entity.RoleDefaultGlobalAdmin}

	userRepo.On("FindByID", ctx, target.ID).Return(target, nil)

	err := service.RevokeAdmin(ctx, viewer, target.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
