// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/listing"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func newLocation(input usecase.LocationInput) (*entity.Location, error) {
	return entity.NewLocation(entity.LocationParams{
		StreetNumber: input.StreetNumber,
		StreetName:   input.StreetName,
		City:         input.City,
		Region:       input.Region,
		Country:      input.Country,
		PostCode:     input.PostCode,
		District:     input.District,
	})
}

// Register creates a new user account and immediately logs it in.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterUserInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Debug("Registering user", slog.String("email", input.Email))

	address, err := newLocation(input.Address)
	if err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := entity.NewUser(entity.UserParams{
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		MiddleName:   input.MiddleName,
		LastName:     input.LastName,
		Nickname:     input.Nickname,
		DateOfBirth:  input.DateOfBirth,
		Phone:        input.Phone,
		Bio:          input.Bio,
		Address:      address,
	})
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrEmailTaken) {
				return errors.Wrap(domainerrors.ErrEmailInUse, "email address already registered")
			}

			return errors.Wrap(err, "create user")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.GenerateSessionToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "generate session token")
	}

	srv.log(ctx).Info("User registered", slog.Any("user_id", user.ID))

	return &usecase.SessionOutput{User: user, Token: token}, nil
}

// Login authenticates by email and password. A wrong email and a wrong
// password are indistinguishable to the caller.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Debug("Logging in user", slog.String("email", input.Email))

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindByEmail(ctx, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "email or password is incorrect")
			}

			return errors.Wrap(err, "find user by email")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "email or password is incorrect")
	}

	token, err := srv.tokenService.GenerateSessionToken(user.ID, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "generate session token")
	}

	return &usecase.SessionOutput{User: user, Token: token}, nil
}

// GetUser retrieves a user by id.
func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// SearchUsers retrieves users matching the query, ranked by relevance.
// Exact name matches rank ahead of partial ones; within a rank, ties break
// by ascending id.
func (srv *userService) SearchUsers(ctx context.Context, input usecase.SearchUsersInput) ([]*entity.User, error) {
	srv.log(ctx).Debug("Searching users", slog.String("query", input.Query))

	var matches []*entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().Search(ctx, input.Query)
		if err != nil {
			return errors.Wrap(err, "search users")
		}
		matches = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	compare := userRelevanceComparator(input.Query)

	return listing.Apply(matches, compare, false, input.Page, input.PageSize), nil
}

// userRelevanceComparator orders exact name matches before partial ones,
// then by ascending id for a deterministic result.
func userRelevanceComparator(query string) listing.Comparator[*entity.User] {
	return func(a, b *entity.User) int {
		ra, rb := userRelevance(a, query), userRelevance(b, query)
		if ra != rb {
			return ra - rb
		}

		return strings.Compare(a.ID.String(), b.ID.String())
	}
}

func userRelevance(u *entity.User, query string) int {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, field := range []string{u.FirstName, u.MiddleName, u.LastName, u.Nickname, u.FullName()} {
		if field != "" && strings.ToLower(field) == q {
			return 0
		}
	}

	return 1
}

// DeleteUser removes an account. Only the account holder or a global admin
// may do this, and never while the account primarily owns a business.
func (srv *userService) DeleteUser(ctx context.Context, viewer policy.Viewer, id uuid.UUID) error {
	if viewer.AccountID != id && !viewer.IsAdmin() {
		return errors.Wrap(domainerrors.ErrForbidden, "only the account holder or a global admin may delete an account")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "find user")
		}
		if user.Role == entity.RoleDefaultGlobalAdmin {
			return errors.Wrap(domainerrors.ErrForbidden, "the default global admin account cannot be deleted")
		}

		owned, err := repoFactory.NewBusinessRepository().FindByPrimaryOwner(ctx, id)
		if err != nil {
			return errors.Wrap(err, "find owned businesses")
		}
		if len(owned) > 0 {
			return errors.Wrap(domainerrors.ErrForbidden, "account still primarily owns a business")
		}

		if err := userRepo.Delete(ctx, id); err != nil {
			return errors.Wrap(err, "delete user")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("User deleted", slog.Any("user_id", id))

	return nil
}

// MakeAdmin grants the global admin role. DGAA only.
func (srv *userService) MakeAdmin(ctx context.Context, viewer policy.Viewer, id uuid.UUID) error {
	return srv.changeRole(ctx, viewer, id, entity.RoleGlobalAdmin)
}

// RevokeAdmin removes the global admin role. DGAA only.
func (srv *userService) RevokeAdmin(ctx context.Context, viewer policy.Viewer, id uuid.UUID) error {
	return srv.changeRole(ctx, viewer, id, entity.RoleUser)
}

func (srv *userService) changeRole(ctx context.Context, viewer policy.Viewer, id uuid.UUID, role entity.Role) error {
	if !viewer.IsDGAA() {
		return errors.Wrap(domainerrors.ErrForbidden, "only the default global admin may change admin roles")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "find user")
		}
		if user.Role == entity.RoleDefaultGlobalAdmin {
			return errors.Wrap(domainerrors.ErrForbidden, "the default global admin role cannot be changed")
		}
		if user.Role == role {
			return nil
		}
		user.Role = role

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "update user role")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("User role changed", slog.Any("user_id", id), slog.String("role", role.String()))

	return nil
}
