package impl

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
)

// dgaaService implements the DGAAUsecase interface. It keeps the
// configured bootstrap admin account in existence with the correct role.
type dgaaService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	cfg       *config.Config
	logger    *slog.Logger
}

// NewDGAAService is the constructor for dgaaService.
func NewDGAAService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.DGAAUsecase {
	return &dgaaService{
		txManager: txManager,
		hasher:    hasher,
		cfg:       cfg,
		logger:    logger,
	}
}

func (srv *dgaaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Reconcile ensures the account with the configured DGAA email exists and
// holds the DGAA role. An account found under that email with a different
// role is deleted and recreated, so a tampered row heals on the next run.
// Idempotent; a run against a healthy row changes nothing.
func (srv *dgaaService) Reconcile(ctx context.Context) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		existing, err := userRepo.FindByEmail(ctx, srv.cfg.DGAA.Email)
		switch {
		case err == nil && existing.Role == entity.RoleDefaultGlobalAdmin:
			return nil
		case err == nil:
			srv.log(ctx).Warn("Default admin account holds the wrong role, recreating",
				slog.String("role", existing.Role.String()))
			if err := userRepo.Delete(ctx, existing.ID); err != nil {
				return errors.Wrap(err, "delete stale default admin")
			}
		case !errors.Is(err, repository.ErrUserNotFound):
			return errors.Wrap(err, "find default admin")
		}

		admin, err := srv.newDefaultAdmin()
		if err != nil {
			return err
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			return errors.Wrap(err, "create default admin")
		}

		srv.log(ctx).Info("Default admin account created", slog.Any("user_id", admin.ID))

		return nil
	})
}

// newDefaultAdmin builds the synthetic DGAA account. Profile fields are
// placeholders; only the email, password and role matter.
func (srv *dgaaService) newDefaultAdmin() (*entity.User, error) {
	hash, err := srv.hasher.Hash(srv.cfg.DGAA.Password)
	if err != nil {
		return nil, errors.Wrap(err, "hash default admin password")
	}

	address, err := entity.NewLocation(entity.LocationParams{
		StreetNumber: "1",
		StreetName:   "Service Lane",
		City:         "Internal",
		Region:       "Internal",
		Country:      "Internal",
		PostCode:     "0000",
	})
	if err != nil {
		return nil, err
	}

	admin, err := entity.NewUser(entity.UserParams{
		Email:        srv.cfg.DGAA.Email,
		PasswordHash: hash,
		FirstName:    "Default",
		LastName:     "Admin",
		DateOfBirth:  time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		Address:      address,
	})
	if err != nil {
		return nil, err
	}
	admin.Role = entity.RoleDefaultGlobalAdmin

	return admin, nil
}
