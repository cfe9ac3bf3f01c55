package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewBusinessService is the constructor for businessService.
func NewBusinessService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.BusinessUsecase {
	return &businessService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// findBusiness loads a business and translates the repository sentinel.
func findBusiness(ctx context.Context, repo repository.BusinessRepository, id uuid.UUID) (*entity.Business, error) {
	business, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, errors.Wrap(domainerrors.ErrBusinessNotFound, "business not found")
		}

		return nil, errors.Wrap(err, "find business")
	}

	return business, nil
}

// CreateBusiness registers a business with the viewer as primary owner.
func (srv *businessService) CreateBusiness(ctx context.Context, viewer policy.Viewer, input usecase.CreateBusinessInput) (*entity.Business, error) {
	srv.log(ctx).Debug("Creating business", slog.String("name", input.Name))

	address, err := newLocation(input.Address)
	if err != nil {
		return nil, err
	}

	var business *entity.Business

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		owner, err := repoFactory.NewUserRepository().FindByID(ctx, viewer.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "owner account not found")
			}

			return errors.Wrap(err, "find owner")
		}

		business, err = entity.NewBusiness(entity.BusinessParams{
			Name:         input.Name,
			Description:  input.Description,
			Address:      address,
			Type:         entity.BusinessType(input.Type),
			PrimaryOwner: owner,
		})
		if err != nil {
			return err
		}

		if err := repoFactory.NewBusinessRepository().Create(ctx, business); err != nil {
			return errors.Wrap(err, "create business")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Business created", slog.Any("business_id", business.ID))

	return business, nil
}

// GetBusiness retrieves a business by id.
func (srv *businessService) GetBusiness(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var business *entity.Business

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findBusiness(ctx, repoFactory.NewBusinessRepository(), id)
		if err != nil {
			return err
		}
		business = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return business, nil
}

// MakeAdministrator adds a user to the business's administrators set.
func (srv *businessService) MakeAdministrator(ctx context.Context, viewer policy.Viewer, businessID, userID uuid.UUID) error {
	return srv.changeAdministrators(ctx, viewer, businessID, userID, (*entity.Business).AddAdministrator)
}

// RemoveAdministrator removes a user from the administrators set.
func (srv *businessService) RemoveAdministrator(ctx context.Context, viewer policy.Viewer, businessID, userID uuid.UUID) error {
	return srv.changeAdministrators(ctx, viewer, businessID, userID, (*entity.Business).RemoveAdministrator)
}

func (srv *businessService) changeAdministrators(
	ctx context.Context,
	viewer policy.Viewer,
	businessID, userID uuid.UUID,
	change func(*entity.Business, uuid.UUID) error,
) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.NewBusinessRepository()

		business, err := findBusiness(ctx, businessRepo, businessID)
		if err != nil {
			return err
		}
		if !policy.CanActAsBusiness(viewer, business) {
			return errors.Wrap(domainerrors.ErrForbidden, "viewer cannot act as this business")
		}

		if _, err := repoFactory.NewUserRepository().FindByID(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "find user")
		}

		if err := change(business, userID); err != nil {
			return err
		}

		if err := businessRepo.Update(ctx, business); err != nil {
			return errors.Wrap(err, "update business administrators")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Business administrators changed",
		slog.Any("business_id", businessID), slog.Any("user_id", userID))

	return nil
}
