// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"
)

// userRepository implements the domain's UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading their address.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		First(&userM, "id = ?", id).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		First(&userM, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Search retrieves every user whose name fields match the query. The
// relevance ordering happens in memory afterwards, so this only filters.
func (repo *userRepository) Search(ctx context.Context, query string) ([]*entity.User, error) {
	pattern := "%" + query + "%"

	var models []*model.UserModel
	err := repo.db.WithContext(ctx).
		Preload("Address").
		Where(
			repo.db.Where("first_name ILIKE ?", pattern).
				Or("middle_name ILIKE ?", pattern).
				Or("last_name ILIKE ?", pattern).
				Or("nickname ILIKE ?", pattern),
		).
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	users := make([]*entity.User, 0, len(models))
	for _, m := range models {
		users = append(users, toUserDomain(m))
	}

	return users, nil
}

// Create persists a new user and their owned address in one insert chain.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEmailTaken
		}

		return errors.Wrap(err, "failed to create user")
	}

	// Propagate the generated ID back to the entity.
	user.ID = userM.ID

	return nil
}

// Update modifies a user's scalar columns. The owned address is immutable
// after registration, so it is never touched here.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email":         user.Email,
			"password_hash": user.PasswordHash,
			"role":          user.Role.String(),
			"first_name":    user.FirstName,
			"middle_name":   user.MiddleName,
			"last_name":     user.LastName,
			"nickname":      user.Nickname,
			"phone":         user.Phone,
			"bio":           user.Bio,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrEmailTaken
		}

		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// Delete removes a user and their address. Administrator links in
// business_administrators drop through the foreign-key cascade.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).First(&userM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to load user for deletion")
	}

	if err := repo.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id).Error; err != nil {
		return errors.Wrap(err, "failed to delete user")
	}
	if err := repo.db.WithContext(ctx).Delete(&model.LocationModel{}, "id = ?", userM.AddressID).Error; err != nil {
		return errors.Wrap(err, "failed to delete user address")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toLocationDomain(data *model.LocationModel) *entity.Location {
	if data == nil {
		return nil
	}

	return &entity.Location{
		StreetNumber: data.StreetNumber,
		StreetName:   data.StreetName,
		City:         data.City,
		Region:       data.Region,
		Country:      data.Country,
		PostCode:     data.PostCode,
		District:     data.District,
	}
}

func fromLocationDomain(data *entity.Location) *model.LocationModel {
	if data == nil {
		return nil
	}

	return &model.LocationModel{
		StreetNumber: data.StreetNumber,
		StreetName:   data.StreetName,
		City:         data.City,
		Region:       data.Region,
		Country:      data.Country,
		PostCode:     data.PostCode,
		District:     data.District,
	}
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		FirstName:    data.FirstName,
		MiddleName:   data.MiddleName,
		LastName:     data.LastName,
		Nickname:     data.Nickname,
		DateOfBirth:  data.DateOfBirth,
		Phone:        data.Phone,
		Bio:          data.Bio,
		Address:      toLocationDomain(data.Address),
		Created:      data.CreatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
		FirstName:    data.FirstName,
		MiddleName:   data.MiddleName,
		LastName:     data.LastName,
		Nickname:     data.Nickname,
		DateOfBirth:  data.DateOfBirth,
		Phone:        data.Phone,
		Bio:          data.Bio,
		Address:      fromLocationDomain(data.Address),
		CreatedAt:    data.Created,
	}
}
