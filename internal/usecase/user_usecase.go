package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/policy"
)

// --- Input DTOs ---

// LocationInput defines the raw address fields shared by user and business
// registration.
type LocationInput struct {
	StreetNumber string
	StreetName   string
	City         string
	Region       string
	Country      string
	PostCode     string
	District     string
}

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Email       string
	Password    string
	FirstName   string
	MiddleName  string
	LastName    string
	Nickname    string
	DateOfBirth time.Time
	Phone       string
	Bio         string
	Address     LocationInput
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// SearchUsersInput defines a user search request. Results come back in
// relevance order with ties broken by ascending id.
type SearchUsersInput struct {
	Query string
	Page  int
	PageSize int
}

// --- Output DTOs ---

// SessionOutput returns the logged-in user and their session token after
// registration or login.
type SessionOutput struct {
	User  *entity.User
	Token string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates a new user account and logs it in.
	Register(ctx context.Context, input RegisterUserInput) (*SessionOutput, error)

	// Login authenticates by email and password.
	Login(ctx context.Context, input LoginInput) (*SessionOutput, error)

	// GetUser retrieves a user for display. Field-level privacy is the
	// delivery layer's concern; this only checks existence.
	GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// SearchUsers retrieves users matching the query, relevance-ordered
	// and paginated.
	SearchUsers(ctx context.Context, input SearchUsersInput) ([]*entity.User, error)

	// DeleteUser removes an account. Only the account holder or a global
	// admin may do this, and never while the account primarily owns a
	// business.
	DeleteUser(ctx context.Context, viewer policy.Viewer, id uuid.UUID) error

	// MakeAdmin grants the global admin role. DGAA only.
	MakeAdmin(ctx context.Context, viewer policy.Viewer, id uuid.UUID) error

	// RevokeAdmin removes the global admin role. DGAA only; the DGAA
	// itself can never be demoted.
	RevokeAdmin(ctx context.Context, viewer policy.Viewer, id uuid.UUID) error
}
