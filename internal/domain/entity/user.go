// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the single account type in the system. The account/user split of
// a classic inheritance model is collapsed into one struct discriminated by
// Role; there is no separate Account entity.
type User struct {
	ID           uuid.UUID
	Email        string // unique login identifier
	PasswordHash string // bcrypt digest, never serialized
	Role         Role
	FirstName    string
	MiddleName   string // optional
	LastName     string
	Nickname     string // optional
	DateOfBirth  time.Time
	Phone        string // optional
	Bio          string // optional
	Address      *Location
	Created      time.Time // immutable, set once at construction
}

// UserParams carries the raw fields for registering a User.
type UserParams struct {
	Email        string
	PasswordHash string
	FirstName    string
	MiddleName   string
	LastName     string
	Nickname     string
	DateOfBirth  time.Time
	Phone        string
	Bio          string
	Address      *Location
}

// NewUser runs every field validator and returns a live User. A partially
// valid user is never observable outside this constructor. New accounts
// always start with the plain user role; promotion is a separate, DGAA-only
// operation.
func NewUser(p UserParams) (*User, error) {
	now := time.Now()

	if err := validateEmail(p.Email); err != nil {
		return nil, err
	}
	if err := validatePersonName("first name", p.FirstName, true); err != nil {
		return nil, err
	}
	if err := validatePersonName("middle name", p.MiddleName, false); err != nil {
		return nil, err
	}
	if err := validatePersonName("last name", p.LastName, true); err != nil {
		return nil, err
	}
	if err := validatePersonName("nickname", p.Nickname, false); err != nil {
		return nil, err
	}
	if err := validateDateOfBirth(p.DateOfBirth, now); err != nil {
		return nil, err
	}
	if err := validatePhone(p.Phone); err != nil {
		return nil, err
	}
	if err := validateBio(p.Bio); err != nil {
		return nil, err
	}
	if p.Address == nil {
		return nil, validationError("address is required")
	}
	if p.PasswordHash == "" {
		return nil, validationError("password is required")
	}

	return &User{
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		Role:         RoleUser,
		FirstName:    p.FirstName,
		MiddleName:   p.MiddleName,
		LastName:     p.LastName,
		Nickname:     p.Nickname,
		DateOfBirth:  p.DateOfBirth,
		Phone:        p.Phone,
		Bio:          p.Bio,
		Address:      p.Address,
		Created:      now,
	}, nil
}

// AgeAt returns the user's whole-year age at the given time.
func (u *User) AgeAt(t time.Time) int {
	return yearsBetween(u.DateOfBirth, t)
}

// FullName joins the name fields for search and display.
func (u *User) FullName() string {
	name := u.FirstName
	if u.MiddleName != "" {
		name += " " + u.MiddleName
	}

	return name + " " + u.LastName
}
