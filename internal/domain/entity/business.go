package entity

import (
	"slices"
	"time"

	apperrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"

	"github.com/google/uuid"
)

// BusinessType is the fixed classification of a business.
type BusinessType string

const (
	BusinessTypeAccommodationFood BusinessType = "Accommodation and Food Services"
	BusinessTypeRetailTrade       BusinessType = "Retail Trade"
	BusinessTypeCharitable        BusinessType = "Charitable organisation"
	BusinessTypeNonProfit         BusinessType = "Non-profit organisation"
)

// IsValid checks if the BusinessType is one of the enumerated values.
func (t BusinessType) IsValid() bool {
	switch t {
	case BusinessTypeAccommodationFood, BusinessTypeRetailTrade,
		BusinessTypeCharitable, BusinessTypeNonProfit:
		return true
	default:
		return false
	}
}

// Business is an entity owned by exactly one primary owner and administered
// by zero or more additional users. The product catalogue is a derived
// query on the product store, not a field held here.
type Business struct {
	ID               uuid.UUID
	Name             string
	Description      string
	Address          *Location
	Type             BusinessType
	PrimaryOwnerID   uuid.UUID
	AdministratorIDs []uuid.UUID // always disjoint from PrimaryOwnerID
	Created          time.Time
}

// BusinessParams carries the raw fields for creating a Business.
type BusinessParams struct {
	Name         string
	Description  string
	Address      *Location
	Type         BusinessType
	PrimaryOwner *User
}

// NewBusiness validates every field and the owner-age rule. An owner
// younger than 16 is rejected with a Forbidden error, not a validation
// error: the field values are fine, the actor is not allowed to act.
func NewBusiness(p BusinessParams) (*Business, error) {
	now := time.Now()

	if p.Name == "" {
		return nil, validationError("business name is required")
	}
	if len(p.Name) > maxBusinessName || !businessPattern.MatchString(p.Name) {
		return nil, validationError("business name format is invalid")
	}
	if p.Description != "" && (len(p.Description) > maxDescriptionLength || !businessPattern.MatchString(p.Description)) {
		return nil, validationError("business description format is invalid")
	}
	if p.Address == nil {
		return nil, validationError("business address is required")
	}
	if !p.Type.IsValid() {
		return nil, validationError("business type is not a recognised value")
	}
	if p.PrimaryOwner == nil {
		return nil, validationError("primary owner is required")
	}
	if p.PrimaryOwner.AgeAt(now) < minOwnerAge {
		return nil, errors.Wrap(apperrors.ErrForbidden, "primary owner must be at least 16 years old")
	}

	return &Business{
		Name:           p.Name,
		Description:    p.Description,
		Address:        p.Address,
		Type:           p.Type,
		PrimaryOwnerID: p.PrimaryOwner.ID,
		Created:        now,
	}, nil
}

// IsAdministrator reports whether the user is in the administrators set.
// The primary owner is not an administrator.
func (b *Business) IsAdministrator(userID uuid.UUID) bool {
	return slices.Contains(b.AdministratorIDs, userID)
}

// AddAdministrator adds a user to the administrators set. Adding the
// primary owner or an already-present administrator fails.
func (b *Business) AddAdministrator(userID uuid.UUID) error {
	if userID == b.PrimaryOwnerID {
		return validationError("the primary owner cannot be added as an administrator")
	}
	if b.IsAdministrator(userID) {
		return validationError("user is already an administrator of this business")
	}
	b.AdministratorIDs = append(b.AdministratorIDs, userID)

	return nil
}

// RemoveAdministrator removes a user from the administrators set. Removing
// a user who is not an administrator fails.
func (b *Business) RemoveAdministrator(userID uuid.UUID) error {
	idx := slices.Index(b.AdministratorIDs, userID)
	if idx < 0 {
		return validationError("user is not an administrator of this business")
	}
	b.AdministratorIDs = slices.Delete(b.AdministratorIDs, idx, idx+1)

	return nil
}
