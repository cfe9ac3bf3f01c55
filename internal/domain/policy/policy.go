// Package policy holds the authorization and visibility rules of the
// system: who may see a user's private details and who may act on behalf
// of a business. The rules are pure functions over resolved identity, so
// they can be exercised without any transport or storage in place.
package policy

import (
	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// Viewer is the resolved identity of the account behind a request. The
// session middleware produces one after validating the session token; an
// unauthenticated request never reaches these checks.
type Viewer struct {
	AccountID uuid.UUID
	Role      entity.Role
}

// IsAdmin reports whether the viewer holds global administrator privileges
// (globalApplicationAdmin or the DGAA).
func (v Viewer) IsAdmin() bool {
	return v.Role.IsAdmin()
}

// IsDGAA reports whether the viewer is the default global application
// admin. Only the DGAA may promote or demote admin roles.
func (v Viewer) IsDGAA() bool {
	return v.Role == entity.RoleDefaultGlobalAdmin
}

// CanSeePrivate reports whether the viewer may see the private fields of
// the target user: themselves, or any global admin.
func CanSeePrivate(v Viewer, targetUserID uuid.UUID) bool {
	return v.AccountID == targetUserID || v.IsAdmin()
}

// CanActAsBusiness reports whether the viewer may mutate the business's
// data: the primary owner, a listed administrator, or any global admin.
func CanActAsBusiness(v Viewer, b *entity.Business) bool {
	if b == nil {
		return false
	}

	return v.AccountID == b.PrimaryOwnerID || b.IsAdministrator(v.AccountID) || v.IsAdmin()
}
