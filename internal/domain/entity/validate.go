package entity

import (
	"regexp"
	"time"

	apperrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"
)

// Field patterns. Each validator is pure and deterministic: the same raw
// value always yields the same outcome regardless of call order.
var (
	emailPattern       = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	namePattern        = regexp.MustCompile(`^[A-Za-z][A-Za-z \-]*$`)
	phonePattern       = regexp.MustCompile(`^\+?[0-9][0-9 ()\-]{2,19}$`)
	businessPattern    = regexp.MustCompile(`^[A-Za-z0-9 '#,.&\-]+$`)
	productCodePattern = regexp.MustCompile(`^[\-A-Z0-9]{1,15}$`)
	cardTitlePattern   = regexp.MustCompile(`^[A-Za-z0-9 .,!?'"#&()\-]+$`)
	keywordPattern     = regexp.MustCompile(`^[A-Za-z]{1,25}$`)
	streetNumPattern   = regexp.MustCompile(`^[0-9][0-9A-Za-z/ \-]{0,19}$`)
	placePattern       = regexp.MustCompile(`^[A-Za-z][A-Za-z '\-]*$`)
	postCodePattern    = regexp.MustCompile(`^[0-9A-Za-z \-]{1,10}$`)
)

const (
	maxEmailLength       = 100
	maxNameLength        = 50
	maxBioLength         = 200
	maxBusinessName      = 100
	maxDescriptionLength = 200
	maxProductName       = 100
	maxManufacturer      = 100
	maxRetailPrice       = 10000
	maxTotalPrice        = 1000000
	maxMoreInfoLength    = 50
	maxCardTitle         = 50
	maxPlaceLength       = 100

	minUserAge  = 13
	minOwnerAge = 16
)

// validationError wraps the validation sentinel with a field-specific reason.
func validationError(reason string) error {
	return errors.Wrap(apperrors.ErrValidation, reason)
}

// dateOf truncates a time to its calendar date, dropping the clock.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// yearsBetween returns the number of whole years elapsed from one date to
// another, respecting month and day (a birthday not yet reached this year
// does not count).
func yearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	if from.AddDate(years, 0, 0).After(to) {
		years--
	}

	return years
}

func validateEmail(email string) error {
	if email == "" {
		return validationError("email is required")
	}
	if len(email) > maxEmailLength {
		return validationError("email must be at most 100 characters")
	}
	if !emailPattern.MatchString(email) {
		return validationError("email format is invalid")
	}

	return nil
}

// validatePersonName checks a single name field. Optional fields pass when
// empty; required ones do not.
func validatePersonName(field, value string, required bool) error {
	if value == "" {
		if required {
			return validationError(field + " is required")
		}

		return nil
	}
	if len(value) > maxNameLength {
		return validationError(field + " must be at most 50 characters")
	}
	if !namePattern.MatchString(value) {
		return validationError(field + " may only contain letters, spaces and hyphens")
	}

	return nil
}

func validatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if !phonePattern.MatchString(phone) {
		return validationError("phone number format is invalid")
	}

	return nil
}

func validateBio(bio string) error {
	if len(bio) > maxBioLength {
		return validationError("bio must be at most 200 characters")
	}

	return nil
}

func validateDateOfBirth(dob time.Time, now time.Time) error {
	if dob.IsZero() {
		return validationError("date of birth is required")
	}
	if yearsBetween(dob, now) < minUserAge {
		return validationError("users must be at least 13 years old")
	}

	return nil
}
