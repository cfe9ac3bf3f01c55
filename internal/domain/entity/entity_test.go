package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"
)

func testLocation(t *testing.T) *Location {
	t.Helper()

	loc, err := NewLocation(LocationParams{
		StreetNumber: "3/24",
		StreetName:   "Ilam Road",
		City:         "Christchurch",
		Region:       "Canterbury",
		Country:      "New Zealand",
		PostCode:     "90210",
	})
	require.NoError(t, err)

	return loc
}

func testUserParams(t *testing.T) UserParams {
	t.Helper()

	return UserParams{
		Email:        "jane.doe@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvabcdefghijklmnopqrstuvabcdefghij",
		FirstName:    "Jane",
		LastName:     "Doe",
		DateOfBirth:  time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Address:      testLocation(t),
	}
}

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser(testUserParams(t))
	require.NoError(t, err)
	assert.Equal(t, RoleUser, user.Role)
	assert.False(t, user.Created.IsZero())
	assert.Equal(t, "Jane Doe", user.FullName())
}

func TestNewUserValidation(t *testing.T) {
	t.Parallel()

	mutate := map[string]func(*UserParams){
		"empty email":        func(p *UserParams) { p.Email = "" },
		"malformed email":    func(p *UserParams) { p.Email = "not-an-email" },
		"empty first name":   func(p *UserParams) { p.FirstName = "" },
		"digits in name":     func(p *UserParams) { p.LastName = "D03" },
		"missing dob":        func(p *UserParams) { p.DateOfBirth = time.Time{} },
		"under thirteen":     func(p *UserParams) { p.DateOfBirth = time.Now().AddDate(-12, 0, 0) },
		"bad phone":          func(p *UserParams) { p.Phone = "call me" },
		"missing address":    func(p *UserParams) { p.Address = nil },
		"missing password":   func(p *UserParams) { p.PasswordHash = "" },
		"oversized nickname": func(p *UserParams) { p.Nickname = strings.Repeat("a", 60) },
	}

	for name, fn := range mutate {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			params := testUserParams(t)
			fn(&params)
			_, err := NewUser(params)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
		})
	}
}

func TestNewUserOptionalFieldsMayBeEmpty(t *testing.T) {
	t.Parallel()

	params := testUserParams(t)
	params.MiddleName = ""
	params.Nickname = ""
	params.Phone = ""
	params.Bio = ""

	_, err := NewUser(params)
	assert.NoError(t, err)
}

func TestYearsBetween(t *testing.T) {
	t.Parallel()

	born := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 15, yearsBetween(born, time.Date(2016, 6, 14, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 16, yearsBetween(born, time.Date(2016, 6, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 16, yearsBetween(born, time.Date(2017, 6, 14, 0, 0, 0, 0, time.UTC)))
}

func TestNewLocationValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*LocationParams)
		valid  bool
	}{
		{name: "district optional", mutate: func(p *LocationParams) { p.District = "" }, valid: true},
		{name: "district provided", mutate: func(p *LocationParams) { p.District = "Riccarton" }, valid: true},
		{name: "missing street number", mutate: func(p *LocationParams) { p.StreetNumber = "" }},
		{name: "missing city", mutate: func(p *LocationParams) { p.City = "" }},
		{name: "missing country", mutate: func(p *LocationParams) { p.Country = "" }},
		{name: "missing post code", mutate: func(p *LocationParams) { p.PostCode = "" }},
		{name: "numeric city", mutate: func(p *LocationParams) { p.City = "123" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := LocationParams{
				StreetNumber: "12",
				StreetName:   "High Street",
				City:         "Wellington",
				Region:       "Wellington",
				Country:      "New Zealand",
				PostCode:     "6011",
			}
			tt.mutate(&params)

			_, err := NewLocation(params)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, apperrors.ErrValidation))
			}
		})
	}
}
