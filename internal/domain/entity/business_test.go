package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"
)

func testOwner(t *testing.T, dob time.Time) *User {
	t.Helper()

	params := testUserParams(t)
	params.DateOfBirth = dob
	owner, err := NewUser(params)
	require.NoError(t, err)
	owner.ID = uuid.New()

	return owner
}

func testBusinessParams(t *testing.T) BusinessParams {
	t.Helper()

	return BusinessParams{
		Name:         "Lucky Bakery",
		Description:  "Fresh bread, every day",
		Address:      testLocation(t),
		Type:         BusinessTypeRetailTrade,
		PrimaryOwner: testOwner(t, time.Now().AddDate(-30, 0, 0)),
	}
}

func TestNewBusiness(t *testing.T) {
	t.Parallel()

	params := testBusinessParams(t)
	business, err := NewBusiness(params)
	require.NoError(t, err)
	assert.Equal(t, params.PrimaryOwner.ID, business.PrimaryOwnerID)
	assert.Empty(t, business.AdministratorIDs)
}

func TestNewBusinessOwnerAgeWall(t *testing.T) {
	t.Parallel()

	t.Run("one day short of sixteen is forbidden", func(t *testing.T) {
		t.Parallel()

		params := testBusinessParams(t)
		params.PrimaryOwner = testOwner(t, time.Now().AddDate(-16, 0, 1))

		_, err := NewBusiness(params)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrForbidden))
		assert.False(t, errors.Is(err, apperrors.ErrValidation))
	})

	t.Run("exactly sixteen succeeds", func(t *testing.T) {
		t.Parallel()

		params := testBusinessParams(t)
		params.PrimaryOwner = testOwner(t, time.Now().AddDate(-16, 0, 0))

		_, err := NewBusiness(params)
		assert.NoError(t, err)
	})
}

func TestNewBusinessValidation(t *testing.T) {
	t.Parallel()

	mutate := map[string]func(*BusinessParams){
		"empty name":      func(p *BusinessParams) { p.Name = "" },
		"bad name chars":  func(p *BusinessParams) { p.Name = "Bakery <script>" },
		"missing address": func(p *BusinessParams) { p.Address = nil },
		"unknown type":    func(p *BusinessParams) { p.Type = "Underwater Basket Weaving" },
		"missing owner":   func(p *BusinessParams) { p.PrimaryOwner = nil },
	}

	for name, fn := range mutate {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			params := testBusinessParams(t)
			fn(&params)
			_, err := NewBusiness(params)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
		})
	}
}

func TestBusinessAdministrators(t *testing.T) {
	t.Parallel()

	business, err := NewBusiness(testBusinessParams(t))
	require.NoError(t, err)

	admin := uuid.New()

	t.Run("add then remove restores the set", func(t *testing.T) {
		before := append([]uuid.UUID(nil), business.AdministratorIDs...)

		require.NoError(t, business.AddAdministrator(admin))
		assert.True(t, business.IsAdministrator(admin))

		require.NoError(t, business.RemoveAdministrator(admin))
		assert.Equal(t, before, business.AdministratorIDs)
	})

	t.Run("duplicate add fails", func(t *testing.T) {
		require.NoError(t, business.AddAdministrator(admin))
		err := business.AddAdministrator(admin)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
		require.NoError(t, business.RemoveAdministrator(admin))
	})

	t.Run("removing a non-admin fails", func(t *testing.T) {
		err := business.RemoveAdministrator(uuid.New())
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})

	t.Run("the owner cannot be an administrator", func(t *testing.T) {
		err := business.AddAdministrator(business.PrimaryOwnerID)
		assert.True(t, errors.Is(err, apperrors.ErrValidation))
	})
}
