package impl

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// passthrough returns a transaction manager that hands every callback the
// given stub factory without any real transaction underneath.
func passthrough(factory *mockRepo.StubFactory) repository.TransactionManager {
	return &mockRepo.PassthroughTxManager{Factory: factory}
}

func testAddress(t *testing.T) *entity.Location {
	t.Helper()

	loc, err := entity.NewLocation(entity.LocationParams{
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

func testUser(t *testing.T, role entity.Role) *entity.User {
	t.Helper()

	user, err := entity.NewUser(entity.UserParams{
		Email:        "jane.doe@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvabcdefghijklmnopqrstuvabcdefghij",
		FirstName:    "Jane",
		LastName:     "Doe",
		DateOfBirth:  time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		Address:      testAddress(t),
	})
	require.NoError(t, err)
	user.ID = uuid.New()
	user.Role = role

	return user
}

func testBusiness(t *testing.T, ownerID uuid.UUID) *entity.Business {
	t.Helper()

	return &entity.Business{
		ID:             uuid.New(),
		Name:           "Lumbridge General Store",
		Type:           entity.BusinessTypeRetailTrade,
		Address:        testAddress(t),
		PrimaryOwnerID: ownerID,
		Created:        time.Now(),
	}
}

func viewerFor(u *entity.User) policy.Viewer {
	return policy.Viewer{AccountID: u.ID, Role: u.Role}
}

func floatPtr(v float64) *float64 { return &v }

func timePtr(v time.Time) *time.Time { return &v }

func testProduct(t *testing.T, businessID uuid.UUID) *entity.Product {
	t.Helper()

	return &entity.Product{
		ID:            uuid.New(),
		BusinessID:    businessID,
		Code:          "WATT-420",
		Name:          "Watties Baked Beans",
		CountryOfSale: "New Zealand",
		Created:       time.Now(),
	}
}

func testInventoryItem(t *testing.T, productID uuid.UUID) *entity.InventoryItem {
	t.Helper()

	item, err := entity.NewInventoryItem(entity.InventoryItemParams{
		ProductID:    productID,
		Quantity:     10,
		PricePerItem: floatPtr(2.5),
		Expires:      time.Now().AddDate(0, 1, 0),
	})
	require.NoError(t, err)
	item.ID = uuid.New()

	return item
}
