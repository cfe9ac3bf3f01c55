package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bazaar/config"
	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/validator"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/policy"
	"bazaar/internal/infra/auth"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserUsecase serves canned results so the handler tests stay focused
// on binding, cookies and serialization.
type stubUserUsecase struct {
	session *usecase.SessionOutput
	user    *entity.User
	err     error
}

func (s *stubUserUsecase) Register(ctx context.Context, input usecase.RegisterUserInput) (*usecase.SessionOutput, error) {
	return s.session, s.err
}

func (s *stubUserUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionOutput, error) {
	return s.session, s.err
}

func (s *stubUserUsecase) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return s.user, s.err
}

func (s *stubUserUsecase) SearchUsers(ctx context.Context, input usecase.SearchUsersInput) ([]*entity.User, error) {
	return []*entity.User{s.user}, s.err
}

func (s *stubUserUsecase) DeleteUser(ctx context.Context, viewer policy.Viewer, id uuid.UUID) error {
	return s.err
}

func (s *stubUserUsecase) MakeAdmin(ctx context.Context, viewer policy.Viewer, id uuid.UUID) error {
	return s.err
}

func (s *stubUserUsecase) RevokeAdmin(ctx context.Context, viewer policy.Viewer, id uuid.UUID) error {
	return s.err
}

func testAccount(t *testing.T) *entity.User {
	t.Helper()

	address, err := entity.NewLocation(entity.LocationParams{
		StreetNumber: "3/24",
		StreetName:   "Ilam Road",
		City:         "Christchurch",
		Region:       "Canterbury",
		Country:      "New Zealand",
		PostCode:     "90210",
	})
	require.NoError(t, err)

	user, err := entity.NewUser(entity.UserParams{
		Email:        "fdi19@uclive.ac.nz",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuvabcdefghijklmnopqrstuvabcdefghij",
		FirstName:    "Fabian",
		LastName:     "Gilson",
		DateOfBirth:  time.Date(1985, 2, 2, 0, 0, 0, 0, time.UTC),
		Phone:        "+64 3 555 0129",
		Address:      address,
	})
	require.NoError(t, err)
	user.ID = uuid.New()

	return user
}

func newUserHandler(t *testing.T, uc usecase.UserUsecase) *UserHandler {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = "handler-test-secret"
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return NewUserHandler(uc, tokenSvc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestUserHandler_Login_SetsSessionCookie(t *testing.T) {
	user := testAccount(t)
	handler := newUserHandler(t, &stubUserUsecase{
		session: &usecase.SessionOutput{User: user, Token: "signed-token"},
	})

	e := echo.New()
	e.Validator = validator.New()
	body := `{"email":"fdi19@uclive.ac.nz","password":"Hunter22!"}`
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var sessionCookie *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookieName {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie)
	assert.Equal(t, "signed-token", sessionCookie.Value)
	assert.True(t, sessionCookie.HttpOnly)

	assert.Contains(t, rec.Body.String(), "fdi19@uclive.ac.nz")
}

func TestUserHandler_GetUser_PublicViewHidesPrivateFields(t *testing.T) {
	user := testAccount(t)
	handler := newUserHandler(t, &stubUserUsecase{user: user})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/"+user.ID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(user.ID.String())
	deliverycontext.SetViewer(c, policy.Viewer{AccountID: uuid.New(), Role: entity.RoleUser})

	require.NoError(t, handler.GetUser(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	assert.Equal(t, "Fabian", envelope.Data["firstName"])
	assert.NotContains(t, envelope.Data, "email")
	assert.NotContains(t, envelope.Data, "role")
	assert.NotContains(t, envelope.Data, "dateOfBirth")
	assert.NotContains(t, envelope.Data, "phoneNumber")

	address, ok := envelope.Data["homeAddress"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Christchurch", address["city"])
	assert.NotContains(t, address, "streetName")
}

func TestUserHandler_GetUser_SelfSeesPrivateView(t *testing.T) {
	user := testAccount(t)
	handler := newUserHandler(t, &stubUserUsecase{user: user})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/"+user.ID.String(), nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(user.ID.String())
	deliverycontext.SetViewer(c, policy.Viewer{AccountID: user.ID, Role: entity.RoleUser})

	require.NoError(t, handler.GetUser(c))
	assert.Contains(t, rec.Body.String(), "fdi19@uclive.ac.nz")
	assert.Contains(t, rec.Body.String(), "Ilam Road")
}
