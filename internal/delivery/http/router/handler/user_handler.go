package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/response"
	"bazaar/internal/delivery/http/view"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/service"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc       usecase.UserUsecase
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, tokenSvc service.TokenService, logger *slog.Logger) *UserHandler {
	return &UserHandler{uc: uc, tokenSvc: tokenSvc, logger: logger}
}

type addressRequest struct {
	StreetNumber string `json:"streetNumber"`
	StreetName   string `json:"streetName"`
	City         string `json:"city"`
	Region       string `json:"region"`
	Country      string `json:"country"`
	PostCode     string `json:"postcode"`
	District     string `json:"district"`
}

func (r addressRequest) toInput() usecase.LocationInput {
	return usecase.LocationInput{
		StreetNumber: r.StreetNumber,
		StreetName:   r.StreetName,
		City:         r.City,
		Region:       r.Region,
		Country:      r.Country,
		PostCode:     r.PostCode,
		District:     r.District,
	}
}

type registerUserRequest struct {
	Email       string         `json:"email" validate:"required"`
	Password    string         `json:"password" validate:"required"`
	FirstName   string         `json:"firstName" validate:"required"`
	MiddleName  string         `json:"middleName"`
	LastName    string         `json:"lastName" validate:"required"`
	Nickname    string         `json:"nickname"`
	DateOfBirth string         `json:"dateOfBirth" validate:"required"`
	Phone       string         `json:"phoneNumber"`
	Bio         string         `json:"bio"`
	Address     addressRequest `json:"homeAddress"`
}

// RegisterUser handles the user registration request. A successful
// registration also starts a session.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req registerUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidation, "dateOfBirth must be yyyy-mm-dd")
	}

	output, err := h.uc.Register(c.Request().Context(), usecase.RegisterUserInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		MiddleName:  req.MiddleName,
		LastName:    req.LastName,
		Nickname:    req.Nickname,
		DateOfBirth: dob,
		Phone:       req.Phone,
		Bio:         req.Bio,
		Address:     req.Address.toInput(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token)

	return response.Success(c, http.StatusCreated, view.NewPrivateUser(output.User), "User registered successfully")
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles the user login request and sets the session cookie.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token)

	return response.Success(c, http.StatusOK, view.NewPrivateUser(output.User), "Login successful")
}

// Logout clears the session cookie.
func (h *UserHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// GetUser returns one user, with private fields only for the account
// holder and global admins.
func (h *UserHandler) GetUser(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.uc.GetUser(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	if policy.CanSeePrivate(v, user.ID) {
		return response.Success(c, http.StatusOK, view.NewPrivateUser(user), "")
	}

	return response.Success(c, http.StatusOK, view.NewPublicUser(user), "")
}

// SearchUsers returns users matching the query in relevance order.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}

	query := listQuery(c)
	found, err := h.uc.SearchUsers(c.Request().Context(), usecase.SearchUsersInput{
		Query:    c.QueryParam("searchQuery"),
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	results := make([]any, 0, len(found))
	for _, user := range found {
		if policy.CanSeePrivate(v, user.ID) {
			results = append(results, view.NewPrivateUser(user))
		} else {
			results = append(results, view.NewPublicUser(user))
		}
	}

	return response.Success(c, http.StatusOK, results, "")
}

// DeleteUser removes an account.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteUser(c.Request().Context(), v, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User deleted")
}

// MakeAdmin grants the global admin role to a user.
func (h *UserHandler) MakeAdmin(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.MakeAdmin(c.Request().Context(), v, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User granted global admin role")
}

// RevokeAdmin removes the global admin role from a user.
func (h *UserHandler) RevokeAdmin(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.RevokeAdmin(c.Request().Context(), v, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "User demoted to regular role")
}

func (h *UserHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.tokenSvc.SessionDuration()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
