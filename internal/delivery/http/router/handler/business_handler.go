package handler

import (
	"context"
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/delivery/http/view"
	"bazaar/internal/domain/policy"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BusinessHandler holds dependencies for business-related handlers.
type BusinessHandler struct {
	uc     usecase.BusinessUsecase
	logger *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler, injected by Fx.
func NewBusinessHandler(uc usecase.BusinessUsecase, logger *slog.Logger) *BusinessHandler {
	return &BusinessHandler{uc: uc, logger: logger}
}

type createBusinessRequest struct {
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description"`
	Type        string         `json:"businessType" validate:"required"`
	Address     addressRequest `json:"address"`
}

// CreateBusiness registers a business owned by the logged-in user.
func (h *BusinessHandler) CreateBusiness(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}

	var req createBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	business, err := h.uc.CreateBusiness(c.Request().Context(), v, usecase.CreateBusinessInput{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
		Address:     req.Address.toInput(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view.NewBusiness(business), "Business registered successfully")
}

// GetBusiness returns one business.
func (h *BusinessHandler) GetBusiness(c echo.Context) error {
	if _, err := viewer(c); err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	business, err := h.uc.GetBusiness(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view.NewBusiness(business), "")
}

type administratorRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// MakeAdministrator adds a user to the business's administrators.
func (h *BusinessHandler) MakeAdministrator(c echo.Context) error {
	return h.changeAdministrators(c, h.uc.MakeAdministrator, "User added as business administrator")
}

// RemoveAdministrator removes a user from the business's administrators.
func (h *BusinessHandler) RemoveAdministrator(c echo.Context) error {
	return h.changeAdministrators(c, h.uc.RemoveAdministrator, "User removed as business administrator")
}

func (h *BusinessHandler) changeAdministrators(
	c echo.Context,
	change func(ctx context.Context, viewer policy.Viewer, businessID, userID uuid.UUID) error,
	message string,
) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req administratorRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid administrator input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := change(c.Request().Context(), v, businessID, req.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, message)
}
