package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/delivery/http/view"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// KeywordHandler holds dependencies for keyword pool handlers.
type KeywordHandler struct {
	uc     usecase.KeywordUsecase
	logger *slog.Logger
}

// NewKeywordHandler is the constructor for KeywordHandler, injected by Fx.
func NewKeywordHandler(uc usecase.KeywordUsecase, logger *slog.Logger) *KeywordHandler {
	return &KeywordHandler{uc: uc, logger: logger}
}

type createKeywordRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateKeyword adds a keyword to the global pool.
func (h *KeywordHandler) CreateKeyword(c echo.Context) error {
	if _, err := viewer(c); err != nil {
		return err
	}

	var req createKeywordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid keyword input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	keyword, err := h.uc.CreateKeyword(c.Request().Context(), req.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view.NewKeyword(keyword), "Keyword created")
}

// SearchKeywords lists keywords matching a partial name.
func (h *KeywordHandler) SearchKeywords(c echo.Context) error {
	if _, err := viewer(c); err != nil {
		return err
	}

	keywords, err := h.uc.SearchKeywords(c.Request().Context(), c.QueryParam("searchQuery"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view.NewKeywords(keywords), "")
}

// DeleteKeyword removes a keyword from the pool and every card using it.
func (h *KeywordHandler) DeleteKeyword(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteKeyword(c.Request().Context(), v, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Keyword deleted")
}
