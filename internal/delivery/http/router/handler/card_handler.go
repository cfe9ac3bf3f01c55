package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/delivery/http/view"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CardHandler holds dependencies for marketplace card handlers.
type CardHandler struct {
	uc     usecase.CardUsecase
	logger *slog.Logger
}

// NewCardHandler is the constructor for CardHandler, injected by Fx.
func NewCardHandler(uc usecase.CardUsecase, logger *slog.Logger) *CardHandler {
	return &CardHandler{uc: uc, logger: logger}
}

type createCardRequest struct {
	Section     string      `json:"section" validate:"required"`
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	Closes      string      `json:"closes"`
	KeywordIDs  []uuid.UUID `json:"keywordIds"`
}

// CreateCard posts a card in the logged-in user's name.
func (h *CardHandler) CreateCard(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}

	var req createCardRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid card input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	closes, err := parseDate(req.Closes)
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidation, "closes must be yyyy-mm-dd")
	}

	card, err := h.uc.CreateCard(c.Request().Context(), v, usecase.CreateCardInput{
		Section:     req.Section,
		Title:       req.Title,
		Description: req.Description,
		Closes:      closes,
		KeywordIDs:  req.KeywordIDs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view.NewMarketplaceCard(card), "Card created")
}

// GetCards lists one section's cards, sorted and paginated.
func (h *CardHandler) GetCards(c echo.Context) error {
	if _, err := viewer(c); err != nil {
		return err
	}

	cards, err := h.uc.GetCards(c.Request().Context(), c.QueryParam("section"), listQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view.NewMarketplaceCards(cards), "")
}

// GetCard returns one card.
func (h *CardHandler) GetCard(c echo.Context) error {
	if _, err := viewer(c); err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	card, err := h.uc.GetCard(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view.NewMarketplaceCard(card), "")
}

// DeleteCard removes a card.
func (h *CardHandler) DeleteCard(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteCard(c.Request().Context(), v, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Card deleted")
}

// ExtendDisplayPeriod pushes a card's closing date out by another display
// period.
func (h *CardHandler) ExtendDisplayPeriod(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	card, err := h.uc.ExtendDisplayPeriod(c.Request().Context(), v, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view.NewMarketplaceCard(card), "Card display period extended")
}
