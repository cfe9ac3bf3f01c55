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

// SaleHandler holds dependencies for sale listing handlers.
type SaleHandler struct {
	uc     usecase.SaleUsecase
	logger *slog.Logger
}

// NewSaleHandler is the constructor for SaleHandler, injected by Fx.
func NewSaleHandler(uc usecase.SaleUsecase, logger *slog.Logger) *SaleHandler {
	return &SaleHandler{uc: uc, logger: logger}
}

type saleItemRequest struct {
	InventoryItemID uuid.UUID `json:"inventoryItemId" validate:"required"`
	Quantity        int       `json:"quantity" validate:"required"`
	Price           float64   `json:"price"`
	MoreInfo        string    `json:"moreInfo"`
	Closes          string    `json:"closes"`
}

// CreateListing puts part of an inventory batch up for sale.
func (h *SaleHandler) CreateListing(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req saleItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale listing input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	closes, err := parseDate(req.Closes)
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidation, "closes must be yyyy-mm-dd")
	}

	sale, err := h.uc.CreateListing(c.Request().Context(), v, businessID, usecase.SaleItemInput{
		InventoryItemID: req.InventoryItemID,
		Quantity:        req.Quantity,
		Price:           req.Price,
		MoreInfo:        req.MoreInfo,
		Closes:          closes,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view.NewSaleItem(sale), "Sale listing created")
}

// GetListings lists the business's sale listings, sorted and paginated.
func (h *SaleHandler) GetListings(c echo.Context) error {
	if _, err := viewer(c); err != nil {
		return err
	}
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	sales, err := h.uc.GetListings(c.Request().Context(), businessID, listQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view.NewSaleItems(sales), "")
}
