package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/delivery/http/view"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// InventoryHandler holds dependencies for inventory handlers.
type InventoryHandler struct {
	uc     usecase.InventoryUsecase
	logger *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler, injected by Fx.
func NewInventoryHandler(uc usecase.InventoryUsecase, logger *slog.Logger) *InventoryHandler {
	return &InventoryHandler{uc: uc, logger: logger}
}

type inventoryItemRequest struct {
	ProductID    uuid.UUID `json:"productId" validate:"required"`
	Quantity     int       `json:"quantity" validate:"required"`
	PricePerItem *float64  `json:"pricePerItem"`
	TotalPrice   *float64  `json:"totalPrice"`
	Manufactured string    `json:"manufactured"`
	SellBy       string    `json:"sellBy"`
	BestBefore   string    `json:"bestBefore"`
	Expires      string    `json:"expires" validate:"required"`
}

func (r inventoryItemRequest) toInput() (usecase.InventoryItemInput, error) {
	manufactured, err := parseDate(r.Manufactured)
	if err != nil {
		return usecase.InventoryItemInput{}, errors.Wrap(domainerrors.ErrValidation, "manufactured must be yyyy-mm-dd")
	}
	sellBy, err := parseDate(r.SellBy)
	if err != nil {
		return usecase.InventoryItemInput{}, errors.Wrap(domainerrors.ErrValidation, "sellBy must be yyyy-mm-dd")
	}
	bestBefore, err := parseDate(r.BestBefore)
	if err != nil {
		return usecase.InventoryItemInput{}, errors.Wrap(domainerrors.ErrValidation, "bestBefore must be yyyy-mm-dd")
	}
	expires, err := time.Parse(dateLayout, r.Expires)
	if err != nil {
		return usecase.InventoryItemInput{}, errors.Wrap(domainerrors.ErrValidation, "expires must be yyyy-mm-dd")
	}

	return usecase.InventoryItemInput{
		ProductID:    r.ProductID,
		Quantity:     r.Quantity,
		PricePerItem: r.PricePerItem,
		TotalPrice:   r.TotalPrice,
		Manufactured: manufactured,
		SellBy:       sellBy,
		BestBefore:   bestBefore,
		Expires:      expires,
	}, nil
}

// AddItem creates an inventory entry for a catalogue product.
func (h *InventoryHandler) AddItem(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req inventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return err
	}

	item, err := h.uc.AddItem(c.Request().Context(), v, businessID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view.NewInventoryItem(item), "Inventory item added")
}

// GetInventory lists the business's inventory, sorted and paginated.
func (h *InventoryHandler) GetInventory(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.uc.GetInventory(c.Request().Context(), v, businessID, listQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view.NewInventoryItems(items), "")
}

// ModifyItem replaces an inventory item's fields.
func (h *InventoryHandler) ModifyItem(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "inventoryItemId")
	if err != nil {
		return err
	}

	var req inventoryItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return err
	}

	if err := h.uc.ModifyItem(c.Request().Context(), v, businessID, itemID, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Inventory item modified")
}
