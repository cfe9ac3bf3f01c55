package handler

import (
	"io"
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/delivery/http/view"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/errors"
	"bazaar/internal/usecase"
	"bazaar/internal/util"

	"github.com/labstack/echo/v4"
)

// CatalogueHandler holds dependencies for product catalogue handlers.
type CatalogueHandler struct {
	uc     usecase.CatalogueUsecase
	logger *slog.Logger
}

// NewCatalogueHandler is the constructor for CatalogueHandler, injected by Fx.
func NewCatalogueHandler(uc usecase.CatalogueUsecase, logger *slog.Logger) *CatalogueHandler {
	return &CatalogueHandler{uc: uc, logger: logger}
}

type productRequest struct {
	Code                   string   `json:"id" validate:"required"`
	Name                   string   `json:"name" validate:"required"`
	Description            string   `json:"description"`
	Manufacturer           string   `json:"manufacturer"`
	RecommendedRetailPrice *float64 `json:"recommendedRetailPrice"`
}

func (r productRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Code:                   r.Code,
		Name:                   r.Name,
		Description:            r.Description,
		Manufacturer:           r.Manufacturer,
		RecommendedRetailPrice: r.RecommendedRetailPrice,
	}
}

// AddProduct creates a product in the business's catalogue.
func (h *CatalogueHandler) AddProduct(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.AddProduct(c.Request().Context(), v, businessID, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view.NewProduct(product), "Product added to catalogue")
}

// GetCatalogue lists the business's products, sorted and paginated.
func (h *CatalogueHandler) GetCatalogue(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	products, err := h.uc.GetCatalogue(c.Request().Context(), v, businessID, listQuery(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view.NewProducts(products), "")
}

// ModifyProduct replaces a product's fields.
func (h *CatalogueHandler) ModifyProduct(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.uc.ModifyProduct(c.Request().Context(), v, businessID, productID, req.toInput()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product modified")
}

// AddImage accepts a multipart upload and stores it as a product image.
func (h *CatalogueHandler) AddImage(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("filename")
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidation, "image file is missing from the upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "read uploaded file")
	}

	contentType, err := util.DetectImageType(data)
	if err != nil {
		return err
	}

	image, err := h.uc.AddProductImage(c.Request().Context(), v, businessID, productID, usecase.ImageUpload{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view.ProductImage{
		ID: image.ID, Filename: image.Filename, IsPrimary: image.IsPrimary,
	}, "Image added to product")
}

// GetImage streams a stored product image back to the client.
func (h *CatalogueHandler) GetImage(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}
	imageID, err := pathID(c, "imageId")
	if err != nil {
		return err
	}

	_, data, err := h.uc.LoadProductImage(c.Request().Context(), v, businessID, productID, imageID)
	if err != nil {
		return errors.WithStack(err)
	}

	contentType, err := util.DetectImageType(data)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, contentType, data)
}

// MakePrimary marks an image as the product's primary one.
func (h *CatalogueHandler) MakePrimary(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}
	imageID, err := pathID(c, "imageId")
	if err != nil {
		return err
	}

	if err := h.uc.SetPrimaryImage(c.Request().Context(), v, businessID, productID, imageID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Primary image updated")
}

// DeleteImage removes a product image.
func (h *CatalogueHandler) DeleteImage(c echo.Context) error {
	v, err := viewer(c)
	if err != nil {
		return err
	}
	businessID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	productID, err := pathID(c, "productId")
	if err != nil {
		return err
	}
	imageID, err := pathID(c, "imageId")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProductImage(c.Request().Context(), v, businessID, productID, imageID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Image deleted")
}
