package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a catalogue entry belonging to one business. The product
// stores its owning business id; the business's catalogue is derived by
// querying products, so there is no back-pointer to maintain.
type Product struct {
	ID                     uuid.UUID
	BusinessID             uuid.UUID
	Code                   string // unique per business, pattern [-A-Z0-9]{1,15}
	Name                   string
	Description            string   // optional
	Manufacturer           string   // optional
	RecommendedRetailPrice *float64 // nullable, 0 <= p < 10000
	CountryOfSale          string   // copied from the business address at creation
	Images                 []*ProductImage
	Created                time.Time
}

// ProductImage is one stored image of a product. The bytes live in the
// file storage collaborator; this record carries only the keys.
type ProductImage struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Filename  string
	IsPrimary bool
	Created   time.Time
}

// ProductParams carries the raw fields for adding a product to a catalogue.
type ProductParams struct {
	Business               *Business
	Code                   string
	Name                   string
	Description            string
	Manufacturer           string
	RecommendedRetailPrice *float64
}

// ProductUpdate carries replacement values for a catalogue modification.
type ProductUpdate struct {
	Code                   string
	Name                   string
	Description            string
	Manufacturer           string
	RecommendedRetailPrice *float64
}

// NewProduct validates every field and derives the country of sale from
// the owning business's address.
func NewProduct(p ProductParams) (*Product, error) {
	if p.Business == nil {
		return nil, validationError("product must belong to a business")
	}
	if err := validateProductFields(p.Code, p.Name, p.Description, p.Manufacturer, p.RecommendedRetailPrice); err != nil {
		return nil, err
	}

	return &Product{
		BusinessID:             p.Business.ID,
		Code:                   p.Code,
		Name:                   p.Name,
		Description:            p.Description,
		Manufacturer:           p.Manufacturer,
		RecommendedRetailPrice: p.RecommendedRetailPrice,
		CountryOfSale:          p.Business.Address.Country,
		Created:                time.Now(),
	}, nil
}

// ApplyUpdate validates the replacement values and mutates the product.
// Code uniqueness within the catalogue is the caller's responsibility.
func (p *Product) ApplyUpdate(u ProductUpdate) error {
	if err := validateProductFields(u.Code, u.Name, u.Description, u.Manufacturer, u.RecommendedRetailPrice); err != nil {
		return err
	}

	p.Code = u.Code
	p.Name = u.Name
	p.Description = u.Description
	p.Manufacturer = u.Manufacturer
	p.RecommendedRetailPrice = u.RecommendedRetailPrice

	return nil
}

func validateProductFields(code, name, description, manufacturer string, rrp *float64) error {
	if !productCodePattern.MatchString(code) {
		return validationError("product code must be 1-15 characters of A-Z, 0-9 or hyphen")
	}
	if name == "" {
		return validationError("product name is required")
	}
	if len(name) > maxProductName || !businessPattern.MatchString(name) {
		return validationError("product name format is invalid")
	}
	if description != "" && len(description) > maxDescriptionLength {
		return validationError("product description must be at most 200 characters")
	}
	if manufacturer != "" && (len(manufacturer) > maxManufacturer || !businessPattern.MatchString(manufacturer)) {
		return validationError("manufacturer format is invalid")
	}
	if rrp != nil && (*rrp < 0 || *rrp >= maxRetailPrice) {
		return validationError("recommended retail price must be between 0 and 10000")
	}

	return nil
}

// PrimaryImage returns the product's primary image, or nil when the
// product has no images.
func (p *Product) PrimaryImage() *ProductImage {
	for _, img := range p.Images {
		if img.IsPrimary {
			return img
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0]
	}

	return nil
}

// SetPrimaryImage marks the given image as primary and clears the flag on
// every other image. Unknown image ids fail.
func (p *Product) SetPrimaryImage(imageID uuid.UUID) error {
	found := false
	for _, img := range p.Images {
		img.IsPrimary = img.ID == imageID
		if img.IsPrimary {
			found = true
		}
	}
	if !found {
		return validationError("image does not belong to this product")
	}

	return nil
}

// RemoveImage detaches an image record from the product. Unknown image ids
// fail. Deleting the stored bytes is the caller's responsibility.
func (p *Product) RemoveImage(imageID uuid.UUID) (*ProductImage, error) {
	for i, img := range p.Images {
		if img.ID == imageID {
			p.Images = append(p.Images[:i], p.Images[i+1:]...)
			// Promote a new primary if the removed image was primary.
			if img.IsPrimary && len(p.Images) > 0 {
				p.Images[0].IsPrimary = true
			}

			return img, nil
		}
	}

	return nil, validationError("image does not belong to this product")
}
