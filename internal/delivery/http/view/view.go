// Package view maps domain entities to the JSON shapes the API returns.
// Users come in a private and a public variant: the private one is only
// rendered when the visibility policy allows the viewer to see it.
package view

import (
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// FullLocation is the address shape shown to viewers with private access.
type FullLocation struct {
	StreetNumber string `json:"streetNumber"`
	StreetName   string `json:"streetName"`
	City         string `json:"city"`
	District     string `json:"district,omitempty"`
	Region       string `json:"region"`
	Country      string `json:"country"`
	PostCode     string `json:"postcode"`
}

// PartialLocation hides the street-level fields from public viewers.
type PartialLocation struct {
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

func NewFullLocation(l *entity.Location) *FullLocation {
	if l == nil {
		return nil
	}

	return &FullLocation{
		StreetNumber: l.StreetNumber,
		StreetName:   l.StreetName,
		City:         l.City,
		District:     l.District,
		Region:       l.Region,
		Country:      l.Country,
		PostCode:     l.PostCode,
	}
}

func NewPartialLocation(l *entity.Location) *PartialLocation {
	if l == nil {
		return nil
	}

	return &PartialLocation{City: l.City, Region: l.Region, Country: l.Country}
}

// PrivateUser is the self/admin view of an account.
type PrivateUser struct {
	ID          uuid.UUID     `json:"id"`
	Email       string        `json:"email"`
	Role        string        `json:"role"`
	FirstName   string        `json:"firstName"`
	MiddleName  string        `json:"middleName,omitempty"`
	LastName    string        `json:"lastName"`
	Nickname    string        `json:"nickname,omitempty"`
	DateOfBirth time.Time     `json:"dateOfBirth"`
	Phone       string        `json:"phoneNumber,omitempty"`
	Bio         string        `json:"bio,omitempty"`
	Address     *FullLocation `json:"homeAddress"`
	Created     time.Time     `json:"created"`
}

// PublicUser is what any other logged-in user sees.
type PublicUser struct {
	ID         uuid.UUID        `json:"id"`
	FirstName  string           `json:"firstName"`
	MiddleName string           `json:"middleName,omitempty"`
	LastName   string           `json:"lastName"`
	Nickname   string           `json:"nickname,omitempty"`
	Bio        string           `json:"bio,omitempty"`
	Address    *PartialLocation `json:"homeAddress"`
	Created    time.Time        `json:"created"`
}

func NewPrivateUser(u *entity.User) *PrivateUser {
	return &PrivateUser{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role.String(),
		FirstName:   u.FirstName,
		MiddleName:  u.MiddleName,
		LastName:    u.LastName,
		Nickname:    u.Nickname,
		DateOfBirth: u.DateOfBirth,
		Phone:       u.Phone,
		Bio:         u.Bio,
		Address:     NewFullLocation(u.Address),
		Created:     u.Created,
	}
}

func NewPublicUser(u *entity.User) *PublicUser {
	return &PublicUser{
		ID:         u.ID,
		FirstName:  u.FirstName,
		MiddleName: u.MiddleName,
		LastName:   u.LastName,
		Nickname:   u.Nickname,
		Bio:        u.Bio,
		Address:    NewPartialLocation(u.Address),
		Created:    u.Created,
	}
}

// Business is the API shape of a business.
type Business struct {
	ID               uuid.UUID     `json:"id"`
	Name             string        `json:"name"`
	Description      string        `json:"description,omitempty"`
	Type             string        `json:"businessType"`
	Address          *FullLocation `json:"address"`
	PrimaryOwnerID   uuid.UUID     `json:"primaryAdministratorId"`
	AdministratorIDs []uuid.UUID   `json:"administrators"`
	Created          time.Time     `json:"created"`
}

func NewBusiness(b *entity.Business) *Business {
	admins := b.AdministratorIDs
	if admins == nil {
		admins = []uuid.UUID{}
	}

	return &Business{
		ID:               b.ID,
		Name:             b.Name,
		Description:      b.Description,
		Type:             string(b.Type),
		Address:          NewFullLocation(b.Address),
		PrimaryOwnerID:   b.PrimaryOwnerID,
		AdministratorIDs: admins,
		Created:          b.Created,
	}
}

// ProductImage is the API shape of one stored product image.
type ProductImage struct {
	ID        uuid.UUID `json:"id"`
	Filename  string    `json:"filename"`
	IsPrimary bool      `json:"isPrimary"`
}

// Product is the API shape of a catalogue entry.
type Product struct {
	ID                     uuid.UUID       `json:"id"`
	Code                   string          `json:"productCode"`
	Name                   string          `json:"name"`
	Description            string          `json:"description,omitempty"`
	Manufacturer           string          `json:"manufacturer,omitempty"`
	RecommendedRetailPrice *float64        `json:"recommendedRetailPrice"`
	CountryOfSale          string          `json:"countryOfSale"`
	Images                 []*ProductImage `json:"images"`
	Created                time.Time       `json:"created"`
}

func NewProduct(p *entity.Product) *Product {
	images := make([]*ProductImage, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, &ProductImage{ID: img.ID, Filename: img.Filename, IsPrimary: img.IsPrimary})
	}

	return &Product{
		ID:                     p.ID,
		Code:                   p.Code,
		Name:                   p.Name,
		Description:            p.Description,
		Manufacturer:           p.Manufacturer,
		RecommendedRetailPrice: p.RecommendedRetailPrice,
		CountryOfSale:          p.CountryOfSale,
		Images:                 images,
		Created:                p.Created,
	}
}

func NewProducts(products []*entity.Product) []*Product {
	out := make([]*Product, 0, len(products))
	for _, p := range products {
		out = append(out, NewProduct(p))
	}

	return out
}

// InventoryItem is the API shape of an inventory batch.
type InventoryItem struct {
	ID                uuid.UUID  `json:"id"`
	ProductID         uuid.UUID  `json:"productId"`
	Quantity          int        `json:"quantity"`
	RemainingQuantity int        `json:"remainingQuantity"`
	PricePerItem      *float64   `json:"pricePerItem"`
	TotalPrice        *float64   `json:"totalPrice"`
	Manufactured      *time.Time `json:"manufactured"`
	SellBy            *time.Time `json:"sellBy"`
	BestBefore        *time.Time `json:"bestBefore"`
	Expires           time.Time  `json:"expires"`
	Created           time.Time  `json:"created"`
}

func NewInventoryItem(it *entity.InventoryItem) *InventoryItem {
	return &InventoryItem{
		ID:                it.ID,
		ProductID:         it.ProductID,
		Quantity:          it.Quantity,
		RemainingQuantity: it.RemainingQuantity,
		PricePerItem:      it.PricePerItem,
		TotalPrice:        it.TotalPrice,
		Manufactured:      it.Manufactured,
		SellBy:            it.SellBy,
		BestBefore:        it.BestBefore,
		Expires:           it.Expires,
		Created:           it.Created,
	}
}

func NewInventoryItems(items []*entity.InventoryItem) []*InventoryItem {
	out := make([]*InventoryItem, 0, len(items))
	for _, it := range items {
		out = append(out, NewInventoryItem(it))
	}

	return out
}

// SaleItem is the API shape of a sale listing.
type SaleItem struct {
	ID              uuid.UUID `json:"id"`
	InventoryItemID uuid.UUID `json:"inventoryItemId"`
	BusinessID      uuid.UUID `json:"businessId"`
	Quantity        int       `json:"quantity"`
	Price           float64   `json:"price"`
	MoreInfo        string    `json:"moreInfo,omitempty"`
	Closes          time.Time `json:"closes"`
	Created         time.Time `json:"created"`
}

func NewSaleItem(s *entity.SaleItem) *SaleItem {
	return &SaleItem{
		ID:              s.ID,
		InventoryItemID: s.InventoryItemID,
		BusinessID:      s.BusinessID,
		Quantity:        s.Quantity,
		Price:           s.Price,
		MoreInfo:        s.MoreInfo,
		Closes:          s.Closes,
		Created:         s.Created,
	}
}

func NewSaleItems(sales []*entity.SaleItem) []*SaleItem {
	out := make([]*SaleItem, 0, len(sales))
	for _, s := range sales {
		out = append(out, NewSaleItem(s))
	}

	return out
}

// Keyword is the API shape of a pool keyword.
type Keyword struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Created time.Time `json:"created"`
}

func NewKeyword(k *entity.Keyword) *Keyword {
	return &Keyword{ID: k.ID, Name: k.Name, Created: k.Created}
}

func NewKeywords(keywords []*entity.Keyword) []*Keyword {
	out := make([]*Keyword, 0, len(keywords))
	for _, k := range keywords {
		out = append(out, NewKeyword(k))
	}

	return out
}

// MarketplaceCard is the API shape of a card.
type MarketplaceCard struct {
	ID          uuid.UUID  `json:"id"`
	CreatorID   uuid.UUID  `json:"creatorId"`
	Section     string     `json:"section"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Keywords    []*Keyword `json:"keywords"`
	Created     time.Time  `json:"created"`
	Closes      time.Time  `json:"displayPeriodEnd"`
}

func NewMarketplaceCard(c *entity.MarketplaceCard) *MarketplaceCard {
	return &MarketplaceCard{
		ID:          c.ID,
		CreatorID:   c.CreatorID,
		Section:     string(c.Section),
		Title:       c.Title,
		Description: c.Description,
		Keywords:    NewKeywords(c.Keywords),
		Created:     c.Created,
		Closes:      c.Closes,
	}
}

func NewMarketplaceCards(cards []*entity.MarketplaceCard) []*MarketplaceCard {
	out := make([]*MarketplaceCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, NewMarketplaceCard(c))
	}

	return out
}
