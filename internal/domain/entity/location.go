package entity

// Location is a validated postal address owned by exactly one User or
// Business and cascade-deleted with its owner. Serialization offers a full
// view and a privacy-reduced partial view (city/region/country only); that
// split lives at the delivery boundary.
type Location struct {
	StreetNumber string
	StreetName   string
	City         string
	Region       string
	Country      string
	PostCode     string
	District     string // optional
}

// LocationParams carries the raw fields for building a Location.
type LocationParams struct {
	StreetNumber string
	StreetName   string
	City         string
	Region       string
	Country      string
	PostCode     string
	District     string
}

// NewLocation validates every field and returns a Location. All fields
// except district are mandatory.
func NewLocation(p LocationParams) (*Location, error) {
	if !streetNumPattern.MatchString(p.StreetNumber) {
		return nil, validationError("street number format is invalid")
	}
	for _, field := range []struct {
		name  string
		value string
	}{
		{"street name", p.StreetName},
		{"city", p.City},
		{"region", p.Region},
		{"country", p.Country},
	} {
		if field.value == "" {
			return nil, validationError(field.name + " is required")
		}
		if len(field.value) > maxPlaceLength || !placePattern.MatchString(field.value) {
			return nil, validationError(field.name + " format is invalid")
		}
	}
	if !postCodePattern.MatchString(p.PostCode) {
		return nil, validationError("post code format is invalid")
	}
	if p.District != "" && (len(p.District) > maxPlaceLength || !placePattern.MatchString(p.District)) {
		return nil, validationError("district format is invalid")
	}

	return &Location{
		StreetNumber: p.StreetNumber,
		StreetName:   p.StreetName,
		City:         p.City,
		Region:       p.Region,
		Country:      p.Country,
		PostCode:     p.PostCode,
		District:     p.District,
	}, nil
}
