package domain

import "context"

// Place is the reverse-geocoded description of a report site.
type Place struct {
	Name             string
	FormattedAddress string
	Confidence       float64 // 0.0–1.0 provider confidence score
}

// Geocoder resolves coordinates to place details for the map panel.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) (Place, error)
}
