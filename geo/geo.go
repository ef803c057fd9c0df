// Package geo translates between coordinates and address text.
package geo

import (
	"context"
	"errors"
	"strings"
)

// ErrNoMatch means the provider resolved the request but found nothing.
var ErrNoMatch = errors.New("geo: no matching location")

// Point is a coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Address is the reverse-geocode breakdown of a point.
type Address struct {
	StreetNumber string `json:"street_number,omitempty"`
	Route        string `json:"route,omitempty"`
	Locality     string `json:"locality,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Formatted    string `json:"formatted,omitempty"`
}

// Street joins the street-level parts into a display address, falling back
// to the provider's formatted string when they are all empty.
func (a *Address) Street() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.StreetNumber, a.Route, a.Locality} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return a.Formatted
	}
	return strings.Join(parts, " ")
}

// CityOrState returns the city name, falling back to the state-level
// administrative name when the provider reports no city.
func (a *Address) CityOrState() string {
	if a.City != "" {
		return a.City
	}
	return a.State
}

// Provider resolves text to coordinates and coordinates to addresses.
// Implementations make a single outbound request per call.
type Provider interface {
	// Geocode resolves a free-text query to its best-matching point.
	// Returns ErrNoMatch when the provider finds no candidate.
	Geocode(ctx context.Context, query string) (Point, error)
	// ReverseGeocode resolves a point to an address breakdown.
	ReverseGeocode(ctx context.Context, pt Point) (Address, error)
}
