package geo

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nf/geocode"
)

// GoogleProvider is a Provider backed by the Google Geocoding API.
type GoogleProvider struct {
	region    string
	transport http.RoundTripper
}

// NewGoogleProvider returns a provider biased toward region (a ccTLD code
// such as "in"); pass "" for no bias. transport may be nil for the default.
func NewGoogleProvider(region string, transport http.RoundTripper) *GoogleProvider {
	return &GoogleProvider{region: region, transport: transport}
}

func (g *GoogleProvider) Geocode(ctx context.Context, query string) (Point, error) {
	if err := ctx.Err(); err != nil {
		return Point{}, err
	}
	req := &geocode.Request{
		Provider: geocode.GOOGLE,
		Region:   g.region,
		Address:  query,
	}
	result, err := g.lookup(req)
	if err != nil {
		return Point{}, err
	}
	loc := result.Geometry.Location
	return Point{Lat: loc.Lat, Lng: loc.Lng}, nil
}

func (g *GoogleProvider) ReverseGeocode(ctx context.Context, pt Point) (Address, error) {
	if err := ctx.Err(); err != nil {
		return Address{}, err
	}
	req := &geocode.Request{
		Provider: geocode.GOOGLE,
		Region:   g.region,
		Location: &geocode.Point{Lat: pt.Lat, Lng: pt.Lng},
	}
	result, err := g.lookup(req)
	if err != nil {
		return Address{}, err
	}
	return addressFromResult(result), nil
}

// lookup runs the request and returns its best result.
func (g *GoogleProvider) lookup(req *geocode.Request) (*geocode.GoogleResult, error) {
	resp, err := req.Lookup(g.transport)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	if resp.Status == "ZERO_RESULTS" {
		return nil, ErrNoMatch
	}
	if resp.Status != "OK" {
		return nil, fmt.Errorf("geocoding provider status %q", resp.Status)
	}
	if resp.GoogleResponse == nil || len(resp.GoogleResponse.Results) == 0 {
		return nil, ErrNoMatch
	}
	return resp.GoogleResponse.Results[0], nil
}

// addressFromResult picks the component types the picker cares about:
// street number, route, locality, and the administrative levels used for
// the city-or-state fallback.
func addressFromResult(result *geocode.GoogleResult) Address {
	addr := Address{Formatted: result.Address}
	for _, part := range result.AddressParts {
		for _, t := range part.Types {
			switch t {
			case "street_number":
				addr.StreetNumber = part.Name
			case "route":
				addr.Route = part.Name
			case "locality":
				addr.Locality = part.Name
			case "administrative_area_level_2":
				addr.City = part.Name
			case "administrative_area_level_1":
				addr.State = part.Name
			}
		}
	}
	return addr
}
