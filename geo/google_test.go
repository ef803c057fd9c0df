package geo

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
)

// bodyTransport answers every geocoding request with a canned body.
type bodyTransport struct {
	body    string
	lastURL string
}

func (b *bodyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	b.lastURL = req.URL.String()
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       newStringBody(b.body),
		Request:    req,
	}, nil
}

func newStringBody(s string) *stringBody { return &stringBody{Reader: strings.NewReader(s)} }

type stringBody struct{ *strings.Reader }

func (*stringBody) Close() error { return nil }

const forwardBody = `{
  "status": "OK",
  "results": [{
    "formatted_address": "Bandra West, Mumbai, Maharashtra, India",
    "geometry": {"location": {"lat": 19.0596, "lng": 72.8295}},
    "address_components": []
  }]
}`

const reverseBody = `{
  "status": "OK",
  "results": [{
    "formatted_address": "12 Hill Road, Bandra West, Mumbai, Maharashtra, India",
    "geometry": {"location": {"lat": 19.0596, "lng": 72.8295}},
    "address_components": [
      {"long_name": "12", "short_name": "12", "types": ["street_number"]},
      {"long_name": "Hill Road", "short_name": "Hill Rd", "types": ["route"]},
      {"long_name": "Bandra West", "short_name": "Bandra W", "types": ["locality", "political"]},
      {"long_name": "Mumbai", "short_name": "Mumbai", "types": ["administrative_area_level_2", "political"]},
      {"long_name": "Maharashtra", "short_name": "MH", "types": ["administrative_area_level_1", "political"]}
    ]
  }]
}`

const noCityBody = `{
  "status": "OK",
  "results": [{
    "formatted_address": "Somewhere, Maharashtra, India",
    "geometry": {"location": {"lat": 19.5, "lng": 73.5}},
    "address_components": [
      {"long_name": "Maharashtra", "short_name": "MH", "types": ["administrative_area_level_1", "political"]}
    ]
  }]
}`

func TestGeocodeForward(t *testing.T) {
	transport := &bodyTransport{body: forwardBody}
	provider := NewGoogleProvider("in", transport)

	pt, err := provider.Geocode(context.Background(), "Bandra West")
	if err != nil {
		t.Fatal(err)
	}
	if pt.Lat != 19.0596 || pt.Lng != 72.8295 {
		t.Errorf("got %+v", pt)
	}
	if !strings.Contains(transport.lastURL, "Bandra") {
		t.Errorf("query not sent: %s", transport.lastURL)
	}
}

func TestGeocodeNoMatch(t *testing.T) {
	transport := &bodyTransport{body: `{"status": "ZERO_RESULTS", "results": []}`}
	provider := NewGoogleProvider("", transport)

	_, err := provider.Geocode(context.Background(), "nowhere at all")
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("want ErrNoMatch, got %v", err)
	}
}

func TestReverseGeocodeBreakdown(t *testing.T) {
	transport := &bodyTransport{body: reverseBody}
	provider := NewGoogleProvider("in", transport)

	addr, err := provider.ReverseGeocode(context.Background(), Point{Lat: 19.0596, Lng: 72.8295})
	if err != nil {
		t.Fatal(err)
	}
	if addr.StreetNumber != "12" || addr.Route != "Hill Road" || addr.Locality != "Bandra West" {
		t.Errorf("street parts: %+v", addr)
	}
	if addr.City != "Mumbai" || addr.State != "Maharashtra" {
		t.Errorf("administrative parts: %+v", addr)
	}
	if got := addr.Street(); got != "12 Hill Road Bandra West" {
		t.Errorf("Street() = %q", got)
	}
	if got := addr.CityOrState(); got != "Mumbai" {
		t.Errorf("CityOrState() = %q", got)
	}
}

func TestReverseGeocodeCityFallsBackToState(t *testing.T) {
	transport := &bodyTransport{body: noCityBody}
	provider := NewGoogleProvider("in", transport)

	addr, err := provider.ReverseGeocode(context.Background(), Point{Lat: 19.5, Lng: 73.5})
	if err != nil {
		t.Fatal(err)
	}
	if got := addr.CityOrState(); got != "Maharashtra" {
		t.Errorf("CityOrState() = %q, want state fallback", got)
	}
	if got := addr.Street(); got != "Somewhere, Maharashtra, India" {
		t.Errorf("Street() should fall back to formatted address, got %q", got)
	}
}

func TestGeocodeHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	provider := NewGoogleProvider("", &bodyTransport{body: forwardBody})
	if _, err := provider.Geocode(ctx, "anywhere"); err == nil {
		t.Fatal("expected context error")
	}
}
