// Package picker drives the map-based location picking flow on the
// add-property form. It depends only on injected capabilities (the map
// widget, the geocoding provider, the device locator) so the flow can be
// exercised with test doubles.
package picker

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Adheeb11/PropVista/geo"
	"github.com/Adheeb11/PropVista/models"
)

// Default view when no coordinates are supplied: the continental center.
var defaultCenter = geo.Point{Lat: 20.5937, Lng: 78.9629}

const (
	defaultZoom = 13
	focusZoom   = 15
)

// Map is the widget surface the picker draws on.
type Map interface {
	SetCenter(pt geo.Point, zoom int)
	PlaceMarker(pt geo.Point)
	Marker() (geo.Point, bool)
}

// Locator reports the device's current position; it fails when the
// capability is absent or permission is denied.
type Locator interface {
	CurrentPosition(ctx context.Context) (geo.Point, error)
}

// Picker wires map interactions to the geocoding provider and reports each
// resolved location upward through the OnChange callback. It holds no state
// beyond the widget's marker, an in-flight flag and a dismissable notice.
type Picker struct {
	provider geo.Provider
	widget   Map
	locator  Locator

	// OnChange receives every location the user settles on. Click and
	// drag report twice: coordinates first, then the geocoded breakdown.
	OnChange func(models.LocationDraft)

	loading bool
	notice  string
}

func New(provider geo.Provider, widget Map, locator Locator, onChange func(models.LocationDraft)) *Picker {
	return &Picker{provider: provider, widget: widget, locator: locator, OnChange: onChange}
}

// Init centers the view. With coordinates present the marker is placed
// there; otherwise the map shows the continental default with no marker.
func (p *Picker) Init(lat, lng *float64) {
	if lat == nil || lng == nil {
		p.widget.SetCenter(defaultCenter, defaultZoom)
		return
	}
	pt := geo.Point{Lat: *lat, Lng: *lng}
	p.widget.SetCenter(pt, defaultZoom)
	p.placeMarker(pt)
}

// Click handles a map click: move the marker, then resolve the address.
func (p *Picker) Click(ctx context.Context, pt geo.Point) {
	p.placeMarker(pt)
	p.resolve(ctx, pt)
}

// DragEnd handles the marker settling after a drag; same flow as Click.
func (p *Picker) DragEnd(ctx context.Context, pt geo.Point) {
	p.placeMarker(pt)
	p.resolve(ctx, pt)
}

// Search forward-geocodes a free-text query and focuses its best match.
// On no match the view is left untouched and a notice is raised; a new
// attempt clears any earlier notice. A search issued while another
// provider call is in flight is inert.
func (p *Picker) Search(ctx context.Context, query string) {
	if p.loading || query == "" {
		return
	}
	p.notice = ""
	p.loading = true
	defer func() { p.loading = false }()

	pt, err := p.provider.Geocode(ctx, query)
	if err != nil {
		if errors.Is(err, geo.ErrNoMatch) {
			p.notice = "Location not found. Please try a different search term."
		} else {
			slog.Warn("forward geocode failed", "query", query, "error", err)
			p.notice = "Location search is unavailable right now."
		}
		return
	}
	p.widget.SetCenter(pt, focusZoom)
	p.placeMarker(pt)
}

// UseCurrentLocation focuses the device's reported position. Denial or a
// missing capability raises a notice; no fallback location is chosen.
func (p *Picker) UseCurrentLocation(ctx context.Context) {
	if p.loading {
		return
	}
	if p.locator == nil {
		p.notice = "Geolocation is not supported here."
		return
	}
	p.notice = ""
	p.loading = true
	defer func() { p.loading = false }()

	pt, err := p.locator.CurrentPosition(ctx)
	if err != nil {
		slog.Warn("current position unavailable", "error", err)
		p.notice = "Unable to get your current location."
		return
	}
	p.widget.SetCenter(pt, focusZoom)
	p.placeMarker(pt)
}

// Loading reports whether a provider call is outstanding; callers disable
// the search and locate controls while it is set.
func (p *Picker) Loading() bool { return p.loading }

// Notice returns the current user-visible notice, if any.
func (p *Picker) Notice() string { return p.notice }

// DismissNotice clears the notice without touching any other state.
func (p *Picker) DismissNotice() { p.notice = "" }

// placeMarker moves the marker and reports the bare coordinates so the form
// always holds the latest point even if geocoding later fails.
func (p *Picker) placeMarker(pt geo.Point) {
	p.widget.PlaceMarker(pt)
	p.report(models.LocationDraft{Latitude: pt.Lat, Longitude: pt.Lng})
}

// resolve reverse-geocodes pt and reports the merged tuple. A failed
// reverse lookup keeps the bare coordinates already reported.
func (p *Picker) resolve(ctx context.Context, pt geo.Point) {
	addr, err := p.provider.ReverseGeocode(ctx, pt)
	if err != nil {
		slog.Warn("reverse geocode failed", "lat", pt.Lat, "lng", pt.Lng, "error", err)
		return
	}
	p.report(models.LocationDraft{
		Latitude:  pt.Lat,
		Longitude: pt.Lng,
		Address:   addr.Street(),
		Area:      addr.Locality,
		City:      addr.CityOrState(),
	})
}

func (p *Picker) report(draft models.LocationDraft) {
	if p.OnChange != nil {
		p.OnChange(draft)
	}
}
