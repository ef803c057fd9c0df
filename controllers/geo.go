package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Adheeb11/PropVista/geo"
	"github.com/Adheeb11/PropVista/models"
	"github.com/Adheeb11/PropVista/picker"
)

// mapView is the picker.Map capability rendered back to the browser as
// JSON; the page script applies center/marker to the visible widget.
type mapView struct {
	Center   *geo.Point `json:"center,omitempty"`
	Zoom     int        `json:"zoom,omitempty"`
	MarkerAt *geo.Point `json:"marker,omitempty"`
}

func (m *mapView) SetCenter(pt geo.Point, zoom int) {
	m.Center = &pt
	m.Zoom = zoom
}

func (m *mapView) PlaceMarker(pt geo.Point) {
	m.MarkerAt = &pt
}

func (m *mapView) Marker() (geo.Point, bool) {
	if m.MarkerAt == nil {
		return geo.Point{}, false
	}
	return *m.MarkerAt, true
}

type geoResponse struct {
	Map      *mapView              `json:"map"`
	Location *models.LocationDraft `json:"location,omitempty"`
	Notice   string                `json:"notice,omitempty"`
}

// runPicker runs one picker operation against a fresh view-model map and
// captures the last reported location. The locator is nil here: the browser
// owns navigator.geolocation, and the coordinates it grants arrive through
// GeoPick like any other marker placement. The picker's Locator capability
// is for embedders that do have a device-side position source.
func runPicker(provider geo.Provider, op func(p *picker.Picker)) geoResponse {
	view := &mapView{}
	resp := geoResponse{Map: view}
	p := picker.New(provider, view, nil, func(draft models.LocationDraft) {
		resp.Location = &draft
	})
	op(p)
	resp.Notice = p.Notice()
	return resp
}

// GeoPick handles a map click, a marker drag-end, or browser-provided
// geolocation coordinates: place the marker and reverse-geocode it.
func GeoPick(provider geo.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lat, latErr := strconv.ParseFloat(r.FormValue("lat"), 64)
		lng, lngErr := strconv.ParseFloat(r.FormValue("lng"), 64)
		if latErr != nil || lngErr != nil {
			http.Error(w, "lat and lng are required", http.StatusBadRequest)
			return
		}

		resp := runPicker(provider, func(p *picker.Picker) {
			p.Click(r.Context(), geo.Point{Lat: lat, Lng: lng})
		})
		writeJSON(w, resp)
	}
}

// GeoSearch forward-geocodes a free-text query and reports where the map
// should focus; a miss leaves the map untouched and carries a notice.
func GeoSearch(provider geo.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			http.Error(w, "q is required", http.StatusBadRequest)
			return
		}

		resp := runPicker(provider, func(p *picker.Picker) {
			p.Search(r.Context(), query)
		})
		writeJSON(w, resp)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encoding geo response failed", "error", err)
	}
}
