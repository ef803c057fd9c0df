package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Adheeb11/PropVista/api"
	"github.com/Adheeb11/PropVista/listings"
	"github.com/Adheeb11/PropVista/middleware"
	"github.com/Adheeb11/PropVista/models"
	"github.com/gorilla/mux"
)

// amenityOptions are the filter checkboxes offered on the listings page.
var amenityOptions = []string{"Gym", "Parking", "Pool", "Sea View", "Garden", "WiFi", "Furnished"}

type homeView struct {
	base
	Featured []models.Property
}

// HomePage shows the newest listings as a featured strip with the search
// box that leads into /listings.
func HomePage(backend *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := homeView{base: base{Title: "PropVista", User: middleware.UserFrom(r.Context())}}

		props, err := backend.ListProperties(r.Context())
		if err != nil {
			slog.Error("fetching properties failed", "error", err)
			view.Error = "Failed to load properties."
			render(w, "home", view)
			return
		}

		featured := listings.Apply(props, listings.Filter{}, listings.SortByDate)
		if len(featured) > 6 {
			featured = featured[:6]
		}
		view.Featured = featured
		render(w, "home", view)
	}
}

type listingsView struct {
	base
	Properties []models.Property
	Filter     listings.Filter
	// Raw bound values echoed back into the form inputs.
	MinPrice  string
	MaxPrice  string
	Sort      string
	Types     []string
	Amenities []string
	Loaded    bool
}

// ListingsPage fetches the full set and derives the displayed subset with
// the filter/sort engine. An empty result renders the "no properties"
// state, distinct from a fetch failure.
func ListingsPage(backend *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := listings.Filter{
			City:      q.Get("city"),
			Type:      q.Get("type"),
			MinPrice:  parseOptionalFloat(q.Get("min_price")),
			MaxPrice:  parseOptionalFloat(q.Get("max_price")),
			Amenities: q["amenities"],
			Search:    q.Get("search"),
		}
		mode := listings.ParseSortMode(q.Get("sort"))

		view := listingsView{
			base:      base{Title: "Browse Properties", User: middleware.UserFrom(r.Context())},
			Filter:    filter,
			MinPrice:  q.Get("min_price"),
			MaxPrice:  q.Get("max_price"),
			Sort:      string(mode),
			Types:     models.PropertyTypes,
			Amenities: amenityOptions,
		}

		props, err := backend.ListProperties(r.Context())
		if err != nil {
			slog.Error("fetching properties failed", "error", err)
			view.Error = "Failed to load properties."
			render(w, "listings", view)
			return
		}

		view.Properties = listings.Apply(props, filter, mode)
		view.Loaded = true
		render(w, "listings", view)
	}
}

type propertyView struct {
	base
	Property *models.Property
	Sent     bool
}

// PropertyDetailPage shows one listing with its gallery and contact form.
func PropertyDetailPage(backend *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			http.NotFound(w, r)
			return
		}

		view := propertyView{base: base{User: middleware.UserFrom(r.Context())}}
		prop, err := backend.GetProperty(r.Context(), id)
		if err != nil {
			slog.Error("fetching property failed", "id", id, "error", err)
			view.base.Title = "Property"
			view.Error = "Failed to load this property."
			render(w, "property", view)
			return
		}
		view.base.Title = prop.Title
		view.Property = prop
		view.Sent = r.URL.Query().Get("sent") == "1"
		render(w, "property", view)
	}
}

// SubmitContact delivers the enquiry form on a listing page.
func SubmitContact(backend *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			http.NotFound(w, r)
			return
		}

		msg := models.ContactMessage{
			Property: id,
			Name:     r.FormValue("name"),
			Email:    r.FormValue("email"),
			Message:  r.FormValue("message"),
		}

		view := propertyView{base: base{Title: "Property", User: middleware.UserFrom(r.Context())}}
		fail := func(text string) {
			prop, err := backend.GetProperty(r.Context(), id)
			if err == nil {
				view.Property = prop
				view.base.Title = prop.Title
			}
			view.Error = text
			render(w, "property", view)
		}

		if err := validate.Struct(msg); err != nil {
			fail("Please fill in your name, a valid email and a message.")
			return
		}
		if err := backend.SendContactMessage(r.Context(), msg); err != nil {
			slog.Error("sending contact message failed", "property", id, "error", err)
			fail(userMessage(err, "Failed to send your message. Please try again."))
			return
		}
		http.Redirect(w, r, "/property/"+strconv.Itoa(id)+"?sent=1", http.StatusSeeOther)
	}
}

// parseOptionalFloat turns a form value into an optional number; blank or
// junk input means "not set".
func parseOptionalFloat(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
