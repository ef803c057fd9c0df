package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Adheeb11/PropVista/api"
	"github.com/Adheeb11/PropVista/listings"
	"github.com/Adheeb11/PropVista/middleware"
	"github.com/Adheeb11/PropVista/models"
	"github.com/gorilla/mux"
)

type propertyFormView struct {
	base
	Form   models.PropertyDraft
	Types  []string
	EditID int
}

// ShowAddProperty renders the creation form with the map picker.
func ShowAddProperty() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, "add_property", propertyFormView{
			base:  base{Title: "Add New Property", User: middleware.UserFrom(r.Context())},
			Types: models.PropertyTypes,
		})
	}
}

// SubmitAddProperty validates the draft and persists it through the
// backend, with the session user as owner.
func SubmitAddProperty(backend *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.UserFrom(r.Context())
		draft := draftFromForm(r, user.ID)

		view := propertyFormView{
			base:  base{Title: "Add New Property", User: user},
			Form:  draft,
			Types: models.PropertyTypes,
		}

		if msg := validateDraft(draft); msg != "" {
			view.Error = msg
			render(w, "add_property", view)
			return
		}

		created, err := backend.CreateProperty(r.Context(), draft)
		if err != nil {
			slog.Error("creating property failed", "owner", user.ID, "error", err)
			view.Error = userMessage(err, "Failed to add property. Please try again.")
			render(w, "add_property", view)
			return
		}

		slog.Info("property created", "id", created.ID, "owner", user.ID)
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

type dashboardView struct {
	base
	Properties []models.Property
	Total      int
	BuyCount   int
	RentCount  int
	Greeting   string
	Admin      bool
	Loaded     bool
}

// DashboardPage lists the session user's own properties with summary
// counts, newest first.
func DashboardPage(backend *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.UserFrom(r.Context())
		view := dashboardView{
			base:     base{Title: "Dashboard", User: user},
			Greeting: user.DisplayName(),
			Admin:    user.IsAdmin(),
		}
		if r.URL.Query().Get("delete_failed") == "1" {
			view.Error = "Failed to delete property. Please try again."
		}

		props, err := backend.ListOwnerProperties(r.Context(), user.ID)
		if err != nil {
			slog.Error("fetching owner properties failed", "owner", user.ID, "error", err)
			view.Error = "Failed to load your properties. Please try again."
			render(w, "dashboard", view)
			return
		}

		view.Properties = listings.Apply(props, listings.Filter{}, listings.SortByDate)
		view.Total = len(props)
		view.BuyCount = listings.CountByType(props, models.TypeBuy)
		view.RentCount = listings.CountByType(props, models.TypeRent)
		view.Loaded = true
		render(w, "dashboard", view)
	}
}

// ShowEditProperty renders the edit form prefilled from the listing.
func ShowEditProperty(backend *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.UserFrom(r.Context())
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			http.NotFound(w, r)
			return
		}

		prop, err := backend.GetProperty(r.Context(), id)
		if err != nil {
			slog.Error("fetching property failed", "id", id, "error", err)
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}

		render(w, "edit_property", propertyFormView{
			base: base{Title: "Edit Property", User: user},
			Form: models.PropertyDraft{
				Title:       prop.Title,
				Price:       float64(prop.Price),
				City:        prop.City,
				Type:        prop.Type,
				Description: prop.Description,
				Features:    prop.Features,
				Images:      prop.Images,
				Address:     prop.Address,
				Area:        prop.Area,
				Latitude:    prop.Latitude,
				Longitude:   prop.Longitude,
			},
			Types:  models.PropertyTypes,
			EditID: id,
		})
	}
}

// SubmitEditProperty replaces the listing's fields with the form's.
func SubmitEditProperty(backend *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := middleware.UserFrom(r.Context())
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			http.NotFound(w, r)
			return
		}

		draft := draftFromForm(r, user.ID)
		view := propertyFormView{
			base:   base{Title: "Edit Property", User: user},
			Form:   draft,
			Types:  models.PropertyTypes,
			EditID: id,
		}

		if msg := validateDraft(draft); msg != "" {
			view.Error = msg
			render(w, "edit_property", view)
			return
		}

		if _, err := backend.UpdateProperty(r.Context(), id, draft); err != nil {
			slog.Error("updating property failed", "id", id, "error", err)
			view.Error = userMessage(err, "Failed to update property. Please try again.")
			render(w, "edit_property", view)
			return
		}
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

// DeleteProperty removes a listing and returns to the dashboard. A backend
// failure redirects with a flag the dashboard surfaces as an error.
func DeleteProperty(backend *api.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(mux.Vars(r)["id"])
		if err != nil {
			http.NotFound(w, r)
			return
		}
		if err := backend.DeleteProperty(r.Context(), id); err != nil {
			slog.Error("deleting property failed", "id", id, "error", err)
			http.Redirect(w, r, "/dashboard?delete_failed=1", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

// draftFromForm builds the draft from form fields. Features arrive
// comma-separated, images one URL per line.
func draftFromForm(r *http.Request, ownerID int) models.PropertyDraft {
	price, _ := strconv.ParseFloat(r.FormValue("price"), 64)
	draft := models.PropertyDraft{
		Title:       strings.TrimSpace(r.FormValue("title")),
		Price:       price,
		City:        strings.TrimSpace(r.FormValue("city")),
		Type:        r.FormValue("type"),
		Description: strings.TrimSpace(r.FormValue("description")),
		Features:    splitList(r.FormValue("features"), ","),
		Images:      splitList(r.FormValue("images"), "\n"),
		Address:     strings.TrimSpace(r.FormValue("address")),
		Area:        strings.TrimSpace(r.FormValue("area")),
		Owner:       ownerID,
	}
	if lat := parseOptionalFloat(r.FormValue("latitude")); lat != nil {
		draft.Latitude = lat
	}
	if lng := parseOptionalFloat(r.FormValue("longitude")); lng != nil {
		draft.Longitude = lng
	}
	return draft
}

func validateDraft(draft models.PropertyDraft) string {
	if err := validate.Struct(draft); err != nil {
		return "Title, price, city, type and description are required; price cannot be negative."
	}
	if !models.ValidPropertyType(draft.Type) {
		return "Please choose a valid property type."
	}
	return ""
}

func splitList(raw, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, sep) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
