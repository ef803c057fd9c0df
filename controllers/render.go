package controllers

import (
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Adheeb11/PropVista/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = map[string]*template.Template{}

var templateFuncs = template.FuncMap{
	"price": func(p models.Price) string {
		return fmt.Sprintf("₹%.0f", float64(p))
	},
	"coord": func(f *float64) string {
		if f == nil {
			return ""
		}
		return strconv.FormatFloat(*f, 'g', -1, 64)
	},
}

func init() {
	pages := []string{
		"home", "listings", "property", "add_property",
		"dashboard", "edit_property", "login", "register",
	}
	for _, name := range pages {
		pageTemplates[name] = template.Must(
			template.New("layout.html").Funcs(templateFuncs).ParseFS(
				templateFS,
				"templates/layout.html",
				"templates/property_form.html",
				"templates/"+name+".html"))
	}
}

// base carries what the layout needs on every page. Each view model embeds
// it; Error is inline form-level text, never a fatal page.
type base struct {
	Title string
	User  *models.User
	Error string
}

func render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := pageTemplates[name]
	if !ok {
		slog.Error("unknown page template", "name", name)
		http.Error(w, "Something went wrong", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		slog.Error("rendering page failed", "name", name, "error", err)
	}
}
