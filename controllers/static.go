package controllers

import (
	"embed"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// Static serves the picker script and any other bundled assets.
func Static() http.Handler {
	return http.FileServer(http.FS(staticFS))
}
