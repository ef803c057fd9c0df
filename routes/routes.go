package routes

import (
	"github.com/Adheeb11/PropVista/api"
	"github.com/Adheeb11/PropVista/controllers"
	"github.com/Adheeb11/PropVista/geo"
	"github.com/Adheeb11/PropVista/middleware"
	"github.com/Adheeb11/PropVista/utils"
	"github.com/gorilla/mux"
)

func Routes(router *mux.Router, backend *api.Client, sessions *utils.Sessions, geocoder geo.Provider) {
	router.Use(middleware.RequestID, middleware.Logging, middleware.Recover)
	router.Use(middleware.WithSession(sessions))

	router.PathPrefix("/static/").Handler(controllers.Static()).Methods("GET")

	// Public pages
	router.HandleFunc("/", controllers.HomePage(backend)).Methods("GET")
	router.HandleFunc("/listings", controllers.ListingsPage(backend)).Methods("GET")
	router.HandleFunc("/property/{id:[0-9]+}", controllers.PropertyDetailPage(backend)).Methods("GET")
	router.HandleFunc("/property/{id:[0-9]+}/contact", controllers.SubmitContact(backend)).Methods("POST")

	// Auth
	router.HandleFunc("/login", controllers.ShowLogin()).Methods("GET")
	router.HandleFunc("/login", controllers.SubmitLogin(backend, sessions)).Methods("POST")
	router.HandleFunc("/register", controllers.ShowRegister()).Methods("GET")
	router.HandleFunc("/register", controllers.SubmitRegister(backend, sessions)).Methods("POST")
	router.HandleFunc("/logout", controllers.Logout(sessions)).Methods("POST")

	// Pages that require a session
	authenticated := router.NewRoute().Subrouter()
	authenticated.Use(middleware.RequireSession)

	authenticated.HandleFunc("/add-property", controllers.ShowAddProperty()).Methods("GET")
	authenticated.HandleFunc("/add-property", controllers.SubmitAddProperty(backend)).Methods("POST")
	authenticated.HandleFunc("/dashboard", controllers.DashboardPage(backend)).Methods("GET")
	authenticated.HandleFunc("/property/{id:[0-9]+}/edit", controllers.ShowEditProperty(backend)).Methods("GET")
	authenticated.HandleFunc("/property/{id:[0-9]+}/edit", controllers.SubmitEditProperty(backend)).Methods("POST")
	authenticated.HandleFunc("/property/{id:[0-9]+}/delete", controllers.DeleteProperty(backend)).Methods("POST")

	// Map picker endpoints used by the add/edit property forms
	authenticated.HandleFunc("/geo/pick", controllers.GeoPick(geocoder)).Methods("POST")
	authenticated.HandleFunc("/geo/search", controllers.GeoSearch(geocoder)).Methods("GET")
}
