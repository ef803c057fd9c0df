package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Adheeb11/PropVista/api"
	"github.com/Adheeb11/PropVista/middleware"
	"github.com/Adheeb11/PropVista/utils"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type authView struct {
	base
	Email string
	Next  string
}

// ShowLogin renders the login form.
func ShowLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, "login", authView{
			base: base{Title: "Login", User: middleware.UserFrom(r.Context())},
			Next: r.URL.Query().Get("next"),
		})
	}
}

type loginForm struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// SubmitLogin authenticates against the backend and begins the session.
func SubmitLogin(backend *api.Client, sessions *utils.Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := loginForm{
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
		}
		view := authView{
			base:  base{Title: "Login"},
			Email: form.Email,
			Next:  r.FormValue("next"),
		}

		if err := validate.Struct(form); err != nil {
			view.Error = "Email and password are required."
			render(w, "login", view)
			return
		}

		user, err := backend.Login(r.Context(), form.Email, form.Password)
		if err != nil {
			slog.Info("login rejected", "email", form.Email, "error", err)
			view.Error = userMessage(err, "Login failed. Please try again.")
			render(w, "login", view)
			return
		}

		if err := sessions.Begin(w, *user); err != nil {
			slog.Error("starting session failed", "error", err)
			view.Error = "Could not start your session. Please try again."
			render(w, "login", view)
			return
		}

		next := r.FormValue("next")
		if next == "" || next[0] != '/' {
			next = "/"
		}
		http.Redirect(w, r, next, http.StatusSeeOther)
	}
}

type registerForm struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=8"`
}

// ShowRegister renders the registration form.
func ShowRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, "register", authView{
			base: base{Title: "Register", User: middleware.UserFrom(r.Context())},
		})
	}
}

// SubmitRegister creates the account and logs the new user straight in.
func SubmitRegister(backend *api.Client, sessions *utils.Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		form := registerForm{
			FirstName: r.FormValue("first_name"),
			LastName:  r.FormValue("last_name"),
			Email:     r.FormValue("email"),
			Password:  r.FormValue("password"),
		}
		view := authView{base: base{Title: "Register"}, Email: form.Email}

		if err := validate.Struct(form); err != nil {
			view.Error = "All fields are required; passwords need at least 8 characters."
			render(w, "register", view)
			return
		}

		user, err := backend.Register(r.Context(), form.FirstName, form.LastName, form.Email, form.Password)
		if err != nil {
			slog.Info("registration rejected", "email", form.Email, "error", err)
			view.Error = userMessage(err, "Registration failed. Please try again.")
			render(w, "register", view)
			return
		}

		if err := sessions.Begin(w, *user); err != nil {
			slog.Error("starting session failed", "error", err)
			view.Error = "Account created, but login failed. Please log in."
			render(w, "register", view)
			return
		}
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
	}
}

// Logout ends the session. The mutation is a full replace with nothing.
func Logout(sessions *utils.Sessions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessions.End(w)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// userMessage prefers the backend's own error text over the fallback.
func userMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return fallback
}
