package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/Adheeb11/PropVista/api"
	"github.com/Adheeb11/PropVista/config"
	"github.com/Adheeb11/PropVista/geo"
	"github.com/Adheeb11/PropVista/routes"
	"github.com/Adheeb11/PropVista/utils"
	"github.com/gorilla/mux"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"
)

func setupLogger(level slog.Level) {
	handler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
	})
	slog.SetDefault(slog.New(handler))
}

func setupRouter(backend *api.Client, sessions *utils.Sessions, geocoder geo.Provider) *mux.Router {
	router := mux.NewRouter()
	routes.Routes(router, backend, sessions, geocoder)
	return router
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	setupLogger(cfg.LogLevel)

	backend := api.NewClient(cfg.BackendURL)
	sessions := utils.NewSessions(cfg.SessionSecret)
	geocoder := geo.NewGoogleProvider(cfg.GeoRegion, nil)

	router := setupRouter(backend, sessions, geocoder)

	corsOptions := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	handler := corsOptions.Handler(router)

	server := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		slog.Info("server running", "port", cfg.Port, "backend", cfg.BackendURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	<-sigCh

	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Error during server shutdown: %v", err)
	}
	slog.Info("server gracefully stopped")
}
