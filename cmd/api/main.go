package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/keyforge/keyforge-go/internal/config"
	"github.com/keyforge/keyforge-go/internal/engine"
	"github.com/keyforge/keyforge-go/internal/handler"
	"github.com/keyforge/keyforge-go/internal/middleware"
	"github.com/keyforge/keyforge-go/internal/repository"
	"github.com/keyforge/keyforge-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	// Engine construction validates the embedded word list; a failure here
	// is a build defect, not a runtime condition.
	eng, err := engine.New()
	if err != nil {
		slog.Error("engine initialization failed", "error", err)
		os.Exit(1)
	}

	genService := service.NewGeneratorService(eng)
	genHandler := handler.NewGeneratorHandler(genService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/v1/generate", genHandler.HandleGenerate)
	r.Post("/api/v1/score", genHandler.HandleScore)

	// Initialize DB-backed routes (auth, presets) if a database is available.
	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed — auth and preset routes disabled", "error", err)
	} else {
		userRepo := repository.NewUserRepository(db)
		authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
		authHandler := handler.NewAuthHandler(authService)

		presetRepo := repository.NewPresetRepository(db)
		presetService := service.NewPresetService(presetRepo, eng)
		presetHandler := handler.NewPresetHandler(presetService)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(5, 10))
			r.Post("/api/v1/auth/register", authHandler.HandleRegister)
			r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.JWTAuth(cfg.JWTSecret))
			r.Get("/api/v1/auth/me", authHandler.HandleMe)

			r.Get("/api/v1/presets", presetHandler.HandleList)
			r.Post("/api/v1/presets", presetHandler.HandleCreate)
			r.Get("/api/v1/presets/{preset_id}", presetHandler.HandleGet)
			r.Put("/api/v1/presets/{preset_id}", presetHandler.HandleUpdate)
			r.Delete("/api/v1/presets/{preset_id}", presetHandler.HandleDelete)
			r.Post("/api/v1/presets/{preset_id}/generate", presetHandler.HandleGenerate)
		})
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
