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
	"github.com/recetario/recetario-go/internal/config"
	"github.com/recetario/recetario-go/internal/handler"
	"github.com/recetario/recetario-go/internal/middleware"
	"github.com/recetario/recetario-go/internal/repository"
	"github.com/recetario/recetario-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTRefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	ingredientRepo := repository.NewIngredientRepository(db)
	ingredientService := service.NewIngredientService(ingredientRepo)
	ingredientHandler := handler.NewIngredientHandler(ingredientService)

	recipeRepo := repository.NewRecipeRepository(db)
	recipeService := service.NewRecipeService(recipeRepo, ingredientRepo)
	recipeHandler := handler.NewRecipeHandler(recipeService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/v1/auth/register", authHandler.HandleRegister)
		r.Post("/api/v1/auth/login", authHandler.HandleLogin)
		r.Post("/api/v1/auth/refresh-token", authHandler.HandleRefreshToken)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))

		r.Get("/api/v1/recipes", recipeHandler.HandleList)
		r.Post("/api/v1/recipes", recipeHandler.HandleCreate)
		r.Get("/api/v1/recipes/{id}", recipeHandler.HandleGet)
		r.Put("/api/v1/recipes/{id}", recipeHandler.HandleUpdate)
		r.Delete("/api/v1/recipes/{id}", recipeHandler.HandleDelete)

		r.Get("/api/v1/ingredients", ingredientHandler.HandleList)
		r.Get("/api/v1/ingredients/search", ingredientHandler.HandleSearch)
		r.Get("/api/v1/ingredients/{id}", ingredientHandler.HandleGet)
	})

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
