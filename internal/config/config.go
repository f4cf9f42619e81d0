package config

import (
	"log/slog"
	"os"
	"time"
)

const devSecret = "dev-secret-change-in-production"

type Config struct {
	Port             string
	Env              string
	DatabaseDSN      string
	JWTSecret        string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
}

func Load() Config {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		DatabaseDSN:      getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/recetario?parseTime=true"),
		JWTSecret:        getEnv("JWT_SECRET", devSecret),
		JWTRefreshSecret: getEnv("JWT_REFRESH_SECRET", devSecret+"-refresh"),
		AccessTokenTTL:   time.Hour,
		RefreshTokenTTL:  7 * 24 * time.Hour,
	}

	if cfg.Env == "production" && (cfg.JWTSecret == devSecret || cfg.JWTRefreshSecret == devSecret+"-refresh") {
		slog.Error("JWT_SECRET and JWT_REFRESH_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
