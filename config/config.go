package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	APP_ENV     string
	LOG_LEVEL   string
	CORS_ORIGIN string

	// Empty DB_URL runs the service on the in-memory account store.
	DB_URL     string
	JWT_SECRET string

	// Empty STRIPE_WEBHOOK_SECRET disables the /webhook route.
	STRIPE_WEBHOOK_SECRET string
	STRIPE_PRICE_PRO      string
	STRIPE_PRICE_BUSINESS string
)

func LoadEnv() error {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	var missing []string
	mustEnv := func(key string) string {
		v, ok := os.LookupEnv(key)
		if !ok || strings.TrimSpace(v) == "" {
			missing = append(missing, key)
		}
		return v
	}

	PORT = getEnv("PORT", "8080")
	APP_ENV = getEnv("APP_ENV", "development")
	LOG_LEVEL = getEnv("LOG_LEVEL", "info")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")

	DB_URL = getEnv("DB_URL", "")
	JWT_SECRET = mustEnv("JWT_SECRET")

	STRIPE_WEBHOOK_SECRET = getEnv("STRIPE_WEBHOOK_SECRET", "")
	STRIPE_PRICE_PRO = getEnv("STRIPE_PRICE_PRO", "")
	STRIPE_PRICE_BUSINESS = getEnv("STRIPE_PRICE_BUSINESS", "")

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
