package configs

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"sharpcut.app/configs/configslog"
)

// LoadEnv reads the .env file if present. Missing file is not an error;
// containers usually inject the environment directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		if configslog.SLog != nil {
			configslog.SLog.Info(".env file not found, using process environment")
		}
	}
}

func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func GetEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func GetEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// JWTSecret returns the signing key for API tokens.
func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "dev-only-secret-change-me"))
}

// JWTLifetime returns how long issued tokens stay valid.
func JWTLifetime() time.Duration {
	return GetEnvDuration("JWT_LIFETIME", 24*time.Hour)
}

// StripeSecretKey returns the Stripe API key used for payment intents.
func StripeSecretKey() string {
	return GetEnv("STRIPE_SECRET_KEY", "")
}

// BasketTTL returns how long abandoned baskets survive in Redis.
func BasketTTL() time.Duration {
	return GetEnvDuration("BASKET_TTL", 30*24*time.Hour)
}

// KafkaBrokers returns the broker list for the event publisher, empty when
// event publishing is disabled.
func KafkaBrokers() string {
	return GetEnv("KAFKA_BROKERS", "")
}
