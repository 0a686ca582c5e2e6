package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries everything the service needs to start.
// Values come from the environment, optionally seeded from a .env file.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	DefaultCurrency     string
	PaymentAPIKey       string
	PaymentDeclineLimit float64

	RedisAddr      string
	IdempotencyTTL time.Duration

	FulfillmentSchedule  string
	FulfillmentBatchSize int
	FulfillmentDwell     time.Duration
}

// LoadConfig reads the configuration from the environment.
// Only the database credentials and the JWT secret are mandatory;
// everything else has a development default.
func LoadConfig() (Config, error) {
	config := Config{
		HTTPPort:            envOr("HTTP_PORT", "8080"),
		DBHost:              os.Getenv("DB_HOST"),
		DBPort:              envOr("DB_PORT", "5432"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBSslMode:           envOr("DB_SSLMODE", "disable"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		DefaultCurrency:     envOr("DEFAULT_CURRENCY", "USD"),
		PaymentAPIKey:       envOr("PAYMENT_API_KEY", "sk_test"),
		RedisAddr:           envOr("REDIS_ADDR", "localhost:6379"),
		FulfillmentSchedule: envOr("FULFILLMENT_SCHEDULE", "*/15 * * * * *"),
	}

	for name, value := range map[string]string{
		"DB_HOST":     config.DBHost,
		"DB_USER":     config.DBUser,
		"DB_PASSWORD": config.DBPassword,
		"DB_NAME":     config.DBName,
		"JWT_SECRET":  config.JWTSecret,
	} {
		if value == "" {
			return Config{}, fmt.Errorf("required environment variable %s is not set", name)
		}
	}

	declineLimit, err := strconv.ParseFloat(envOr("PAYMENT_DECLINE_LIMIT", "10000"), 64)
	if err != nil {
		return Config{}, fmt.Errorf("invalid PAYMENT_DECLINE_LIMIT: %w", err)
	}
	config.PaymentDeclineLimit = declineLimit

	config.IdempotencyTTL, err = time.ParseDuration(envOr("IDEMPOTENCY_TTL", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid IDEMPOTENCY_TTL: %w", err)
	}

	config.FulfillmentBatchSize, err = strconv.Atoi(envOr("FULFILLMENT_BATCH_SIZE", "100"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid FULFILLMENT_BATCH_SIZE: %w", err)
	}

	config.FulfillmentDwell, err = time.ParseDuration(envOr("FULFILLMENT_DWELL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid FULFILLMENT_DWELL: %w", err)
	}

	return config, nil
}

// DSN renders the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
