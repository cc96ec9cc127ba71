package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds application configuration
type Config struct {
	// Server
	Port        string
	Env         string
	CompanyName string

	// Local catalog store
	DBPath string

	// JWT session tokens
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Pricing
	FreightFee decimal.Decimal

	// Phone handling
	CountryCode string
	AdminPhones []string

	// Remote messaging validation
	MessagingBaseURL  string
	MessagingAPIKey   string
	MessagingInstance string

	// Outbound order webhook
	OrderWebhookURL string
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		CompanyName: getEnv("COMPANY_NAME", "Mais Flores"),

		DBPath: getEnv("DB_PATH", "florada.db"),

		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),

		CountryCode: getEnv("COUNTRY_CODE", "55"),

		MessagingBaseURL:  getEnv("MESSAGING_BASE_URL", "https://evo.example.com"),
		MessagingAPIKey:   getEnv("MESSAGING_API_KEY", ""),
		MessagingInstance: getEnv("MESSAGING_INSTANCE", "florada"),

		OrderWebhookURL: getEnv("ORDER_WEBHOOK_URL", ""),
	}

	// Parse JWT expiration duration
	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	// Flat freight fee applied once per rental line when a location is given
	feeStr := getEnv("FREIGHT_FEE", "150")
	fee, err := decimal.NewFromString(feeStr)
	if err != nil {
		log.Printf("Warning: invalid FREIGHT_FEE value '%s', falling back to 150\n", feeStr)
		fee = decimal.NewFromInt(150)
	}
	config.FreightFee = fee

	// Comma-separated allowlist of admin phone numbers
	if raw := getEnv("ADMIN_PHONES", ""); raw != "" {
		for _, p := range strings.Split(raw, ",") {
			if p = strings.TrimSpace(p); p != "" {
				config.AdminPhones = append(config.AdminPhones, p)
			}
		}
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
