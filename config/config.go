package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds application configuration
type Config struct {
	Port string

	DBDriver string // sqlite or postgres
	DBName   string // sqlite file path, or postgres database name
	DBHost   string
	DBUser   string
	DBPass   string
	DBPort   string

	SeedDemoData bool // load demo wallets on startup (local only)

	AuditCronSpec string // schedule for the ledger consistency audit

	WebhookURL string // transfer events are POSTed here when set

	SendGridAPIKey string // transfer receipt emails are sent when set
	EmailSender    string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found, using system environment variables")
	}

	AppConfig = &Config{
		Port: getEnv("PORT", "3000"),

		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBName:   getEnv("DB_NAME", "wallet.db"),
		DBHost:   getEnv("DB_HOST", "localhost"),
		DBUser:   getEnv("DB_USER", ""),
		DBPass:   getEnv("DB_PASSWORD", ""),
		DBPort:   getEnv("DB_PORT", "5432"),

		SeedDemoData: getEnvBool("SEED_DEMO_DATA", false),

		AuditCronSpec: getEnv("AUDIT_CRON", "@hourly"),

		WebhookURL: getEnv("WEBHOOK_URL", ""),

		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "no-reply@elswallet.local"),
	}

	if AppConfig.DBDriver == "sqlite" && AppConfig.DBName == "wallet.db" {
		logrus.Warn("Using default sqlite database wallet.db. Update DB_NAME in your environment.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool retrieves an environment variable as a boolean or returns the default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		logrus.Warnf("Error converting environment variable %s to bool: %v", key, err)
		return defaultValue
	}
	return boolValue
}
