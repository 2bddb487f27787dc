package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Admin credential (single-tenant: the choir treasurer)
	AdminEmail        string
	AdminPasswordHash []byte

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Analytics
	BalanceWindow int
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		AdminEmail: getEnv("ADMIN_EMAIL", "treasurer@choir.local"),

		JWTSecret: getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
	}

	// The admin password is hashed once at startup; only the hash is kept.
	hash, err := bcrypt.GenerateFromPassword([]byte(getEnv("ADMIN_PASSWORD", "changeme")), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	config.AdminPasswordHash = hash

	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	windowStr := getEnv("BALANCE_WINDOW", "10")
	window, err := strconv.Atoi(windowStr)
	if err != nil || window < 1 {
		log.Printf("Warning: invalid BALANCE_WINDOW value '%s', falling back to 10\n", windowStr)
		window = 10
	}
	config.BalanceWindow = window

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
