package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server            ServerConfig
	Database          DatabaseConfig
	CORS              CORSConfig
	Seed              SeedConfig
	AI                AIConfig
	ExternalPortfolio ExternalPortfolioConfig
	Digest            DigestConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration.
// The default DSN is an in-memory database: all state is lost on restart,
// which is the intended behavior for this dashboard.
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// SeedConfig controls demo-data seeding at startup.
type SeedConfig struct {
	DemoData bool
}

// AIConfig holds settings for the optional Gemini-backed analysis provider.
// When APIKey is empty the deterministic provider is used exclusively.
type AIConfig struct {
	APIKey         string
	Model          string
	TimeoutSeconds int
}

// ExternalPortfolioConfig holds the externally configured link to the
// portfolio-management system used by "Accept and change" triage. The access
// token is stored fernet-encrypted; Key is the fernet key that decrypts it.
type ExternalPortfolioConfig struct {
	URL            string
	EncryptedToken string
	Key            string
}

// DigestConfig holds the cron schedule for the pending-breach digest job.
// An empty schedule disables the job.
type DigestConfig struct {
	Schedule string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5000"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", ":memory:"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Seed: SeedConfig{
			DemoData: getEnvBool("SEED_DEMO_DATA", true),
		},
		AI: AIConfig{
			APIKey:         getEnv("GEMINI_API_KEY", ""),
			Model:          getEnv("AI_MODEL", "gemini-2.5-flash"),
			TimeoutSeconds: getEnvInt("AI_TIMEOUT_SECONDS", 10),
		},
		ExternalPortfolio: ExternalPortfolioConfig{
			URL:            getEnv("EXTERNAL_PORTFOLIO_URL", ""),
			EncryptedToken: getEnv("EXTERNAL_PORTFOLIO_TOKEN", ""),
			Key:            getEnv("EXTERNAL_PORTFOLIO_KEY", ""),
		},
		Digest: DigestConfig{
			Schedule: getEnv("BREACH_DIGEST_SCHEDULE", "0 8 * * *"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvBool gets a boolean environment variable or returns a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
