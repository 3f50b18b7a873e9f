package config

import (
	"os"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	TablePrefix string
	// Auth configuration
	JWKSURL string // empty = unverified dev tokens
	// Persistence configuration
	DatabaseURL string // empty = in-memory only
	// Seed configuration
	SeedFile   string // optional YAML tree, overrides the builtin structure
	LabelsFile string // optional YAML label catalog
	// Placement suggestion configuration
	GeminiAPIKey    string // empty = deterministic heuristic provider
	SuggestionModel string
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix: getTablePrefix(env),
		// Auth configuration
		JWKSURL: getEnv("AUTH_JWKS_URL", ""),
		// Persistence configuration
		DatabaseURL: getEnv("DATABASE_URL", ""),
		// Seed configuration
		SeedFile:   getEnv("SEED_FILE", ""),
		LabelsFile: getEnv("LABELS_FILE", ""),
		// Placement suggestion configuration
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		SuggestionModel: getEnv("SUGGESTION_MODEL", "gemini-2.5-flash"),
		// Debug flags - default to true outside production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
