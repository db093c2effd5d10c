package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// insecureDefaultSecret signs session tokens when SESSION_SECRET is unset.
// Only ever used outside production; Load rejects the production case.
const insecureDefaultSecret = "development-secret-do-not-use-in-production"

// Config holds all configuration for the application.
type Config struct {
	Addr            string
	DBPath          string
	Environment     string
	SessionSecret   string
	SessionLifetime time.Duration
	UploadDir       string

	EmailHost string
	EmailPort string
	EmailUser string
	EmailPass string
	EmailFrom string
	EmailTo   string

	GeminiAPIKey string
}

// Load reads configuration from environment variables. A .env file in the
// working directory is loaded first if present.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Addr:          getEnv("ADDR", ":8080"),
		DBPath:        getEnv("DB_PATH", "data/portfolio.db"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		UploadDir:     getEnv("UPLOAD_DIR", "web/uploads"),

		EmailHost: os.Getenv("EMAIL_HOST"),
		EmailPort: getEnv("EMAIL_PORT", "587"),
		EmailUser: os.Getenv("EMAIL_USER"),
		EmailPass: os.Getenv("EMAIL_PASS"),
		EmailFrom: os.Getenv("EMAIL_FROM"),
		EmailTo:   os.Getenv("EMAIL_TO"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
	}

	lifetime := getEnv("SESSION_LIFETIME_HOURS", "720")
	dur, err := time.ParseDuration(lifetime + "h")
	if err != nil {
		dur = 720 * time.Hour
	}
	cfg.SessionLifetime = dur

	if cfg.SessionSecret == "" {
		if cfg.Production() {
			return nil, errors.New("SESSION_SECRET environment variable is required in production")
		}
		log.Println("WARNING: SESSION_SECRET not set, using insecure development default")
		cfg.SessionSecret = insecureDefaultSecret
	}

	return cfg, nil
}

// Production reports whether the server runs in production mode. Development
// affordances (seeded admin login, default secret) are disabled when true.
func (c *Config) Production() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
