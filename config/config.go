package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// CORS Configuration
	AllowedOrigins []string
	// AWS SES Configuration
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	// Email defaults (both fall back to the shop notification inbox)
	EmailFrom string
	EmailTo   string
	// Inference service (ML backend)
	InferenceURL    string
	InferenceAPIKey string
	// Outbound HTTP timeout applied to the SES client and the inference proxy.
	// The net/http default is no timeout at all, so this is made explicit.
	HTTPClientTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally, ignored in production if the file is absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")),
		// AWS SES Configuration
		AWSRegion:          getEnv("AWS_REGION", "ap-south-1"),
		AWSAccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		// Email defaults
		EmailFrom: getEnv("EMAIL_FROM", "notifications@buildmypc.in"),
		EmailTo:   getEnv("EMAIL_TO", "notifications@buildmypc.in"),
		// Inference service
		InferenceURL:      getEnv("INFERENCE_URL", "http://localhost:8000/predict"),
		InferenceAPIKey:   getEnv("INFERENCE_API_KEY", ""),
		HTTPClientTimeout: time.Duration(getEnvInt("HTTP_CLIENT_TIMEOUT_SECONDS", 30)) * time.Second,
	}

	// Missing provider credentials are not fatal: the server still boots so the
	// health check and the inference proxy keep working.
	if cfg.AWSAccessKeyID == "" || cfg.AWSSecretAccessKey == "" {
		log.Println("WARNING: AWS SES credentials not configured. Email dispatch will be unavailable.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// splitOrigins parses a comma-separated origin list, dropping empty entries
// and trailing slashes so entries compare equal to the Origin request header.
func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimRight(strings.TrimSpace(p), "/")
		if p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
