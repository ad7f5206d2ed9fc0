package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Gemini
	GeminiAPIKey    string
	GeminiModel     string
	DefaultItemType string

	// Background removal
	RembgURL   string
	RembgModel string

	// Supabase
	SupabaseURL            string
	SupabaseServiceRoleKey string
	SupabaseStorageBucket  string
	SupabaseJWTSecret      string

	// YouTube
	YouTubeAPIKey string

	// Server
	Port            string
	Environment     string
	AllowedOrigins  []string
	UpstreamTimeout time.Duration
}

// Load resolves the configuration once at process start. Values in .env files
// never override variables that are already set in the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		loadEnvFile(f)
	}

	timeout, err := time.ParseDuration(getEnv("UPSTREAM_TIMEOUT", "60s"))
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: UPSTREAM_TIMEOUT: %w", err)
	}

	cfg := &Config{
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		DefaultItemType: getEnv("DEFAULT_ITEM_TYPE", "이너"),

		RembgURL:   getEnv("REMBG_URL", "http://localhost:7000"),
		RembgModel: getEnv("REMBG_MODEL", "u2net"),

		SupabaseURL:            getEnv("SUPABASE_URL", ""),
		SupabaseServiceRoleKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		SupabaseStorageBucket:  getEnv("SUPABASE_STORAGE_BUCKET", "wardrobe-images"),
		SupabaseJWTSecret:      getEnv("SUPABASE_JWT_SECRET", ""),

		YouTubeAPIKey: getEnv("YOUTUBE_API_KEY", ""),

		Port:            getEnv("PORT", "8000"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		AllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3002")),
		UpstreamTimeout: timeout,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate rejects malformed values only. Missing credentials disable the
// features that need them instead of failing startup.
func (c *Config) Validate() error {
	switch c.DefaultItemType {
	case "아우터", "이너", "하의":
	default:
		return fmt.Errorf("DEFAULT_ITEM_TYPE must be one of 아우터, 이너, 하의, got %q", c.DefaultItemType)
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	return nil
}

func (c *Config) GeminiEnabled() bool {
	return c.GeminiAPIKey != ""
}

func (c *Config) StorageEnabled() bool {
	return c.SupabaseURL != "" && c.SupabaseServiceRoleKey != ""
}

func (c *Config) AuthEnabled() bool {
	return c.SupabaseJWTSecret != ""
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// loadEnvFile tolerates a UTF-8 byte order mark on the first key, which
// editors on Windows tend to add.
func loadEnvFile(path string) {
	values, err := godotenv.Read(path)
	if err != nil {
		return
	}
	for key, value := range values {
		key = strings.TrimPrefix(key, "\ufeff")
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		os.Setenv(key, value)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
