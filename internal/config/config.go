package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// defaultWindowDays is the trailing statement window served by the gateway.
const defaultWindowDays = 7

// Config is the read-only configuration snapshot taken at process start.
// Request handling never reads the environment directly.
type Config struct {
	Port            string
	GeminiAPIKey    string
	GeminiModel     string
	MonoToken       string
	MonoBaseURL     string
	StatementWindow time.Duration
}

// Load reads configuration from the environment. A .env file is honored when
// present; in deployment the variables come from the platform and the file is
// simply absent.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:            getenv("PORT", "8080"),
		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiModel:     os.Getenv("GEMINI_MODEL"),
		MonoToken:       os.Getenv("MONO_TOKEN"),
		MonoBaseURL:     os.Getenv("MONO_BASE_URL"),
		StatementWindow: defaultWindowDays * 24 * time.Hour,
	}

	if v := os.Getenv("STATEMENT_WINDOW_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil && days > 0 {
			cfg.StatementWindow = time.Duration(days) * 24 * time.Hour
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
