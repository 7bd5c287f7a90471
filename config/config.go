package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Load reads the optional .env file. Missing files are fine; plain environment
// variables still apply.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}
}

func Port() string {
	return getenv("PORT", "8080")
}

func DBPath() string {
	return getenv("DB_PATH", "./stockmaster.db")
}

// AllowOrigins lists the browser origins allowed to call the API,
// comma-separated in ALLOW_ORIGINS.
func AllowOrigins() []string {
	raw := getenv("ALLOW_ORIGINS", "http://localhost:5173,http://localhost:3000")
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func GeminiAPIKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

func GeminiModel() string {
	return getenv("GEMINI_MODEL", "gemini-3-flash-preview")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
