package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	JWTSecret      string
	TokenTTL       time.Duration
	DefaultLocale  string
	SendDelay      time.Duration
	VerifyDelay    time.Duration
	SubmitDelay    time.Duration
	SaveDelay      time.Duration
	SessionIdleTTL time.Duration
	CORSOrigins    string
	ProfanityWords []string
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		log.Printf("config: bad %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}

// splitList splits a comma separated value and drops empty items.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func LoadConfig() Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: .env file not found, using system environment variables")
	}

	return Config{
		Port:           getEnv("PORT", "8000"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenTTL:       getDuration("TOKEN_TTL", 72*time.Hour),
		DefaultLocale:  getEnv("DEFAULT_LOCALE", "en"),
		SendDelay:      getDuration("SEND_DELAY", 2*time.Second),
		VerifyDelay:    getDuration("VERIFY_DELAY", 1500*time.Millisecond),
		SubmitDelay:    getDuration("SUBMIT_DELAY", 1500*time.Millisecond),
		SaveDelay:      getDuration("SAVE_DELAY", time.Second),
		SessionIdleTTL: getDuration("SESSION_IDLE_TTL", 24*time.Hour),
		CORSOrigins:    getEnv("CORS_ORIGINS", "*"),
		ProfanityWords: splitList(getEnv("PROFANITY_WORDS", "")),
	}
}
