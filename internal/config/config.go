package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything the application reads from the environment.
// It is built once at startup and handed to the components that need it;
// nothing else touches os.Getenv.
type Config struct {
	Port     string
	Env      string
	LogLevel string

	DatabaseURL string
	RedisAddr   string

	JWTSecret string

	GeminiAPIKey      string
	GeminiModel       string
	SummaryTimeout    time.Duration
	SummaryDailyQuota int
}

func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("SUMMARY_TIMEOUT", "30s")
	v.SetDefault("SUMMARY_DAILY_QUOTA", 50)

	cfg := &Config{
		Port:              v.GetString("PORT"),
		Env:               v.GetString("ENV"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		DatabaseURL:       v.GetString("DATABASE_URL"),
		RedisAddr:         v.GetString("REDIS_ADDR"),
		JWTSecret:         v.GetString("JWT_SECRET"),
		GeminiAPIKey:      v.GetString("GEMINI_API_KEY"),
		GeminiModel:       v.GetString("GEMINI_MODEL"),
		SummaryTimeout:    v.GetDuration("SUMMARY_TIMEOUT"),
		SummaryDailyQuota: v.GetInt("SUMMARY_DAILY_QUOTA"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("environment variable DATABASE_URL not found")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("environment variable JWT_SECRET not found")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("environment variable GEMINI_API_KEY not found")
	}
	if cfg.SummaryTimeout <= 0 {
		return nil, fmt.Errorf("SUMMARY_TIMEOUT must be positive")
	}

	return cfg, nil
}
