package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	WeatherAPIKey   string
	WeatherAPIBase  string
	WeatherCacheTTL time.Duration

	EmailEnabled bool
	EmailFrom    string
	SESRegion    string

	SignupOTPTTL time.Duration
}

// LoadConfig loads configuration from environment variables and a .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "farmease-backend")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("WEATHER_API_KEY", "")
	viper.SetDefault("WEATHER_API_BASE", "https://api.weatherapi.com/v1")
	viper.SetDefault("WEATHER_CACHE_TTL", "10m")
	viper.SetDefault("EMAIL_ENABLED", false)
	viper.SetDefault("EMAIL_FROM", "no-reply@farmease.app")
	viper.SetDefault("SES_REGION", "ap-south-1")
	viper.SetDefault("SIGNUP_OTP_TTL", "10m")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	cfg.JWTExpiryDuration = parseDurationOr("JWT_EXPIRY_DURATION", 24*time.Hour)
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.RedisAddr = viper.GetString("REDIS_ADDR")
	cfg.RedisPassword = viper.GetString("REDIS_PASSWORD")
	cfg.RedisDB = viper.GetInt("REDIS_DB")

	cfg.WeatherAPIKey = viper.GetString("WEATHER_API_KEY")
	if cfg.WeatherAPIKey == "" {
		log.Println("Warning: WEATHER_API_KEY not set. Weather forecasts will not function.")
	}
	cfg.WeatherAPIBase = viper.GetString("WEATHER_API_BASE")
	cfg.WeatherCacheTTL = parseDurationOr("WEATHER_CACHE_TTL", 10*time.Minute)

	cfg.EmailEnabled = viper.GetBool("EMAIL_ENABLED")
	cfg.EmailFrom = viper.GetString("EMAIL_FROM")
	cfg.SESRegion = viper.GetString("SES_REGION")
	if !cfg.EmailEnabled {
		log.Println("Warning: EMAIL_ENABLED is false. Outbound email will be logged only.")
	}

	cfg.SignupOTPTTL = parseDurationOr("SIGNUP_OTP_TTL", 10*time.Minute)

	return cfg, nil
}

func parseDurationOr(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
