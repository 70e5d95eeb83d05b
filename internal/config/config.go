package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Mongo       MongoConfig
	Redis       RedisConfig
	Auth        AuthConfig
	Stripe      StripeConfig
	Cloudinary  CloudinaryConfig
	SMTP        SMTPConfig
	PublicURL   string // base URL used in checkout success/cancel links
	LogLevel    string
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Addr    string
	CartTTL time.Duration
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// StripeConfig is the fallback key pair; keys stored in the settings
// record take precedence when present.
type StripeConfig struct {
	SecretKey      string
	PublishableKey string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("MONGO_DB", "printhaus")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("CART_TTL_HOURS", "72")
	viper.SetDefault("TOKEN_TTL_HOURS", "720")
	viper.SetDefault("LOG_LEVEL", "info")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Mongo: MongoConfig{
			URI:      strings.TrimSpace(getEnvOrViper("MONGO_URI", "mongodb://localhost:27017")),
			Database: getEnvOrViper("MONGO_DB", "printhaus"),
		},
		Redis: RedisConfig{
			Addr:    getEnvOrViper("REDIS_ADDR", "localhost:6379"),
			CartTTL: hoursEnv("CART_TTL_HOURS", 72),
		},
		Auth: AuthConfig{
			JWTSecret: getEnvOrViper("JWT_SECRET", ""),
			TokenTTL:  hoursEnv("TOKEN_TTL_HOURS", 720),
		},
		Stripe: StripeConfig{
			SecretKey:      strings.TrimSpace(getEnvOrViper("STRIPE_SECRET_KEY", "")),
			PublishableKey: strings.TrimSpace(getEnvOrViper("STRIPE_PUBLISHABLE_KEY", "")),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: strings.TrimSpace(getEnvOrViper("CLOUDINARY_CLOUD_NAME", "")),
			APIKey:    strings.TrimSpace(getEnvOrViper("CLOUDINARY_API_KEY", "")),
			APISecret: strings.TrimSpace(getEnvOrViper("CLOUDINARY_API_SECRET", "")),
		},
		SMTP: SMTPConfig{
			Host:     getEnvOrViper("SMTP_HOST", ""),
			Port:     getEnvOrViper("SMTP_PORT", "587"),
			User:     getEnvOrViper("SMTP_USER", ""),
			Password: getEnvOrViper("SMTP_PASSWORD", ""),
			From:     getEnvOrViper("SMTP_FROM", ""),
		},
		PublicURL: strings.TrimSuffix(getEnvOrViper("PUBLIC_URL", "http://localhost:8080"), "/"),
		LogLevel:  getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

func hoursEnv(key string, defaultHours int) time.Duration {
	raw := getEnvOrViper(key, strconv.Itoa(defaultHours))
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		n = defaultHours
	}
	return time.Duration(n) * time.Hour
}
