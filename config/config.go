package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
}

type ServerConfig struct {
	Port               string
	GinMode            string
	AllowedOrigins     []string
	RateLimitPerMinute int
}

type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
	LogLevel string
}

type JWTConfig struct {
	Secret      string
	ExpiryHours int
}

// Load reads the configuration from the environment. Call godotenv.Load first
// if a .env file should be honoured.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			GinMode:            getEnv("GIN_MODE", "debug"),
			AllowedOrigins:     getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 120),
		},
		Database: DatabaseConfig{
			URL:      os.Getenv("DB_URL"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "password"),
			Name:     getEnv("DB_NAME", "services_marketplace_db"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
			LogLevel: getEnv("DB_LOG_LEVEL", "warn"),
		},
		JWT: JWTConfig{
			Secret:      getEnv("JWT_SECRET", "your-super-secret-jwt-key-change-this-in-production"),
			ExpiryHours: getEnvAsInt("JWT_EXPIRY_HOURS", 24),
		},
	}
}

// DSN returns DB_URL when set, otherwise a key/value DSN built from the parts.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
