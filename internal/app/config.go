package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env  string
	Port string

	// JWTSecret falls back to a hard-coded dev value so tokens verify out
	// of the box. Set JWT_SECRET in any real deployment.
	JWTSecret string

	// AdminGrantEmail: registering with this address yields an admin
	// account (testing hook).
	AdminGrantEmail string

	RateLimitWindow time.Duration
	RateLimitMax    int
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func getEnvDuration(k string, d time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if dur, err := time.ParseDuration(v); err == nil {
			return dur
		}
	}
	return d
}

func LoadConfig() Config {
	return Config{
		Env:             getEnv("APP_ENV", "dev"),
		Port:            getEnv("PORT", "5000"),
		JWTSecret:       getEnv("JWT_SECRET", "francheese-super-secret-key-2024"),
		AdminGrantEmail: getEnv("ADMIN_GRANT_EMAIL", "admin@test.com"),
		RateLimitWindow: getEnvDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		RateLimitMax:    getEnvInt("RATE_LIMIT_MAX", 100),
	}
}
