package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr string

	// StoreDriver selects persistence: memory|sqlite|postgres|redis.
	StoreDriver string
	DBDSN       string

	RedisAddr     string
	RedisPassword string
	RedisTTL      time.Duration // 0 = no expiry

	GeminiAPIKey  string
	GeminiBaseURL string
	GeminiModel   string
	GeminiTimeout time.Duration

	CORSOrigins []string
	Debug       bool
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	return Config{
		HTTPAddr: addr,

		StoreDriver: envOr("STORE_DRIVER", "memory"),
		DBDSN:       os.Getenv("DB_DSN"),

		RedisAddr:     envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisTTL:      time.Duration(envInt("REDIS_TTL_SECONDS", 0)) * time.Second,

		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: envOr("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiModel:   envOr("GEMINI_MODEL", "gemini-pro"),
		GeminiTimeout: time.Duration(envInt("GEMINI_TIMEOUT_SECONDS", 60)) * time.Second,

		CORSOrigins: csvOr("CORS_ORIGINS", "http://localhost:3000"),
		Debug:       envBool("DEBUG", false),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n >= 0 {
			return n
		}
	}
	return def
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
