// Package config provides configuration loading from environment variables.
package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the MCP server.
type Config struct {
	CacheMaxItems   int    // TYPEFORGE_CACHE_MAX_ITEMS, default 256
	MaxInputBytes   int    // TYPEFORGE_MAX_INPUT_BYTES, default 2_000_000
	DefaultTypeName string // TYPEFORGE_DEFAULT_TYPE_NAME, default "Root"

	// Logging configuration
	LogLevel      string // LOG_LEVEL, default "info"
	LogFile       string // LOG_FILE, default "" (stderr only)
	LogMaxSizeMB  int    // LOG_MAX_SIZE_MB, default 10
	LogMaxBackups int    // LOG_MAX_BACKUPS, default 3
	LogMaxAgeDays int    // LOG_MAX_AGE_DAYS, default 28
	LogCompress   bool   // LOG_COMPRESS, default true
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		CacheMaxItems:   getEnvInt("TYPEFORGE_CACHE_MAX_ITEMS", 256),
		MaxInputBytes:   getEnvInt("TYPEFORGE_MAX_INPUT_BYTES", 2_000_000),
		DefaultTypeName: getEnvString("TYPEFORGE_DEFAULT_TYPE_NAME", "Root"),

		LogLevel:      getEnvString("LOG_LEVEL", "info"),
		LogFile:       getEnvString("LOG_FILE", ""),
		LogMaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
		LogMaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
		LogMaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 28),
		LogCompress:   getEnvBool("LOG_COMPRESS", true),
	}
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		switch v {
		case "1", "true", "yes", "on":
			return true
		case "0", "false", "no", "off":
			return false
		}
	}
	return defaultVal
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
