package cmd

import (
	"fmt"
	"strings"
)

const (
	DefaultDispatchSchedule   = "*/5 * * * * *"
	DefaultCompletionSchedule = "*/10 * * * * *"
)

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	LogLevel           string
	DispatchSchedule   string
	CompletionSchedule string
}

// LoadConfig reads the configuration through getenv, usually os.Getenv.
// Unset values get their defaults.
func LoadConfig(getenv func(string) string) Config {
	return Config{
		HTTPPort:           valueOr(getenv("HTTP_PORT"), "8080"),
		DBHost:             valueOr(getenv("DB_HOST"), "localhost"),
		DBPort:             valueOr(getenv("DB_PORT"), "5432"),
		DBUser:             getenv("DB_USER"),
		DBPassword:         getenv("DB_PASSWORD"),
		DBName:             getenv("DB_NAME"),
		DBSslMode:          valueOr(getenv("DB_SSLMODE"), "disable"),
		LogLevel:           valueOr(getenv("LOG_LEVEL"), "info"),
		DispatchSchedule:   valueOr(getenv("DISPATCH_SCHEDULE"), DefaultDispatchSchedule),
		CompletionSchedule: valueOr(getenv("COMPLETION_SCHEDULE"), DefaultCompletionSchedule),
	}
}

// DSN is the keyword/value connection string understood by lib/pq.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
