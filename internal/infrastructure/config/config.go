package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

type Config struct {
	// Today, when set, replaces the wall clock as the engine's notion of
	// "today". Used by demos and scripted runs; zero means real time.
	Today time.Time

	LogLevel string
	DevMode  bool
}

func FromEnv() (Config, error) {
	cfg := Config{
		LogLevel: envDefault("ROOMSCHED_LOG_LEVEL", "info"),
		DevMode:  strings.TrimSpace(os.Getenv("DEV_MODE")) == "1",
	}
	if v := strings.TrimSpace(os.Getenv("ROOMSCHED_TODAY")); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return cfg, fmt.Errorf("ROOMSCHED_TODAY must be YYYY-MM-DD: %w", err)
		}
		cfg.Today = t
	}
	return cfg, nil
}

// Now returns the clock the engine should run on.
func (c Config) Now() func() time.Time {
	if c.Today.IsZero() {
		return time.Now
	}
	today := c.Today
	return func() time.Time { return today }
}

func envDefault(k, d string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	return v
}
