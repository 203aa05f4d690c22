package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/mamadbah2/lawncare/internal/timing"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Planner   PlannerConfig
	Digest    DigestConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string
}

// PlannerConfig holds options for the planning service.
type PlannerConfig struct {
	DefaultRegion     timing.Region
	ScheduleCacheSize int
}

// DigestConfig holds the monthly digest job settings.
type DigestConfig struct {
	CronSchedule string
	Timezone     string
	Regions      []timing.Region
	WebhookURL   string
	WebhookToken string
}

// RateLimitConfig holds per-client request limits for the HTTP API.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are fine when configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	defaultRegion, err := timing.ParseRegion(getenvWithDefault("DEFAULT_REGION", timing.DefaultRegion.String()))
	if err != nil {
		return nil, fmt.Errorf("DEFAULT_REGION: %w", err)
	}

	digestRegions, err := parseRegions(getenvWithDefault("DIGEST_REGIONS", "northern,central,southern"))
	if err != nil {
		return nil, fmt.Errorf("DIGEST_REGIONS: %w", err)
	}

	cacheSize, err := getenvInt("SCHEDULE_CACHE_SIZE", 16)
	if err != nil {
		return nil, err
	}
	burst, err := getenvInt("RATE_LIMIT_BURST", 20)
	if err != nil {
		return nil, err
	}
	rps, err := getenvFloat("RATE_LIMIT_RPS", 10)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		Log: LogConfig{
			Level: getenvWithDefault("LOG_LEVEL", "info"),
		},
		Planner: PlannerConfig{
			DefaultRegion:     defaultRegion,
			ScheduleCacheSize: cacheSize,
		},
		Digest: DigestConfig{
			CronSchedule: getenvWithDefault("DIGEST_CRON_SCHEDULE", "0 7 1 * *"),
			Timezone:     getenvWithDefault("TIMEZONE", "America/Chicago"),
			Regions:      digestRegions,
			WebhookURL:   os.Getenv("DIGEST_WEBHOOK_URL"),
			WebhookToken: os.Getenv("DIGEST_WEBHOOK_TOKEN"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: rps,
			Burst:             burst,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	if !c.Planner.DefaultRegion.Valid() {
		return errors.New("DEFAULT_REGION must name a supported region")
	}

	if c.Planner.ScheduleCacheSize <= 0 {
		return errors.New("SCHEDULE_CACHE_SIZE must be positive")
	}

	if c.Digest.CronSchedule == "" {
		return errors.New("DIGEST_CRON_SCHEDULE must be provided")
	}

	if c.Digest.Timezone == "" {
		return errors.New("TIMEZONE must be provided")
	}
	if _, err := time.LoadLocation(c.Digest.Timezone); err != nil {
		return fmt.Errorf("TIMEZONE %q: %w", c.Digest.Timezone, err)
	}

	if len(c.Digest.Regions) == 0 {
		return errors.New("DIGEST_REGIONS must list at least one region")
	}

	if c.Digest.WebhookToken != "" && c.Digest.WebhookURL == "" {
		return errors.New("DIGEST_WEBHOOK_TOKEN requires DIGEST_WEBHOOK_URL")
	}

	if c.RateLimit.RequestsPerSecond <= 0 {
		return errors.New("RATE_LIMIT_RPS must be positive")
	}

	if c.RateLimit.Burst <= 0 {
		return errors.New("RATE_LIMIT_BURST must be positive")
	}

	return nil
}

// Location returns the digest time zone. Validate has already checked it loads.
func (c DigestConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func parseRegions(raw string) ([]timing.Region, error) {
	var regions []timing.Region
	seen := make(map[timing.Region]bool)
	for _, part := range strings.Split(raw, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		region, err := timing.ParseRegion(part)
		if err != nil {
			return nil, err
		}
		if seen[region] {
			continue
		}
		seen[region] = true
		regions = append(regions, region)
	}
	return regions, nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func getenvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return f, nil
}
