package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

const (
	defaultPort           = "8080"
	defaultDatabaseURL    = "jonesaica.db"
	defaultCaptureTrigger = "delayed"
	defaultCaptureDelay   = "5s"
	defaultSeedOnStartup  = "true"
)

// CaptureTrigger selects when the first-visit prompt fires.
type CaptureTrigger string

const (
	TriggerImmediate CaptureTrigger = "immediate"
	TriggerDelayed   CaptureTrigger = "delayed"
)

type AppConfig struct {
	AppEnv         string
	Port           string
	DatabaseURL    string
	CORSOrigins    []string
	CaptureTrigger CaptureTrigger
	CaptureDelay   time.Duration
	SeedOnStartup  bool
}

// IsProd reports whether the app runs in a production environment.
func (c *AppConfig) IsProd() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production"
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))

	if extra := os.Getenv("CORS_ALLOWED_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	trigger := CaptureTrigger(strings.ToLower(strings.TrimSpace(getEnv("CAPTURE_TRIGGER", defaultCaptureTrigger))))
	if trigger != TriggerImmediate && trigger != TriggerDelayed {
		return nil, fmt.Errorf("CAPTURE_TRIGGER must be %q or %q, got %q", TriggerImmediate, TriggerDelayed, trigger)
	}
	cfg.CaptureTrigger = trigger

	var err error
	cfg.CaptureDelay, err = parseDurationEnv("CAPTURE_DELAY", defaultCaptureDelay)
	if err != nil {
		return nil, err
	}
	if cfg.CaptureDelay < 0 {
		return nil, fmt.Errorf("CAPTURE_DELAY must be >= 0")
	}

	cfg.SeedOnStartup = parseBoolEnv("SEED_ON_STARTUP", defaultSeedOnStartup)

	log.Printf("config: env=%s port=%s capture_trigger=%s capture_delay=%s", cfg.AppEnv, cfg.Port, cfg.CaptureTrigger, cfg.CaptureDelay)

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := strings.TrimSpace(getEnv(key, fallback))
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration in %s: %q", key, raw)
	}
	return d, nil
}

func parseBoolEnv(key, fallback string) bool {
	raw := strings.ToLower(strings.TrimSpace(getEnv(key, fallback)))
	return raw == "1" || raw == "true" || raw == "yes" || raw == "on"
}
