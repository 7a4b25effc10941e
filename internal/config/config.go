// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits with an error.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration. It is built once in main and passed
// down explicitly; nothing else reads the environment.
type Config struct {
	Port     string
	LogLevel string

	// Webflow CMS credentials and target collection.
	APIToken     string
	CollectionID string
	BaseURL      string

	// Overrides for the logical-name → collection field key table.
	FieldOverrides map[string]string

	// Inbound requests allowed per client IP per minute.
	RateLimitRPM int
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         "8080",
		LogLevel:     "info",
		RateLimitRPM: 60,
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	cfg.APIToken = os.Getenv("WEBFLOW_API_TOKEN")
	cfg.CollectionID = os.Getenv("WEBFLOW_COLLECTION_ID")
	cfg.BaseURL = os.Getenv("WEBFLOW_BASE_URL")

	if v := os.Getenv("RATE_LIMIT_RPM"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("RATE_LIMIT_RPM must be a positive integer, got %q", v)
		}
		cfg.RateLimitRPM = n
	}

	// Field keys differ between Webflow collections (e.g. "lieu" vs
	// "lieu-travail"); WEBFLOW_FIELD_MAP carries a JSON object of
	// logical-name → field-key overrides so no code change is needed when
	// the collection schema changes.
	if v := os.Getenv("WEBFLOW_FIELD_MAP"); v != "" {
		overrides := map[string]string{}
		if err := json.Unmarshal([]byte(v), &overrides); err != nil {
			return nil, fmt.Errorf("WEBFLOW_FIELD_MAP is not valid JSON: %w", err)
		}
		cfg.FieldOverrides = overrides
	}

	var missing []string
	if cfg.APIToken == "" {
		missing = append(missing, "WEBFLOW_API_TOKEN")
	}
	if cfg.CollectionID == "" {
		missing = append(missing, "WEBFLOW_COLLECTION_ID")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}
