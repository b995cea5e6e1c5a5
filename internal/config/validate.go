package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if h := c.Auth.AdminPasswordHash; h != "" && !strings.HasPrefix(h, "$2") {
		return fmt.Errorf("auth.admin_password_hash must be a bcrypt hash")
	}

	if err := c.Experiment.validate(); err != nil {
		return fmt.Errorf("experiment: %w", err)
	}

	if err := c.Catalog.validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	if c.Server.RateLimitPerMinute <= 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be > 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if c.Sessions.CacheSize <= 0 {
		return fmt.Errorf("sessions.cache_size must be > 0 (got %d)", c.Sessions.CacheSize)
	}

	if c.Admin.DeleteBatchSize <= 0 || c.Admin.DeleteBatchSize > 500 {
		return fmt.Errorf("admin.delete_batch_size must be between 1 and 500 (got %d)", c.Admin.DeleteBatchSize)
	}
	if c.Admin.RecalcPageSize <= 0 {
		return fmt.Errorf("admin.recalc_page_size must be > 0 (got %d)", c.Admin.RecalcPageSize)
	}

	return nil
}

func (e *ExperimentConfig) validate() error {
	if e.PairsPerSession <= 0 {
		return fmt.Errorf("pairs_per_session must be > 0 (got %d)", e.PairsPerSession)
	}
	if e.NonWordsPerImage <= 0 {
		return fmt.Errorf("non_words_per_image must be > 0 (got %d)", e.NonWordsPerImage)
	}
	if e.MaxGenerationAttempts <= 0 {
		return fmt.Errorf("max_generation_attempts must be > 0 (got %d)", e.MaxGenerationAttempts)
	}
	return nil
}

func (c *CatalogConfig) validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return fmt.Errorf("source is required")
	}
	if c.IsRemote() && c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be > 0 for remote sources")
	}
	return nil
}
