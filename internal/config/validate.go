package config

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must be >= 0 (got %v)", c.Database.StatementTimeout)
	}

	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("server.request_timeout must be > 0 (got %v)", c.Server.RequestTimeout)
	}

	if err := c.Pagination.validate(); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("rate_limit: %w", err)
	}
	if err := c.Tracing.validate(); err != nil {
		return fmt.Errorf("tracing: %w", err)
	}

	return nil
}

func (p *PaginationConfig) validate() error {
	if p.DefaultLimit < 1 {
		return fmt.Errorf("default_limit must be >= 1 (got %d)", p.DefaultLimit)
	}
	if p.MemberDefaultLimit < 1 {
		return fmt.Errorf("member_default_limit must be >= 1 (got %d)", p.MemberDefaultLimit)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if r.RequestsPerMinute < 0 {
		return fmt.Errorf("requests_per_minute must be >= 0 (got %d)", r.RequestsPerMinute)
	}
	if r.LoginPerMinute < 0 {
		return fmt.Errorf("login_per_minute must be >= 0 (got %d)", r.LoginPerMinute)
	}
	if (r.RequestsPerMinute > 0 || r.LoginPerMinute > 0) && r.CleanupInterval <= 0 {
		return fmt.Errorf("cleanup_interval must be > 0 when limits are enabled")
	}
	return nil
}

func (t *TracingConfig) validate() error {
	t.Exporter = strings.ToLower(strings.TrimSpace(t.Exporter))
	switch t.Exporter {
	case "stdout", "none":
	default:
		return fmt.Errorf("exporter must be stdout or none (got %q)", t.Exporter)
	}
	if t.SampleRatio < 0 || t.SampleRatio > 1 {
		return fmt.Errorf("sample_ratio must be in [0, 1] (got %v)", t.SampleRatio)
	}
	return nil
}
