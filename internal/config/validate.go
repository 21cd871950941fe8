package config

import (
	"fmt"
	"net/url"

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

	if err := c.Scoring.validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}

	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers must not be empty when kafka is enabled")
		}
		if c.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic must not be empty when kafka is enabled")
		}
	}

	if c.Tracking.MaxPayloadChars <= 0 || c.Tracking.MaxErrorChars <= 0 {
		return fmt.Errorf("tracking caps must be > 0 (payload %d, error %d)", c.Tracking.MaxPayloadChars, c.Tracking.MaxErrorChars)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerMin <= 0 || c.RateLimit.AuthPerMin <= 0) {
		return fmt.Errorf("ratelimit limits must be > 0 when enabled")
	}

	return nil
}

func (s ScoringConfig) validate() error {
	if !s.Enabled {
		return nil
	}
	u, err := url.Parse(s.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be an absolute URL (got %q)", s.BaseURL)
	}
	if s.Interval <= 0 {
		return fmt.Errorf("interval must be > 0 (got %v)", s.Interval)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", s.Timeout)
	}
	return nil
}
