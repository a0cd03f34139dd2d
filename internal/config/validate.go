package config

import (
	"fmt"
	"regexp"
	"strings"
)

// tableNamePattern accepts an optionally schema-qualified lower-case identifier.
var tableNamePattern = regexp.MustCompile(`^([a-z_][a-z0-9_]{0,62}\.)?[a-z_][a-z0-9_]{0,62}$`)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %s)", c.Auth.AccessTokenTTL)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Server.WriteRateLimit < 0 {
		return fmt.Errorf("server.write_rate_limit must be >= 0 (got %d)", c.Server.WriteRateLimit)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.ChangeLog.validate(); err != nil {
		return fmt.Errorf("changelog: %w", err)
	}

	return nil
}

func (c *ChangeLogConfig) validate() error {
	switch strings.ToLower(c.Store) {
	case ChangeLogStorePostgres, ChangeLogStoreMemory:
	default:
		return fmt.Errorf("store must be %q or %q (got %q)", ChangeLogStorePostgres, ChangeLogStoreMemory, c.Store)
	}
	if !tableNamePattern.MatchString(c.Table) {
		return fmt.Errorf("table %q is not a valid identifier", c.Table)
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("history_limit must be > 0 (got %d)", c.HistoryLimit)
	}
	if c.RecordTimeout <= 0 {
		return fmt.Errorf("record_timeout must be > 0 (got %s)", c.RecordTimeout)
	}
	return nil
}
