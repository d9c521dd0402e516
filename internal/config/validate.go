package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.AdminKey) < 16 {
		return fmt.Errorf("auth.admin_key must be at least 16 characters (got %d)", len(c.Auth.AdminKey))
	}

	if !strings.HasPrefix(c.Sessions.Endpoint, "http://") && !strings.HasPrefix(c.Sessions.Endpoint, "https://") {
		return fmt.Errorf("sessions.endpoint must be an http(s) URL (got %q)", c.Sessions.Endpoint)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}

	return nil
}
