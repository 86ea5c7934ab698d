// internal/views/application-view/config.go
package applicationview

import (
	"time"

	"jobtracker/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

// LoadConfig derives the view settings from the service configuration.
func LoadConfig(cfg *config.Config) *Config {
	c := &Config{Timeout: 15 * time.Second}
	if cfg != nil && cfg.Reports.QueryTimeout > 0 {
		c.Timeout = config.GetDuration(cfg.Reports.QueryTimeout)
	}
	return c
}
