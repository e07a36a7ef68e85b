package core

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultAPIRoot        = "/api"
	DefaultRequestTimeout = 15 * time.Second
)

type Config struct {
	ClientName        string        `koanf:"client_name" mapstructure:"client_name"`
	BaseURL           string        `koanf:"base_url" mapstructure:"base_url"`
	APIRoot           string        `koanf:"api_root" mapstructure:"api_root"`
	RequestTimeout    time.Duration `koanf:"request_timeout" mapstructure:"request_timeout"`
	RefreshLeadWindow time.Duration `koanf:"refresh_lead_window" mapstructure:"refresh_lead_window"`
}

func DefaultConfig() Config {
	return Config{
		ClientName:     "storefront",
		APIRoot:        DefaultAPIRoot,
		RequestTimeout: DefaultRequestTimeout,
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ClientName) == "" {
		return fmt.Errorf("core: client_name is required")
	}
	if root := strings.TrimSpace(c.APIRoot); root != "" && !strings.HasPrefix(root, "/") {
		return fmt.Errorf("core: api_root must begin with /")
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("core: request_timeout must not be negative")
	}
	return nil
}
