package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config represents runtime configuration for the service.
type Config struct {
	BasicConfig BasicConfig               `json:"basic_config"`
	Provider    string                    `json:"provider"`
	Providers   map[string]ProviderConfig `json:"providers"`
}

type ProviderConfig struct {
	BaseURL string `json:"base_url"`
	Model   string `json:"model"`
	APIKey  string `json:"api_key"`
}

type BasicConfig struct {
	ServerAddress     string `json:"server_address"`
	FrontendURL       string `json:"frontend_url"`
	GatewayTimeoutSec int    `json:"gateway_timeout_seconds"`
}

const defaultGatewayTimeout = 60 * time.Second

// Load reads configuration from the provided path (defaults to config.json).
// The API key for the selected provider may come from the file or from the
// <PROVIDER>_API_KEY environment variable; a missing key is a startup error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = "config.json"
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}

	file, err := os.Open(absPath)
	if err != nil {
		return nil, fmt.Errorf("open config %s: %w", absPath, err)
	}
	defer file.Close()

	var cfg Config
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Provider == "" {
		cfg.Provider = "gemini"
	}
	provCfg, ok := cfg.Providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("provider %s not configured", cfg.Provider)
	}
	if provCfg.APIKey == "" {
		provCfg.APIKey = os.Getenv(strings.ToUpper(cfg.Provider) + "_API_KEY")
		cfg.Providers[cfg.Provider] = provCfg
	}
	if provCfg.APIKey == "" {
		return nil, fmt.Errorf("api key for provider %s is not set", cfg.Provider)
	}
	if provCfg.Model == "" {
		return nil, fmt.Errorf("model for provider %s is not set", cfg.Provider)
	}

	return &cfg, nil
}

// ActiveProvider returns the configuration of the selected provider.
func (c *Config) ActiveProvider() ProviderConfig {
	return c.Providers[c.Provider]
}

// GatewayTimeout bounds every upstream completion call.
func (c *Config) GatewayTimeout() time.Duration {
	if c.BasicConfig.GatewayTimeoutSec <= 0 {
		return defaultGatewayTimeout
	}
	return time.Duration(c.BasicConfig.GatewayTimeoutSec) * time.Second
}

// AllowedOrigins lists the origins permitted by the CORS middleware.
func (c *Config) AllowedOrigins() []string {
	origins := []string{"http://localhost:3000", "http://localhost:3001"}
	if url := c.BasicConfig.FrontendURL; url != "" {
		for _, o := range origins {
			if o == url {
				return origins
			}
		}
		origins = append([]string{url}, origins...)
	}
	return origins
}
