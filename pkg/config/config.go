// Package config loads stitch-extractor settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the Stitch API endpoint used when none is configured.
const DefaultBaseURL = "https://stitch.googleapis.com/v1"

// ErrMissingCredentials is returned by Validate when neither an API key nor an access token is set.
var ErrMissingCredentials = errors.New("missing Stitch credentials: set an API key or an access token")

// Config holds the settings shared by the CLI, the pipeline and the MCP server.
type Config struct {
	BaseURL     string `yaml:"base_url"`
	APIKey      string `yaml:"api_key,omitempty"`
	AccessToken string `yaml:"access_token,omitempty"`
	// QuotaProject is sent as X-Goog-User-Project when non-empty.
	QuotaProject string        `yaml:"quota_project,omitempty"`
	Timeout      time.Duration `yaml:"timeout"`
	// CacheSize is the number of downloaded code bodies kept in memory; 0 disables caching.
	CacheSize    int    `yaml:"cache_size"`
	OutputDir    string `yaml:"output_dir"`
	LogToolCalls bool   `yaml:"log_tool_calls"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Timeout:   2 * time.Minute,
		CacheSize: 64,
		OutputDir: "stitch-assets",
	}
}

// Path returns the default configuration file path: ~/.stitch-extractor/config.yaml.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".stitch-extractor", "config.yaml")
	}
	return filepath.Join(home, ".stitch-extractor", "config.yaml")
}

// Load reads the YAML file at path on top of DefaultConfig.
// If path is empty, Path() is used. A missing file is not an error.
func Load(path string) (*Config, error) {
	if path == "" {
		path = Path()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// Save writes cfg to path as YAML, creating parent directories.
// If path is empty, Path() is used.
func Save(cfg *Config, path string) error {
	if path == "" {
		path = Path()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	// The file may hold credentials.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overlays values from the environment. Set variables win over the file.
//
//	STITCH_API_KEY, STITCH_ACCESS_TOKEN, STITCH_BASE_URL, GOOGLE_CLOUD_PROJECT
func (c *Config) ApplyEnv() {
	if v := os.Getenv("STITCH_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("STITCH_ACCESS_TOKEN"); v != "" {
		c.AccessToken = v
	}
	if v := os.Getenv("STITCH_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("GOOGLE_CLOUD_PROJECT"); v != "" {
		c.QuotaProject = v
	}
}

// Validate reports whether the configuration can be used to reach the Stitch API.
func (c *Config) Validate() error {
	if c.APIKey == "" && c.AccessToken == "" {
		return ErrMissingCredentials
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base URL %q: scheme must be http or https", c.BaseURL)
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache size must not be negative, got %d", c.CacheSize)
	}

	return nil
}
