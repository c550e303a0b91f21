// Package config loads connection settings for the SL1 GraphQL endpoint
// from an optional YAML file, with environment variables taking precedence.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultTimeoutSeconds = 30

// Config holds everything needed to reach the SL1 GraphQL API. Credentials
// are never compiled in; they must come from the config file or environment.
type Config struct {
	// Endpoint is the base URL of the SL1 instance, e.g. "https://10.0.0.5".
	// The /gql path is appended when the URL names no path of its own; an
	// explicit path is used as given.
	Endpoint string `yaml:"endpoint" env:"SL1_URL"`
	Username string `yaml:"username" env:"SL1_USER"`
	Password string `yaml:"password" env:"SL1_PASS"`

	// InsecureSkipVerify disables TLS certificate verification. SL1 lab
	// instances ship with self-signed certificates, but skipping
	// verification still requires this explicit opt-in.
	InsecureSkipVerify bool `yaml:"insecure_skip_verify" env:"SL1_INSECURE_SKIP_VERIFY"`

	// TimeoutSeconds is the HTTP request timeout in seconds.
	TimeoutSeconds int `yaml:"timeout" env:"SL1_TIMEOUT"`

	LogLevel string `yaml:"log_level" env:"SL1_LOG_LEVEL"`
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty), and finally the environment. A .env file in the working
// directory is read first if present.
func Load(
	path string,
) (
	*Config,
	error,
) {

	// Pick up a local .env, if any
	_ = godotenv.Load()

	cfg := &Config{
		TimeoutSeconds: defaultTimeoutSeconds,
		LogLevel:       "ERROR",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	// Environment wins over the file
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Endpoint = normalizeEndpoint(cfg.Endpoint)

	return cfg, nil
}

// Validate checks that the settings are sufficient to issue a probe.
func (cfg *Config) Validate() error {
	if cfg.Endpoint == "" {
		return errors.New("config: endpoint is required (SL1_URL)")
	}
	if cfg.Username == "" || cfg.Password == "" {
		return errors.New("config: username and password are required (SL1_USER, SL1_PASS)")
	}
	if cfg.TimeoutSeconds <= 0 {
		return errors.New("config: timeout must be positive")
	}
	return nil
}

// normalizeEndpoint trims trailing slashes and appends /gql when the URL
// carries no explicit path. A URL that already names a path is left alone.
func normalizeEndpoint(rawURL string) string {
	u := strings.TrimRight(rawURL, "/")
	if parsed, err := url.Parse(u); err == nil && parsed.Path != "" {
		return u
	}
	if !strings.HasSuffix(u, "/gql") {
		u += "/gql"
	}
	return u
}
