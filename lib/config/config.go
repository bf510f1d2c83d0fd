// Copyright 2026 The Busline Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the Busline client.
//
// Configuration is loaded from a single YAML file specified by:
//   - the BUSLINE_CONFIG environment variable, or
//   - the --config flag passed to the command
//
// There are no fallbacks or automatic discovery. With no file
// specified, the built-in defaults apply. This keeps configuration
// deterministic with no hidden overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvVar is the environment variable naming the config file.
const EnvVar = "BUSLINE_CONFIG"

// DefaultCustomerID is the placeholder customer identity bookings are
// filed under. The service has no authentication; every client
// installation books as this customer unless configured otherwise.
const DefaultCustomerID = 12179

// defaultRequestTimeout bounds each HTTP request to the booking
// service. There is no separate user-facing timeout; in-flight
// submissions wait for the transport to settle.
const defaultRequestTimeout = Duration(30 * time.Second)

// Config is the client configuration.
type Config struct {
	// APIBaseURL is the root URL of the booking service API.
	APIBaseURL string `yaml:"api_base_url"`

	// CustomerID identifies the customer bookings are filed under.
	CustomerID int `yaml:"customer_id"`

	// RequestTimeout is the per-request HTTP timeout, as a Go
	// duration string in YAML ("30s", "1m").
	RequestTimeout Duration `yaml:"request_timeout"`
}

// Duration wraps time.Duration so YAML can carry Go duration strings
// ("30s", "1m30s") instead of raw nanosecond counts.
type Duration time.Duration

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Default returns the built-in configuration: the public service URL,
// the placeholder customer identity, and a 30 second request timeout.
func Default() Config {
	return Config{
		APIBaseURL:     "https://api.freeprojectapi.com/api/BusBooking",
		CustomerID:     DefaultCustomerID,
		RequestTimeout: defaultRequestTimeout,
	}
}

// Load resolves the configuration. An explicit path (from the --config
// flag) wins; otherwise the BUSLINE_CONFIG environment variable is
// consulted; otherwise the defaults are returned. An explicitly named
// file that cannot be read or parsed is an error — a typo'd path must
// not silently fall back to defaults.
func Load(explicitPath string) (Config, error) {
	path := explicitPath
	if path == "" {
		path = os.Getenv(EnvVar)
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// validate rejects values the rest of the client cannot work with.
func (c Config) validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api_base_url must not be empty")
	}
	if c.CustomerID <= 0 {
		return fmt.Errorf("customer_id must be positive (got %d)", c.CustomerID)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive (got %v)", c.RequestTimeout.Std())
	}
	return nil
}
