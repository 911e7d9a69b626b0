// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package config loads application configuration from TOML files.
//
// Configuration is entirely optional; every field has a default and a
// missing file yields the default configuration. Settings map directly onto
// the option types of the packages they configure.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/poiesic/answerit/ai"
	"github.com/poiesic/answerit/match"
)

// ErrInvalidConfig is returned when a configuration file contains values
// outside their allowed ranges.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the root configuration.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	AI       AIConfig       `toml:"ai"`
	Match    MatchConfig    `toml:"match"`
}

// DatabaseConfig configures document storage.
type DatabaseConfig struct {
	// Path is the BadgerDB directory. Empty means ~/.answerit/db.
	Path string `toml:"path"`

	// InMemory runs storage without persistence, for testing.
	InMemory bool `toml:"in_memory"`
}

// AIConfig configures the remote answer generator.
type AIConfig struct {
	Enabled        bool   `toml:"enabled"`
	Host           string `toml:"host"`
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// MatchConfig configures the matching engine.
type MatchConfig struct {
	MinConfidence   float64 `toml:"min_confidence"`
	FuzzyEnabled    bool    `toml:"fuzzy_enabled"`
	PartialEnabled  bool    `toml:"partial_enabled"`
	UseCache        bool    `toml:"use_cache"`
	CacheSize       int     `toml:"cache_size"`
	CacheTTLSeconds int     `toml:"cache_ttl_seconds"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	aiDefaults := ai.DefaultConfig()
	matchDefaults := match.DefaultOptions()

	return &Config{
		Database: DatabaseConfig{},
		AI: AIConfig{
			Enabled:        true,
			Host:           aiDefaults.Host,
			Model:          aiDefaults.Model,
			TimeoutSeconds: int(aiDefaults.Timeout / time.Second),
		},
		Match: MatchConfig{
			MinConfidence:   matchDefaults.MinConfidence,
			FuzzyEnabled:    matchDefaults.FuzzyEnabled,
			PartialEnabled:  matchDefaults.PartialEnabled,
			UseCache:        matchDefaults.UseCache,
			CacheSize:       match.DefaultCacheSize,
			CacheTTLSeconds: int(match.DefaultCacheTTL / time.Second),
		},
	}
}

// DefaultPath returns the default configuration file location,
// ~/.answerit/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".answerit", "config.toml"), nil
}

// Load reads configuration from the given path. An empty path means the
// default location. A missing file is not an error; defaults are returned.
func Load(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return Parse(data)
}

// Parse decodes TOML configuration, applying defaults for absent fields.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Match.MinConfidence < 0 || c.Match.MinConfidence > 1 {
		return fmt.Errorf("%w: match.min_confidence must be in [0,1], got %f", ErrInvalidConfig, c.Match.MinConfidence)
	}
	if c.Match.CacheSize < 1 {
		return fmt.Errorf("%w: match.cache_size must be positive, got %d", ErrInvalidConfig, c.Match.CacheSize)
	}
	if c.Match.CacheTTLSeconds < 1 {
		return fmt.Errorf("%w: match.cache_ttl_seconds must be positive, got %d", ErrInvalidConfig, c.Match.CacheTTLSeconds)
	}
	if c.AI.TimeoutSeconds < 1 {
		return fmt.Errorf("%w: ai.timeout_seconds must be positive, got %d", ErrInvalidConfig, c.AI.TimeoutSeconds)
	}
	return nil
}

// DatabasePath resolves the storage directory, defaulting to ~/.answerit/db.
func (c *Config) DatabasePath() (string, error) {
	if c.Database.Path != "" {
		return c.Database.Path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".answerit", "db"), nil
}

// AIClientConfig converts the AI section into a generator config.
func (c *Config) AIClientConfig() *ai.Config {
	return ai.NewConfig(
		ai.WithHost(c.AI.Host),
		ai.WithModel(c.AI.Model),
		ai.WithTimeout(time.Duration(c.AI.TimeoutSeconds)*time.Second),
	)
}

// MatchOptions converts the match section into engine options.
func (c *Config) MatchOptions() match.Options {
	opts := match.DefaultOptions()
	opts.MinConfidence = c.Match.MinConfidence
	opts.FuzzyEnabled = c.Match.FuzzyEnabled
	opts.PartialEnabled = c.Match.PartialEnabled
	opts.UseCache = c.Match.UseCache
	opts.RemoteEnabled = c.AI.Enabled
	return opts
}

// CacheTTL returns the configured cache entry lifetime.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Match.CacheTTLSeconds) * time.Second
}
