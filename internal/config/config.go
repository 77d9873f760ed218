// Package config provides configuration management for the case crawler.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override the YAML configuration.
const (
	EnvOutputDir = "CASECRAWLER_OUTPUT_DIR"
	EnvAPIBase   = "CASECRAWLER_API_BASE"
	EnvLogLevel  = "CASECRAWLER_LOG_LEVEL"
	EnvTimezone  = "CASECRAWLER_TIMEZONE"
)

// Configuration validation errors.
var (
	ErrMissingSiteHost     = errors.New("source.site_host is required")
	ErrInvalidAPIBase      = errors.New("source.api_base must be an absolute http(s) URL")
	ErrInvalidTimeout      = errors.New("source.timeout_sec must be at least 1")
	ErrInvalidBufferSize   = errors.New("source.buffer_size_kb must be at least 1")
	ErrMissingCitationBase = errors.New("links.citation_base is required")
	ErrMissingAdvocateBase = errors.New("links.advocate_base is required")
	ErrMissingOutputPath   = errors.New("output.base_path is required")
	ErrInvalidTimezone     = errors.New("output.timezone is not a known location")
	ErrInvalidLogLevel     = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete crawler configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Links   LinksConfig   `yaml:"links"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig describes the case lookup service.
type SourceConfig struct {
	SiteHost     string `yaml:"site_host"`
	APIBase      string `yaml:"api_base"`
	UserAgent    string `yaml:"user_agent"`
	TimeoutSec   int    `yaml:"timeout_sec"`
	BufferSizeKb int    `yaml:"buffer_size_kb"`
}

// LinksConfig holds the bases used to build external links in a report.
type LinksConfig struct {
	CitationBase string `yaml:"citation_base"`
	AdvocateBase string `yaml:"advocate_base"`
}

// OutputConfig defines output behavior.
type OutputConfig struct {
	BasePath string `yaml:"base_path"`
	Timezone string `yaml:"timezone"`
	KeepRaw  bool   `yaml:"keep_raw"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns a configuration that talks to the public Oyez service.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			SiteHost:     "www.oyez.org",
			APIBase:      "https://api.oyez.org",
			UserAgent:    "casecrawler/1.0",
			TimeoutSec:   30,
			BufferSizeKb: 4096,
		},
		Links: LinksConfig{
			CitationBase: "https://supreme.justia.com/cases/federal/us",
			AdvocateBase: "https://www.oyez.org/advocates",
		},
		Output: OutputConfig{
			BasePath: "data",
			Timezone: "Local",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadEnv loads a .env file from the working directory if one exists.
func LoadEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}

	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	return nil
}

// LoadConfig loads configuration from a YAML file on top of Default.
// An empty path skips the file. Environment overrides are applied last.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to YAML file.
func (c *Config) SaveConfig(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides fields from the process environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.Output.BasePath = v
	}

	if v := os.Getenv(EnvAPIBase); v != "" {
		c.Source.APIBase = v
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(EnvTimezone); v != "" {
		c.Output.Timezone = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Source.SiteHost == "" {
		return ErrMissingSiteHost
	}

	u, err := url.Parse(c.Source.APIBase)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidAPIBase, c.Source.APIBase)
	}

	if c.Source.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Source.BufferSizeKb < 1 {
		return ErrInvalidBufferSize
	}

	if c.Links.CitationBase == "" {
		return ErrMissingCitationBase
	}

	if c.Links.AdvocateBase == "" {
		return ErrMissingAdvocateBase
	}

	if c.Output.BasePath == "" {
		return ErrMissingOutputPath
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return ErrInvalidLogLevel
	}

	return nil
}

// Location resolves the timezone used to render timeline dates.
func (c *Config) Location() (*time.Location, error) {
	switch c.Output.Timezone {
	case "", "Local":
		return time.Local, nil
	case "UTC":
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(c.Output.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, c.Output.Timezone)
	}

	return loc, nil
}

// GetTimeout returns the fetch timeout duration.
func (s *SourceConfig) GetTimeout() time.Duration {
	return time.Duration(s.TimeoutSec) * time.Second
}

// CaseURL returns the API endpoint of a case.
func (s *SourceConfig) CaseURL(term, docket string) string {
	return fmt.Sprintf("%s/cases/%s/%s", strings.TrimRight(s.APIBase, "/"), url.PathEscape(term), url.PathEscape(docket))
}

// GetReportPath follows structure: {base_path}/case_{term}_{docket}.txt.
func (c *Config) GetReportPath(term, docket string) string {
	return filepath.Join(c.Output.BasePath, fmt.Sprintf("case_%s_%s.txt", term, docket))
}

// GetRawPath follows structure: {base_path}/oyez_{term}_{docket}.json.
func (c *Config) GetRawPath(term, docket string) string {
	return filepath.Join(c.Output.BasePath, fmt.Sprintf("oyez_%s_%s.json", term, docket))
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{API: %s, Output: %s, KeepRaw: %t}",
		c.Source.APIBase,
		c.Output.BasePath,
		c.Output.KeepRaw,
	)
}
