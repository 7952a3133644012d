// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for planchat.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/planchat/internal/clock"
	"github.com/jeranaias/planchat/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete planchat configuration.
type Config struct {
	// UI configuration
	UI UIConfig `toml:"ui"`

	// Timestamp formatting
	Time TimeConfig `toml:"time"`

	// Key handling
	Keys KeysConfig `toml:"keys"`

	// Debug log
	Log LogConfig `toml:"log"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// Title is shown in the header
	Title string `toml:"title"`
	// Placeholder is shown in the empty input field
	Placeholder string `toml:"placeholder"`
	// Theme is "auto", "dark" or "light"
	Theme string `toml:"theme"`
	// SmoothScroll animates scroll-to-latest
	SmoothScroll bool `toml:"smooth_scroll"`
	// ShowHelp shows the key help line under the input bar
	ShowHelp bool `toml:"show_help"`
	// Mouse enables clicking the send button and wheel scrolling
	Mouse bool `toml:"mouse"`
}

// TimeConfig controls how message timestamps are rendered.
type TimeConfig struct {
	// Locale is a BCP 47 tag such as "zh-CN" or "en-US"
	Locale string `toml:"locale"`
	// Layout is an explicit Go time layout; empty derives it from Locale
	Layout string `toml:"layout"`
}

// KeysConfig contains key handling settings.
type KeysConfig struct {
	// NewlineModifiers turn Enter into a line break when held: "shift", "alt", "ctrl"
	NewlineModifiers []string `toml:"newline_modifiers"`
}

// LogConfig contains debug log settings.
type LogConfig struct {
	// Level is "debug", "info", "warn" or "error"
	Level string `toml:"level"`
	// File is the log file path; empty uses ~/.planchat/planchat.log
	File string `toml:"file"`
	// Format is "json" or "text"
	Format string `toml:"format"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Title:        "今天有什么计划?",
			Placeholder:  "Type a message...",
			Theme:        "auto",
			SmoothScroll: true,
			ShowHelp:     true,
			Mouse:        true,
		},
		Time: TimeConfig{
			Locale: clock.DefaultLocale,
			Layout: "", // derived from locale
		},
		Keys: KeysConfig{
			NewlineModifiers: []string{"shift", "alt"},
		},
		Log: LogConfig{
			Level:  "info",
			File:   "",
			Format: "json",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the planchat configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".planchat"), nil
}

// ConfigPath returns the path to the TOML config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DefaultLogPath returns the default debug log location.
func DefaultLogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "planchat.log"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// LoadOrDefault loads configuration from path, falling back to defaults when
// the file does not exist. Environment overrides are applied either way.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		cfg.ApplyEnvOverrides()
		cfg.SetDefaults()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		return cfg, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from a specific file path with full validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes a TOML file over cfg. Keys missing from the file keep
// whatever value cfg already holds.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveTOML writes cfg to path atomically.
func SaveTOML(cfg *Config, path string) error {
	data, err := cfg.Encode()
	if err != nil {
		return err
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Encode renders cfg as TOML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// String returns the TOML form of the config.
func (c *Config) String() string {
	data, err := c.Encode()
	if err != nil {
		return err.Error()
	}
	return string(data)
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes one invalid field.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %v)", e.Field, e.Message, e.Value)
}

// ValidateErrors collects every validation failure.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, ve := range e {
		msgs = append(msgs, ve.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks every field and returns ValidateErrors if any is invalid.
func (c *Config) Validate() error {
	var errs ValidateErrors

	switch c.UI.Theme {
	case "auto", "dark", "light":
	default:
		errs = append(errs, ValidationError{"ui.theme", c.UI.Theme, "must be auto, dark or light"})
	}

	if _, err := clock.NewFormatter(c.Time.Locale, c.Time.Layout); err != nil {
		errs = append(errs, ValidationError{"time.locale", c.Time.Locale, err.Error()})
	}

	for _, name := range c.Keys.NewlineModifiers {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "shift", "alt", "option", "meta", "ctrl", "control":
		default:
			errs = append(errs, ValidationError{"keys.newline_modifiers", name, "must be shift, alt or ctrl"})
		}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, ValidationError{"log.level", c.Log.Level, "must be debug, info, warn or error"})
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		errs = append(errs, ValidationError{"log.format", c.Log.Format, "must be json or text"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills empty values and normalizes case.
func (c *Config) SetDefaults() {
	defaults := Default()

	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
	if c.UI.Theme == "" {
		c.UI.Theme = defaults.UI.Theme
	}
	if c.Time.Locale == "" {
		c.Time.Locale = defaults.Time.Locale
	}
	if len(c.Keys.NewlineModifiers) == 0 {
		c.Keys.NewlineModifiers = defaults.Keys.NewlineModifiers
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	if c.Log.Format == "" {
		c.Log.Format = defaults.Log.Format
	}
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides:
//   - PLANCHAT_LOCALE: overrides time.locale
//   - PLANCHAT_TIME_LAYOUT: overrides time.layout
//   - PLANCHAT_THEME: overrides ui.theme
//   - PLANCHAT_SMOOTH_SCROLL: overrides ui.smooth_scroll ("1"/"true" or "0"/"false")
//   - PLANCHAT_LOG_LEVEL: overrides log.level
//   - PLANCHAT_LOG_FILE: overrides log.file
func (c *Config) ApplyEnvOverrides() {
	if locale := os.Getenv("PLANCHAT_LOCALE"); locale != "" {
		c.Time.Locale = locale
	}
	if layout := os.Getenv("PLANCHAT_TIME_LAYOUT"); layout != "" {
		c.Time.Layout = layout
	}
	if theme := os.Getenv("PLANCHAT_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if smooth := os.Getenv("PLANCHAT_SMOOTH_SCROLL"); smooth != "" {
		c.UI.SmoothScroll = smooth == "1" || strings.ToLower(smooth) == "true"
	}
	if level := os.Getenv("PLANCHAT_LOG_LEVEL"); level != "" {
		c.Log.Level = level
	}
	if file := os.Getenv("PLANCHAT_LOG_FILE"); file != "" {
		c.Log.File = file
	}
}

// =============================================================================
// DERIVED VALUES
// =============================================================================

// Formatter builds the timestamp formatter described by the [time] section.
func (c *Config) Formatter() (*clock.Formatter, error) {
	return clock.NewFormatter(c.Time.Locale, c.Time.Layout)
}

// LogPath returns the configured log file or the default location.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return DefaultLogPath()
}
