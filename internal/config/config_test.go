// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// TestConfig_Default tests that Default() returns a valid config.
func TestConfig_Default(t *testing.T) {
	cfg := Default()

	if cfg.UI.Title != "今天有什么计划?" {
		t.Errorf("Unexpected default title %q", cfg.UI.Title)
	}
	if cfg.Time.Locale != "zh-CN" {
		t.Errorf("Expected default locale zh-CN, got %q", cfg.Time.Locale)
	}
	if !cfg.UI.SmoothScroll {
		t.Error("Smooth scroll should default to on")
	}
	if len(cfg.Keys.NewlineModifiers) != 2 {
		t.Errorf("Expected shift and alt as default newline modifiers, got %v", cfg.Keys.NewlineModifiers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

// TestConfig_Validate tests configuration validation.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		field   string
		wantErr bool
	}{
		{
			name:   "valid default config",
			mutate: func(c *Config) {},
		},
		{
			name:    "invalid theme",
			mutate:  func(c *Config) { c.UI.Theme = "neon" },
			field:   "ui.theme",
			wantErr: true,
		},
		{
			name:    "invalid locale",
			mutate:  func(c *Config) { c.Time.Locale = "not a locale!" },
			field:   "time.locale",
			wantErr: true,
		},
		{
			name:   "explicit layout",
			mutate: func(c *Config) { c.Time.Layout = "15:04:05" },
		},
		{
			name:    "unknown modifier",
			mutate:  func(c *Config) { c.Keys.NewlineModifiers = []string{"hyper"} },
			field:   "keys.newline_modifiers",
			wantErr: true,
		},
		{
			name:   "modifier aliases",
			mutate: func(c *Config) { c.Keys.NewlineModifiers = []string{"Option", "control"} },
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Log.Level = "verbose" },
			field:   "log.level",
			wantErr: true,
		},
		{
			name:    "invalid log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			field:   "log.format",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			var verrs ValidateErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Expected ValidateErrors, got %T", err)
			}
			if verrs[0].Field != tt.field {
				t.Errorf("Expected field %q, got %q", tt.field, verrs[0].Field)
			}
		})
	}
}

// TestConfig_ValidateCollectsAll tests that every invalid field is reported.
func TestConfig_ValidateCollectsAll(t *testing.T) {
	c := Default()
	c.UI.Theme = "neon"
	c.Log.Level = "loud"

	var verrs ValidateErrors
	if !errors.As(c.Validate(), &verrs) {
		t.Fatal("Expected ValidateErrors")
	}
	if len(verrs) != 2 {
		t.Errorf("Expected 2 errors, got %d: %v", len(verrs), verrs)
	}
}

// TestConfig_SetDefaults tests normalization of empty and mixed-case values.
func TestConfig_SetDefaults(t *testing.T) {
	c := &Config{}
	c.UI.Theme = " Dark "
	c.Log.Level = "DEBUG"
	c.SetDefaults()

	if c.UI.Theme != "dark" {
		t.Errorf("Expected theme dark, got %q", c.UI.Theme)
	}
	if c.Log.Level != "debug" {
		t.Errorf("Expected level debug, got %q", c.Log.Level)
	}
	if c.Time.Locale != "zh-CN" || c.Log.Format != "json" {
		t.Errorf("Empty fields should take defaults, got %+v", c)
	}
	if len(c.Keys.NewlineModifiers) == 0 {
		t.Error("Empty modifiers should take defaults")
	}
}

// TestConfig_EnvOverrides tests PLANCHAT_* overrides.
func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PLANCHAT_LOCALE", "en-US")
	t.Setenv("PLANCHAT_TIME_LAYOUT", "15:04:05")
	t.Setenv("PLANCHAT_THEME", "light")
	t.Setenv("PLANCHAT_SMOOTH_SCROLL", "0")
	t.Setenv("PLANCHAT_LOG_LEVEL", "debug")
	t.Setenv("PLANCHAT_LOG_FILE", "/tmp/pc.log")

	c := Default()
	c.ApplyEnvOverrides()

	if c.Time.Locale != "en-US" || c.Time.Layout != "15:04:05" {
		t.Errorf("Time overrides not applied: %+v", c.Time)
	}
	if c.UI.Theme != "light" || c.UI.SmoothScroll {
		t.Errorf("UI overrides not applied: %+v", c.UI)
	}
	if c.Log.Level != "debug" || c.Log.File != "/tmp/pc.log" {
		t.Errorf("Log overrides not applied: %+v", c.Log)
	}
}

// TestConfig_LoadOrDefault tests the missing-file fallback and that an
// existing file is loaded with full validation.
func TestConfig_LoadOrDefault(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file yields defaults", func(t *testing.T) {
		t.Setenv("PLANCHAT_THEME", "dark")
		cfg, err := LoadOrDefault(filepath.Join(dir, "missing.toml"))
		if err != nil {
			t.Fatalf("LoadOrDefault() error = %v", err)
		}
		if cfg.UI.Title != Default().UI.Title {
			t.Errorf("Expected default title, got %q", cfg.UI.Title)
		}
		if cfg.UI.Theme != "dark" {
			t.Errorf("Expected env override on defaults, got %q", cfg.UI.Theme)
		}
	})

	t.Run("invalid env on defaults", func(t *testing.T) {
		t.Setenv("PLANCHAT_THEME", "sepia")
		if _, err := LoadOrDefault(filepath.Join(dir, "missing.toml")); err == nil {
			t.Error("Expected validation error")
		}
	})

	t.Run("existing file", func(t *testing.T) {
		path := filepath.Join(dir, "config.toml")
		writeFile(t, path, "[ui]\ntitle = \"from file\"\n")
		cfg, err := LoadOrDefault(path)
		if err != nil {
			t.Fatalf("LoadOrDefault() error = %v", err)
		}
		if cfg.UI.Title != "from file" {
			t.Errorf("Expected file title, got %q", cfg.UI.Title)
		}
	})

	t.Run("broken file", func(t *testing.T) {
		path := filepath.Join(dir, "broken.toml")
		writeFile(t, path, "[ui\n")
		if _, err := LoadOrDefault(path); err == nil {
			t.Error("Expected decode error")
		}
	})
}

// TestConfig_LoadFromPath tests partial files and unknown keys.
func TestConfig_LoadFromPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(dir, "partial.toml")
		writeFile(t, path, "[time]\nlocale = \"en-US\"\n")

		cfg, err := LoadFromPath(path)
		if err != nil {
			t.Fatalf("LoadFromPath() error = %v", err)
		}
		if cfg.Time.Locale != "en-US" {
			t.Errorf("Expected en-US, got %q", cfg.Time.Locale)
		}
		if cfg.UI.Title != Default().UI.Title {
			t.Errorf("Title should keep its default, got %q", cfg.UI.Title)
		}
	})

	t.Run("unknown key rejected", func(t *testing.T) {
		path := filepath.Join(dir, "unknown.toml")
		writeFile(t, path, "[ui]\nfont = \"mono\"\n")

		if _, err := LoadFromPath(path); err == nil || !strings.Contains(err.Error(), "ui.font") {
			t.Errorf("Expected unknown key error naming ui.font, got %v", err)
		}
	})

	t.Run("invalid value rejected", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.toml")
		writeFile(t, path, "[ui]\ntheme = \"neon\"\n")

		if _, err := LoadFromPath(path); err == nil {
			t.Error("Expected validation error")
		}
	})

	t.Run("malformed TOML", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		writeFile(t, path, "[ui\n")

		if _, err := LoadFromPath(path); err == nil {
			t.Error("Expected decode error")
		}
	})
}

// TestConfig_SaveRoundTrip tests that a saved config loads back unchanged.
func TestConfig_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	c := Default()
	c.UI.Title = "Plans"
	c.Keys.NewlineModifiers = []string{"alt"}
	if err := SaveTOML(c, path); err != nil {
		t.Fatalf("SaveTOML() error = %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if loaded.UI.Title != "Plans" || len(loaded.Keys.NewlineModifiers) != 1 {
		t.Errorf("Round trip mismatch: %+v", loaded)
	}
}

// TestConfig_Formatter tests the formatter derived from [time].
func TestConfig_Formatter(t *testing.T) {
	c := Default()
	c.Time.Locale = "en-US"

	f, err := c.Formatter()
	if err != nil {
		t.Fatalf("Formatter() error = %v", err)
	}
	ts := time.Date(2025, 3, 1, 21, 5, 0, 0, time.UTC)
	if got := f.In(time.UTC).Format(ts); got != "09:05 PM" {
		t.Errorf("Expected 09:05 PM, got %q", got)
	}
}

// TestConfig_Watch tests that writing the file triggers a reload.
func TestConfig_Watch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "[ui]\ntitle = \"first\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(cfg *Config, err error) {
			if err == nil {
				changes <- cfg
			}
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	writeFile(t, path, "[ui]\ntitle = \"second\"\n")

	select {
	case cfg := <-changes:
		if cfg.UI.Title != "second" {
			t.Errorf("Expected reloaded title, got %q", cfg.UI.Title)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Timed out waiting for reload")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}
