// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for planchat.
//
// Configuration is read from ~/.planchat/config.toml when present and falls
// back to built-in defaults. Environment variables override file values.
//
// # Sections
//
//   - [ui]: header title, placeholder, theme, smooth scrolling, help line, mouse
//   - [time]: timestamp locale and optional explicit Go layout
//   - [keys]: modifiers that turn Enter into a line break
//   - [log]: level, file and format of the debug log
//
// # Usage
//
//	path, _ := config.ConfigPath()
//	cfg, err := config.LoadOrDefault(path)
//	if err != nil {
//	    return err
//	}
//	f, _ := cfg.Formatter()
//
// Watch reloads the file when it changes on disk:
//
//	go config.Watch(ctx, path, func(cfg *config.Config, err error) { ... })
package config
