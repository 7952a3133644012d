// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the planchat command tree.
//
// The root command loads the configuration, initializes logging and starts a
// session on the full-screen interface or, when the terminal cannot host it,
// on the line-mode prompt.
//
// # Key Types
//
//   - Surface: which render surface a run drives
//   - CommandError: a command failure carrying its exit code
//
// # Usage
//
//	func main() {
//	    os.Exit(cli.Execute())
//	}
//
// # Commands Overview
//
//   - planchat: start the conversation (--plain forces line mode)
//   - config init: write the default config file
//   - config show: print the effective configuration
//   - config path: print the config file location
//   - version: print build information
//
// Global flags --config, --log-level, --log-file and --locale override the
// config file and PLANCHAT_* environment variables.
package cli
