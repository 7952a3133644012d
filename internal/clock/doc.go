// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package clock provides the time source and timestamp formatting used when
// messages are committed.
//
// # Key Types
//
//   - Clock: Source of the current instant (System in production)
//   - Fixed, Stepped: Deterministic clocks for tests
//   - Formatter: Renders an instant as an hour:minute display string
//
// # Usage
//
//	f, err := clock.NewFormatter("zh-CN", "")
//	if err != nil {
//	    return err
//	}
//	stamp := f.Format(clock.System{}.Now()) // "09:41"
package clock
