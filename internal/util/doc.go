// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the planchat packages.
//
// # Key Functions
//
// Display width (East Asian wide characters count as two columns):
//   - StringWidth: terminal column count of a string
//   - TruncateWidth: cut to a column budget with an ellipsis
//   - WrapWidth: hard-wrap text for a bubble of fixed width
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	lines := util.WrapWidth(msg.Text, 40)
//	err := util.AtomicWriteFile(path, data, 0600)
package util
