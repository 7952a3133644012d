// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error types and exit codes for planchat commands.
//
// Commands always return errors. Execute decides how to print them and
// which exit code to use.

package cli

import (
	"errors"
	"fmt"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a general/unknown error
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or flags
	ExitUsageError = 2
	// ExitConfigError indicates a configuration file or settings error
	ExitConfigError = 3
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// CommandError is a command failure with an exit code.
type CommandError struct {
	Command string // Command that failed (e.g., "config init")
	Reason  string // Human-readable reason
	Code    int    // Process exit code
	Err     error  // Underlying error (if any)
}

func (e *CommandError) Error() string {
	switch {
	case e.Reason != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Command, e.Reason, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Command, e.Reason)
	}
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// configError wraps err as a configuration failure of command.
func configError(command, reason string, err error) error {
	return &CommandError{Command: command, Reason: reason, Code: ExitConfigError, Err: err}
}

// usageError wraps err as an invalid invocation of command.
func usageError(command string, err error) error {
	return &CommandError{Command: command, Code: ExitUsageError, Err: err}
}

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code != 0 {
		return cmdErr.Code
	}
	return ExitGeneralError
}
