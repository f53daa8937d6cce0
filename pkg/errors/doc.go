/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package errors provides structured error types shared by all unikit
// packages.
//
// Every fatal condition in the pipeline is classified with an ErrorCode:
//
//   - CONFIG_ERROR: the configuration file is invalid or incomplete
//   - COMMAND_FAILED: an external tool exited with a non-zero status
//   - INVALID_STATE: an operation was requested out of order
//   - TOOL_NOT_FOUND: a required external tool is missing from PATH
//   - INTERNAL: an unexpected internal failure
//
// All of these are unrecoverable at the point of detection. The pipeline
// propagates them unchanged to the CLI driver, which prints a single
// descriptive line to stderr and exits non-zero. There is no retry and no
// cleanup of partially generated files.
//
// Usage:
//
//	if port < 0 {
//	    return errors.New(errors.ErrCodeConfig, "http-port must be a positive integer")
//	}
//
//	if err := cmd.Run(); err != nil {
//	    return errors.Wrap(errors.ErrCodeCommand, "build tool failed", err)
//	}
package errors
