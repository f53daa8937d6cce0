/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/unikit/unikit/pkg/errors"
)

// Runner executes external commands for the pipeline. Implementations
// must be synchronous: Run returns only after the command has exited.
type Runner interface {
	// Run executes a single command and fails on any non-zero exit.
	// The command is split on whitespace, so no argument may contain
	// spaces; callers must validate their inputs before building a
	// command line.
	Run(ctx context.Context, command string) error
	// InDir runs fn with the working directory set to dir, restoring the
	// previous directory on every exit path.
	InDir(dir string, fn func() error) error
}

// Exec runs commands on the host, streaming their output. The zero value
// writes to stdout/stderr.
type Exec struct {
	Stdout io.Writer
	Stderr io.Writer
}

// NewExec creates an Exec runner writing tool output to the standard
// streams.
func NewExec() *Exec {
	return &Exec{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes the command string synchronously. The first field is
// resolved on the search path; a missing tool is a TOOL_NOT_FOUND error.
// A non-zero exit status is a COMMAND_FAILED error carrying the literal
// command text and exit code.
func (e *Exec) Run(ctx context.Context, command string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return errors.New(errors.ErrCodeInternal, "empty command")
	}

	path, err := exec.LookPath(fields[0])
	if err != nil {
		return errors.Wrap(errors.ErrCodeToolNotFound,
			fmt.Sprintf("required tool %q not found on PATH", fields[0]), err)
	}

	slog.Debug("running command", "command", command)
	cmd := exec.CommandContext(ctx, path, fields[1:]...)
	cmd.Stdout = e.stdout()
	cmd.Stderr = e.stderr()

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return CommandError(command, exitErr.ExitCode())
		}
		return errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("failed to execute %q", command), err)
	}
	return nil
}

// InDir changes into dir, runs fn, and unconditionally restores the
// previous working directory, whether fn succeeds or fails. The working
// directory is process-wide state, so directory changes must never leak
// past this call.
func (e *Exec) InDir(dir string, fn func() error) (err error) {
	prev, err := os.Getwd()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to resolve working directory", err)
	}
	if err := os.Chdir(dir); err != nil {
		return errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("failed to change directory to %s", dir), err)
	}
	defer func() {
		if cerr := os.Chdir(prev); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeInternal,
				fmt.Sprintf("failed to restore working directory to %s", prev), cerr)
		}
	}()
	return fn()
}

func (e *Exec) stdout() io.Writer {
	if e.Stdout != nil {
		return e.Stdout
	}
	return os.Stdout
}

func (e *Exec) stderr() io.Writer {
	if e.Stderr != nil {
		return e.Stderr
	}
	return os.Stderr
}

// CommandError builds the COMMAND_FAILED error for a command and exit
// code. It is shared with the Recording fake so tests observe the exact
// production error shape.
func CommandError(command string, code int) error {
	return errors.NewWithContext(errors.ErrCodeCommand,
		fmt.Sprintf("command %q failed with exit code %d", command, code),
		map[string]any{"command": command, "exit_code": code})
}
