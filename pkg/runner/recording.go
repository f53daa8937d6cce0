/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package runner

import (
	"context"
	"strings"
)

// Recording is a Runner fake for deterministic tests. It records every
// command and scoped directory instead of executing anything, and can be
// scripted to fail specific commands.
type Recording struct {
	// Commands holds every command passed to Run, in order.
	Commands []string
	// Dirs holds every directory passed to InDir, in order.
	Dirs []string
	// FailWith maps a command prefix to an exit code; a matching command
	// fails with the production COMMAND_FAILED error.
	FailWith map[string]int
}

// Run records the command and fails if a scripted prefix matches.
func (r *Recording) Run(_ context.Context, command string) error {
	r.Commands = append(r.Commands, command)
	for prefix, code := range r.FailWith {
		if strings.HasPrefix(command, prefix) {
			return CommandError(command, code)
		}
	}
	return nil
}

// InDir records the directory and runs fn without changing directory.
func (r *Recording) InDir(dir string, fn func() error) error {
	r.Dirs = append(r.Dirs, dir)
	return fn()
}
