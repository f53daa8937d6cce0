/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package device

import (
	"strings"

	"github.com/unikit/unikit/pkg/config"
)

// BaseDependency is the platform library every generated executable
// depends on, always first in the descriptor's dependency list.
const BaseDependency = "mirage"

// Descriptor aggregates the build-descriptor inputs across the whole
// configuration file: the package name plus every depends/packages
// directive.
//
// Accumulation prepends each line's comma-split tokens to the running
// list: tokens from the last matching line come first, intra-line order
// is preserved.
type Descriptor struct {
	// Name is the configuration file's base name without extension.
	Name string
	// Dependencies are the declared library dependencies, in accumulator
	// order, without the base dependency.
	Dependencies []string
	// Packages are the system packages to hand to the package installer
	// before configuring, in accumulator order.
	Packages []string
}

// NewDescriptor derives the build descriptor from the configuration.
func NewDescriptor(cfg *config.Config) *Descriptor {
	d := &Descriptor{Name: cfg.BaseName}
	for _, kv := range cfg.Pairs() {
		switch kv.Key {
		case "depends":
			d.Dependencies = append(splitTokens(kv.Value), d.Dependencies...)
		case "packages":
			d.Packages = append(splitTokens(kv.Value), d.Packages...)
		}
	}
	return d
}

// BuildDepends returns the full dependency list for the descriptor: the
// base platform dependency followed by the declared dependencies. The
// base dependency is present even when nothing was declared.
func (d *Descriptor) BuildDepends() []string {
	return append([]string{BaseDependency}, d.Dependencies...)
}

// splitTokens comma-splits a directive value and trims each token.
// Empty tokens are dropped.
func splitTokens(value string) []string {
	parts := strings.Split(value, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
