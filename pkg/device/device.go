/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package device

import (
	"github.com/unikit/unikit/pkg/config"
)

// Fragment is a named, ordered piece of the generated source file.
// Devices produce fragments; the gen package renders them. Keeping the
// intermediate representation structured lets tests assert on fragments
// instead of diffing rendered text.
type Fragment struct {
	// Name identifies the contributing device ("filesystem", "network",
	// "http", "main").
	Name string
	// Lines is the fragment body, one generated source line per entry.
	// An empty body renders nothing.
	Lines []string
}

// Set holds the four derived device specs for one configuration. Each
// spec is derived once from its namespaced directives and read-only
// afterwards.
type Set struct {
	Filesystem *Filesystem
	Network    *Network
	HTTP       *HTTPListener
	Main       *EntryPoint
}

// NewSet derives all device specs from the configuration. Any device
// validation failure is fatal and aborts the whole derivation.
func NewSet(cfg *config.Config) (*Set, error) {
	fs, err := NewFilesystem(cfg.Namespace("fs"), cfg.Dir)
	if err != nil {
		return nil, err
	}

	listener, err := NewHTTPListener(cfg.Namespace("http"))
	if err != nil {
		return nil, err
	}

	main, err := NewEntryPoint(cfg.Namespace("main"))
	if err != nil {
		return nil, err
	}

	return &Set{
		Filesystem: fs,
		Network:    NewNetwork(cfg.Namespace("ip")),
		HTTP:       listener,
		Main:       main,
	}, nil
}

// Fragments returns the generated-source fragments in device order:
// filesystem, network, HTTP listener, entry point.
func (s *Set) Fragments() []Fragment {
	return []Fragment{
		s.Filesystem.Fragment(),
		s.Network.Fragment(),
		s.HTTP.Fragment(),
		s.Main.Fragment(),
	}
}
