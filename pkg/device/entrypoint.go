/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package device

import (
	"fmt"

	"github.com/unikit/unikit/pkg/config"
	"github.com/unikit/unikit/pkg/errors"
)

// Flavor selects the shape of the generated entry point.
type Flavor string

const (
	// FlavorIP hands the network manager and interface straight to the
	// named function.
	FlavorIP Flavor = "ip"
	// FlavorHTTP wraps the named function in a request-handling callback
	// wired to the listener bindings.
	FlavorHTTP Flavor = "http"
)

// EntryPoint models the main-ip / main-http directive. Exactly one of the
// two must be present.
type EntryPoint struct {
	Flavor   Flavor
	Function string
}

// NewEntryPoint derives the entry point from its namespaced directives.
func NewEntryPoint(pairs []config.KeyValue) (*EntryPoint, error) {
	ipFn, haveIP := config.Lookup(pairs, "ip")
	httpFn, haveHTTP := config.Lookup(pairs, "http")

	switch {
	case haveIP && haveHTTP:
		return nil, errors.New(errors.ErrCodeConfig, "too many main functions")
	case haveIP:
		return &EntryPoint{Flavor: FlavorIP, Function: ipFn}, nil
	case haveHTTP:
		return &EntryPoint{Flavor: FlavorHTTP, Function: httpFn}, nil
	default:
		return nil, errors.New(errors.ErrCodeConfig, "no main function specified")
	}
}

// Fragment emits the entry-point definition and the final statement that
// starts the run loop.
func (m *EntryPoint) Fragment() Fragment {
	frag := Fragment{Name: "main"}
	if m.Flavor == FlavorHTTP {
		frag.Lines = append(frag.Lines,
			"let () =",
			"  OS.Main.run (",
			fmt.Sprintf("    let callback = %s in", m.Function),
			"    let spec = Http.Server.({ callback; conn_closed = (fun _ () -> ()) }) in",
			"    Net.Manager.create (fun mgr interface id ->",
			"      Http.listen mgr (`TCPv4 ((listen_address, listen_port), spec))",
			"    )",
			"  )",
		)
		return frag
	}
	frag.Lines = append(frag.Lines,
		"let () =",
		"  OS.Main.run (",
		"    Net.Manager.create (fun mgr interface id ->",
		fmt.Sprintf("      %s mgr interface id", m.Function),
		"    )",
		"  )",
	)
	return frag
}
