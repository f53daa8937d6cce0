/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package device

import (
	"fmt"

	"github.com/unikit/unikit/pkg/config"
)

// Mode selects how the generated program configures its network stack.
type Mode string

const (
	// ModeDHCP lets the generated program obtain its address over DHCP.
	ModeDHCP Mode = "dhcp"
	// ModeStatic assigns a fixed address, netmask and gateway.
	ModeStatic Mode = "static"
)

// Static defaults applied when the corresponding ip-* directive is absent.
const (
	DefaultAddress = "10.0.0.2"
	DefaultNetmask = "255.255.255.0"
	DefaultGateway = "10.0.0.1"
)

// Network models the ip-* directives. DHCP wins over any static setting
// when ip-use-dhcp is the literal "true"; any other value, or its
// absence, selects static configuration.
type Network struct {
	Mode    Mode
	Address string
	Netmask string
	Gateway string
}

// NewNetwork derives the network device from its namespaced directives.
// It never fails: a static address literal that does not parse becomes a
// fatal condition in the generated program, not at generation time.
func NewNetwork(pairs []config.KeyValue) *Network {
	if v, ok := config.Lookup(pairs, "use-dhcp"); ok && v == "true" {
		return &Network{Mode: ModeDHCP}
	}
	return &Network{
		Mode:    ModeStatic,
		Address: config.LookupOr(pairs, "address", DefaultAddress),
		Netmask: config.LookupOr(pairs, "netmask", DefaultNetmask),
		Gateway: config.LookupOr(pairs, "gateway", DefaultGateway),
	}
}

// Fragment emits the network-configuration binding. The static variant
// carries an unwrap helper so that a bad address literal fails the
// generated program at startup.
func (n *Network) Fragment() Fragment {
	frag := Fragment{Name: "network"}
	if n.Mode == ModeDHCP {
		frag.Lines = append(frag.Lines, "let ip = `DHCP")
		return frag
	}
	frag.Lines = append(frag.Lines,
		`let get = function Some x -> x | None -> failwith "address parse failure"`,
		"let ip = `IPv4 (",
		fmt.Sprintf("  get (Ipaddr.V4.of_string %q),", n.Address),
		fmt.Sprintf("  get (Ipaddr.V4.of_string %q),", n.Netmask),
		fmt.Sprintf("  [get (Ipaddr.V4.of_string %q)]", n.Gateway),
		")",
	)
	return frag
}
