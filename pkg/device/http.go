/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package device

import (
	"fmt"
	"strconv"

	"github.com/unikit/unikit/pkg/config"
	"github.com/unikit/unikit/pkg/errors"
)

// bindAll is the http-address value requesting a listener on all
// interfaces.
const bindAll = "*"

// HTTPListener models the optional http-port/http-address directive pair.
// Address is empty when the listener binds all interfaces.
type HTTPListener struct {
	Port    int
	Address string
}

// NewHTTPListener derives the listener from its namespaced directives.
// The device is present iff both the port and address directives exist;
// a partial pair emits nothing. A non-integer port is a fatal
// configuration error whenever the port directive exists, even without
// a matching address.
func NewHTTPListener(pairs []config.KeyValue) (*HTTPListener, error) {
	portValue, havePort := config.Lookup(pairs, "port")
	address, haveAddress := config.Lookup(pairs, "address")

	var port int
	if havePort {
		var err error
		port, err = strconv.Atoi(portValue)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfig,
				fmt.Sprintf("http-port %q is not an integer", portValue), err)
		}
	}
	if !havePort || !haveAddress {
		return nil, nil
	}

	if address == bindAll {
		address = ""
	}
	return &HTTPListener{Port: port, Address: address}, nil
}

// Fragment emits the listener bindings: the port, and either the bind-all
// marker or a parsed address literal. An absent listener emits nothing.
func (l *HTTPListener) Fragment() Fragment {
	frag := Fragment{Name: "http"}
	if l == nil {
		return frag
	}
	frag.Lines = append(frag.Lines, fmt.Sprintf("let listen_port = %d", l.Port))
	if l.Address == "" {
		frag.Lines = append(frag.Lines, "let listen_address = None")
	} else {
		frag.Lines = append(frag.Lines, fmt.Sprintf(
			"let listen_address = Some (match Ipaddr.V4.of_string %q with Some x -> x | None -> failwith %q)",
			l.Address, "address parse failure"))
	}
	return frag
}
