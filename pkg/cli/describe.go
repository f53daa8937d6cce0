/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/unikit/unikit/pkg/config"
	"github.com/unikit/unikit/pkg/device"
	"github.com/unikit/unikit/pkg/serializer"
)

// description is the serializable view of the model derived from a
// configuration file.
type description struct {
	Name       string             `json:"name" yaml:"name"`
	Filesystem []filesystemEntry  `json:"filesystem,omitempty" yaml:"filesystem,omitempty"`
	Network    networkDescription `json:"network" yaml:"network"`
	HTTP       *httpDescription   `json:"http,omitempty" yaml:"http,omitempty"`
	Main       mainDescription    `json:"main" yaml:"main"`
	Depends    []string           `json:"depends" yaml:"depends"`
	Packages   []string           `json:"packages,omitempty" yaml:"packages,omitempty"`
}

type filesystemEntry struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

type networkDescription struct {
	Mode    string `json:"mode" yaml:"mode"`
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
	Netmask string `json:"netmask,omitempty" yaml:"netmask,omitempty"`
	Gateway string `json:"gateway,omitempty" yaml:"gateway,omitempty"`
}

type httpDescription struct {
	Port    int    `json:"port" yaml:"port"`
	Address string `json:"address,omitempty" yaml:"address,omitempty"`
}

type mainDescription struct {
	Flavor   string `json:"flavor" yaml:"flavor"`
	Function string `json:"function" yaml:"function"`
}

func describeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "describe",
		EnableShellCompletion: true,
		Usage:                 "Show the model derived from a configuration file",
		Description: `Parse a configuration file and show the derived device and descriptor
model without generating anything or running any tool. Useful to verify
what configure would produce.

# Examples

Describe as YAML on stdout:
  unikit describe -c webserver.conf

Describe as JSON into a file:
  unikit describe -c webserver.conf -t json -o model.json`,
		Flags: []cli.Flag{
			configFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}
			devices, err := device.NewSet(cfg)
			if err != nil {
				return err
			}
			desc := device.NewDescriptor(cfg)

			w := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer w.Close()
			return w.Serialize(describe(cfg, devices, desc))
		},
	}
}

// describe flattens the derived model into its serializable view.
func describe(cfg *config.Config, devices *device.Set, desc *device.Descriptor) description {
	d := description{
		Name: cfg.BaseName,
		Network: networkDescription{
			Mode:    string(devices.Network.Mode),
			Address: devices.Network.Address,
			Netmask: devices.Network.Netmask,
			Gateway: devices.Network.Gateway,
		},
		Main: mainDescription{
			Flavor:   string(devices.Main.Flavor),
			Function: devices.Main.Function,
		},
		Depends:  desc.BuildDepends(),
		Packages: desc.Packages,
	}
	for _, e := range devices.Filesystem.Entries {
		d.Filesystem = append(d.Filesystem, filesystemEntry{Name: e.Name, Path: e.Path})
	}
	if devices.HTTP != nil {
		addr := devices.HTTP.Address
		if addr == "" {
			addr = "*"
		}
		d.HTTP = &httpDescription{Port: devices.HTTP.Port, Address: addr}
	}
	return d
}
