/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

func configureCmd() *cli.Command {
	return &cli.Command{
		Name:                  "configure",
		EnableShellCompletion: true,
		Usage:                 "Generate sources and configure the build",
		Description: `Generate the unikernel program and build descriptor from a configuration
file, then prepare the build:

  1. Emit main.ml (device fragments) and <name>.obuild next to the
     configuration file, overwriting any previous versions
  2. Run the filesystem embedding tool once per fs-* entry
  3. Install declared packages with the package installer, if any
  4. Invoke the build-configuration tool (with the object-output toggle
     when --xen is given)

All steps run sequentially in the configuration file's directory and the
first failing tool aborts the run.

# Examples

Configure for the default platform:
  unikit configure -c webserver.conf

Configure for Xen with a checksum manifest over the generated files:
  unikit configure -c webserver.conf --xen --checksums`,
		Flags: []cli.Flag{
			configFlag,
			xenFlag,
			&cli.BoolFlag{
				Name:  "checksums",
				Usage: "Write a checksums.txt manifest over the generated files",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			p, err := newPipeline(cmd)
			if err != nil {
				return err
			}
			return p.Configure(ctx)
		},
	}
}
