/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:                  "build",
		EnableShellCompletion: true,
		Usage:                 "Build the configured unikernel",
		Description: `Build a previously configured unikernel project:

  1. Verify the project was configured (the toolchain's dist directory
     exists); otherwise fail and ask for configure
  2. Remove any stale output link
  3. Invoke the build tool
  4. Link the produced artifact under the predictable name mir-<name>
  5. With --xen, package the native object into a platform image when
     the object output exists

# Examples

Build for the default platform:
  unikit build -c webserver.conf

Build and package a Xen image:
  unikit build -c webserver.conf --xen`,
		Flags: []cli.Flag{
			configFlag,
			xenFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			p, err := newPipeline(cmd)
			if err != nil {
				return err
			}
			return p.Build(ctx)
		},
	}
}
