/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/unikit/unikit/pkg/config"
	"github.com/unikit/unikit/pkg/logging"
	"github.com/unikit/unikit/pkg/pipeline"
	"github.com/unikit/unikit/pkg/serializer"
)

const (
	name           = "unikit"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Flags shared across commands.
var (
	configFlag = &cli.StringFlag{
		Name:     "config",
		Aliases:  []string{"c"},
		Required: true,
		Usage:    "Path to the unikernel configuration file",
	}
	xenFlag = &cli.BoolFlag{
		Name:  "xen",
		Usage: "Target the Xen platform (build an object and package a platform image)",
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Output format (supported values: %v)", serializer.SupportedFormats()),
	}
)

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Configure and build unikernel applications",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Commands: []*cli.Command{
			configureCmd(),
			buildCmd(),
			describeCmd(),
		},
	}
}

// Execute runs the root command. It is called by main, installs the
// default structured logger, and terminates the process with a non-zero
// status and a single error line on stderr on any fatal condition.
func Execute() {
	logging.SetDefaultStructuredLogger(name, version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// An interrupt cancels any in-flight external command. Partially
	// written build artifacts are left behind; there is no cleanup.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newPipeline loads the configuration named by the command flags and
// derives a pipeline from it.
func newPipeline(cmd *cli.Command) (*pipeline.Pipeline, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	opts := []pipeline.Option{}
	if cmd.Bool("xen") {
		opts = append(opts, pipeline.WithTarget(pipeline.TargetXen))
	}
	if cmd.Bool("checksums") {
		opts = append(opts, pipeline.WithChecksums(true))
	}
	return pipeline.New(cfg, opts...)
}
