/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/unikit/unikit/pkg/config"
	"github.com/unikit/unikit/pkg/device"
	"github.com/unikit/unikit/pkg/errors"
	"github.com/unikit/unikit/pkg/gen"
	"github.com/unikit/unikit/pkg/runner"
)

// Target selects the build platform.
type Target string

const (
	// TargetUnix builds a regular executable for the host.
	TargetUnix Target = "unix"
	// TargetXen builds an object suitable for platform-image packaging.
	TargetXen Target = "xen"
)

// State tracks pipeline progress. Transitions are strictly forward;
// any failure is terminal.
type State string

const (
	StateInit       State = "init"
	StateGenerated  State = "generated"
	StateConfigured State = "configured"
	StateBuilt      State = "built"
	StatePackaged   State = "packaged"
	StateFailed     State = "failed"
)

// distDir is the marker directory the build-configuration tool creates;
// its presence is the evidence that configure already ran.
const distDir = "dist"

// Pipeline orchestrates the generate, configure, build and packaging
// stages for one configuration file. Everything runs sequentially and
// fails fast: the first non-zero tool exit aborts the operation with no
// retry and no rollback of already-generated files.
type Pipeline struct {
	cfg     *config.Config
	devices *device.Set
	desc    *device.Descriptor

	run       runner.Runner
	target    Target
	checksums bool
	progress  io.Writer

	state   State
	failure error
	runID   string
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRunner sets the command runner. Tests use runner.Recording.
func WithRunner(r runner.Runner) Option {
	return func(p *Pipeline) {
		if r != nil {
			p.run = r
		}
	}
}

// WithTarget selects the build platform.
func WithTarget(t Target) Option {
	return func(p *Pipeline) {
		p.target = t
	}
}

// WithChecksums enables the checksum manifest over the generated files.
func WithChecksums(enabled bool) Option {
	return func(p *Pipeline) {
		p.checksums = enabled
	}
}

// WithProgress sets the writer for user-facing progress lines.
// Defaults to stdout.
func WithProgress(w io.Writer) Option {
	return func(p *Pipeline) {
		if w != nil {
			p.progress = w
		}
	}
}

// New derives the device and descriptor specs from the configuration and
// prepares a pipeline in the Init state. Device validation failures
// (missing filesystem directory, bad port, entry-point conflicts) are
// reported here, before anything touches the disk.
func New(cfg *config.Config, opts ...Option) (*Pipeline, error) {
	devices, err := device.NewSet(cfg)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		cfg:      cfg,
		devices:  devices,
		desc:     device.NewDescriptor(cfg),
		run:      runner.NewExec(),
		target:   TargetUnix,
		progress: os.Stdout,
		state:    StateInit,
		runID:    uuid.NewString(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// State returns the current pipeline state.
func (p *Pipeline) State() State {
	return p.state
}

// Failure returns the error that moved the pipeline into StateFailed,
// or nil.
func (p *Pipeline) Failure() error {
	return p.failure
}

// Descriptor exposes the derived build descriptor.
func (p *Pipeline) Descriptor() *device.Descriptor {
	return p.desc
}

// Devices exposes the derived device set.
func (p *Pipeline) Devices() *device.Set {
	return p.devices
}

// Configure emits the generated source file and build descriptor, runs
// the filesystem pre-build actions, installs declared packages, and
// invokes the build-configuration tool.
func (p *Pipeline) Configure(ctx context.Context) error {
	log := slog.With("run_id", p.runID, "config", p.cfg.Path)
	log.Debug("configure starting", "target", p.target)

	p.printf("Generating %s and %s", gen.MainFileName, gen.DescriptorFileName(p.desc.Name))
	mainPath, err := gen.WriteMain(p.cfg.Dir, filepath.Base(p.cfg.Path), p.devices.Fragments())
	if err != nil {
		return p.fail(err)
	}
	descPath, err := gen.WriteDescriptor(p.cfg.Dir, p.desc)
	if err != nil {
		return p.fail(err)
	}
	p.state = StateGenerated

	if p.checksums {
		if _, err := gen.WriteChecksums(p.cfg.Dir, []string{mainPath, descPath}); err != nil {
			return p.fail(err)
		}
	}

	err = p.run.InDir(p.cfg.Dir, func() error {
		for _, cmd := range p.devices.Filesystem.PreBuildCommands() {
			p.printf("Embedding filesystem: %s", cmd)
			if err := p.run.Run(ctx, cmd); err != nil {
				return err
			}
		}

		if len(p.desc.Packages) > 0 {
			cmd := "opam install -y " + strings.Join(p.desc.Packages, " ")
			p.printf("Installing packages: %s", strings.Join(p.desc.Packages, ", "))
			if err := p.run.Run(ctx, cmd); err != nil {
				return err
			}
		}

		cmd := "obuild configure"
		if p.target == TargetXen {
			cmd += " --executable-as-obj"
		}
		p.printf("Configuring build: %s", cmd)
		return p.run.Run(ctx, cmd)
	})
	if err != nil {
		return p.fail(err)
	}

	p.state = StateConfigured
	p.printf("Configuration complete")
	log.Debug("configure finished", "state", p.state)
	return nil
}

// Build invokes the build tool and installs the produced artifact under
// its predictable link name. It requires that Configure already ran, as
// evidenced by the toolchain's dist directory. For the Xen target it
// additionally packages the native object into a platform image when the
// object exists.
func (p *Pipeline) Build(ctx context.Context) error {
	log := slog.With("run_id", p.runID, "config", p.cfg.Path)
	log.Debug("build starting", "target", p.target)

	if info, err := os.Stat(filepath.Join(p.cfg.Dir, distDir)); err != nil || !info.IsDir() {
		return p.fail(errors.New(errors.ErrCodeState,
			"project is not configured: run configure first"))
	}

	// Stale link removal; a missing link is a no-op.
	link := p.linkName()
	if err := os.Remove(filepath.Join(p.cfg.Dir, link)); err != nil && !os.IsNotExist(err) {
		return p.fail(errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("failed to remove stale link %s", link), err))
	}

	err := p.run.InDir(p.cfg.Dir, func() error {
		p.printf("Building %s", p.desc.Name)
		return p.run.Run(ctx, "obuild build")
	})
	if err != nil {
		return p.fail(err)
	}

	artifact := filepath.Join(distDir, "build", p.desc.Name, p.desc.Name)
	if err := os.Symlink(artifact, filepath.Join(p.cfg.Dir, link)); err != nil {
		return p.fail(errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("failed to link build artifact to %s", link), err))
	}
	p.state = StateBuilt
	p.printf("Built %s", link)

	if p.target == TargetXen {
		if err := p.packageImage(ctx); err != nil {
			return p.fail(err)
		}
	}

	log.Debug("build finished", "state", p.state)
	return nil
}

// packageImage turns the built native object into a platform image. The
// packaging step only runs when the expected object output exists.
func (p *Pipeline) packageImage(ctx context.Context) error {
	object := filepath.Join(distDir, "build", p.desc.Name, p.desc.Name+".o")
	if _, err := os.Stat(filepath.Join(p.cfg.Dir, object)); err != nil {
		slog.Debug("native object not found, skipping image packaging", "object", object)
		return nil
	}

	image := p.linkName() + ".xen"
	err := p.run.InDir(p.cfg.Dir, func() error {
		cmd := fmt.Sprintf("mir-xen -o %s %s", image, object)
		p.printf("Packaging platform image: %s", image)
		return p.run.Run(ctx, cmd)
	})
	if err != nil {
		return err
	}
	p.state = StatePackaged
	return nil
}

// linkName is the predictable name the built artifact is installed under.
func (p *Pipeline) linkName() string {
	return "mir-" + p.desc.Name
}

// fail records the terminal failure and returns it unchanged.
func (p *Pipeline) fail(err error) error {
	p.state = StateFailed
	p.failure = err
	return err
}

func (p *Pipeline) printf(format string, args ...any) {
	fmt.Fprintf(p.progress, format+"\n", args...)
}
