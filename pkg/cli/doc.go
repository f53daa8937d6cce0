/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the command-line interface for unikit.
//
// # Overview
//
// unikit turns a small line-oriented configuration file into a generated
// unikernel program plus a build descriptor, and drives the external
// toolchain that configures, builds, and optionally packages the result
// as a platform image.
//
// # Commands
//
// configure - generate sources and prepare the build:
//
//	unikit configure -c app.conf [--xen] [--checksums]
//
// Emits main.ml and <name>.obuild next to the configuration file, runs
// the filesystem embedding tool for each fs-* entry, installs declared
// packages, and invokes the build-configuration tool.
//
// build - build the configured project:
//
//	unikit build -c app.conf [--xen]
//
// Requires a prior configure. Invokes the build tool, links the artifact
// as mir-<name>, and with --xen packages the native object into a
// platform image.
//
// describe - inspect the derived model:
//
//	unikit describe -c app.conf [-t yaml|json|table] [-o FILE]
//
// # Configuration format
//
// One directive per line, "<key>: <value>"; lines without ":" are
// ignored. Key families: fs-<name>, ip-use-dhcp/ip-address/ip-netmask/
// ip-gateway, http-port/http-address ("*" binds all interfaces),
// main-ip/main-http, depends, packages.
//
// # Exit codes
//
//	0  success, informational progress on stdout
//	1  any fatal condition, one descriptive line on stderr
//
// # Environment variables
//
//	LOG_LEVEL  diagnostic log verbosity (debug, info, warn, error)
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/unikit/unikit/pkg/cli.version=1.0.0'"
package cli
