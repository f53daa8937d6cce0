/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package pipeline sequences the unikit build stages for one
// configuration file:
//
//	Init -> Generated -> Configured -> Built -> (optional) Packaged
//
// Configure emits the generated source and descriptor, runs the
// filesystem embedding actions, installs declared packages, and invokes
// the build-configuration tool. Build requires evidence that Configure
// already ran, invokes the build tool, links the artifact under a
// predictable name, and optionally packages a platform image.
//
// The pipeline is single-threaded and strictly sequential. Every
// external command blocks until it exits, and the first failure is
// terminal: no retry, no rollback, no cleanup of files generated so far.
package pipeline
