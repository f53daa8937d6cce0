/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package runner executes the external tools the pipeline depends on:
// the filesystem embedding tool, the package installer, the
// build-configuration and build tools, and the platform-image packager.
//
// Commands run synchronously and block the pipeline until they exit.
// There is no retry and no timeout; cancelling the context is the only
// way to stop an in-flight command, and doing so may leave partially
// written build artifacts behind. That limitation is part of the
// pipeline contract.
//
// The Runner interface exists so the pipeline can be tested without a
// toolchain installed; Recording is the test fake.
package runner
