/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package device models the configurable runtime devices of a unikernel
// project: the embedded filesystems, the network configuration, the
// optional HTTP listener, and the application entry point.
//
// Each device is derived once from its namespaced configuration
// directives and is read-only afterwards. A device contributes a named
// Fragment to the generated source file; the filesystem device
// additionally contributes pre-build embedding-tool invocations. The
// Descriptor aggregates the dependency and package declarations for the
// build descriptor.
//
// Device order in the generated file is fixed: filesystem, network,
// HTTP listener, entry point.
package device
