/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package gen renders the generated artifacts of a unikernel project:
// the primary source file assembled from device fragments, the build
// descriptor for the downstream toolchain, and an optional checksum
// manifest over both.
//
// Generated files are fully overwritten on every run; there is no
// incremental patching.
package gen
