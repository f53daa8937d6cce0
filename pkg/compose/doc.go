/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package compose declares the typed device-composition contract that
// will eventually replace the flat key/value configuration handled by
// the config and device packages.
//
// The contract is interfaces only: typed configuration keys per device,
// jobs composing devices into runnable units, and a plug-in point for
// richer configuration DSLs. No implementations exist yet; the current
// pipeline does not consume this package.
package compose
