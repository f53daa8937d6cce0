/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package compose

import "github.com/unikit/unikit/pkg/device"

// KeyType enumerates the value types a device configuration key may
// carry.
type KeyType int

const (
	String KeyType = iota
	Int
	Bool
	IPAddress
	Path
)

// Key is a typed configuration key a Device accepts.
type Key struct {
	// Name is the key as written in the configuration, without the
	// namespace prefix.
	Name string
	// Type constrains the accepted value.
	Type KeyType
	// Doc is a one-line description shown in generated help.
	Doc string
	// Default is the rendered default value, empty when the key is
	// required.
	Default string
}

// Device is the typed replacement for the generators in the device
// package. A Device declares its configuration schema up front, is
// configured from validated values, and produces its fragment of the
// generated program.
type Device interface {
	// Name is the namespace prefix grouping the device's keys.
	Name() string
	// Keys declares the configuration schema.
	Keys() []Key
	// Configure applies validated values. Called at most once.
	Configure(values map[string]string) error
	// Fragment produces the device's piece of the generated source file.
	Fragment() (device.Fragment, error)
}

// Job composes devices into one runnable unit with a single entry
// point.
type Job interface {
	// Name identifies the job; it becomes the generated package name.
	Name() string
	// Devices lists the composed devices in emission order.
	Devices() []Device
}

// Language is the plug-in point for specialized configuration DSLs that
// produce jobs instead of the flat key/value file format.
type Language interface {
	// Extensions lists the file extensions the language claims.
	Extensions() []string
	// Parse evaluates a source file into a composed job.
	Parse(path string) (Job, error)
}
