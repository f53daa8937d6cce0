/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package serializer renders values in JSON, YAML, or a flattened table
// format, to stdout or a file. The CLI describe command uses it to show
// the device model derived from a configuration file.
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(model); err != nil { ... }
package serializer
