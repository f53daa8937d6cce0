/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package config loads and parses unikernel project configuration files.
//
// The format is plain text, one directive per line:
//
//	<key>: <value>
//
// Whitespace around both key and value is trimmed. Lines without a ":"
// separator are silently ignored; this permissiveness is intentional and
// doubles as the only way to write free-form text in the file. There is
// no comment syntax.
//
// Related directives are grouped by namespace prefix, the portion of the
// key before the first "-":
//
//	fs-static: files
//	ip-use-dhcp: true
//	http-port: 8080
//	main-http: Dispatch.main
//
// Namespace matching is case-insensitive. The remaining key families,
// "depends" and "packages", are not namespaced and are consumed by the
// device package when building the descriptor.
package config
