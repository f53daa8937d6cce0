/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/unikit/unikit/pkg/errors"
)

// maxConfigSize bounds the size of a configuration file. Real project
// files are a handful of lines; anything near this limit is a mistake.
const maxConfigSize = 1 << 20

// separator splits a directive line into key and value.
const separator = ":"

// KeyValue is a single parsed directive. Key and value are trimmed of
// leading and trailing whitespace.
type KeyValue struct {
	Key   string
	Value string
}

// Config is the raw configuration read from disk. It is created once per
// invocation and never mutated afterwards.
type Config struct {
	// Path is the configuration file path as given by the caller.
	Path string
	// Dir is the directory containing the configuration file. All
	// generated files and relative filesystem entries resolve against it.
	Dir string
	// BaseName is the file base name without extension. It names the
	// generated package and the build output link.
	BaseName string
	// Lines holds the file content in file order, one entry per line.
	Lines []string

	pairs []KeyValue
}

// Load reads the configuration file at path. It fails if the file cannot
// be read, is not valid UTF-8, or exceeds the size bound. Parsing of the
// individual lines never fails: lines without a separator are dropped.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New(errors.ErrCodeConfig, "configuration file path cannot be empty")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfig,
			fmt.Sprintf("failed to read configuration file %q", path), err)
	}
	if !utf8.Valid(b) {
		return nil, errors.New(errors.ErrCodeConfig,
			fmt.Sprintf("configuration file %q is not valid UTF-8", path))
	}
	if len(b) > maxConfigSize {
		return nil, errors.New(errors.ErrCodeConfig,
			fmt.Sprintf("configuration file %q exceeds maximum size of %d bytes", path, maxConfigSize))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("failed to resolve configuration path %q", path), err)
	}

	base := filepath.Base(abs)
	cfg := &Config{
		Path:     path,
		Dir:      filepath.Dir(abs),
		BaseName: strings.TrimSuffix(base, filepath.Ext(base)),
		Lines:    strings.Split(string(b), "\n"),
	}
	cfg.pairs = parsePairs(cfg.Lines)

	slog.Debug("configuration loaded",
		"path", path,
		"lines", len(cfg.Lines),
		"pairs", len(cfg.pairs),
	)
	return cfg, nil
}

// Pairs returns the parsed key/value directives in file order.
func (c *Config) Pairs() []KeyValue {
	return c.pairs
}

// Namespace returns the directives whose key belongs to the given prefix,
// in file order, with the prefix stripped. A key belongs to a namespace
// when the portion before its first "-" matches the prefix
// case-insensitively; the remainder becomes the effective key.
func (c *Config) Namespace(prefix string) []KeyValue {
	var out []KeyValue
	for _, kv := range c.pairs {
		head, rest, found := strings.Cut(kv.Key, "-")
		if !found {
			continue
		}
		if !strings.EqualFold(head, prefix) {
			continue
		}
		out = append(out, KeyValue{Key: rest, Value: kv.Value})
	}
	return out
}

// parsePairs converts lines into ordered key/value pairs. A line is a
// directive iff it contains the separator; everything else is dropped
// without error. There is no comment syntax.
func parsePairs(lines []string) []KeyValue {
	pairs := make([]KeyValue, 0, len(lines))
	for _, line := range lines {
		key, value, found := strings.Cut(line, separator)
		if !found {
			if strings.TrimSpace(line) != "" {
				slog.Debug("skipping line without separator", "line", line)
			}
			continue
		}
		pairs = append(pairs, KeyValue{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}
	return pairs
}

// Lookup returns the value of the first pair with the given key.
func Lookup(pairs []KeyValue, key string) (string, bool) {
	for _, kv := range pairs {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// LookupOr returns the value of the first pair with the given key, or
// fallback when the key is absent.
func LookupOr(pairs []KeyValue, key, fallback string) string {
	if v, ok := Lookup(pairs, key); ok {
		return v
	}
	return fallback
}
