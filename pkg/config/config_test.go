/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unikit/unikit/pkg/errors"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "webserver.conf", "main-ip: Main.start\ndepends: cohttp\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.Path)
	assert.Equal(t, "webserver", cfg.BaseName)
	assert.Equal(t, filepath.Dir(path), cfg.Dir)
	assert.Len(t, cfg.Pairs(), 2)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		_, err := Load("")
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeConfig, errors.Code(err))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.conf"))
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeConfig, errors.Code(err))
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		path := writeConfig(t, "bad.conf", "key: value\n\xff\xfe\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeConfig, errors.Code(err))
	})
}

func TestPairs_ParsingRules(t *testing.T) {
	path := writeConfig(t, "app.conf", ""+
		"  ip-address  :  192.168.1.5  \n"+
		"this line has no separator\n"+
		"\n"+
		"http-port: 8080\n"+
		"main-http: Dispatch.main\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	// Separator-less and empty lines are dropped silently; order and
	// whitespace trimming hold for the rest.
	require.Len(t, cfg.Pairs(), 3)
	assert.Equal(t, KeyValue{Key: "ip-address", Value: "192.168.1.5"}, cfg.Pairs()[0])
	assert.Equal(t, KeyValue{Key: "http-port", Value: "8080"}, cfg.Pairs()[1])
	assert.Equal(t, KeyValue{Key: "main-http", Value: "Dispatch.main"}, cfg.Pairs()[2])
}

func TestPairs_ValueMayContainSeparator(t *testing.T) {
	path := writeConfig(t, "app.conf", "fs-data: some:odd:path\n")
	cfg, err := Load(path)
	require.NoError(t, err)

	require.Len(t, cfg.Pairs(), 1)
	assert.Equal(t, "some:odd:path", cfg.Pairs()[0].Value)
}

func TestNamespace(t *testing.T) {
	path := writeConfig(t, "app.conf", ""+
		"fs-static: files\n"+
		"ip-use-dhcp: true\n"+
		"FS-templates: tmpl\n"+
		"fsx-other: nope\n"+
		"depends: cohttp\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	got := cfg.Namespace("fs")
	require.Len(t, got, 2, "prefix match is case-insensitive and exact")
	assert.Equal(t, KeyValue{Key: "static", Value: "files"}, got[0])
	assert.Equal(t, KeyValue{Key: "templates", Value: "tmpl"}, got[1])

	// Keys without a "-" never belong to a namespace.
	assert.Empty(t, cfg.Namespace("depends"))
}

func TestLookup(t *testing.T) {
	pairs := []KeyValue{
		{Key: "address", Value: "10.0.0.9"},
		{Key: "address", Value: "ignored-duplicate"},
	}

	v, ok := Lookup(pairs, "address")
	assert.True(t, ok)
	assert.Equal(t, "10.0.0.9", v)

	_, ok = Lookup(pairs, "netmask")
	assert.False(t, ok)
	assert.Equal(t, "255.255.255.0", LookupOr(pairs, "netmask", "255.255.255.0"))
}
