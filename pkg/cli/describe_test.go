/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "webserver.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDescribeCommand(t *testing.T) {
	cfgPath := writeConfigFile(t, ""+
		"ip-use-dhcp: true\n"+
		"http-port: 8080\n"+
		"http-address: *\n"+
		"main-http: Dispatch.main\n"+
		"depends: cohttp\n")
	outPath := filepath.Join(t.TempDir(), "model.json")

	err := rootCmd().Run(context.Background(),
		[]string{"unikit", "describe", "-c", cfgPath, "-t", "json", "-o", outPath})
	require.NoError(t, err)

	content, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var got description
	require.NoError(t, json.Unmarshal(content, &got))
	assert.Equal(t, "webserver", got.Name)
	assert.Equal(t, "dhcp", got.Network.Mode)
	require.NotNil(t, got.HTTP)
	assert.Equal(t, 8080, got.HTTP.Port)
	assert.Equal(t, "*", got.HTTP.Address)
	assert.Equal(t, "http", got.Main.Flavor)
	assert.Equal(t, []string{"mirage", "cohttp"}, got.Depends)
}

func TestDescribeCommand_UnknownFormat(t *testing.T) {
	cfgPath := writeConfigFile(t, "main-ip: Main.start\n")

	err := rootCmd().Run(context.Background(),
		[]string{"unikit", "describe", "-c", cfgPath, "-t", "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestConfigureCommand_ConflictingEntryPoints(t *testing.T) {
	cfgPath := writeConfigFile(t, "main-ip: Main.start\nmain-http: Dispatch.main\n")

	err := rootCmd().Run(context.Background(),
		[]string{"unikit", "configure", "-c", cfgPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many main functions")
}
