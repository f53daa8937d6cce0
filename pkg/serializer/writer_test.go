/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package serializer

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sample struct {
	Name  string   `json:"name" yaml:"name"`
	Ports []int    `json:"ports" yaml:"ports"`
	Tags  []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

func TestWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)
	require.NoError(t, w.Serialize(sample{Name: "webserver", Ports: []int{8080}}))

	var got sample
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "webserver", got.Name)
	assert.Equal(t, []int{8080}, got.Ports)
}

func TestWriter_YAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)
	require.NoError(t, w.Serialize(sample{Name: "webserver", Ports: []int{8080}}))

	var got sample
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "webserver", got.Name)
}

func TestWriter_Table(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)
	require.NoError(t, w.Serialize(sample{Name: "webserver", Ports: []int{8080, 8443}}))

	out := buf.String()
	assert.Contains(t, out, "FIELD")
	assert.Contains(t, out, "Name")
	assert.Contains(t, out, "webserver")
	assert.Contains(t, out, "Ports.[1]")
}

func TestWriter_UnknownFormatFallsBackToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)
	require.NoError(t, w.Serialize(sample{Name: "x"}))
	assert.True(t, json.Valid(buf.Bytes()))
}

func TestNewFileWriterOrStdout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	w := NewFileWriterOrStdout(FormatYAML, path)
	require.NoError(t, w.Serialize(sample{Name: "webserver"}))
	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "close is idempotent")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "webserver")
}
