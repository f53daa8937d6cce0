/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package device

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unikit/unikit/pkg/config"
	"github.com/unikit/unikit/pkg/errors"
)

func TestNewEntryPoint(t *testing.T) {
	t.Run("neither key is fatal", func(t *testing.T) {
		_, err := NewEntryPoint(nil)
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeConfig, errors.Code(err))
		assert.Contains(t, err.Error(), "no main function specified")
	})

	t.Run("both keys is fatal", func(t *testing.T) {
		_, err := NewEntryPoint([]config.KeyValue{
			{Key: "ip", Value: "Main.start"},
			{Key: "http", Value: "Dispatch.main"},
		})
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeConfig, errors.Code(err))
		assert.Contains(t, err.Error(), "too many main functions")
	})

	t.Run("exactly one succeeds", func(t *testing.T) {
		m, err := NewEntryPoint([]config.KeyValue{{Key: "ip", Value: "Main.start"}})
		require.NoError(t, err)
		assert.Equal(t, &EntryPoint{Flavor: FlavorIP, Function: "Main.start"}, m)

		m, err = NewEntryPoint([]config.KeyValue{{Key: "http", Value: "Dispatch.main"}})
		require.NoError(t, err)
		assert.Equal(t, &EntryPoint{Flavor: FlavorHTTP, Function: "Dispatch.main"}, m)
	})
}

func TestEntryPoint_Fragment(t *testing.T) {
	t.Run("ip flavor hands manager to the function", func(t *testing.T) {
		m := &EntryPoint{Flavor: FlavorIP, Function: "Main.start"}
		body := strings.Join(m.Fragment().Lines, "\n")
		assert.Contains(t, body, "OS.Main.run")
		assert.Contains(t, body, "Net.Manager.create")
		assert.Contains(t, body, "Main.start mgr interface id")
		assert.NotContains(t, body, "listen_port")
	})

	t.Run("http flavor wires the listener bindings", func(t *testing.T) {
		m := &EntryPoint{Flavor: FlavorHTTP, Function: "Dispatch.main"}
		body := strings.Join(m.Fragment().Lines, "\n")
		assert.Contains(t, body, "let callback = Dispatch.main in")
		assert.Contains(t, body, "listen_address, listen_port")
		assert.Contains(t, body, "OS.Main.run")
	})
}
