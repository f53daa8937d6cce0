/*
Copyright © 2025 Unikit Authors
SPDX-License-Identifier: Apache-2.0
*/
package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unikit/unikit/pkg/config"
	"github.com/unikit/unikit/pkg/errors"
)

func TestNewHTTPListener(t *testing.T) {
	t.Run("absent without both keys", func(t *testing.T) {
		l, err := NewHTTPListener(nil)
		require.NoError(t, err)
		assert.Nil(t, l)

		l, err = NewHTTPListener([]config.KeyValue{{Key: "port", Value: "8080"}})
		require.NoError(t, err)
		assert.Nil(t, l)

		l, err = NewHTTPListener([]config.KeyValue{{Key: "address", Value: "*"}})
		require.NoError(t, err)
		assert.Nil(t, l)
	})

	t.Run("star maps to bind-all", func(t *testing.T) {
		l, err := NewHTTPListener([]config.KeyValue{
			{Key: "port", Value: "8080"},
			{Key: "address", Value: "*"},
		})
		require.NoError(t, err)
		assert.Equal(t, &HTTPListener{Port: 8080}, l)
	})

	t.Run("literal address is kept", func(t *testing.T) {
		l, err := NewHTTPListener([]config.KeyValue{
			{Key: "port", Value: "80"},
			{Key: "address", Value: "192.168.1.5"},
		})
		require.NoError(t, err)
		assert.Equal(t, &HTTPListener{Port: 80, Address: "192.168.1.5"}, l)
	})

	t.Run("non-integer port is fatal", func(t *testing.T) {
		_, err := NewHTTPListener([]config.KeyValue{
			{Key: "port", Value: "eighty"},
			{Key: "address", Value: "*"},
		})
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeConfig, errors.Code(err))
	})

	t.Run("non-integer port is fatal even without an address", func(t *testing.T) {
		_, err := NewHTTPListener([]config.KeyValue{
			{Key: "port", Value: "eighty"},
		})
		require.Error(t, err)
		assert.Equal(t, errors.ErrCodeConfig, errors.Code(err))
	})
}

func TestHTTPListener_Fragment(t *testing.T) {
	t.Run("absent listener emits nothing", func(t *testing.T) {
		var l *HTTPListener
		assert.Empty(t, l.Fragment().Lines)
	})

	t.Run("bind all", func(t *testing.T) {
		l := &HTTPListener{Port: 8080}
		assert.Equal(t, []string{
			"let listen_port = 8080",
			"let listen_address = None",
		}, l.Fragment().Lines)
	})

	t.Run("literal address is parsed in the generated program", func(t *testing.T) {
		l := &HTTPListener{Port: 8080, Address: "192.168.1.5"}
		lines := l.Fragment().Lines
		require.Len(t, lines, 2)
		assert.Contains(t, lines[1], `Ipaddr.V4.of_string "192.168.1.5"`)
		assert.Contains(t, lines[1], "failwith")
	})
}
