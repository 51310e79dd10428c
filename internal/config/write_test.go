// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefaultFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edgeip.yaml")
	require.NoError(t, WriteDefaultFile(path, false))

	cfg, err := NewLoader(path, "").Load()
	require.NoError(t, err)

	want := Default()
	assert.Equal(t, want.CORS, cfg.CORS)
	assert.Equal(t, want.Edge, cfg.Edge)
	assert.Equal(t, want.Server, cfg.Server)
}

func TestWriteDefaultFile_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edgeip.yaml")
	require.NoError(t, WriteDefaultFile(path, false))

	require.ErrorIs(t, WriteDefaultFile(path, false), ErrConfigExists)
	require.NoError(t, WriteDefaultFile(path, true))
}
