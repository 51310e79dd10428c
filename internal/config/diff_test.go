// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*AppConfig)
		wantFields  []string
		wantRestart bool
	}{
		{
			name:   "identical",
			mutate: func(*AppConfig) {},
		},
		{
			name:       "log level only",
			mutate:     func(c *AppConfig) { c.LogLevel = "debug" },
			wantFields: []string{"logLevel"},
		},
		{
			name:        "nested field",
			mutate:      func(c *AppConfig) { c.Edge.TrustedHeader = "X-Real-IP" },
			wantFields:  []string{"edge.trustedHeader"},
			wantRestart: true,
		},
		{
			name: "mixed",
			mutate: func(c *AppConfig) {
				c.LogLevel = "warn"
				c.CORS.MaxAge = 60
				c.Server.IdleTimeout = time.Minute
			},
			wantFields:  []string{"logLevel", "cors.maxAge", "server.idleTimeout"},
			wantRestart: true,
		},
		{
			name:   "version is not part of the file",
			mutate: func(c *AppConfig) { c.Version = "v9" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := Default()
			next := Default()
			tt.mutate(&next)

			got := Diff(old, next)
			if diff := cmp.Diff(tt.wantFields, got.ChangedFields); diff != "" {
				t.Errorf("ChangedFields mismatch (-want +got):\n%s", diff)
			}
			if got.RestartRequired != tt.wantRestart {
				t.Errorf("RestartRequired = %v, want %v", got.RestartRequired, tt.wantRestart)
			}
		})
	}
}
