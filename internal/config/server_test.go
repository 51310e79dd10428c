// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"testing"
	"time"
)

func TestParseServerConfigForApp_Defaults(t *testing.T) {
	got := ParseServerConfigForApp(AppConfig{})

	if got.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", got.ListenAddr)
	}
	if got.ReadTimeout != defaultReadTimeout {
		t.Errorf("ReadTimeout = %v, want %v", got.ReadTimeout, defaultReadTimeout)
	}
	if got.MaxHeaderBytes != defaultMaxHeaderBytes {
		t.Errorf("MaxHeaderBytes = %d, want %d", got.MaxHeaderBytes, defaultMaxHeaderBytes)
	}
	if got.MetricsAddr != "" {
		t.Errorf("MetricsAddr = %q, want empty", got.MetricsAddr)
	}
}

func TestParseServerConfigForApp_Overrides(t *testing.T) {
	cfg := Default()
	cfg.API.ListenAddr = "127.0.0.1:9999"
	cfg.Metrics.ListenAddr = "127.0.0.1:9100"
	cfg.Server.IdleTimeout = 5 * time.Second
	cfg.Server.ShutdownTimeout = time.Second // clamped

	got := ParseServerConfigForApp(cfg)
	if got.ListenAddr != "127.0.0.1:9999" || got.MetricsAddr != "127.0.0.1:9100" {
		t.Errorf("unexpected addrs: %+v", got)
	}
	if got.IdleTimeout != 5*time.Second {
		t.Errorf("IdleTimeout = %v", got.IdleTimeout)
	}
	if got.ShutdownTimeout != minShutdownTimeout {
		t.Errorf("ShutdownTimeout = %v, want clamp to %v", got.ShutdownTimeout, minShutdownTimeout)
	}
}
