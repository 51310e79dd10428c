// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/ManuGH/edgeip/internal/config"
	edgehttp "github.com/ManuGH/edgeip/internal/control/http"
	"github.com/ManuGH/edgeip/internal/control/middleware"
	"github.com/ManuGH/edgeip/internal/health"
	"github.com/ManuGH/edgeip/internal/telemetry"
)

// resolveConfigPath returns the explicit path, or ${EDGEIP_DATA}/config.yaml
// when that file exists, or "" for ENV-only configuration.
func resolveConfigPath(explicit string) string {
	if p := strings.TrimSpace(explicit); p != "" {
		return p
	}
	dataDir := strings.TrimSpace(config.ParseString(config.EnvPrefix+"DATA", "/etc/edgeip"))
	if dataDir == "" {
		return ""
	}
	autoPath := filepath.Join(dataDir, "config.yaml")
	if _, err := os.Stat(autoPath); err == nil {
		return autoPath
	}
	return ""
}

func corsPolicy(cfg config.AppConfig) middleware.Policy {
	return middleware.Policy{
		AllowOrigin:  cfg.CORS.AllowOrigin,
		AllowMethods: cfg.CORS.AllowMethods,
		AllowHeaders: cfg.CORS.AllowHeaders,
		MaxAge:       cfg.CORS.MaxAge,
	}
}

func telemetryConfig(cfg config.AppConfig) telemetry.Config {
	return telemetry.Config{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    cfg.LogService,
		ServiceVersion: cfg.Version,
		Environment:    cfg.Telemetry.Environment,
		ExporterType:   cfg.Telemetry.Exporter,
		Endpoint:       cfg.Telemetry.Endpoint,
		SamplingRate:   cfg.Telemetry.SamplingRate,
	}
}

// newAPIHandler builds the public edge router from the loaded configuration.
func newAPIHandler(cfg config.AppConfig, hm *health.Manager) http.Handler {
	tracingService := ""
	if cfg.Telemetry.Enabled {
		tracingService = cfg.LogService
	}
	return edgehttp.NewRouter(edgehttp.RouterConfig{
		TrustedHeader:  cfg.Edge.TrustedHeader,
		Format:         cfg.Response.Format,
		CORS:           corsPolicy(cfg),
		EnableMetrics:  cfg.Metrics.ListenAddr != "",
		TracingService: tracingService,
		EnableLogging:  true,
		Health:         hm,
	})
}
