// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"time"

	edgehttp "github.com/ManuGH/edgeip/internal/control/http"
	"github.com/ManuGH/edgeip/internal/control/middleware"
)

// AppConfig is the fully resolved service configuration.
type AppConfig struct {
	// Version is the build version; it is never read from file.
	Version string `yaml:"-"`

	LogLevel   string `yaml:"logLevel"`
	LogService string `yaml:"logService"`

	// CrashOutput is an optional file receiving fatal runtime crash output.
	CrashOutput string `yaml:"crashOutput"`

	API       APIConfig           `yaml:"api"`
	Metrics   MetricsConfig       `yaml:"metrics"`
	Edge      EdgeConfig          `yaml:"edge"`
	Response  ResponseConfig      `yaml:"response"`
	CORS      CORSConfig          `yaml:"cors"`
	Server    ServerRuntimeConfig `yaml:"server"`
	Telemetry TelemetryConfig     `yaml:"telemetry"`
}

// APIConfig configures the public listener.
type APIConfig struct {
	ListenAddr string `yaml:"listenAddr"`
}

// MetricsConfig configures the Prometheus listener. An empty address disables it.
type MetricsConfig struct {
	ListenAddr string `yaml:"listenAddr"`
}

// EdgeConfig describes the trust relationship with the upstream proxy.
type EdgeConfig struct {
	// TrustedHeader carries the caller IP and is set by the edge proxy.
	TrustedHeader string `yaml:"trustedHeader"`
}

// ResponseConfig selects the body shape for string results.
type ResponseConfig struct {
	// Format is "text" (plain body) or "json" ({"status":200,"message":"..."}).
	Format string `yaml:"format"`
}

// CORSConfig holds the cross-origin header values stamped on every response.
type CORSConfig struct {
	AllowOrigin  string `yaml:"allowOrigin"`
	AllowMethods string `yaml:"allowMethods"`
	AllowHeaders string `yaml:"allowHeaders"`
	MaxAge       int    `yaml:"maxAge"`
}

// ServerRuntimeConfig holds http.Server tuning.
type ServerRuntimeConfig struct {
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	IdleTimeout     time.Duration `yaml:"idleTimeout"`
	MaxHeaderBytes  int           `yaml:"maxHeaderBytes"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// TelemetryConfig configures OpenTelemetry tracing export.
type TelemetryConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Exporter     string  `yaml:"exporter"`
	Endpoint     string  `yaml:"endpoint"`
	SamplingRate float64 `yaml:"samplingRate"`
	Environment  string  `yaml:"environment"`
}

// Default returns the built-in configuration.
func Default() AppConfig {
	cors := middleware.DefaultPolicy()
	return AppConfig{
		LogLevel:   "info",
		LogService: "edgeip",
		API:        APIConfig{ListenAddr: ":8080"},
		Edge:       EdgeConfig{TrustedHeader: edgehttp.DefaultTrustedHeader},
		Response:   ResponseConfig{Format: edgehttp.FormatText},
		CORS: CORSConfig{
			AllowOrigin:  cors.AllowOrigin,
			AllowMethods: cors.AllowMethods,
			AllowHeaders: cors.AllowHeaders,
			MaxAge:       cors.MaxAge,
		},
		Server: ServerRuntimeConfig{
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			IdleTimeout:     defaultIdleTimeout,
			MaxHeaderBytes:  defaultMaxHeaderBytes,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Telemetry: TelemetryConfig{
			Exporter:     "grpc",
			Endpoint:     "localhost:4317",
			SamplingRate: 1.0,
			Environment:  "production",
		},
	}
}
