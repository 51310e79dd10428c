// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/net/http/httpguts"

	edgehttp "github.com/ManuGH/edgeip/internal/control/http"
)

// Validate checks cfg and returns all problems joined into one error.
func Validate(cfg AppConfig) error {
	var errs []error

	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("logLevel: %w", err))
	}

	if err := validateListenAddr(cfg.API.ListenAddr); err != nil {
		errs = append(errs, fmt.Errorf("api.listenAddr: %w", err))
	}
	if cfg.Metrics.ListenAddr != "" {
		if err := validateListenAddr(cfg.Metrics.ListenAddr); err != nil {
			errs = append(errs, fmt.Errorf("metrics.listenAddr: %w", err))
		}
	}

	if !httpguts.ValidHeaderFieldName(cfg.Edge.TrustedHeader) {
		errs = append(errs, fmt.Errorf("edge.trustedHeader %q: %w", cfg.Edge.TrustedHeader, ErrInvalidHeader))
	}

	switch cfg.Response.Format {
	case edgehttp.FormatText, edgehttp.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("response.format %q: %w", cfg.Response.Format, ErrInvalidFormat))
	}

	for name, v := range map[string]string{
		"cors.allowOrigin":  cfg.CORS.AllowOrigin,
		"cors.allowMethods": cfg.CORS.AllowMethods,
		"cors.allowHeaders": cfg.CORS.AllowHeaders,
	} {
		if v == "" || !httpguts.ValidHeaderFieldValue(v) {
			errs = append(errs, fmt.Errorf("%s %q: %w", name, v, ErrInvalidHeader))
		}
	}
	if cfg.CORS.MaxAge < 0 {
		errs = append(errs, fmt.Errorf("cors.maxAge must be >= 0, got %d", cfg.CORS.MaxAge))
	}

	if cfg.Server.WriteTimeout < 0 {
		errs = append(errs, fmt.Errorf("server.writeTimeout must be >= 0"))
	}
	if cfg.Server.MaxHeaderBytes < 0 {
		errs = append(errs, fmt.Errorf("server.maxHeaderBytes must be >= 0"))
	}

	if cfg.Telemetry.Enabled {
		switch cfg.Telemetry.Exporter {
		case "grpc", "http":
		default:
			errs = append(errs, fmt.Errorf("telemetry.exporter %q: supported values are grpc, http", cfg.Telemetry.Exporter))
		}
		if cfg.Telemetry.Endpoint == "" {
			errs = append(errs, fmt.Errorf("telemetry.endpoint is required when telemetry is enabled"))
		}
	}
	if cfg.Telemetry.SamplingRate < 0 || cfg.Telemetry.SamplingRate > 1 {
		errs = append(errs, fmt.Errorf("telemetry.samplingRate must be within [0,1], got %v", cfg.Telemetry.SamplingRate))
	}

	return errors.Join(errs...)
}

func validateListenAddr(addr string) error {
	if addr == "" {
		return fmt.Errorf("must not be empty")
	}
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("invalid port %q", port)
	}
	return nil
}
