// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package daemon

import (
	"net/http"

	"github.com/rs/zerolog"
)

// Drainer is told to stop advertising readiness when shutdown begins.
type Drainer interface {
	Drain()
}

// Deps contains dependencies required by the daemon Manager.
type Deps struct {
	// Logger is the structured logger for the daemon
	Logger zerolog.Logger

	// APIHandler serves the public edge routes.
	APIHandler http.Handler

	// MetricsHandler serves Prometheus metrics on the metrics listener (optional).
	MetricsHandler http.Handler

	// Drainer flips readiness off at shutdown (optional).
	Drainer Drainer
}

// Validate checks if the dependencies are valid.
func (d *Deps) Validate() error {
	if d.Logger.GetLevel() == zerolog.Disabled {
		return ErrMissingLogger
	}
	if d.APIHandler == nil {
		return ErrMissingAPIHandler
	}
	return nil
}
