// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package http implements the public edge surface: route table, handlers
// and header extraction.
package http

import (
	"net/http"
	"time"

	"github.com/ManuGH/edgeip/internal/control/middleware"
	"github.com/ManuGH/edgeip/internal/health"
)

// DefaultTrustedHeader is the client-IP header injected by Cloudflare.
const DefaultTrustedHeader = "CF-Connecting-IP"

// RouterConfig configures the public router.
type RouterConfig struct {
	// TrustedHeader names the proxy header carrying the caller IP.
	TrustedHeader string
	// Format is FormatText or FormatJSON; anything else means FormatText.
	Format string
	// CORS is stamped on every response.
	CORS middleware.Policy

	EnableMetrics  bool
	TracingService string
	EnableLogging  bool

	// Health serves /healthz and /readyz when set.
	Health *health.Manager

	// Now overrides the clock; nil uses time.Now.
	Now func() time.Time
}

// NewRouter builds the dispatch table. Routes are static; OPTIONS matches
// any path and everything else unmatched, including a known path with the
// wrong method, is answered with 404.
func NewRouter(cfg RouterConfig) http.Handler {
	s := &Server{
		trustedHeader: cfg.TrustedHeader,
		format:        cfg.Format,
		now:           cfg.Now,
	}
	if s.trustedHeader == "" {
		s.trustedHeader = DefaultTrustedHeader
	}
	if s.format != FormatJSON {
		s.format = FormatText
	}
	if s.now == nil {
		s.now = time.Now
	}

	r := middleware.NewRouter(middleware.StackConfig{
		CORS:           cfg.CORS,
		EnableMetrics:  cfg.EnableMetrics,
		TracingService: cfg.TracingService,
		EnableLogging:  cfg.EnableLogging,
		ClientIP:       s.ClientIP,
	})

	r.Get("/", s.handleIP)
	r.Get("/ip", s.handleIP)
	r.Get("/debug", s.handleDebug)
	r.Get("/time", s.handleTime)
	if cfg.Health != nil {
		r.Get("/healthz", cfg.Health.ServeHealth)
		r.Get("/readyz", cfg.Health.ServeReady)
	}
	r.Options("/*", s.handlePreflight)

	r.NotFound(s.handleNotFound)
	r.MethodNotAllowed(s.handleNotFound)

	return r
}
