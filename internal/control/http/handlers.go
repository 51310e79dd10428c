// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package http

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/ManuGH/edgeip/internal/control/http/problem"
	"github.com/ManuGH/edgeip/internal/telemetry"
)

const (
	// TimeLayout is ISO-8601 in UTC with millisecond precision.
	TimeLayout = "2006-01-02T15:04:05.000Z07:00"
	// TimeFallback is served when the clock cannot be rendered in TimeLayout.
	TimeFallback = "Error getting time"
)

// Server holds the immutable settings shared by the route handlers.
// It has no mutable state and is safe for concurrent use.
type Server struct {
	trustedHeader string
	format        string
	now           func() time.Time
}

// ClientIP resolves the caller address from the trusted proxy header.
func (s *Server) ClientIP(r *http.Request) string {
	return HeaderValue(r, s.trustedHeader)
}

// handleIP serves GET / and GET /ip.
func (s *Server) handleIP(w http.ResponseWriter, r *http.Request) {
	ip := s.ClientIP(r)
	trace.SpanFromContext(r.Context()).SetAttributes(telemetry.ClientAttributes(ip, s.trustedHeader)...)
	writeMessage(w, r, s.format, ip)
}

// handleDebug serves GET /debug with every request header as a JSON object.
func (s *Server) handleDebug(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, HeaderSnapshot(r))
}

// handleTime serves GET /time.
func (s *Server) handleTime(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, r, s.format, formatTime(s.now()))
}

// handlePreflight answers OPTIONS on any path. The CORS middleware has
// already stamped the policy headers.
func (s *Server) handlePreflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	problem.Write(w, r, http.StatusNotFound, "system/not_found", "Not Found", "NOT_FOUND", "")
}

// formatTime renders t in UTC. Years outside 0..9999 have no ISO-8601
// basic representation and yield TimeFallback.
func formatTime(t time.Time) string {
	t = t.UTC()
	if y := t.Year(); y < 0 || y > 9999 {
		return TimeFallback
	}
	return t.Format(TimeLayout)
}
