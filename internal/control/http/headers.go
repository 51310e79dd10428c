// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package http

import (
	"net/http"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// UnknownValue stands in for a header that is absent or cannot be read.
const UnknownValue = "unknown"

// HeaderValue returns the first value of the named request header.
// Absent, empty or malformed values all resolve to UnknownValue; it never fails.
func HeaderValue(r *http.Request, name string) string {
	if r == nil {
		return UnknownValue
	}
	v := r.Header.Get(name)
	if v == "" || !httpguts.ValidHeaderFieldValue(v) {
		return UnknownValue
	}
	return v
}

// HeaderSnapshot captures every request header into a fresh map keyed by
// lower-cased name. Repeated headers are joined with ", ". The Host header,
// which net/http lifts out of r.Header, is included as "host".
func HeaderSnapshot(r *http.Request) map[string]string {
	snap := make(map[string]string, len(r.Header)+1)
	for name, values := range r.Header {
		snap[strings.ToLower(name)] = strings.Join(values, ", ")
	}
	if r.Host != "" {
		if _, ok := snap["host"]; !ok {
			snap["host"] = r.Host
		}
	}
	return snap
}
