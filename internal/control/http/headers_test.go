// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestHeaderValue(t *testing.T) {
	tests := []struct {
		name   string
		header http.Header
		want   string
	}{
		{
			name:   "present",
			header: http.Header{"Cf-Connecting-Ip": {"203.0.113.7"}},
			want:   "203.0.113.7",
		},
		{
			name:   "absent",
			header: http.Header{},
			want:   UnknownValue,
		},
		{
			name:   "empty",
			header: http.Header{"Cf-Connecting-Ip": {""}},
			want:   UnknownValue,
		},
		{
			name:   "control characters",
			header: http.Header{"Cf-Connecting-Ip": {"203.0.113.7\x00"}},
			want:   UnknownValue,
		},
		{
			name:   "first value wins",
			header: http.Header{"Cf-Connecting-Ip": {"2001:db8::1", "198.51.100.2"}},
			want:   "2001:db8::1",
		},
		{
			name:   "value is not normalized",
			header: http.Header{"Cf-Connecting-Ip": {"not-an-ip"}},
			want:   "not-an-ip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header = tt.header
			if got := HeaderValue(req, "cf-connecting-ip"); got != tt.want {
				t.Errorf("HeaderValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHeaderValue_NilRequest(t *testing.T) {
	if got := HeaderValue(nil, "CF-Connecting-IP"); got != UnknownValue {
		t.Errorf("HeaderValue(nil) = %q, want %q", got, UnknownValue)
	}
}

func TestHeaderSnapshot(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/debug", nil)
	req.Host = "edge.example"
	req.Header = http.Header{
		"X-Test":  {"1"},
		"Accept":  {"text/html", "application/json"},
		"X-Empty": {""},
	}

	want := map[string]string{
		"x-test":  "1",
		"accept":  "text/html, application/json",
		"x-empty": "",
		"host":    "edge.example",
	}
	if diff := cmp.Diff(want, HeaderSnapshot(req)); diff != "" {
		t.Errorf("HeaderSnapshot() mismatch (-want +got):\n%s", diff)
	}
}

func TestHeaderSnapshot_IsFreshPerCall(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/debug", nil)
	req.Header.Set("X-Test", "1")

	first := HeaderSnapshot(req)
	first["x-test"] = "mutated"

	if got := HeaderSnapshot(req)["x-test"]; got != "1" {
		t.Errorf("second snapshot saw mutation: %q", got)
	}
}
