// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManuGH/edgeip/internal/control/middleware"
	"github.com/ManuGH/edgeip/internal/health"
)

func newTestRouter(t *testing.T, mutate func(*RouterConfig)) http.Handler {
	t.Helper()
	cfg := RouterConfig{
		TrustedHeader: DefaultTrustedHeader,
		Format:        FormatText,
		CORS:          middleware.DefaultPolicy(),
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return NewRouter(cfg)
}

func serve(h http.Handler, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func assertCORS(t *testing.T, h http.Header) {
	t.Helper()
	assert.Equal(t, "*", h.Get(middleware.HeaderAllowOrigin))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", h.Get(middleware.HeaderAllowMethods))
	assert.Equal(t, "*", h.Get(middleware.HeaderAllowHeaders))
	assert.Equal(t, "86400", h.Get(middleware.HeaderMaxAge))
}

func TestRouter_IP(t *testing.T) {
	h := newTestRouter(t, nil)

	for _, path := range []string{"/", "/ip"} {
		t.Run(path, func(t *testing.T) {
			rr := serve(h, http.MethodGet, path, http.Header{"CF-Connecting-IP": {"203.0.113.7"}})
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, "203.0.113.7", rr.Body.String())
			assert.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
			assertCORS(t, rr.Header())
		})
	}
}

func TestRouter_IPWithoutHeader(t *testing.T) {
	h := newTestRouter(t, nil)

	rr := serve(h, http.MethodGet, "/ip", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, UnknownValue, rr.Body.String())
}

func TestRouter_IPCustomTrustedHeader(t *testing.T) {
	h := newTestRouter(t, func(c *RouterConfig) { c.TrustedHeader = "X-Real-IP" })

	rr := serve(h, http.MethodGet, "/ip", http.Header{
		"X-Real-IP":        {"198.51.100.9"},
		"CF-Connecting-IP": {"203.0.113.7"},
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "198.51.100.9", rr.Body.String())
}

func TestRouter_IPJSONFormat(t *testing.T) {
	h := newTestRouter(t, func(c *RouterConfig) { c.Format = FormatJSON })

	rr := serve(h, http.MethodGet, "/ip", http.Header{"CF-Connecting-IP": {"203.0.113.7"}})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, MessageResponse{Status: http.StatusOK, Message: "203.0.113.7"}, body)
}

func TestRouter_Debug(t *testing.T) {
	h := newTestRouter(t, nil)

	rr := serve(h, http.MethodGet, "/debug", http.Header{"X-Test": {"1"}})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assertCORS(t, rr.Header())

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "1", body["x-test"])
	assert.Equal(t, "example.com", body["host"])
	assert.NotContains(t, body, "cf-connecting-ip")
}

func TestRouter_Time(t *testing.T) {
	h := newTestRouter(t, nil)

	before := time.Now().UTC().Truncate(time.Millisecond)
	first := serve(h, http.MethodGet, "/time", nil)
	second := serve(h, http.MethodGet, "/time", nil)

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)

	t1, err := time.Parse(TimeLayout, first.Body.String())
	require.NoError(t, err, "body %q", first.Body.String())
	t2, err := time.Parse(TimeLayout, second.Body.String())
	require.NoError(t, err, "body %q", second.Body.String())

	assert.False(t, t1.Before(before), "time %s is before request start %s", t1, before)
	assert.False(t, t2.Before(t1), "second response %s is earlier than first %s", t2, t1)
	assert.Equal(t, time.UTC, t1.Location())
}

func TestRouter_TimeFixedClock(t *testing.T) {
	fixed := time.Date(2025, 3, 14, 9, 26, 53, 589_000_000, time.FixedZone("CET", 3600))
	h := newTestRouter(t, func(c *RouterConfig) { c.Now = func() time.Time { return fixed } })

	rr := serve(h, http.MethodGet, "/time", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2025-03-14T08:26:53.589Z", rr.Body.String())
}

func TestRouter_TimeFallback(t *testing.T) {
	h := newTestRouter(t, func(c *RouterConfig) {
		c.Now = func() time.Time { return time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC) }
	})

	rr := serve(h, http.MethodGet, "/time", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, TimeFallback, rr.Body.String())
}

func TestRouter_Preflight(t *testing.T) {
	h := newTestRouter(t, nil)

	for _, path := range []string{"/", "/ip", "/nonexistent", "/deeply/nested/path"} {
		t.Run(path, func(t *testing.T) {
			rr := serve(h, http.MethodOptions, path, nil)
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Empty(t, rr.Body.String())
			assertCORS(t, rr.Header())
		})
	}
}

func TestRouter_NotFound(t *testing.T) {
	h := newTestRouter(t, nil)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/nope"},
		{http.MethodGet, "/ip/extra"},
		{http.MethodPost, "/ip"},
		{http.MethodDelete, "/"},
		{http.MethodPut, "/time"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := serve(h, tt.method, tt.path, nil)
			require.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "application/problem+json", rr.Header().Get("Content-Type"))
			assertCORS(t, rr.Header())

			var body map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, "NOT_FOUND", body["code"])
			assert.Equal(t, float64(http.StatusNotFound), body["status"])
			assert.NotEmpty(t, body["requestId"])
		})
	}
}

func TestRouter_CORSIdenticalAcrossRoutes(t *testing.T) {
	h := newTestRouter(t, nil)

	want := serve(h, http.MethodGet, "/ip", nil).Header()
	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/debug"},
		{http.MethodGet, "/time"},
		{http.MethodOptions, "/anything"},
		{http.MethodGet, "/missing"},
	} {
		got := serve(h, tc.method, tc.path, nil).Header()
		for _, name := range []string{
			middleware.HeaderAllowOrigin,
			middleware.HeaderAllowMethods,
			middleware.HeaderAllowHeaders,
			middleware.HeaderMaxAge,
		} {
			assert.Equal(t, want.Values(name), got.Values(name), "%s %s: %s", tc.method, tc.path, name)
		}
	}
}

func TestRouter_InvalidCORSPolicy(t *testing.T) {
	h := newTestRouter(t, func(c *RouterConfig) { c.CORS.AllowOrigin = "bad\nvalue" })

	rr := serve(h, http.MethodGet, "/ip", nil)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Empty(t, rr.Header().Get(middleware.HeaderAllowOrigin))
}

func TestRouter_HealthEndpoints(t *testing.T) {
	mgr := health.NewManager("test")
	drain := health.NewDrainChecker()
	mgr.RegisterChecker(drain)
	h := newTestRouter(t, func(c *RouterConfig) { c.Health = mgr })

	rr := serve(h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	rr = serve(h, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	drain.Drain()
	rr = serve(h, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestRouter_HealthEndpointsDisabled(t *testing.T) {
	h := newTestRouter(t, nil)

	rr := serve(h, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_ConcurrentRequests(t *testing.T) {
	h := newTestRouter(t, nil)

	const n = 32
	done := make(chan string, n)
	for i := 0; i < n; i++ {
		go func() {
			rr := serve(h, http.MethodGet, "/ip", http.Header{"CF-Connecting-IP": {"192.0.2.1"}})
			done <- rr.Body.String()
		}()
	}
	for i := 0; i < n; i++ {
		assert.Equal(t, "192.0.2.1", <-done)
	}
}
