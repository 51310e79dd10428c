// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package middleware

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/felixge/httpsnoop"
	"golang.org/x/net/http/httpguts"

	"github.com/ManuGH/edgeip/internal/control/http/problem"
	"github.com/ManuGH/edgeip/internal/log"
)

// CORS response header names.
const (
	HeaderAllowOrigin  = "Access-Control-Allow-Origin"
	HeaderAllowMethods = "Access-Control-Allow-Methods"
	HeaderAllowHeaders = "Access-Control-Allow-Headers"
	HeaderMaxAge       = "Access-Control-Max-Age"
)

// ErrInvalidHeaderValue is returned when a policy value cannot be sent on the wire.
var ErrInvalidHeaderValue = errors.New("invalid header value")

// Policy is the fixed set of cross-origin headers stamped on every response.
type Policy struct {
	AllowOrigin  string
	AllowMethods string
	AllowHeaders string
	MaxAge       int
}

// DefaultPolicy allows any origin and any request header, caching preflights for a day.
func DefaultPolicy() Policy {
	return Policy{
		AllowOrigin:  "*",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		AllowHeaders: "*",
		MaxAge:       86400,
	}
}

func (p Policy) pairs() [4][2]string {
	return [4][2]string{
		{HeaderAllowOrigin, p.AllowOrigin},
		{HeaderAllowMethods, p.AllowMethods},
		{HeaderAllowHeaders, p.AllowHeaders},
		{HeaderMaxAge, strconv.Itoa(p.MaxAge)},
	}
}

// Apply sets the policy headers on h, replacing any existing values.
// All values are checked first; on error h is left unchanged.
func (p Policy) Apply(h http.Header) error {
	pairs := p.pairs()
	for _, kv := range pairs {
		if !httpguts.ValidHeaderFieldValue(kv[1]) {
			return fmt.Errorf("%s %q: %w", kv[0], kv[1], ErrInvalidHeaderValue)
		}
	}
	for _, kv := range pairs {
		h.Set(kv[0], kv[1])
	}
	return nil
}

// CORS returns a middleware that applies p to every response. The policy is
// stamped before the next handler runs and again when the response header is
// committed, so values a handler sets for these headers never reach the client.
// A policy that cannot be applied aborts the request with 500.
func CORS(p Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := p.Apply(w.Header()); err != nil {
				logger := log.WithComponentFromContext(r.Context(), "cors")
				logger.Error().
					Err(err).
					Str(log.FieldEvent, "cors.apply_failed").
					Str(log.FieldPath, r.URL.Path).
					Msg("failed to apply CORS headers")
				problem.Write(w, r, http.StatusInternalServerError, "system/internal", "Internal Server Error", "INTERNAL_ERROR", "")
				return
			}

			ew := &enforcingWriter{policy: p, header: w.Header()}
			next.ServeHTTP(ew.wrap(w), r)
			// A handler that never writes leaves the commit to net/http.
			ew.commit()
		})
	}
}

// enforcingWriter re-applies the policy once, right before the final
// response header leaves the handler.
type enforcingWriter struct {
	policy    Policy
	header    http.Header
	committed bool
}

// commit re-applies the policy unless a final header was already sent.
// Values were validated before dispatch, so Apply cannot fail here.
func (e *enforcingWriter) commit() {
	if e.committed {
		return
	}
	_ = e.policy.Apply(e.header)
}

func (e *enforcingWriter) wrap(w http.ResponseWriter) http.ResponseWriter {
	return httpsnoop.Wrap(w, httpsnoop.Hooks{
		WriteHeader: func(next httpsnoop.WriteHeaderFunc) httpsnoop.WriteHeaderFunc {
			return func(code int) {
				e.commit()
				if code >= http.StatusOK {
					e.committed = true
				}
				next(code)
			}
		},
		Write: func(next httpsnoop.WriteFunc) httpsnoop.WriteFunc {
			return func(b []byte) (int, error) {
				e.commit()
				e.committed = true
				return next(b)
			}
		},
		ReadFrom: func(next httpsnoop.ReadFromFunc) httpsnoop.ReadFromFunc {
			return func(src io.Reader) (int64, error) {
				e.commit()
				e.committed = true
				return next(src)
			}
		},
		Flush: func(next httpsnoop.FlushFunc) httpsnoop.FlushFunc {
			return func() {
				e.commit()
				e.committed = true
				next()
			}
		},
	})
}
