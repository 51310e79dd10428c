// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package telemetry

import "go.opentelemetry.io/otel/attribute"

// Attribute keys shared by middleware and handlers.
const (
	HTTPMethodKey     = "http.method"
	HTTPStatusCodeKey = "http.status_code"
	HTTPRouteKey      = "http.route"
	HTTPURLKey        = "http.url"
	HTTPRequestIDKey  = "http.request_id"

	ClientAddressKey = "client.address"
	ClientSourceKey  = "client.address_source"
)

// HTTPAttributes creates common HTTP span attributes.
func HTTPAttributes(method, route, url string, statusCode int) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(HTTPMethodKey, method),
		attribute.String(HTTPRouteKey, route),
		attribute.String(HTTPURLKey, url),
		attribute.Int(HTTPStatusCodeKey, statusCode),
	}
}

// ClientAttributes records the resolved caller address and the header it came from.
func ClientAttributes(address, sourceHeader string) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String(ClientAddressKey, address),
		attribute.String(ClientSourceKey, sourceHeader),
	}
}
