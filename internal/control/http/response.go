// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package http

import (
	"encoding/json"
	"net/http"

	"github.com/ManuGH/edgeip/internal/log"
)

// Response body formats for string results.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// MessageResponse is the structured body used by FormatJSON.
type MessageResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// writeMessage writes a 200 string result in the configured format.
func writeMessage(w http.ResponseWriter, r *http.Request, format, message string) {
	if format == FormatJSON {
		writeJSON(w, r, http.StatusOK, MessageResponse{Status: http.StatusOK, Message: message})
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(message)); err != nil {
		logger := log.WithComponentFromContext(r.Context(), "api")
		logger.Debug().Err(err).Msg("failed to write response body")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger := log.WithComponentFromContext(r.Context(), "api")
		logger.Error().Err(err).Str(log.FieldEvent, "response.encode_error").Msg("failed to encode JSON response")
	}
}
