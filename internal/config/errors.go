// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import "errors"

var (
	// ErrInvalidFormat is returned for an unknown response.format.
	ErrInvalidFormat = errors.New("invalid response format")
	// ErrInvalidHeader is returned for header names or values that cannot be sent.
	ErrInvalidHeader = errors.New("invalid header")
	// ErrConfigExists is returned when WriteDefaultFile would overwrite a file.
	ErrConfigExists = errors.New("config file already exists")
)
