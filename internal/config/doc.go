// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package config provides configuration management for edgeip.
//
// Values are resolved with the precedence ENV > YAML file > defaults.
// ConfigHolder keeps the active configuration and reloads it when the
// file changes on disk.
package config
