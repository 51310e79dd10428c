// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"fmt"
	"os"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

const defaultFileHeader = `# edgeip configuration
# Precedence: EDGEIP_* environment variables > this file > built-in defaults.
`

// WriteDefaultFile writes the built-in configuration as YAML to path.
// The write is atomic: readers never observe a partially written file.
func WriteDefaultFile(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrConfigExists)
		}
	}

	body, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}

	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("create pending config file: %w", err)
	}
	defer func() { _ = pending.Cleanup() }()

	if _, err := pending.Write([]byte(defaultFileHeader)); err != nil {
		return fmt.Errorf("write config header: %w", err)
	}
	if _, err := pending.Write(body); err != nil {
		return fmt.Errorf("write config body: %w", err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("commit config file: %w", err)
	}
	return nil
}
