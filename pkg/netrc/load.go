package netrc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/credcat-ai/credcat/internal/env"
)

// Load reads the netrc table for this machine.
//
// The NETRC environment variable overrides the file location; a configured
// path that does not exist is an error. Without the override, a missing
// ~/.netrc yields an empty table.
//
// NETRC is read on every call, so callers observe changes to the variable.
func Load() (Netrc, error) {
	if path, ok := os.LookupEnv("NETRC"); ok && path != "" {
		path, err := env.ExpandHome(path)
		if err != nil {
			return nil, fmt.Errorf("netrc: %w", err)
		}

		table, err := ParseFile(path)
		if err != nil {
			return nil, err
		}

		log.Debugw("Loaded netrc", "path", path, "machines", len(table))

		return table, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("netrc: %w", err)
	}

	path := filepath.Join(home, ".netrc")

	table, err := ParseFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugw("No netrc found", "path", path)
		return Netrc{}, nil
	}
	if err != nil {
		return nil, err
	}

	log.Debugw("Loaded netrc", "path", path, "machines", len(table))

	return table, nil
}
