// Package repo locates the repository root by walking toward the filesystem
// root until the configured marker file is found.
package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// maxHops bounds the upward walk so a stray invocation deep in an unrelated
// tree fails fast instead of scanning every ancestor.
const maxHops = 20

// ErrRootNotFound is returned when no ancestor within the hop bound contains
// the marker file.
var ErrRootNotFound = errors.New("repository root not found")

// FindRoot walks from start upward and returns the first directory, start
// included, that contains marker as a regular file.
func FindRoot(start, marker string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}

	for hop := 0; hop < maxHops; hop++ {
		info, statErr := os.Stat(filepath.Join(dir, marker))
		if statErr == nil && info.Mode().IsRegular() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", fmt.Errorf("%w: no %s in %s or its ancestors", ErrRootNotFound, marker, start)
}
