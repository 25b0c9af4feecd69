package tangle

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFileIfChanged writes content to path only when it differs from
// the file's current bytes. A missing file counts as empty prior
// content, not an error. Parent directories are created as needed;
// an already-existing directory or a path with no parent component is
// tolerated. Returns true when a write occurred, so unchanged outputs
// keep their modification time for build-freshness checks.
func WriteFileIfChanged(path string, content []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	if err == nil && string(existing) == string(content) {
		return false, nil
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return false, fmt.Errorf("creating directory for %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return false, fmt.Errorf("writing %s: %w", path, err)
	}
	return true, nil
}
