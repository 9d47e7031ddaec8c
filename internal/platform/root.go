package platform

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrFileNotFound is returned by FindFile when no directory up to the
// filesystem root holds the requested file.
var ErrFileNotFound = errors.New("file not found")

// FindFile looks for name in startDir and then in each parent directory.
// If found, it returns the absolute path to the file.
func FindFile(startDir, name string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, name) {
			return filepath.Join(dir, name), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", ErrFileNotFound
}

func hasFile(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}
