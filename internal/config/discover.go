package config

import (
	"os"
	"path/filepath"
)

// Discover finds the nearest .speclint.yaml by walking up from startDir
// toward the filesystem root. Returns the file's path, or "" if no override
// file exists anywhere above startDir (meaning the defaults apply).
func Discover(startDir string) string {
	current, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(current, ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root
			return ""
		}
		current = parent
	}
}
