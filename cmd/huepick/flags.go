package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// validateConfigPath accepts an empty path, meaning defaults, or an existing
// regular file.
func validateConfigPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("config file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", abs)
	}

	return nil
}
