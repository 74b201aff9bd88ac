package config

import (
	"os"
	"path/filepath"
)

// Dir returns the layerline config directory.
// Uses XDG_CONFIG_HOME/layerline, defaulting to ~/.config/layerline.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "layerline"), nil
}
