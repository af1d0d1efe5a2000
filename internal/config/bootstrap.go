package config

import (
	"errors"
	"os"
	"path/filepath"
)

// EnsureUserConfig returns dataDir/config.yml, writing the defaults there first
// when the file does not exist yet.
func EnsureUserConfig(dataDir string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	cfg := Default()
	cfg.App.DataDir = dataDir
	if err := SaveAtomic(userPath, cfg); err != nil {
		return "", err
	}
	return userPath, nil
}
