package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const FileName = "config.yml"

// EnsureUserConfig returns the path of the config file in dataDir, creating it
// first from defaultPath, or from Default when defaultPath is empty or missing.
func EnsureUserConfig(dataDir string, defaultPath string) (string, error) {
	userPath := filepath.Join(dataDir, FileName)

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", err
	}

	if defaultPath != "" {
		src, err := os.Open(defaultPath)
		switch {
		case err == nil:
			defer src.Close()
			return userPath, copyInto(userPath, src)
		case !errors.Is(err, os.ErrNotExist):
			return "", err
		}
	}

	cfg := Default()
	cfg.App.DataDir = dataDir
	if err := SaveAtomic(userPath, cfg); err != nil {
		return "", fmt.Errorf("write default config: %w", err)
	}
	return userPath, nil
}

func copyInto(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}
