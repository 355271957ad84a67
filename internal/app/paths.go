package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName    = "calflow"
	storeFileName = "calflow.db"
)

func DefaultStorePath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, storeFileName), nil
}

func EnsureStoreDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	return nil
}
