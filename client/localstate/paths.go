// Package localstate persists the storefront session on disk, standing in
// for browser local storage. State lives in a small SQLite database under
// the user's home directory.
package localstate

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	envHome    = "SHOPEASE_STATE_HOME" // override for tests
	dirName    = ".shopease"           // default under $HOME
	dbFilename = "shopease.db"
)

// DataDir returns the directory local state lives in, creating it with 0700
// permissions when absent. SHOPEASE_STATE_HOME overrides the ~/.shopease
// default.
func DataDir() (string, error) {
	dir := os.Getenv(envHome)
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine user home: %w", err)
		}
		dir = filepath.Join(home, dirName)
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create state dir %s: %w", dir, err)
	}
	return dir, nil
}

// DBPath returns the absolute path to the SQLite database file.
func DBPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbFilename), nil
}
