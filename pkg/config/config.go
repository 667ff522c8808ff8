// Package config resolves mailcraft's on-disk locations from the environment.
package config

import (
	"os"
	"path/filepath"
)

// GetDataPath returns the data directory path.
// It checks for DATA_PATH environment variable, otherwise uses a default.
func GetDataPath() string {
	if path := os.Getenv("DATA_PATH"); path != "" {
		return path
	}

	// Default to current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return ".data"
	}
	return filepath.Join(cwd, ".data")
}

// GetDatabasePath returns the SQLite database path.
// It checks for MAILCRAFT_DB_PATH environment variable, otherwise uses a default.
func GetDatabasePath() string {
	if path := os.Getenv("MAILCRAFT_DB_PATH"); path != "" {
		return path
	}

	return filepath.Join(GetDataPath(), "mailcraft.db")
}

// GetUploadPath returns the image upload directory.
// It checks for MAILCRAFT_UPLOAD_DIR environment variable, otherwise uses a default.
func GetUploadPath() string {
	if path := os.Getenv("MAILCRAFT_UPLOAD_DIR"); path != "" {
		return path
	}

	return filepath.Join(GetDataPath(), "uploads")
}
