package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

var appName = "crtfx"

// Init sets the application data directory name. Must be called before
// any path lookups if the default is not wanted.
func Init(dataDirName string) {
	appName = dataDirName
}

const (
	optionsFile   = "crt.json"
	screenshotDir = "screenshots"
)

// DataDirEnv names the environment variable that overrides the data
// directory
const DataDirEnv = "CRTFX_DATA_DIR"

// GetBaseDir returns the directory options and screenshots live in: the
// DataDirEnv override if set, otherwise <appName> under the per-user data
// root (Application Support on macOS, %APPDATA% on Windows,
// $XDG_DATA_HOME or ~/.local/share elsewhere).
func GetBaseDir() (string, error) {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return dir, nil
	}
	root, err := dataRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, appName), nil
}

func dataRoot() (string, error) {
	switch runtime.GOOS {
	case "darwin", "windows":
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user data directory: %w", err)
		}
		return dir, nil
	}

	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share"), nil
}

// GetOptionsPath returns the full path to the saved effect options
func GetOptionsPath() (string, error) {
	baseDir, err := GetBaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, optionsFile), nil
}

// GetScreenshotDir returns the full path to the screenshots directory
func GetScreenshotDir() (string, error) {
	baseDir, err := GetBaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, screenshotDir), nil
}

// AtomicWriteFile writes data to path atomically.
// It writes to a temporary file first, then renames to the target path.
// This ensures the file is never in a partially-written state.
func AtomicWriteFile(path string, data []byte) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Write to temporary file in the same directory
	tempFile := path + ".tmp"
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	// Rename temp file to target (atomic on most filesystems)
	if err := os.Rename(tempFile, path); err != nil {
		os.Remove(tempFile) // Clean up on failure
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
