// Package paths resolves configuration and data directory locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative directory names used when nothing overrides them.
const (
	DefaultConfigDirName = ".sierra"
	DefaultDataDirName   = ".sierra-db"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "SIERRA_CONFIG_DIR"
	EnvDataDir   = "SIERRA_DATA_DIR"
)

const appName = "sierra"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// UserConfigDir returns the per-user configuration directory consulted when
// the project configuration directory holds no config.yaml.
//
// Linux:   $XDG_CONFIG_HOME/sierra (fallback ~/.config/sierra)
// macOS:   ~/Library/Application Support/sierra
// Windows: %APPDATA%/sierra
func UserConfigDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appName), nil
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName), nil
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > SIERRA_CONFIG_DIR env > $(CWD)/.sierra.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return filepath.Abs(DefaultConfigDirName)
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configYAMLValue > SIERRA_DATA_DIR env > $(CWD)/.sierra-db.
func ResolveDataDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return filepath.Abs(DefaultDataDirName)
}
