// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/bulmaswatch/swatchport/constant"
	"github.com/bulmaswatch/swatchport/filesystem"
	"github.com/bulmaswatch/swatchport/key"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "SWATCHPORT_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// Direct override: The path resolution can be explicitly specified via the SWATCHPORT_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Swatchport))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Swatchport))
}

// Logs resolves the directory holding one log file per day of runs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Report resolves the file that stores the summary of the most recent migration run.
func Report() string {
	return filepath.Join(Cache(), "report.json")
}

// LegacyThemes resolves the root holding one directory per legacy theme. It is never created.
func LegacyThemes() string {
	return filepath.Clean(viper.GetString(key.PathsLegacyThemes))
}

// Output resolves the root of the generated theme tree.
func Output() string {
	return filepath.Clean(viper.GetString(key.PathsOutput))
}

// Utilities resolves the shared utilities directory copied verbatim next to the generated themes.
func Utilities() string {
	return filepath.Clean(viper.GetString(key.PathsUtilities))
}

// Manifest resolves the intermediate JSON file. Relative values are taken from the output root.
func Manifest() string {
	path := viper.GetString(key.PathsManifest)
	if path == "" {
		path = constant.ManifestFile
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(Output(), path)
}
