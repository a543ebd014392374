package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// FileName is the name of the configuration file inside Dir.
const FileName = "config.yaml"

// Dir returns the sprout configuration directory.
//
// Resolution:
//   - $SPROUT_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/sprout if set (respects XDG on any platform)
//   - %AppData%/sprout on Windows
//   - ~/.config/sprout on macOS and Linux
func Dir() string {
	if dir := os.Getenv("SPROUT_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sprout")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "sprout")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "sprout")
}

// Path returns the full path of the user configuration file, or "" when no
// configuration directory can be resolved.
func Path() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, FileName)
}
