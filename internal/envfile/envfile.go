// Package envfile loads environment variables from .env files so access
// tokens for private template hosts (GITHUB_TOKEN, GITLAB_TOKEN) can live in
// a file instead of the shell profile.
// Variables already set in the environment take precedence.
package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/subosito/gotenv"
)

// Load reads a .env file and sets any variables not already in the environment.
// Returns nil if the file doesn't exist. Returns an error only for read failures.
func Load(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err := gotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	slog.Debug("loaded env file", "path", path)
	return nil
}

// LoadAll loads paths in order. The first file to define a variable wins.
// Failures are logged and skipped.
func LoadAll(paths ...string) {
	for _, path := range paths {
		if err := Load(path); err != nil {
			slog.Warn("skipping env file", "path", path, "err", err)
		}
	}
}
