package config

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/gorewood/sprout/internal/output"
)

// Edit opens file in the user's editor and waits for it to exit.
// The edited file is not validated.
func Edit(ctx context.Context, file string) error {
	name, args := EditorCommand(file)
	slog.Debug("opening editor", "editor", name, "file", file)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return output.NewSystemErrorWithCause("running editor "+name, err)
	}
	return nil
}

// EditorCommand resolves the program used to edit file.
//
// Resolution:
//   - $VISUAL, then $EDITOR (may include arguments, e.g. "code --wait")
//   - notepad on Windows
//   - open on macOS
//   - xdg-open elsewhere
func EditorCommand(file string) (string, []string) {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(os.Getenv(key)); len(fields) > 0 {
			return fields[0], append(fields[1:], file)
		}
	}

	switch runtime.GOOS {
	case "windows":
		return "notepad", []string{file}
	case "darwin":
		return "open", []string{"-t", "-W", file}
	default:
		return "xdg-open", []string{file}
	}
}
