package output

import (
	"io"
	"os"
)

// ResolveColorMode reports whether output should be styled. "always" and
// "never" are absolute. Anything else means auto: styled on a terminal unless
// NO_COLOR is set. Prompts and the tree view in `sprout list` pass the result
// on to lipgloss through NewPrinter.
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case "never":
		return false
	case "always":
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTTY
}

// IsTTY reports whether w is a character device such as a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
