package degit

import "errors"

var (
	// ErrInvalidSource is returned for a specifier that cannot be parsed.
	ErrInvalidSource = errors.New("invalid template source")
	// ErrUnsupportedHost is returned for a host other than GitHub or GitLab.
	ErrUnsupportedHost = errors.New("unsupported template host")
	// ErrSourceNotFound is returned when the repository, ref or subdirectory
	// does not exist (or is not visible with the configured token).
	ErrSourceNotFound = errors.New("template source not found")
	// ErrTargetExists is returned when the destination exists and is not an
	// empty directory.
	ErrTargetExists = errors.New("destination already exists and is not empty")
	// ErrUnsafePath is returned for archive entries that would land outside
	// the destination.
	ErrUnsafePath = errors.New("archive entry escapes destination")
)
