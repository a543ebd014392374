package degit

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// checkTarget returns ErrTargetExists unless dest is missing or an empty
// directory.
func checkTarget(dest string) error {
	entries, err := os.ReadDir(dest)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		if info, statErr := os.Stat(dest); statErr == nil && !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrTargetExists, dest)
		}
		return fmt.Errorf("checking destination %s: %w", dest, err)
	case len(entries) > 0:
		return fmt.Errorf("%w: %s", ErrTargetExists, dest)
	}
	return nil
}

// extractTarGz unpacks a gzipped repository snapshot into dest. The archive's
// single top-level folder is dropped; when subdir is set only entries below
// it are written, relative to it. Returns the number of entries written.
func extractTarGz(r io.Reader, dest, subdir string) (int, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return 0, fmt.Errorf("reading archive: %w", err)
	}
	defer gz.Close() //nolint:errcheck // read-only stream

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return 0, fmt.Errorf("creating %s: %w", dest, err)
	}

	prefix := ""
	if subdir != "" {
		prefix = strings.Trim(subdir, "/") + "/"
	}

	// Relative paths of symlinks created so far. No later entry may be
	// written through one of them.
	links := make(map[string]bool)

	written := 0
	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil && !errors.Is(err, tar.ErrInsecurePath) {
			return written, fmt.Errorf("reading archive: %w", err)
		}

		rel, ok := relativeName(hdr.Name, prefix)
		if !ok {
			continue
		}
		target, err := safeJoin(dest, rel)
		if err != nil {
			return written, err
		}
		if throughLink(links, rel) {
			return written, fmt.Errorf("%w: %s passes through a symlink", ErrUnsafePath, rel)
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return written, fmt.Errorf("creating %s: %w", target, err)
			}
		case tar.TypeReg:
			if err := writeFile(target, tr, fileMode(hdr.Mode)); err != nil {
				return written, err
			}
		case tar.TypeSymlink:
			if err := writeSymlink(links, rel, target, hdr.Linkname); err != nil {
				return written, err
			}
			links[rel] = true
		default:
			continue
		}
		written++
	}
	return written, nil
}

// relativeName strips the archive root folder and the subdir prefix.
// ok is false for entries outside subdir and for the root itself.
func relativeName(name, prefix string) (string, bool) {
	_, rest, found := strings.Cut(strings.TrimPrefix(name, "./"), "/")
	if !found {
		return "", false
	}
	if prefix != "" {
		if !strings.HasPrefix(rest, prefix) {
			return "", false
		}
		rest = strings.TrimPrefix(rest, prefix)
	}
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" {
		return "", false
	}
	return rest, true
}

func safeJoin(dest, rel string) (string, error) {
	if path.IsAbs(rel) {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, rel)
	}
	for _, seg := range strings.Split(rel, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %s", ErrUnsafePath, rel)
		}
	}
	return filepath.Join(dest, filepath.FromSlash(rel)), nil
}

func fileMode(mode int64) os.FileMode {
	perm := os.FileMode(mode) & 0o777
	if perm&0o600 != 0o600 {
		perm |= 0o600
	}
	return perm
}

func writeFile(target string, r io.Reader, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(target), err)
	}
	f, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", target, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}

// throughLink reports whether rel is, or lies below, a recorded symlink.
func throughLink(links map[string]bool, rel string) bool {
	for i := range len(rel) {
		if rel[i] == '/' && links[rel[:i]] {
			return true
		}
	}
	return links[rel]
}

// resolveLink walks linkname from the directory holding rel and returns the
// destination relative to the extraction root. ok is false when the walk
// leaves the root or steps into an earlier symlink.
func resolveLink(links map[string]bool, rel, linkname string) (string, bool) {
	if linkname == "" || path.IsAbs(linkname) || filepath.IsAbs(linkname) {
		return "", false
	}
	var parts []string
	if dir := path.Dir(rel); dir != "." {
		parts = strings.Split(dir, "/")
	}
	for _, seg := range strings.Split(filepath.ToSlash(linkname), "/") {
		switch seg {
		case "", ".":
		case "..":
			if len(parts) == 0 {
				return "", false
			}
			parts = parts[:len(parts)-1]
		default:
			parts = append(parts, seg)
			if links[strings.Join(parts, "/")] {
				return "", false
			}
		}
	}
	return strings.Join(parts, "/"), true
}

// writeSymlink creates a relative link whose destination stays inside the
// extraction root without following other links from the same archive.
func writeSymlink(links map[string]bool, rel, target, linkname string) error {
	if _, ok := resolveLink(links, rel, linkname); !ok {
		return fmt.Errorf("%w: link %s -> %s", ErrUnsafePath, rel, linkname)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(target), err)
	}
	if err := os.Symlink(linkname, target); err != nil {
		return fmt.Errorf("linking %s: %w", target, err)
	}
	return nil
}
