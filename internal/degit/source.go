package degit

import (
	"fmt"
	"regexp"
	"strings"
)

// Host identifies where a template repository lives.
type Host string

const (
	GitHub Host = "github"
	GitLab Host = "gitlab"
)

// Source is a parsed template source specifier.
type Source struct {
	Host   Host
	Owner  string
	Repo   string
	Subdir string
	// Ref is a branch, tag or commit; empty means the default branch.
	Ref string
}

var namePattern = regexp.MustCompile(`^[\w.-]+$`)

// hostAliases maps the accepted host prefixes to a Host.
var hostAliases = map[string]Host{
	"github":     GitHub,
	"github.com": GitHub,
	"gh":         GitHub,
	"gitlab":     GitLab,
	"gitlab.com": GitLab,
	"gl":         GitLab,
}

// ParseSource parses a degit-style source specifier:
//
//	user/repo
//	user/repo/sub/dir#ref
//	github:user/repo, gitlab:group/project
//	github.com/user/repo, https://gitlab.com/group/project.git
//	git@github.com:user/repo.git
func ParseSource(input string) (Source, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Source{}, fmt.Errorf("%w: empty source", ErrInvalidSource)
	}

	src := Source{Host: GitHub}
	if i := strings.LastIndex(raw, "#"); i >= 0 {
		src.Ref = raw[i+1:]
		raw = raw[:i]
		if src.Ref == "" {
			return Source{}, fmt.Errorf("%w: %q has an empty ref", ErrInvalidSource, input)
		}
	}

	host, rest, err := splitHost(raw)
	if err != nil {
		return Source{}, fmt.Errorf("%s: %w", input, err)
	}
	if host != "" {
		src.Host = host
	}

	parts := strings.Split(strings.Trim(rest, "/"), "/")
	if len(parts) < 2 {
		return Source{}, fmt.Errorf("%w: %q is not in user/repo form", ErrInvalidSource, input)
	}
	src.Owner = parts[0]
	src.Repo = strings.TrimSuffix(parts[1], ".git")
	if !validName(src.Owner) || !validName(src.Repo) {
		return Source{}, fmt.Errorf("%w: %q is not in user/repo form", ErrInvalidSource, input)
	}

	for _, part := range parts[2:] {
		if part == "" || part == "." || part == ".." {
			return Source{}, fmt.Errorf("%w: %q has an invalid subdirectory", ErrInvalidSource, input)
		}
	}
	src.Subdir = strings.Join(parts[2:], "/")
	return src, nil
}

func validName(name string) bool {
	return name != "." && name != ".." && namePattern.MatchString(name)
}

// splitHost strips any scheme or host prefix and returns the host it named.
func splitHost(raw string) (Host, string, error) {
	switch {
	case strings.HasPrefix(raw, "git@"):
		hostPart, rest, ok := strings.Cut(strings.TrimPrefix(raw, "git@"), ":")
		if !ok {
			return "", "", fmt.Errorf("%w: missing ':' after host", ErrInvalidSource)
		}
		host, err := lookupHost(hostPart)
		return host, rest, err
	case strings.Contains(raw, "://"):
		_, rest, _ := strings.Cut(raw, "://")
		hostPart, path, _ := strings.Cut(rest, "/")
		host, err := lookupHost(hostPart)
		return host, path, err
	}

	if prefix, rest, ok := strings.Cut(raw, ":"); ok {
		host, err := lookupHost(prefix)
		return host, rest, err
	}
	if first, rest, ok := strings.Cut(raw, "/"); ok && strings.Contains(first, ".") {
		host, err := lookupHost(first)
		return host, rest, err
	}
	return "", raw, nil
}

func lookupHost(name string) (Host, error) {
	host, ok := hostAliases[strings.ToLower(strings.TrimPrefix(name, "www."))]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedHost, name)
	}
	return host, nil
}

// String renders the source in canonical host:owner/repo[/subdir][#ref] form.
func (s Source) String() string {
	var sb strings.Builder
	sb.WriteString(string(s.Host) + ":" + s.Owner + "/" + s.Repo)
	if s.Subdir != "" {
		sb.WriteString("/" + s.Subdir)
	}
	if s.Ref != "" {
		sb.WriteString("#" + s.Ref)
	}
	return sb.String()
}
