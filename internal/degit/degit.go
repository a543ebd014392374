// Package degit downloads a snapshot of a hosted git repository into a new
// directory, without any version-control history.
//
// Sources use the degit shorthand understood by ParseSource, for example
// "user/repo", "gitlab:group/project#v2" or "user/repo/templates/basic".
// GitHub archives are located through the REST API (go-github) and GitLab
// archives are downloaded through go-gitlab. Both honor an access token so
// private templates work.
package degit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/google/go-github/v57/github"
	"github.com/xanzy/go-gitlab"
	"golang.org/x/oauth2"

	"github.com/gorewood/sprout/internal/output"
)

// Options configures a Fetcher.
type Options struct {
	GitHubToken string
	// GitHubURL is a GitHub Enterprise server; empty means github.com.
	GitHubURL   string
	GitLabToken string
	// GitLabURL is the GitLab instance; empty means gitlab.com.
	GitLabURL string
	// HTTPClient is used for unauthenticated requests; defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// OptionsFromEnv reads GITHUB_TOKEN, GITHUB_URL, GITLAB_TOKEN and GITLAB_URL.
func OptionsFromEnv() Options {
	return Options{
		GitHubToken: os.Getenv("GITHUB_TOKEN"),
		GitHubURL:   os.Getenv("GITHUB_URL"),
		GitLabToken: os.Getenv("GITLAB_TOKEN"),
		GitLabURL:   os.Getenv("GITLAB_URL"),
	}
}

// Fetcher downloads template snapshots.
type Fetcher struct {
	http   *http.Client
	github *github.Client
	gitlab *gitlab.Client
}

// New creates a Fetcher from opts.
func New(opts Options) (*Fetcher, error) {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	ghHTTP := httpClient
	if opts.GitHubToken != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.GitHubToken})
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		ghHTTP = oauth2.NewClient(ctx, ts)
	}

	glOpts := []gitlab.ClientOptionFunc{
		gitlab.WithHTTPClient(httpClient),
		gitlab.WithCustomRetryMax(0),
	}
	if opts.GitLabURL != "" {
		glOpts = append(glOpts, gitlab.WithBaseURL(opts.GitLabURL))
	}
	glClient, err := gitlab.NewClient(opts.GitLabToken, glOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating GitLab client: %w", err)
	}

	ghClient := github.NewClient(ghHTTP)
	if opts.GitHubURL != "" {
		ghClient, err = ghClient.WithEnterpriseURLs(opts.GitHubURL, opts.GitHubURL)
		if err != nil {
			return nil, fmt.Errorf("creating GitHub client: %w", err)
		}
	}

	return &Fetcher{
		http:   ghHTTP,
		github: ghClient,
		gitlab: glClient,
	}, nil
}

// Fetch downloads the source named by source into dest. dest must not exist or
// must be an empty directory. Files already written are left in place when
// a later step fails.
func (f *Fetcher) Fetch(ctx context.Context, source, dest string) error {
	src, err := ParseSource(source)
	if err != nil {
		return &output.ExitError{Code: output.ExitUserError, Message: err.Error(), Cause: err}
	}
	if err := checkTarget(dest); err != nil {
		return output.NewSystemErrorWithCause("cannot fetch "+source, err)
	}

	slog.Debug("fetching template", "source", src.String(), "dest", dest)
	archive, err := f.open(ctx, src)
	if err != nil {
		return output.NewSystemErrorWithCause("fetching "+src.String(), err)
	}
	defer archive.Close() //nolint:errcheck // read-only stream

	n, err := extractTarGz(archive, dest, src.Subdir)
	if err != nil {
		return output.NewSystemErrorWithCause("extracting "+src.String(), err)
	}
	if n == 0 && src.Subdir != "" {
		return output.NewSystemErrorWithCause("extracting "+src.String(),
			fmt.Errorf("%w: no subdirectory %q", ErrSourceNotFound, src.Subdir))
	}
	slog.Debug("template extracted", "entries", n, "dest", dest)
	return nil
}

// open returns the gzipped tar stream of the source's ref.
func (f *Fetcher) open(ctx context.Context, src Source) (io.ReadCloser, error) {
	switch src.Host {
	case GitHub:
		return f.openGitHub(ctx, src)
	case GitLab:
		return f.openGitLab(ctx, src)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedHost, src.Host)
	}
}

func (f *Fetcher) openGitHub(ctx context.Context, src Source) (io.ReadCloser, error) {
	opts := &github.RepositoryContentGetOptions{Ref: src.Ref}
	link, resp, err := f.github.Repositories.GetArchiveLink(ctx, src.Owner, src.Repo, github.Tarball, opts, 3)
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s/%s", ErrSourceNotFound, src.Owner, src.Repo)
	}
	if err != nil {
		return nil, fmt.Errorf("resolving archive link: %w", err)
	}
	return f.download(ctx, link.String())
}

func (f *Fetcher) download(ctx context.Context, link string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	resp, err := f.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading archive: %w", err)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, link)
	case resp.StatusCode >= http.StatusBadRequest:
		_ = resp.Body.Close()
		return nil, fmt.Errorf("downloading archive: %s", resp.Status)
	}
	return resp.Body, nil
}

func (f *Fetcher) openGitLab(ctx context.Context, src Source) (io.ReadCloser, error) {
	opts := &gitlab.ArchiveOptions{Format: gitlab.Ptr("tar.gz")}
	if src.Ref != "" {
		opts.SHA = gitlab.Ptr(src.Ref)
	}
	project := src.Owner + "/" + src.Repo
	data, resp, err := f.gitlab.Repositories.Archive(project, opts, gitlab.WithContext(ctx))
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, project)
	}
	if err != nil {
		return nil, fmt.Errorf("downloading archive: %w", err)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
