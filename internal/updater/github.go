package updater

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	githubAPIBase = "https://api.github.com"
)

// Release represents a GitHub release.
type Release struct {
	Version    string    `json:"tag_name"`
	Prerelease bool      `json:"prerelease"`
	Published  time.Time `json:"published_at"`
	HTMLURL    string    `json:"html_url"`
}

// GitHubReleases looks up the latest release of a GitHub repository.
type GitHubReleases struct {
	repo string
	src  source
}

// NewGitHubReleases creates a lookup for repo ("owner/name"). WithMirror
// points it at a GitHub Enterprise API.
func NewGitHubReleases(repo string, opts ...SourceOption) *GitHubReleases {
	return &GitHubReleases{repo: repo, src: newSource(githubAPIBase, opts)}
}

// LookupLatest fetches the latest release and pairs its tag with pkg.Version.
func (g *GitHubReleases) LookupLatest(ctx context.Context, pkg PackageIdentity) (*RemoteVersionInfo, error) {
	release, err := g.CheckLatestVersion(ctx)
	if err != nil {
		return nil, err
	}
	return &RemoteVersionInfo{
		Current: pkg.Version,
		Latest:  strings.TrimPrefix(release.Version, "v"),
	}, nil
}

// CheckLatestVersion fetches the latest release from GitHub.
func (g *GitHubReleases) CheckLatestVersion(ctx context.Context) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", g.src.baseURL, g.repo)

	header := http.Header{}
	header.Set("Accept", "application/vnd.github+json")
	// Support optional GitHub token for higher rate limits.
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		header.Set("Authorization", "token "+token)
	}

	var release Release
	err := g.src.getJSON(ctx, url, header, &release)
	var se *StatusError
	switch {
	case errors.Is(err, ErrPackageNotFound):
		return nil, fmt.Errorf("no release found for %s: %w", g.repo, err)
	case errors.As(err, &se) && se.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("GitHub API rate limit exceeded. Set GITHUB_TOKEN for higher limits")
	case err != nil:
		return nil, err
	}

	if release.Version == "" {
		return nil, fmt.Errorf("release for %s has no tag", g.repo)
	}
	return &release, nil
}
