package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	deckerrors "github.com/mrz1836/gitdeck/internal/errors"
)

// Release describes a release to create.
type Release struct {
	TagName    string `json:"tag_name"`
	Name       string `json:"name"`
	Body       string `json:"body"`
	Prerelease bool   `json:"prerelease"`
	Draft      bool   `json:"draft"`
}

// ReleaseNotes is GitHub's generated title and markdown body for a tag.
type ReleaseNotes struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

// Repository is the subset of a created repository gitdeck reports.
type Repository struct {
	HTMLURL  string `json:"html_url"`
	CloneURL string `json:"clone_url"`
}

// CreateRelease publishes a release and returns its web URL.
func (c *Client) CreateRelease(ctx context.Context, owner, repo string, rel Release) (string, error) {
	if rel.TagName == "" {
		return "", fmt.Errorf("release tag cannot be empty: %w", deckerrors.ErrEmptyValue)
	}
	var out struct {
		HTMLURL string `json:"html_url"`
	}
	if err := c.doJSON(ctx, http.MethodPost, c.repoURL(owner, repo, "releases"), true, rel, &out); err != nil {
		return "", fmt.Errorf("failed to create release %s: %w", rel.TagName, err)
	}
	return out.HTMLURL, nil
}

// GenerateReleaseNotes asks GitHub to draft notes for tag. An empty
// previousTag lets GitHub pick the prior release.
func (c *Client) GenerateReleaseNotes(ctx context.Context, owner, repo, tag, previousTag string) (*ReleaseNotes, error) {
	if tag == "" {
		return nil, fmt.Errorf("release tag cannot be empty: %w", deckerrors.ErrEmptyValue)
	}
	payload := map[string]string{"tag_name": tag}
	if previousTag != "" {
		payload["previous_tag_name"] = previousTag
	}
	var notes ReleaseNotes
	if err := c.doJSON(ctx, http.MethodPost, c.repoURL(owner, repo, "releases/generate-notes"), true, payload, &notes); err != nil {
		return nil, fmt.Errorf("failed to generate release notes: %w", err)
	}
	return &notes, nil
}

// CreateRepository creates a repository for the authenticated user.
func (c *Client) CreateRepository(ctx context.Context, name, description string, private bool) (*Repository, error) {
	if name == "" {
		return nil, fmt.Errorf("repository name cannot be empty: %w", deckerrors.ErrEmptyValue)
	}
	payload := map[string]any{
		"name":        name,
		"description": description,
		"private":     private,
	}
	var out Repository
	if err := c.doJSON(ctx, http.MethodPost, c.apiURL+"/user/repos", true, payload, &out); err != nil {
		return nil, fmt.Errorf("failed to create repository %s: %w", name, err)
	}
	return &out, nil
}

func (c *Client) repoURL(owner, repo, suffix string) string {
	return fmt.Sprintf("%s/repos/%s/%s/%s", c.apiURL, url.PathEscape(owner), url.PathEscape(repo), suffix)
}

// remoteSlug matches the owner/name tail of GitHub remote URLs in https,
// ssh, and scp-like forms.
var remoteSlug = regexp.MustCompile(`github\.com[:/]([^/\s]+)/([^/\s]+?)(?:\.git)?/?$`) //nolint:gochecknoglobals // Package-level pattern

// ParseRemoteURL extracts owner and repository name from a GitHub remote URL.
func ParseRemoteURL(remote string) (owner, repo string, err error) {
	m := remoteSlug.FindStringSubmatch(strings.TrimSpace(remote))
	if m == nil {
		return "", "", fmt.Errorf("not a GitHub remote %q: %w", remote, deckerrors.ErrInvalidArgument)
	}
	return m[1], m[2], nil
}
