package github

import (
	"context"
	"net/http"

	"github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	domainErrors "github.com/thomas-vilte/tagmate/internal/errors"
	"github.com/thomas-vilte/tagmate/internal/vcs"
)

var _ vcs.ReleaseClient = (*GitHubClient)(nil)

// ReleasesService is the slice of the go-github Repositories API that
// release syncing touches, narrowed for testability.
type ReleasesService interface {
	CreateRelease(ctx context.Context, owner, repo string, release *github.RepositoryRelease) (*github.RepositoryRelease, *github.Response, error)
	GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*github.RepositoryRelease, *github.Response, error)
}

type GitHubClient struct {
	releaseService ReleasesService
	owner          string
	repo           string
}

func NewGitHubClient(owner, repo, token string) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		releaseService: client.Repositories,
		owner:          owner,
		repo:           repo,
	}
}

// GetRelease returns the release published for a tag, or nil when the
// tag has no release yet.
func (c *GitHubClient) GetRelease(ctx context.Context, tag string) (*vcs.Release, error) {
	release, resp, err := c.releaseService.GetReleaseByTag(ctx, c.owner, c.repo, tag)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, domainErrors.ErrGetRelease.WithContext("tag", tag).WithError(err)
	}
	return toRelease(release), nil
}

// CreateRelease publishes a release for an existing tag.
func (c *GitHubClient) CreateRelease(ctx context.Context, tag, name, body string) (*vcs.Release, error) {
	release, _, err := c.releaseService.CreateRelease(ctx, c.owner, c.repo, &github.RepositoryRelease{
		TagName: github.Ptr(tag),
		Name:    github.Ptr(name),
		Body:    github.Ptr(body),
	})
	if err != nil {
		return nil, domainErrors.ErrCreateRelease.WithContext("tag", tag).WithError(err)
	}
	return toRelease(release), nil
}

func toRelease(r *github.RepositoryRelease) *vcs.Release {
	if r == nil {
		return nil
	}
	return &vcs.Release{
		TagName: r.GetTagName(),
		Name:    r.GetName(),
		Body:    r.GetBody(),
		URL:     r.GetHTMLURL(),
	}
}
