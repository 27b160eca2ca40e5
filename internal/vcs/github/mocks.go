package github

import (
	"context"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/mock"
)

type MockReleasesService struct {
	mock.Mock
}

func (m *MockReleasesService) CreateRelease(ctx context.Context, owner, repo string, release *github.RepositoryRelease) (*github.RepositoryRelease, *github.Response, error) {
	args := m.Called(ctx, owner, repo, release)
	var rel *github.RepositoryRelease
	if args.Get(0) != nil {
		rel = args.Get(0).(*github.RepositoryRelease)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return rel, resp, args.Error(2)
}

func (m *MockReleasesService) GetReleaseByTag(ctx context.Context, owner, repo, tag string) (*github.RepositoryRelease, *github.Response, error) {
	args := m.Called(ctx, owner, repo, tag)
	var rel *github.RepositoryRelease
	if args.Get(0) != nil {
		rel = args.Get(0).(*github.RepositoryRelease)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return rel, resp, args.Error(2)
}
