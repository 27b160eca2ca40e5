package release

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/thomas-vilte/tagmate/internal/models"
	"github.com/thomas-vilte/tagmate/internal/vcs"
)

type MockGitService struct {
	mock.Mock
}

func (m *MockGitService) ListTags(ctx context.Context) ([]models.TagRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TagRef), args.Error(1)
}

func (m *MockGitService) GetTagMessage(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) GetRepoInfo(ctx context.Context) (string, string, string, error) {
	args := m.Called(ctx)
	return args.String(0), args.String(1), args.String(2), args.Error(3)
}

type MockReleaseClient struct {
	mock.Mock
}

func (m *MockReleaseClient) GetRelease(ctx context.Context, tag string) (*vcs.Release, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vcs.Release), args.Error(1)
}

func (m *MockReleaseClient) CreateRelease(ctx context.Context, tag, name, body string) (*vcs.Release, error) {
	args := m.Called(ctx, tag, name, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vcs.Release), args.Error(1)
}
