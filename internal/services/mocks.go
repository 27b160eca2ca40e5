package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/thomas-vilte/tagmate/internal/models"
	"github.com/thomas-vilte/tagmate/internal/vcs"
)

// MockGitService covers every git-facing interface in this package.
type MockGitService struct {
	mock.Mock
}

func (m *MockGitService) ListTags(ctx context.Context) ([]models.TagRef, error) {
	args := m.Called(ctx)
	var tags []models.TagRef
	if args.Get(0) != nil {
		tags = args.Get(0).([]models.TagRef)
	}
	return tags, args.Error(1)
}

func (m *MockGitService) ListRemoteTags(ctx context.Context) ([]models.TagRef, error) {
	args := m.Called(ctx)
	var tags []models.TagRef
	if args.Get(0) != nil {
		tags = args.Get(0).([]models.TagRef)
	}
	return tags, args.Error(1)
}

func (m *MockGitService) GetCommitsSinceTag(ctx context.Context, tag string) ([]models.Commit, error) {
	args := m.Called(ctx, tag)
	var commits []models.Commit
	if args.Get(0) != nil {
		commits = args.Get(0).([]models.Commit)
	}
	return commits, args.Error(1)
}

func (m *MockGitService) GetCommitDiff(ctx context.Context, hash string) (string, error) {
	args := m.Called(ctx, hash)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) CreateTag(ctx context.Context, name, message, commit string) error {
	args := m.Called(ctx, name, message, commit)
	return args.Error(0)
}

func (m *MockGitService) DeleteTag(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockGitService) PushTag(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockGitService) DeleteRemoteTag(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockGitService) GetTagMessage(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) ClassifyCommit(ctx context.Context, summary, diff string) (models.BumpKind, string, error) {
	args := m.Called(ctx, summary, diff)
	return args.Get(0).(models.BumpKind), args.String(1), args.Error(2)
}

func (m *MockClassifier) DraftTagMessage(ctx context.Context, summary, diff string, kind models.BumpKind, maxLength int, locale string) (string, error) {
	args := m.Called(ctx, summary, diff, kind, maxLength, locale)
	return args.String(0), args.Error(1)
}

type MockReleaseClient struct {
	mock.Mock
}

func (m *MockReleaseClient) GetRelease(ctx context.Context, tag string) (*vcs.Release, error) {
	args := m.Called(ctx, tag)
	var release *vcs.Release
	if args.Get(0) != nil {
		release = args.Get(0).(*vcs.Release)
	}
	return release, args.Error(1)
}

func (m *MockReleaseClient) CreateRelease(ctx context.Context, tag, name, body string) (*vcs.Release, error) {
	args := m.Called(ctx, tag, name, body)
	var release *vcs.Release
	if args.Get(0) != nil {
		release = args.Get(0).(*vcs.Release)
	}
	return release, args.Error(1)
}
