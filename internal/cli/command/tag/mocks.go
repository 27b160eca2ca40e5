package tag

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/thomas-vilte/tagmate/internal/models"
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

func (m *MockGitService) ListRemoteTags(ctx context.Context) ([]models.TagRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TagRef), args.Error(1)
}

func (m *MockGitService) GetCommitsSinceTag(ctx context.Context, tag string) ([]models.Commit, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Commit), args.Error(1)
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

func (m *MockGitService) PushAllTags(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGitService) FetchTags(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
