package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomas-vilte/tagmate/internal/models"
	"github.com/thomas-vilte/tagmate/internal/vcs"
)

func TestReleaseSync(t *testing.T) {
	ctx := context.Background()

	t.Run("creates releases for tags missing one, ascending", func(t *testing.T) {
		git := new(MockGitService)
		git.On("ListTags", ctx).Return([]models.TagRef{
			{Name: "v1.1.0", CommitHash: "bbb"},
			{Name: "v1.0.0", CommitHash: "aaa"},
			{Name: "nightly", CommitHash: "ccc"},
		}, nil)
		git.On("GetTagMessage", ctx, "v1.1.0").Return("Add export endpoint", nil)

		client := new(MockReleaseClient)
		client.On("GetRelease", ctx, "v1.0.0").
			Return(&vcs.Release{TagName: "v1.0.0"}, nil)
		client.On("GetRelease", ctx, "v1.1.0").Return(nil, nil)
		client.On("CreateRelease", ctx, "v1.1.0", "v1.1.0", "Add export endpoint").
			Return(&vcs.Release{TagName: "v1.1.0"}, nil)

		service := NewReleaseSyncService(git, client)
		result, err := service.Sync(ctx, false)

		require.NoError(t, err)
		assert.Equal(t, []string{"v1.1.0"}, result.Created)
		assert.Equal(t, []string{"v1.0.0"}, result.Existing)
		assert.Empty(t, result.Errors)
		git.AssertExpectations(t)
		client.AssertExpectations(t)
	})

	t.Run("dry run creates nothing", func(t *testing.T) {
		git := new(MockGitService)
		git.On("ListTags", ctx).Return([]models.TagRef{
			{Name: "v1.0.0", CommitHash: "aaa"},
		}, nil)

		client := new(MockReleaseClient)
		client.On("GetRelease", ctx, "v1.0.0").Return(nil, nil)

		service := NewReleaseSyncService(git, client)
		result, err := service.Sync(ctx, true)

		require.NoError(t, err)
		assert.True(t, result.DryRun)
		assert.Equal(t, []string{"v1.0.0"}, result.Created)
		client.AssertNotCalled(t, "CreateRelease")
	})

	t.Run("per-tag failures do not stop the batch", func(t *testing.T) {
		git := new(MockGitService)
		git.On("ListTags", ctx).Return([]models.TagRef{
			{Name: "v1.0.0", CommitHash: "aaa"},
			{Name: "v1.1.0", CommitHash: "bbb"},
		}, nil)
		git.On("GetTagMessage", ctx, "v1.1.0").Return("msg", nil)

		client := new(MockReleaseClient)
		client.On("GetRelease", ctx, "v1.0.0").Return(nil, errors.New("rate limited"))
		client.On("GetRelease", ctx, "v1.1.0").Return(nil, nil)
		client.On("CreateRelease", ctx, "v1.1.0", "v1.1.0", "msg").
			Return(&vcs.Release{TagName: "v1.1.0"}, nil)

		service := NewReleaseSyncService(git, client)
		result, err := service.Sync(ctx, false)

		require.NoError(t, err)
		assert.Equal(t, []string{"v1.1.0"}, result.Created)
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "v1.0.0", result.Errors[0].Tag)
	})
}
