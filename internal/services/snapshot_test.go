package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomas-vilte/tagmate/internal/models"
)

func TestLoadSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("base is the highest parseable tag, not the newest", func(t *testing.T) {
		git := new(MockGitService)
		git.On("ListTags", ctx).Return([]models.TagRef{
			{Name: "v0.9.0", CommitHash: "aaa"},
			{Name: "v0.10.0", CommitHash: "bbb"},
			{Name: "nightly", CommitHash: "ccc"},
			{Name: "v0.2.0", CommitHash: "ddd"},
		}, nil)
		git.On("GetCommitsSinceTag", ctx, "v0.10.0").Return([]models.Commit{
			{Hash: "eee", Summary: "fix: x"},
		}, nil)

		snapshot, err := LoadSnapshot(ctx, git, SnapshotOptions{})
		require.NoError(t, err)

		assert.True(t, snapshot.HasBase)
		assert.Equal(t, "v0.10.0", snapshot.BaseTag)
		assert.Equal(t, "v0.10.0", snapshot.Base.String())
		assert.Len(t, snapshot.UntaggedCommits, 1)
		assert.Len(t, snapshot.LocalTags, 4, "non-semver tags stay in the listing")
		git.AssertExpectations(t)
	})

	t.Run("repository without semver tags has no base", func(t *testing.T) {
		git := new(MockGitService)
		git.On("ListTags", ctx).Return([]models.TagRef{
			{Name: "nightly", CommitHash: "aaa"},
		}, nil)
		git.On("GetCommitsSinceTag", ctx, "").Return([]models.Commit{
			{Hash: "aaa", Summary: "initial"},
			{Hash: "bbb", Summary: "more"},
		}, nil)

		snapshot, err := LoadSnapshot(ctx, git, SnapshotOptions{})
		require.NoError(t, err)

		assert.False(t, snapshot.HasBase)
		assert.Len(t, snapshot.UntaggedCommits, 2, "whole history is untagged")
	})

	t.Run("remote tags only when requested", func(t *testing.T) {
		git := new(MockGitService)
		git.On("ListTags", ctx).Return([]models.TagRef{}, nil)
		git.On("GetCommitsSinceTag", ctx, "").Return([]models.Commit{}, nil)
		git.On("ListRemoteTags", ctx).Return([]models.TagRef{
			{Name: "v1.0.0", CommitHash: "aaa"},
		}, nil)

		snapshot, err := LoadSnapshot(ctx, git, SnapshotOptions{IncludeRemote: true})
		require.NoError(t, err)
		assert.Len(t, snapshot.RemoteTags, 1)
		git.AssertExpectations(t)
	})

	t.Run("propagates git failures", func(t *testing.T) {
		git := new(MockGitService)
		git.On("ListTags", ctx).Return(nil, errors.New("not a git repository"))

		_, err := LoadSnapshot(ctx, git, SnapshotOptions{})
		assert.Error(t, err)
	})
}

func TestSnapshotLookups(t *testing.T) {
	snapshot := &Snapshot{
		LocalTags: []models.TagRef{
			{Name: "v1.0.0", CommitHash: "aaa"},
		},
		UntaggedCommits: []models.Commit{
			{Hash: "bbb"},
		},
	}

	assert.True(t, snapshot.HasLocalTag("v1.0.0"))
	assert.False(t, snapshot.HasLocalTag("v2.0.0"))
	assert.True(t, snapshot.IsUntagged("bbb"))
	assert.False(t, snapshot.IsUntagged("aaa"))
}
