package services

import (
	"context"

	"github.com/thomas-vilte/tagmate/internal/logger"
	"github.com/thomas-vilte/tagmate/internal/models"
)

// snapshotGitService defines only the methods needed to read repository state.
type snapshotGitService interface {
	ListTags(ctx context.Context) ([]models.TagRef, error)
	ListRemoteTags(ctx context.Context) ([]models.TagRef, error)
	GetCommitsSinceTag(ctx context.Context, tag string) ([]models.Commit, error)
}

// Snapshot is a point-in-time read of the repository's tag state. It is
// rebuilt at the start of every invocation and never cached across runs:
// two processes tagging the same repository will each see whatever git
// reports when they look.
type Snapshot struct {
	// LocalTags preserves git's listing order; duplicate survivor
	// tie-breaking depends on it.
	LocalTags  []models.TagRef
	RemoteTags []models.TagRef

	// UntaggedCommits are the commits after BaseTag, oldest first.
	UntaggedCommits []models.Commit

	// Base is the newest parseable version among LocalTags. BaseTag is its
	// raw tag name. HasBase is false in a repository without semver tags.
	Base    models.Version
	BaseTag string
	HasBase bool
}

type SnapshotOptions struct {
	IncludeRemote bool
}

// LoadSnapshot reads the repository's current tag state. The base version
// is the maximum parseable tag, not the most recently created one, so a
// repository with out-of-order tag creation still resolves correctly.
func LoadSnapshot(ctx context.Context, git snapshotGitService, opts SnapshotOptions) (*Snapshot, error) {
	snapshot := &Snapshot{}

	localTags, err := git.ListTags(ctx)
	if err != nil {
		return nil, err
	}
	snapshot.LocalTags = localTags

	for _, tag := range localTags {
		version, err := models.ParseVersion(tag.Name)
		if err != nil {
			// non-semver tags are ignored for base resolution
			continue
		}
		if !snapshot.HasBase || version.Compare(snapshot.Base) > 0 {
			snapshot.Base = version
			snapshot.BaseTag = tag.Name
			snapshot.HasBase = true
		}
	}

	commits, err := git.GetCommitsSinceTag(ctx, snapshot.BaseTag)
	if err != nil {
		return nil, err
	}
	snapshot.UntaggedCommits = commits

	if opts.IncludeRemote {
		remoteTags, err := git.ListRemoteTags(ctx)
		if err != nil {
			return nil, err
		}
		snapshot.RemoteTags = remoteTags
	}

	logger.Debug(ctx, "repository snapshot loaded",
		"local_tags", len(snapshot.LocalTags),
		"untagged_commits", len(snapshot.UntaggedCommits),
		"base", snapshot.BaseTag)

	return snapshot, nil
}

// IsUntagged reports whether a commit hash is in the snapshot's untagged set.
func (s *Snapshot) IsUntagged(hash string) bool {
	for _, commit := range s.UntaggedCommits {
		if commit.Hash == hash {
			return true
		}
	}
	return false
}

// HasLocalTag reports whether a tag name already exists locally.
func (s *Snapshot) HasLocalTag(name string) bool {
	for _, tag := range s.LocalTags {
		if tag.Name == name {
			return true
		}
	}
	return false
}
