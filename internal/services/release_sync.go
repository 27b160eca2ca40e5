package services

import (
	"context"
	"sort"

	"github.com/thomas-vilte/tagmate/internal/logger"
	"github.com/thomas-vilte/tagmate/internal/models"
	"github.com/thomas-vilte/tagmate/internal/vcs"
)

// releaseGitService defines only the methods needed by release syncing.
type releaseGitService interface {
	ListTags(ctx context.Context) ([]models.TagRef, error)
	GetTagMessage(ctx context.Context, name string) (string, error)
}

// ReleaseSyncService ensures every local version tag has a release on the
// hosting provider. It only creates missing releases; existing ones are
// never modified.
type ReleaseSyncService struct {
	git    releaseGitService
	client vcs.ReleaseClient
}

func NewReleaseSyncService(git releaseGitService, client vcs.ReleaseClient) *ReleaseSyncService {
	return &ReleaseSyncService{git: git, client: client}
}

type ReleaseSyncResult struct {
	Created  []string
	Existing []string
	Errors   []models.ReconcileError
	DryRun   bool
}

// Sync walks local version tags in ascending order and creates a release
// for each tag that has none, using the tag's annotation as the body.
// Per-tag failures are collected; the rest of the batch proceeds.
func (s *ReleaseSyncService) Sync(ctx context.Context, dryRun bool) (ReleaseSyncResult, error) {
	result := ReleaseSyncResult{DryRun: dryRun}

	tags, err := s.git.ListTags(ctx)
	if err != nil {
		return result, err
	}

	versioned := make([]models.TagRef, 0, len(tags))
	for _, tag := range tags {
		if _, err := models.ParseVersion(tag.Name); err == nil {
			versioned = append(versioned, tag)
		}
	}
	sort.Slice(versioned, func(i, j int) bool {
		a := models.MustParseVersion(versioned[i].Name)
		b := models.MustParseVersion(versioned[j].Name)
		return a.Compare(b) < 0
	})

	for _, tag := range versioned {
		release, err := s.client.GetRelease(ctx, tag.Name)
		if err != nil {
			result.Errors = append(result.Errors, models.ReconcileError{
				Tag: tag.Name, Remote: true, Reason: err.Error(),
			})
			continue
		}
		if release != nil {
			result.Existing = append(result.Existing, tag.Name)
			continue
		}

		if dryRun {
			result.Created = append(result.Created, tag.Name)
			continue
		}

		body, err := s.git.GetTagMessage(ctx, tag.Name)
		if err != nil {
			logger.Warn(ctx, "tag message unavailable, using tag name", "tag", tag.Name, "error", err)
			body = tag.Name
		}
		if _, err := s.client.CreateRelease(ctx, tag.Name, tag.Name, body); err != nil {
			result.Errors = append(result.Errors, models.ReconcileError{
				Tag: tag.Name, Remote: true, Reason: err.Error(),
			})
			continue
		}
		result.Created = append(result.Created, tag.Name)
		logger.Info(ctx, "release created", "tag", tag.Name)
	}

	return result, nil
}
