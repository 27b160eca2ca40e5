package services

import (
	"context"

	"github.com/thomas-vilte/tagmate/internal/logger"
	"github.com/thomas-vilte/tagmate/internal/models"
)

// reconcilerGitService defines only the methods needed to delete tags.
type reconcilerGitService interface {
	DeleteTag(ctx context.Context, name string) error
	DeleteRemoteTag(ctx context.Context, name string) error
}

// TagReconciler finds commits that accumulated more than one version tag
// and removes everything but the highest one. Tags that do not parse as
// versions are invisible to it: they neither form groups nor get deleted.
type TagReconciler struct {
	git reconcilerGitService
}

func NewTagReconciler(git reconcilerGitService) *TagReconciler {
	return &TagReconciler{git: git}
}

// FindGroups groups parseable tags by the commit they point at, preserving
// first-seen commit order and per-commit listing order. Only groups with at
// least two version tags are returned.
func (r *TagReconciler) FindGroups(tags []models.TagRef) []models.TagGroup {
	index := make(map[string]int)
	var groups []models.TagGroup

	for _, tag := range tags {
		if _, err := models.ParseVersion(tag.Name); err != nil {
			continue
		}
		i, ok := index[tag.CommitHash]
		if !ok {
			i = len(groups)
			index[tag.CommitHash] = i
			groups = append(groups, models.TagGroup{CommitHash: tag.CommitHash})
		}
		groups[i].Tags = append(groups[i].Tags, tag)
	}

	actionable := groups[:0]
	for _, group := range groups {
		if len(group.Tags) >= 2 {
			actionable = append(actionable, group)
		}
	}
	return actionable
}

// Survivor picks the tag to keep in a group: the highest version, with the
// first-seen tag winning a tie between equal versions spelled differently
// (v1.0.0 vs 1.0.0).
func (r *TagReconciler) Survivor(group models.TagGroup) models.TagRef {
	survivor := group.Tags[0]
	best := models.MustParseVersion(survivor.Name)
	for _, tag := range group.Tags[1:] {
		version := models.MustParseVersion(tag.Name)
		if version.Compare(best) > 0 {
			survivor = tag
			best = version
		}
	}
	return survivor
}

// PlanDeletions lists every non-survivor tag across the groups, in group
// order, each carrying the survivor it lost to.
func (r *TagReconciler) PlanDeletions(groups []models.TagGroup) []models.TagDeletion {
	var deletions []models.TagDeletion
	for _, group := range groups {
		survivor := r.Survivor(group)
		for _, tag := range group.Tags {
			if tag.Name == survivor.Name {
				continue
			}
			deletions = append(deletions, models.TagDeletion{
				Tag:      tag,
				Survivor: survivor.Name,
			})
		}
	}
	return deletions
}

type ReconcileOptions struct {
	// IncludeRemote also deletes each tag on origin after the local delete.
	IncludeRemote bool
	// DryRun reports what would be deleted without touching anything.
	DryRun bool
}

// Execute deletes the planned tags. Per-tag: local delete first, then
// remote when requested; a failed local delete skips the remote delete for
// that tag so the two sides cannot diverge further. Failures never stop
// the rest of the batch. Skipped lists the survivors kept.
func (r *TagReconciler) Execute(ctx context.Context, deletions []models.TagDeletion, opts ReconcileOptions) models.ReconcileResult {
	result := models.ReconcileResult{DryRun: opts.DryRun}

	survivors := make(map[string]bool)
	for _, deletion := range deletions {
		if !survivors[deletion.Survivor] {
			survivors[deletion.Survivor] = true
			result.Skipped = append(result.Skipped, deletion.Survivor)
		}
	}

	for _, deletion := range deletions {
		name := deletion.Tag.Name

		if opts.DryRun {
			result.DeletedLocal = append(result.DeletedLocal, name)
			if opts.IncludeRemote {
				result.DeletedRemote = append(result.DeletedRemote, name)
			}
			continue
		}

		if err := r.git.DeleteTag(ctx, name); err != nil {
			logger.Error(ctx, "local tag delete failed", err, "tag", name)
			result.Errors = append(result.Errors, models.ReconcileError{
				Tag:    name,
				Reason: err.Error(),
			})
			continue
		}
		result.DeletedLocal = append(result.DeletedLocal, name)
		logger.Info(ctx, "duplicate tag deleted", "tag", name, "survivor", deletion.Survivor)

		if !opts.IncludeRemote {
			continue
		}
		if err := r.git.DeleteRemoteTag(ctx, name); err != nil {
			logger.Error(ctx, "remote tag delete failed", err, "tag", name)
			result.Errors = append(result.Errors, models.ReconcileError{
				Tag:    name,
				Remote: true,
				Reason: err.Error(),
			})
			continue
		}
		result.DeletedRemote = append(result.DeletedRemote, name)
	}

	return result
}
