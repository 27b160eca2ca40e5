package services

import (
	"context"

	"github.com/thomas-vilte/tagmate/internal/ai"
	domainErrors "github.com/thomas-vilte/tagmate/internal/errors"
	"github.com/thomas-vilte/tagmate/internal/logger"
	"github.com/thomas-vilte/tagmate/internal/models"
)

// VersionResolver turns a snapshot's base version and a set of classified
// commits into concrete next versions.
type VersionResolver struct{}

func NewVersionResolver() *VersionResolver {
	return &VersionResolver{}
}

// BaseVersion returns the snapshot's base version, or ErrNoTagsFound for a
// repository without semver tags. The v0.1.0 first-tag default is the
// caller's policy, not the resolver's.
func (r *VersionResolver) BaseVersion(snapshot *Snapshot) (models.Version, error) {
	if !snapshot.HasBase {
		return models.Version{}, domainErrors.ErrNoTagsFound
	}
	return snapshot.Base, nil
}

// ResolvedKind carries a resolved bump kind with its origin.
type ResolvedKind struct {
	Kind   models.BumpKind
	Origin models.AssignmentOrigin
	Reason string
}

// ResolveKind decides the bump kind for one commit. An explicit kind on the
// commit wins; otherwise the classifier is consulted; with neither, the
// commit is unclassifiable. When fallback is set, classifier failures
// degrade to a patch bump instead of failing the commit.
func (r *VersionResolver) ResolveKind(ctx context.Context, commit models.Commit, diff string, classifier ai.CommitClassifier, fallback bool) (ResolvedKind, error) {
	if commit.BumpKind.IsActionable() {
		return ResolvedKind{Kind: commit.BumpKind, Origin: models.OriginManual}, nil
	}

	if classifier == nil {
		if fallback {
			return ResolvedKind{Kind: models.BumpPatch, Origin: models.OriginDefault}, nil
		}
		return ResolvedKind{}, domainErrors.ErrUnclassifiedCommit.WithContext("commit", commit.ShortHash())
	}

	kind, reason, err := classifier.ClassifyCommit(ctx, commit.Summary, diff)
	if err != nil {
		if fallback {
			logger.Warn(ctx, "classification failed, defaulting to patch",
				"commit", commit.ShortHash(), "error", err)
			return ResolvedKind{Kind: models.BumpPatch, Origin: models.OriginDefault}, nil
		}
		return ResolvedKind{}, err
	}
	return ResolvedKind{Kind: kind, Origin: models.OriginAI, Reason: reason}, nil
}

// NextCombined folds a set of bump kinds into one next version by applying
// the highest-severity kind exactly once. Three patches and a minor on
// v1.2.3 yield v1.3.0, not v1.3.3.
func (r *VersionResolver) NextCombined(base models.Version, hasBase bool, kinds []models.BumpKind) (models.Version, error) {
	highest := models.BumpUnset
	for _, kind := range kinds {
		if kind.Severity() > highest.Severity() {
			highest = kind
		}
	}
	if !highest.IsActionable() {
		return models.Version{}, domainErrors.ErrEmptyPlan
	}
	if !hasBase {
		return models.InitialVersion, nil
	}
	return base.Bump(highest)
}

// NextSequence assigns one version per kind, bumping incrementally in order,
// so each commit in a multi-commit run gets its own tag. Without a base the
// sequence starts at v0.1.0.
func (r *VersionResolver) NextSequence(base models.Version, hasBase bool, kinds []models.BumpKind) ([]models.Version, error) {
	versions := make([]models.Version, 0, len(kinds))
	current := base
	for i, kind := range kinds {
		if !kind.IsActionable() {
			return nil, domainErrors.ErrUnclassifiedCommit.WithContext("position", i)
		}
		if !hasBase && i == 0 {
			current = models.InitialVersion
		} else {
			next, err := current.Bump(kind)
			if err != nil {
				return nil, err
			}
			current = next
		}
		versions = append(versions, current)
	}
	return versions, nil
}
