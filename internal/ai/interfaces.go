package ai

import (
	"context"

	"github.com/thomas-vilte/tagmate/internal/models"
)

// CommitClassifier decides which semver component a commit warrants.
type CommitClassifier interface {
	// ClassifyCommit returns the bump kind for a commit plus the model's
	// one-line rationale. Transport or quota failures surface as
	// ErrClassificationUnavailable so callers can fall back instead of
	// aborting the run.
	ClassifyCommit(ctx context.Context, summary, diff string) (models.BumpKind, string, error)
}

// TagMessageDrafter produces an annotation message for a version tag.
type TagMessageDrafter interface {
	// DraftTagMessage returns a single-line tag message in the requested
	// locale, at most maxLength characters.
	DraftTagMessage(ctx context.Context, summary, diff string, kind models.BumpKind, maxLength int, locale string) (string, error)
}

// Classifier is what the planning layer needs from an AI provider.
type Classifier interface {
	CommitClassifier
	TagMessageDrafter
}
