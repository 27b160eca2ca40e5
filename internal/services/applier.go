package services

import (
	"context"

	domainErrors "github.com/thomas-vilte/tagmate/internal/errors"
	"github.com/thomas-vilte/tagmate/internal/logger"
	"github.com/thomas-vilte/tagmate/internal/models"
)

// applierGitService defines only the methods needed to materialize a plan.
type applierGitService interface {
	CreateTag(ctx context.Context, name, message, commit string) error
	PushTag(ctx context.Context, name string) error
}

// TagApplier executes sealed tag plans. Execution is best-effort: one
// failed tag is recorded and the rest of the plan proceeds, unlike
// validation which rejects the plan as a whole.
type TagApplier struct {
	git applierGitService
}

func NewTagApplier(git applierGitService) *TagApplier {
	return &TagApplier{git: git}
}

type ApplyOptions struct {
	// DryRun reports what would be created without touching the repository.
	DryRun bool
	// Push sends each successfully created tag to origin.
	Push bool
}

// Apply materializes the plan's assignments in order. Only a sealed
// (validated) plan is accepted. Push failures are recorded separately from
// create failures: a tag that exists locally but failed to push is not
// rolled back.
func (a *TagApplier) Apply(ctx context.Context, plan *TagPlan, opts ApplyOptions) (models.ApplyResult, error) {
	if !plan.Sealed() {
		return models.ApplyResult{}, domainErrors.ErrPlanNotValidated
	}

	result := models.ApplyResult{DryRun: opts.DryRun}
	assignments := plan.Assignments()

	if opts.DryRun {
		// dry-run reports exactly the names a live run would create
		for _, assignment := range assignments {
			result.Created = append(result.Created, assignment.Target.String())
		}
		return result, nil
	}

	for _, assignment := range assignments {
		name := assignment.Target.String()

		if err := a.git.CreateTag(ctx, name, assignment.Message, assignment.CommitHash); err != nil {
			logger.Error(ctx, "tag creation failed", err, "tag", name)
			result.Failed = append(result.Failed, models.ApplyFailure{
				Assignment: assignment,
				Stage:      models.StageCreate,
				Reason:     err.Error(),
			})
			continue
		}
		result.Created = append(result.Created, name)
		logger.Info(ctx, "tag created", "tag", name, "commit", assignment.CommitHash)

		if !opts.Push {
			continue
		}
		if err := a.git.PushTag(ctx, name); err != nil {
			logger.Error(ctx, "tag push failed", err, "tag", name)
			result.Failed = append(result.Failed, models.ApplyFailure{
				Assignment: assignment,
				Stage:      models.StagePush,
				Reason:     err.Error(),
			})
			continue
		}
		result.Pushed = append(result.Pushed, name)
	}

	return result, nil
}
