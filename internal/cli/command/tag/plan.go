package tag

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/thomas-vilte/tagmate/internal/ai"
	cfg "github.com/thomas-vilte/tagmate/internal/config"
	"github.com/thomas-vilte/tagmate/internal/i18n"
	"github.com/thomas-vilte/tagmate/internal/models"
	"github.com/thomas-vilte/tagmate/internal/services"
	"github.com/thomas-vilte/tagmate/internal/ui"
)

func planFlags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "bump",
			Aliases: []string{"b"},
			Usage:   "Bump kind for every untagged commit (major|minor|patch)",
		},
		&cli.BoolFlag{
			Name:    "auto",
			Aliases: []string{"a"},
			Usage:   "Classify commits with AI, falling back to patch on failure",
		},
		&cli.BoolFlag{
			Name:    "combined",
			Aliases: []string{"c"},
			Usage:   "Fold all untagged commits into one tag at the newest commit",
		},
	}
}

func (f *TagCommandFactory) newPlanCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "Show the tags a run would create, without creating anything",
		Flags: planFlags(t),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			gitSvc := f.newGitService()
			classifier, err := newClassifier(ctx, config)
			if err != nil {
				return err
			}
			return planTagsAction(gitSvc, classifier, t, config)(ctx, cmd)
		},
	}
}

func planTagsAction(gitSvc gitService, classifier ai.Classifier, t *i18n.Translations, config *cfg.Config) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		maybeFetchTags(ctx, gitSvc, config)

		snapshot, err := services.LoadSnapshot(ctx, gitSvc, services.SnapshotOptions{})
		if err != nil {
			return err
		}

		if len(snapshot.UntaggedCommits) == 0 {
			ui.PrintInfo(t.GetMessage("no_untagged_commits", 0, map[string]interface{}{
				"Tag": snapshot.BaseTag,
			}))
			return nil
		}

		plan, err := buildPlan(ctx, cmd, gitSvc, classifier, config, snapshot)
		if err != nil {
			return err
		}
		if err := plan.Validate(snapshot); err != nil {
			return err
		}

		ui.PrintPlan(plan.Assignments(), baseLabel(snapshot, t), t)
		ui.PrintInfo(t.GetMessage("plan_validated", 0, nil))
		return nil
	}
}

// buildPlan assembles a plan from the command's flags: an explicit --bump
// marks every commit manually, --auto enables AI with a patch fallback,
// --combined folds everything into one tag.
func buildPlan(ctx context.Context, cmd *cli.Command, gitSvc gitService, classifier ai.Classifier, config *cfg.Config, snapshot *services.Snapshot) (*services.TagPlan, error) {
	if bump := cmd.String("bump"); bump != "" {
		kind, err := models.ParseBumpKind(bump)
		if err != nil {
			return nil, err
		}
		for i := range snapshot.UntaggedCommits {
			snapshot.UntaggedCommits[i].BumpKind = kind
		}
	}

	opts := []services.PlanBuilderOption{}
	if classifier != nil {
		opts = append(opts, services.WithClassifier(classifier))
	}
	if config != nil {
		opts = append(opts, services.WithMessageLimits(config.MaxMessageLength, config.Language))
	}
	if cmd.Bool("auto") {
		opts = append(opts, services.WithPatchFallback())
	}

	builder := services.NewPlanBuilder(gitSvc, opts...)
	if cmd.Bool("combined") {
		return builder.BuildCombined(ctx, snapshot)
	}
	return builder.BuildSequence(ctx, snapshot)
}

func baseLabel(snapshot *services.Snapshot, t *i18n.Translations) string {
	if snapshot.HasBase {
		return snapshot.Base.String()
	}
	return t.GetMessage("no_tags_yet", 0, map[string]interface{}{
		"Version": models.InitialVersion.String(),
	})
}
