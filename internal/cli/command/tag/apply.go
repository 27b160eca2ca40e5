package tag

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/thomas-vilte/tagmate/internal/ai"
	cfg "github.com/thomas-vilte/tagmate/internal/config"
	"github.com/thomas-vilte/tagmate/internal/i18n"
	"github.com/thomas-vilte/tagmate/internal/services"
	"github.com/thomas-vilte/tagmate/internal/ui"
)

func (f *TagCommandFactory) newApplyCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	flags := append(planFlags(t),
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Validate and report without creating tags",
		},
		&cli.BoolFlag{
			Name:    "push",
			Aliases: []string{"p"},
			Usage:   "Push each created tag to origin",
		},
		&cli.BoolFlag{
			Name:    "yes",
			Aliases: []string{"y"},
			Usage:   "Skip the confirmation prompt",
		},
	)

	return &cli.Command{
		Name:  "apply",
		Usage: "Create the planned version tags",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			gitSvc := f.newGitService()
			classifier, err := newClassifier(ctx, config)
			if err != nil {
				return err
			}
			return applyTagsAction(gitSvc, classifier, t, config)(ctx, cmd)
		},
	}
}

func applyTagsAction(gitSvc gitService, classifier ai.Classifier, t *i18n.Translations, config *cfg.Config) cli.ActionFunc {
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

		dryRun := cmd.Bool("dry-run")
		if !dryRun && !cmd.Bool("yes") {
			if !ui.AskConfirmation(t.GetMessage("confirm_apply", 0, nil)) {
				ui.PrintInfo(t.GetMessage("operation_cancelled", 0, nil))
				return nil
			}
		}

		applier := services.NewTagApplier(gitSvc)
		result, err := applier.Apply(ctx, plan, services.ApplyOptions{
			DryRun: dryRun,
			Push:   cmd.Bool("push"),
		})
		if err != nil {
			return err
		}

		ui.PrintApplySummary(result, t)

		if result.HasFailures() {
			// partial failure: some tags exist, some operations failed
			return cli.Exit("", 2)
		}
		return nil
	}
}
