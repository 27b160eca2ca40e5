package tag

import (
	"context"

	"github.com/urfave/cli/v3"

	cfg "github.com/thomas-vilte/tagmate/internal/config"
	"github.com/thomas-vilte/tagmate/internal/i18n"
	"github.com/thomas-vilte/tagmate/internal/services"
	"github.com/thomas-vilte/tagmate/internal/ui"
)

func (f *TagCommandFactory) newDedupCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "dedup",
		Usage: "Delete duplicate version tags, keeping the highest per commit",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "remote",
				Aliases: []string{"r"},
				Usage:   "Also delete the duplicates on origin",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Report what would be deleted without deleting",
			},
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Skip the confirmation prompt",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return dedupTagsAction(f.newGitService(), t, config)(ctx, cmd)
		},
	}
}

func dedupTagsAction(gitSvc gitService, t *i18n.Translations, config *cfg.Config) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		maybeFetchTags(ctx, gitSvc, config)

		tags, err := gitSvc.ListTags(ctx)
		if err != nil {
			return err
		}

		reconciler := services.NewTagReconciler(gitSvc)
		groups := reconciler.FindGroups(tags)
		if len(groups) == 0 {
			ui.PrintInfo(t.GetMessage("no_duplicates", 0, nil))
			return nil
		}

		for _, group := range groups {
			survivor := reconciler.Survivor(group)
			hash := group.CommitHash
			if len(hash) > 7 {
				hash = hash[:7]
			}
			ui.PrintInfo(t.GetMessage("duplicate_group", len(group.Tags), map[string]interface{}{
				"Hash":     hash,
				"Count":    len(group.Tags),
				"Survivor": survivor.Name,
			}))
		}

		deletions := reconciler.PlanDeletions(groups)
		dryRun := cmd.Bool("dry-run")

		if !dryRun && !cmd.Bool("yes") {
			if !ui.AskConfirmation(t.GetMessage("confirm_delete", 0, nil)) {
				ui.PrintInfo(t.GetMessage("operation_cancelled", 0, nil))
				return nil
			}
		}

		result := reconciler.Execute(ctx, deletions, services.ReconcileOptions{
			IncludeRemote: cmd.Bool("remote"),
			DryRun:        dryRun,
		})

		ui.PrintReconcileSummary(result, t)

		if result.HasErrors() {
			return cli.Exit("", 2)
		}
		return nil
	}
}
