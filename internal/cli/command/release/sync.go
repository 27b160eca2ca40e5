package release

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	cfg "github.com/thomas-vilte/tagmate/internal/config"
	appErrors "github.com/thomas-vilte/tagmate/internal/errors"
	"github.com/thomas-vilte/tagmate/internal/git"
	"github.com/thomas-vilte/tagmate/internal/i18n"
	"github.com/thomas-vilte/tagmate/internal/services"
	"github.com/thomas-vilte/tagmate/internal/ui"
	"github.com/thomas-vilte/tagmate/internal/vcs"
	"github.com/thomas-vilte/tagmate/internal/vcs/github"
)

func (f *ReleaseCommandFactory) newSyncCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Create a release for every version tag that has none",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Report missing releases without creating them",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			gitSvc := git.NewGitService()
			client, err := newReleaseClient(ctx, gitSvc, config)
			if err != nil {
				return err
			}
			return syncReleasesAction(gitSvc, client, t)(ctx, cmd)
		},
	}
}

// newReleaseClient resolves the repository's provider and builds the
// matching VCS client. Only GitHub is supported for now.
func newReleaseClient(ctx context.Context, gitSvc gitService, config *cfg.Config) (vcs.ReleaseClient, error) {
	owner, repo, provider, err := gitSvc.GetRepoInfo(ctx)
	if err != nil {
		return nil, err
	}
	if provider != "github" {
		return nil, appErrors.ErrVCSNotSupported.WithContext("provider", provider)
	}

	token := ""
	if config != nil {
		token = config.VCS.GitHub.Token
	}
	if token == "" {
		return nil, appErrors.ErrTokenMissing.WithSuggestion(
			"Set a GitHub token with: tagmate config set vcs.github.token <token>")
	}

	return github.NewGitHubClient(owner, repo, token), nil
}

func syncReleasesAction(gitSvc gitService, client vcs.ReleaseClient, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		ui.PrintInfo(t.GetMessage("syncing_releases", 0, nil))

		syncer := services.NewReleaseSyncService(gitSvc, client)
		result, err := syncer.Sync(ctx, cmd.Bool("dry-run"))
		if err != nil {
			return err
		}

		if result.DryRun {
			ui.PrintWarning(t.GetMessage("dry_run_notice", 0, nil))
		}

		if len(result.Created) == 0 && len(result.Errors) == 0 {
			ui.PrintSuccess(os.Stdout, t.GetMessage("releases_up_to_date", 0, nil))
			return nil
		}

		if len(result.Created) > 0 {
			ui.PrintSuccess(os.Stdout, t.GetMessage("releases_created", len(result.Created), map[string]interface{}{
				"Count": len(result.Created),
			}))
			for _, tag := range result.Created {
				ui.PrintKeyValue("release", tag)
			}
		}

		if len(result.Errors) > 0 {
			for _, e := range result.Errors {
				ui.PrintKeyValue(e.Tag, e.Reason)
			}
			return cli.Exit("", 2)
		}
		return nil
	}
}
