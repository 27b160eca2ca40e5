package tag

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	cfg "github.com/thomas-vilte/tagmate/internal/config"
	"github.com/thomas-vilte/tagmate/internal/i18n"
	"github.com/thomas-vilte/tagmate/internal/ui"
)

func (f *TagCommandFactory) newSyncCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Fetch tags from origin, overwriting moved local tags",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return syncTagsAction(f.newGitService(), t, config)(ctx, cmd)
		},
	}
}

func syncTagsAction(gitSvc gitService, t *i18n.Translations, config *cfg.Config) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		before, err := gitSvc.ListTags(ctx)
		if err != nil {
			return err
		}

		ui.PrintInfo(t.GetMessage("fetching_tags", 0, nil))
		if err := gitSvc.FetchTags(ctx); err != nil {
			return err
		}

		after, err := gitSvc.ListTags(ctx)
		if err != nil {
			return err
		}

		known := make(map[string]struct{}, len(before))
		for _, tag := range before {
			known[tag.Name] = struct{}{}
		}
		synced := 0
		for _, tag := range after {
			if _, ok := known[tag.Name]; !ok {
				synced++
			}
		}

		ui.PrintSuccess(os.Stdout, t.GetMessage("tags_synced", synced, map[string]interface{}{
			"Count": synced,
		}))
		return nil
	}
}
