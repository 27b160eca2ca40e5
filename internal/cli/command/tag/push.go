package tag

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	cfg "github.com/thomas-vilte/tagmate/internal/config"
	"github.com/thomas-vilte/tagmate/internal/i18n"
	"github.com/thomas-vilte/tagmate/internal/ui"
)

func (f *TagCommandFactory) newPushCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "push",
		Usage: "Push all local tags to origin",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return pushTagsAction(f.newGitService(), t, config)(ctx, cmd)
		},
	}
}

func pushTagsAction(gitSvc gitService, t *i18n.Translations, config *cfg.Config) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		ui.PrintInfo(t.GetMessage("pushing_tags", 0, nil))
		if err := gitSvc.PushAllTags(ctx); err != nil {
			return err
		}
		tags, err := gitSvc.ListTags(ctx)
		if err != nil {
			return err
		}
		ui.PrintSuccess(os.Stdout, t.GetMessage("tags_pushed", len(tags), map[string]interface{}{
			"Count": len(tags),
		}))
		return nil
	}
}
