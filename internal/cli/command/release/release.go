package release

import (
	"context"

	"github.com/urfave/cli/v3"

	cfg "github.com/thomas-vilte/tagmate/internal/config"
	"github.com/thomas-vilte/tagmate/internal/i18n"
	"github.com/thomas-vilte/tagmate/internal/models"
)

// gitService is everything the release subcommands need from git.
type gitService interface {
	ListTags(ctx context.Context) ([]models.TagRef, error)
	GetTagMessage(ctx context.Context, name string) (string, error)
	GetRepoInfo(ctx context.Context) (string, string, string, error)
}

type ReleaseCommandFactory struct{}

func NewReleaseCommandFactory() *ReleaseCommandFactory {
	return &ReleaseCommandFactory{}
}

func (f *ReleaseCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "release",
		Usage: "Keep VCS releases in step with version tags",
		Commands: []*cli.Command{
			f.newSyncCommand(t, config),
		},
	}
}
