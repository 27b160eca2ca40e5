package tag

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/thomas-vilte/tagmate/internal/ai"
	"github.com/thomas-vilte/tagmate/internal/ai/gemini"
	cfg "github.com/thomas-vilte/tagmate/internal/config"
	"github.com/thomas-vilte/tagmate/internal/git"
	"github.com/thomas-vilte/tagmate/internal/i18n"
	"github.com/thomas-vilte/tagmate/internal/logger"
	"github.com/thomas-vilte/tagmate/internal/models"
)

// gitService is everything the tag subcommands need from git.
type gitService interface {
	ListTags(ctx context.Context) ([]models.TagRef, error)
	ListRemoteTags(ctx context.Context) ([]models.TagRef, error)
	GetCommitsSinceTag(ctx context.Context, tag string) ([]models.Commit, error)
	GetCommitDiff(ctx context.Context, hash string) (string, error)
	CreateTag(ctx context.Context, name, message, commit string) error
	DeleteTag(ctx context.Context, name string) error
	PushTag(ctx context.Context, name string) error
	DeleteRemoteTag(ctx context.Context, name string) error
	PushAllTags(ctx context.Context) error
	FetchTags(ctx context.Context) error
}

type TagCommandFactory struct{}

func NewTagCommandFactory() *TagCommandFactory {
	return &TagCommandFactory{}
}

func (f *TagCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "tag",
		Usage: "Plan, apply and clean up semantic version tags",
		Commands: []*cli.Command{
			f.newPlanCommand(t, config),
			f.newApplyCommand(t, config),
			f.newDedupCommand(t, config),
			f.newListCommand(t, config),
			f.newSyncCommand(t, config),
			f.newPushCommand(t, config),
		},
	}
}

func (f *TagCommandFactory) newGitService() *git.GitService {
	return git.NewGitService()
}

// newClassifier builds the configured AI provider, or nil when no provider
// is active. A nil classifier is valid: explicit --bump runs need none.
func newClassifier(ctx context.Context, config *cfg.Config) (ai.Classifier, error) {
	if config == nil || config.AI.ActiveAI == "" {
		return nil, nil
	}
	switch config.AI.ActiveAI {
	case cfg.ProviderGemini:
		return gemini.NewClassifier(ctx, config.AI.Gemini.APIKey, config.AI.Gemini.Model)
	}
	return nil, nil
}

// maybeFetchTags syncs tags before reading state when configured to.
// Fetch failures degrade to working with local tags.
func maybeFetchTags(ctx context.Context, gitSvc gitService, config *cfg.Config) {
	if config == nil || !config.AutoFetchTags {
		return
	}
	if err := gitSvc.FetchTags(ctx); err != nil {
		logger.Warn(ctx, "failed to fetch tags, continuing with local tags", "error", err)
	}
}
