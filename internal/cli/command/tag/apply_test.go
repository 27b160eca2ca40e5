package tag

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	cfg "github.com/thomas-vilte/tagmate/internal/config"
	"github.com/thomas-vilte/tagmate/internal/i18n"
	"github.com/thomas-vilte/tagmate/internal/models"
)

func newTestTranslations(t *testing.T) *i18n.Translations {
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)
	return trans
}

func newTestConfig() *cfg.Config {
	return &cfg.Config{
		Language:         "en",
		MaxMessageLength: 72,
	}
}

func runApplyTest(t *testing.T, args []string, gitSvc gitService) error {
	trans := newTestTranslations(t)
	config := newTestConfig()

	flags := append(planFlags(trans),
		&cli.BoolFlag{Name: "dry-run"},
		&cli.BoolFlag{Name: "push", Aliases: []string{"p"}},
		&cli.BoolFlag{Name: "yes", Aliases: []string{"y"}},
	)

	app := &cli.Command{
		// return exit-coded errors to the test instead of exiting
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Commands: []*cli.Command{
			{
				Name:  "apply",
				Flags: flags,
				Action: func(ctx context.Context, c *cli.Command) error {
					return applyTagsAction(gitSvc, nil, trans, config)(ctx, c)
				},
			},
		},
	}
	fullArgs := append([]string{"tagmate", "apply"}, args...)
	return app.Run(context.Background(), fullArgs)
}

func TestApplyCommand_DryRunCreatesNothing(t *testing.T) {
	mockGit := new(MockGitService)
	mockGit.On("ListTags", mock.Anything).Return([]models.TagRef{
		{Name: "v1.2.3", CommitHash: "aaa1111111111111111111111111111111111111"},
	}, nil)
	mockGit.On("GetCommitsSinceTag", mock.Anything, "v1.2.3").Return([]models.Commit{
		{Hash: "bbb2222222222222222222222222222222222222", Summary: "fix: null deref"},
	}, nil)

	err := runApplyTest(t, []string{"--bump", "patch", "--dry-run"}, mockGit)
	assert.NoError(t, err)

	mockGit.AssertNotCalled(t, "CreateTag", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockGit.AssertExpectations(t)
}

func TestApplyCommand_SequenceCreatesPerCommit(t *testing.T) {
	mockGit := new(MockGitService)
	mockGit.On("ListTags", mock.Anything).Return([]models.TagRef{
		{Name: "v1.2.3", CommitHash: "aaa1111111111111111111111111111111111111"},
	}, nil)
	mockGit.On("GetCommitsSinceTag", mock.Anything, "v1.2.3").Return([]models.Commit{
		{Hash: "bbb2222222222222222222222222222222222222", Summary: "fix: null deref"},
		{Hash: "ccc3333333333333333333333333333333333333", Summary: "feat: new flag"},
	}, nil)
	mockGit.On("CreateTag", mock.Anything, "v1.2.4", "fix: null deref", "bbb2222222222222222222222222222222222222").Return(nil)
	mockGit.On("CreateTag", mock.Anything, "v1.2.5", "feat: new flag", "ccc3333333333333333333333333333333333333").Return(nil)

	err := runApplyTest(t, []string{"--bump", "patch", "--yes"}, mockGit)
	assert.NoError(t, err)

	mockGit.AssertExpectations(t)
}

func TestApplyCommand_CombinedCreatesOneTag(t *testing.T) {
	mockGit := new(MockGitService)
	mockGit.On("ListTags", mock.Anything).Return([]models.TagRef{
		{Name: "v1.2.3", CommitHash: "aaa1111111111111111111111111111111111111"},
	}, nil)
	mockGit.On("GetCommitsSinceTag", mock.Anything, "v1.2.3").Return([]models.Commit{
		{Hash: "bbb2222222222222222222222222222222222222", Summary: "fix: null deref"},
		{Hash: "ccc3333333333333333333333333333333333333", Summary: "feat: new flag"},
	}, nil)
	mockGit.On("CreateTag", mock.Anything, "v1.3.0", mock.Anything, "ccc3333333333333333333333333333333333333").Return(nil)
	mockGit.On("PushTag", mock.Anything, "v1.3.0").Return(nil)

	err := runApplyTest(t, []string{"--bump", "minor", "--combined", "--yes", "--push"}, mockGit)
	assert.NoError(t, err)

	mockGit.AssertExpectations(t)
}

func TestApplyCommand_NoUntaggedCommits(t *testing.T) {
	mockGit := new(MockGitService)
	mockGit.On("ListTags", mock.Anything).Return([]models.TagRef{
		{Name: "v1.2.3", CommitHash: "aaa1111111111111111111111111111111111111"},
	}, nil)
	mockGit.On("GetCommitsSinceTag", mock.Anything, "v1.2.3").Return([]models.Commit{}, nil)

	err := runApplyTest(t, []string{"--bump", "patch", "--yes"}, mockGit)
	assert.NoError(t, err)

	mockGit.AssertNotCalled(t, "CreateTag", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockGit.AssertExpectations(t)
}

func TestApplyCommand_PartialFailureExitsWithCode2(t *testing.T) {
	mockGit := new(MockGitService)
	mockGit.On("ListTags", mock.Anything).Return([]models.TagRef{
		{Name: "v1.2.3", CommitHash: "aaa1111111111111111111111111111111111111"},
	}, nil)
	mockGit.On("GetCommitsSinceTag", mock.Anything, "v1.2.3").Return([]models.Commit{
		{Hash: "bbb2222222222222222222222222222222222222", Summary: "fix: null deref"},
		{Hash: "ccc3333333333333333333333333333333333333", Summary: "feat: new flag"},
	}, nil)
	mockGit.On("CreateTag", mock.Anything, "v1.2.4", mock.Anything, mock.Anything).Return(errors.New("tag exists"))
	mockGit.On("CreateTag", mock.Anything, "v1.2.5", mock.Anything, mock.Anything).Return(nil)

	err := runApplyTest(t, []string{"--bump", "patch", "--yes"}, mockGit)
	require.Error(t, err)

	var exitCoder cli.ExitCoder
	require.True(t, errors.As(err, &exitCoder))
	assert.Equal(t, 2, exitCoder.ExitCode())

	mockGit.AssertExpectations(t)
}

func TestApplyCommand_ListTagsFailure(t *testing.T) {
	mockGit := new(MockGitService)
	mockGit.On("ListTags", mock.Anything).Return(nil, errors.New("not a git repository"))

	err := runApplyTest(t, []string{"--bump", "patch", "--yes"}, mockGit)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a git repository")

	mockGit.AssertExpectations(t)
}
