package tag

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	appErrors "github.com/thomas-vilte/tagmate/internal/errors"
	"github.com/thomas-vilte/tagmate/internal/models"
)

func runPlanTest(t *testing.T, args []string, gitSvc gitService) error {
	trans := newTestTranslations(t)
	config := newTestConfig()

	app := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "plan",
				Flags: planFlags(trans),
				Action: func(ctx context.Context, c *cli.Command) error {
					return planTagsAction(gitSvc, nil, trans, config)(ctx, c)
				},
			},
		},
	}
	fullArgs := append([]string{"tagmate", "plan"}, args...)
	return app.Run(context.Background(), fullArgs)
}

func TestPlanCommand_NeverWrites(t *testing.T) {
	mockGit := new(MockGitService)
	mockGit.On("ListTags", mock.Anything).Return([]models.TagRef{
		{Name: "v1.2.3", CommitHash: "aaa1111111111111111111111111111111111111"},
	}, nil)
	mockGit.On("GetCommitsSinceTag", mock.Anything, "v1.2.3").Return([]models.Commit{
		{Hash: "bbb2222222222222222222222222222222222222", Summary: "fix: null deref"},
	}, nil)

	err := runPlanTest(t, []string{"--bump", "patch"}, mockGit)
	assert.NoError(t, err)

	mockGit.AssertNotCalled(t, "CreateTag", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockGit.AssertNotCalled(t, "PushTag", mock.Anything, mock.Anything)
	mockGit.AssertExpectations(t)
}

func TestPlanCommand_FirstTagIsInitialVersion(t *testing.T) {
	mockGit := new(MockGitService)
	mockGit.On("ListTags", mock.Anything).Return([]models.TagRef{}, nil)
	mockGit.On("GetCommitsSinceTag", mock.Anything, "").Return([]models.Commit{
		{Hash: "bbb2222222222222222222222222222222222222", Summary: "initial import"},
	}, nil)

	err := runPlanTest(t, []string{"--bump", "minor", "--combined"}, mockGit)
	assert.NoError(t, err)

	mockGit.AssertExpectations(t)
}

func TestPlanCommand_InvalidBumpKind(t *testing.T) {
	mockGit := new(MockGitService)
	mockGit.On("ListTags", mock.Anything).Return([]models.TagRef{
		{Name: "v1.2.3", CommitHash: "aaa1111111111111111111111111111111111111"},
	}, nil)
	mockGit.On("GetCommitsSinceTag", mock.Anything, "v1.2.3").Return([]models.Commit{
		{Hash: "bbb2222222222222222222222222222222222222", Summary: "fix: null deref"},
	}, nil)

	err := runPlanTest(t, []string{"--bump", "gigantic"}, mockGit)
	require.Error(t, err)

	mockGit.AssertExpectations(t)
}

func TestPlanCommand_UnclassifiableWithoutBump(t *testing.T) {
	mockGit := new(MockGitService)
	mockGit.On("ListTags", mock.Anything).Return([]models.TagRef{
		{Name: "v1.2.3", CommitHash: "aaa1111111111111111111111111111111111111"},
	}, nil)
	mockGit.On("GetCommitsSinceTag", mock.Anything, "v1.2.3").Return([]models.Commit{
		{Hash: "bbb2222222222222222222222222222222222222", Summary: "fix: null deref"},
	}, nil)

	err := runPlanTest(t, nil, mockGit)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrUnclassifiedCommit))

	mockGit.AssertExpectations(t)
}
