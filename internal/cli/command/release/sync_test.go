package release

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	cfg "github.com/thomas-vilte/tagmate/internal/config"
	appErrors "github.com/thomas-vilte/tagmate/internal/errors"
	"github.com/thomas-vilte/tagmate/internal/i18n"
	"github.com/thomas-vilte/tagmate/internal/models"
	"github.com/thomas-vilte/tagmate/internal/vcs"
)

func runSyncTest(t *testing.T, args []string, gitSvc gitService, client vcs.ReleaseClient) error {
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	app := &cli.Command{
		// return exit-coded errors to the test instead of exiting
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Commands: []*cli.Command{
			{
				Name: "sync",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "dry-run"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return syncReleasesAction(gitSvc, client, trans)(ctx, c)
				},
			},
		},
	}
	fullArgs := append([]string{"tagmate", "sync"}, args...)
	return app.Run(context.Background(), fullArgs)
}

func TestSyncCommand_CreatesMissingReleases(t *testing.T) {
	mockGit := new(MockGitService)
	mockClient := new(MockReleaseClient)

	mockGit.On("ListTags", mock.Anything).Return([]models.TagRef{
		{Name: "v1.0.0", CommitHash: "aaa1111111111111111111111111111111111111"},
		{Name: "v1.1.0", CommitHash: "bbb2222222222222222222222222222222222222"},
	}, nil)
	mockClient.On("GetRelease", mock.Anything, "v1.0.0").Return(&vcs.Release{TagName: "v1.0.0"}, nil)
	mockClient.On("GetRelease", mock.Anything, "v1.1.0").Return(nil, nil)
	mockGit.On("GetTagMessage", mock.Anything, "v1.1.0").Return("Add retry support", nil)
	mockClient.On("CreateRelease", mock.Anything, "v1.1.0", "v1.1.0", "Add retry support").
		Return(&vcs.Release{TagName: "v1.1.0"}, nil)

	err := runSyncTest(t, nil, mockGit, mockClient)
	assert.NoError(t, err)

	mockGit.AssertExpectations(t)
	mockClient.AssertExpectations(t)
}

func TestSyncCommand_DryRunCreatesNothing(t *testing.T) {
	mockGit := new(MockGitService)
	mockClient := new(MockReleaseClient)

	mockGit.On("ListTags", mock.Anything).Return([]models.TagRef{
		{Name: "v1.0.0", CommitHash: "aaa1111111111111111111111111111111111111"},
	}, nil)
	mockClient.On("GetRelease", mock.Anything, "v1.0.0").Return(nil, nil)

	err := runSyncTest(t, []string{"--dry-run"}, mockGit, mockClient)
	assert.NoError(t, err)

	mockClient.AssertNotCalled(t, "CreateRelease", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockGit.AssertExpectations(t)
	mockClient.AssertExpectations(t)
}

func TestSyncCommand_ProviderFailureExitsWithCode2(t *testing.T) {
	mockGit := new(MockGitService)
	mockClient := new(MockReleaseClient)

	mockGit.On("ListTags", mock.Anything).Return([]models.TagRef{
		{Name: "v1.0.0", CommitHash: "aaa1111111111111111111111111111111111111"},
	}, nil)
	mockClient.On("GetRelease", mock.Anything, "v1.0.0").Return(nil, errors.New("rate limited"))

	err := runSyncTest(t, nil, mockGit, mockClient)
	require.Error(t, err)

	var exitCoder cli.ExitCoder
	require.True(t, errors.As(err, &exitCoder))
	assert.Equal(t, 2, exitCoder.ExitCode())

	mockGit.AssertExpectations(t)
	mockClient.AssertExpectations(t)
}

func TestNewReleaseClient_UnsupportedProvider(t *testing.T) {
	mockGit := new(MockGitService)
	mockGit.On("GetRepoInfo", mock.Anything).Return("team", "repo", "gitlab", nil)

	_, err := newReleaseClient(context.Background(), mockGit, &cfg.Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrVCSNotSupported)

	mockGit.AssertExpectations(t)
}

func TestNewReleaseClient_MissingToken(t *testing.T) {
	mockGit := new(MockGitService)
	mockGit.On("GetRepoInfo", mock.Anything).Return("team", "repo", "github", nil)

	_, err := newReleaseClient(context.Background(), mockGit, &cfg.Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrTokenMissing)

	mockGit.AssertExpectations(t)
}
