package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	cfg "github.com/thomas-vilte/tagmate/internal/config"
	"github.com/thomas-vilte/tagmate/internal/i18n"
)

func testConfig(t *testing.T) *cfg.Config {
	config, err := cfg.LoadConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	return config
}

func runConfigTest(t *testing.T, config *cfg.Config, args ...string) error {
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	factory := NewConfigCommandFactory()
	app := &cli.Command{
		Commands: []*cli.Command{
			factory.CreateCommand(trans, config),
		},
	}
	fullArgs := append([]string{"tagmate", "config"}, args...)
	return app.Run(context.Background(), fullArgs)
}

func TestConfigSet_Language(t *testing.T) {
	config := testConfig(t)

	err := runConfigTest(t, config, "set", "language", "es")
	require.NoError(t, err)
	assert.Equal(t, "es", config.Language)

	reloaded, err := cfg.LoadConfig(config.PathFile)
	require.NoError(t, err)
	assert.Equal(t, "es", reloaded.Language)
}

func TestConfigSet_GitHubToken(t *testing.T) {
	config := testConfig(t)

	err := runConfigTest(t, config, "set", "vcs.github.token", "ghp_secret")
	require.NoError(t, err)
	assert.Equal(t, "ghp_secret", config.VCS.GitHub.Token)
}

func TestConfigSet_UnknownKey(t *testing.T) {
	config := testConfig(t)

	err := runConfigTest(t, config, "set", "no.such.key", "value")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestConfigSet_MissingArgs(t *testing.T) {
	config := testConfig(t)

	err := runConfigTest(t, config, "set", "language")
	require.Error(t, err)
}

func TestConfigSet_InvalidBool(t *testing.T) {
	config := testConfig(t)

	err := runConfigTest(t, config, "set", "auto_fetch_tags", "sometimes")
	require.Error(t, err)
	assert.False(t, config.AutoFetchTags)
}

func TestConfigShow(t *testing.T) {
	config := testConfig(t)

	err := runConfigTest(t, config, "show")
	assert.NoError(t, err)
}

func TestConfigInit(t *testing.T) {
	config := testConfig(t)

	err := runConfigTest(t, config, "init")
	assert.NoError(t, err)
	assert.FileExists(t, config.PathFile)
}
