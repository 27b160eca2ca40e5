package config

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	cfg "github.com/thomas-vilte/tagmate/internal/config"
	"github.com/thomas-vilte/tagmate/internal/i18n"
	"github.com/thomas-vilte/tagmate/internal/ui"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (f *ConfigCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Inspect and change tagmate settings",
		Commands: []*cli.Command{
			f.newInitCommand(t, config),
			f.newShowCommand(t, config),
			f.newSetCommand(t, config),
		},
	}
}

func (f *ConfigCommandFactory) newInitCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:   "init",
		Usage:  "Write a default configuration file",
		Action: initConfigAction(config, t),
	}
}

func initConfigAction(config *cfg.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		// LoadConfig at startup already created the file when missing;
		// init just saves current values and reports where they live.
		if err := cfg.SaveConfig(config); err != nil {
			return err
		}
		ui.PrintSuccess(os.Stdout, t.GetMessage("config_initialized", 0, map[string]interface{}{
			"Path": config.PathFile,
		}))
		return nil
	}
}

func (f *ConfigCommandFactory) newShowCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:   "show",
		Usage:  "Print the active configuration",
		Action: showConfigAction(config, t),
	}
}

func showConfigAction(config *cfg.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		ui.PrintInfo(t.GetMessage("current_config", 0, nil))
		ui.PrintKeyValue("language", config.Language)
		ui.PrintKeyValue("max_message_length", fmt.Sprintf("%d", config.MaxMessageLength))
		ui.PrintKeyValue("auto_fetch_tags", fmt.Sprintf("%t", config.AutoFetchTags))
		ui.PrintKeyValue("ai.active_ai", orUnset(config.AI.ActiveAI))
		ui.PrintKeyValue("ai.gemini.model", orUnset(config.AI.Gemini.Model))
		ui.PrintKeyValue("ai.gemini.api_key", mask(config.AI.Gemini.APIKey))
		ui.PrintKeyValue("vcs.github.token", mask(config.VCS.GitHub.Token))
		ui.PrintKeyValue("config file", config.PathFile)
		return nil
	}
}

func (f *ConfigCommandFactory) newSetCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "Set a configuration value by key",
		ArgsUsage: "<key> <value>",
		Action:    setConfigAction(config, t),
	}
}

func setConfigAction(config *cfg.Config, t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		args := cmd.Args()
		if args.Len() != 2 {
			return fmt.Errorf("usage: tagmate config set <key> <value>")
		}

		if err := config.Set(args.Get(0), args.Get(1)); err != nil {
			return err
		}
		if err := cfg.SaveConfig(config); err != nil {
			return err
		}

		ui.PrintSuccess(os.Stdout, t.GetMessage("config_saved", 0, nil))
		return nil
	}
}

func orUnset(value string) string {
	if value == "" {
		return "(unset)"
	}
	return value
}

func mask(secret string) string {
	if secret == "" {
		return "(unset)"
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}
