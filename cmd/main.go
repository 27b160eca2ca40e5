package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	configcmd "github.com/thomas-vilte/tagmate/internal/cli/command/config"
	"github.com/thomas-vilte/tagmate/internal/cli/command/release"
	"github.com/thomas-vilte/tagmate/internal/cli/command/tag"
	"github.com/thomas-vilte/tagmate/internal/cli/registry"
	cfg "github.com/thomas-vilte/tagmate/internal/config"
	"github.com/thomas-vilte/tagmate/internal/i18n"
	"github.com/thomas-vilte/tagmate/internal/logger"
	"github.com/thomas-vilte/tagmate/internal/ui"
	"github.com/thomas-vilte/tagmate/internal/version"
)

func main() {
	app, translations, err := initializeApp()
	if err != nil {
		log.Fatalf("failed to start the cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		ui.HandleAppError(err, translations)
		os.Exit(1)
	}
}

func initializeApp() (*cli.Command, *i18n.Translations, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("could not resolve the user home directory: %w", err)
	}

	cfgApp, err := cfg.LoadConfig(homeDir)
	if err != nil {
		return nil, nil, err
	}

	translations, err := i18n.NewTranslations(cfgApp.Language, "")
	if err != nil {
		return nil, nil, fmt.Errorf("could not load translations: %w", err)
	}

	registerCommand := registry.NewRegistry(cfgApp, translations)

	if err := registerCommand.Register("tag", tag.NewTagCommandFactory()); err != nil {
		return nil, nil, err
	}
	if err := registerCommand.Register("release", release.NewReleaseCommandFactory()); err != nil {
		return nil, nil, err
	}
	if err := registerCommand.Register("config", configcmd.NewConfigCommandFactory()); err != nil {
		return nil, nil, err
	}

	app := &cli.Command{
		Name:        "tagmate",
		Usage:       "Semantic version tags without the guesswork",
		Version:     version.FullVersion(),
		Description: "Plans the next semantic version from your commits, creates and pushes the tags, cleans up duplicates and keeps releases in sync.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable verbose logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger.Initialize(cmd.Bool("debug"), cmd.Bool("verbose"))
			return ctx, nil
		},
		Commands:              registerCommand.CreateCommands(),
		EnableShellCompletion: true,
	}

	return app, translations, nil
}
