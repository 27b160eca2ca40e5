package tag

import (
	"context"
	"fmt"
	"sort"

	"github.com/urfave/cli/v3"

	cfg "github.com/thomas-vilte/tagmate/internal/config"
	"github.com/thomas-vilte/tagmate/internal/i18n"
	"github.com/thomas-vilte/tagmate/internal/models"
	"github.com/thomas-vilte/tagmate/internal/ui"
)

func (f *TagCommandFactory) newListCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List version tags, newest first",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "remote",
				Aliases: []string{"r"},
				Usage:   "List the tags on origin instead of the local ones",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return listTagsAction(f.newGitService(), t, config)(ctx, cmd)
		},
	}
}

func listTagsAction(gitSvc gitService, t *i18n.Translations, config *cfg.Config) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		scope := "local"
		list := gitSvc.ListTags
		if cmd.Bool("remote") {
			scope = "remote"
			list = gitSvc.ListRemoteTags
		}

		tags, err := list(ctx)
		if err != nil {
			return err
		}

		sorted := sortTagsDescending(tags)

		ui.PrintInfo(t.GetMessage("tag_list_header", len(sorted), map[string]interface{}{
			"Count": len(sorted),
			"Scope": scope,
		}))

		var current *models.Version
		for _, entry := range sorted {
			hash := entry.tag.CommitHash
			if len(hash) > 7 {
				hash = hash[:7]
			}
			fmt.Printf("  %s %s  %s\n", ui.TagEmoji, ui.Accent.Sprint(entry.tag.Name), ui.Dim.Sprint(hash))
			if current == nil && entry.version != nil {
				current = entry.version
			}
		}

		if current != nil {
			ui.PrintInfo(t.GetMessage("current_version", 0, map[string]interface{}{
				"Version": current.String(),
			}))
		}
		return nil
	}
}

type sortedTag struct {
	tag     models.TagRef
	version *models.Version
}

// sortTagsDescending orders parseable version tags newest first and
// pushes anything unparseable to the end, keeping its original order.
func sortTagsDescending(tags []models.TagRef) []sortedTag {
	entries := make([]sortedTag, 0, len(tags))
	for _, tag := range tags {
		entry := sortedTag{tag: tag}
		if v, err := models.ParseVersion(tag.Name); err == nil {
			entry.version = &v
		}
		entries = append(entries, entry)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i].version, entries[j].version
		switch {
		case a != nil && b != nil:
			return a.Compare(*b) > 0
		case a != nil:
			return true
		default:
			return false
		}
	})
	return entries
}
