package ui

import (
	"fmt"
	"os"

	"github.com/thomas-vilte/tagmate/internal/i18n"
	"github.com/thomas-vilte/tagmate/internal/models"
)

// PrintPlan renders a tag plan as an aligned table, one assignment per line.
func PrintPlan(assignments []models.TagAssignment, base string, t *i18n.Translations) {
	fmt.Println()
	PrintInfo(t.GetMessage("plan_header", len(assignments), map[string]interface{}{
		"Count": len(assignments),
		"Base":  base,
	}))
	for _, a := range assignments {
		hash := a.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		target := Success.Sprint(a.Target.String())
		origin := Dim.Sprintf("[%s]", a.Origin)
		fmt.Printf("   %s %s  %s  %s %s\n", TagEmoji, target, Dim.Sprint(hash), a.Message, origin)
	}
	fmt.Println()
}

// PrintApplySummary reports what an apply run did.
func PrintApplySummary(result models.ApplyResult, t *i18n.Translations) {
	if result.DryRun {
		PrintWarning(t.GetMessage("dry_run_notice", 0, nil))
	}

	if len(result.Created) > 0 {
		PrintSuccess(os.Stdout, t.GetMessage("tags_created", len(result.Created), map[string]interface{}{
			"Count": len(result.Created),
		}))
		for _, name := range result.Created {
			PrintKeyValue("created", name)
		}
	}

	if len(result.Pushed) > 0 {
		PrintSuccess(os.Stdout, t.GetMessage("tags_pushed", len(result.Pushed), map[string]interface{}{
			"Count": len(result.Pushed),
		}))
	}

	if len(result.Failed) > 0 {
		PrintWarning(t.GetMessage("tags_failed", len(result.Failed), map[string]interface{}{
			"Count": len(result.Failed),
		}))
		for _, failure := range result.Failed {
			PrintKeyValue(fmt.Sprintf("%s %s", failure.Stage, failure.Assignment.Target.String()), failure.Reason)
		}
	}
}

// PrintReconcileSummary reports what a duplicate-tag cleanup did.
func PrintReconcileSummary(result models.ReconcileResult, t *i18n.Translations) {
	if result.DryRun {
		PrintWarning(t.GetMessage("dry_run_notice", 0, nil))
	}

	if len(result.DeletedLocal) > 0 {
		PrintSuccess(os.Stdout, t.GetMessage("tags_deleted_local", len(result.DeletedLocal), map[string]interface{}{
			"Count": len(result.DeletedLocal),
		}))
		for _, name := range result.DeletedLocal {
			PrintKeyValue("deleted", name)
		}
	}

	if len(result.DeletedRemote) > 0 {
		PrintSuccess(os.Stdout, t.GetMessage("tags_deleted_remote", len(result.DeletedRemote), map[string]interface{}{
			"Count": len(result.DeletedRemote),
		}))
	}

	for _, survivor := range result.Skipped {
		PrintKeyValue("kept", survivor)
	}

	if len(result.Errors) > 0 {
		PrintWarning(t.GetMessage("tags_failed", len(result.Errors), map[string]interface{}{
			"Count": len(result.Errors),
		}))
		for _, e := range result.Errors {
			scope := "local"
			if e.Remote {
				scope = "remote"
			}
			PrintKeyValue(fmt.Sprintf("%s %s", scope, e.Tag), e.Reason)
		}
	}
}
