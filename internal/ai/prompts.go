package ai

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/thomas-vilte/tagmate/internal/models"
	"github.com/thomas-vilte/tagmate/internal/regex"
)

// Diff excerpts sent to the model are capped so a large refactor does not
// blow the prompt budget; the summary line carries most of the signal.
const (
	ClassifyDiffLimit = 1500
	DraftDiffLimit    = 2000
)

// PromptData holds the parameters for template rendering
type PromptData struct {
	Summary   string
	Diff      string
	Kind      string
	MaxLength int
	Locale    string
}

// RenderPrompt renders a prompt template with the provided data
func RenderPrompt(name, tmplStr string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("error parsing template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("error executing template %s: %w", name, err)
	}

	return buf.String(), nil
}

const classifyPromptTemplate = `# Task
Act as a release engineer and classify a commit under semantic versioning.

# Commit
Summary: {{.Summary}}

# Diff (may be truncated)
{{.Diff}}

# Rules
- "major": breaking API change, removed or incompatible behavior.
- "minor": new backwards-compatible functionality.
- "patch": bug fix, docs, refactor, tests, tooling, everything else.
- When in doubt, choose "patch".

# STRICT OUTPUT FORMAT
Return EXACTLY two lines, nothing else:
TYPE: [major|minor|patch]
REASON: [one short sentence]`

const draftPromptTemplate = `# Task
Write the annotation message for a git version tag.

# Commit
Summary: {{.Summary}}
Change level: {{.Kind}}

# Diff (may be truncated)
{{.Diff}}

# Rules
1. ONE line only, imperative mood ("Add", "Fix", "Remove").
2. At most {{.MaxLength}} characters.
3. Language: {{.Locale}}.
4. No emojis, no markdown, no trailing period.
5. Describe what the release changes, not the process.

Return only the message text.`

// BuildClassifyPrompt renders the classification prompt for a commit.
func BuildClassifyPrompt(summary, diff string) (string, error) {
	return RenderPrompt("classify", classifyPromptTemplate, PromptData{
		Summary: summary,
		Diff:    TruncateDiff(diff, ClassifyDiffLimit),
	})
}

// BuildDraftPrompt renders the tag-message prompt.
func BuildDraftPrompt(summary, diff string, kind models.BumpKind, maxLength int, locale string) (string, error) {
	if locale == "" {
		locale = "en"
	}
	return RenderPrompt("draft", draftPromptTemplate, PromptData{
		Summary:   summary,
		Diff:      TruncateDiff(diff, DraftDiffLimit),
		Kind:      string(kind),
		MaxLength: maxLength,
		Locale:    locale,
	})
}

// TruncateDiff cuts a diff at limit characters, marking the cut.
func TruncateDiff(diff string, limit int) string {
	if len(diff) <= limit {
		return diff
	}
	return diff[:limit] + "\n... (truncated)"
}

// ParseClassification extracts the bump kind and rationale from the
// model's two-line TYPE/REASON reply. Markdown fences and extra prose
// around the two lines are tolerated.
func ParseClassification(response string) (models.BumpKind, string, error) {
	cleaned := StripMarkdownFences(response)

	var kind models.BumpKind
	var reason string
	for _, line := range strings.Split(cleaned, "\n") {
		if m := regex.ClassifierType.FindStringSubmatch(line); m != nil && kind == models.BumpUnset {
			parsed, err := models.ParseBumpKind(m[1])
			if err == nil {
				kind = parsed
			}
		}
		if m := regex.ClassifierReason.FindStringSubmatch(line); m != nil && reason == "" {
			reason = strings.TrimSpace(m[1])
		}
	}

	if kind == models.BumpUnset {
		return models.BumpUnset, "", fmt.Errorf("no TYPE line in classifier output")
	}
	return kind, reason, nil
}

// CleanDraft normalizes a drafted tag message to a single line and
// enforces the length cap.
func CleanDraft(response string, maxLength int) string {
	cleaned := strings.TrimSpace(StripMarkdownFences(response))
	if i := strings.IndexByte(cleaned, '\n'); i >= 0 {
		cleaned = strings.TrimSpace(cleaned[:i])
	}
	cleaned = strings.Trim(cleaned, `"`)
	if maxLength > 0 && len(cleaned) > maxLength {
		cleaned = cleaned[:maxLength]
	}
	return cleaned
}

// StripMarkdownFences unwraps a response the model wrapped in ``` blocks.
func StripMarkdownFences(s string) string {
	if m := regex.MarkdownFence.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return s
}
