package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/thomas-vilte/tagmate/internal/ai"
	"github.com/thomas-vilte/tagmate/internal/errors"
	"github.com/thomas-vilte/tagmate/internal/logger"
	"github.com/thomas-vilte/tagmate/internal/models"
)

const defaultModel = "gemini-1.5-flash"

// Classifier implements ai.Classifier on the Gemini API.
type Classifier struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClassifier(ctx context.Context, apiKey, modelName string) (*Classifier, error) {
	if apiKey == "" {
		return nil, errors.ErrAPIKeyMissing
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if modelName == "" {
		modelName = defaultModel
	}
	return &Classifier{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

func (c *Classifier) Close() error {
	return c.client.Close()
}

// ClassifyCommit asks the model for the semver impact of one commit.
// API failures map to ErrClassificationUnavailable so callers can fall
// back to a default kind instead of aborting.
func (c *Classifier) ClassifyCommit(ctx context.Context, summary, diff string) (models.BumpKind, string, error) {
	prompt, err := ai.BuildClassifyPrompt(summary, diff)
	if err != nil {
		return models.BumpUnset, "", err
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		logger.Warn(ctx, "gemini classification call failed", "error", err)
		return models.BumpUnset, "", errors.ErrClassificationUnavailable.WithError(err)
	}

	kind, reason, err := ai.ParseClassification(formatResponse(resp))
	if err != nil {
		return models.BumpUnset, "", errors.ErrInvalidAIOutput.WithError(err)
	}
	return kind, reason, nil
}

// DraftTagMessage asks the model for a one-line tag annotation.
func (c *Classifier) DraftTagMessage(ctx context.Context, summary, diff string, kind models.BumpKind, maxLength int, locale string) (string, error) {
	prompt, err := ai.BuildDraftPrompt(summary, diff, kind, maxLength, locale)
	if err != nil {
		return "", err
	}

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		logger.Warn(ctx, "gemini draft call failed", "error", err)
		return "", errors.ErrClassificationUnavailable.WithError(err)
	}

	draft := ai.CleanDraft(formatResponse(resp), maxLength)
	if draft == "" {
		return "", errors.ErrInvalidAIOutput
	}
	return draft, nil
}

func formatResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || resp.Candidates == nil {
		return ""
	}

	var content strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content != nil {
			for _, part := range cand.Content.Parts {
				content.WriteString(fmt.Sprintf("%v", part))
			}
		}
	}
	return content.String()
}
