package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_IsMatchesAfterCopy(t *testing.T) {
	withContext := ErrMalformedTag.WithContext("tag", "banana")
	assert.ErrorIs(t, withContext, ErrMalformedTag)

	withCause := ErrCreateTag.WithError(errors.New("exit status 128"))
	assert.ErrorIs(t, withCause, ErrCreateTag)

	wrapped := fmt.Errorf("building plan: %w", ErrEmptyPlan.WithSuggestion("add commits"))
	assert.ErrorIs(t, wrapped, ErrEmptyPlan)

	assert.NotErrorIs(t, ErrCreateTag, ErrDeleteTag)
}

func TestAppError_ErrorIncludesStderr(t *testing.T) {
	err := ErrPushTag.
		WithError(errors.New("exit status 1")).
		WithContext("stderr", "remote: permission denied")

	assert.Contains(t, err.Error(), "GIT")
	assert.Contains(t, err.Error(), "exit status 1")
	assert.Contains(t, err.Error(), "remote: permission denied")
}

func TestAppError_CopiesDoNotMutateSentinel(t *testing.T) {
	_ = ErrListTags.WithContext("cwd", "/tmp")
	assert.Nil(t, ErrListTags.Context["cwd"])

	_ = ErrListTags.WithSuggestion("different hint")
	assert.NotEqual(t, "different hint", ErrListTags.Suggestion)
}

func TestPlanConflictError_Message(t *testing.T) {
	err := NewPlanConflictError("v1.2.3", "abcdef0123456789", "tag already exists")
	assert.Contains(t, err.Error(), "v1.2.3")
	assert.Contains(t, err.Error(), "abcdef0")
	assert.NotContains(t, err.Error(), "abcdef01234")
	assert.Contains(t, err.Error(), "tag already exists")
}
