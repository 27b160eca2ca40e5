package errors

import "fmt"

// ErrorType defines the category of the error
type ErrorType string

const (
	TypeConfiguration ErrorType = "CONFIGURATION"
	TypeAI            ErrorType = "AI"
	TypeVCS           ErrorType = "VCS"
	TypeGit           ErrorType = "GIT"
	TypeTag           ErrorType = "TAG"
	TypePlan          ErrorType = "PLAN"
	TypeInternal      ErrorType = "INTERNAL"
)

// AppError represents a domain-level error with a type and an underlying error
type AppError struct {
	Type       ErrorType
	Message    string
	Context    map[string]interface{}
	Err        error
	Suggestion string
}

func (e *AppError) Error() string {
	var msg string
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %s (%v)", e.Type, e.Message, e.Err)
	} else {
		msg = fmt.Sprintf("%s: %s", e.Type, e.Message)
	}

	if e.Context != nil {
		if stderr, ok := e.Context["stderr"].(string); ok && stderr != "" {
			msg += fmt.Sprintf(" - %s", stderr)
		}
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches errors by type and message, so a sentinel still matches after
// WithError, WithContext or WithSuggestion produced a copy of it.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// WithError creates a new AppError with an underlying error
func (e *AppError) WithError(err error) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        err,
		Suggestion: e.Suggestion,
	}
}

// WithContext creates a new AppError with additional context
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	ctx := make(map[string]interface{})
	for k, v := range e.Context {
		ctx[k] = v
	}
	ctx[key] = value
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    ctx,
		Err:        e.Err,
		Suggestion: e.Suggestion,
	}
}

func (e *AppError) WithSuggestion(suggestion string) *AppError {
	return &AppError{
		Type:       e.Type,
		Message:    e.Message,
		Context:    e.Context,
		Err:        e.Err,
		Suggestion: suggestion,
	}
}

// NewAppError creates a new AppError
func NewAppError(t ErrorType, msg string, err error) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
	}
}

// PlanConflictError rejects a whole tag plan during validation. Nothing is
// applied when validation fails; the fields identify the offending assignment.
type PlanConflictError struct {
	Target     string
	CommitHash string
	Reason     string
}

func (e *PlanConflictError) Error() string {
	if e.CommitHash != "" {
		return fmt.Sprintf("PLAN: conflict on %s (commit %s): %s", e.Target, shortHash(e.CommitHash), e.Reason)
	}
	return fmt.Sprintf("PLAN: conflict on %s: %s", e.Target, e.Reason)
}

// NewPlanConflictError creates a new PlanConflictError
func NewPlanConflictError(target, commitHash, reason string) *PlanConflictError {
	return &PlanConflictError{
		Target:     target,
		CommitHash: commitHash,
		Reason:     reason,
	}
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

// Tag and version errors
var (
	ErrMalformedTag = NewAppError(TypeTag, "Tag does not match semver format (vX.Y.Z)", nil).
			WithSuggestion("Use semantic versioning format: v1.0.0, v2.1.3, etc.")

	ErrNoTagsFound = NewAppError(TypeTag, "No semver tags found in repository", nil).
			WithSuggestion("The first tag of a project defaults to v0.1.0; create it with: tagmate tag apply")

	ErrUnclassifiedCommit = NewAppError(TypePlan, "Commit has no bump kind and no classifier is configured", nil).
				WithSuggestion("Pass --bump <major|minor|patch> or configure an AI provider: tagmate config init")

	ErrPlanNotValidated = NewAppError(TypePlan, "Tag plan was not validated before apply", nil)

	ErrPlanSealed = NewAppError(TypePlan, "Tag plan is sealed and cannot be modified", nil).
			WithSuggestion("Build a new plan from a fresh repository snapshot")

	ErrEmptyPlan = NewAppError(TypePlan, "Tag plan contains no assignments", nil).
			WithSuggestion("There may be no untagged commits; check with: tagmate tag list")
)

// AI errors
var (
	ErrClassificationUnavailable = NewAppError(TypeAI, "AI classification is unavailable", nil).
					WithSuggestion("Check your network and API key, or classify manually with --bump")

	ErrAPIKeyMissing = NewAppError(TypeConfiguration, "AI API key is missing", nil).
				WithSuggestion("Run: tagmate config init")

	ErrInvalidAIOutput = NewAppError(TypeAI, "invalid AI output format", nil).
				WithSuggestion("This is likely a temporary issue, please try again")
)

// Git errors
var (
	ErrNotInGitRepo = NewAppError(TypeGit, "Not in a git repository", nil).
			WithSuggestion("Initialize a git repository: git init")

	ErrListTags = NewAppError(TypeGit, "Failed to list local tags", nil).
			WithSuggestion("Make sure you are in a git repository: git status")

	ErrListRemoteTags = NewAppError(TypeGit, "Failed to list remote tags", nil).
				WithSuggestion("Check your remote connection: git remote -v")

	ErrGetCommits = NewAppError(TypeGit, "Failed to get commits", nil).
			WithSuggestion("Make sure you have commits in your repository: git log")

	ErrGetDiff = NewAppError(TypeGit, "Failed to get commit diff", nil)

	ErrCreateTag = NewAppError(TypeGit, "Failed to create tag", nil).
			WithSuggestion("Make sure the tag doesn't already exist: git tag -l")

	ErrDeleteTag = NewAppError(TypeGit, "Failed to delete local tag", nil).
			WithSuggestion("List available tags: git tag -l")

	ErrDeleteRemoteTag = NewAppError(TypeGit, "Failed to delete remote tag", nil).
				WithSuggestion("The tag may be protected or already gone; check remote access")

	ErrPushTag = NewAppError(TypeGit, "Failed to push tag", nil).
			WithSuggestion("Check your remote connection: git remote -v")

	ErrFetchTags = NewAppError(TypeGit, "Failed to fetch tags from remote", nil).
			WithSuggestion("Check your network connection and remote access")

	ErrGetBranch = NewAppError(TypeGit, "Failed to get current branch", nil).
			WithSuggestion("Make sure you are in a git repository: git status")

	ErrNoBranch = NewAppError(TypeGit, "No branch detected", nil).
			WithSuggestion("Create a branch first: git checkout -b <branch-name>")

	ErrGetRepoURL = NewAppError(TypeGit, "Failed to get repository URL", nil).
			WithSuggestion("Add a remote: git remote add origin <url>")

	ErrExtractRepoInfo = NewAppError(TypeGit, "Failed to extract repository info", nil)
)

// Configuration errors
var (
	ErrConfigMissing = NewAppError(TypeConfiguration, "Configuration is missing", nil).
				WithSuggestion("Initialize configuration: tagmate config init")

	ErrTokenMissing = NewAppError(TypeConfiguration, "VCS token is missing", nil).
			WithSuggestion("Configure a GitHub token: tagmate config set vcs.github.token <token>")
)

// VCS errors
var (
	ErrVCSNotSupported = NewAppError(TypeVCS, "VCS provider not supported", nil).
				WithSuggestion("Currently only GitHub is supported")

	ErrCreateRelease = NewAppError(TypeVCS, "failed to create release", nil).
				WithSuggestion("Check your GitHub token has 'repo' permissions")

	ErrGetRelease = NewAppError(TypeVCS, "failed to get release", nil).
			WithSuggestion("List available releases: gh release list")
)
