package services

import (
	"context"
	"fmt"

	"github.com/thomas-vilte/tagmate/internal/ai"
	domainErrors "github.com/thomas-vilte/tagmate/internal/errors"
	"github.com/thomas-vilte/tagmate/internal/logger"
	"github.com/thomas-vilte/tagmate/internal/models"
)

// TagPlan is an ordered set of tag assignments validated as a whole against
// a snapshot. A plan that passes validation is sealed: it can no longer be
// mutated, and it is the only kind of plan the applier accepts. Validation
// is all-or-nothing; a single conflict rejects the entire plan before
// anything touches the repository.
type TagPlan struct {
	base        models.Version
	hasBase     bool
	assignments []models.TagAssignment
	sealed      bool
}

func NewTagPlan(base models.Version, hasBase bool) *TagPlan {
	return &TagPlan{base: base, hasBase: hasBase}
}

func (p *TagPlan) Add(assignment models.TagAssignment) error {
	if p.sealed {
		return domainErrors.ErrPlanSealed
	}
	p.assignments = append(p.assignments, assignment)
	return nil
}

func (p *TagPlan) Assignments() []models.TagAssignment {
	out := make([]models.TagAssignment, len(p.assignments))
	copy(out, p.assignments)
	return out
}

func (p *TagPlan) Base() (models.Version, bool) {
	return p.base, p.hasBase
}

func (p *TagPlan) Sealed() bool {
	return p.sealed
}

// Validate checks the plan against a snapshot and seals it on success.
// Conflicts: duplicate targets within the plan, a target at or below the
// base version, a target that already exists as a local tag, or a commit
// outside the snapshot's untagged set. A plan validated against one
// snapshot must be re-validated against a newer one.
func (p *TagPlan) Validate(snapshot *Snapshot) error {
	if len(p.assignments) == 0 {
		return domainErrors.ErrEmptyPlan
	}

	seen := make(map[string]bool, len(p.assignments))
	for _, a := range p.assignments {
		target := a.Target.String()

		if seen[target] {
			return domainErrors.NewPlanConflictError(target, a.CommitHash,
				"target version assigned more than once")
		}
		seen[target] = true

		if p.hasBase && a.Target.Compare(p.base) <= 0 {
			return domainErrors.NewPlanConflictError(target, a.CommitHash,
				fmt.Sprintf("target must be greater than base %s", p.base))
		}

		if snapshot.HasLocalTag(target) {
			return domainErrors.NewPlanConflictError(target, a.CommitHash,
				"tag already exists in the repository")
		}

		if !snapshot.IsUntagged(a.CommitHash) {
			return domainErrors.NewPlanConflictError(target, a.CommitHash,
				"commit is not in the untagged set")
		}
	}

	p.sealed = true
	return nil
}

// planGitService is what plan building needs from git besides the snapshot.
type planGitService interface {
	GetCommitDiff(ctx context.Context, hash string) (string, error)
}

// PlanBuilder assembles tag plans from a snapshot, resolving each commit's
// bump kind and drafting tag messages.
type PlanBuilder struct {
	git        planGitService
	resolver   *VersionResolver
	classifier ai.Classifier
	maxLength  int
	locale     string

	// fallback degrades classification failures to a patch bump with the
	// commit's own summary as message, instead of failing the build.
	fallback bool
}

type PlanBuilderOption func(*PlanBuilder)

func WithClassifier(classifier ai.Classifier) PlanBuilderOption {
	return func(b *PlanBuilder) {
		b.classifier = classifier
	}
}

func WithMessageLimits(maxLength int, locale string) PlanBuilderOption {
	return func(b *PlanBuilder) {
		b.maxLength = maxLength
		b.locale = locale
	}
}

func WithPatchFallback() PlanBuilderOption {
	return func(b *PlanBuilder) {
		b.fallback = true
	}
}

func NewPlanBuilder(git planGitService, opts ...PlanBuilderOption) *PlanBuilder {
	b := &PlanBuilder{
		git:       git,
		resolver:  NewVersionResolver(),
		maxLength: 72,
		locale:    "en",
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// BuildCombined produces a single-assignment plan: all untagged commits
// fold into one version at the newest commit, bumped by the
// highest-severity kind among them.
func (b *PlanBuilder) BuildCombined(ctx context.Context, snapshot *Snapshot) (*TagPlan, error) {
	resolved, err := b.resolveAll(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	kinds := make([]models.BumpKind, len(resolved))
	for i, r := range resolved {
		kinds[i] = r.Kind
	}

	target, err := b.resolver.NextCombined(snapshot.Base, snapshot.HasBase, kinds)
	if err != nil {
		return nil, err
	}

	head := snapshot.UntaggedCommits[len(snapshot.UntaggedCommits)-1]
	message := b.draftMessage(ctx, head, resolved[len(resolved)-1].Kind)

	plan := NewTagPlan(snapshot.Base, snapshot.HasBase)
	if err := plan.Add(models.TagAssignment{
		CommitHash: head.Hash,
		Target:     target,
		Message:    message,
		Origin:     highestOrigin(resolved),
	}); err != nil {
		return nil, err
	}
	return plan, nil
}

// BuildSequence produces one assignment per untagged commit, versions
// ascending in history order.
func (b *PlanBuilder) BuildSequence(ctx context.Context, snapshot *Snapshot) (*TagPlan, error) {
	resolved, err := b.resolveAll(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	kinds := make([]models.BumpKind, len(resolved))
	for i, r := range resolved {
		kinds[i] = r.Kind
	}

	versions, err := b.resolver.NextSequence(snapshot.Base, snapshot.HasBase, kinds)
	if err != nil {
		return nil, err
	}

	plan := NewTagPlan(snapshot.Base, snapshot.HasBase)
	for i, commit := range snapshot.UntaggedCommits {
		if err := plan.Add(models.TagAssignment{
			CommitHash: commit.Hash,
			Target:     versions[i],
			Message:    b.draftMessage(ctx, commit, resolved[i].Kind),
			Origin:     resolved[i].Origin,
		}); err != nil {
			return nil, err
		}
	}
	return plan, nil
}

func (b *PlanBuilder) resolveAll(ctx context.Context, snapshot *Snapshot) ([]ResolvedKind, error) {
	if len(snapshot.UntaggedCommits) == 0 {
		return nil, domainErrors.ErrEmptyPlan
	}

	resolved := make([]ResolvedKind, 0, len(snapshot.UntaggedCommits))
	for _, commit := range snapshot.UntaggedCommits {
		var diff string
		if b.classifier != nil && !commit.BumpKind.IsActionable() {
			diff = b.commitDiff(ctx, commit)
		}
		r, err := b.resolver.ResolveKind(ctx, commit, diff, b.classifier, b.fallback)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, r)
	}
	return resolved, nil
}

func (b *PlanBuilder) commitDiff(ctx context.Context, commit models.Commit) string {
	diff, err := b.git.GetCommitDiff(ctx, commit.Hash)
	if err != nil {
		logger.Debug(ctx, "commit diff unavailable", "commit", commit.ShortHash(), "error", err)
		return ""
	}
	return diff
}

// draftMessage picks the tag message: an explicit custom message wins, the
// classifier drafts one when available, and the commit summary is the
// fallback. Overlong messages are truncated, never rejected.
func (b *PlanBuilder) draftMessage(ctx context.Context, commit models.Commit, kind models.BumpKind) string {
	if commit.CustomMessage != "" {
		return truncate(commit.CustomMessage, b.maxLength)
	}

	if b.classifier != nil {
		diff := b.commitDiff(ctx, commit)
		draft, err := b.classifier.DraftTagMessage(ctx, commit.Summary, diff, kind, b.maxLength, b.locale)
		if err == nil && draft != "" {
			return truncate(draft, b.maxLength)
		}
		logger.Warn(ctx, "tag message draft failed, using commit summary",
			"commit", commit.ShortHash(), "error", err)
	}

	return truncate(commit.Summary, b.maxLength)
}

func truncate(s string, max int) string {
	if max > 0 && len(s) > max {
		return s[:max]
	}
	return s
}

// highestOrigin reports the strongest provenance among the resolved kinds:
// any manual decision marks the combined assignment manual, then ai, then
// default.
func highestOrigin(resolved []ResolvedKind) models.AssignmentOrigin {
	origin := models.OriginDefault
	for _, r := range resolved {
		switch r.Origin {
		case models.OriginManual:
			return models.OriginManual
		case models.OriginAI:
			origin = models.OriginAI
		}
	}
	return origin
}
