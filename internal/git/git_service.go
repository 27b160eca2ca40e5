package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/thomas-vilte/tagmate/internal/errors"
	"github.com/thomas-vilte/tagmate/internal/models"
	"github.com/thomas-vilte/tagmate/internal/regex"
)

// GitService shells out to the git binary. Every method re-reads repository
// state; nothing is cached between calls.
type GitService struct{}

func NewGitService() *GitService {
	return &GitService{}
}

// run executes a git command capturing stderr so failures carry the
// actual git diagnostic instead of just "exit status 1".
func (s *GitService) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return "", fmt.Errorf("%v: %s", err, msg)
		}
		return "", err
	}
	return string(output), nil
}

// ListTags returns local tags with the commit each one points at, in
// git's listing order. Annotated tags are peeled to their target commit.
func (s *GitService) ListTags(ctx context.Context) ([]models.TagRef, error) {
	output, err := s.run(ctx, "for-each-ref", "refs/tags",
		"--format=%(refname:short) %(objectname) %(*objectname)")
	if err != nil {
		return nil, errors.ErrListTags.WithError(err)
	}

	var tags []models.TagRef
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		ref := models.TagRef{Name: fields[0], CommitHash: fields[1]}
		// annotated tags carry the peeled commit in the third field
		if len(fields) == 3 && fields[2] != "" {
			ref.CommitHash = fields[2]
		}
		tags = append(tags, ref)
	}
	return tags, nil
}

// ListRemoteTags lists tags on origin via ls-remote. Peeled entries
// (ending in ^{}) resolve annotated tags to their commit; they replace
// the tag-object hash of the entry they follow.
func (s *GitService) ListRemoteTags(ctx context.Context) ([]models.TagRef, error) {
	output, err := s.run(ctx, "ls-remote", "--tags", "origin")
	if err != nil {
		return nil, errors.ErrListRemoteTags.WithError(err)
	}

	byName := make(map[string]int)
	var tags []models.TagRef
	for _, line := range strings.Split(output, "\n") {
		m := regex.RemoteTag.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		hash, name := m[1], m[2]
		if strings.HasSuffix(name, "^{}") {
			name = strings.TrimSuffix(name, "^{}")
			if i, ok := byName[name]; ok {
				tags[i].CommitHash = hash
			}
			continue
		}
		byName[name] = len(tags)
		tags = append(tags, models.TagRef{Name: name, CommitHash: hash})
	}
	return tags, nil
}

// GetLastTag returns the most recent tag reachable from HEAD, or ""
// when the repository has no tags.
func (s *GitService) GetLastTag(ctx context.Context) (string, error) {
	output, err := s.run(ctx, "describe", "--tags", "--abbrev=0")
	if err != nil {
		// no tags found
		return "", nil
	}
	return strings.TrimSpace(output), nil
}

// GetCommitsSinceTag lists commits after the given tag, oldest first, so a
// sequential plan assigns ascending versions in history order. An empty tag
// means the whole history.
func (s *GitService) GetCommitsSinceTag(ctx context.Context, tag string) ([]models.Commit, error) {
	args := []string{"log", "--pretty=format:%H|%s|%an|%as", "--no-merges", "--reverse"}
	if tag != "" {
		args = append(args, tag+"..HEAD")
	}

	output, err := s.run(ctx, args...)
	if err != nil {
		return nil, errors.ErrGetCommits.WithError(err)
	}

	var commits []models.Commit
	for _, line := range strings.Split(output, "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 4)
		if len(parts) < 2 {
			continue
		}
		commit := models.Commit{Hash: parts[0], Summary: parts[1]}
		if len(parts) > 2 {
			commit.Author = parts[2]
		}
		if len(parts) > 3 {
			commit.Date = parts[3]
		}
		commits = append(commits, commit)
	}
	return commits, nil
}

// GetCommitDiff returns the diff a single commit introduced. Root commits
// have no parent, so fall back to show.
func (s *GitService) GetCommitDiff(ctx context.Context, hash string) (string, error) {
	output, err := s.run(ctx, "diff", hash+"^", hash)
	if err != nil {
		output, err = s.run(ctx, "show", "--pretty=format:", hash)
		if err != nil {
			return "", errors.ErrGetDiff.WithContext("commit", hash).WithError(err)
		}
	}
	return output, nil
}

// CreateTag creates an annotated tag pointing at the given commit.
// An empty commit tags HEAD.
func (s *GitService) CreateTag(ctx context.Context, name, message, commit string) error {
	args := []string{"tag", "-a", name, "-m", message}
	if commit != "" {
		args = append(args, commit)
	}
	if _, err := s.run(ctx, args...); err != nil {
		return errors.ErrCreateTag.WithContext("tag", name).WithError(err)
	}
	return nil
}

func (s *GitService) DeleteTag(ctx context.Context, name string) error {
	if _, err := s.run(ctx, "tag", "-d", name); err != nil {
		return errors.ErrDeleteTag.WithContext("tag", name).WithError(err)
	}
	return nil
}

func (s *GitService) PushTag(ctx context.Context, name string) error {
	if _, err := s.run(ctx, "push", "origin", name); err != nil {
		return errors.ErrPushTag.WithContext("tag", name).WithError(err)
	}
	return nil
}

// DeleteRemoteTag deletes a tag on origin. The full ref is used so a
// branch with the same name can never be deleted by accident.
func (s *GitService) DeleteRemoteTag(ctx context.Context, name string) error {
	if _, err := s.run(ctx, "push", "origin", "--delete", "refs/tags/"+name); err != nil {
		return errors.ErrDeleteRemoteTag.WithContext("tag", name).WithError(err)
	}
	return nil
}

// PushAllTags pushes every local tag to origin.
func (s *GitService) PushAllTags(ctx context.Context) error {
	if _, err := s.run(ctx, "push", "origin", "--tags"); err != nil {
		return errors.ErrPushTag.WithError(err)
	}
	return nil
}

// FetchTags force-fetches tags so local state matches the remote,
// including tags that were moved or recreated.
func (s *GitService) FetchTags(ctx context.Context) error {
	if _, err := s.run(ctx, "fetch", "--tags", "--force"); err != nil {
		return errors.ErrFetchTags.WithError(err)
	}
	return nil
}

// GetTagMessage returns the annotation message of a tag, or the subject
// of the tagged commit for lightweight tags.
func (s *GitService) GetTagMessage(ctx context.Context, name string) (string, error) {
	output, err := s.run(ctx, "tag", "-l", "--format=%(contents:subject)", name)
	if err != nil {
		return "", errors.ErrListTags.WithContext("tag", name).WithError(err)
	}
	return strings.TrimSpace(output), nil
}

func (s *GitService) GetCurrentBranch(ctx context.Context) (string, error) {
	output, err := s.run(ctx, "branch", "--show-current")
	if err != nil {
		return "", errors.ErrGetBranch.WithError(err)
	}

	branchName := strings.TrimSpace(output)
	if branchName == "" {
		return "", errors.ErrNoBranch
	}
	return branchName, nil
}

// GetRepoInfo returns owner, repository name and provider of the
// origin remote.
func (s *GitService) GetRepoInfo(ctx context.Context) (string, string, string, error) {
	output, err := s.run(ctx, "remote", "get-url", "origin")
	if err != nil {
		return "", "", "", errors.ErrGetRepoURL.WithError(err)
	}
	return parseRepoURL(strings.TrimSpace(output))
}

func parseRepoURL(url string) (string, string, string, error) {
	var matches []string
	if regex.SSHRepo.MatchString(url) {
		matches = regex.SSHRepo.FindStringSubmatch(url)
	} else if regex.HTTPSRepo.MatchString(url) {
		matches = regex.HTTPSRepo.FindStringSubmatch(url)
	}

	if len(matches) >= 4 {
		provider := detectProvider(matches[1])
		repoName := strings.TrimSuffix(matches[3], ".git")
		return matches[2], repoName, provider, nil
	}

	return "", "", "", errors.ErrExtractRepoInfo.WithContext("url", url)
}

func detectProvider(host string) string {
	if strings.Contains(host, "github") {
		return "github"
	}
	if strings.Contains(host, "gitlab") {
		return "gitlab"
	}
	return "unknown"
}
