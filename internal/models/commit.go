package models

// Commit is a commit read from the repository log. Hash, Summary, Author and
// Date come from git and are never rewritten; BumpKind, CustomMessage and
// Processed are planning state layered on top.
type Commit struct {
	Hash    string
	Summary string
	Author  string
	Date    string

	BumpKind      BumpKind
	CustomMessage string
	Processed     bool
}

func (c Commit) ShortHash() string {
	if len(c.Hash) > 7 {
		return c.Hash[:7]
	}
	return c.Hash
}

// AssignmentOrigin records where a tag assignment's bump kind came from.
type AssignmentOrigin string

const (
	OriginManual  AssignmentOrigin = "manual"
	OriginAI      AssignmentOrigin = "ai"
	OriginDefault AssignmentOrigin = "default"
)

// TagAssignment binds one commit to the version tag that should point at it.
type TagAssignment struct {
	CommitHash string
	Target     Version
	Message    string
	Origin     AssignmentOrigin
}

// TagRef is a tag name resolved to the commit it points at. For annotated
// tags the hash is the peeled target commit, not the tag object.
type TagRef struct {
	Name       string
	CommitHash string
}

// TagGroup collects the tags that point at a single commit, in repository
// listing order. A group only matters for reconciliation when at least two
// of its members parse as versions.
type TagGroup struct {
	CommitHash string
	Tags       []TagRef
}

// TagDeletion is one tag scheduled for removal during reconciliation,
// keeping the survivor it lost to for reporting.
type TagDeletion struct {
	Tag      TagRef
	Survivor string
}
