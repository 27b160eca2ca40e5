package models

// ApplyStage identifies which operation of an apply run failed for a tag.
type ApplyStage string

const (
	StageCreate ApplyStage = "create"
	StagePush   ApplyStage = "push"
)

// ApplyFailure records a single failed assignment without aborting the run.
type ApplyFailure struct {
	Assignment TagAssignment
	Stage      ApplyStage
	Reason     string
}

// ApplyResult reports what an apply run did. In dry-run mode Created holds
// the names a live run would create and Pushed/Failed stay empty.
type ApplyResult struct {
	Created []string
	Pushed  []string
	Failed  []ApplyFailure
	DryRun  bool
}

func (r ApplyResult) HasFailures() bool {
	return len(r.Failed) > 0
}

// ReconcileError records one tag whose deletion failed; the rest of the
// batch proceeds regardless.
type ReconcileError struct {
	Tag    string
	Remote bool
	Reason string
}

// ReconcileResult reports what a duplicate-tag cleanup did.
type ReconcileResult struct {
	DeletedLocal  []string
	DeletedRemote []string
	Skipped       []string
	Errors        []ReconcileError
	DryRun        bool
}

func (r ReconcileResult) HasErrors() bool {
	return len(r.Errors) > 0
}
