package recorder

import "AuditGame/internal/model"

// RunEvent holds everything produced by one simulation run.
type RunEvent struct {
	RunID   string
	Seed    int64
	Params  model.Params
	Result  *model.Result
	Summary *model.BucketSummary
}

// Recorder persists run exports for offline analysis.
type Recorder interface {
	RecordRun(evt *RunEvent) error
	Close() error
}
