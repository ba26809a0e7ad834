package models

// Conclusion values reported by the Actions API for runs and jobs.
const (
	ConclusionSuccess = "success"
	ConclusionFailure = "failure"
)

// WorkflowRun is one workflow run fetched from the Actions API. Runs are
// read-only: fetched per resolution cycle and never persisted locally.
type WorkflowRun struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Conclusion string `json:"conclusion"`
}

// Job is one execution unit within a workflow run.
type Job struct {
	ID         int64  `json:"id"`
	RunID      int64  `json:"run_id"`
	Name       string `json:"name"`
	Conclusion string `json:"conclusion"`
}

// Failed reports whether the job concluded with a failure.
func (j Job) Failed() bool {
	return j.Conclusion == ConclusionFailure
}
