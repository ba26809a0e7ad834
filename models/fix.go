package models

// FixKind tags one of the four remediation routines. The executor switches
// on the tag rather than carrying callables inside fix descriptors.
type FixKind string

const (
	FixProfileReadme FixKind = "profile_readme"
	FixCodeQL        FixKind = "codeql"
	FixMetrics       FixKind = "metrics"
	FixPermissions   FixKind = "permissions"
)

// Fix types as they appear in reports and dry-run output.
const (
	FixTypeWorkflowUpdate = "workflow_update"
	FixTypePermissionFix  = "permission_fix"
)

// Fix describes one planned remediation: a routine tag, an optional target
// workflow file, and a human-readable description. Created by the planner,
// consumed once by the executor.
type Fix struct {
	Kind        FixKind `json:"kind"`
	File        string  `json:"file,omitempty"`
	Description string  `json:"description"`
}

// Type returns the coarse fix type tag for the descriptor.
func (f Fix) Type() string {
	if f.Kind == FixPermissions {
		return FixTypePermissionFix
	}
	return FixTypeWorkflowUpdate
}

// FixFailureCause distinguishes why a fix routine failed, so reports and
// tests can assert on cause rather than a bare pass/fail flag.
type FixFailureCause string

const (
	CauseNone        FixFailureCause = ""
	CauseMissingFile FixFailureCause = "missing_file"
	CauseParse       FixFailureCause = "parse_error"
	CauseWrite       FixFailureCause = "write_error"
)

// FixOutcome records the result of applying one fix.
type FixOutcome struct {
	Description string          `json:"description"`
	Success     bool            `json:"success"`
	Cause       FixFailureCause `json:"cause,omitempty"`
}
