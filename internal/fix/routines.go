package fix

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/CosmoTheDev/actionfix/internal/langdetect"
	"github.com/CosmoTheDev/actionfix/internal/workflow"
	"github.com/CosmoTheDev/actionfix/models"
)

// Known-good pinned action versions.
const (
	readmeAction         = "jamesgeorge007/github-activity-readme"
	readmeActionVersion  = "v1.6.4"
	metricsAction        = "lowlighter/metrics"
	metricsActionVersion = "v3.34"
)

// routineResult is the outcome of one fix routine: free-text notes for the
// report plus the failure cause, CauseNone on success.
type routineResult struct {
	notes []string
	cause models.FixFailureCause
	err   error
}

func (r routineResult) ok() bool { return r.cause == models.CauseNone }

// loadFailure classifies a workflow.Load error into a missing-file or
// parse-error cause.
func loadFailure(path string, err error) routineResult {
	cause := models.CauseParse
	if os.IsNotExist(err) {
		cause = models.CauseMissingFile
	}
	slog.Error("Failed to load workflow", "file", path, "error", err)
	return routineResult{cause: cause, err: err}
}

func saveFailure(path string, err error) routineResult {
	slog.Error("Failed to write workflow", "file", path, "error", err)
	return routineResult{cause: models.CauseWrite, err: err}
}

// fixProfileReadme pins the activity-readme action to a stable version and
// grants contents-write to any job that uses it without a permissions block.
// Applying it twice is a no-op on the pinned reference.
func (e *Executor) fixProfileReadme() routineResult {
	path := filepath.Join(e.dir, ProfileReadmePath)
	doc, err := workflow.Load(path)
	if err != nil {
		return loadFailure(path, err)
	}

	for _, job := range doc.Jobs {
		usesAction := false
		for _, step := range job.Steps {
			if strings.Contains(step.Uses, readmeAction) {
				step.Uses = readmeAction + "@" + readmeActionVersion
				usesAction = true
			}
		}
		if usesAction && job.Permissions == nil {
			job.Permissions = map[string]string{"contents": "write"}
		}
	}

	if err := doc.Save(path); err != nil {
		return saveFailure(path, err)
	}
	return routineResult{notes: []string{"Updated profile README workflow to stable version"}}
}

// fixCodeQL aligns the language matrix with the languages actually present
// in the checkout. When nothing supported is found the workflow is reduced
// to manual dispatch instead of failing on every push.
func (e *Executor) fixCodeQL() routineResult {
	path := filepath.Join(e.dir, CodeQLPath)
	doc, err := workflow.Load(path)
	if err != nil {
		return loadFailure(path, err)
	}

	var note string
	langs := langdetect.Detect(e.dir)
	if len(langs) == 0 {
		doc.DisableTriggers()
		note = "Disabled CodeQL workflow - no supported languages detected"
	} else {
		for _, job := range doc.Jobs {
			if job.Strategy != nil && job.Strategy.Matrix != nil {
				job.Strategy.Matrix["language"] = langs
			}
		}
		note = fmt.Sprintf("Updated CodeQL languages to: %s", strings.Join(langs, ", "))
	}

	if err := doc.Save(path); err != nil {
		return saveFailure(path, err)
	}
	return routineResult{notes: []string{note}}
}

// fixMetrics grants the metrics workflow the permissions it needs, pins the
// metrics action, and marks its steps as non-fatal on error.
func (e *Executor) fixMetrics() routineResult {
	path := filepath.Join(e.dir, MetricsPath)
	doc, err := workflow.Load(path)
	if err != nil {
		return loadFailure(path, err)
	}

	for _, job := range doc.Jobs {
		if job.Permissions == nil {
			job.Permissions = map[string]string{
				"contents": "write",
				"actions":  "read",
			}
		}
		for _, step := range job.Steps {
			if strings.Contains(step.Uses, metricsAction) {
				step.Uses = metricsAction + "@" + metricsActionVersion
				step.ContinueOnError = true
			}
		}
	}

	if err := doc.Save(path); err != nil {
		return saveFailure(path, err)
	}
	return routineResult{notes: []string{"Updated metrics workflow with proper permissions and error handling"}}
}

// fixPermissions injects a contents-write/actions-read permissions block
// into every job lacking one, across the two workflows that commit back to
// the repository. Files that do not exist are skipped, not errors.
func (e *Executor) fixPermissions() routineResult {
	var notes []string

	for _, rel := range []string{ProfileReadmePath, MetricsPath} {
		path := filepath.Join(e.dir, rel)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		doc, err := workflow.Load(path)
		if err != nil {
			res := loadFailure(path, err)
			res.notes = notes
			return res
		}
		for _, job := range doc.Jobs {
			if job.Permissions == nil {
				job.Permissions = map[string]string{
					"contents": "write",
					"actions":  "read",
				}
			}
		}
		if err := doc.Save(path); err != nil {
			res := saveFailure(path, err)
			res.notes = notes
			return res
		}
		notes = append(notes, "Added permissions to "+rel)
	}

	return routineResult{notes: notes}
}
