package classify

import (
	"context"
	"log/slog"
	"strings"

	"github.com/CosmoTheDev/actionfix/models"
)

// LogSource provides jobs and logs for failed runs. Satisfied by forge.Client.
type LogSource interface {
	ListJobs(ctx context.Context, runID int64) []models.Job
	FetchJobLog(ctx context.Context, jobID int64) string
}

// Aggregate classifies every failed job of every run into the six failure
// buckets. The category classifier is selected from the run's display name;
// runs with unrecognised names still pass through the cross-cutting
// detectors. Diagnoses keep run order, then job order as the API returned
// them.
func Aggregate(ctx context.Context, src LogSource, runs []models.WorkflowRun) models.PatternSet {
	ps := models.NewPatternSet()

	for _, run := range runs {
		name := strings.ToLower(run.Name)
		for _, job := range src.ListJobs(ctx, run.ID) {
			if !job.Failed() {
				continue
			}
			log := src.FetchJobLog(ctx, job.ID)

			switch {
			case strings.Contains(name, "readme") && strings.Contains(name, "activity"):
				ps.Add(models.CategoryProfileReadme, Readme(log))
			case strings.Contains(name, "codeql"):
				ps.Add(models.CategoryCodeQL, CodeQL(log))
			case strings.Contains(name, "metrics") || strings.Contains(name, "stats"):
				ps.Add(models.CategoryMetrics, Metrics(log))
			}

			CrossCutting(ps, run.ID, log)
		}
	}

	slog.Debug("Classification pass complete", "runs", len(runs), "diagnoses", ps.Total())
	return ps
}
