// Package resolver drives one remediation cycle: fetch failed runs, classify
// their logs, plan and apply fixes, then render and persist the report.
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/CosmoTheDev/actionfix/internal/classify"
	"github.com/CosmoTheDev/actionfix/internal/fix"
	"github.com/CosmoTheDev/actionfix/internal/report"
	"github.com/CosmoTheDev/actionfix/models"
)

// NoFailedRuns is returned by Cycle in place of a report when the repository
// has no recent failed workflow runs.
const NoFailedRuns = "No recent failed runs found."

// Forge is the slice of the API client the resolver needs.
type Forge interface {
	ListFailedRuns(ctx context.Context, limit int) []models.WorkflowRun
	classify.LogSource
}

// Resolver binds a forge client to a local working tree.
type Resolver struct {
	forge   Forge
	owner   string
	repo    string
	maxRuns int
	dir     string
	now     func() time.Time
}

// New creates a Resolver operating on the working tree rooted at dir.
// A maxRuns of zero means the client default.
func New(f Forge, owner, repo string, maxRuns int, dir string) *Resolver {
	if dir == "" {
		dir = "."
	}
	return &Resolver{
		forge:   f,
		owner:   owner,
		repo:    repo,
		maxRuns: maxRuns,
		dir:     dir,
		now:     time.Now,
	}
}

// Analysis is the read-only half of a cycle: what failed, how the failures
// classify, and what would be fixed.
type Analysis struct {
	Runs     []models.WorkflowRun
	Patterns models.PatternSet
	Fixes    []models.Fix
}

// Analyze fetches and classifies failed runs without touching the working
// tree. This is the dry-run path.
func (r *Resolver) Analyze(ctx context.Context) Analysis {
	runs := r.forge.ListFailedRuns(ctx, r.maxRuns)
	if len(runs) == 0 {
		return Analysis{Patterns: models.NewPatternSet()}
	}
	ps := classify.Aggregate(ctx, r.forge, runs)
	return Analysis{Runs: runs, Patterns: ps, Fixes: fix.Plan(ps)}
}

// Cycle runs one full resolution pass and returns the report text together
// with the path of the report file. When no failed runs exist it returns the
// NoFailedRuns sentence, writes nothing, and leaves the path empty.
func (r *Resolver) Cycle(ctx context.Context) (string, string, error) {
	runs := r.forge.ListFailedRuns(ctx, r.maxRuns)
	if len(runs) == 0 {
		slog.Info("No recent failed runs", "repo", r.owner+"/"+r.repo)
		return NoFailedRuns, "", nil
	}
	slog.Info("Analyzing failed workflow runs", "repo", r.owner+"/"+r.repo, "runs", len(runs))

	ps := classify.Aggregate(ctx, r.forge, runs)
	fixes := fix.Plan(ps)
	outcomes, notes := fix.NewExecutor(r.dir).Apply(fixes)

	now := r.now()
	text := report.Generate(r.owner, r.repo, now, ps, outcomes, notes)
	path := filepath.Join(r.dir, fmt.Sprintf("ci_resolution_report_%s.md", now.Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return text, "", fmt.Errorf("writing report: %w", err)
	}
	slog.Info("Resolution report written", "path", path)
	return text, path, nil
}
