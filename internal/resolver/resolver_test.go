package resolver

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/CosmoTheDev/actionfix/models"
)

const readmeWorkflow = `name: Update README
on:
  schedule:
    - cron: '*/30 * * * *'
jobs:
  update-readme:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v4
      - name: Update this repo's README
        uses: jamesgeorge007/github-activity-readme@master
`

type fakeForge struct {
	runs []models.WorkflowRun
	jobs map[int64][]models.Job
	logs map[int64]string
}

func (f *fakeForge) ListFailedRuns(_ context.Context, _ int) []models.WorkflowRun {
	return f.runs
}

func (f *fakeForge) ListJobs(_ context.Context, runID int64) []models.Job {
	return f.jobs[runID]
}

func (f *fakeForge) FetchJobLog(_ context.Context, jobID int64) string {
	return f.logs[jobID]
}

func newTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wf := filepath.Join(dir, ".github", "workflows")
	if err := os.MkdirAll(wf, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(wf, "profile-readme.yml"), []byte(readmeWorkflow), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestCycleEndToEnd(t *testing.T) {
	forge := &fakeForge{
		runs: []models.WorkflowRun{
			{ID: 7, Name: "Update README with recent activity", Conclusion: models.ConclusionFailure},
		},
		jobs: map[int64][]models.Job{
			7: {{ID: 70, RunID: 7, Name: "update-readme", Conclusion: models.ConclusionFailure}},
		},
		logs: map[int64]string{
			70: "remote: permission denied\nError: Request failed with status code 403",
		},
	}

	dir := newTestRepo(t)
	r := New(forge, "octocat", "octocat", 10, dir)
	r.now = func() time.Time { return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC) }

	text, path, err := r.Cycle(context.Background())
	if err != nil {
		t.Fatalf("Cycle: %v", err)
	}

	for _, w := range []string{
		"# CI/CD Failure Resolution Report",
		"Repository: octocat/octocat",
		"- API request failure - possibly rate limited or token issue",
		"- Run 7: Permission denied",
		"✅ SUCCESS: Update profile README workflow",
		"✅ SUCCESS: Add missing workflow permissions",
	} {
		if !strings.Contains(text, w) {
			t.Errorf("report missing %q\n%s", w, text)
		}
	}

	wantPath := filepath.Join(dir, "ci_resolution_report_20250314_092653.md")
	if path != wantPath {
		t.Errorf("report path = %q, want %q", path, wantPath)
	}
	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report file: %v", err)
	}
	if string(onDisk) != text {
		t.Errorf("report file does not match returned text")
	}

	// The workflow itself must have been repaired.
	fixed, err := os.ReadFile(filepath.Join(dir, ".github", "workflows", "profile-readme.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(fixed), "jamesgeorge007/github-activity-readme@v1.6.4") {
		t.Errorf("action was not pinned:\n%s", fixed)
	}
}

func TestCycleNoFailedRuns(t *testing.T) {
	dir := t.TempDir()
	r := New(&fakeForge{}, "octocat", "octocat", 10, dir)

	text, path, err := r.Cycle(context.Background())
	if err != nil {
		t.Fatalf("Cycle: %v", err)
	}
	if text != NoFailedRuns {
		t.Errorf("text = %q, want %q", text, NoFailedRuns)
	}
	if path != "" {
		t.Errorf("path = %q, want empty", path)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("no files should be written when there are no failed runs, found %d", len(entries))
	}
}

func TestAnalyzeIsReadOnly(t *testing.T) {
	forge := &fakeForge{
		runs: []models.WorkflowRun{
			{ID: 7, Name: "Update README with recent activity", Conclusion: models.ConclusionFailure},
		},
		jobs: map[int64][]models.Job{
			7: {{ID: 70, RunID: 7, Conclusion: models.ConclusionFailure}},
		},
		logs: map[int64]string{70: "Error: Request failed"},
	}

	dir := newTestRepo(t)
	r := New(forge, "octocat", "octocat", 10, dir)

	a := r.Analyze(context.Background())
	if len(a.Runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(a.Runs))
	}
	if len(a.Fixes) != 1 || a.Fixes[0].Kind != models.FixProfileReadme {
		t.Errorf("fixes = %+v, want one profile-readme fix", a.Fixes)
	}

	original, err := os.ReadFile(filepath.Join(dir, ".github", "workflows", "profile-readme.yml"))
	if err != nil {
		t.Fatal(err)
	}
	if string(original) != readmeWorkflow {
		t.Errorf("dry run must not modify the working tree")
	}
}

func TestAnalyzeNoRuns(t *testing.T) {
	r := New(&fakeForge{}, "o", "r", 0, t.TempDir())
	a := r.Analyze(context.Background())
	if len(a.Runs) != 0 || len(a.Fixes) != 0 || a.Patterns.Total() != 0 {
		t.Errorf("empty analysis expected, got %+v", a)
	}
}
