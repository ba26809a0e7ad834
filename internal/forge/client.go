// Package forge wraps the GitHub Actions REST API for one repository.
//
// Every operation degrades to an empty result on transport or status errors:
// callers treat "empty" as "no data available", never as "confirmed empty".
// There is no retry, backoff, or rate-limit pacing here.
package forge

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	gogithub "github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	"github.com/CosmoTheDev/actionfix/internal/config"
	"github.com/CosmoTheDev/actionfix/models"
)

const defaultRunLimit = 10

// Client issues authenticated calls against the Actions API of a single
// owner/repo pair.
type Client struct {
	client *gogithub.Client
	http   *http.Client
	owner  string
	repo   string
}

// New creates a Client from the given configuration.
func New(cfg config.GitHubConfig) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("github token is required")
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	tc := oauth2.NewClient(context.Background(), ts)
	client := gogithub.NewClient(tc)

	// Support GitHub Enterprise by overriding the base URL.
	if cfg.Host != "" && cfg.Host != "github.com" {
		base := fmt.Sprintf("https://%s/api/v3/", cfg.Host)
		upload := fmt.Sprintf("https://%s/api/uploads/", cfg.Host)
		var err error
		client, err = client.WithEnterpriseURLs(base, upload)
		if err != nil {
			return nil, fmt.Errorf("configuring GitHub enterprise URLs: %w", err)
		}
	}

	// The signed log download URL must be fetched without the bearer token,
	// so log downloads use a plain client rather than the oauth2 one.
	return &Client{client: client, http: &http.Client{}, owner: cfg.Owner, repo: cfg.Repo}, nil
}

// NewFromGitHub wraps an already-constructed go-github client. Used by tests
// to point the client at an httptest server.
func NewFromGitHub(client *gogithub.Client, httpClient *http.Client, owner, repo string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{client: client, http: httpClient, owner: owner, repo: repo}
}

// ListFailedRuns returns up to limit recent workflow runs that concluded with
// failure. The status filter is applied server-side.
func (c *Client) ListFailedRuns(ctx context.Context, limit int) []models.WorkflowRun {
	if limit <= 0 {
		limit = defaultRunLimit
	}
	result, _, err := c.client.Actions.ListRepositoryWorkflowRuns(ctx, c.owner, c.repo,
		&gogithub.ListWorkflowRunsOptions{
			Status:      models.ConclusionFailure,
			ListOptions: gogithub.ListOptions{PerPage: limit},
		})
	if err != nil {
		slog.Error("Failed to fetch workflow runs", "repo", c.owner+"/"+c.repo, "error", err)
		return nil
	}

	runs := make([]models.WorkflowRun, 0, len(result.WorkflowRuns))
	for _, r := range result.WorkflowRuns {
		if r == nil {
			continue
		}
		runs = append(runs, models.WorkflowRun{
			ID:         r.GetID(),
			Name:       r.GetName(),
			Conclusion: r.GetConclusion(),
		})
	}
	return runs
}

// ListJobs returns the jobs of one workflow run, in API order.
func (c *Client) ListJobs(ctx context.Context, runID int64) []models.Job {
	result, _, err := c.client.Actions.ListWorkflowJobs(ctx, c.owner, c.repo, runID,
		&gogithub.ListWorkflowJobsOptions{})
	if err != nil {
		slog.Error("Failed to fetch jobs for run", "run_id", runID, "error", err)
		return nil
	}

	jobs := make([]models.Job, 0, len(result.Jobs))
	for _, j := range result.Jobs {
		if j == nil {
			continue
		}
		jobs = append(jobs, models.Job{
			ID:         j.GetID(),
			RunID:      j.GetRunID(),
			Name:       j.GetName(),
			Conclusion: j.GetConclusion(),
		})
	}
	return jobs
}

// FetchJobLog returns the raw log text of one job, or "" when the log cannot
// be retrieved. The Actions API answers with a redirect to a signed download
// URL, which is then fetched directly.
func (c *Client) FetchJobLog(ctx context.Context, jobID int64) string {
	logURL, _, err := c.client.Actions.GetWorkflowJobLogs(ctx, c.owner, c.repo, jobID, 2)
	if err != nil {
		slog.Error("Failed to resolve log URL for job", "job_id", jobID, "error", err)
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, logURL.String(), nil)
	if err != nil {
		slog.Error("Failed to build log request", "job_id", jobID, "error", err)
		return ""
	}
	resp, err := c.http.Do(req)
	if err != nil {
		slog.Error("Failed to fetch logs for job", "job_id", jobID, "error", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Error("Unexpected status fetching job logs", "job_id", jobID, "status", resp.StatusCode)
		return ""
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Error("Failed to read job log body", "job_id", jobID, "error", err)
		return ""
	}
	return string(body)
}
