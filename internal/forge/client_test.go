package forge

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	gogithub "github.com/google/go-github/v68/github"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	gh := gogithub.NewClient(nil)
	base, err := url.Parse(srv.URL + "/")
	if err != nil {
		t.Fatalf("parse base url: %v", err)
	}
	gh.BaseURL = base
	return NewFromGitHub(gh, srv.Client(), "octo", "hello"), srv
}

func TestListFailedRunsFiltersByStatus(t *testing.T) {
	var gotQuery url.Values
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/hello/actions/runs", func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, `{"total_count":2,"workflow_runs":[
			{"id":11,"name":"Readme Activity","conclusion":"failure"},
			{"id":12,"name":"CodeQL","conclusion":"failure"}]}`)
	})

	c, _ := newTestClient(t, mux)
	runs := c.ListFailedRuns(context.Background(), 5)

	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != 11 || runs[0].Name != "Readme Activity" {
		t.Fatalf("unexpected first run: %+v", runs[0])
	}
	if got := gotQuery.Get("status"); got != "failure" {
		t.Errorf("expected status=failure, got %q", got)
	}
	if got := gotQuery.Get("per_page"); got != "5" {
		t.Errorf("expected per_page=5, got %q", got)
	}
}

func TestListFailedRunsReturnsEmptyOnAPIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/hello/actions/runs", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	})

	c, _ := newTestClient(t, mux)
	if runs := c.ListFailedRuns(context.Background(), 10); len(runs) != 0 {
		t.Fatalf("expected no runs on API error, got %d", len(runs))
	}
}

func TestListJobs(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/hello/actions/runs/11/jobs", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"total_count":2,"jobs":[
			{"id":101,"run_id":11,"name":"update","conclusion":"failure"},
			{"id":102,"run_id":11,"name":"lint","conclusion":"success"}]}`)
	})

	c, _ := newTestClient(t, mux)
	jobs := c.ListJobs(context.Background(), 11)

	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if !jobs[0].Failed() || jobs[1].Failed() {
		t.Fatalf("unexpected conclusions: %+v", jobs)
	}
}

func TestFetchJobLogFollowsRedirect(t *testing.T) {
	mux := http.NewServeMux()
	c, srv := newTestClient(t, mux)
	mux.HandleFunc("/logtext", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "Error: Request failed with status 403")
	})
	mux.HandleFunc("/repos/octo/hello/actions/jobs/101/logs", func(w http.ResponseWriter, r *http.Request) {
		// The real API answers with a signed download URL.
		http.Redirect(w, r, srv.URL+"/logtext", http.StatusFound)
	})

	log := c.FetchJobLog(context.Background(), 101)
	if log != "Error: Request failed with status 403" {
		t.Fatalf("unexpected log text: %q", log)
	}
}

func TestFetchJobLogReturnsEmptyOnError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/hello/actions/jobs/999/logs", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"not found"}`, http.StatusNotFound)
	})

	c, _ := newTestClient(t, mux)
	if log := c.FetchJobLog(context.Background(), 999); log != "" {
		t.Fatalf("expected empty log on error, got %q", log)
	}
}
