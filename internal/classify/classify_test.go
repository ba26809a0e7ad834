package classify

import (
	"strings"
	"testing"

	"github.com/CosmoTheDev/actionfix/models"
)

func TestReadme(t *testing.T) {
	tests := []struct {
		log  string
		want string
	}{
		{"Error: Request failed with status 403", "API request failure"},
		{"Error: Cannot read property 'length'", "README file access issue"},
		{"Error: No recent activity after 30 days", "No recent activity found"},
		{"something else entirely", "Unknown README workflow failure"},
		// First match wins when several phrases are present.
		{"Error: Request failed\nError: Cannot read", "API request failure"},
	}
	for _, tt := range tests {
		if got := Readme(tt.log); !strings.Contains(got, tt.want) {
			t.Errorf("Readme(%q) = %q, want substring %q", tt.log, got, tt.want)
		}
	}
}

func TestCodeQL(t *testing.T) {
	tests := []struct {
		log  string
		want string
	}{
		{"No source code was seen during the build", "No source code found"},
		{"Language 'python' not found in repository", "not present in repository"},
		{"Language 'javascript' not found", "not present in repository"},
		{"Autobuild failed after 3 attempts", "Autobuild process failed"},
		{"weird output", "Unknown CodeQL failure"},
	}
	for _, tt := range tests {
		if got := CodeQL(tt.log); !strings.Contains(got, tt.want) {
			t.Errorf("CodeQL(%q) = %q, want substring %q", tt.log, got, tt.want)
		}
	}
}

func TestMetrics(t *testing.T) {
	tests := []struct {
		log  string
		want string
	}{
		{"Error: Request failed", "Metrics API request failed"},
		{"Error: Invalid token provided", "Invalid or insufficient token permissions"},
		{"Error: Rate limit exceeded for resource", "Rate limit exceeded"},
		{"gibberish", "Unknown metrics failure"},
	}
	for _, tt := range tests {
		if got := Metrics(tt.log); !strings.Contains(got, tt.want) {
			t.Errorf("Metrics(%q) = %q, want substring %q", tt.log, got, tt.want)
		}
	}
}

func TestClassifiersAreCaseSensitive(t *testing.T) {
	// Category phrase matching is exact; lowercased input must not match.
	if got := Readme("error: request failed"); got != "Unknown README workflow failure" {
		t.Errorf("expected unknown diagnosis for lowercased phrase, got %q", got)
	}
}

func TestCrossCutting(t *testing.T) {
	tests := []struct {
		name string
		log  string
		want map[models.PatternCategory]int
	}{
		{
			name: "permission keyword",
			log:  "Error: Permission denied while pushing",
			want: map[models.PatternCategory]int{models.CategoryPermission: 1},
		},
		{
			name: "forbidden keyword",
			log:  "HTTP 403 Forbidden",
			want: map[models.PatternCategory]int{models.CategoryPermission: 1},
		},
		{
			name: "deprecated action",
			log:  "Warning: this action is deprecated",
			want: map[models.PatternCategory]int{models.CategoryActionVersion: 1},
		},
		{
			name: "expired token",
			log:  "Bad credentials: token expired",
			want: map[models.PatternCategory]int{models.CategoryToken: 1},
		},
		{
			name: "all three at once",
			log:  "permission denied; action not found; token invalid",
			want: map[models.PatternCategory]int{
				models.CategoryPermission:    1,
				models.CategoryActionVersion: 1,
				models.CategoryToken:         1,
			},
		},
		{
			// "action" without deprecated/not-found and "token" without
			// invalid/expired must not trigger anything.
			name: "keywords without qualifiers",
			log:  "running action with token",
			want: map[models.PatternCategory]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := models.NewPatternSet()
			CrossCutting(ps, 42, tt.log)
			for _, c := range models.Categories() {
				if got := len(ps[c]); got != tt.want[c] {
					t.Errorf("bucket %s: got %d diagnoses, want %d", c, got, tt.want[c])
				}
			}
		})
	}
}

func TestCrossCuttingDiagnosisNamesRun(t *testing.T) {
	ps := models.NewPatternSet()
	CrossCutting(ps, 7, "permission denied")
	if len(ps[models.CategoryPermission]) != 1 || ps[models.CategoryPermission][0] != "Run 7: Permission denied" {
		t.Fatalf("unexpected permission diagnoses: %v", ps[models.CategoryPermission])
	}
}
