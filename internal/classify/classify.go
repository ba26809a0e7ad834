// Package classify assigns failed-job logs to named failure buckets by
// matching literal phrases from a fixed catalog. There is no fuzzy matching:
// category classifiers check exact substrings on the original-case text,
// cross-cutting detectors work on a lowercased copy.
package classify

import (
	"fmt"
	"strings"

	"github.com/CosmoTheDev/actionfix/models"
)

// Readme diagnoses a profile-README activity workflow failure. Checks are
// ordered; the first matching phrase wins even when several are present.
func Readme(log string) string {
	switch {
	case strings.Contains(log, "Error: Request failed"):
		return "API request failure - possibly rate limited or token issue"
	case strings.Contains(log, "Error: Cannot read"):
		return "README file access issue - check file permissions"
	case strings.Contains(log, "Error: No recent activity"):
		return "No recent activity found - this might be expected"
	}
	return "Unknown README workflow failure"
}

// CodeQL diagnoses a CodeQL analysis workflow failure.
func CodeQL(log string) string {
	switch {
	case strings.Contains(log, "No source code was seen during the build"):
		return "No source code found for specified languages"
	case strings.Contains(log, "Language 'javascript' not found"),
		strings.Contains(log, "Language 'python' not found"):
		return "Specified languages not present in repository"
	case strings.Contains(log, "Autobuild failed"):
		return "Autobuild process failed - may need manual build steps"
	}
	return "Unknown CodeQL failure"
}

// Metrics diagnoses a metrics/stats workflow failure.
func Metrics(log string) string {
	switch {
	case strings.Contains(log, "Error: Request failed"):
		return "Metrics API request failed"
	case strings.Contains(log, "Error: Invalid token"):
		return "Invalid or insufficient token permissions"
	case strings.Contains(log, "Error: Rate limit"):
		return "Rate limit exceeded"
	}
	return "Unknown metrics failure"
}

// CrossCutting runs the three workflow-independent detectors over the log
// and records a diagnosis per matching bucket. A single log can hit all
// three; none of them excludes the category classifiers above.
func CrossCutting(ps models.PatternSet, runID int64, log string) {
	lower := strings.ToLower(log)

	if strings.Contains(lower, "permission") || strings.Contains(lower, "forbidden") {
		ps.Add(models.CategoryPermission, fmt.Sprintf("Run %d: Permission denied", runID))
	}
	if strings.Contains(lower, "action") &&
		(strings.Contains(lower, "deprecated") || strings.Contains(lower, "not found")) {
		ps.Add(models.CategoryActionVersion, fmt.Sprintf("Run %d: Action version issue", runID))
	}
	if strings.Contains(lower, "token") &&
		(strings.Contains(lower, "invalid") || strings.Contains(lower, "expired")) {
		ps.Add(models.CategoryToken, fmt.Sprintf("Run %d: Token issue", runID))
	}
}
