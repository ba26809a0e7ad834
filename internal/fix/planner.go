// Package fix plans and applies canned remediations to workflow files.
package fix

import (
	"github.com/CosmoTheDev/actionfix/models"
)

// Workflow file paths, relative to the repository root.
const (
	ProfileReadmePath = ".github/workflows/profile-readme.yml"
	CodeQLPath        = ".github/workflows/codeql-analysis.yml"
	MetricsPath       = ".github/workflows/metrics.yml"
)

// Plan maps non-empty failure buckets to an ordered list of at most four
// fixes. Only bucket emptiness is inspected, never diagnosis content.
//
// Note the deliberate asymmetry: action_version_issues and token_issues are
// collected and reported but never drive a remediation. Those two buckets
// usually need a new credential or a manual action upgrade, which this tool
// does not automate.
func Plan(ps models.PatternSet) []models.Fix {
	var fixes []models.Fix

	if ps.NonEmpty(models.CategoryProfileReadme) {
		fixes = append(fixes, models.Fix{
			Kind:        models.FixProfileReadme,
			File:        ProfileReadmePath,
			Description: "Update profile README workflow",
		})
	}
	if ps.NonEmpty(models.CategoryCodeQL) {
		fixes = append(fixes, models.Fix{
			Kind:        models.FixCodeQL,
			File:        CodeQLPath,
			Description: "Fix CodeQL language configuration",
		})
	}
	if ps.NonEmpty(models.CategoryMetrics) {
		fixes = append(fixes, models.Fix{
			Kind:        models.FixMetrics,
			File:        MetricsPath,
			Description: "Update metrics workflow configuration",
		})
	}
	if ps.NonEmpty(models.CategoryPermission) {
		fixes = append(fixes, models.Fix{
			Kind:        models.FixPermissions,
			Description: "Add missing workflow permissions",
		})
	}

	return fixes
}
