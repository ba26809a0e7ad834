// Package report renders the findings and fix outcomes of one resolution
// cycle as a markdown document. Generation is pure: no clock, no I/O.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/CosmoTheDev/actionfix/models"
)

// recommendations is the fixed list of operational follow-ups appended to
// every report.
var recommendations = []string{
	"Monitor workflow runs for the next 24-48 hours",
	"Consider adding workflow status badges to README",
	"Set up notifications for workflow failures",
	"Review and update action versions quarterly",
}

// Generate builds the resolution report for owner/repo at the given time.
func Generate(owner, repo string, now time.Time, ps models.PatternSet, outcomes []models.FixOutcome, notes []string) string {
	var b strings.Builder

	b.WriteString("# CI/CD Failure Resolution Report\n")
	fmt.Fprintf(&b, "Generated: %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Repository: %s/%s\n\n", owner, repo)

	b.WriteString("## Issues Identified\n")
	for _, c := range models.Categories() {
		if !ps.NonEmpty(c) {
			continue
		}
		fmt.Fprintf(&b, "### %s\n", c.Title())
		for _, diagnosis := range ps[c] {
			fmt.Fprintf(&b, "- %s\n", diagnosis)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Fixes Applied\n")
	for _, o := range outcomes {
		status := "✅ SUCCESS"
		if !o.Success {
			status = "❌ FAILED"
		}
		fmt.Fprintf(&b, "- %s: %s\n", status, o.Description)
	}
	b.WriteString("\n")

	if len(notes) > 0 {
		b.WriteString("## Additional Changes\n")
		for _, n := range notes {
			fmt.Fprintf(&b, "- %s\n", n)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Recommendations\n")
	for _, r := range recommendations {
		fmt.Fprintf(&b, "- %s\n", r)
	}

	return b.String()
}
