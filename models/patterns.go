package models

import "strings"

// PatternCategory names one failure bucket produced by a classification pass.
type PatternCategory string

// The six fixed bucket names. Every key in a PatternSet is one of these;
// the fix planner recognises exactly these keys and no others.
const (
	CategoryProfileReadme  PatternCategory = "profile_readme_failures"
	CategoryCodeQL         PatternCategory = "codeql_failures"
	CategoryMetrics        PatternCategory = "metrics_failures"
	CategoryPermission     PatternCategory = "permission_errors"
	CategoryActionVersion  PatternCategory = "action_version_issues"
	CategoryToken          PatternCategory = "token_issues"
)

// Categories returns all bucket names in their fixed report order.
func Categories() []PatternCategory {
	return []PatternCategory{
		CategoryProfileReadme,
		CategoryCodeQL,
		CategoryMetrics,
		CategoryPermission,
		CategoryActionVersion,
		CategoryToken,
	}
}

// Title renders the category as a human-readable report heading,
// e.g. "profile_readme_failures" -> "Profile Readme Failures".
func (c PatternCategory) Title() string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// PatternSet holds the ordered diagnosis strings accumulated per bucket
// during a single analysis pass. It is mutated by the aggregator, read by
// the planner and report generator, and discarded at end of cycle.
type PatternSet map[PatternCategory][]string

// NewPatternSet returns a PatternSet with every bucket present and empty.
func NewPatternSet() PatternSet {
	ps := make(PatternSet, 6)
	for _, c := range Categories() {
		ps[c] = nil
	}
	return ps
}

// Add appends a diagnosis to the named bucket, preserving insertion order.
func (ps PatternSet) Add(c PatternCategory, diagnosis string) {
	ps[c] = append(ps[c], diagnosis)
}

// NonEmpty reports whether the bucket holds at least one diagnosis.
func (ps PatternSet) NonEmpty(c PatternCategory) bool {
	return len(ps[c]) > 0
}

// Total returns the number of diagnoses across all buckets.
func (ps PatternSet) Total() int {
	n := 0
	for _, diags := range ps {
		n += len(diags)
	}
	return n
}
