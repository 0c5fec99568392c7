// Package compare computes the structural diff between a baseline policy
// document and an independently generated candidate. Discrepancies are
// not errors: the report carries informational recommendations for human
// review, derived from a table of threshold rules.
package compare

import (
	"sort"

	"github.com/Saffronius/acpgen/domain/entities"
)

// Compare diffs two documents and builds the comparison report. Matching
// is case-sensitive and exact: the same action on two different resource
// strings counts as two resources, and no semantic equivalence between
// ARNs is inferred.
func Compare(baseline, candidate entities.PolicyDocument) entities.ComparisonReport {
	baseActions, baseResources := flatten(baseline)
	candActions, candResources := flatten(candidate)

	report := entities.ComparisonReport{
		BaselineStatementCount:  len(baseline.Statement),
		CandidateStatementCount: len(candidate.Statement),
		StatementDifference:     abs(len(baseline.Statement) - len(candidate.Statement)),
		ActionOverlap:           overlap(baseActions, candActions),
		ResourceOverlap:         overlap(baseResources, candResources),
		BaselineOnlyActions:     onlyIn(baseActions, candActions),
		CandidateOnlyActions:    onlyIn(candActions, baseActions),
		BaselineOnlyResources:   onlyIn(baseResources, candResources),
		CandidateOnlyResources:  onlyIn(candResources, baseResources),
	}
	report.Recommendations = recommend(report)
	return report
}

// flatten collects a document's deduplicated action and resource sets.
func flatten(doc entities.PolicyDocument) (actions, resources map[string]bool) {
	actions = make(map[string]bool)
	resources = make(map[string]bool)
	for _, stmt := range doc.Statement {
		for _, a := range stmt.Action {
			actions[a] = true
		}
		for _, r := range stmt.Resource {
			resources[r] = true
		}
	}
	return actions, resources
}

// overlap is the Jaccard ratio |a ∩ b| / |a ∪ b|, defined as 0.0 when
// the union is empty.
func overlap(a, b map[string]bool) float64 {
	union := len(a)
	intersection := 0
	for v := range b {
		if a[v] {
			intersection++
		} else {
			union++
		}
	}
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

// onlyIn returns the values in a but not b, sorted for stable output.
func onlyIn(a, b map[string]bool) []string {
	out := []string{}
	for v := range a {
		if !b[v] {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
