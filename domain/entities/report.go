package entities

// ComparisonReport is the structural diff between a baseline and a
// candidate policy document. All sets are deduplicated, sorted, and
// compared with case-sensitive exact matching; no semantic equivalence
// between resource strings is inferred.
type ComparisonReport struct {
	// BaselineStatementCount is the number of statements in the baseline.
	BaselineStatementCount int `json:"baseline_statement_count"`

	// CandidateStatementCount is the number of statements in the candidate.
	CandidateStatementCount int `json:"candidate_statement_count"`

	// StatementDifference is the absolute difference in statement counts.
	StatementDifference int `json:"statement_difference"`

	// ActionOverlap is |A ∩ B| / |A ∪ B| over the two action sets,
	// 0.0 when the union is empty.
	ActionOverlap float64 `json:"action_overlap"`

	// ResourceOverlap is the same ratio over the two resource sets.
	ResourceOverlap float64 `json:"resource_overlap"`

	// BaselineOnlyActions are actions present only in the baseline, sorted.
	BaselineOnlyActions []string `json:"baseline_only_actions"`

	// CandidateOnlyActions are actions present only in the candidate, sorted.
	CandidateOnlyActions []string `json:"candidate_only_actions"`

	// BaselineOnlyResources are resources present only in the baseline, sorted.
	BaselineOnlyResources []string `json:"baseline_only_resources"`

	// CandidateOnlyResources are resources present only in the candidate, sorted.
	CandidateOnlyResources []string `json:"candidate_only_resources"`

	// Recommendations are human-readable review prompts derived from the
	// threshold rules, in rule-table order.
	Recommendations []string `json:"recommendations"`
}
