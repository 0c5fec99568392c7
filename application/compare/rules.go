package compare

import "github.com/Saffronius/acpgen/domain/entities"

// Recommendation thresholds. Changing a threshold changes which rules
// fire, never how the overlap figures themselves are computed.
const (
	// StructuralDifferenceThreshold is the statement-count difference
	// above which the documents are considered structurally divergent.
	StructuralDifferenceThreshold = 2

	// LowActionOverlapThreshold is the action overlap below which the
	// candidate's intent alignment is questioned.
	LowActionOverlapThreshold = 0.5
)

// recommendationRule pairs a predicate over the finished report with the
// message it emits. Rules are data: adding one never touches the
// comparison algorithm.
type recommendationRule struct {
	name    string
	applies func(entities.ComparisonReport) bool
	message string
}

var recommendationRules = []recommendationRule{
	{
		name: "structural-difference",
		applies: func(r entities.ComparisonReport) bool {
			return r.StatementDifference > StructuralDifferenceThreshold
		},
		message: "significant structural differences - review carefully",
	},
	{
		name: "low-action-overlap",
		applies: func(r entities.ComparisonReport) bool {
			return r.ActionOverlap < LowActionOverlapThreshold
		},
		message: "low action overlap - verify intent alignment",
	},
	{
		name: "empty-baseline",
		applies: func(r entities.ComparisonReport) bool {
			return r.BaselineStatementCount == 0
		},
		message: "baseline policy is empty - review SpecDSL",
	},
	{
		name: "empty-candidate",
		applies: func(r entities.ComparisonReport) bool {
			return r.CandidateStatementCount == 0
		},
		message: "candidate policy is empty - baseline recommended",
	},
}

// recommend evaluates the rule table in order and collects the messages
// of every rule that applies.
func recommend(report entities.ComparisonReport) []string {
	recommendations := []string{}
	for _, rule := range recommendationRules {
		if rule.applies(report) {
			recommendations = append(recommendations, rule.message)
		}
	}
	return recommendations
}
