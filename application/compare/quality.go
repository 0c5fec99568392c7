package compare

import (
	"math"

	"github.com/Saffronius/acpgen/domain/entities"
)

// Alignment weights. Action agreement matters most; resource agreement
// and structural similarity share the rest.
const (
	actionsWeight   = 0.4
	resourcesWeight = 0.3
	structureWeight = 0.3
)

// AlignmentScore condenses a comparison report into a single 0..1 figure
// for the audit summary: a weighted blend of action overlap, resource
// overlap, and statement-count similarity, rounded to three decimals.
func AlignmentScore(report entities.ComparisonReport) float64 {
	structure := 1.0
	total := report.BaselineStatementCount + report.CandidateStatementCount
	if total > 0 {
		structure = 1.0 - float64(report.StatementDifference)/float64(total)
	}
	score := report.ActionOverlap*actionsWeight +
		report.ResourceOverlap*resourcesWeight +
		structure*structureWeight
	return math.Round(score*1000) / 1000
}

// Complexity scores a document for the audit summary: one point per
// statement, a tenth per action or resource, and half a point per
// condition operator. The integer truncation is deliberate; this is a
// coarse review aid, not a metric.
func Complexity(doc entities.PolicyDocument) int {
	complexity := 0.0
	for _, stmt := range doc.Statement {
		complexity += 1.0
		complexity += float64(len(stmt.Action)) * 0.1
		complexity += float64(len(stmt.Resource)) * 0.1
		complexity += float64(len(stmt.Condition)) * 0.5
	}
	return int(complexity)
}
