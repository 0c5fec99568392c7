package pipeline

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Saffronius/acpgen/domain/entities"
)

// RenderMarkdown formats a run's artifacts as a review document. Output
// is fully determined by the artifacts; no timestamps or host details
// leak in, so re-rendering the same run is byte-identical.
func RenderMarkdown(a *Artifacts) []byte {
	var b strings.Builder

	b.WriteString("# Policy Generation Report\n\n")

	b.WriteString("## Audit Summary\n\n")
	fmt.Fprintf(&b, "- Capabilities: %d\n", a.Audit.Capabilities)
	fmt.Fprintf(&b, "- Restrictions: %d\n", a.Audit.Restrictions)
	fmt.Fprintf(&b, "- Evidence citations: %d\n", a.Audit.EvidenceCitations)
	fmt.Fprintf(&b, "- Extraction confidence: %.2f\n", a.Audit.ExtractionConfidence)
	fmt.Fprintf(&b, "- Adjusted confidence: %.2f\n", a.Audit.AdjustedConfidence)
	fmt.Fprintf(&b, "- Baseline complexity: %d\n", a.Audit.BaselineComplexity)
	if a.Report != nil {
		fmt.Fprintf(&b, "- Candidate complexity: %d\n", a.Audit.CandidateComplexity)
		fmt.Fprintf(&b, "- Alignment score: %.3f\n", a.Audit.AlignmentScore)
	}
	b.WriteString("\n")

	b.WriteString("## Baseline Policy\n\n")
	b.WriteString("```json\n")
	policyJSON, err := json.MarshalIndent(a.Baseline, "", "  ")
	if err != nil {
		// MarshalIndent cannot fail on these types; keep the report
		// well-formed regardless.
		policyJSON = []byte("{}")
	}
	b.Write(policyJSON)
	b.WriteString("\n```\n\n")

	b.WriteString("## Diagnostics\n\n")
	if len(a.Diagnostics) == 0 {
		b.WriteString("No findings.\n\n")
	} else {
		for _, d := range a.Diagnostics {
			fmt.Fprintf(&b, "- **%s** `%s` %s: %s\n", d.Severity, d.Code, d.Subject, d.Message)
		}
		b.WriteString("\n")
	}

	if a.Report != nil {
		renderComparison(&b, a.Report)
	}

	return []byte(b.String())
}

func renderComparison(b *strings.Builder, r *entities.ComparisonReport) {
	b.WriteString("## Comparison\n\n")
	fmt.Fprintf(b, "- Baseline statements: %d\n", r.BaselineStatementCount)
	fmt.Fprintf(b, "- Candidate statements: %d\n", r.CandidateStatementCount)
	fmt.Fprintf(b, "- Statement difference: %d\n", r.StatementDifference)
	fmt.Fprintf(b, "- Action overlap: %.1f%%\n", r.ActionOverlap*100)
	fmt.Fprintf(b, "- Resource overlap: %.1f%%\n", r.ResourceOverlap*100)
	b.WriteString("\n")

	renderStringSet(b, "Baseline-only actions", r.BaselineOnlyActions)
	renderStringSet(b, "Candidate-only actions", r.CandidateOnlyActions)
	renderStringSet(b, "Baseline-only resources", r.BaselineOnlyResources)
	renderStringSet(b, "Candidate-only resources", r.CandidateOnlyResources)

	b.WriteString("### Recommendations\n\n")
	if len(r.Recommendations) == 0 {
		b.WriteString("None.\n")
	} else {
		for _, rec := range r.Recommendations {
			fmt.Fprintf(b, "- %s\n", rec)
		}
	}
}

func renderStringSet(b *strings.Builder, title string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "### %s\n\n", title)
	for _, v := range values {
		fmt.Fprintf(b, "- `%s`\n", v)
	}
	b.WriteString("\n")
}
