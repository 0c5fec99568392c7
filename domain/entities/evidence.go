package entities

// EvidenceConfidenceThreshold is the minimum evidence confidence considered
// trustworthy. Capabilities whose best evidence falls below this value are
// flagged by the validator.
const EvidenceConfidenceThreshold = 0.80

// Evidence is a single citation backing a capability or restriction.
// Evidence is produced by the external retrieval collaborator and is
// read-only inside this core.
type Evidence struct {
	// SourceID identifies the document or chunk the citation came from.
	SourceID string `json:"source_id" validate:"required"`

	// Confidence is the retrieval confidence for this citation, 0.0 to 1.0.
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`

	// Excerpt is a short quote from the source, if licensing allows one.
	Excerpt string `json:"excerpt,omitempty"`
}

// MaxEvidenceConfidence returns the highest confidence among the given
// citations, or 0.0 when the list is empty.
func MaxEvidenceConfidence(evidence []Evidence) float64 {
	best := 0.0
	for _, e := range evidence {
		if e.Confidence > best {
			best = e.Confidence
		}
	}
	return best
}
