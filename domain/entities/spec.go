package entities

// SpecDSL is the structured, machine-readable representation of a user's
// requested access. It is constructed once per request by the external
// intent-extraction collaborator and is immutable thereafter.
type SpecDSL struct {
	// Capabilities are the requested positive grants, in request order.
	Capabilities []Capability `json:"capabilities" validate:"dive"`

	// Restrictions are the requested denials, in request order.
	Restrictions []Restriction `json:"restrictions,omitempty" validate:"dive"`

	// ExtractionConfidence is the overall confidence the extraction
	// collaborator assigned to this spec, 0.0 to 1.0.
	ExtractionConfidence float64 `json:"extraction_confidence" validate:"gte=0,lte=1"`
}

// EvidenceCount returns the total number of citations attached to the
// spec's capabilities and restrictions.
func (s SpecDSL) EvidenceCount() int {
	n := 0
	for _, c := range s.Capabilities {
		n += len(c.Evidence)
	}
	for _, r := range s.Restrictions {
		n += len(r.Evidence)
	}
	return n
}
