// Package pipeline wires decoding, canonicalization, validation, and
// comparison into the end-to-end flow the CLI and embedding services
// run. The pipeline itself holds no mutable state; a single instance is
// safe for concurrent use.
package pipeline

import (
	"log/slog"

	"github.com/Saffronius/acpgen/application/canon"
	"github.com/Saffronius/acpgen/application/compare"
	"github.com/Saffronius/acpgen/application/schema"
	"github.com/Saffronius/acpgen/application/validation"
	"github.com/Saffronius/acpgen/domain/entities"
	"github.com/Saffronius/acpgen/infrastructure/parser"
	"github.com/Saffronius/acpgen/registry"
)

// AuditSummary condenses a run into the figures a reviewer scans first.
type AuditSummary struct {
	// Capabilities is the number of capabilities in the spec.
	Capabilities int `json:"capabilities"`

	// Restrictions is the number of restrictions in the spec.
	Restrictions int `json:"restrictions"`

	// EvidenceCitations is the total citation count across the spec.
	EvidenceCitations int `json:"evidence_citations"`

	// ExtractionConfidence is the confidence the spec arrived with.
	ExtractionConfidence float64 `json:"extraction_confidence"`

	// AdjustedConfidence is the extraction confidence after the
	// per-code diagnostic penalties.
	AdjustedConfidence float64 `json:"adjusted_confidence"`

	// BaselineComplexity is the complexity score of the emitted policy.
	BaselineComplexity int `json:"baseline_complexity"`

	// CandidateComplexity is the complexity score of the candidate
	// policy, when one was compared.
	CandidateComplexity int `json:"candidate_complexity,omitempty"`

	// AlignmentScore blends the overlap figures into one 0..1 value,
	// when a candidate was compared.
	AlignmentScore float64 `json:"alignment_score,omitempty"`
}

// Artifacts is everything one pipeline run produces.
type Artifacts struct {
	// Baseline is the canonical policy derived from the spec.
	Baseline entities.PolicyDocument `json:"baseline_policy"`

	// Diagnostics are the canonizer and validator findings, in emission
	// order.
	Diagnostics []entities.Diagnostic `json:"diagnostics"`

	// Report is the baseline/candidate comparison, nil when no
	// candidate was supplied.
	Report *entities.ComparisonReport `json:"comparison,omitempty"`

	// Audit is the summary block.
	Audit AuditSummary `json:"audit"`
}

// Pipeline runs spec JSON through canonicalization and validation, and
// optionally compares the result against a candidate policy.
type Pipeline struct {
	reg    *registry.Registry
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. The default discards nothing but logs at
// the slog default level to the process default handler.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a Pipeline over the given registry. A nil registry falls
// back to the built-in service table.
func New(reg *registry.Registry, opts ...Option) *Pipeline {
	if reg == nil {
		reg = registry.New()
	}
	p := &Pipeline{reg: reg, logger: slog.Default()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run decodes and canonicalizes specJSON. When candidateJSON is non-nil
// it is schema-checked, decoded, and compared against the baseline.
// Structural spec violations and malformed candidates fail the run;
// semantic findings never do.
func (p *Pipeline) Run(specJSON, candidateJSON []byte) (*Artifacts, error) {
	spec, err := parser.ParseSpec(specJSON)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidateStructure(spec); err != nil {
		return nil, err
	}

	baseline, diags, err := canon.Canonicalize(p.reg, spec)
	if err != nil {
		return nil, err
	}
	diags = append(diags, validation.Validate(p.reg, spec, baseline)...)

	artifacts := &Artifacts{
		Baseline:    baseline,
		Diagnostics: diags,
		Audit: AuditSummary{
			Capabilities:         len(spec.Capabilities),
			Restrictions:         len(spec.Restrictions),
			EvidenceCitations:    spec.EvidenceCount(),
			ExtractionConfidence: spec.ExtractionConfidence,
			AdjustedConfidence:   validation.AdjustConfidence(spec.ExtractionConfidence, diags),
			BaselineComplexity:   compare.Complexity(baseline),
		},
	}

	if candidateJSON != nil {
		if err := schema.ValidatePolicyDocument(candidateJSON); err != nil {
			return nil, err
		}
		candidate, err := parser.ParseDocument(candidateJSON)
		if err != nil {
			return nil, err
		}
		report := compare.Compare(baseline, candidate)
		artifacts.Report = &report
		artifacts.Audit.CandidateComplexity = compare.Complexity(candidate)
		artifacts.Audit.AlignmentScore = compare.AlignmentScore(report)
	}

	p.logger.Info("pipeline run complete",
		slog.Int("statements", len(baseline.Statement)),
		slog.Int("diagnostics", len(diags)),
		slog.Float64("adjusted_confidence", artifacts.Audit.AdjustedConfidence),
		slog.Bool("compared", artifacts.Report != nil),
	)
	return artifacts, nil
}
