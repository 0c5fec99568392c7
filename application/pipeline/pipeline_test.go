package pipeline_test

import (
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saffronius/acpgen/application/pipeline"
	"github.com/Saffronius/acpgen/domain/entities"
	domainerrors "github.com/Saffronius/acpgen/domain/errors"
	"github.com/Saffronius/acpgen/internal/testutil"
	"github.com/Saffronius/acpgen/log"
	"github.com/Saffronius/acpgen/registry"
)

const specJSON = `{
	"capabilities": [
		{
			"service": "s3",
			"access_level": "read-only",
			"resource_refs": ["reports-bucket"],
			"conditions": {"aws:SecureTransport": "true"},
			"evidence": [{"source_id": "ticket-812", "confidence": 0.9}],
			"confidence": 0.9
		}
	],
	"restrictions": [
		{"rule_type": "deny", "targets": ["s3:DeleteBucket"]}
	],
	"extraction_confidence": 0.95
}`

func newPipeline(t *testing.T) *pipeline.Pipeline {
	t.Helper()
	return pipeline.New(registry.New(),
		pipeline.WithLogger(log.New(log.WithWriter(io.Discard))))
}

func TestPipeline_Run_GenerateOnly(t *testing.T) {
	p := newPipeline(t)

	artifacts, err := p.Run([]byte(specJSON), nil)
	require.NoError(t, err)

	require.Len(t, artifacts.Baseline.Statement, 2)
	assert.Equal(t, "AllowS3ReadOnly", artifacts.Baseline.Statement[0].Sid)
	assert.Equal(t, "DenyS3", artifacts.Baseline.Statement[1].Sid)
	assert.Nil(t, artifacts.Report)
	assert.Empty(t, artifacts.Diagnostics)

	assert.Equal(t, 1, artifacts.Audit.Capabilities)
	assert.Equal(t, 1, artifacts.Audit.Restrictions)
	assert.Equal(t, 1, artifacts.Audit.EvidenceCitations)
	assert.Equal(t, 0.95, artifacts.Audit.ExtractionConfidence)
	assert.Equal(t, 0.95, artifacts.Audit.AdjustedConfidence, "no findings leave confidence untouched")
	assert.Positive(t, artifacts.Audit.BaselineComplexity)
}

func TestPipeline_Run_DiagnosticsLowerConfidence(t *testing.T) {
	p := newPipeline(t)
	spec := `{
		"capabilities": [
			{"service": "lambda", "access_level": "write",
			 "evidence": [{"source_id": "a", "confidence": 0.9}], "confidence": 0.9}
		],
		"extraction_confidence": 1.0
	}`

	artifacts, err := p.Run([]byte(spec), nil)
	require.NoError(t, err)

	testutil.RequireDiagnostic(t, artifacts.Diagnostics, entities.CodeUnknownService)
	assert.Equal(t, 0.95, artifacts.Audit.AdjustedConfidence)
}

func TestPipeline_Run_WithCandidate(t *testing.T) {
	p := newPipeline(t)

	baseline, err := p.Run([]byte(specJSON), nil)
	require.NoError(t, err)
	candidateJSON, err := json.Marshal(baseline.Baseline)
	require.NoError(t, err)

	artifacts, err := p.Run([]byte(specJSON), candidateJSON)
	require.NoError(t, err)

	require.NotNil(t, artifacts.Report)
	assert.Equal(t, 1.0, artifacts.Report.ActionOverlap)
	assert.Equal(t, 1.0, artifacts.Report.ResourceOverlap)
	assert.Empty(t, artifacts.Report.Recommendations)
	assert.Equal(t, 1.0, artifacts.Audit.AlignmentScore)
	assert.Equal(t, artifacts.Audit.BaselineComplexity, artifacts.Audit.CandidateComplexity)
}

// TestPipeline_Run_ProductionCase replays a request observed in
// production: two services outside the registry, an object-only S3 ref,
// and control-plane condition keys on data-plane services.
func TestPipeline_Run_ProductionCase(t *testing.T) {
	p := newPipeline(t)
	spec := `{
		"capabilities": [
			{"service": "lambda", "access_level": "write",
			 "evidence": [{"source_id": "req-1", "confidence": 0.9}], "confidence": 0.9},
			{"service": "apigateway", "access_level": "write",
			 "evidence": [{"source_id": "req-2", "confidence": 0.9}], "confidence": 0.9},
			{"service": "s3", "access_level": "read-only",
			 "resource_refs": ["arn:aws:s3:::reports/*"],
			 "conditions": {"aws:MultiFactorAuthPresent": "true", "aws:CurrentTime": "2026-01-01T00:00:00Z"},
			 "evidence": [{"source_id": "req-3", "confidence": 0.9}], "confidence": 0.9},
			{"service": "kms", "access_level": "read-only",
			 "resource_refs": ["1234abcd-12ab-34cd-56ef-1234567890ab"],
			 "conditions": {"aws:MultiFactorAuthPresent": "true"},
			 "evidence": [{"source_id": "req-4", "confidence": 0.9}], "confidence": 0.9}
		],
		"restrictions": [
			{"rule_type": "deny", "targets": ["dynamodb:PutItem", "dynamodb:UpdateItem", "dynamodb:DeleteItem"],
			 "condition_scope": {"aws:ResourceTag/env": "Production"}}
		],
		"extraction_confidence": 1.0
	}`

	artifacts, err := p.Run([]byte(spec), nil)
	require.NoError(t, err)

	// One statement per capability plus the deny, in input order.
	require.Len(t, artifacts.Baseline.Statement, 5)
	assert.Equal(t, "DenyDynamodb", artifacts.Baseline.Statement[4].Sid)

	unknown := testutil.FindDiagnostics(artifacts.Diagnostics, entities.CodeUnknownService)
	subjects := make([]string, 0, len(unknown))
	for _, d := range unknown {
		subjects = append(subjects, d.Subject)
	}
	assert.Contains(t, subjects, "lambda/write")
	assert.Contains(t, subjects, "apigateway/write")

	testutil.RequireDiagnostic(t, artifacts.Diagnostics, entities.CodeMissingResourceSegment)
	assert.GreaterOrEqual(t,
		len(testutil.FindDiagnostics(artifacts.Diagnostics, entities.CodeConditionKeyUnsupported)), 3)
	testutil.RequireDiagnostic(t, artifacts.Diagnostics, entities.CodeInsecureTransport)
	testutil.RequireNoDiagnostic(t, artifacts.Diagnostics, entities.CodeLowEvidenceConfidence)
	testutil.RequireNoDiagnostic(t, artifacts.Diagnostics, entities.CodeWildcardResource)

	assert.Equal(t, 0.85, artifacts.Audit.AdjustedConfidence)
}

func TestPipeline_Run_StructurallyInvalidSpec(t *testing.T) {
	p := newPipeline(t)
	spec := `{"capabilities": [{"service": "s3", "access_level": "superuser"}]}`

	_, err := p.Run([]byte(spec), nil)
	require.Error(t, err)

	var specErr *domainerrors.SpecError
	assert.ErrorAs(t, err, &specErr)
}

func TestPipeline_Run_MalformedSpec(t *testing.T) {
	p := newPipeline(t)

	_, err := p.Run([]byte(`{`), nil)
	require.Error(t, err)

	var decodeErr *domainerrors.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestPipeline_Run_CandidateFailsSchema(t *testing.T) {
	p := newPipeline(t)
	candidate := `{"Version":"2012-10-17","Statement":[{"Action":"s3:GetObject","Resource":"*"}]}`

	_, err := p.Run([]byte(specJSON), []byte(candidate))
	require.Error(t, err)

	var schemaErr *domainerrors.SchemaError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestPipeline_New_NilRegistryUsesBuiltins(t *testing.T) {
	p := pipeline.New(nil, pipeline.WithLogger(log.New(log.WithWriter(io.Discard))))

	artifacts, err := p.Run([]byte(specJSON), nil)
	require.NoError(t, err)
	assert.Len(t, artifacts.Baseline.Statement, 2)
}
