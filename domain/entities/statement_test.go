package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saffronius/acpgen/domain/entities"
)

func TestStringOrList_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   entities.StringOrList
		want string
	}{
		{"Single element marshals as bare string", entities.StringOrList{"s3:GetObject"}, `"s3:GetObject"`},
		{"Multiple elements marshal as array", entities.StringOrList{"s3:GetObject", "s3:ListBucket"}, `["s3:GetObject","s3:ListBucket"]`},
		{"Empty list marshals as empty array", entities.StringOrList{}, `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestStringOrList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    entities.StringOrList
		wantErr bool
	}{
		{"Bare string", `"s3:GetObject"`, entities.StringOrList{"s3:GetObject"}, false},
		{"Array", `["a","b"]`, entities.StringOrList{"a", "b"}, false},
		{"Number rejected", `42`, nil, true},
		{"Object rejected", `{"a":1}`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got entities.StringOrList
			err := json.Unmarshal([]byte(tt.in), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicyDocument_MarshalShape(t *testing.T) {
	doc := entities.NewPolicyDocument()
	doc.Statement = append(doc.Statement, entities.PolicyStatement{
		Sid:      "AllowS3ReadOnly",
		Effect:   entities.EffectAllow,
		Action:   entities.StringOrList{"s3:GetObject"},
		Resource: entities.StringOrList{"arn:aws:s3:::data", "arn:aws:s3:::data/*"},
	})

	got, err := json.Marshal(doc)
	require.NoError(t, err)

	want := `{"Version":"2012-10-17","Statement":[{"Sid":"AllowS3ReadOnly","Effect":"Allow",` +
		`"Action":"s3:GetObject","Resource":["arn:aws:s3:::data","arn:aws:s3:::data/*"]}]}`
	assert.JSONEq(t, want, string(got))

	// The Condition key must be absent entirely, not null.
	assert.NotContains(t, string(got), "Condition")
}

func TestNewPolicyDocument_EmptyMarshalsAsArray(t *testing.T) {
	got, err := json.Marshal(entities.NewPolicyDocument())
	require.NoError(t, err)
	assert.JSONEq(t, `{"Version":"2012-10-17","Statement":[]}`, string(got))
	assert.True(t, entities.NewPolicyDocument().Empty())
}

func TestConditionBlock_Clone(t *testing.T) {
	original := entities.ConditionBlock{
		"Bool": {"aws:SecureTransport": "true"},
	}
	clone := original.Clone()
	clone["Bool"]["aws:SecureTransport"] = "false"

	assert.Equal(t, "true", original["Bool"]["aws:SecureTransport"])
	assert.Nil(t, entities.ConditionBlock{}.Clone())
}

func TestAccessLevel_Valid(t *testing.T) {
	assert.True(t, entities.AccessReadOnly.Valid())
	assert.True(t, entities.AccessWrite.Valid())
	assert.True(t, entities.AccessAdmin.Valid())
	assert.False(t, entities.AccessLevel("root").Valid())
	assert.False(t, entities.AccessLevel("").Valid())
}

func TestMaxEvidenceConfidence(t *testing.T) {
	assert.Equal(t, 0.0, entities.MaxEvidenceConfidence(nil))
	assert.Equal(t, 0.92, entities.MaxEvidenceConfidence([]entities.Evidence{
		{SourceID: "doc-1", Confidence: 0.75},
		{SourceID: "doc-2", Confidence: 0.92},
		{SourceID: "doc-3", Confidence: 0.60},
	}))
}

func TestSpecDSL_EvidenceCount(t *testing.T) {
	spec := entities.SpecDSL{
		Capabilities: []entities.Capability{
			{Service: "s3", Evidence: []entities.Evidence{{SourceID: "a"}, {SourceID: "b"}}},
			{Service: "kms"},
		},
		Restrictions: []entities.Restriction{
			{RuleType: entities.RestrictionDeny, Targets: []string{"s3:DeleteBucket"},
				Evidence: []entities.Evidence{{SourceID: "c"}}},
		},
	}
	assert.Equal(t, 3, spec.EvidenceCount())
}
