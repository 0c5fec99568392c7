// Package parser decodes the wire formats accepted at the boundary of
// the policy core. Decoding is strictly syntactic; structural and
// semantic validation happen in the application layer.
package parser

import (
	"encoding/json"

	"github.com/Saffronius/acpgen/domain/entities"
	domainerrors "github.com/Saffronius/acpgen/domain/errors"
)

// ParseSpec decodes a capability spec from JSON.
func ParseSpec(data []byte) (entities.SpecDSL, error) {
	var spec entities.SpecDSL
	if err := json.Unmarshal(data, &spec); err != nil {
		return entities.SpecDSL{}, &domainerrors.DecodeError{Format: "json", What: "spec", Err: err}
	}
	return spec, nil
}

// ParseDocument decodes a policy document from JSON. Action and
// Resource accept both the bare-string and list spellings.
func ParseDocument(data []byte) (entities.PolicyDocument, error) {
	var doc entities.PolicyDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return entities.PolicyDocument{}, &domainerrors.DecodeError{Format: "json", What: "policy document", Err: err}
	}
	return doc, nil
}
