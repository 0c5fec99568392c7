// Package schema provides the JSON Schema surface of the policy core:
// generation of schemas for the wire types, and validation of externally
// produced documents before they enter the comparator.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/Saffronius/acpgen/domain/entities"
)

// Generate reflects a JSON Schema (Draft 2020-12) from a Go struct.
func Generate(v interface{}) ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true, // inline struct definitions
	}
	s := reflector.Reflect(v)

	jsonBytes, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return jsonBytes, nil
}

// SpecSchema returns the JSON Schema for the SpecDSL wire format, for
// publication to the intent-extraction collaborator.
func SpecSchema() ([]byte, error) {
	return Generate(&entities.SpecDSL{})
}
