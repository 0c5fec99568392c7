package schema

import (
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"

	domainerrors "github.com/Saffronius/acpgen/domain/errors"
)

// PolicyDocumentSchema is the authorization-policy wire schema. It is
// written by hand rather than reflected because the wire format allows
// Action and Resource to be either a bare string or an array, which
// struct reflection cannot express.
const PolicyDocumentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["Version", "Statement"],
  "properties": {
    "Version": {"type": "string"},
    "Statement": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["Effect", "Action", "Resource"],
        "properties": {
          "Sid": {"type": "string"},
          "Effect": {"enum": ["Allow", "Deny"]},
          "Action": {"$ref": "#/definitions/stringOrList"},
          "Resource": {"$ref": "#/definitions/stringOrList"},
          "Condition": {
            "type": "object",
            "additionalProperties": {"type": "object"}
          }
        }
      }
    }
  },
  "definitions": {
    "stringOrList": {
      "oneOf": [
        {"type": "string"},
        {"type": "array", "items": {"type": "string"}, "minItems": 1}
      ]
    }
  }
}`

// policySchema is compiled once at init; the compiled schema is
// read-only and safe for concurrent use.
var policySchema = jsonschema.MustCompileString("policy-document.json", PolicyDocumentSchema)

// ValidatePolicyDocument checks raw candidate-policy JSON against the
// wire schema. Malformed candidates are rejected here, before the
// comparator ever sees them.
func ValidatePolicyDocument(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return &domainerrors.DecodeError{Format: "json", What: "policy document", Err: err}
	}
	if err := policySchema.Validate(v); err != nil {
		return &domainerrors.SchemaError{What: "policy document", Err: err}
	}
	return nil
}
